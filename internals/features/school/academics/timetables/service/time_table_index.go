// file: internals/features/school/academics/timetables/service/time_table_index.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"presensiku_backend/internals/features/school/academics/timetables/model"
	"presensiku_backend/internals/helpers/cache"

	"gorm.io/gorm"
)

// TimeTableIndex: (hari, jam ke-) -> jam mulai/selesai. Miss = (nil, nil).
type TimeTableIndex interface {
	Lookup(ctx context.Context, day string, hour int) (*model.TimeTableModel, error)
}

/* =========================
   Gorm
========================= */

type GormTimeTableIndex struct{ DB *gorm.DB }

func NewGormTimeTableIndex(db *gorm.DB) *GormTimeTableIndex {
	return &GormTimeTableIndex{DB: db}
}

func (g *GormTimeTableIndex) Lookup(ctx context.Context, day string, hour int) (*model.TimeTableModel, error) {
	var row model.TimeTableModel
	err := g.DB.WithContext(ctx).
		Where("LOWER(time_table_day) = LOWER(?) AND time_table_hour = ?", strings.TrimSpace(day), hour).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

/* =========================
   Cached decorator
========================= */

type CachedTimeTableIndex struct {
	next  TimeTableIndex
	cache *cache.TTL[*model.TimeTableModel]
}

func NewCachedTimeTableIndex(next TimeTableIndex, ttl time.Duration) *CachedTimeTableIndex {
	return &CachedTimeTableIndex{next: next, cache: cache.New[*model.TimeTableModel](ttl)}
}

func (c *CachedTimeTableIndex) Lookup(ctx context.Context, day string, hour int) (*model.TimeTableModel, error) {
	key := fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(day)), hour)
	return c.cache.Get(ctx, key, func(ctx context.Context) (*model.TimeTableModel, error) {
		return c.next.Lookup(ctx, day, hour)
	})
}

/* =========================
   In-memory
========================= */

type MemoryTimeTableIndex struct {
	mu   sync.RWMutex
	rows map[string]model.TimeTableModel
	Err  error
}

func NewMemoryTimeTableIndex(rows ...model.TimeTableModel) *MemoryTimeTableIndex {
	m := &MemoryTimeTableIndex{rows: map[string]model.TimeTableModel{}}
	for _, r := range rows {
		m.Put(r)
	}
	return m
}

func memKey(day string, hour int) string {
	return fmt.Sprintf("%s|%d", strings.ToLower(strings.TrimSpace(day)), hour)
}

func (m *MemoryTimeTableIndex) Put(r model.TimeTableModel) {
	m.mu.Lock()
	m.rows[memKey(r.TimeTableDay, r.TimeTableHour)] = r
	m.mu.Unlock()
}

func (m *MemoryTimeTableIndex) Lookup(_ context.Context, day string, hour int) (*model.TimeTableModel, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rows[memKey(day, hour)]
	if !ok {
		return nil, nil
	}
	return &r, nil
}
