// file: internals/features/school/academics/schedules/service/schedule_index.go
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"presensiku_backend/internals/features/school/academics/schedules/model"
	"presensiku_backend/internals/helpers/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SlotKey struct {
	TeacherID string
	ClassName string
	Subject   string
	Period    string
}

func (k SlotKey) String() string {
	return strings.Join([]string{k.TeacherID, k.ClassName, k.Subject, k.Period}, "|")
}

// ScheduleIndex: slot jadwal aktif untuk (guru, kelas, mapel, jam). Miss = (nil, nil).
type ScheduleIndex interface {
	FindActiveSlot(ctx context.Context, key SlotKey) (*uuid.UUID, error)
}

/* =========================
   Gorm
========================= */

type GormScheduleIndex struct{ DB *gorm.DB }

func NewGormScheduleIndex(db *gorm.DB) *GormScheduleIndex {
	return &GormScheduleIndex{DB: db}
}

func (g *GormScheduleIndex) FindActiveSlot(ctx context.Context, key SlotKey) (*uuid.UUID, error) {
	var row struct {
		ID uuid.UUID `gorm:"column:class_schedule_id"`
	}
	err := g.DB.WithContext(ctx).
		Model(&model.ClassScheduleModel{}).
		Select("class_schedule_id").
		Where(`class_schedule_teacher_id = ?
			AND class_schedule_class_name = ?
			AND class_schedule_subject = ?
			AND class_schedule_period = ?
			AND class_schedule_is_active`,
			key.TeacherID, key.ClassName, key.Subject, key.Period).
		Order("class_schedule_updated_at DESC").
		Limit(1).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row.ID, nil
}

/* =========================
   Cached decorator
========================= */

type CachedScheduleIndex struct {
	next  ScheduleIndex
	cache *cache.TTL[*uuid.UUID]
}

func NewCachedScheduleIndex(next ScheduleIndex, ttl time.Duration) *CachedScheduleIndex {
	return &CachedScheduleIndex{next: next, cache: cache.New[*uuid.UUID](ttl)}
}

func (c *CachedScheduleIndex) FindActiveSlot(ctx context.Context, key SlotKey) (*uuid.UUID, error) {
	return c.cache.Get(ctx, key.String(), func(ctx context.Context) (*uuid.UUID, error) {
		return c.next.FindActiveSlot(ctx, key)
	})
}

/* =========================
   In-memory
========================= */

type MemoryScheduleIndex struct {
	mu    sync.RWMutex
	slots map[SlotKey]uuid.UUID
	Err   error
}

func NewMemoryScheduleIndex() *MemoryScheduleIndex {
	return &MemoryScheduleIndex{slots: map[SlotKey]uuid.UUID{}}
}

func (m *MemoryScheduleIndex) Put(key SlotKey, id uuid.UUID) {
	m.mu.Lock()
	m.slots[key] = id
	m.mu.Unlock()
}

func (m *MemoryScheduleIndex) FindActiveSlot(_ context.Context, key SlotKey) (*uuid.UUID, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.slots[key]
	if !ok {
		return nil, nil
	}
	return &id, nil
}
