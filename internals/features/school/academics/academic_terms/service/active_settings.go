// file: internals/features/school/academics/academic_terms/service/active_settings.go
package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"presensiku_backend/internals/features/school/academics/academic_terms/model"
	"presensiku_backend/internals/helpers/cache"

	"gorm.io/gorm"
)

// ActiveSettings: tahun ajaran & semester yang sedang aktif.
// Kosong kalau belum ada term aktif.
type ActiveSettings struct {
	AcademicYear string
	Semester     string
}

type ActiveSettingsProvider interface {
	Active(ctx context.Context) (ActiveSettings, error)
}

// NormalizeSemester: ganjil -> "1", genap -> "2", angka -> teks integer, lainnya apa adanya.
func NormalizeSemester(s string) string {
	t := strings.TrimSpace(s)
	switch strings.ToLower(t) {
	case "ganjil":
		return "1"
	case "genap":
		return "2"
	}
	if n, err := strconv.Atoi(t); err == nil {
		return strconv.Itoa(n)
	}
	return s
}

/* =========================
   Gorm
========================= */

type GormActiveSettingsProvider struct{ DB *gorm.DB }

func NewGormActiveSettingsProvider(db *gorm.DB) *GormActiveSettingsProvider {
	return &GormActiveSettingsProvider{DB: db}
}

func (g *GormActiveSettingsProvider) Active(ctx context.Context) (ActiveSettings, error) {
	var term model.AcademicTermModel
	err := g.DB.WithContext(ctx).
		Where("academic_term_is_active = ?", true).
		Order("academic_term_start_date DESC").
		Take(&term).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ActiveSettings{}, nil
	}
	if err != nil {
		return ActiveSettings{}, err
	}
	return ActiveSettings{
		AcademicYear: term.AcademicTermAcademicYear,
		Semester:     term.AcademicTermName,
	}, nil
}

/* =========================
   Cached decorator
========================= */

const activeSettingsKey = "active"

type CachedActiveSettingsProvider struct {
	next  ActiveSettingsProvider
	cache *cache.TTL[ActiveSettings]
}

func NewCachedActiveSettingsProvider(next ActiveSettingsProvider, ttl time.Duration) *CachedActiveSettingsProvider {
	return &CachedActiveSettingsProvider{next: next, cache: cache.New[ActiveSettings](ttl)}
}

func (c *CachedActiveSettingsProvider) Active(ctx context.Context) (ActiveSettings, error) {
	return c.cache.Get(ctx, activeSettingsKey, c.next.Active)
}

/* =========================
   In-memory
========================= */

type MemoryActiveSettingsProvider struct {
	mu       sync.RWMutex
	settings ActiveSettings
	Err      error
}

func NewMemoryActiveSettingsProvider(s ActiveSettings) *MemoryActiveSettingsProvider {
	return &MemoryActiveSettingsProvider{settings: s}
}

func (m *MemoryActiveSettingsProvider) Set(s ActiveSettings) {
	m.mu.Lock()
	m.settings = s
	m.mu.Unlock()
}

func (m *MemoryActiveSettingsProvider) Active(_ context.Context) (ActiveSettings, error) {
	if m.Err != nil {
		return ActiveSettings{}, m.Err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings, nil
}
