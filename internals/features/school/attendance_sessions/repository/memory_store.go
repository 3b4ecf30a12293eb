// file: internals/features/school/attendance_sessions/repository/memory_store.go
package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemorySessionStore: mirror constraint unik natural key di memori.
type MemorySessionStore struct {
	mu    sync.RWMutex
	rows  map[uuid.UUID]model.AttendanceSessionModel
	byKey map[string]uuid.UUID
	now   func() time.Time

	// BeforeCreate dipanggil sebelum insert (di luar lock); untuk simulasi race.
	BeforeCreate func(m *model.AttendanceSessionModel)
	// FailOn mensimulasikan kegagalan store per operasi ("create", "update").
	FailOn func(op string) error
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		rows:  map[uuid.UUID]model.AttendanceSessionModel{},
		byKey: map[string]uuid.UUID{},
		now:   time.Now,
	}
}

func keyOf(className string, date time.Time, period, subject string) string {
	return className + "|" + date.Format("2006-01-02") + "|" + period + "|" + subject
}

func (s *MemorySessionStore) FindByNaturalKey(_ context.Context, key NaturalKey) (*model.AttendanceSessionModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byKey[keyOf(key.ClassName, key.Date, key.Period, key.Subject)]
	if !ok {
		return nil, nil
	}
	m := s.rows[id]
	return &m, nil
}

func (s *MemorySessionStore) FindByID(_ context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (s *MemorySessionStore) Create(_ context.Context, m *model.AttendanceSessionModel) error {
	if s.BeforeCreate != nil {
		s.BeforeCreate(m)
	}
	if s.FailOn != nil {
		if err := s.FailOn("create"); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	k := keyOf(m.AttendanceSessionClassName, m.AttendanceSessionDate, m.AttendanceSessionPeriod, m.AttendanceSessionSubject)
	if _, exists := s.byKey[k]; exists {
		return ErrDuplicateSession
	}
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	now := s.now()
	m.AttendanceSessionCreatedAt = now
	m.AttendanceSessionUpdatedAt = now
	s.rows[m.AttendanceSessionID] = *m
	s.byKey[k] = m.AttendanceSessionID
	return nil
}

func (s *MemorySessionStore) UpdateFields(_ context.Context, id uuid.UUID, patch SessionPatch) (*model.AttendanceSessionModel, error) {
	if s.FailOn != nil {
		if err := s.FailOn("update"); err != nil {
			return nil, errors.Wrapf(err, "update sesi %s", id)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !patch.IsEmpty() {
		patch.Apply(&m)
		m.AttendanceSessionUpdatedAt = s.now()
		s.rows[id] = m
	}
	return &m, nil
}

func (s *MemorySessionStore) List(_ context.Context, f ListFilter, limit, offset int) ([]model.AttendanceSessionModel, int64, error) {
	s.mu.RLock()
	var all []model.AttendanceSessionModel
	for _, m := range s.rows {
		if matches(m, f) {
			all = append(all, m)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(all, func(i, j int) bool {
		a, b := all[i], all[j]
		if !a.AttendanceSessionDate.Equal(b.AttendanceSessionDate) {
			return a.AttendanceSessionDate.After(b.AttendanceSessionDate)
		}
		if a.AttendanceSessionPeriodStart != b.AttendanceSessionPeriodStart {
			return a.AttendanceSessionPeriodStart < b.AttendanceSessionPeriodStart
		}
		return a.AttendanceSessionPeriod < b.AttendanceSessionPeriod
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []model.AttendanceSessionModel{}, total, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], total, nil
}

func matches(m model.AttendanceSessionModel, f ListFilter) bool {
	if f.TeacherID != "" && m.AttendanceSessionTeacherID != f.TeacherID {
		return false
	}
	if f.ClassName != "" && m.AttendanceSessionClassName != f.ClassName {
		return false
	}
	if f.Date != nil && m.AttendanceSessionDate.Format("2006-01-02") != f.Date.Format("2006-01-02") {
		return false
	}
	if f.AcademicYear != "" && m.AttendanceSessionAcademicYear != f.AcademicYear {
		return false
	}
	if f.Semester != "" && m.AttendanceSessionSemester != f.Semester {
		return false
	}
	if len(f.Statuses) > 0 {
		hit := false
		for _, st := range f.Statuses {
			if string(m.AttendanceSessionStatus) == st {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
