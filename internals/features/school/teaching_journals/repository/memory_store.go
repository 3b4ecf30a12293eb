package repository

import (
	"context"
	"sync"
	"time"

	"presensiku_backend/internals/features/school/teaching_journals/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// MemoryJournalStore: implementasi in-memory (tanpa constraint unik per slot,
// sama seperti tabel aslinya). Dipakai test dan mode dev tanpa DB.
type MemoryJournalStore struct {
	mu   sync.RWMutex
	rows []model.TeachingJournalModel
	now  func() time.Time

	// FailOn dipanggil sebelum setiap operasi tulis; error yang dikembalikan
	// disimulasikan sebagai kegagalan store.
	FailOn func(op string, m *model.TeachingJournalModel) error
}

func NewMemoryJournalStore(seed ...model.TeachingJournalModel) *MemoryJournalStore {
	s := &MemoryJournalStore{now: time.Now}
	for _, r := range seed {
		if r.TeachingJournalID == uuid.Nil {
			r.TeachingJournalID = uuid.New()
		}
		s.rows = append(s.rows, r)
	}
	return s
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func (s *MemoryJournalStore) FindBySlot(_ context.Context, date time.Time, className string, hour int) ([]model.TeachingJournalModel, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.TeachingJournalModel
	for _, r := range s.rows {
		if sameDate(r.TeachingJournalDate, date) && r.TeachingJournalClassName == className && r.TeachingJournalHour == hour {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *MemoryJournalStore) Create(_ context.Context, m *model.TeachingJournalModel) error {
	if s.FailOn != nil {
		if err := s.FailOn("create", m); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.TeachingJournalID == uuid.Nil {
		m.TeachingJournalID = uuid.New()
	}
	now := s.now()
	m.TeachingJournalCreatedAt = now
	m.TeachingJournalUpdatedAt = now
	s.rows = append(s.rows, *m)
	return nil
}

func (s *MemoryJournalStore) SaveMerge(_ context.Context, m *model.TeachingJournalModel) error {
	if s.FailOn != nil {
		if err := s.FailOn("update", m); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rows {
		if s.rows[i].TeachingJournalID != m.TeachingJournalID {
			continue
		}
		r := &s.rows[i]
		r.TeachingJournalFillerRole = m.TeachingJournalFillerRole
		r.TeachingJournalMaterial = m.TeachingJournalMaterial
		r.TeachingJournalReflection = m.TeachingJournalReflection
		r.TeachingJournalAttendanceCategory = m.TeachingJournalAttendanceCategory
		r.TeachingJournalSubstituteTeacherName = m.TeachingJournalSubstituteTeacherName
		r.TeachingJournalSubstituteStatus = m.TeachingJournalSubstituteStatus
		r.TeachingJournalUpdatedAt = s.now()
		return nil
	}
	return errors.Errorf("update jurnal %s: baris tidak ditemukan", m.TeachingJournalID)
}

// All mengembalikan salinan semua baris sesuai urutan insert.
func (s *MemoryJournalStore) All() []model.TeachingJournalModel {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.TeachingJournalModel(nil), s.rows...)
}

func (s *MemoryJournalStore) Get(id uuid.UUID) (model.TeachingJournalModel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.rows {
		if r.TeachingJournalID == id {
			return r, true
		}
	}
	return model.TeachingJournalModel{}, false
}
