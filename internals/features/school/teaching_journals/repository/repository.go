// file: internals/features/school/teaching_journals/repository/repository.go
package repository

import (
	"context"
	"time"

	"presensiku_backend/internals/features/school/teaching_journals/model"
)

// JournalStore: penyimpanan jurnal mengajar per jam.
// FindBySlot boleh mengembalikan >1 baris (split records); urutan harus stabil.
type JournalStore interface {
	FindBySlot(ctx context.Context, date time.Time, className string, hour int) ([]model.TeachingJournalModel, error)
	Create(ctx context.Context, m *model.TeachingJournalModel) error
	// SaveMerge menyimpan kolom yang dikelola rekonsiliasi:
	// filler role, materi, refleksi, kategori & data guru pengganti.
	SaveMerge(ctx context.Context, m *model.TeachingJournalModel) error
}
