package repository

import (
	"context"
	"time"

	"presensiku_backend/internals/features/school/teaching_journals/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type GormJournalStore struct {
	DB *gorm.DB
}

func NewGormJournalStore(db *gorm.DB) *GormJournalStore {
	return &GormJournalStore{DB: db}
}

func (s *GormJournalStore) FindBySlot(ctx context.Context, date time.Time, className string, hour int) ([]model.TeachingJournalModel, error) {
	var rows []model.TeachingJournalModel
	err := s.DB.WithContext(ctx).
		Where("teaching_journal_date = ? AND teaching_journal_class_name = ? AND teaching_journal_hour = ?",
			date.Format("2006-01-02"), className, hour).
		Order("teaching_journal_created_at ASC, teaching_journal_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Wrapf(err, "cari jurnal (%s, %s, jam %d)", date.Format("2006-01-02"), className, hour)
	}
	return rows, nil
}

func (s *GormJournalStore) Create(ctx context.Context, m *model.TeachingJournalModel) error {
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		return errors.Wrap(err, "insert jurnal")
	}
	return nil
}

func (s *GormJournalStore) SaveMerge(ctx context.Context, m *model.TeachingJournalModel) error {
	now := time.Now()
	tx := s.DB.WithContext(ctx).
		Model(&model.TeachingJournalModel{}).
		Where("teaching_journal_id = ?", m.TeachingJournalID).
		Updates(map[string]any{
			"teaching_journal_filler_role":             m.TeachingJournalFillerRole,
			"teaching_journal_material":                m.TeachingJournalMaterial,
			"teaching_journal_reflection":              m.TeachingJournalReflection,
			"teaching_journal_attendance_category":     m.TeachingJournalAttendanceCategory,
			"teaching_journal_substitute_teacher_name": m.TeachingJournalSubstituteTeacherName,
			"teaching_journal_substitute_status":       m.TeachingJournalSubstituteStatus,
			"teaching_journal_updated_at":              now,
		})
	if tx.Error != nil {
		return errors.Wrapf(tx.Error, "update jurnal %s", m.TeachingJournalID)
	}
	if tx.RowsAffected == 0 {
		return errors.Errorf("update jurnal %s: baris tidak ditemukan", m.TeachingJournalID)
	}
	m.TeachingJournalUpdatedAt = now
	return nil
}
