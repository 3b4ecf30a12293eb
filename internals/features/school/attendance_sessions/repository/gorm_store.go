// file: internals/features/school/attendance_sessions/repository/gorm_store.go
package repository

import (
	"context"
	"errors"
	"time"

	"presensiku_backend/internals/features/school/attendance_sessions/model"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormSessionStore struct {
	DB *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{DB: db}
}

// isUniqueViolation: TranslateError gorm atau PgError 23505 langsung dari pgx.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (s *GormSessionStore) FindByNaturalKey(ctx context.Context, key NaturalKey) (*model.AttendanceSessionModel, error) {
	var m model.AttendanceSessionModel
	err := s.DB.WithContext(ctx).
		Where(`attendance_session_class_name = ?
			AND attendance_session_date = ?
			AND attendance_session_period = ?
			AND attendance_session_subject = ?`,
			key.ClassName, key.Date.Format("2006-01-02"), key.Period, key.Subject).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, pkgerrors.Wrap(err, "cari sesi by natural key")
	}
	return &m, nil
}

func (s *GormSessionStore) FindByID(ctx context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	var m model.AttendanceSessionModel
	err := s.DB.WithContext(ctx).
		Where("attendance_session_id = ?", id).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "ambil sesi %s", id)
	}
	return &m, nil
}

func (s *GormSessionStore) Create(ctx context.Context, m *model.AttendanceSessionModel) error {
	if m.AttendanceSessionID == uuid.Nil {
		m.AttendanceSessionID = uuid.New()
	}
	if err := s.DB.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSession
		}
		return pkgerrors.Wrap(err, "insert sesi")
	}
	return nil
}

func (s *GormSessionStore) UpdateFields(ctx context.Context, id uuid.UUID, patch SessionPatch) (*model.AttendanceSessionModel, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		return s.FindByID(ctx, id)
	}
	cols["attendance_session_updated_at"] = time.Now()

	var rows []model.AttendanceSessionModel
	tx := s.DB.WithContext(ctx).
		Model(&rows).
		Clauses(clause.Returning{}).
		Where("attendance_session_id = ?", id).
		Updates(cols)
	if tx.Error != nil {
		return nil, pkgerrors.Wrapf(tx.Error, "update sesi %s", id)
	}
	if tx.RowsAffected == 0 || len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (s *GormSessionStore) List(ctx context.Context, f ListFilter, limit, offset int) ([]model.AttendanceSessionModel, int64, error) {
	q := s.DB.WithContext(ctx).Model(&model.AttendanceSessionModel{})

	if f.TeacherID != "" {
		q = q.Where("attendance_session_teacher_id = ?", f.TeacherID)
	}
	if f.ClassName != "" {
		q = q.Where("attendance_session_class_name = ?", f.ClassName)
	}
	if f.Date != nil {
		q = q.Where("attendance_session_date = ?", f.Date.Format("2006-01-02"))
	}
	if f.AcademicYear != "" {
		q = q.Where("attendance_session_academic_year = ?", f.AcademicYear)
	}
	if f.Semester != "" {
		q = q.Where("attendance_session_semester = ?", f.Semester)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("attendance_session_status = ANY(?)", pq.Array(f.Statuses))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(err, "hitung sesi")
	}

	var rows []model.AttendanceSessionModel
	err := q.
		Order("attendance_session_date DESC").
		Order("attendance_session_period_start ASC").
		Order("attendance_session_period ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, pkgerrors.Wrap(err, "list sesi")
	}
	return rows, total, nil
}
