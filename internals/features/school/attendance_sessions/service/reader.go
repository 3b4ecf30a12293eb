// file: internals/features/school/attendance_sessions/service/reader.go
package service

import (
	"context"
	"errors"

	"presensiku_backend/internals/features/school/attendance_sessions/model"
	"presensiku_backend/internals/features/school/attendance_sessions/repository"
	"presensiku_backend/internals/helpers/apperror"

	"github.com/google/uuid"
)

type Reader struct {
	Sessions repository.SessionStore
}

func NewReader(sessions repository.SessionStore) *Reader {
	return &Reader{Sessions: sessions}
}

func (r *Reader) Get(ctx context.Context, id uuid.UUID) (*model.AttendanceSessionModel, error) {
	s, err := r.Sessions.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("attendance_session", id.String())
	}
	if err != nil {
		return nil, apperror.Persistence("ambil sesi", err)
	}
	return s, nil
}

func (r *Reader) List(ctx context.Context, f repository.ListFilter, limit, offset int) ([]model.AttendanceSessionModel, int64, error) {
	rows, total, err := r.Sessions.List(ctx, f, limit, offset)
	if err != nil {
		return nil, 0, apperror.Persistence("list sesi", err)
	}
	return rows, total, nil
}
