package apperror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	TeacherID string `json:"teacher_id" validate:"required"`
	Status    string `json:"status" validate:"omitempty,oneof=DRAFT FINAL"`
}

func TestFromValidatorUsesJSONNames(t *testing.T) {
	err := NewValidator().Struct(sample{Status: "DONE"})
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(FromValidator(err), &ve))
	assert.Equal(t, []string{"wajib diisi"}, ve.Fields["teacher_id"])
	assert.Equal(t, []string{"harus salah satu dari: DRAFT FINAL"}, ve.Fields["status"])
	assert.Contains(t, ve.Error(), "teacher_id")
}

func TestPersistenceWrapsOnce(t *testing.T) {
	base := errors.New("connection reset")
	err := Persistence("update journal", base)

	var pe *PersistenceError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "update journal", pe.Op)
	assert.ErrorIs(t, err, base)

	again := Persistence("outer", err)
	assert.Same(t, err, again)
	assert.Nil(t, Persistence("noop", nil))
}
