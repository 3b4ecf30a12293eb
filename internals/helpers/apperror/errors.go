// file: internals/helpers/apperror/errors.go
package apperror

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

/* ===============================
   ValidationError (422)
=================================*/

type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string][]string{}
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

func NewValidation(field, msg string) *ValidationError {
	ve := &ValidationError{}
	ve.Add(field, msg)
	return ve
}

// FromValidator mengubah validator.ValidationErrors menjadi *ValidationError
// dengan key = nama field JSON (lihat RegisterTagNameFunc di NewValidator).
func FromValidator(err error) error {
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return &ValidationError{Fields: map[string][]string{"_": {err.Error()}}}
	}
	out := &ValidationError{}
	for _, fe := range ves {
		out.Add(fe.Field(), describe(fe))
	}
	return out
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "max":
		return "maksimal " + fe.Param() + " karakter"
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}

// NewValidator: validator dengan nama field dari tag json.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

/* ===============================
   NotFoundError (404)
=================================*/

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s tidak ditemukan", e.Resource, e.ID)
}

func NotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

/* ===============================
   PersistenceError (500)
=================================*/

type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return "persistence error (" + e.Op + "): " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence membungkus kegagalan store; nil tetap nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var pe *PersistenceError
	if errors.As(err, &pe) {
		return err
	}
	return &PersistenceError{Op: op, Err: errors.WithStack(err)}
}

/* ===============================
   ConflictWarning (informational, tidak pernah memblokir)
=================================*/

type ConflictWarning struct {
	Date       time.Time
	ClassName  string
	Hour       int
	ChosenID   uuid.UUID
	Candidates int
}

func (w *ConflictWarning) Error() string {
	return fmt.Sprintf("split record: %d kandidat jurnal untuk (%s, %s, jam %d), dipilih %s",
		w.Candidates, w.Date.Format("2006-01-02"), w.ClassName, w.Hour, w.ChosenID)
}
