package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSemester(t *testing.T) {
	cases := map[string]string{
		"Ganjil":  "1",
		"genap":   "2",
		" GENAP ": "2",
		"1":       "1",
		"02":      "2",
		"Pendek":  "Pendek",
		"":        "",
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, NormalizeSemester(in))
		})
	}
}

func TestCachedActiveSettingsProvider(t *testing.T) {
	mem := NewMemoryActiveSettingsProvider(ActiveSettings{AcademicYear: "2025/2026", Semester: "Ganjil"})
	p := NewCachedActiveSettingsProvider(mem, time.Minute)

	got, err := p.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025/2026", got.AcademicYear)

	// nilai lama masih dipakai selama TTL
	mem.Set(ActiveSettings{AcademicYear: "2026/2027", Semester: "Genap"})
	got, err = p.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2025/2026", got.AcademicYear)
}

func TestCachedActiveSettingsProvider_ErrorNotCached(t *testing.T) {
	mem := NewMemoryActiveSettingsProvider(ActiveSettings{AcademicYear: "2025/2026", Semester: "1"})
	mem.Err = errors.New("db down")
	p := NewCachedActiveSettingsProvider(mem, time.Minute)

	_, err := p.Active(context.Background())
	require.Error(t, err)

	mem.Err = nil
	got, err := p.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", got.Semester)
}
