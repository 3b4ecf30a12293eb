package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillerRoleWeight(t *testing.T) {
	tests := []struct {
		role FillerRole
		want int
	}{
		{FillerRoleGuru, 2},
		{"guru", 2},
		{" GURU ", 2},
		{FillerRoleAdmin, 1},
		{FillerRoleSiswa, 0},
		{"", 0},
		{"KEPALA_SEKOLAH", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.role.Weight(), "role %q", tt.role)
	}
}
