package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFiber(t *testing.T) {
	tests := []struct {
		query string
		want  Params
	}{
		{"", Params{Page: 1, PerPage: 25}},
		{"?page=3&per_page=10", Params{Page: 3, PerPage: 10}},
		{"?page=0&limit=5", Params{Page: 1, PerPage: 5}},
		{"?per_page=9999", Params{Page: 1, PerPage: 200}},
		{"?page=x&per_page=-1", Params{Page: 1, PerPage: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			app := fiber.New()
			var got Params
			app.Get("/", func(c *fiber.Ctx) error {
				got = ParseFiber(c, DefaultOpts)
				return nil
			})
			_, err := app.Test(httptest.NewRequest("GET", "/"+tt.query, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildMeta(t *testing.T) {
	m := BuildMeta(51, Params{Page: 2, PerPage: 25}, 25)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	empty := BuildMeta(0, Params{Page: 1, PerPage: 25}, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestParamsOffset(t *testing.T) {
	p := Params{Page: 4, PerPage: 20}
	assert.Equal(t, 60, p.Offset())
	assert.Equal(t, 20, p.Limit())
}
