package timetables

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeTables(t *testing.T) {
	rows, err := ParseTimeTables([]byte(`[
		{"day":"Senin","hour":1,"start_time":"07:00","end_time":"07:40"},
		{"day":" Jumat ","hour":2,"start_time":"07:40","end_time":"08:20"}
	]`))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Jumat", rows[1].TimeTableDay)
	assert.Equal(t, "08:20", rows[1].TimeTableEndTime)
}

func TestParseTimeTables_Invalid(t *testing.T) {
	_, err := ParseTimeTables([]byte(`[{"day":"Senin","hour":1,"start_time":"7","end_time":"07:40"}]`))
	assert.Error(t, err)

	_, err = ParseTimeTables([]byte(`[{"day":"","hour":1,"start_time":"07:00","end_time":"07:40"}]`))
	assert.Error(t, err)

	_, err = ParseTimeTables([]byte(`{`))
	assert.Error(t, err)
}

func TestBundledSeedFileIsValid(t *testing.T) {
	data, err := os.ReadFile("data_timetables.json")
	require.NoError(t, err)
	rows, err := ParseTimeTables(data)
	require.NoError(t, err)
	assert.NotEmpty(t, rows)
}
