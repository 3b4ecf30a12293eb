package service

import (
	"context"
	"testing"
	"time"

	"presensiku_backend/internals/features/school/academics/timetables/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingIndex struct {
	calls int
	inner TimeTableIndex
}

func (c *countingIndex) Lookup(ctx context.Context, day string, hour int) (*model.TimeTableModel, error) {
	c.calls++
	return c.inner.Lookup(ctx, day, hour)
}

func TestMemoryTimeTableIndexCaseInsensitiveDay(t *testing.T) {
	idx := NewMemoryTimeTableIndex(model.TimeTableModel{TimeTableDay: "Jumat", TimeTableHour: 1, TimeTableStartTime: "07:00", TimeTableEndTime: "07:45"})

	got, err := idx.Lookup(context.Background(), "jumat", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "07:45", got.TimeTableEndTime)

	miss, err := idx.Lookup(context.Background(), "Jumat", 9)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestCachedTimeTableIndexHitsInnerOncePerKey(t *testing.T) {
	inner := &countingIndex{inner: NewMemoryTimeTableIndex(model.TimeTableModel{TimeTableDay: "Senin", TimeTableHour: 2, TimeTableStartTime: "07:45", TimeTableEndTime: "08:30"})}
	idx := NewCachedTimeTableIndex(inner, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := idx.Lookup(context.Background(), "Senin", 2)
		require.NoError(t, err)
		require.NotNil(t, got)
	}
	_, _ = idx.Lookup(context.Background(), "SENIN", 2)
	assert.Equal(t, 1, inner.calls)

	// miss juga di-cache
	_, _ = idx.Lookup(context.Background(), "Senin", 7)
	_, _ = idx.Lookup(context.Background(), "Senin", 7)
	assert.Equal(t, 2, inner.calls)
}
