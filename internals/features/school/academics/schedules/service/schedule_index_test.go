package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedScheduleIndex(t *testing.T) {
	mem := NewMemoryScheduleIndex()
	key := SlotKey{TeacherID: "T1", ClassName: "10A", Subject: "Math", Period: "1-2"}
	id := uuid.New()
	mem.Put(key, id)

	idx := NewCachedScheduleIndex(mem, time.Minute)

	got, err := idx.FindActiveSlot(context.Background(), key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, id, *got)

	other := key
	other.Period = "3"
	miss, err := idx.FindActiveSlot(context.Background(), other)
	require.NoError(t, err)
	assert.Nil(t, miss)
}
