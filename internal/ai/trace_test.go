package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer_RecordReturnsStableID(t *testing.T) {
	tr := NewTracer(4)
	id := tr.Record("construction", 1000, "lumberjacks_hut")
	require.NotEmpty(t, id)

	recent := tr.Recent()
	require.Len(t, recent, 1)
	assert.Equal(t, id, recent[0].ID)
	assert.Equal(t, "construction", recent[0].Kind)
	assert.Equal(t, int64(1000), recent[0].TimeMS)
}

func TestTracer_RingDropsOldest(t *testing.T) {
	tr := NewTracer(2)
	first := tr.Record("a", 1, "")
	tr.Record("b", 2, "")
	tr.Record("c", 3, "")

	recent := tr.Recent()
	require.Len(t, recent, 2)
	for _, d := range recent {
		assert.NotEqual(t, first, d.ID, "oldest decision should have been evicted")
	}
	assert.Equal(t, "b", recent[0].Kind)
	assert.Equal(t, "c", recent[1].Kind)
}

func TestTracer_DefaultsCapacityWhenNonPositive(t *testing.T) {
	tr := NewTracer(0)
	for i := 0; i < 100; i++ {
		tr.Record("x", int64(i), "")
	}
	assert.LessOrEqual(t, len(tr.Recent()), 64)
}
