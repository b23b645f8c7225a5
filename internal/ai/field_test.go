package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildableField_SentinelsAreMinusOne(t *testing.T) {
	f := newBuildableField(Coordinate{X: 1, Y: 2})
	assert.Equal(t, -1, f.WaterNearby)
	assert.Equal(t, -1, f.FishNearby)
	assert.Equal(t, -1, f.StonesNearby)
	assert.Equal(t, -1, f.GroundWater)
	assert.Equal(t, 0, f.TreesNearby, "fast-changing features do not start at the sentinel")
	assert.NotNil(t, f.ProducersNearby)
	assert.NotNil(t, f.ConsumersNearby)
}

func TestNewMineableField_Defaults(t *testing.T) {
	f := newMineableField(Coordinate{X: 0, Y: 0})
	assert.Equal(t, 0, f.MinesNearby)
	assert.False(t, f.Preferred)
}

func TestBuildCap_Has(t *testing.T) {
	both := BuildCapSmall | BuildCapMine
	assert.True(t, both.Has(BuildCapSmall))
	assert.True(t, both.Has(BuildCapMine))
	assert.False(t, both.Has(BuildCapMedium))
	assert.False(t, BuildCapNone.Has(BuildCapSmall))
}
