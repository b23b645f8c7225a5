package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreNecessity(t *testing.T) {
	tests := []struct {
		name      string
		available int
		claimed   int
		expected  int
	}{
		{"nothing available", 0, 10, 0},
		{"nothing claimed yet", 10, 0, 100},
		{"even split", 10, 10, 50},
		{"mostly claimed", 2, 18, 10},
		{"heavily available", 90, 10, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, scoreNecessity(tt.available, tt.claimed))
		})
	}
}

func TestRecalcRegime_StopsNewBuildingsWhenLandless(t *testing.T) {
	e, _, _ := testEngine(t)
	e.recalcRegime(0)
	// Zero mines built triggers the mine-count stop condition unconditionally.
	assert.True(t, e.regime.newBuildingsStop, "an engine with no mines yet should stop non-forced building")
	// No military sites and no construction in flight means no pressure at
	// all, which is the push-expansion case, not a dampened one.
	assert.Equal(t, expansionPushExpansion, e.regime.expansionMode)
}

func TestRecalcRegime_NewBuildingsStop_OverbuildThreshold(t *testing.T) {
	e, w, _ := testEngine(t)

	// Enough free spots and mines and military sites that only the
	// construction-site-vs-productionsite ratio condition is in play.
	for i := 0; i < 20; i++ {
		pos := Coordinate{X: i, Y: 0}
		ownTile(w, pos, BuildCapSmall)
		e.fields.AddField(pos)
	}
	mine, ok := e.obs.BuildingByName("ore_mine")
	require.True(t, ok)
	mine.CntBuilt = 3
	for i := 0; i < 13; i++ {
		e.obs.PutMilitarySite(&MilitarySiteObserver{Site: SiteID(i)})
	}

	// 30 built production sites, 6 under construction: 6 > 30/7+2=6 is
	// false, so this alone must not trip the stop.
	ps, ok := e.obs.BuildingByName("lumberjacks_hut")
	require.True(t, ok)
	ps.CntBuilt = 30
	ps.CntUnderConstruction = 6

	e.recalcRegime(0)
	assert.False(t, e.regime.newBuildingsStop, "6 construction sites against 30 production sites must not trip the ratio")

	ps.CntUnderConstruction = 7
	e.regime.nextRecalcDueMS = 0
	e.recalcRegime(0)
	assert.True(t, e.regime.newBuildingsStop, "7 construction sites against 30 production sites must trip the ratio")
}

func TestRecalcRegime_EnemySightingOverridesStop(t *testing.T) {
	e, w, _ := testEngine(t)
	pos := Coordinate{X: 5, Y: 5}
	ownTile(w, pos, BuildCapSmall)
	e.fields.AddField(pos)
	e.fields.SweepBuildable(0)
	f := e.fields.buildableAt[pos]

	e.recalcRegime(1000)
	assert.True(t, e.regime.newBuildingsStop, "with no mines built the stop condition still holds")

	f.EnemyLastSeenMS = 1000
	e.regime.nextRecalcDueMS = 0
	e.recalcRegime(1000 + 60*1000) // 1 minute after the sighting, within the 2-minute window
	assert.False(t, e.regime.newBuildingsStop, "a recent enemy sighting must lift the stop")
}

func TestRecalcRegime_RespectsCooldown(t *testing.T) {
	e, w, _ := testEngine(t)
	ownTile(w, Coordinate{X: 5, Y: 5}, BuildCapSmall)
	e.fields.AddField(Coordinate{X: 5, Y: 5})

	e.recalcRegime(0)
	firstDue := e.regime.nextRecalcDueMS
	assert.Greater(t, firstDue, int64(0))

	// A second call before the due time should be a no-op: landSize should
	// not silently reset just because Think is called again immediately.
	e.regime.landSize = -1
	e.recalcRegime(1)
	assert.Equal(t, -1, e.regime.landSize)
}
