package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanMineConstruction_BuildsOnRichestDeposit(t *testing.T) {
	e, w, cmds := testEngine(t)

	poor := Coordinate{X: 1, Y: 1}
	mineTile(w, poor, 4)
	e.fields.AddField(poor)
	e.fields.SweepMineable(0)

	rich := Coordinate{X: 5, Y: 5}
	mineTile(w, rich, 20)
	e.fields.AddField(rich)
	e.fields.SweepMineable(0)

	ok := e.planMineConstruction(0)
	require.True(t, ok, "a candidate with positive score must be built")
	require.Len(t, cmds.Built, 1)
	assert.Equal(t, rich, cmds.Built[0].Pos, "the richer deposit should win")
}

func TestPlanMineConstruction_SkipsBlockedFields(t *testing.T) {
	e, w, cmds := testEngine(t)

	pos := Coordinate{X: 1, Y: 1}
	mineTile(w, pos, 20)
	e.fields.AddField(pos)
	e.fields.SweepMineable(0)

	e.blocked.Block(pos, 1000, "test")
	ok := e.planMineConstruction(0)
	assert.False(t, ok)
	assert.Empty(t, cmds.Built)
}

func TestPlanMineConstruction_NothingWhenNewBuildingsStop(t *testing.T) {
	e, w, cmds := testEngine(t)
	pos := Coordinate{X: 1, Y: 1}
	mineTile(w, pos, 20)
	e.fields.AddField(pos)
	e.fields.SweepMineable(0)

	e.regime.newBuildingsStop = true
	assert.False(t, e.planMineConstruction(0))
	assert.Empty(t, cmds.Built)
}

func TestScoreMineCandidate_RejectsResourceKindMismatch(t *testing.T) {
	e, w, _ := testEngine(t)
	bo, ok := e.obs.BuildingByName("ore_mine")
	require.True(t, ok)

	pos := Coordinate{X: 0, Y: 0}
	ownTile(w, pos, BuildCapMine)
	tile := *w.Get(pos)
	tile.Resource = 20
	tile.ResourceKind = oreResource + 1 // a different deposit than ore_mine mines
	w.Set(pos, tile)

	f := newMineableField(pos)
	assert.Equal(t, 0, e.scoreMineCandidate(f, bo), "a mismatched resource kind must score zero")
}

func TestScoreMineCandidate_PenalizesCrowdingOnceOneIsBuilt(t *testing.T) {
	e, w, _ := testEngine(t)
	bo, ok := e.obs.BuildingByName("ore_mine")
	require.True(t, ok)

	pos := Coordinate{X: 0, Y: 0}
	mineTile(w, pos, 20)
	f := newMineableField(pos)
	f.MinesNearby = 2

	unbuilt := e.scoreMineCandidate(f, bo)
	assert.Equal(t, 20, unbuilt, "no mine of this kind built yet means no crowding penalty")

	bo.CntBuilt = 1
	built := e.scoreMineCandidate(f, bo)
	assert.Equal(t, 20-2*10, built, "crowding penalty applies once a mine of this kind already exists")
	assert.Less(t, built, unbuilt)
}

func TestScoreMineCandidate_RewardsRicherDeposit(t *testing.T) {
	e, w, _ := testEngine(t)
	bo, ok := e.obs.BuildingByName("ore_mine")
	require.True(t, ok)

	poor := Coordinate{X: 0, Y: 0}
	mineTile(w, poor, 3)
	rich := Coordinate{X: 1, Y: 1}
	mineTile(w, rich, 30)

	assert.Greater(t,
		e.scoreMineCandidate(newMineableField(rich), bo),
		e.scoreMineCandidate(newMineableField(poor), bo),
	)
}
