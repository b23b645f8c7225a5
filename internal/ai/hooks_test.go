package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/game/events"
)

func TestHooks_FieldPossessionRoundTrip(t *testing.T) {
	e, _, _ := testEngine(t)
	bus := events.NewEventBus()
	Install(bus, e)

	pos := Coordinate{X: 7, Y: 7}
	bus.Publish(events.NewFieldPossessionChangedEvent("test", e.playerID, -1, pos))
	assert.True(t, e.fields.has(pos), "gaining a field adds it to the index")

	bus.Publish(events.NewFieldPossessionChangedEvent("test", 1, e.playerID, pos))
	assert.False(t, e.fields.has(pos), "losing the same field to another owner removes it again")
}

func TestHooks_ImmovableGainedThenLostRestoresObserverCounts(t *testing.T) {
	e, _, _ := testEngine(t)
	bus := events.NewEventBus()
	Install(bus, e)

	bo, ok := e.obs.BuildingByName("quarry")
	require.True(t, ok)
	builtBefore := bo.CntBuilt

	pos := Coordinate{X: 3, Y: 3}
	bus.Publish(events.NewImmovableGainedEvent("test", e.playerID, pos, "building", "quarry", 42))
	assert.Equal(t, builtBefore+1, bo.CntBuilt)
	_, tracked := e.obs.Site(42)
	assert.True(t, tracked, "a gained production site is tracked by the supervisor")

	bus.Publish(events.NewImmovableLostEvent("test", e.playerID, pos, "building", "quarry", 42))
	assert.Equal(t, builtBefore, bo.CntBuilt, "a gain followed by a lose of the same immovable restores the count exactly")
	_, stillTracked := e.obs.Site(42)
	assert.False(t, stillTracked)
}

func TestHooks_FlagGainedThenLostRoundTrip(t *testing.T) {
	e, _, _ := testEngine(t)
	bus := events.NewEventBus()
	Install(bus, e)

	pos := Coordinate{X: 1, Y: 1}
	bus.Publish(events.NewImmovableGainedEvent("test", e.playerID, pos, "flag", "", 9))
	_, ok := e.flags[9]
	assert.True(t, ok)

	bus.Publish(events.NewImmovableLostEvent("test", e.playerID, pos, "flag", "", 9))
	_, ok = e.flags[9]
	assert.False(t, ok)
}

func TestHooks_ProductionSiteOutOfStockMarksSiteStarved(t *testing.T) {
	e, _, _ := testEngine(t)
	bus := events.NewEventBus()
	Install(bus, e)

	bo, ok := e.obs.BuildingByName("quarry")
	require.True(t, ok)
	e.obs.PutSite(&SiteObserver{Site: 11, Building: bo.ID})

	bus.Publish(events.NewProductionSiteOutOfStockEvent("test", e.playerID, 11))

	so, ok := e.obs.Site(11)
	require.True(t, ok)
	assert.Equal(t, 1, so.NoResourcesCount)
	assert.True(t, so.StatsZero)
}

func TestHooks_IgnoresEventsForOtherPlayers(t *testing.T) {
	e, _, _ := testEngine(t)
	bus := events.NewEventBus()
	Install(bus, e)

	pos := Coordinate{X: 9, Y: 9}
	bus.Publish(events.NewImmovableGainedEvent("test", 1, pos, "flag", "", 99))
	_, ok := e.flags[99]
	assert.False(t, ok, "another player's flag gain must not be recorded as our own")
}
