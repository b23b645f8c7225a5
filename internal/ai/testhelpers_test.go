package ai

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai/fakehost"
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/game/events"
)

// testWorld builds a small owned square plus a generic tribe descriptor
// table, enough variety to exercise every scoring branch without needing
// the real simulation.
func testWorld(t *testing.T) (*fakehost.World, *fakehost.Descriptors) {
	t.Helper()
	w := fakehost.NewWorld(20, 20)

	desc := fakehost.NewDescriptors()
	desc.AddWare(WareDescr{ID: 1, Name: "log", Preciousness: 4})
	desc.AddWare(WareDescr{ID: 2, Name: "stone", Preciousness: 3})
	desc.AddWare(WareDescr{ID: 3, Name: "meat", Preciousness: 5})
	desc.AddWare(WareDescr{ID: 4, Name: "fish", Preciousness: 5})

	desc.AddBuilding(BuildingDescr{
		ID: 1, Name: "lumberjacks_hut", Type: BuildingProductionSite,
		Size: BuildCapSmall, Hints: BuildingHints{NeedTrees: true}, Outputs: []WareID{1},
	})
	desc.AddBuilding(BuildingDescr{
		ID: 2, Name: "quarry", Type: BuildingProductionSite,
		Size: BuildCapSmall, Hints: BuildingHints{NeedStones: true}, Outputs: []WareID{2},
	})
	desc.AddBuilding(BuildingDescr{
		ID: 3, Name: "hunters_hut", Type: BuildingProductionSite,
		Size: BuildCapSmall, Outputs: []WareID{3},
	})
	desc.AddBuilding(BuildingDescr{
		ID: 4, Name: "warehouse", Type: BuildingWarehouse, Size: BuildCapMedium,
	})
	desc.AddBuilding(BuildingDescr{
		ID: 5, Name: "garrison", Type: BuildingMilitarySite, Size: BuildCapMedium, MaxSoldiers: 4, VisionRange: 8,
	})
	desc.AddBuilding(BuildingDescr{
		ID: 6, Name: "ore_mine", Type: BuildingMine, Size: BuildCapMine,
		Hints: BuildingHints{HasMines: true, Mines: oreResource}, Outputs: []WareID{2},
	})

	return w, desc
}

// testHost assembles a ready-to-use Host plus its underlying fakehost
// pieces, so a test can both drive the engine and inspect/mutate world
// state directly.
func testHost(t *testing.T) (*Host, *fakehost.World, *fakehost.Player, *fakehost.Commands) {
	t.Helper()
	w, desc := testWorld(t)
	player := fakehost.NewPlayer(0, w)
	player.Hostiles[1] = true
	econ := fakehost.NewEconomies()
	stats := fakehost.NewStatistics()
	cmds := fakehost.NewCommands()
	host := fakehost.NewHost(w, player, desc, econ, stats, cmds)
	return host, w, player, cmds
}

func testEngine(t *testing.T) (*Engine, *fakehost.World, *fakehost.Commands) {
	t.Helper()
	host, w, _, cmds := testHost(t)
	bus := events.NewEventBus()
	e := NewEngine(host, bus, "test", 0, zerolog.Nop())
	return e, w, cmds
}

// testEngineWith builds an engine over a caller-supplied world/descriptor
// pair, for tests that need to mutate the descriptor table (e.g. dropping a
// required building type) before the engine reads it.
func testEngineWith(t *testing.T, w *fakehost.World, desc *fakehost.Descriptors) (*Engine, *fakehost.World, *fakehost.Commands) {
	t.Helper()
	player := fakehost.NewPlayer(0, w)
	econ := fakehost.NewEconomies()
	stats := fakehost.NewStatistics()
	cmds := fakehost.NewCommands()
	host := fakehost.NewHost(w, player, desc, econ, stats, cmds)
	bus := events.NewEventBus()
	e := NewEngine(host, bus, "test", 0, zerolog.Nop())
	return e, w, cmds
}

func ownTile(w *fakehost.World, c Coordinate, buildCap BuildCap) {
	t := *w.Get(c)
	t.OwnerID = 0
	t.BuildCap = buildCap
	w.Set(c, t)
}

// oreResource is the fixture's stand-in resource id for everything ore_mine
// mines, so mine-planner tests can set up matching and mismatching deposits.
const oreResource ResourceID = 7

// mineTile owns a MINE-capable tile carrying amount of oreResource, the
// deposit ore_mine's Hints.Mines requires.
func mineTile(w *fakehost.World, c Coordinate, amount int) {
	t := *w.Get(c)
	t.OwnerID = 0
	t.BuildCap = BuildCapMine
	t.Resource = amount
	t.ResourceKind = oreResource
	w.Set(c, t)
}
