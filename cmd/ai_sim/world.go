package main

import (
	"math/rand"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai"
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai/fakehost"
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/game/events"
)

const (
	wareLog   ai.WareID = 1
	wareStone ai.WareID = 2
	wareWater ai.WareID = 3
	wareMeat  ai.WareID = 4
	wareFish  ai.WareID = 5

	buildingLumberjack ai.BuildingID = 1
	buildingQuarry     ai.BuildingID = 2
	buildingWell       ai.BuildingID = 3
	buildingHuntersHut ai.BuildingID = 4
	buildingWarehouse  ai.BuildingID = 5
	buildingGarrison   ai.BuildingID = 6
	buildingRangersHut ai.BuildingID = 7
)

// buildWorld scatters trees, stones, water, and mine tiles across a
// synthetic map and registers a small tribe of production, warehouse, and
// military buildings for the construction planner. No mine building is
// registered, so the mine planner has no building type to place.
func buildWorld(rng *rand.Rand, width, height int) (*fakehost.World, *fakehost.Descriptors) {
	w := fakehost.NewWorld(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := ai.Coordinate{X: x, Y: y}
			t := *w.Get(c)
			roll := rng.Intn(100)
			switch {
			case roll < 12:
				t.Immovable = &ai.Immovable{Kind: ai.ImmovableTree, OwnerID: -1}
			case roll < 18:
				t.Immovable = &ai.Immovable{Kind: ai.ImmovableStone, OwnerID: -1}
			case roll < 24:
				t.Resource = 10 + rng.Intn(40)
			case roll < 30:
				t.BuildCap = ai.BuildCapMine
				t.Resource = 5 + rng.Intn(20)
			}
			w.Set(c, t)
			if roll >= 30 && roll < 33 {
				w.AddBob(ai.Bob{Kind: "critter", Pos: c})
			}
			if roll >= 33 && roll < 35 {
				w.AddBob(ai.Bob{Kind: "fish", Pos: c})
			}
		}
	}

	desc := fakehost.NewDescriptors()
	desc.AddWare(ai.WareDescr{ID: wareLog, Name: "log", Preciousness: 4})
	desc.AddWare(ai.WareDescr{ID: wareStone, Name: "stone", Preciousness: 3})
	desc.AddWare(ai.WareDescr{ID: wareWater, Name: "water", Preciousness: 2})
	desc.AddWare(ai.WareDescr{ID: wareMeat, Name: "meat", Preciousness: 5})
	desc.AddWare(ai.WareDescr{ID: wareFish, Name: "fish", Preciousness: 5})

	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingLumberjack, Name: "lumberjacks_hut", Type: ai.BuildingProductionSite,
		Size: ai.BuildCapSmall, MaxSoldiers: 0,
		Hints:   ai.BuildingHints{NeedTrees: true},
		Outputs: []ai.WareID{wareLog},
	})
	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingRangersHut, Name: "rangers_hut", Type: ai.BuildingProductionSite,
		Size: ai.BuildCapSmall, Hints: ai.BuildingHints{PlantsTrees: true, SpaceConsumer: true},
	})
	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingQuarry, Name: "quarry", Type: ai.BuildingProductionSite,
		Size: ai.BuildCapSmall, Hints: ai.BuildingHints{NeedStones: true},
		Outputs: []ai.WareID{wareStone},
	})
	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingWell, Name: "well", Type: ai.BuildingProductionSite,
		Size: ai.BuildCapSmall, Hints: ai.BuildingHints{NeedWater: true},
		Outputs: []ai.WareID{wareWater},
	})
	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingHuntersHut, Name: "hunters_hut", Type: ai.BuildingProductionSite,
		Size: ai.BuildCapSmall, Hints: ai.BuildingHints{IsHunter: true},
		Outputs: []ai.WareID{wareMeat},
	})
	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingWarehouse, Name: "warehouse", Type: ai.BuildingWarehouse,
		Size: ai.BuildCapMedium, Inputs: []ai.WareID{wareLog, wareStone, wareWater, wareMeat, wareFish},
	})
	desc.AddBuilding(ai.BuildingDescr{
		ID: buildingGarrison, Name: "garrison", Type: ai.BuildingMilitarySite,
		Size: ai.BuildCapMedium, MaxSoldiers: 3, Conquers: 6, VisionRange: 8,
	})

	return w, desc
}

// seedOwnedFields claims a small starting area for playerID and publishes a
// FieldPossessionChangedEvent for each tile, the same notification a real
// simulation would emit as territory changes hands.
func seedOwnedFields(bus *events.EventBus, w *fakehost.World, playerID int) {
	cx, cy := w.Width()/2, w.Height()/2
	for y := cy - 3; y <= cy+3; y++ {
		for x := cx - 3; x <= cx+3; x++ {
			c := ai.Coordinate{X: x, Y: y}
			t, ok := w.TileAt(c)
			if !ok {
				continue
			}
			tile := *w.Get(c)
			tile.OwnerID = playerID
			w.Set(c, tile)
			bus.Publish(events.NewFieldPossessionChangedEvent("ai_sim", playerID, t.OwnerID, c))
		}
	}
}
