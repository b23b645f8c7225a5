package ai

import (
	"github.com/rs/zerolog"
)

// FieldIndex is the engine's three-deque spatial index: every owned tile
// lives in exactly one of Unusable, Buildable, or Mineable at a time. Each
// sweep call pops up to a batch's worth of items off the front, refreshes
// the ones whose due time has elapsed, and pushes all of them (refreshed or
// not) onto the back — the incremental, always-rotating scan described by
// update_all_buildable_fields / update_all_mineable_fields /
// update_all_not_buildable_fields in the design this mirrors.
type FieldIndex struct {
	host     *Host
	obs      *Observers
	playerID int
	logger   zerolog.Logger

	unusable  []*UnusableField
	buildable []*BuildableField
	mineable  []*MineableField

	unusableAt  map[Coordinate]struct{}
	buildableAt map[Coordinate]*BuildableField
	mineableAt  map[Coordinate]*MineableField
}

// NewFieldIndex creates an empty index. Fields are added one at a time via
// AddField as the host reports newly-owned tiles (typically from a
// FieldPossessionChanged notification).
func NewFieldIndex(host *Host, obs *Observers, playerID int, logger zerolog.Logger) *FieldIndex {
	return &FieldIndex{
		host:        host,
		obs:         obs,
		playerID:    playerID,
		logger:      logger.With().Str("component", "FieldIndex").Logger(),
		unusableAt:  make(map[Coordinate]struct{}),
		buildableAt: make(map[Coordinate]*BuildableField),
		mineableAt:  make(map[Coordinate]*MineableField),
	}
}

// AddField classifies pos by its current build-cap and files it into the
// matching queue, unless it is already tracked somewhere.
func (fi *FieldIndex) AddField(pos Coordinate) {
	if fi.has(pos) {
		return
	}
	tile, ok := fi.host.Map.TileAt(pos)
	if !ok {
		return
	}
	switch classify(tile) {
	case FieldBuildable:
		f := newBuildableField(pos)
		fi.buildable = append(fi.buildable, f)
		fi.buildableAt[pos] = f
	case FieldMineable:
		f := newMineableField(pos)
		fi.mineable = append(fi.mineable, f)
		fi.mineableAt[pos] = f
	default:
		fi.unusable = append(fi.unusable, &UnusableField{Pos: pos})
		fi.unusableAt[pos] = struct{}{}
	}
}

func (fi *FieldIndex) has(pos Coordinate) bool {
	if _, ok := fi.unusableAt[pos]; ok {
		return true
	}
	if _, ok := fi.buildableAt[pos]; ok {
		return true
	}
	if _, ok := fi.mineableAt[pos]; ok {
		return true
	}
	return false
}

// RemoveField drops pos from whichever queue holds it, used when the host
// reports the tile changed owner away from this player.
func (fi *FieldIndex) RemoveField(pos Coordinate) {
	if _, ok := fi.unusableAt[pos]; ok {
		delete(fi.unusableAt, pos)
		fi.unusable = removeUnusable(fi.unusable, pos)
		return
	}
	if _, ok := fi.buildableAt[pos]; ok {
		delete(fi.buildableAt, pos)
		fi.buildable = removeBuildable(fi.buildable, pos)
		return
	}
	if _, ok := fi.mineableAt[pos]; ok {
		delete(fi.mineableAt, pos)
		fi.mineable = removeMineable(fi.mineable, pos)
	}
}

func classify(tile TileInfo) FieldClass {
	if tile.BuildCap.Has(BuildCapMine) {
		return FieldMineable
	}
	if tile.BuildCap.Has(BuildCapSmall) || tile.BuildCap.Has(BuildCapFlag) {
		return FieldBuildable
	}
	return FieldUnusable
}

func removeUnusable(s []*UnusableField, pos Coordinate) []*UnusableField {
	for i, f := range s {
		if f.Pos == pos {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func removeBuildable(s []*BuildableField, pos Coordinate) []*BuildableField {
	for i, f := range s {
		if f.Pos == pos {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

func removeMineable(s []*MineableField, pos Coordinate) []*MineableField {
	for i, f := range s {
		if f.Pos == pos {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// promoteToBuildable moves pos from the unusable queue into the buildable
// one, called when a sweep discovers a build-cap upgrade.
func (fi *FieldIndex) promoteToBuildable(pos Coordinate) *BuildableField {
	delete(fi.unusableAt, pos)
	fi.unusable = removeUnusable(fi.unusable, pos)
	f := newBuildableField(pos)
	fi.buildable = append(fi.buildable, f)
	fi.buildableAt[pos] = f
	return f
}

func (fi *FieldIndex) promoteToMineable(pos Coordinate) *MineableField {
	delete(fi.unusableAt, pos)
	fi.unusable = removeUnusable(fi.unusable, pos)
	f := newMineableField(pos)
	fi.mineable = append(fi.mineable, f)
	fi.mineableAt[pos] = f
	return f
}

func (fi *FieldIndex) demoteToUnusable(pos Coordinate, from FieldClass) {
	switch from {
	case FieldBuildable:
		delete(fi.buildableAt, pos)
		fi.buildable = removeBuildable(fi.buildable, pos)
	case FieldMineable:
		delete(fi.mineableAt, pos)
		fi.mineable = removeMineable(fi.mineable, pos)
	}
	fi.unusable = append(fi.unusable, &UnusableField{Pos: pos})
	fi.unusableAt[pos] = struct{}{}
}

// SweepUnusable checks up to a batch's worth of unusable fields for a
// build-cap upgrade, promoting any that became buildable or mineable.
func (fi *FieldIndex) SweepUnusable(nowMS int64) int {
	cfg := tune().fieldIndex()
	return fi.rotateUnusable(cfg.UnusableSweepBatch, nowMS)
}

func (fi *FieldIndex) rotateUnusable(batch int, nowMS int64) int {
	total := len(fi.unusable)
	processed := 0
	for i := 0; i < total && i < batch; i++ {
		f := fi.unusable[0]
		fi.unusable = fi.unusable[1:]
		if processed < batch {
			if _, stillOwned := fi.unusableAt[f.Pos]; stillOwned {
				tile, ok := fi.host.Map.TileAt(f.Pos)
				if ok && tile.OwnerID == fi.playerID {
					switch classify(tile) {
					case FieldBuildable:
						fi.promoteToBuildable(f.Pos)
						processed++
						continue
					case FieldMineable:
						fi.promoteToMineable(f.Pos)
						processed++
						continue
					}
				} else if !ok || tile.OwnerID != fi.playerID {
					delete(fi.unusableAt, f.Pos)
					processed++
					continue
				}
			}
			processed++
		}
		fi.unusable = append(fi.unusable, f)
		fi.unusableAt[f.Pos] = struct{}{}
	}
	return processed
}

// SweepBuildable refreshes the feature vector of up to a batch's worth of
// buildable fields whose NextUpdateDueMS has elapsed.
func (fi *FieldIndex) SweepBuildable(nowMS int64) int {
	cfg := tune().fieldIndex()
	total := len(fi.buildable)
	processed := 0
	for i := 0; i < total && i < cfg.BuildableSweepBatch; i++ {
		f := fi.buildable[0]
		fi.buildable = fi.buildable[1:]
		if processed < cfg.BuildableSweepBatch && f.NextUpdateDueMS <= nowMS {
			if fi.refreshBuildableField(f, nowMS) {
				processed++
				continue // demoted, do not re-enqueue here
			}
			processed++
		}
		fi.buildable = append(fi.buildable, f)
	}
	return processed
}

// refreshBuildableField recomputes f's feature vector in place. It returns
// true if the field was demoted to unusable during the refresh (and must
// not be re-appended to the buildable queue by the caller).
func (fi *FieldIndex) refreshBuildableField(f *BuildableField, nowMS int64) bool {
	cfg := tune().fieldIndex()
	tile, ok := fi.host.Map.TileAt(f.Pos)
	if !ok || tile.OwnerID != fi.playerID || !tile.BuildCap.Has(BuildCapSmall) {
		delete(fi.buildableAt, f.Pos)
		if tile.BuildCap.Has(BuildCapMine) && ok && tile.OwnerID == fi.playerID {
			fi.promoteToMineable(f.Pos)
		} else {
			fi.unusable = append(fi.unusable, &UnusableField{Pos: f.Pos})
			fi.unusableAt[f.Pos] = struct{}{}
		}
		return true
	}

	if f.WaterNearby == -1 || f.slowScanCountdown <= 0 {
		fi.scanWaterFishStones(f, cfg)
		f.slowScanCountdown = cfg.SlowScanInterval
	} else {
		f.slowScanCountdown--
	}

	fi.scanTreesAndCritters(f, cfg)
	fi.scanUnownedNeighborhood(f, cfg)
	fi.scanEconomyNeighborhood(f)
	fi.scanMilitaryNeighborhood(f, cfg, nowMS)
	fi.scanPreferred(f)

	f.NextUpdateDueMS = nowMS + int64(tune().schedulerIntervals().BuildableFieldIntervalMS)
	return false
}

// resourceFieldRadius is the fixed working radius used for tree/stone
// counting, independent of the configurable water/fish/critter radii: a
// worker can only reach so far from its building regardless of how
// aggressively the AI rescans water or fish.
const resourceFieldRadius = 4

// scanWaterFishStones recomputes the features that change rarely enough to
// be worth gating behind SlowScanInterval: standing water, fish schools,
// stones, and ground-water percentage. Every count uses the -1 sentinel's
// replacement value only here; elsewhere in the sweep these fields are read,
// never reassigned.
func (fi *FieldIndex) scanWaterFishStones(f *BuildableField, cfg AIFieldIndexConfig) {
	m := fi.host.Map
	water := cfg.WaterRadius

	waterTiles := m.FindFields(f.Pos, water, func(t TileInfo) bool { return t.Resource > 0 && t.Immovable == nil })
	f.WaterNearby = len(waterTiles)
	distant := 0
	for _, c := range waterTiles {
		if m.Distance(f.Pos, c) > water/2 {
			distant++
		}
	}
	f.DistantWater = distant

	fishSchools := m.FindBobs(f.Pos, cfg.FishRadius, func(b Bob) bool { return b.Kind == "fish" })
	f.FishNearby = len(fishSchools)

	stoneTiles := m.FindImmovables(f.Pos, resourceFieldRadius)
	stones := 0
	for _, c := range stoneTiles {
		tile, ok := m.TileAt(c)
		if ok && tile.Immovable != nil && tile.Immovable.Kind == ImmovableStone {
			stones++
		}
	}
	f.StonesNearby = stones

	if tile, ok := m.TileAt(f.Pos); ok {
		f.GroundWater = tile.Resource
	}
}

// scanTreesAndCritters recomputes the fast-changing harvestable counts: this
// runs every refresh, unlike the slow-gated water/fish/stone scan, since
// trees get felled and critters wander on the scale of a single sweep.
func (fi *FieldIndex) scanTreesAndCritters(f *BuildableField, cfg AIFieldIndexConfig) {
	m := fi.host.Map

	treeTiles := m.FindImmovables(f.Pos, resourceFieldRadius)
	trees := 0
	for _, c := range treeTiles {
		tile, ok := m.TileAt(c)
		if ok && tile.Immovable != nil && tile.Immovable.Kind == ImmovableTree {
			trees++
		}
	}
	f.TreesNearby = trees

	critters := m.FindBobs(f.Pos, cfg.CritterRadius, func(b Bob) bool { return b.Kind == "critter" })
	f.CrittersNearby = len(critters)
}

// scanUnownedNeighborhood counts unowned land and weighs unowned mine
// potential, mirroring update_buildable_field's close/distant split: a
// mine site just outside the border is worth more than one deep in
// no-man's-land, since claiming it is imminent rather than speculative.
func (fi *FieldIndex) scanUnownedNeighborhood(f *BuildableField, cfg AIFieldIndexConfig) {
	m := fi.host.Map
	radius := cfg.BorderRadius

	unowned := m.FindFields(f.Pos, radius, func(t TileInfo) bool { return t.OwnerID != fi.playerID })
	f.UnownedLandNearby = len(unowned)

	near, distant := 0, 0
	mineTiles := m.FindFields(f.Pos, radius*2, func(t TileInfo) bool {
		return t.OwnerID != fi.playerID && t.BuildCap.Has(BuildCapMine)
	})
	for _, c := range mineTiles {
		if m.Distance(f.Pos, c) <= radius {
			near++
		} else {
			distant++
		}
	}
	weight := 3*near + distant/2
	if distant > 0 {
		weight += 15
	}
	f.UnownedMinesPotentialNearby = weight

	f.NearBorder = false
	for _, n := range m.Neighbors(f.Pos) {
		tile, ok := m.TileAt(n)
		if ok && tile.OwnerID != fi.playerID {
			f.NearBorder = true
			break
		}
	}
}

// scanEconomyNeighborhood tallies nearby producers/consumers per ware and
// how many space-consuming sites are already claiming the area, used by the
// construction planner's diminishing-returns scoring.
func (fi *FieldIndex) scanEconomyNeighborhood(f *BuildableField) {
	m := fi.host.Map
	sites := m.FindImmovables(f.Pos, resourceFieldRadius)

	for k := range f.ProducersNearby {
		delete(f.ProducersNearby, k)
	}
	for k := range f.ConsumersNearby {
		delete(f.ConsumersNearby, k)
	}
	f.SpaceConsumersNearby = 0

	for _, c := range sites {
		tile, ok := m.TileAt(c)
		if !ok || tile.Immovable == nil || tile.OwnerID != fi.playerID {
			continue
		}
		bo, ok := fi.obs.Building(tile.Immovable.Building)
		if !ok {
			continue
		}
		if bo.Hints.SpaceConsumer {
			f.SpaceConsumersNearby++
		}
		for _, w := range bo.Outputs {
			f.ProducersNearby[w]++
		}
		for _, w := range bo.Inputs {
			f.ConsumersNearby[w]++
		}
	}
}

// scanMilitaryNeighborhood recomputes the site's military footprint and
// loneliness: loneliness starts at 1000 (maximally lonely) and is pulled
// down toward 0 by every nearby friendly military site, scaled by how close
// it is relative to the configured military rescan radius.
func (fi *FieldIndex) scanMilitaryNeighborhood(f *BuildableField, cfg AIFieldIndexConfig, nowMS int64) {
	m := fi.host.Map
	radius := cfg.MilitaryRescanRadius

	f.MilitaryCapacity = 0
	f.MilitaryPresence = 0
	f.MilitaryStationed = 0
	f.MilitaryInConstructionNearby = 0
	f.MilitaryLoneliness = 1000
	f.EnemyNearby = false

	siteCoords := m.FindImmovables(f.Pos, radius)
	for _, c := range siteCoords {
		tile, ok := m.TileAt(c)
		if !ok || tile.Immovable == nil {
			continue
		}
		switch tile.Immovable.Kind {
		case ImmovableMilitarySite:
			if tile.Immovable.OwnerID == fi.playerID {
				bo, ok := fi.obs.Building(tile.Immovable.Building)
				if ok {
					f.MilitaryCapacity += bo.MaxSoldiers
				}
				f.MilitaryPresence++
				f.MilitaryStationed++
				dist := m.Distance(f.Pos, c)
				if dist > radius {
					dist = radius
				}
				f.MilitaryLoneliness = f.MilitaryLoneliness * dist / radius
			} else if fi.host.Player.IsHostileTo(tile.Immovable.OwnerID) {
				f.EnemyNearby = true
				f.EnemyLastSeenMS = nowMS
			}
		case ImmovableConstructionSite:
			if tile.Immovable.OwnerID == fi.playerID {
				bo, ok := fi.obs.Building(tile.Immovable.Building)
				if ok && bo.Type == BuildingMilitarySite {
					f.MilitaryInConstructionNearby++
				}
			}
		}
	}

	if !f.EnemyNearby {
		enemies := m.FindBobs(f.Pos, radius, func(b Bob) bool { return b.Kind == "soldier" })
		if len(enemies) > 0 {
			f.EnemyNearby = true
			f.EnemyLastSeenMS = nowMS
		}
	}
}

// scanPreferred flags a field whose south-east neighbor already has a flag
// or a flaggable road, a cheap bias toward extending existing flag chains
// instead of starting new, disconnected ones.
func (fi *FieldIndex) scanPreferred(f *BuildableField) {
	m := fi.host.Map
	neighbors := m.Neighbors(f.Pos)
	f.Preferred = false
	if len(neighbors) < 4 {
		return
	}
	se := neighbors[3] // N, NE, E, SE, SW, W ordering per MapView.Neighbors
	tile, ok := m.TileAt(se)
	if !ok || tile.Immovable == nil {
		return
	}
	if tile.Immovable.Kind == ImmovableFlag || tile.Immovable.Kind == ImmovableRoad {
		f.Preferred = true
	}
}

// SweepMineable refreshes up to a batch's worth of mineable fields whose
// NextUpdateDueMS has elapsed.
func (fi *FieldIndex) SweepMineable(nowMS int64) int {
	cfg := tune().fieldIndex()
	total := len(fi.mineable)
	processed := 0
	for i := 0; i < total && i < cfg.MineableSweepBatch; i++ {
		f := fi.mineable[0]
		fi.mineable = fi.mineable[1:]
		if processed < cfg.MineableSweepBatch && f.NextUpdateDueMS <= nowMS {
			if fi.refreshMineableField(f, nowMS) {
				processed++
				continue
			}
			processed++
		}
		fi.mineable = append(fi.mineable, f)
	}
	return processed
}

func (fi *FieldIndex) refreshMineableField(f *MineableField, nowMS int64) bool {
	m := fi.host.Map
	tile, ok := m.TileAt(f.Pos)
	if !ok || tile.OwnerID != fi.playerID || !tile.BuildCap.Has(BuildCapMine) {
		delete(fi.mineableAt, f.Pos)
		fi.unusable = append(fi.unusable, &UnusableField{Pos: f.Pos})
		fi.unusableAt[f.Pos] = struct{}{}
		return true
	}

	nearby := m.FindFields(f.Pos, resourceFieldRadius, func(t TileInfo) bool {
		return t.BuildCap.Has(BuildCapMine) && t.Resource > 0
	})
	f.MinesNearby = len(nearby)

	neighbors := m.Neighbors(f.Pos)
	f.Preferred = false
	if len(neighbors) >= 4 {
		se := neighbors[3]
		if t, ok := m.TileAt(se); ok && t.Immovable != nil &&
			(t.Immovable.Kind == ImmovableFlag || t.Immovable.Kind == ImmovableRoad) {
			f.Preferred = true
		}
	}

	f.NextUpdateDueMS = nowMS + int64(tune().schedulerIntervals().MineIntervalMS)
	return false
}
