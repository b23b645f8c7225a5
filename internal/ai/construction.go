package ai

// candidate is one (field, building) pairing under consideration this
// construction tick, carrying the score that decided whether it won.
type candidate struct {
	field     *BuildableField
	mineField *MineableField
	building  *BuildingObserver
	score     int
}

// planConstruction is the construction planner: it scores every buildable
// field against every building type the player is currently allowed to
// build, and issues a Build command for the single best-scoring candidate
// pair. It mirrors construct_building's overall shape — gate first, score
// second, build the winner — while spreading the scoring rules themselves
// across the per-kind helpers below instead of one large branch.
func (e *Engine) planConstruction(nowMS int64) bool {
	cfg := tune().construction()
	var best *candidate

	for _, f := range e.fields.buildable {
		if e.blocked.IsBlocked(f.Pos, nowMS) {
			continue
		}
		for _, bo := range e.obs.AllBuildings() {
			if !e.host.Player.BuildingTypeAllowed(bo.ID) {
				continue
			}
			if !e.fieldFitsBuilding(f, bo) {
				continue
			}
			if !e.constructionGatesPass(bo, nowMS, cfg) {
				continue
			}
			// new_buildings_stop halts everything except the handful of
			// buildings whose own rule forces them regardless (a forced
			// production site past its forced_after time, or the very
			// first well/lumberjack a fresh economy needs).
			if e.regime.newBuildingsStop && !e.isForcedBuild(bo, nowMS) {
				continue
			}
			score := e.scoreCandidate(f, bo)
			if score <= 0 {
				continue
			}
			if best == nil || score > best.score {
				best = &candidate{field: f, building: bo, score: score}
			}
		}
	}

	if best == nil {
		return false
	}

	e.host.Commands.Build(e.playerID, best.field.Pos, best.building.ID)
	best.building.CntUnderConstruction++
	best.building.ConstructionDecisionTimeMS = nowMS

	if best.building.Hints.SpaceConsumer {
		e.blocked.BlockRing(best.field.Pos, cfg.SpaceConsumerBlockRings, nowMS+int64(cfg.SpaceConsumerBlockTTLMS), "space_consumer", e.host.Map)
	} else if best.building.Type == BuildingMilitarySite {
		e.blocked.BlockRing(best.field.Pos, cfg.MilitaryBlockRings, nowMS+int64(cfg.MilitaryBlockTTLMS), "military_site", e.host.Map)
	} else {
		e.blocked.Block(best.field.Pos, nowMS+int64(cfg.BlockedFieldTTLMS), "construction")
	}

	decisionID := e.trace.Record("construction", nowMS, best.building.Name)
	e.logger.Info().
		Str("building", best.building.Name).
		Int("pos_x", best.field.Pos.X).
		Int("pos_y", best.field.Pos.Y).
		Int("score", best.score).
		Str("decision_id", decisionID).
		Msg("construction planner issued build command")
	return true
}

// fieldFitsBuilding checks the building-independent fit between a tile and
// a building type: tile size and hint-driven resource requirements. The
// prohibited/forced time window is checked in constructionGatesPass, not here.
func (e *Engine) fieldFitsBuilding(f *BuildableField, bo *BuildingObserver) bool {
	if bo.Type == BuildingBoring || bo.Type == BuildingConstructionSite {
		return false
	}
	if bo.Type == BuildingMine {
		return false // mines are placed by the mine planner, not here
	}

	tile, ok := e.host.Map.TileAt(f.Pos)
	if !ok {
		return false
	}
	required := bo.Size
	if required == BuildCapNone {
		required = BuildCapSmall
	}
	if !tile.BuildCap.Has(required) {
		return false
	}

	if bo.Hints.NeedTrees && f.TreesNearby == 0 && !bo.Hints.PlantsTrees {
		return false
	}
	if bo.Hints.NeedStones && f.StonesNearby == 0 {
		return false
	}
	if bo.Hints.NeedWater && f.WaterNearby == 0 {
		return false
	}
	if bo.Hints.MinesWater && f.GroundWater <= 0 {
		return false
	}
	if bo.Hints.MountainConqueror && f.UnownedMinesPotentialNearby == 0 {
		return false
	}
	if bo.Hints.FightingType && !f.NearBorder && e.regime.expansionMode != expansionPushExpansion {
		return false
	}

	return true
}

// constructionGatesPass applies the timing and cap gates that are
// independent of any particular field: cooldown since the last decision for
// this building type, the prohibited/forced construction window, and
// whether the player has already reached its target count for this type.
func (e *Engine) constructionGatesPass(bo *BuildingObserver, nowMS int64, cfg AIConstructionConfig) bool {
	cooldown := int64(cfg.DecisionCooldownMS)
	if bo.Type == BuildingMilitarySite {
		cooldown = int64(cfg.MilitaryDecisionCooldownMS)
	}
	if nowMS-bo.ConstructionDecisionTimeMS < cooldown {
		return false
	}
	if bo.Hints.ProhibitedTillMS > 0 && nowMS < bo.Hints.ProhibitedTillMS {
		return false
	}
	if bo.CntBuilt+bo.CntUnderConstruction >= bo.CntTarget && bo.Hints.ForcedAfterMS == 0 {
		return false
	}
	if bo.Hints.ForcedAfterMS > 0 && nowMS >= bo.Hints.ForcedAfterMS {
		return e.checkSupply(bo)
	}
	if bo.Type == BuildingProductionSite {
		return e.calculateNeedForPs(bo)
	}
	return true
}

// checkSupply is the supplementary gate from the original's check_supply:
// even a "forced after" building shouldn't go up if none of its inputs can
// ever be supplied (no producer exists and none is buildable), since an
// unsuppliable site just sits idle and wastes the construction slot.
func (e *Engine) checkSupply(bo *BuildingObserver) bool {
	if len(bo.Inputs) == 0 {
		return true
	}
	for _, in := range bo.Inputs {
		if w := e.obs.Ware(in, 0); w.Producers > 0 {
			return true
		}
		for _, other := range e.obs.AllBuildings() {
			for _, out := range other.Outputs {
				if out == in {
					return true
				}
			}
		}
	}
	return false
}

// calculateNeedForPs is the supplementary gate from the original's
// calculate_need_for_ps: a production site's need shrinks once enough
// same-output producers are already built or under construction, so the
// planner doesn't stack ten lumberjacks when three already cover demand.
func (e *Engine) calculateNeedForPs(bo *BuildingObserver) bool {
	if len(bo.Outputs) == 0 {
		return true
	}
	existing := bo.CntBuilt + bo.CntUnderConstruction
	need := 1
	for _, out := range bo.Outputs {
		w := e.obs.Ware(out, 0)
		if w.Consumers > w.Producers {
			need++
		}
	}
	return existing < need
}

// isForcedBuild reports whether bo must go up even while new_buildings_stop
// is otherwise in effect: a production site whose forced_after window has
// elapsed, or the very first well or lumberjack an economy needs before it
// has anything else running.
func (e *Engine) isForcedBuild(bo *BuildingObserver, nowMS int64) bool {
	if bo.Hints.ForcedAfterMS > 0 && nowMS >= bo.Hints.ForcedAfterMS {
		return true
	}
	if bo.CntBuilt == 0 && (bo.Hints.MinesWater || (bo.Hints.NeedTrees && !bo.Hints.PlantsTrees)) {
		return true
	}
	return false
}

// kDefaultPrioBoost is the flat priority credit the original grants a
// building whose gate is satisfied but has no richer per-field signal to
// score with (a first-of-its-kind forced build, a recruitment slot).
const kDefaultPrioBoost = 12

// scoreCandidate is the multi-criteria priority score for one (field,
// building) pair. Higher is better; 0 or below means "don't build here".
// It dispatches to the per-kind scorer that matches this building's static
// hints, then applies the same three closing adjustments to every kind:
// a penalty for space consumers already crowding the field, a small bonus
// for a road-side ("preferred") field, and a penalty for wasting a tile
// bigger than the building actually needs.
func (e *Engine) scoreCandidate(f *BuildableField, bo *BuildingObserver) int {
	var score int
	switch {
	case bo.Hints.MinesWater:
		score = e.scoreWell(f, bo)
	case bo.Hints.PlantsTrees:
		score = e.scoreRanger(f, bo)
	case bo.Hints.NeedTrees:
		score = e.scoreLumberjack(f, bo)
	case bo.Hints.NeedStones:
		score = e.scoreQuarry(f, bo)
	case bo.IsHunter:
		score = e.scoreHunter(f, bo)
	case bo.IsFisher:
		score = e.scoreFisher(f, bo)
	case bo.Hints.HasProductionHint:
		score = e.scoreSupportingSite(f, bo)
	case bo.Hints.Recruitment:
		score = e.scoreRecruitmentSite(f, bo)
	case bo.Type == BuildingMilitarySite:
		score = e.scoreMilitarySite(f, bo)
	case bo.Type == BuildingWarehouse:
		score = e.scoreWarehouse(f, bo)
	case bo.Type == BuildingTrainingSite:
		score = e.scoreTrainingSite(f, bo)
	default:
		score = e.scoreGenericProductionSite(f, bo)
	}

	score -= f.SpaceConsumersNearby * 10
	if score <= 0 {
		return score
	}

	if f.Preferred {
		score++
	}
	tile, ok := e.host.Map.TileAt(f.Pos)
	if ok {
		if gap := buildCapRank(tile.BuildCap) - buildCapRank(requiredSize(bo)); gap > 0 {
			score -= 5 * gap
		}
	}

	return score
}

// requiredSize is the minimum tile size a building needs, defaulting to
// Small the same way fieldFitsBuilding does for buildings with no explicit
// size hint.
func requiredSize(bo *BuildingObserver) BuildCap {
	if bo.Size == BuildCapNone {
		return BuildCapSmall
	}
	return bo.Size
}

// buildCapRank orders the three buildable size classes so the "don't waste
// a big tile on a small hut" penalty can compare them numerically.
func buildCapRank(c BuildCap) int {
	switch {
	case c.Has(BuildCapBig):
		return 3
	case c.Has(BuildCapMedium):
		return 2
	case c.Has(BuildCapSmall):
		return 1
	default:
		return 0
	}
}

// outputNeeded reports whether any of bo's outputs is either not yet
// produced at all or has more consumers than producers, standing in for
// the original's check_ware_necessity across the whole output list.
func (e *Engine) outputNeeded(bo *BuildingObserver) bool {
	if len(bo.Outputs) == 0 {
		return true
	}
	for _, out := range bo.Outputs {
		w := e.obs.Ware(out, 0)
		if w.Producers == 0 || w.Consumers > w.Producers {
			return true
		}
	}
	return false
}

// scoreWell only considers ground water rich enough to be worth tapping;
// the very first well is forced, and a healthy stock caps further building.
func (e *Engine) scoreWell(f *BuildableField, bo *BuildingObserver) int {
	if f.GroundWater < 2 {
		return 0
	}
	if bo.CntBuilt == 0 {
		return e.recalcWithBorderRange(f, 200+f.GroundWater-2)
	}
	if e.regime.newBuildingsStop {
		return 0
	}
	if bo.StockLevel > 40 {
		return 0
	}
	return e.recalcWithBorderRange(f, f.GroundWater-2)
}

// scoreLumberjack forces the first two lumberjacks an economy needs, then
// scores further ones by local tree density against a target that grows
// with the size of the economy, penalized for redundancy and for a
// new_buildings_stop the forced-first exemption doesn't cover.
func (e *Engine) scoreLumberjack(f *BuildableField, bo *BuildingObserver) int {
	target := 3 + (e.regime.minesBuilt+e.regime.productionSites)/15
	existing := bo.CntBuilt + bo.CntUnderConstruction
	switch existing {
	case 0:
		return 500 + f.TreesNearby
	case 1:
		return 400 + f.TreesNearby
	}
	if f.TreesNearby < 2 {
		return 0
	}
	crowding := 0
	for _, out := range bo.Outputs {
		crowding = f.ProducersNearby[out]
	}
	if crowding > 1 {
		return 0
	}
	score := 0
	if existing < target {
		score = 75
	}
	stop := 0
	if e.regime.newBuildingsStop {
		stop = 1
	}
	score += 2*f.TreesNearby - 10 - crowding*5 - stop*15
	if f.NearBorder {
		score /= 2
	}
	return score
}

// scoreQuarry prioritizes by raw stone density: quarries are built wherever
// stone blocks expansion, independent of whether granite is currently
// needed. The first one is forced, an empty stock doubles urgency, and
// nearby same-output producers push the priority back down.
func (e *Engine) scoreQuarry(f *BuildableField, bo *BuildingObserver) int {
	if bo.CntUnderConstruction > 0 {
		return 0
	}
	score := f.StonesNearby
	if score <= 0 {
		return 0
	}
	if bo.CntBuilt == 0 {
		score += 150
	}
	if bo.StockLevel == 0 {
		score *= 2
	}
	for _, out := range bo.Outputs {
		score -= 50 * f.ProducersNearby[out]
	}
	if f.NearBorder {
		score /= 2
	}
	return score
}

// scoreHunter requires a decently populated hunting ground and backs off
// where another hunter already works the same critters.
func (e *Engine) scoreHunter(f *BuildableField, bo *BuildingObserver) int {
	if f.CrittersNearby < 5 {
		return 0
	}
	if e.regime.newBuildingsStop {
		return 0
	}
	crowding := 0
	for _, out := range bo.Outputs {
		crowding = f.ProducersNearby[out]
	}
	return f.CrittersNearby*2 - 8 - crowding*5
}

// scoreFisher requires the output to actually be wanted and enough nearby
// water, caps out once stock is comfortable, and never doubles up with an
// existing fisher on the same grounds.
func (e *Engine) scoreFisher(f *BuildableField, bo *BuildingObserver) int {
	if !e.outputNeeded(bo) {
		return 0
	}
	if bo.CntUnderConstruction+boolToInt(bo.Unoccupied) > 0 {
		return 0
	}
	if f.WaterNearby < 2 {
		return 0
	}
	if bo.StockLevel > 50 {
		return 0
	}
	for _, out := range bo.Outputs {
		if f.ProducersNearby[out] >= 1 {
			return 0
		}
	}
	stop := 0
	if e.regime.newBuildingsStop {
		stop = 1
	}
	return f.FishNearby - stop*15*bo.CntBuilt
}

// scoreRanger and the fish-breeder/game-keeper branch below both live under
// the "supporting site" hint (production_hint set): a helper building that
// only makes sense near the producer it's meant to sustain.
func (e *Engine) scoreRanger(f *BuildableField, bo *BuildingObserver) int {
	target := 2 + (e.regime.minesBuilt+e.regime.productionSites)/15
	existing := bo.CntBuilt + bo.CntUnderConstruction
	if f.TreesNearby > 25 && existing >= 1 {
		return 0
	}
	if existing > 2*target {
		return 0
	}
	if existing >= target && bo.StockLevel > 40 {
		return 0
	}

	score := 0
	if existing == 0 {
		score = 200
	}
	stop := 0
	if e.regime.newBuildingsStop {
		stop = 1
	}
	score += (30-f.TreesNearby)*2 + f.ProducersNearby[bo.Hints.ProductionHint]*5 - stop*15
	score -= f.SpaceConsumersNearby * 5
	return score
}

// scoreSupportingSite covers fish breeders and game keepers: buildings
// tagged with a production hint but not PlantsTrees, which only earn a
// priority near the producer they restock.
func (e *Engine) scoreSupportingSite(f *BuildableField, bo *BuildingObserver) int {
	if bo.Hints.PlantsTrees {
		return e.scoreRanger(f, bo)
	}
	if bo.CntUnderConstruction+boolToInt(bo.Unoccupied) > 1 {
		return 0
	}
	if e.regime.newBuildingsStop && bo.CntBuilt > 0 {
		return 0
	}
	if bo.Hints.NeedWater && f.WaterNearby < 2 {
		return 0
	}
	score := 0
	if bo.Hints.NeedWater {
		score += f.WaterNearby / 5
	}
	target := 1 + (e.regime.minesBuilt+e.regime.productionSites)/20
	if bo.CntBuilt > target {
		return 0
	}
	if bo.StockLevel > 50 {
		return 0
	}
	nearby := f.ProducersNearby[bo.Hints.ProductionHint]
	switch {
	case bo.CntBuilt == 0:
		score += 100 + nearby*10
	case nearby == 0:
		return 0
	default:
		score += nearby * 10
	}
	if f.EnemyNearby {
		score -= 10
	}
	return score
}

// scoreRecruitmentSite is built once per roughly 30 production+mine sites,
// the same pacing the recruitment gate uses for target counts elsewhere.
func (e *Engine) scoreRecruitmentSite(f *BuildableField, bo *BuildingObserver) int {
	if e.regime.newBuildingsStop {
		return 0
	}
	if bo.CntUnderConstruction != 0 {
		return 0
	}
	if (e.regime.productionSites+e.regime.minesBuilt)/30 <= bo.CntBuilt {
		return 0
	}
	return 4 + kDefaultPrioBoost
}

// scoreMilitarySite requires unclaimed land nearby, is gated entirely off
// in NoNewMilitary posture and off the border in DefenseOnly, avoids
// stacking construction unless an enemy justifies it, and otherwise weighs
// territory/mines/water necessity, leftover stone, and how lonely the spot
// already is. PushExpansion adds a flat boost so expansion never stalls
// completely, and a weakly-held site near a visible enemy gets a strong
// push to reinforce before it falls.
func (e *Engine) scoreMilitarySite(f *BuildableField, bo *BuildingObserver) int {
	if f.UnownedLandNearby == 0 {
		return 0
	}
	switch e.regime.expansionMode {
	case expansionNoNewMilitary:
		return 0
	case expansionDefenseOnly:
		if !f.NearBorder && !f.EnemyNearby {
			return 0
		}
	}
	if !f.EnemyNearby && f.MilitaryInConstructionNearby > 0 {
		return 0
	}

	r := &e.regime
	score := f.UnownedLandNearby*2*r.resourceNecessityTerritory/255 +
		f.UnownedMinesPotentialNearby*r.resourceNecessityMines/255 +
		f.StonesNearby/2 +
		f.MilitaryLoneliness/10 - 60 +
		f.WaterNearby*r.resourceNecessityWater/255

	if e.regime.expansionMode == expansionPushExpansion {
		score += 200
	}
	if f.EnemyNearby && f.MilitaryCapacity < 12 {
		score += 50 + (12-f.MilitaryCapacity)*20
	}
	return score
}

// recalcWithBorderRange is the supplementary scaling rule from the
// original's recalc_with_border_range: rather than a flat halving for every
// field not directly on the border, score falls off smoothly with distance
// from the nearest border tile, so a field two steps back from the frontier
// still outranks one deep in safe territory. Used by wells, since a well's
// own priority has no other border-sensitive term.
func (e *Engine) recalcWithBorderRange(f *BuildableField, prio int) int {
	if f.NearBorder {
		return prio
	}
	radius := tune().fieldIndex().BorderRadius
	if radius <= 0 {
		radius = 1
	}
	nearest := e.host.Map.FindFields(f.Pos, radius*3, func(t TileInfo) bool { return t.OwnerID != e.playerID })
	if len(nearest) == 0 {
		return prio / 2
	}
	minDist := radius * 3
	for _, c := range nearest {
		if d := e.host.Map.Distance(f.Pos, c); d < minDist {
			minDist = d
		}
	}
	falloff := 100 - (minDist*100)/(radius*3)
	if falloff < 10 {
		falloff = 10
	}
	return prio * falloff / 100
}

// scoreWarehouse excludes the border outright, spaces warehouses at
// roughly one per 35 production+mine sites via the same necessity ratio
// the mine/territory scores use, and is halved near an enemy or near
// unclaimed land rather than rewarded for it.
func (e *Engine) scoreWarehouse(f *BuildableField, bo *BuildingObserver) int {
	if f.NearBorder {
		return 0
	}
	if bo.CntUnderConstruction != 0 {
		return 0
	}
	necessity := scoreNecessity(e.regime.productionSites+e.regime.minesBuilt, bo.CntBuilt*35)
	if necessity == 0 {
		return 0
	}
	score := necessity / 5
	if f.EnemyNearby {
		score /= 2
	}
	if f.UnownedLandNearby > 0 {
		score /= 2
	}
	return score
}

// scoreTrainingSite excludes the border and is built once after 20
// production sites, then once every 50 thereafter.
func (e *Engine) scoreTrainingSite(f *BuildableField, bo *BuildingObserver) int {
	if f.NearBorder {
		return 0
	}
	if bo.CntUnderConstruction != 0 {
		return 0
	}
	if (e.regime.productionSites+30)/50 <= bo.CntBuilt {
		return 0
	}
	score := 4 + kDefaultPrioBoost
	if f.EnemyNearby {
		score /= 2
	}
	if f.UnownedLandNearby > 0 {
		score /= 2
	}
	return score
}

// scoreGenericProductionSite covers every ordinary production site with no
// special hint: forced first when its forced_after window has passed,
// otherwise gated on output need, scored by preciousness with clustering
// bonuses for space consumers and a penalty for crowding the same output.
func (e *Engine) scoreGenericProductionSite(f *BuildableField, bo *BuildingObserver) int {
	if bo.Hints.ProductionHint != 0 || bo.Hints.HasProductionHint {
		return 0
	}
	if bo.CntUnderConstruction+boolToInt(bo.Unoccupied) > 0 {
		return 0
	}

	maxNeededPreciousness := 0
	for _, out := range bo.Outputs {
		w := e.obs.Ware(out, 0)
		if w.Consumers > w.Producers && w.Preciousness > maxNeededPreciousness {
			maxNeededPreciousness = w.Preciousness
		}
	}

	score := 0
	switch {
	case bo.Hints.ForcedAfterMS > 0 && bo.CntBuilt == 0:
		score += 150
	case !e.outputNeeded(bo):
		return 0
	case e.regime.newBuildingsStop:
		return 0
	}

	if len(bo.Inputs) == 0 {
		score += maxNeededPreciousness + kDefaultPrioBoost
		if bo.Hints.SpaceConsumer {
			score += 20 - f.TreesNearby/3
			score += f.SpaceConsumersNearby * 2
			if f.WaterNearby == 0 {
				score++
			}
			if f.UnownedMinesPotentialNearby == 0 {
				score++
			}
		} else {
			for _, out := range bo.Outputs {
				score -= f.ProducersNearby[out] * 20
			}
		}
	} else {
		if bo.CntBuilt == 0 {
			score += maxNeededPreciousness + kDefaultPrioBoost
		}
		if bo.CntBuilt > 0 && bo.CurrentStatsPercent > 70 {
			score += maxNeededPreciousness + kDefaultPrioBoost - 3 + (bo.CurrentStatsPercent-70)/5
		}
	}

	if score <= 0 {
		return score
	}

	for _, out := range bo.Outputs {
		if f.ConsumersNearby[out] > 0 {
			score++
		}
	}
	return e.recalcWithBorderRange(f, score)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
