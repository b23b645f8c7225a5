package ai

// planMineConstruction is the Mine Planner: it chooses the best-scoring
// mineable field for the mine building whose resource hint matches that
// field's deposit, and issues a Build command. Unlike planConstruction, it
// runs on an adaptive busy/idle cadence: after a successful build it checks
// again soon (busy), and after a tick with nothing to do it backs off
// (idle), the way the design's mine_construction_busy/idle intervals are
// meant to be used.
func (e *Engine) planMineConstruction(nowMS int64) bool {
	if e.regime.newBuildingsStop {
		return false
	}
	cfg := tune().construction()

	var best *candidate
	for _, f := range e.fields.mineable {
		if e.blocked.IsBlocked(f.Pos, nowMS) {
			continue
		}
		for _, bo := range e.obs.AllBuildings() {
			if bo.Type != BuildingMine {
				continue
			}
			if !bo.Hints.HasMines {
				continue
			}
			if !e.host.Player.BuildingTypeAllowed(bo.ID) {
				continue
			}
			if !e.constructionGatesPass(bo, nowMS, cfg) {
				continue
			}
			score := e.scoreMineCandidate(f, bo)
			if score < 2 {
				continue
			}
			if best == nil || score > best.score {
				best = &candidate{field: nil, building: bo, score: score}
				best.mineField = f
			}
		}
	}

	if best == nil {
		return false
	}

	e.host.Commands.Build(e.playerID, best.mineField.Pos, best.building.ID)
	best.building.CntUnderConstruction++
	best.building.ConstructionDecisionTimeMS = nowMS
	e.blocked.Block(best.mineField.Pos, nowMS+int64(cfg.BlockedFieldTTLMS), "mine_construction")

	decisionID := e.trace.Record("mine_construction", nowMS, best.building.Name)
	e.logger.Info().
		Str("building", best.building.Name).
		Int("pos_x", best.mineField.Pos.X).
		Int("pos_y", best.mineField.Pos.Y).
		Int("score", best.score).
		Str("decision_id", decisionID).
		Msg("mine planner issued build command")
	return true
}

// scoreMineCandidate requires the tile's underlying deposit to match the
// resource bo actually mines, then weighs remaining resource amount against
// crowding from other mines already competing for the same deposit type. A
// tile with no such mine built yet pays no crowding penalty at all; once one
// exists nearby, further ones compete for the same finite resource.
func (e *Engine) scoreMineCandidate(f *MineableField, bo *BuildingObserver) int {
	if !bo.Hints.HasMines {
		return 0
	}
	tile, ok := e.host.Map.TileAt(f.Pos)
	if !ok || tile.ResourceKind != bo.Hints.Mines {
		return 0
	}

	penalty := 0
	if bo.CntBuilt > 0 {
		penalty = 10
	}
	score := tile.Resource - f.MinesNearby*penalty
	if f.Preferred {
		score++
	}
	return score
}
