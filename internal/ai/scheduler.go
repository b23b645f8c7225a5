package ai

// dueTimes holds the next-allowed-tick for each phase the scheduler
// dispatches, mirroring the next_*_due_ member variables of the design this
// implements. Every phase is independent: a phase being due doesn't block
// any other phase from also being due on the same call.
type dueTimes struct {
	buildableFieldMS int64
	roadMS           int64
	statsMS          int64
	constructionMS   int64
	productionSiteMS int64
	mineMS           int64
	mineConstructionMS int64
	militarySiteMS   int64
	attackMS         int64
	helperSiteMS     int64
}

// think is the scheduler's entry point, called once per tick. It walks its
// phases in a fixed priority order and returns as soon as one of them issues
// a command, the same short-circuit discipline as the original think(): a
// single call to Think does at most one piece of real work, so the engine
// never floods the command queue with a burst of simultaneous decisions.
func (e *Engine) think(nowMS int64) bool {
	si := tune().schedulerIntervals()

	e.fields.SweepUnusable(nowMS)

	if nowMS >= e.due.statsMS {
		e.due.statsMS = nowMS + int64(si.StatsIntervalMS)
		e.recalcRegime(nowMS)
		e.refreshStats(nowMS)
	}

	if nowMS >= e.due.buildableFieldMS {
		e.due.buildableFieldMS = nowMS + int64(si.BuildableFieldIntervalMS)
		e.fields.SweepBuildable(nowMS)
	}

	if nowMS >= e.due.mineMS {
		e.due.mineMS = nowMS + int64(si.MineIntervalMS)
		e.fields.SweepMineable(nowMS)
	}

	if nowMS >= e.due.mineConstructionMS {
		if e.planMineConstruction(nowMS) {
			e.due.mineConstructionMS = nowMS + int64(si.MineConstructionBusyMS)
			return true
		}
		e.due.mineConstructionMS = nowMS + int64(si.MineConstructionIdleMS)
	}

	if nowMS >= e.due.constructionMS {
		e.due.constructionMS = nowMS + int64(tune().construction().DecisionCooldownMS)
		if e.planConstruction(nowMS) {
			return true
		}
	}

	if nowMS >= e.due.productionSiteMS {
		e.due.productionSiteMS = nowMS + int64(si.ProductionSiteIntervalMS)
		if e.reviewProductionSites(nowMS) {
			return true
		}
	}

	if nowMS >= e.due.militarySiteMS {
		e.due.militarySiteMS = nowMS + int64(si.MilitarySiteIntervalMS)
		if e.reviewMilitarySites(nowMS) {
			return true
		}
	}

	if nowMS >= e.due.roadMS {
		e.due.roadMS = nowMS + int64(si.RoadIntervalMS)
		if e.improveRoads(nowMS) {
			return true
		}
	}

	if nowMS >= e.due.attackMS {
		if e.considerAttack(nowMS) {
			e.due.attackMS = nowMS + int64(si.AttackMinIntervalMS)
			return true
		}
		e.due.attackMS = nowMS + int64(si.AttackMaxIntervalMS)
	}

	if nowMS >= e.due.helperSiteMS {
		e.due.helperSiteMS = nowMS + int64(si.HelperSiteIntervalMS)
		if e.reviewHelperSites(nowMS) {
			return true
		}
	}

	return false
}

// refreshStats pulls the latest productivity percentage for every tracked
// site, the AI's cheap substitute for subscribing to a per-site stats
// stream: it costs one host call per tracked site on the stats cadence
// rather than a callback on every production cycle.
func (e *Engine) refreshStats(nowMS int64) {
	for _, so := range e.obs.AllSites() {
		pct := e.host.Stats.SiteStatisticsPercent(so.Site)
		so.StatsZero = pct == 0
		if bo, ok := e.obs.Building(so.Building); ok {
			bo.CurrentStatsPercent = pct
		}
	}
}
