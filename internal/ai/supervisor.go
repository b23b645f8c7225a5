package ai

// dismantleCooldownMS is the minimum gap between two dismantle decisions for
// the same building type, so a momentary stats dip doesn't tear down every
// instance of a kind back-to-back.
const dismantleCooldownMS = int64(30 * 1000)

// reviewProductionSites is the Site Supervisor's production-site pass: it
// looks for a building past its enhancement threshold and upgrades it, or a
// site that has been unproductive or starved of resources for too long and
// dismantles it, freeing the ground (and the workers) for a better use.
// Mines are reviewed here too, under their own starvation rules, rather than
// skipped: an ore vein running dry is exactly the kind of site this pass
// exists to catch. Mirrors check_productionsites / check_mines_ /
// out_of_resources_site.
func (e *Engine) reviewProductionSites(nowMS int64) bool {
	const maxNoResourcesStrikes = 3
	const idleBeforeDismantleMS = int64(10 * 60 * 1000)
	const mineNoResourcesDismantle = 12
	const mineStarvedUpgradeStrikes = 4

	for _, so := range e.obs.AllSites() {
		bo, ok := e.obs.Building(so.Building)
		if !ok {
			continue
		}

		if e.tryUpgrade(so, bo, nowMS) {
			return true
		}

		if nowMS-bo.LastDismantleTimeMS < dismantleCooldownMS {
			continue
		}

		if bo.Type == BuildingMine {
			if so.NoResourcesCount > mineNoResourcesDismantle {
				e.dismantleSite(so, bo, nowMS, "mine_exhausted")
				return true
			}
			if so.NoResourcesCount >= mineStarvedUpgradeStrikes && bo.StockLevel < 150 &&
				bo.HasEnhancement && e.host.Player.BuildingTypeAllowed(bo.Enhancement) {
				e.host.Commands.EnhanceBuilding(so.Site, bo.Enhancement)
				decisionID := e.trace.Record("site_review", nowMS, "mine_starved_upgrade")
				e.logger.Info().
					Str("building", bo.Name).
					Str("decision_id", decisionID).
					Msg("site supervisor upgraded a starved mine")
				return true
			}
			if so.StatsZero && nowMS-so.BuiltTimeMS > 6*60*1000 {
				e.dismantleSite(so, bo, nowMS, "mine_no_workers")
				return true
			}
			continue
		}

		if so.NoResourcesCount >= maxNoResourcesStrikes {
			e.dismantleSite(so, bo, nowMS, "out_of_resources")
			return true
		}
		if so.StatsZero && nowMS-so.BuiltTimeMS > idleBeforeDismantleMS {
			e.dismantleSite(so, bo, nowMS, "unproductive")
			return true
		}
	}
	return false
}

// tryUpgrade is the Upgrade rule: a building whose descriptor names an
// enhancement is offered it once it has more than one working copy, the
// enhancement isn't already under construction elsewhere, and either the
// enhanced type has never been built (force the first one) or the enhanced
// type is already comfortably outperforming this one.
func (e *Engine) tryUpgrade(so *SiteObserver, bo *BuildingObserver, nowMS int64) bool {
	if !bo.HasEnhancement {
		return false
	}
	if bo.CntBuilt-boolToInt(bo.Unoccupied) <= 1 {
		return false
	}
	if !e.host.Player.BuildingTypeAllowed(bo.Enhancement) {
		return false
	}
	enhanced, ok := e.obs.Building(bo.Enhancement)
	if !ok || enhanced.CntUnderConstruction > 0 {
		return false
	}
	forceFirst := enhanced.CntBuilt == 0
	outperforming := enhanced.CntBuilt > 0 && enhanced.CurrentStatsPercent-bo.CurrentStatsPercent > 20
	if !forceFirst && !outperforming {
		return false
	}

	e.host.Commands.EnhanceBuilding(so.Site, bo.Enhancement)
	decisionID := e.trace.Record("site_review", nowMS, "upgrade")
	e.logger.Info().
		Str("building", bo.Name).
		Str("enhancement", enhanced.Name).
		Str("decision_id", decisionID).
		Msg("site supervisor upgraded a production site")
	return true
}

func (e *Engine) dismantleSite(so *SiteObserver, bo *BuildingObserver, nowMS int64, reason string) {
	e.host.Commands.Dismantle(so.Site)
	bo.LastDismantleTimeMS = nowMS
	e.obs.DeleteSite(so.Site)
	decisionID := e.trace.Record("site_review", nowMS, reason)
	e.logger.Info().
		Str("building", bo.Name).
		Str("reason", reason).
		Str("decision_id", decisionID).
		Msg("site supervisor dismantled a production site")
}

// militaryDemolitionSignals is the minimum count of positive signals needed
// before a military site is torn down for being redundant.
const militaryDemolitionSignals = 4

// reviewMilitarySites is the Site Supervisor's military-site pass: when the
// field index has sighted an enemy around a site it raises the site's
// soldier capacity to MaxSoldiers and prefers heroes; otherwise it lowers
// capacity to one soldier and prefers rookies. Once a site's requested
// capacity change is zero and no enemy is in sight, it scores the site for
// demolition the same way the field index scores a construction candidate,
// tearing it down once enough signals agree it no longer earns its footprint.
func (e *Engine) reviewMilitarySites(nowMS int64) bool {
	for _, mso := range e.obs.AllMilitarySites() {
		bo, ok := e.obs.Building(mso.Building)
		if !ok {
			continue
		}
		f, tracked := e.nearestBuildableField(mso.Site)
		mso.Checks++

		wantHeroes := false
		wantCapacity := 1
		enemyNearby := false
		switch {
		case tracked && f.EnemyNearby:
			wantCapacity = bo.MaxSoldiers
			wantHeroes = true
			mso.EnemiesNearby = true
			enemyNearby = true
		case tracked && !f.EnemyNearby && mso.EnemiesNearby:
			mso.EnemiesNearby = false
		}

		if wantCapacity > bo.MaxSoldiers {
			wantCapacity = bo.MaxSoldiers
		}
		delta := wantCapacity - currentCapacityEstimate(bo)
		if delta != 0 {
			e.host.Commands.ChangeSoldierCapacity(mso.Site, delta)
			if wantHeroes {
				e.host.Commands.SetSoldierPreference(mso.Site, PreferHeroes)
			} else {
				e.host.Commands.SetSoldierPreference(mso.Site, PreferRookies)
			}
			decisionID := e.trace.Record("military_site", nowMS, bo.Name)
			e.logger.Debug().
				Str("building", bo.Name).
				Int("delta", delta).
				Str("decision_id", decisionID).
				Msg("site supervisor adjusted a military site's soldier capacity")
			return true
		}

		if enemyNearby {
			continue
		}
		view := e.militarySiteFieldView(mso, nowMS)
		if e.scoreMilitaryDemolition(view, bo) >= militaryDemolitionSignals {
			e.dismantleMilitarySite(mso, bo, nowMS)
			return true
		}
	}
	return false
}

// scoreMilitaryDemolition counts positive signals that this site is no
// longer worth keeping: it already has slack capacity, other friendly sites
// already cover the area (presence, low loneliness, stationed troops
// nearby), the area's total capacity outstrips what unowned/enemy pressure
// there justifies, and there's little unclaimed land left nearby to defend
// an approach to.
func (e *Engine) scoreMilitaryDemolition(f *BuildableField, bo *BuildingObserver) int {
	signals := 0
	if bo.MaxSoldiers-currentCapacityEstimate(bo) > 0 {
		signals++
	}
	if f.MilitaryPresence > 1 {
		signals++
	}
	if f.MilitaryLoneliness < 500 {
		signals++
	}
	if f.MilitaryStationed > 1 {
		signals++
	}
	if f.MilitaryCapacity > 2*bo.MaxSoldiers {
		signals++
	}
	if f.UnownedLandNearby < 3 {
		signals++
	}
	return signals
}

func (e *Engine) dismantleMilitarySite(mso *MilitarySiteObserver, bo *BuildingObserver, nowMS int64) {
	e.host.Commands.Dismantle(mso.Site)
	bo.LastDismantleTimeMS = nowMS
	e.obs.DeleteMilitarySite(mso.Site)
	decisionID := e.trace.Record("military_site", nowMS, "demolish")
	e.logger.Info().
		Str("building", bo.Name).
		Str("decision_id", decisionID).
		Msg("site supervisor demolished a redundant military site")
}

// militarySiteFieldView computes a buildable-field-style feature vector
// centered on a military site's own tile, reusing the field index's own
// unowned-land and military-neighborhood scans rather than duplicating
// them, since a built-over tile never lives in the buildable queue itself.
func (e *Engine) militarySiteFieldView(mso *MilitarySiteObserver, nowMS int64) *BuildableField {
	cfg := tune().fieldIndex()
	f := newBuildableField(mso.Pos)
	e.fields.scanUnownedNeighborhood(f, cfg)
	e.fields.scanMilitaryNeighborhood(f, cfg, nowMS)
	return f
}

// nearestBuildableField is the site supervisor's crude stand-in for "the
// field view at this military site's own position": the buildable-field
// queue only tracks open ground, not tiles a building already occupies, so
// this looks for any tracked field the field index has already flagged as
// carrying friendly military presence rather than resolving the site's
// exact coordinate.
func (e *Engine) nearestBuildableField(site SiteID) (*BuildableField, bool) {
	for _, f := range e.fields.buildable {
		if f.MilitaryStationed > 0 {
			return f, true
		}
	}
	return nil, false
}

// currentCapacityEstimate has no direct host query in the port surface to
// draw on, so it returns MaxSoldiers/2 for every site of the type; it does
// not track capacity changes requested on earlier ticks.
func currentCapacityEstimate(bo *BuildingObserver) int {
	return bo.MaxSoldiers / 2
}

// reviewHelperSites handles "helper" buildings the planner built to sustain
// another building's inputs (rangers replanting a lumberjack's trees, game
// keepers restocking a hunter's grounds): if the area they're meant to
// replenish has nothing left to do, stop the building instead of leaving it
// running for no effect.
func (e *Engine) reviewHelperSites(nowMS int64) bool {
	for _, so := range e.obs.AllSites() {
		bo, ok := e.obs.Building(so.Building)
		if !ok || !bo.Hints.PlantsTrees {
			continue
		}
		if so.StatsZero {
			e.host.Commands.StartStopBuilding(so.Site)
			so.StatsZero = false
			decisionID := e.trace.Record("helper_site", nowMS, bo.Name)
			e.logger.Debug().
				Str("building", bo.Name).
				Str("decision_id", decisionID).
				Msg("site supervisor toggled a helper site with nothing left to do")
			return true
		}
	}
	return false
}
