package ai

// considerAttack is the Attack Planner. It samples militarysites/6+1 of the
// player's own military sites, deterministically seeded off game time
// rather than any entropy source (per §9: "gametime + 3i mod
// militarysites.size()"), scans each sampled site's vision range for a
// hostile target, and commits to the single most favorable target found
// this consideration. Mirrors consider_attack: sample, size up every found
// target, attack only the best one that clears the odds.
func (e *Engine) considerAttack(nowMS int64) bool {
	cfg := tune().attack()

	sites := e.obs.AllMilitarySites()
	if len(sites) == 0 {
		return false
	}
	sampleCount := len(sites)/cfg.SitesSampledDivisor + 1

	var best *attackTarget
	for i := 0; i < sampleCount; i++ {
		idx := int((nowMS + int64(3*i)) % int64(len(sites)))
		mso := sites[idx]
		bo, ok := e.obs.Building(mso.Building)
		if !ok {
			continue
		}
		for _, t := range e.scanAttackTargets(mso, bo, cfg) {
			if best == nil || t.chance > best.chance {
				tCopy := t
				best = &tCopy
			}
		}
	}
	if best == nil {
		return false
	}
	return e.launchAttack(*best, cfg, nowMS)
}

// attackTarget is one hostile building the planner found within a sampled
// site's vision range, scored by its chance of a successful attack.
type attackTarget struct {
	flag        FlagID
	ownerID     int
	isWarehouse bool
	chance      int
}

// scanAttackTargets walks every immovable within the sampled site's vision
// range and scores the hostile, attackable ones. Military buildings are
// scored by found_attackers - present_defenders with a nearby-defender
// penalty proportional to defenders * defend-ready-nearby-enemies (§4.7);
// warehouses get a flat priority push instead, since they're assumed empty
// of soldiers and therefore always worth the risk once the opponent as a
// whole is attackable.
func (e *Engine) scanAttackTargets(mso *MilitarySiteObserver, bo *BuildingObserver, cfg AIAttackConfig) []attackTarget {
	m := e.host.Map
	var out []attackTarget
	for _, c := range m.FindImmovables(mso.Pos, bo.VisionRange) {
		tile, ok := m.TileAt(c)
		if !ok || tile.Immovable == nil {
			continue
		}
		if tile.OwnerID == e.playerID || tile.OwnerID < 0 || !e.host.Player.IsHostileTo(tile.OwnerID) {
			continue
		}
		if tile.Immovable.Kind != ImmovableMilitarySite && tile.Immovable.Kind != ImmovableWarehouse {
			continue
		}
		if !e.opponentRatioFavorable(tile.OwnerID, cfg) {
			continue
		}
		flag, ok := e.findAdjacentFlag(c, tile.OwnerID)
		if !ok {
			continue
		}

		if tile.Immovable.Kind == ImmovableWarehouse {
			out = append(out, attackTarget{
				flag: flag, ownerID: tile.OwnerID, isWarehouse: true,
				chance: cfg.MinChance * cfg.WarehousePriorityMultiplier,
			})
			continue
		}

		foundAttackers := e.host.Player.FindAttackSoldiers(flag)
		if foundAttackers <= 0 {
			continue
		}
		presentDefenders := 0
		if targetBo, ok := e.obs.Building(tile.Immovable.Building); ok {
			presentDefenders = targetBo.MaxSoldiers / 2
		}
		nearbyDefenders := e.countNearbyDefendReady(c, tile.OwnerID, cfg.DefenderScanRadius)
		penalty := presentDefenders * nearbyDefenders
		chance := foundAttackers - presentDefenders - penalty
		if chance < cfg.MinChance {
			continue
		}
		out = append(out, attackTarget{flag: flag, ownerID: tile.OwnerID, chance: chance})
	}
	return out
}

// countNearbyDefendReady counts the target owner's other military buildings
// within radius of pos: reinforcements that could rush to the target's
// defense, and the basis of the nearby-defender penalty.
func (e *Engine) countNearbyDefendReady(pos Coordinate, ownerID int, radius int) int {
	m := e.host.Map
	count := 0
	for _, c := range m.FindImmovables(pos, radius) {
		tile, ok := m.TileAt(c)
		if !ok || tile.Immovable == nil || tile.Immovable.Kind != ImmovableMilitarySite {
			continue
		}
		if tile.OwnerID == ownerID {
			count++
		}
	}
	return count
}

// findAdjacentFlag looks for the flag serving a building at pos: the flag
// tile immediately adjacent to it, owned by the same player as the
// building. enemy_flag_action targets a flag, not a building, so every
// scored target needs one before it can be attacked.
func (e *Engine) findAdjacentFlag(pos Coordinate, ownerID int) (FlagID, bool) {
	m := e.host.Map
	for _, c := range m.Neighbors(pos) {
		tile, ok := m.TileAt(c)
		if !ok || tile.Immovable == nil || tile.Immovable.Kind != ImmovableFlag {
			continue
		}
		if tile.OwnerID == ownerID {
			return FlagID(tile.Immovable.Site), true
		}
	}
	return 0, false
}

// opponentRatioFavorable is the top-level attackability test: own military
// strength times 100 divided by the opponent's, compared strictly greater
// than the regime's current personality threshold. A missing strength
// sample is treated as not-attackable (§7's "missing statistics" row); a
// reported-zero opponent strength is always attackable rather than dividing
// by zero; an exactly-equal ratio is not attackable (§8's boundary case).
func (e *Engine) opponentRatioFavorable(ownerID int, cfg AIAttackConfig) bool {
	sample := e.host.Stats.MilitaryStrength(ownerID)
	if !sample.OK {
		return false
	}
	if sample.Value == 0 {
		return true
	}
	threshold := cfg.NormalThresholdPct
	if e.regime.expansionMode == expansionPushExpansion {
		threshold = cfg.AggressiveThresholdPct
	} else if e.regime.resourceNecessityTerritory < 10 {
		threshold = cfg.DefensiveThresholdPct
	}
	own := e.host.Stats.MilitaryStrength(e.playerID).Value
	ratio := own * 100 / sample.Value
	return ratio > threshold
}

// launchAttack commits to the chosen target: it pulls whatever attack
// soldiers are available at the target's flag and issues enemy_flag_action.
// Warehouse targets get their soldier count doubled rather than the ratio,
// since the target itself is assumed empty and capturing it needs less
// force to justify the risk, not more force available.
func (e *Engine) launchAttack(target attackTarget, cfg AIAttackConfig, nowMS int64) bool {
	available := e.host.Player.FindAttackSoldiers(target.flag)
	if available <= 0 {
		return false
	}
	if target.isWarehouse {
		available *= cfg.WarehousePriorityMultiplier
	}

	e.host.Commands.EnemyFlagAction(target.flag, e.playerID, available)
	decisionID := e.trace.Record("attack", nowMS, "")
	e.logger.Info().
		Int("target_owner", target.ownerID).
		Int("soldiers", available).
		Bool("warehouse", target.isWarehouse).
		Int("chance", target.chance).
		Str("decision_id", decisionID).
		Msg("attack planner launched an attack")
	return true
}
