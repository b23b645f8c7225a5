package ai

import (
	"container/heap"
	"sort"
)

// sortedFlags returns every flag the engine tracks in ascending FlagID
// order. e.flags is a set (map[FlagID]struct{}); ranging over it directly
// would make the road optimizer's candidate order depend on Go's randomized
// map iteration instead of only on game state, breaking the stable
// tie-break the design requires (spec §5, §8 property 5).
func (e *Engine) sortedFlags() []FlagID {
	out := make([]FlagID, 0, len(e.flags))
	for id := range e.flags {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// improveRoads is the Road Optimizer. Each call does at most one of: split
// an overlong road by inserting a flag, bulldoze a dispensable road, or lay
// a shortcut between two flags that are far apart along the existing
// network but close as the crow flies. Mirrors improve_roads's overall
// shape of trying the cheap wins (dispensable_road_test) before the
// expensive one (create_shortcut_road).
func (e *Engine) improveRoads(nowMS int64) bool {
	cfg := tune().roads()

	for _, flagID := range e.sortedFlags() {
		fl, ok := e.host.Economies.Flag(flagID)
		if !ok {
			continue
		}
		if fl.CurrentWares >= cfg.BusyFlagWareThreshold {
			if e.createShortcutRoad(fl, cfg.BusyFlagShortcutRadius, cfg) {
				return true
			}
		}
	}

	for _, flagID := range e.sortedFlags() {
		fl, ok := e.host.Economies.Flag(flagID)
		if !ok {
			continue
		}
		for _, roadID := range fl.Roads {
			rd, ok := e.host.Economies.Road(roadID)
			if !ok {
				continue
			}
			if e.isDispensable(rd, cfg) {
				e.host.Commands.Bulldoze(midpoint(rd.Path))
				decisionID := e.trace.Record("road_bulldoze", nowMS, "")
				e.logger.Info().
					Str("decision_id", decisionID).
					Msg("road optimizer bulldozed a dispensable road")
				return true
			}
			if len(rd.Path) > cfg.OverlongPathSteps && len(e.fields.buildable) >= cfg.MinFreeSpotsToSplit {
				if e.splitOrBulldozeRoad(rd, nowMS) {
					return true
				}
			}
		}
	}

	for _, flagID := range e.sortedFlags() {
		fl, ok := e.host.Economies.Flag(flagID)
		if !ok {
			continue
		}
		if e.createShortcutRoad(fl, cfg.ShortcutRadius, cfg) {
			return true
		}
	}

	return false
}

// isDispensable mirrors dispensable_road_test: a road is dispensable when
// its own two flags remain connected through some other path (so removing
// it doesn't fragment the economy) and it isn't currently carrying enough
// ware traffic to justify the upkeep.
func (e *Engine) isDispensable(rd RoadInfo, cfg AIRoadsConfig) bool {
	if len(rd.Path) < 2 {
		return false
	}
	a, ok := e.host.Economies.Flag(rd.FlagA)
	if !ok {
		return false
	}
	b, ok := e.host.Economies.Flag(rd.FlagB)
	if !ok {
		return false
	}
	if a.CurrentWares+b.CurrentWares >= cfg.BusyFlagWareThreshold {
		return false
	}
	dist, ok := e.flagGraphDistance(a.ID, b.ID, map[RoadID]bool{rd.ID: true})
	return ok && dist < len(rd.Path)*3
}

func midpoint(path Path) Coordinate {
	if len(path) == 0 {
		return Coordinate{}
	}
	return path[len(path)/2]
}

// splitOrBulldozeRoad walks an overlong road's path from both ends inward
// looking for the first flag-capable tile and builds a flag there. If the
// whole path has no such spot, the road is bulldozed instead. Mirrors
// improve_roads's handling of a road that is too long to leave as-is.
func (e *Engine) splitOrBulldozeRoad(rd RoadInfo, nowMS int64) bool {
	m := e.host.Map
	for i, j := 1, len(rd.Path)-2; i <= j; i, j = i+1, j-1 {
		for _, idx := range [2]int{i, j} {
			c := rd.Path[idx]
			tile, ok := m.TileAt(c)
			if !ok || !(tile.BuildCap.Has(BuildCapFlag) || tile.BuildCap.Has(BuildCapSmall)) {
				continue
			}
			e.host.Commands.BuildFlag(e.playerID, c)
			decisionID := e.trace.Record("road_split", nowMS, "")
			e.logger.Info().
				Str("decision_id", decisionID).
				Msg("road optimizer split an overlong road")
			return true
		}
	}
	e.host.Commands.Bulldoze(midpoint(rd.Path))
	decisionID := e.trace.Record("road_split_bulldoze", nowMS, "")
	e.logger.Info().
		Str("decision_id", decisionID).
		Msg("road optimizer bulldozed an overlong road with no split point")
	return true
}

// createShortcutRoad looks for a flag within radius of center whose direct
// map distance is much smaller than its graph distance through the existing
// road network, and lays a straight road to it. Returns true if a road was
// built.
func (e *Engine) createShortcutRoad(center FlagInfo, radius int, cfg AIRoadsConfig) bool {
	m := e.host.Map
	near := m.FindFields(center.Pos, radius, func(t TileInfo) bool {
		return t.Immovable != nil && t.Immovable.Kind == ImmovableFlag && t.OwnerID == e.playerID
	})

	type pick struct {
		target Coordinate
		gain   int
	}
	var best *pick

	for _, c := range near {
		direct := m.Distance(center.Pos, c)
		if direct == 0 || direct > radius {
			continue
		}
		targetID := e.flagIDAt(c)
		if targetID < 0 {
			continue
		}
		graphDist, ok := e.flagGraphDistance(center.ID, targetID, nil)
		if !ok {
			continue
		}
		gain := graphDist - direct
		if gain < cfg.ShortcutMinReduction {
			continue
		}
		if best == nil || gain > best.gain {
			best = &pick{target: c, gain: gain}
		}
	}

	if best == nil {
		e.trackFailedConnection(center, cfg)
		return false
	}
	path, ok := m.FindPath(center.Pos, best.target, func(from, to Coordinate) bool {
		t, ok := m.TileAt(to)
		return ok && (t.OwnerID == e.playerID || t.OwnerID == -1)
	})
	if !ok {
		e.trackFailedConnection(center, cfg)
		return false
	}
	e.host.Commands.BuildRoad(e.playerID, path)
	decisionID := e.trace.Record("road_shortcut", e.nowMS, "")
	e.logger.Info().
		Int("gain", best.gain).
		Str("decision_id", decisionID).
		Msg("road optimizer built a shortcut road")
	if eo, ok := e.host.Economies.Economy(center.EconomyID); ok && !eo.HasWarehouse() {
		e.obs.Economy(center.EconomyID).FailedConnectionTries = 0
	}
	return true
}

// trackFailedConnection mirrors create_shortcut_road's failed_connection_tries
// bookkeeping: a flag whose economy has no warehouse and keeps failing to
// find a shortcut eventually gets given up on, bulldozed, and its tile
// blocked for a while so construction doesn't immediately retry it.
func (e *Engine) trackFailedConnection(center FlagInfo, cfg AIRoadsConfig) {
	econ, ok := e.host.Economies.Economy(center.EconomyID)
	if !ok || econ.HasWarehouse() {
		return
	}
	eo := e.obs.Economy(center.EconomyID)
	eo.FailedConnectionTries++
	flags := len(econ.Flags())
	if eo.FailedConnectionTries <= 3+flags*flags {
		return
	}
	e.host.Commands.Bulldoze(center.Pos)
	e.blocked.Block(center.Pos, e.nowMS+int64(cfg.OrphanBlockTTLMS), "stranded_economy")
	eo.FailedConnectionTries = 0
	decisionID := e.trace.Record("road_stranded_bulldoze", e.nowMS, "")
	e.logger.Info().
		Int("economy", int(center.EconomyID)).
		Str("decision_id", decisionID).
		Msg("road optimizer gave up on a stranded flag with no warehouse connection")
}

func (e *Engine) flagIDAt(c Coordinate) FlagID {
	for id := range e.flags {
		fl, ok := e.host.Economies.Flag(id)
		if ok && fl.Pos == c {
			return id
		}
	}
	return -1
}

// flagGraphDistance runs a Dijkstra-style priority-queue walk over the flag
// graph (edge weight = road path length) to find the shortest existing
// route between two flags, optionally excluding a set of roads (used by
// isDispensable to ask "how far apart would these two flags be without this
// road").
func (e *Engine) flagGraphDistance(from, to FlagID, exclude map[RoadID]bool) (int, bool) {
	dist := map[FlagID]int{from: 0}
	pq := &flagHeap{{flag: from, dist: 0}}
	heap.Init(pq)
	visited := map[FlagID]bool{}

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(flagDist)
		if visited[cur.flag] {
			continue
		}
		visited[cur.flag] = true
		if cur.flag == to {
			return cur.dist, true
		}
		fl, ok := e.host.Economies.Flag(cur.flag)
		if !ok {
			continue
		}
		for _, roadID := range fl.Roads {
			if exclude[roadID] {
				continue
			}
			rd, ok := e.host.Economies.Road(roadID)
			if !ok {
				continue
			}
			other := rd.FlagB
			if other == cur.flag {
				other = rd.FlagA
			}
			if visited[other] {
				continue
			}
			weight := len(rd.Path)
			if weight == 0 {
				weight = 1
			}
			nd := cur.dist + weight
			if best, seen := dist[other]; !seen || nd < best {
				dist[other] = nd
				heap.Push(pq, flagDist{flag: other, dist: nd})
			}
		}
	}
	return 0, false
}

type flagDist struct {
	flag FlagID
	dist int
}

type flagHeap []flagDist

func (h flagHeap) Len() int            { return len(h) }
func (h flagHeap) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h flagHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *flagHeap) Push(x interface{}) { *h = append(*h, x.(flagDist)) }
func (h *flagHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
