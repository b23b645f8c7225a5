// Package fakehost is a small, deterministic in-memory stand-in for the
// simulation host the ai package depends on through ai.Host. It exists so
// ai's tests and cmd/ai_sim can drive an Engine without a real game running
// underneath it, the same role internal/testutil's fixtures play for the
// turn processor's tests.
package fakehost

import (
	"sort"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai"
)

// Tile is one square of the fake world.
type Tile struct {
	BuildCap     ai.BuildCap
	OwnerID      int
	Resource     int
	ResourceKind ai.ResourceID
	Immovable    *ai.Immovable
}

// World is the fake map: a plain rectangular grid with a six-offset
// square-grid adjacency table (N, NE, E, SE, SW, W; SE is the slot the
// preferred-flag check reads), no hex geometry.
type World struct {
	Width_, Height_ int
	tiles           map[ai.Coordinate]*Tile
	bobs            []ai.Bob
	nextSite        int
}

func NewWorld(width, height int) *World {
	w := &World{Width_: width, Height_: height, tiles: make(map[ai.Coordinate]*Tile)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := ai.Coordinate{X: x, Y: y}
			w.tiles[c] = &Tile{OwnerID: -1, BuildCap: ai.BuildCapSmall}
		}
	}
	return w
}

func (w *World) Set(c ai.Coordinate, t Tile) {
	cp := t
	w.tiles[c] = &cp
}

func (w *World) Get(c ai.Coordinate) *Tile { return w.tiles[c] }

func (w *World) AddBob(b ai.Bob) { w.bobs = append(w.bobs, b) }

// NextSiteID hands out deterministic, ever-increasing site/flag handles.
func (w *World) NextSiteID() int {
	w.nextSite++
	return w.nextSite
}

func (w *World) Width() int  { return w.Width_ }
func (w *World) Height() int { return w.Height_ }

func (w *World) TileAt(c ai.Coordinate) (ai.TileInfo, bool) {
	t, ok := w.tiles[c]
	if !ok {
		return ai.TileInfo{}, false
	}
	return ai.TileInfo{Pos: c, BuildCap: t.BuildCap, OwnerID: t.OwnerID, Resource: t.Resource, ResourceKind: t.ResourceKind, Immovable: t.Immovable}, true
}

var offsets = []ai.Coordinate{
	{X: 0, Y: -1}, // N
	{X: 1, Y: -1}, // NE
	{X: 1, Y: 0},  // E
	{X: 1, Y: 1},  // SE
	{X: -1, Y: 1}, // SW
	{X: -1, Y: 0}, // W
}

func (w *World) Neighbors(c ai.Coordinate) []ai.Coordinate {
	out := make([]ai.Coordinate, 0, 6)
	for _, o := range offsets {
		n := ai.Coordinate{X: c.X + o.X, Y: c.Y + o.Y}
		if n.X >= 0 && n.X < w.Width_ && n.Y >= 0 && n.Y < w.Height_ {
			out = append(out, n)
		}
	}
	return out
}

func (w *World) Distance(a, b ai.Coordinate) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func (w *World) FindFields(center ai.Coordinate, radius int, filter ai.FieldFilter) []ai.Coordinate {
	var out []ai.Coordinate
	for y := center.Y - radius; y <= center.Y+radius; y++ {
		for x := center.X - radius; x <= center.X+radius; x++ {
			c := ai.Coordinate{X: x, Y: y}
			t, ok := w.TileAt(c)
			if !ok || c == center {
				continue
			}
			if w.Distance(center, c) > radius {
				continue
			}
			if filter == nil || filter(t) {
				out = append(out, c)
			}
		}
	}
	sortCoords(out)
	return out
}

func (w *World) FindImmovables(center ai.Coordinate, radius int) []ai.Coordinate {
	return w.FindFields(center, radius, func(t ai.TileInfo) bool { return t.Immovable != nil })
}

func (w *World) FindBobs(center ai.Coordinate, radius int, filter ai.BobFilter) []ai.Bob {
	var out []ai.Bob
	for _, b := range w.bobs {
		if w.Distance(center, b.Pos) > radius {
			continue
		}
		if filter == nil || filter(b) {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) FindReachableFields(center ai.Coordinate, radius int, step ai.StepChecker, filter ai.FieldFilter) []ai.Coordinate {
	visited := map[ai.Coordinate]bool{center: true}
	queue := []ai.Coordinate{center}
	var out []ai.Coordinate
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if w.Distance(center, cur) >= radius {
			continue
		}
		for _, n := range w.Neighbors(cur) {
			if visited[n] {
				continue
			}
			if step != nil && !step(cur, n) {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
			if t, ok := w.TileAt(n); ok && (filter == nil || filter(t)) {
				out = append(out, n)
			}
		}
	}
	sortCoords(out)
	return out
}

func (w *World) FindPath(from, to ai.Coordinate, step ai.StepChecker) (ai.Path, bool) {
	type node struct {
		pos  ai.Coordinate
		path ai.Path
	}
	visited := map[ai.Coordinate]bool{from: true}
	queue := []node{{pos: from, path: ai.Path{from}}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.pos == to {
			return cur.path, true
		}
		for _, n := range w.Neighbors(cur.pos) {
			if visited[n] {
				continue
			}
			if step != nil && !step(cur.pos, n) {
				continue
			}
			visited[n] = true
			np := append(append(ai.Path{}, cur.path...), n)
			queue = append(queue, node{pos: n, path: np})
		}
	}
	return nil, false
}

func sortCoords(cs []ai.Coordinate) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Y != cs[j].Y {
			return cs[i].Y < cs[j].Y
		}
		return cs[i].X < cs[j].X
	})
}
