package fakehost

import (
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai"
)

// Player is a minimal ai.PlayerView: one acting player ID, a fixed set of
// hostile player IDs, and an always-allowed building table unless told
// otherwise.
type Player struct {
	PlayerID      int
	Hostiles      map[int]bool
	Disallowed    map[ai.BuildingID]bool
	AttackSoldiers map[ai.FlagID]int
	World         *World
}

func NewPlayer(id int, w *World) *Player {
	return &Player{
		PlayerID:       id,
		Hostiles:       make(map[int]bool),
		Disallowed:     make(map[ai.BuildingID]bool),
		AttackSoldiers: make(map[ai.FlagID]int),
		World:          w,
	}
}

func (p *Player) ID() int { return p.PlayerID }

func (p *Player) IsHostileTo(other int) bool { return p.Hostiles[other] }

func (p *Player) GetBuildCaps(c ai.Coordinate) ai.BuildCap {
	t, ok := p.World.TileAt(c)
	if !ok {
		return ai.BuildCapNone
	}
	return t.BuildCap
}

func (p *Player) FindAttackSoldiers(flag ai.FlagID) int { return p.AttackSoldiers[flag] }

func (p *Player) BuildingTypeAllowed(id ai.BuildingID) bool { return !p.Disallowed[id] }

// Descriptors is a static, test-authored tribe descriptor table.
type Descriptors struct {
	byID     map[ai.BuildingID]ai.BuildingDescr
	byWare   map[ai.WareID]ai.WareDescr
	wareName map[string]ai.WareID
}

func NewDescriptors() *Descriptors {
	return &Descriptors{
		byID:     make(map[ai.BuildingID]ai.BuildingDescr),
		byWare:   make(map[ai.WareID]ai.WareDescr),
		wareName: make(map[string]ai.WareID),
	}
}

func (d *Descriptors) AddBuilding(bd ai.BuildingDescr) { d.byID[bd.ID] = bd }

func (d *Descriptors) AddWare(wd ai.WareDescr) {
	d.byWare[wd.ID] = wd
	d.wareName[wd.Name] = wd.ID
}

func (d *Descriptors) Buildings() []ai.BuildingDescr {
	out := make([]ai.BuildingDescr, 0, len(d.byID))
	for _, bd := range d.byID {
		out = append(out, bd)
	}
	return out
}

func (d *Descriptors) Building(id ai.BuildingID) (ai.BuildingDescr, bool) {
	bd, ok := d.byID[id]
	return bd, ok
}

func (d *Descriptors) Ware(id ai.WareID) (ai.WareDescr, bool) {
	wd, ok := d.byWare[id]
	return wd, ok
}

func (d *Descriptors) ResourceByName(name string) (ai.ResourceID, bool) { return 0, false }

func (d *Descriptors) WareByName(name string) (ai.WareID, bool) {
	id, ok := d.wareName[name]
	return id, ok
}

// Economies is a fake flag/road/economy graph the test builds up directly.
type Economies struct {
	flags     map[ai.FlagID]ai.FlagInfo
	roads     map[ai.RoadID]ai.RoadInfo
	economies map[ai.EconomyID]*economy
}

type economy struct {
	id           ai.EconomyID
	wares        map[ai.WareID]int
	flags        []ai.FlagID
	hasWarehouse bool
}

func (e *economy) ID() ai.EconomyID           { return e.id }
func (e *economy) HasWarehouse() bool         { return e.hasWarehouse }
func (e *economy) StockWare(w ai.WareID) int  { return e.wares[w] }
func (e *economy) NeedsWare(w ai.WareID) bool { return e.wares[w] == 0 }
func (e *economy) Flags() []ai.FlagID         { return e.flags }

func NewEconomies() *Economies {
	return &Economies{
		flags:     make(map[ai.FlagID]ai.FlagInfo),
		roads:     make(map[ai.RoadID]ai.RoadInfo),
		economies: make(map[ai.EconomyID]*economy),
	}
}

func (e *Economies) AddFlag(f ai.FlagInfo) { e.flags[f.ID] = f }
func (e *Economies) AddRoad(r ai.RoadInfo) { e.roads[r.ID] = r }

// AddEconomy registers an economy's flag membership and warehouse status.
// Economy(id) defaults to "not found" otherwise, which callers treat as "no
// warehouse-connection bookkeeping to do" rather than "has a warehouse".
func (e *Economies) AddEconomy(id ai.EconomyID, flags []ai.FlagID, hasWarehouse bool) {
	e.economies[id] = &economy{id: id, wares: make(map[ai.WareID]int), flags: flags, hasWarehouse: hasWarehouse}
}

func (e *Economies) Economy(id ai.EconomyID) (ai.Economy, bool) {
	econ, ok := e.economies[id]
	if !ok {
		return nil, false
	}
	return econ, true
}

func (e *Economies) Flag(id ai.FlagID) (ai.FlagInfo, bool) {
	f, ok := e.flags[id]
	return f, ok
}

func (e *Economies) Road(id ai.RoadID) (ai.RoadInfo, bool) {
	r, ok := e.roads[id]
	return r, ok
}

// Statistics is a fake per-player/per-site metrics surface the test fills
// in directly rather than deriving from simulated combat.
type Statistics struct {
	Strength map[int]ai.StrengthSample
	SitePct  map[ai.SiteID]int
}

func NewStatistics() *Statistics {
	return &Statistics{Strength: make(map[int]ai.StrengthSample), SitePct: make(map[ai.SiteID]int)}
}

func (s *Statistics) MilitaryStrength(playerID int) ai.StrengthSample { return s.Strength[playerID] }
func (s *Statistics) SiteStatisticsPercent(site ai.SiteID) int        { return s.SitePct[site] }

// Commands records every command the engine issues instead of acting on
// them, so a test can assert on exactly what was requested.
type Commands struct {
	Built    []BuildCmd
	Dismantled []ai.SiteID
	Bulldozed  []ai.Coordinate
	Flags      []ai.Coordinate
	Roads      []ai.Path
	Enhanced   []ai.SiteID
	Toggled    []ai.SiteID
	CapacityChanges []CapacityCmd
	Preferences     []PreferenceCmd
	Attacks         []AttackCmd
}

type BuildCmd struct {
	PlayerID int
	Pos      ai.Coordinate
	Building ai.BuildingID
}

type CapacityCmd struct {
	Site  ai.SiteID
	Delta int
}

type PreferenceCmd struct {
	Site ai.SiteID
	Pref ai.SoldierPreference
}

type AttackCmd struct {
	Flag     ai.FlagID
	Attacker int
	Count    int
}

func NewCommands() *Commands { return &Commands{} }

func (c *Commands) Build(playerID int, pos ai.Coordinate, bid ai.BuildingID) {
	c.Built = append(c.Built, BuildCmd{PlayerID: playerID, Pos: pos, Building: bid})
}
func (c *Commands) Dismantle(site ai.SiteID)      { c.Dismantled = append(c.Dismantled, site) }
func (c *Commands) Bulldoze(pos ai.Coordinate)    { c.Bulldozed = append(c.Bulldozed, pos) }
func (c *Commands) BuildFlag(playerID int, pos ai.Coordinate) {
	c.Flags = append(c.Flags, pos)
}
func (c *Commands) BuildRoad(playerID int, path ai.Path) { c.Roads = append(c.Roads, path) }
func (c *Commands) EnhanceBuilding(site ai.SiteID, bid ai.BuildingID) {
	c.Enhanced = append(c.Enhanced, site)
}
func (c *Commands) StartStopBuilding(site ai.SiteID) { c.Toggled = append(c.Toggled, site) }
func (c *Commands) ChangeSoldierCapacity(site ai.SiteID, delta int) {
	c.CapacityChanges = append(c.CapacityChanges, CapacityCmd{Site: site, Delta: delta})
}
func (c *Commands) SetSoldierPreference(site ai.SiteID, pref ai.SoldierPreference) {
	c.Preferences = append(c.Preferences, PreferenceCmd{Site: site, Pref: pref})
}
func (c *Commands) EnemyFlagAction(flag ai.FlagID, attacker int, count int) {
	c.Attacks = append(c.Attacks, AttackCmd{Flag: flag, Attacker: attacker, Count: count})
}

// NewHost assembles a ready-to-use ai.Host from fake pieces, the
// single entry point tests and cmd/ai_sim use to stand one up.
func NewHost(w *World, player *Player, desc *Descriptors, econ *Economies, stats *Statistics, cmds *Commands) *ai.Host {
	return &ai.Host{
		Map:         w,
		Player:      player,
		Descriptors: desc,
		Economies:   econ,
		Stats:       stats,
		Commands:    cmds,
	}
}
