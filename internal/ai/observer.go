package ai

import "sort"

// BuildingObserver mirrors one row of the tribe's building descriptor table,
// plus the engine's running counters for that type. It is populated once
// during late initialization (mirrors defaultai.cc's late_initialization,
// which reads typeid(descr) once and caches a tagged BuildingObserver rather
// than doing runtime type checks on every tick).
type BuildingObserver struct {
	Name string
	ID   BuildingID
	Type BuildingType

	Hints       BuildingHints
	Size        BuildCap
	MaxSoldiers int
	VisionRange int

	Enhancement    BuildingID
	HasEnhancement bool

	Inputs  []WareID
	Outputs []WareID

	IsHunter bool
	IsFisher bool

	CntBuilt            int
	CntUnderConstruction int
	CntTarget           int
	Unoccupied          bool
	CurrentStatsPercent int
	StockLevel          int
	StockLevelTimeMS    int64

	ConstructionDecisionTimeMS int64
	LastDismantleTimeMS        int64
}

// NewBuildingObserver builds an observer from a static descriptor, tagging
// hunters/fishers the way the original identifies them: a production site
// whose sole output is "meat" is a hunter, whose sole output is "fish" is a
// fisher.
func NewBuildingObserver(d BuildingDescr, meatWare, fishWare WareID, hasMeat, hasFish bool) *BuildingObserver {
	bo := &BuildingObserver{
		Name:           d.Name,
		ID:             d.ID,
		Type:           d.Type,
		Hints:          d.Hints,
		Size:           d.Size,
		MaxSoldiers:    d.MaxSoldiers,
		VisionRange:    d.VisionRange,
		Enhancement:    d.Enhancement,
		HasEnhancement: d.HasEnhancement,
		Inputs:         append([]WareID(nil), d.Inputs...),
		Outputs:        append([]WareID(nil), d.Outputs...),
		CntTarget:      1,
		// Negative so a fresh game doesn't wait out a cooldown before its
		// very first construction or dismantle decision.
		ConstructionDecisionTimeMS: -60 * 60 * 1000,
		LastDismantleTimeMS:        -60 * 60 * 1000,
	}
	if d.Type == BuildingProductionSite && len(bo.Outputs) == 1 {
		if hasMeat && bo.Outputs[0] == meatWare {
			bo.IsHunter = true
		}
		if hasFish && bo.Outputs[0] == fishWare {
			bo.IsFisher = true
		}
	}
	return bo
}

// WareObserver tracks how many observed producers/consumers exist for a ware
// and the ware's static preciousness (demand tie-breaker).
type WareObserver struct {
	Producers    int
	Consumers    int
	Preciousness int
}

// EconomyObserver tracks one connected component of flags.
type EconomyObserver struct {
	ID                   EconomyID
	Flags                []FlagID
	FailedConnectionTries int
}

// SiteObserver is the engine's bookkeeping for one production or mine site.
type SiteObserver struct {
	Site            SiteID
	Building        BuildingID
	BuiltTimeMS     int64
	UnoccupiedTillMS int64
	StatsZero       bool
	NoResourcesCount int
}

// MilitarySiteObserver is the engine's bookkeeping for one military site.
type MilitarySiteObserver struct {
	Site          SiteID
	Building      BuildingID
	Pos           Coordinate
	Checks        int
	EnemiesNearby bool
}

// Observers is the registry of every per-type/per-instance observer the
// engine keeps, indexed for O(1) lookup by the handles the host hands back.
type Observers struct {
	buildings map[BuildingID]*BuildingObserver
	byName    map[string]*BuildingObserver
	wares     map[WareID]*WareObserver
	economies map[EconomyID]*EconomyObserver
	sites     map[SiteID]*SiteObserver
	msites    map[SiteID]*MilitarySiteObserver
}

// NewObservers builds the registry by reading the static descriptor table
// once, the Go analogue of defaultai.cc's late_initialization loop over
// tribe_->get_nrbuildings().
func NewObservers(desc Descriptors) *Observers {
	o := &Observers{
		buildings: make(map[BuildingID]*BuildingObserver),
		byName:    make(map[string]*BuildingObserver),
		wares:     make(map[WareID]*WareObserver),
		economies: make(map[EconomyID]*EconomyObserver),
		sites:     make(map[SiteID]*SiteObserver),
		msites:    make(map[SiteID]*MilitarySiteObserver),
	}

	meatWare, hasMeat := desc.WareByName("meat")
	fishWare, hasFish := desc.WareByName("fish")

	for _, bd := range desc.Buildings() {
		bo := NewBuildingObserver(bd, meatWare, fishWare, hasMeat, hasFish)
		o.buildings[bd.ID] = bo
		o.byName[bd.Name] = bo
	}

	return o
}

func (o *Observers) Building(id BuildingID) (*BuildingObserver, bool) {
	bo, ok := o.buildings[id]
	return bo, ok
}

func (o *Observers) BuildingByName(name string) (*BuildingObserver, bool) {
	bo, ok := o.byName[name]
	return bo, ok
}

// AllBuildings returns every building observer ordered by BuildingID. Go map
// iteration order is randomized per process, and the engine must produce the
// same scoring order on every call given identical state (spec §5: all
// tie-breaks are stable); sorting by the static, never-changing ID gives a
// deterministic order without needing a separate insertion-ordered slice.
func (o *Observers) AllBuildings() []*BuildingObserver {
	out := make([]*BuildingObserver, 0, len(o.buildings))
	for _, bo := range o.buildings {
		out = append(out, bo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (o *Observers) Ware(id WareID, preciousness int) *WareObserver {
	w, ok := o.wares[id]
	if !ok {
		w = &WareObserver{Preciousness: preciousness}
		o.wares[id] = w
	}
	return w
}

func (o *Observers) Economy(id EconomyID) *EconomyObserver {
	e, ok := o.economies[id]
	if !ok {
		e = &EconomyObserver{ID: id}
		o.economies[id] = e
	}
	return e
}

func (o *Observers) Site(id SiteID) (*SiteObserver, bool) {
	s, ok := o.sites[id]
	return s, ok
}

func (o *Observers) PutSite(s *SiteObserver) { o.sites[s.Site] = s }

func (o *Observers) DeleteSite(id SiteID) { delete(o.sites, id) }

func (o *Observers) MilitarySite(id SiteID) (*MilitarySiteObserver, bool) {
	s, ok := o.msites[id]
	return s, ok
}

func (o *Observers) PutMilitarySite(s *MilitarySiteObserver) { o.msites[s.Site] = s }

func (o *Observers) DeleteMilitarySite(id SiteID) { delete(o.msites, id) }

// AllSites returns every tracked production/mine site observer, ordered by
// SiteID for the same determinism reason as AllBuildings.
func (o *Observers) AllSites() []*SiteObserver {
	out := make([]*SiteObserver, 0, len(o.sites))
	for _, s := range o.sites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Site < out[j].Site })
	return out
}

// AllMilitarySites returns every tracked military site observer, ordered by
// SiteID for the same determinism reason as AllBuildings.
func (o *Observers) AllMilitarySites() []*MilitarySiteObserver {
	out := make([]*MilitarySiteObserver, 0, len(o.msites))
	for _, s := range o.msites {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Site < out[j].Site })
	return out
}
