package ai

// FieldClass is which of the three field indices a tile currently belongs to.
type FieldClass int

const (
	FieldUnusable FieldClass = iota
	FieldBuildable
	FieldMineable
)

// BuildableField holds the feature vector for one owned tile whose
// build-capability is at least Small. Every field starts with WaterNearby,
// FishNearby, StonesNearby and GroundWater at -1 ("never computed"), per
// a deliberate fix for the original's assignment-vs-equality bug:
// a slow-changing feature is only (re)computed when its sentinel is -1 or
// its periodic rescan tick comes due, and the comparison against that
// sentinel always uses ==.
type BuildableField struct {
	Pos Coordinate

	TreesNearby              int
	StonesNearby             int
	WaterNearby              int
	DistantWater             int
	FishNearby               int
	CrittersNearby           int
	UnownedLandNearby        int
	UnownedMinesPotentialNearby int
	NearBorder               bool
	GroundWater              int

	ProducersNearby map[WareID]int
	ConsumersNearby map[WareID]int
	SpaceConsumersNearby int

	MilitaryCapacity           int
	MilitaryPresence           int
	MilitaryStationed          int
	MilitaryInConstructionNearby int
	MilitaryLoneliness         int // 0..1000, 1000 = no friendly military nearby

	EnemyNearby     bool
	EnemyLastSeenMS int64

	Preferred bool // south-east neighbor already has a flag or flaggable road

	NextUpdateDueMS int64

	// slowScanCountdown gates the water/fish/stones/ground-water recompute:
	// it only runs every SlowScanInterval sweeps, decremented once per sweep
	// and reset from config.AIFieldIndexConfig.SlowScanInterval, independent
	// of the -1 sentinel which forces an immediate first computation.
	slowScanCountdown int
}

// newBuildableField creates a field with every slow-changing feature at its
// "never computed" sentinel.
func newBuildableField(pos Coordinate) *BuildableField {
	return &BuildableField{
		Pos:             pos,
		WaterNearby:     -1,
		FishNearby:      -1,
		StonesNearby:    -1,
		GroundWater:     -1,
		ProducersNearby: make(map[WareID]int),
		ConsumersNearby: make(map[WareID]int),
	}
}

// MineableField holds the feature vector for one owned tile whose
// build-capability is Mine.
type MineableField struct {
	Pos             Coordinate
	MinesNearby     int
	Preferred       bool
	NextUpdateDueMS int64
}

func newMineableField(pos Coordinate) *MineableField {
	return &MineableField{Pos: pos}
}

// UnusableField is any owned tile not (yet) classified as buildable or
// mineable. It carries no feature vector; the unusable sweep's only job is
// to detect a build-cap change and promote it.
type UnusableField struct {
	Pos Coordinate
}
