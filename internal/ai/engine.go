package ai

import (
	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/game/events"
)

// Engine is the computer opponent's decision engine for one player. It owns
// no simulation state of its own beyond what it has observed through Host
// and the event bus: everything it decides is derived from the field index,
// the observer registry, and the strategic regime recomputed each tick.
type Engine struct {
	host     *Host
	bus      *events.EventBus
	playerID int
	gameID   string
	logger   zerolog.Logger

	fields  *FieldIndex
	obs     *Observers
	blocked *BlockedFieldSet
	regime  regime

	// flags is every flag the engine has observed itself owning, keyed by
	// the host's FlagID. The road optimizer walks this set rather than
	// asking the host to enumerate every flag on the map.
	flags map[FlagID]struct{}

	due dueTimes

	nowMS int64

	hooks *Hooks
	trace *Tracer
}

// NewEngine builds an engine for playerID against host, wiring it into bus
// so it receives possession/immovable/stock notifications as they occur.
// Call Think once per simulation tick thereafter.
func NewEngine(host *Host, bus *events.EventBus, gameID string, playerID int, logger zerolog.Logger) *Engine {
	e := &Engine{
		host:     host,
		bus:      bus,
		playerID: playerID,
		gameID:   gameID,
		logger:   logger.With().Str("component", "ai.Engine").Int("player_id", playerID).Logger(),
		obs:      NewObservers(host.Descriptors),
		blocked:  NewBlockedFieldSet(),
		flags:    make(map[FlagID]struct{}),
		trace:    NewTracer(256),
	}
	e.fields = NewFieldIndex(host, e.obs, playerID, e.logger)
	e.hooks = Install(bus, e)
	return e
}

// Think advances the engine by one tick. nowMS is the simulation clock in
// milliseconds; the engine never calls time.Now itself so that replays and
// tests stay deterministic. It returns true if a command was issued this
// tick, mirroring the scheduler's short-circuit-on-first-action discipline.
func (e *Engine) Think(nowMS int64) bool {
	e.nowMS = nowMS
	return e.think(nowMS)
}

// LandStats is a diagnostic snapshot of the engine's current holdings,
// supplementing the design with the original's print_land_stats: useful for
// a simulation harness to print per-tick progress without reaching into
// engine internals.
type LandStats struct {
	BuildableFields int
	MineableFields  int
	UnusableFields  int
	ProductionSites int
	MilitarySites   int
	BlockedFields   int
	ExpansionMode   bool // true only in the most aggressive push-expansion posture
}

func (e *Engine) LandStats() LandStats {
	militarySites := 0
	productionSites := 0
	for _, so := range e.obs.AllSites() {
		bo, ok := e.obs.Building(so.Building)
		if ok && bo.Type == BuildingMine {
			continue
		}
		productionSites++
	}
	militarySites = len(e.obs.AllMilitarySites())

	return LandStats{
		BuildableFields: len(e.fields.buildable),
		MineableFields:  len(e.fields.mineable),
		UnusableFields:  len(e.fields.unusable),
		ProductionSites: productionSites,
		MilitarySites:   militarySites,
		BlockedFields:   e.blocked.Len(),
		ExpansionMode:   e.regime.expansionMode == expansionPushExpansion,
	}
}
