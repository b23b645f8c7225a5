// Command ai_sim drives the computer opponent decision engine against a
// small synthetic world for a fixed number of ticks, printing a land-stats
// snapshot periodically. It exists to exercise internal/ai end to end
// without a full game server behind it, the same role cmd/game_server's
// randomActionDemo plays for the turn processor.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai"
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/ai/fakehost"
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/config"
	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/game/events"
)

const tickMS = 1000

func main() {
	configPath := flag.String("config", "", "Path to config file")
	ticks := flag.Int("ticks", 600, "Number of simulated ticks to run")
	seed := flag.Int64("seed", time.Now().UnixNano(), "World generation seed")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize config")
	}
	setupLogging(*logLevel)

	log.Info().Int64("seed", *seed).Int("ticks", *ticks).Msg("starting ai_sim")

	rng := rand.New(rand.NewSource(*seed))
	world, desc := buildWorld(rng, 32, 32)

	bus := events.NewEventBus()
	player := fakehost.NewPlayer(0, world)
	player.Hostiles[1] = true
	econ := fakehost.NewEconomies()
	stats := fakehost.NewStatistics()
	cmds := fakehost.NewCommands()
	host := fakehost.NewHost(world, player, desc, econ, stats, cmds)

	engine := ai.NewEngine(host, bus, "ai_sim", 0, log.Logger)
	if err := engine.ValidateDescriptors(0); err != nil {
		log.Fatal().Err(err).Msg("descriptor table failed validation")
	}
	seedOwnedFields(bus, world, 0)

	var nowMS int64
	for i := 0; i < *ticks; i++ {
		nowMS += tickMS
		engine.Think(nowMS)
		if i%50 == 0 {
			printStats(nowMS, engine, cmds)
		}
	}
	printStats(nowMS, engine, cmds)
}

func printStats(nowMS int64, engine *ai.Engine, cmds *fakehost.Commands) {
	s := engine.LandStats()
	fmt.Printf(
		"t=%6dms buildable=%3d mineable=%3d unusable=%3d prod_sites=%2d mil_sites=%2d blocked=%3d expansion=%-5v builds=%3d attacks=%3d\n",
		nowMS, s.BuildableFields, s.MineableFields, s.UnusableFields, s.ProductionSites, s.MilitarySites,
		s.BlockedFields, s.ExpansionMode, len(cmds.Built), len(cmds.Attacks),
	)
}

func setupLogging(level string) {
	var logLevel zerolog.Level
	switch level {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	case "error":
		logLevel = zerolog.ErrorLevel
	default:
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}
