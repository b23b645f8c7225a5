package ai

import (
	"time"

	"github.com/mitchelldurbincs/GeneralsReinforcementLearning/internal/config"
)

// AIFieldIndexConfig is the field-index tunable block, aliased so the rest
// of this package can reference it without importing internal/config
// directly in every file.
type AIFieldIndexConfig = config.AIFieldIndexConfig

// AIConstructionConfig is the construction-planner tunable block.
type AIConstructionConfig = config.AIConstructionConfig

// AIRoadsConfig is the road-optimizer tunable block.
type AIRoadsConfig = config.AIRoadsConfig

// AIAttackConfig is the attack-planner tunable block.
type AIAttackConfig = config.AIAttackConfig

// tunables is a thin per-call accessor over config.Get().AI, following the
// pattern of internal/game/constants.go: never cache, always read through so
// a config.WatchConfig hot-reload takes effect on the very next tick.
type tunables struct{}

func tune() tunables { return tunables{} }

func (tunables) schedulerIntervals() config.AISchedulerConfig {
	return config.Get().AI.Scheduler
}

func (tunables) fieldIndex() config.AIFieldIndexConfig {
	return config.Get().AI.FieldIndex
}

func (tunables) construction() config.AIConstructionConfig {
	return config.Get().AI.Construction
}

func (tunables) roads() config.AIRoadsConfig {
	return config.Get().AI.Roads
}

func (tunables) attack() config.AIAttackConfig {
	return config.Get().AI.Attack
}

func msDuration(ms int) time.Duration { return time.Duration(ms) * time.Millisecond }
