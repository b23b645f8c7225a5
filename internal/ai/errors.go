package ai

import (
	"errors"
	"fmt"
)

// Sentinel errors the engine can return, in the same "var Err... =
// errors.New(...)" shape internal/game/core/errors.go declares for the
// board wargame's own action/state failures.
var (
	ErrNoWarehouseType    = errors.New("descriptor table has no warehouse building")
	ErrNoMilitarySiteType = errors.New("descriptor table has no military site building")
	ErrDuplicateBuilding  = errors.New("descriptor table has two buildings sharing a name")
	ErrBuildingNotAllowed = errors.New("building type not allowed for player")
)

// DecisionError adds tick and phase context to a sentinel error, the ai
// package's analogue of core.WrapGameStateError/WrapActionError: the
// original error stays reachable through errors.Is/errors.As, but the
// message also says when in the simulation and which pass hit it.
type DecisionError struct {
	Phase string
	NowMS int64
	Err   error
}

func (e *DecisionError) Error() string {
	return fmt.Sprintf("ai: %s at t=%dms: %v", e.Phase, e.NowMS, e.Err)
}

func (e *DecisionError) Unwrap() error { return e.Err }

// WrapDecisionError attaches phase/tick context to err, or returns nil
// unchanged so callers can write "return WrapDecisionError(...)" without a
// separate nil check.
func WrapDecisionError(phase string, nowMS int64, err error) error {
	if err == nil {
		return nil
	}
	return &DecisionError{Phase: phase, NowMS: nowMS, Err: err}
}

// ValidateDescriptors checks the static descriptor table the engine was
// built with for the buildings every pass assumes exist: a warehouse type
// (the construction planner's warehouse scoring and the Attack Planner's
// warehouse target priority both key on it), a military site type (nothing to garrison territory with otherwise), and
// no two buildings sharing a name (BuildingByName is used as a lookup key
// throughout the engine's tests and helper construction).
func (e *Engine) ValidateDescriptors(nowMS int64) error {
	seen := make(map[string]BuildingID)
	haveWarehouse := false
	haveMilitary := false
	for _, bd := range e.host.Descriptors.Buildings() {
		if prior, dup := seen[bd.Name]; dup && prior != bd.ID {
			return WrapDecisionError("validate_descriptors", nowMS,
				fmt.Errorf("%w: %q", ErrDuplicateBuilding, bd.Name))
		}
		seen[bd.Name] = bd.ID
		switch bd.Type {
		case BuildingWarehouse:
			haveWarehouse = true
		case BuildingMilitarySite:
			haveMilitary = true
		}
	}
	if !haveWarehouse {
		return WrapDecisionError("validate_descriptors", nowMS, ErrNoWarehouseType)
	}
	if !haveMilitary {
		return WrapDecisionError("validate_descriptors", nowMS, ErrNoMilitarySiteType)
	}
	return nil
}
