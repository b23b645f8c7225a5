package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDescriptors_PassesOnTestWorld(t *testing.T) {
	e, _, _ := testEngine(t)
	assert.NoError(t, e.ValidateDescriptors(0))
}

func TestValidateDescriptors_RejectsMissingWarehouse(t *testing.T) {
	w, desc := testWorld(t)
	for _, bd := range desc.Buildings() {
		if bd.Type == BuildingWarehouse {
			desc.AddBuilding(BuildingDescr{ID: bd.ID, Name: bd.Name, Type: BuildingProductionSite})
		}
	}
	e, _, _ := testEngineWith(t, w, desc)

	err := e.ValidateDescriptors(500)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoWarehouseType))
	var de *DecisionError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, int64(500), de.NowMS)
	assert.Equal(t, "validate_descriptors", de.Phase)
}

func TestValidateDescriptors_RejectsMissingMilitarySite(t *testing.T) {
	w, desc := testWorld(t)
	for _, bd := range desc.Buildings() {
		if bd.Type == BuildingMilitarySite {
			desc.AddBuilding(BuildingDescr{ID: bd.ID, Name: bd.Name, Type: BuildingProductionSite})
		}
	}
	e, _, _ := testEngineWith(t, w, desc)

	err := e.ValidateDescriptors(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoMilitarySiteType))
}

func TestValidateDescriptors_RejectsDuplicateNames(t *testing.T) {
	w, desc := testWorld(t)
	desc.AddBuilding(BuildingDescr{ID: 999, Name: "garrison", Type: BuildingProductionSite})
	e, _, _ := testEngineWith(t, w, desc)

	err := e.ValidateDescriptors(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateBuilding))
}

func TestWrapDecisionError_NilPassesThrough(t *testing.T) {
	assert.NoError(t, WrapDecisionError("phase", 0, nil))
}
