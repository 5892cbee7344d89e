package permissions

import (
	"testing"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/domain/workflow"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform_CapturaOpenToAllRoles(t *testing.T) {
	for _, role := range []entities.Role{entities.RoleTecnico, entities.RoleVendedor, entities.RoleSuperAdmin} {
		assert.True(t, CanPerform(role, workflow.PhaseCaptura, ActionEdit), "role %s", role)
		assert.True(t, CanPerform(role, workflow.PhaseCaptura, ActionAdvance), "role %s", role)
	}
}

func TestCanPerform_PreOCRestricted(t *testing.T) {
	assert.True(t, CanPerform(entities.RoleSuperAdmin, workflow.PhasePreOC, ActionAdvance))
	assert.True(t, CanPerform(entities.RoleAdminCorporativo, workflow.PhasePreOC, ActionAdvance))
	assert.False(t, CanPerform(entities.RoleGerente, workflow.PhasePreOC, ActionAdvance))
	assert.False(t, CanPerform(entities.RoleTecnico, workflow.PhasePreOC, ActionAdvance))
}

func TestCanPerform_ViewAlwaysAllowed(t *testing.T) {
	for phase := range map[workflow.Phase]bool{
		workflow.PhaseCaptura: true, workflow.PhaseEntrega: true, workflow.PhaseTerminada: true,
	} {
		assert.True(t, CanPerform(entities.RoleVendedor, phase, ActionView), "phase %s", phase)
	}
}

func TestCanAdvance_BlocksPendingAdminValidation(t *testing.T) {
	phase := workflow.PhaseFromStatus(entities.StatusProductosValidados)

	ok := CanAdvance(entities.RoleSuperAdmin, phase, entities.StatusProductosValidados, entities.ValidationPending)
	assert.False(t, ok)

	ok = CanAdvance(entities.RoleSuperAdmin, phase, entities.StatusProductosValidados, entities.ValidationApproved)
	assert.True(t, ok)
}

func TestDeniedMessage_NonEmptyPerAction(t *testing.T) {
	for _, action := range []Action{ActionView, ActionEdit, ActionAdvance} {
		assert.NotEmpty(t, DeniedMessage(workflow.PhaseValidacion, action))
	}
}
