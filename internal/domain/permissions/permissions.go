// Package permissions is the role/phase gate consulted before any guarded
// order action. The rule table is configuration: adjusting who may act in
// which phase must not require touching the state machine.
package permissions

import (
	"fmt"

	"taller_pos/internal/domain/entities"
	"taller_pos/internal/domain/workflow"
)

// Action is a guarded operation category on an order.
type Action string

const (
	ActionView    Action = "view"
	ActionEdit    Action = "edit"
	ActionAdvance Action = "advance"
)

var allRoles = []entities.Role{
	entities.RoleSuperAdmin,
	entities.RoleAdminCorporativo,
	entities.RoleGerente,
	entities.RoleTecnico,
	entities.RoleAsesorTecnico,
	entities.RoleVendedor,
}

var managerial = []entities.Role{
	entities.RoleSuperAdmin,
	entities.RoleAdminCorporativo,
	entities.RoleGerente,
}

// ruleTable maps phase -> action -> roles allowed. Phases absent from the
// table deny everything except view.
var ruleTable = map[workflow.Phase]map[Action][]entities.Role{
	workflow.PhaseCaptura: {
		ActionView:    allRoles,
		ActionEdit:    allRoles,
		ActionAdvance: allRoles,
	},
	workflow.PhaseAutorizacion: {
		ActionView:    allRoles,
		ActionEdit:    {entities.RoleSuperAdmin, entities.RoleAdminCorporativo, entities.RoleGerente, entities.RoleAsesorTecnico},
		ActionAdvance: managerial,
	},
	workflow.PhaseValidacion: {
		ActionView:    allRoles,
		ActionEdit:    {entities.RoleSuperAdmin, entities.RoleAdminCorporativo},
		ActionAdvance: managerial,
	},
	workflow.PhasePreOC: {
		ActionView:    allRoles,
		ActionEdit:    {entities.RoleSuperAdmin, entities.RoleAdminCorporativo},
		ActionAdvance: {entities.RoleSuperAdmin, entities.RoleAdminCorporativo},
	},
	workflow.PhaseCompra: {
		ActionView:    allRoles,
		ActionAdvance: managerial,
	},
	workflow.PhaseEntrega: {
		ActionView: allRoles,
	},
	workflow.PhaseTerminada: {
		ActionView: allRoles,
	},
}

// CanPerform reports whether role may perform action on an order in the
// given phase.
func CanPerform(role entities.Role, phase workflow.Phase, action Action) bool {
	actions, ok := ruleTable[phase]
	if !ok {
		return action == ActionView
	}
	for _, r := range actions[action] {
		if r == role {
			return true
		}
	}
	return false
}

// CanAdvance combines the role gate with the admin-validation sub-state
// when the order sits at the admin approval checkpoint.
func CanAdvance(role entities.Role, phase workflow.Phase, status entities.OrderStatus, adminValidation entities.ValidationStatus) bool {
	if !CanPerform(role, phase, ActionAdvance) {
		return false
	}
	if status == entities.StatusProductosValidados && adminValidation != entities.ValidationApproved {
		return false
	}
	return true
}

// DeniedMessage is the user-facing reason attached to a denial.
func DeniedMessage(phase workflow.Phase, action Action) string {
	switch action {
	case ActionEdit:
		return fmt.Sprintf("No tiene permisos para editar pedidos en la fase %q", phase)
	case ActionAdvance:
		return fmt.Sprintf("No tiene permisos para avanzar pedidos en la fase %q", phase)
	}
	return fmt.Sprintf("No tiene permisos para esta acción en la fase %q", phase)
}
