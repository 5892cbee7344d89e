// Package workflow defines the forward-only phase sequence of a work
// order. The phase use case orchestrates the remote writes; this package
// owns the pure transition table.
package workflow

import "taller_pos/internal/domain/entities"

// Phase is the coarse lifecycle bucket a status belongs to. Permission
// rules are keyed by phase, not by individual status.

type Phase string

const (
	PhaseCaptura      Phase = "captura"       // order being assembled
	PhaseAutorizacion Phase = "autorizacion"  // customer sign-off + XML intake
	PhaseValidacion   Phase = "validacion"    // product validation + admin gate
	PhasePreOC        Phase = "pre_oc"        // pre-purchase-order gate
	PhaseCompra       Phase = "compra"        // purchase order generation
	PhaseEntrega      Phase = "entrega"       // delivered
	PhaseTerminada    Phase = "terminada"     // rejected/cancelled terminals
)

// PhaseFromStatus maps a status string to its phase bucket.
func PhaseFromStatus(status entities.OrderStatus) Phase {
	switch status {
	case entities.StatusPendienteAutorizacion:
		return PhaseCaptura
	case entities.StatusAutorizado,
		entities.StatusProcesandoXML,
		entities.StatusPendienteValidacion,
		entities.StatusValidandoProductos:
		return PhaseAutorizacion
	case entities.StatusProductosValidados,
		entities.StatusProcesandoProductos:
		return PhaseValidacion
	case entities.StatusProductosProcesados,
		entities.StatusPreOCValidado:
		return PhasePreOC
	case entities.StatusGenerandoOC,
		entities.StatusOCGenerada:
		return PhaseCompra
	case entities.StatusEntregado:
		return PhaseEntrega
	}
	return PhaseTerminada
}

// forward is the strict successor table for committed statuses. Transient
// "processing" statuses are entered and left within a single operation and
// are not listed as sources.
var forward = map[entities.OrderStatus]entities.OrderStatus{
	entities.StatusPendienteAutorizacion: entities.StatusAutorizado,
	entities.StatusAutorizado:            entities.StatusPendienteValidacion,
	entities.StatusPendienteValidacion:   entities.StatusProductosValidados,
	entities.StatusProductosValidados:    entities.StatusProductosProcesados,
	entities.StatusProductosProcesados:   entities.StatusPreOCValidado,
	entities.StatusPreOCValidado:         entities.StatusOCGenerada,
	entities.StatusOCGenerada:            entities.StatusEntregado,
}

// Next returns the committed status that follows from, and whether a
// forward transition exists at all.
func Next(from entities.OrderStatus) (entities.OrderStatus, bool) {
	to, ok := forward[from]
	return to, ok
}

// CanAdvance applies the non-permission guards for leaving the order's
// current committed status. The returned reason is user-facing and empty
// when the advance is allowed.
func CanAdvance(o entities.Order) (bool, string) {
	if o.Status.IsTerminal() {
		return false, "El pedido se encuentra en un estado final"
	}

	switch o.Status {
	case entities.StatusPendienteAutorizacion:
		if !o.HasContent() {
			return false, "Este pedido no tiene productos, servicios o diagnóstico para autorizar"
		}
	case entities.StatusProductosValidados:
		if o.AdminValidation != entities.ValidationApproved {
			return false, "Este pedido requiere aprobación del administrador antes de procesar los productos"
		}
	case entities.StatusProductosProcesados:
		if o.PreOCValidation != entities.ValidationApproved {
			return false, "Este pedido requiere validación pre-OC antes de generar la orden de compra"
		}
	}

	if _, ok := forward[o.Status]; !ok {
		return false, "El pedido no puede avanzar desde su estado actual"
	}
	return true, ""
}
