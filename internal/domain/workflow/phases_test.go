package workflow

import (
	"testing"

	"taller_pos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestPhaseFromStatus(t *testing.T) {
	cases := map[entities.OrderStatus]Phase{
		entities.StatusPendienteAutorizacion: PhaseCaptura,
		entities.StatusAutorizado:            PhaseAutorizacion,
		entities.StatusProcesandoXML:         PhaseAutorizacion,
		entities.StatusProductosValidados:    PhaseValidacion,
		entities.StatusProductosProcesados:   PhasePreOC,
		entities.StatusOCGenerada:            PhaseCompra,
		entities.StatusEntregado:             PhaseEntrega,
		entities.StatusRechazadoAdmin:        PhaseTerminada,
		entities.StatusCancelado:             PhaseTerminada,
	}
	for status, want := range cases {
		assert.Equal(t, want, PhaseFromStatus(status), "status %q", status)
	}
}

func TestCanAdvance_InitialRequiresContent(t *testing.T) {
	o := entities.Order{Status: entities.StatusPendienteAutorizacion}
	ok, reason := CanAdvance(o)
	assert.False(t, ok)
	assert.NotEmpty(t, reason)

	o.Productos = []entities.Product{{Descripcion: "Filtro de aire", Cantidad: 1, Precio: 250}}
	ok, _ = CanAdvance(o)
	assert.True(t, ok)
}

func TestCanAdvance_AdminGate(t *testing.T) {
	o := entities.Order{
		Status:          entities.StatusProductosValidados,
		AdminValidation: entities.ValidationPending,
	}
	ok, reason := CanAdvance(o)
	assert.False(t, ok)
	assert.Contains(t, reason, "administrador")

	o.AdminValidation = entities.ValidationApproved
	ok, _ = CanAdvance(o)
	assert.True(t, ok)
}

func TestCanAdvance_PreOCGate(t *testing.T) {
	o := entities.Order{
		Status:          entities.StatusProductosProcesados,
		PreOCValidation: entities.ValidationPending,
	}
	ok, reason := CanAdvance(o)
	assert.False(t, ok)
	assert.Contains(t, reason, "pre-OC")

	o.PreOCValidation = entities.ValidationApproved
	ok, _ = CanAdvance(o)
	assert.True(t, ok)
}

func TestCanAdvance_TerminalStates(t *testing.T) {
	for _, status := range []entities.OrderStatus{
		entities.StatusEntregado,
		entities.StatusCancelado,
		entities.StatusRechazadoAdmin,
		entities.StatusPreOCRechazado,
	} {
		ok, _ := CanAdvance(entities.Order{Status: status})
		assert.False(t, ok, "status %q", status)
	}
}

func TestNext_ForwardChainEndsAtEntregado(t *testing.T) {
	status := entities.StatusPendienteAutorizacion
	steps := 0
	for {
		next, ok := Next(status)
		if !ok {
			break
		}
		status = next
		steps++
		if steps > 20 {
			t.Fatal("forward table loops")
		}
	}
	assert.Equal(t, entities.StatusEntregado, status)
}
