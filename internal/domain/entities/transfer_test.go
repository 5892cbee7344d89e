package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDiagnostic() *VehicleDiagnostic {
	return &VehicleDiagnostic{
		Items: []DiagnosticItem{
			{
				Category:     "frenos",
				Item:         "Balatas delanteras",
				Description:  "Desgaste al 90%",
				Severity:     SeverityUrgent,
				ServiceSKU:   "SRV-FRE-01",
				ServiceName:  "Cambio de balatas",
				ServicePrice: 1450,
			},
			{
				// Pure observation: no service info, must not transfer.
				Category:    "carroceria",
				Item:        "Rayón en defensa",
				Description: "Cosmético",
				Severity:    SeverityGood,
			},
			{
				Category:      "suspension",
				Item:          "Amortiguadores",
				Description:   "Fuga leve",
				Severity:      SeverityRecommended,
				ServiceSKU:    "SRV-SUS-03",
				ServiceName:   "Cambio de amortiguadores",
				EstimatedCost: 3200,
			},
		},
		Parts: []DiagnosticPart{
			{Descripcion: "Balatas cerámicas", Cantidad: 1, Costo: 600, Precio: 980, Severity: SeverityUrgent},
		},
	}
}

func TestTransferDiagnostic_NewOrderAppends(t *testing.T) {
	o := Order{
		Productos:  []Product{{Descripcion: "Aceite 5W30", Cantidad: 1, Precio: 350}},
		Servicios:  []Service{{SKU: "SRV-GEN-01", Nombre: "Afinación", Precio: 2000}},
		Diagnostic: sampleDiagnostic(),
	}

	o.TransferDiagnostic()

	require.Len(t, o.Servicios, 3)
	require.Len(t, o.Productos, 2)

	// Manual entries stay first and untagged.
	assert.False(t, o.Servicios[0].FromDiagnostic)
	assert.False(t, o.Productos[0].FromDiagnostic)

	// Items without service info are not projected.
	for _, s := range o.Servicios[1:] {
		assert.True(t, s.FromDiagnostic)
		assert.NotEmpty(t, s.SKU)
	}

	// ServicePrice wins; EstimatedCost is the fallback.
	assert.Equal(t, 1450.0, o.Servicios[1].Precio)
	assert.Equal(t, 3200.0, o.Servicios[2].Precio)

	assert.True(t, o.Productos[1].FromDiagnostic)
	assert.Equal(t, string(SeverityUrgent), o.Productos[1].DiagnosticSeverity)
}

func TestTransferDiagnosticToExisting_Idempotent(t *testing.T) {
	o := Order{
		Productos:  []Product{{Descripcion: "Aceite 5W30", Cantidad: 2, Precio: 350}},
		Servicios:  []Service{{SKU: "SRV-GEN-01", Nombre: "Afinación", Precio: 2000}},
		Diagnostic: sampleDiagnostic(),
	}

	o.TransferDiagnosticToExisting()
	firstServicios := append([]Service(nil), o.Servicios...)
	firstProductos := append([]Product(nil), o.Productos...)
	firstPresupuesto := o.Presupuesto

	o.TransferDiagnosticToExisting()

	assert.Equal(t, firstServicios, o.Servicios)
	assert.Equal(t, firstProductos, o.Productos)
	assert.Equal(t, firstPresupuesto, o.Presupuesto)
}

func TestTransferDiagnosticToExisting_ReplacesStaleEntries(t *testing.T) {
	o := Order{
		Servicios: []Service{
			{SKU: "SRV-GEN-01", Nombre: "Afinación", Precio: 2000},
			{SKU: "SRV-OLD", Nombre: "Servicio viejo", Precio: 999, FromDiagnostic: true},
		},
		Productos: []Product{
			{Descripcion: "Pieza vieja", Cantidad: 1, Precio: 111, FromDiagnostic: true},
		},
		Diagnostic: sampleDiagnostic(),
	}

	o.TransferDiagnosticToExisting()

	for _, s := range o.Servicios {
		assert.NotEqual(t, "SRV-OLD", s.SKU)
	}
	for _, p := range o.Productos {
		assert.NotEqual(t, "Pieza vieja", p.Descripcion)
	}

	// presupuesto = 2000 (manual) + 1450 + 3200 (diagnostic services) + 980*1 (part)
	assert.InDelta(t, 7630.0, o.Presupuesto, 0.001)
}

func TestTransferDiagnosticToExisting_EmptyDiagnosticClears(t *testing.T) {
	o := Order{
		Servicios: []Service{
			{SKU: "SRV-OLD", Nombre: "Servicio viejo", Precio: 999, FromDiagnostic: true},
		},
		Diagnostic: &VehicleDiagnostic{},
	}

	o.TransferDiagnosticToExisting()

	assert.Empty(t, o.Servicios)
	assert.Zero(t, o.Presupuesto)
}
