package entities

// projectDiagnostic maps the transferable findings of a diagnostic onto
// service and product lines, tagged with their origin and severity.
//
// Only items carrying both a service SKU and a service name become labor
// lines; items without them are advisory findings surfaced in the
// authorization flow and never priced into the order.
func projectDiagnostic(d *VehicleDiagnostic) ([]Service, []Product) {
	var services []Service
	var products []Product
	if d == nil {
		return services, products
	}

	for _, item := range d.Items {
		if item.ServiceSKU == "" || item.ServiceName == "" {
			continue
		}
		precio := item.ServicePrice
		if precio == 0 {
			precio = item.EstimatedCost
		}
		services = append(services, Service{
			SKU:                item.ServiceSKU,
			Nombre:             item.ServiceName,
			Descripcion:        item.Description,
			Categoria:          item.Category,
			Precio:             precio,
			FromDiagnostic:     true,
			DiagnosticSeverity: string(item.Severity),
		})
	}

	for _, part := range d.Parts {
		products = append(products, Product{
			SKU:                part.SKU,
			Descripcion:        part.Descripcion,
			Cantidad:           part.Cantidad,
			Costo:              part.Costo,
			Precio:             part.Precio,
			Margen:             part.Margen,
			Porcentaje:         part.Porcentaje,
			FromDiagnostic:     true,
			DiagnosticSeverity: string(part.Severity),
		})
	}

	return services, products
}

// TransferDiagnostic appends the diagnostic's transferable findings to the
// order's lines. Used for orders that have never been persisted, where no
// prior diagnostic transfer can exist.
func (o *Order) TransferDiagnostic() {
	services, products := projectDiagnostic(o.Diagnostic)
	o.Servicios = append(o.Servicios, services...)
	o.Productos = append(o.Productos, products...)
}

// TransferDiagnosticToExisting replaces any previously transferred lines
// with a fresh projection of the current diagnostic and recomputes the
// budget total.
//
// The operation is idempotent: running it twice with an unchanged
// diagnostic yields the same lines and the same presupuesto, and editing
// the diagnostic never leaves stale diagnostic-sourced lines behind.
func (o *Order) TransferDiagnosticToExisting() {
	kept := o.Servicios[:0:0]
	for _, s := range o.Servicios {
		if !s.FromDiagnostic {
			kept = append(kept, s)
		}
	}
	o.Servicios = kept

	keptP := o.Productos[:0:0]
	for _, p := range o.Productos {
		if !p.FromDiagnostic {
			keptP = append(keptP, p)
		}
	}
	o.Productos = keptP

	services, products := projectDiagnostic(o.Diagnostic)
	o.Servicios = append(o.Servicios, services...)
	o.Productos = append(o.Productos, products...)

	o.RecalculatePresupuesto()
}
