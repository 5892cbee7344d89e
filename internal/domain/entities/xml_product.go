package entities

import "time"

// XmlProduct is one line item extracted from a supplier XML invoice
// (CFDI). Invoice lines are owned by the persistence layer and referenced
// by order id; the core regroups them in memory by supplier.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
type XmlProduct struct {
	ID        string `json:"id,omitempty"`
	InvoiceID string `json:"invoice_id,omitempty"`
	OrderID   string `json:"order_id,omitempty"`

	Descripcion string  `json:"descripcion"`
	Cantidad    float64 `json:"cantidad"`
	Precio      float64 `json:"precio"`
	Total       float64 `json:"total"`
	Unidad      string  `json:"unidad,omitempty"`
	Proveedor   string  `json:"proveedor"`

	ClaveProdServ string `json:"claveProdServ,omitempty"`
	ClaveUnidad   string `json:"claveUnidad,omitempty"`

	// Classification codes, set on validation or manual classification.
	SKU      string `json:"sku,omitempty"`
	Division string `json:"division,omitempty"`
	Linea    string `json:"linea,omitempty"`
	Clase    string `json:"clase,omitempty"`
	Subclase string `json:"subclase,omitempty"`

	Margen      float64 `json:"margen,omitempty"`
	PrecioVenta float64 `json:"precioVenta,omitempty"`

	IsValidated bool `json:"isValidated"`
	IsNew       bool `json:"isNew"`
	IsProcessed bool `json:"isProcessed,omitempty"`
	NotFound    bool `json:"notFound,omitempty"`

	SKUOriginal string `json:"skuOriginal,omitempty"`
	SKUFinal    string `json:"skuFinal,omitempty"`
}

// XmlClassification is the operator-supplied classification for a "new"
// XML product: the four catalog codes plus the markup margin and the sale
// price derived from it.
type XmlClassification struct {
	Division    string  `json:"division"`
	Linea       string  `json:"linea"`
	Clase       string  `json:"clase"`
	Subclase    string  `json:"subclase"`
	Margen      float64 `json:"margen"`
	PrecioVenta float64 `json:"precioVenta"`
}

// OrderInvoice is one uploaded supplier invoice attached to an order.
type OrderInvoice struct {
	ID           string       `json:"id,omitempty"`
	OrderID      string       `json:"order_id"`
	InvoiceFolio string       `json:"invoice_folio"`
	XMLContent   string       `json:"xml_content,omitempty"`
	TotalAmount  float64      `json:"total_amount"`
	Proveedor    string       `json:"proveedor"`
	RFCProveedor string       `json:"rfc_proveedor,omitempty"`
	XmlProducts  []XmlProduct `json:"xml_products,omitempty"`
	Validados    int          `json:"validados,omitempty"`
	Nuevos       int          `json:"nuevos,omitempty"`
	UploadedAt   time.Time    `json:"upload_date,omitempty"`
}

// ProductosPorProveedor is the per-supplier regrouping of an order's XML
// products, with validation counters and the summed invoice amount.
type ProductosPorProveedor struct {
	Proveedor      string       `json:"proveedor"`
	RFC            string       `json:"rfc,omitempty"`
	Productos      []XmlProduct `json:"productos"`
	TotalValidados int          `json:"totalValidados"`
	TotalNuevos    int          `json:"totalNuevos"`
	MontoTotal     float64      `json:"montoTotal"`
}

// GroupProductsByProvider partitions products by supplier name, preserving
// first-seen supplier order. The supplier RFC is taken from the first
// invoice whose supplier name matches; there is no RFC-based grouping.
func GroupProductsByProvider(products []XmlProduct, invoices []OrderInvoice) []ProductosPorProveedor {
	index := map[string]int{}
	grouped := []ProductosPorProveedor{}

	for _, p := range products {
		i, ok := index[p.Proveedor]
		if !ok {
			rfc := ""
			for _, inv := range invoices {
				if inv.Proveedor == p.Proveedor {
					rfc = inv.RFCProveedor
					break
				}
			}
			grouped = append(grouped, ProductosPorProveedor{Proveedor: p.Proveedor, RFC: rfc})
			i = len(grouped) - 1
			index[p.Proveedor] = i
		}

		grouped[i].Productos = append(grouped[i].Productos, p)
		grouped[i].MontoTotal += p.Total
		if p.IsValidated {
			grouped[i].TotalValidados++
		}
		if p.IsNew {
			grouped[i].TotalNuevos++
		}
	}

	return grouped
}
