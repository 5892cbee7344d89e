package request

import (
	"encoding/json"

	"taller_pos/internal/domain/entities"
)

type XmlProductLineRequest struct {
	Descripcion   string  `json:"descripcion" binding:"required"`
	Cantidad      float64 `json:"cantidad" binding:"required"`
	Precio        float64 `json:"precio" binding:"required"`
	Total         float64 `json:"total"`
	Unidad        string  `json:"unidad"`
	Proveedor     string  `json:"proveedor"`
	ClaveProdServ string  `json:"claveProdServ"`
	ClaveUnidad   string  `json:"claveUnidad"`
}

type XmlInvoiceRequest struct {
	InvoiceFolio string                  `json:"invoice_folio" binding:"required"`
	XMLContent   string                  `json:"xml_content"`
	TotalAmount  float64                 `json:"total_amount"`
	Proveedor    string                  `json:"proveedor" binding:"required"`
	RFCProveedor string                  `json:"rfc_proveedor"`
	Products     []XmlProductLineRequest `json:"products" binding:"required"`
}

// ProcessXMLRequest carries the supplier invoices parsed client-side from
// the uploaded CFDI files.
type ProcessXMLRequest struct {
	Invoices []XmlInvoiceRequest `json:"invoices" binding:"required"`
}

func (r ProcessXMLRequest) ToInvoices() []entities.OrderInvoice {
	out := make([]entities.OrderInvoice, 0, len(r.Invoices))
	for _, inv := range r.Invoices {
		e := entities.OrderInvoice{
			InvoiceFolio: inv.InvoiceFolio,
			XMLContent:   inv.XMLContent,
			TotalAmount:  inv.TotalAmount,
			Proveedor:    inv.Proveedor,
			RFCProveedor: inv.RFCProveedor,
		}
		for _, p := range inv.Products {
			total := p.Total
			if total == 0 {
				total = p.Precio * p.Cantidad
			}
			e.XmlProducts = append(e.XmlProducts, entities.XmlProduct{
				Descripcion:   p.Descripcion,
				Cantidad:      p.Cantidad,
				Precio:        p.Precio,
				Total:         total,
				Unidad:        p.Unidad,
				Proveedor:     p.Proveedor,
				ClaveProdServ: p.ClaveProdServ,
				ClaveUnidad:   p.ClaveUnidad,
			})
		}
		out = append(out, e)
	}
	return out
}

// ValidationDecisionRequest is the gate decision body shared by the admin
// and pre-OC validation endpoints. Approve is a pointer so an absent
// field fails binding instead of silently rejecting.
type ValidationDecisionRequest struct {
	Approve *bool  `json:"approve" binding:"required"`
	Notes   string `json:"notes"`
}

// DeliverRequest optionally carries the Mercado Pago payload used to
// charge the budget total at delivery.
type DeliverRequest struct {
	CapturePayment bool            `json:"capture_payment"`
	MPPayload      json.RawMessage `json:"mp_payload"`
}
