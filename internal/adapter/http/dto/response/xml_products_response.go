package response

import "taller_pos/internal/domain/entities"

type XmlProductResponse struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id,omitempty"`
	OrderID   string `json:"order_id,omitempty"`

	Descripcion string  `json:"descripcion"`
	Cantidad    float64 `json:"cantidad"`
	Precio      float64 `json:"precio"`
	Total       float64 `json:"total"`
	Unidad      string  `json:"unidad,omitempty"`
	Proveedor   string  `json:"proveedor"`

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

func FromXmlProduct(p entities.XmlProduct) XmlProductResponse {
	return XmlProductResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		OrderID:     p.OrderID,
		Descripcion: p.Descripcion,
		Cantidad:    p.Cantidad,
		Precio:      p.Precio,
		Total:       p.Total,
		Unidad:      p.Unidad,
		Proveedor:   p.Proveedor,
		SKU:         p.SKU,
		Division:    p.Division,
		Linea:       p.Linea,
		Clase:       p.Clase,
		Subclase:    p.Subclase,
		Margen:      p.Margen,
		PrecioVenta: p.PrecioVenta,
		IsValidated: p.IsValidated,
		IsNew:       p.IsNew,
		IsProcessed: p.IsProcessed,
		NotFound:    p.NotFound,
		SKUOriginal: p.SKUOriginal,
		SKUFinal:    p.SKUFinal,
	}
}

func FromXmlProducts(products []entities.XmlProduct) []XmlProductResponse {
	out := make([]XmlProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromXmlProduct(p))
	}
	return out
}

// ProviderGroupResponse is one supplier bucket of an order's invoice line
// items, with the validation counters shown on the reconciliation screen.
type ProviderGroupResponse struct {
	Proveedor      string               `json:"proveedor"`
	RFC            string               `json:"rfc,omitempty"`
	Productos      []XmlProductResponse `json:"productos"`
	TotalValidados int                  `json:"totalValidados"`
	TotalNuevos    int                  `json:"totalNuevos"`
	MontoTotal     float64              `json:"montoTotal"`
}

func FromProviderGroups(groups []entities.ProductosPorProveedor) []ProviderGroupResponse {
	out := make([]ProviderGroupResponse, 0, len(groups))
	for _, g := range groups {
		out = append(out, ProviderGroupResponse{
			Proveedor:      g.Proveedor,
			RFC:            g.RFC,
			Productos:      FromXmlProducts(g.Productos),
			TotalValidados: g.TotalValidados,
			TotalNuevos:    g.TotalNuevos,
			MontoTotal:     g.MontoTotal,
		})
	}
	return out
}

// NotFoundListResponse is the review list of products routed to the
// fallback bucket, with the summed invoice total.
type NotFoundListResponse struct {
	Products []XmlProductResponse `json:"products"`
	Total    float64              `json:"total"`
}

func FromNotFoundList(products []entities.XmlProduct) NotFoundListResponse {
	resp := NotFoundListResponse{Products: FromXmlProducts(products)}
	for _, p := range products {
		resp.Total += p.Total
	}
	return resp
}
