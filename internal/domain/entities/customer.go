package entities

import "time"

// Customer mirrors the customers table; the core only reads it for report
// snapshots and dashboard counts.
type Customer struct {
	ID             string    `json:"id"`
	NombreCompleto string    `json:"nombre_completo"`
	Email          string    `json:"email,omitempty"`
	Telefono       string    `json:"telefono,omitempty"`
	Direccion      string    `json:"direccion,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

// Vehicle is a customer's registered vehicle.
type Vehicle struct {
	ID                  string `json:"id"`
	CustomerID          string `json:"customer_id"`
	Placas              string `json:"placas"`
	Marca               string `json:"marca"`
	Modelo              string `json:"modelo"`
	Anio                string `json:"anio"`
	Color               string `json:"color,omitempty"`
	NumeroSerie         string `json:"numero_serie,omitempty"`
	KilometrajeInicial  int    `json:"kilometraje_inicial,omitempty"`
}

// BudgetSnapshot is the consistent Order+Customer+Vehicle view handed to
// the report rendering collaborator. Rendering itself is out of scope;
// the core only guarantees the snapshot is complete and internally
// consistent at the moment of generation.
type BudgetSnapshot struct {
	Order          Order     `json:"order"`
	Customer       Customer  `json:"customer"`
	Vehicle        *Vehicle  `json:"vehicle,omitempty"`
	ProductsTotal  float64   `json:"products_total"`
	ServicesTotal  float64   `json:"services_total"`
	Total          float64   `json:"total"`
	GeneratedAt    time.Time `json:"generated_at"`
}
