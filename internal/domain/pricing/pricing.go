// Package pricing implements the two sale-price strategies of the POS.
//
// Manually captured parts use the payment-type divisor strategy: the cost
// is grossed up with 16% IVA and divided by a divisor fixed per payment
// type. XML-classified products use a flat percentage markup with no tax
// step. The two formulas are intentionally distinct business policies and
// must not be unified.
package pricing

// IVARate is the fixed tax rate applied to part costs.
const IVARate = 1.16

// Payment-type codes. Anything else is treated as a custom type with
// divisor 1, which yields zero margin rather than an error.
const (
	PaymentSingle       = 39 // pago en 1 sola exhibición
	PaymentOver12Months = 50 // pago arriba de 12 meses
	Payment6To9Months   = 48 // pago entre 6 y 9 meses
	PaymentCash         = 28 // contado
)

// Divisor returns the price divisor for a payment-type code.
func Divisor(paymentType int) float64 {
	switch paymentType {
	case PaymentSingle:
		return 0.61
	case PaymentOver12Months:
		return 0.50
	case Payment6To9Months:
		return 0.52
	case PaymentCash:
		return 0.72
	}
	return 1
}

// PaymentTypeLabel returns the display label for a payment-type code.
func PaymentTypeLabel(paymentType int) string {
	switch paymentType {
	case PaymentSingle:
		return "39% - Pago en 1 sola exhibición"
	case PaymentOver12Months:
		return "50% - Pago arriba de 12 meses"
	case Payment6To9Months:
		return "48% - Pago entre 6 y 9 meses"
	case PaymentCash:
		return "28% - Contado"
	case 0:
		return "Sin definir"
	}
	return "Personalizado"
}

// Quote is the full pricing breakdown for a newly captured part.
type Quote struct {
	Costo              float64
	CostoConIva        float64
	PrecioVentaPublico float64
	Margen             float64
	PorcentajeMargen   float64
	Porcentaje         int
}

// NewQuote prices a part from its cost and payment type. This is the
// new-product path: it also derives the margin percentage.
func NewQuote(costo float64, paymentType int) Quote {
	costoConIva := costo * IVARate
	precio := costoConIva / Divisor(paymentType)
	margen := precio - costoConIva

	porcentajeMargen := 0.0
	if precio != 0 {
		porcentajeMargen = margen / precio * 100
	}

	return Quote{
		Costo:              costo,
		CostoConIva:        costoConIva,
		PrecioVentaPublico: precio,
		Margen:             margen,
		PorcentajeMargen:   porcentajeMargen,
		Porcentaje:         paymentType,
	}
}

// Recalculate re-prices an already captured part after a payment-type
// change. The edit path deliberately does not refresh PorcentajeMargen;
// downstream reporting depends on the stored value.
func Recalculate(costo float64, paymentType int) (precio, margen float64) {
	costoConIva := costo * IVARate
	precio = costoConIva / Divisor(paymentType)
	margen = precio - costoConIva
	return precio, margen
}

// MarkupPrice prices an XML-classified product: flat percentage markup on
// the invoice cost, no IVA step.
func MarkupPrice(costo, margenPercent float64) float64 {
	return costo * (1 + margenPercent/100)
}
