package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQuote_SinglePayment(t *testing.T) {
	q := NewQuote(100, PaymentSingle)

	assert.InDelta(t, 116.00, q.CostoConIva, 0.001)
	assert.InDelta(t, 190.16, q.PrecioVentaPublico, 0.01)
	assert.InDelta(t, 74.16, q.Margen, 0.01)
	assert.InDelta(t, q.Margen/q.PrecioVentaPublico*100, q.PorcentajeMargen, 0.0001)
}

func TestNewQuote_Over12Months(t *testing.T) {
	q := NewQuote(100, PaymentOver12Months)

	assert.InDelta(t, 232.00, q.PrecioVentaPublico, 0.001)
	assert.InDelta(t, 116.00, q.Margen, 0.001)
}

func TestNewQuote_MarginNeverNegative(t *testing.T) {
	costs := []float64{0, 0.01, 1, 99.99, 100, 12345.67}
	codes := []int{PaymentCash, PaymentSingle, Payment6To9Months, PaymentOver12Months}

	for _, c := range costs {
		for _, k := range codes {
			q := NewQuote(c, k)
			assert.GreaterOrEqual(t, q.PrecioVentaPublico, c*IVARate,
				"cost=%v code=%d", c, k)
			assert.InDelta(t, q.PrecioVentaPublico-q.CostoConIva, q.Margen, 1e-9)
			assert.GreaterOrEqual(t, q.Margen, 0.0)
		}
	}
}

func TestNewQuote_UnknownCodeFallsBackToZeroMargin(t *testing.T) {
	q := NewQuote(100, 77)

	assert.InDelta(t, 116.00, q.PrecioVentaPublico, 0.001)
	assert.InDelta(t, 0, q.Margen, 1e-9)
	assert.InDelta(t, 0, q.PorcentajeMargen, 1e-9)
}

func TestNewQuote_ZeroCost(t *testing.T) {
	q := NewQuote(0, PaymentSingle)

	assert.Zero(t, q.PrecioVentaPublico)
	assert.Zero(t, q.Margen)
	// Division guard: no NaN when the price is zero.
	assert.Zero(t, q.PorcentajeMargen)
}

func TestRecalculate_MatchesQuotePriceAndMargin(t *testing.T) {
	precio, margen := Recalculate(250, PaymentCash)
	q := NewQuote(250, PaymentCash)

	assert.Equal(t, q.PrecioVentaPublico, precio)
	assert.Equal(t, q.Margen, margen)
}

func TestMarkupPrice(t *testing.T) {
	assert.InDelta(t, 125.0, MarkupPrice(100, 25), 0.001)
	assert.InDelta(t, 100.0, MarkupPrice(100, 0), 0.001)
	assert.InDelta(t, 161.0, MarkupPrice(140, 15), 0.001)
}

func TestPaymentTypeLabel(t *testing.T) {
	assert.Equal(t, "28% - Contado", PaymentTypeLabel(PaymentCash))
	assert.Equal(t, "Sin definir", PaymentTypeLabel(0))
	assert.Equal(t, "Personalizado", PaymentTypeLabel(33))
}
