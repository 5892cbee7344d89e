package response

import (
	"time"

	"taller_pos/internal/domain/entities"
)

type DeliveryPaymentResponse struct {
	ID      string    `json:"id"`
	OrderID string    `json:"order_id"`
	Amount  float64   `json:"amount"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func FromDeliveryPayment(p entities.DeliveryPayment) DeliveryPaymentResponse {
	return DeliveryPaymentResponse{
		ID:      p.ID,
		OrderID: p.OrderID,
		Amount:  p.Amount,
		Date:    p.Date,
		Status:  string(p.Status),
	}
}

func FromDeliveryPayments(payments []entities.DeliveryPayment) []DeliveryPaymentResponse {
	out := make([]DeliveryPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromDeliveryPayment(p))
	}
	return out
}
