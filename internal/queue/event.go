// Package queue defines message payloads exchanged over the message broker.
package queue

// SaleRecordedEvent is published when a sale is successfully recorded. It
// carries enough information for downstream consumers to log, notify, or
// feed analytics without querying the primary database.
type SaleRecordedEvent struct {
	SaleID        string  `json:"sale_id"`
	VehicleID     string  `json:"vehicle_id"`
	CustomerID    string  `json:"customer_id"`
	SaleDate      string  `json:"sale_date"`
	SalePrice     float64 `json:"sale_price"`
	PaymentMethod string  `json:"payment_method"`
	RecordedAt    string  `json:"recorded_at"`
}
