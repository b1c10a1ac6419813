// Package model defines the persisted entities of the dealership API and the
// JSON field names the HTTP surface exposes. Each struct mirrors one table.
package model

// Vehicle status values. A vehicle starts life in stock, may move to
// maintenance, and is marked sold by an explicit status update; recording a
// sale alone does not change it.
const (
	StatusInStock     = "in_stock"
	StatusSold        = "sold"
	StatusMaintenance = "maintenance"
)

// ValidStatus reports whether s is one of the known vehicle statuses.
func ValidStatus(s string) bool {
	return s == StatusInStock || s == StatusSold || s == StatusMaintenance
}

// Vehicle mirrors the 'vehicles' table. VehicleID is the human-readable
// primary key ("V" + sequence number) assigned at creation.
type Vehicle struct {
	VehicleID     string  `json:"vehicle_id"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	VIN           string  `json:"vin"`
	PurchasePrice float64 `json:"purchase_price"`
	Price         float64 `json:"price"`
	DateAcquired  string  `json:"date_acquired"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at,omitempty"`
	UpdatedAt     string  `json:"updated_at,omitempty"`
}
