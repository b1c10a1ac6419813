package model

// The subtype tables (cars, sedans, suvs, trucks) are denormalized: each
// carries its own auto-increment id, repeats the vehicle columns and adds
// category-specific attributes. VehicleID references vehicles.vehicle_id.

// SubtypeBase holds the columns shared by every vehicle subtype table.
type SubtypeBase struct {
	ID            uint64  `json:"id"`
	VehicleID     string  `json:"vehicle_id"`
	Make          string  `json:"make"`
	Model         string  `json:"model"`
	Year          int     `json:"year"`
	VIN           string  `json:"vin"`
	PurchasePrice float64 `json:"purchase_price"`
	Price         float64 `json:"price"`
	DateAcquired  string  `json:"date_acquired"`
	Status        string  `json:"status"`
	BodyType      string  `json:"body_type"`
	FuelType      string  `json:"fuel_type"`
	Transmission  string  `json:"transmission"`
	Mileage       int64   `json:"mileage"`
	EngineSize    float64 `json:"engine_size"`
}

// Car mirrors the 'cars' table. It adds nothing beyond the shared columns.
type Car struct {
	SubtypeBase
}

// Sedan mirrors the 'sedans' table.
type Sedan struct {
	SubtypeBase
	LuxuryLevel string `json:"luxury_level"`
}

// SUV mirrors the 'suvs' table.
type SUV struct {
	SubtypeBase
	SeatingCapacity int     `json:"seating_capacity"`
	CargoCapacity   float64 `json:"cargo_capacity"`
	GroundClearance float64 `json:"ground_clearance"`
	AWD4WD          bool    `json:"awd_4wd"`
}

// Truck mirrors the 'trucks' table.
type Truck struct {
	SubtypeBase
	BedLength       float64 `json:"bed_length"`
	TowingCapacity  int     `json:"towing_capacity"`
	PayloadCapacity int     `json:"payload_capacity"`
	CabType         string  `json:"cab_type"`
}
