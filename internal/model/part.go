package model

// Part mirrors the 'parts' table. Part identifiers are supplied by the
// client, unlike the generated vehicle/customer/sale identifiers.
type Part struct {
	PartID           string  `json:"part_id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	Category         string  `json:"category"`
	PartNumber       string  `json:"part_number"`
	Price            float64 `json:"price"`
	QuantityInStock  int     `json:"quantity_in_stock"`
	ReorderThreshold int     `json:"reorder_threshold"`
	ReorderQuantity  int     `json:"reorder_quantity"`
	SupplierID       string  `json:"supplier_id"`
}

// VehiclePart mirrors the 'vehicle_parts' join table linking a part to a
// vehicle it was installed on.
type VehiclePart struct {
	VehicleID     string  `json:"vehicle_id"`
	PartID        string  `json:"part_id"`
	Quantity      int     `json:"quantity"`
	InstalledDate *string `json:"installed_date"`
}
