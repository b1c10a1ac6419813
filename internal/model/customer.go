package model

// Customer mirrors the 'customers' table. CustomerID is the human-readable
// primary key ("C" + sequence number). The password hash never leaves the
// server.
type Customer struct {
	CustomerID   string `json:"customer_id"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"-"`
}
