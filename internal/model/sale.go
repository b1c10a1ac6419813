package model

// Payment methods accepted on a sale.
const (
	PaymentCash    = "cash"
	PaymentCredit  = "credit"
	PaymentFinance = "finance"
)

// ValidPaymentMethod reports whether m is one of the accepted methods.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCredit || m == PaymentFinance
}

// Sale mirrors the 'sales' table. SaleID is the human-readable primary key
// ("S" + sequence number). A sale is immutable once recorded. FinanceTerm is
// only present when the payment method is finance.
type Sale struct {
	SaleID        string  `json:"sale_id"`
	VehicleID     string  `json:"vehicle_id"`
	CustomerID    string  `json:"customer_id"`
	SaleDate      string  `json:"sale_date"`
	SalePrice     float64 `json:"sale_price"`
	PaymentMethod string  `json:"payment_method"`
	FinanceTerm   *int    `json:"finance_term"`
	Notes         *string `json:"notes"`
}
