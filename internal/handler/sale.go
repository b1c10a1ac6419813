package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/queue"
	"github.com/baherjr/OODB-Project/internal/repository"
	queue_publisher "github.com/baherjr/OODB-Project/internal/service"
)

// SaleHandler serves sale recording and listing. Recording a sale never
// touches the vehicle row; marking a vehicle sold stays an explicit edit.
type SaleHandler struct {
	Sales *repository.SaleRepo
}

func NewSaleHandler(sales *repository.SaleRepo) *SaleHandler { return &SaleHandler{Sales: sales} }

// AddSale handles POST /api/sales/add. Customers may only record sales
// against their own account; admins may record for anyone. finance_term is
// required for finance purchases and rejected for the rest.
func (h *SaleHandler) AddSale(c echo.Context) error {
	var s model.Sale
	if err := c.Bind(&s); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if s.VehicleID == "" || s.CustomerID == "" || s.SaleDate == "" || s.SalePrice <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id, customer_id, sale_date and a positive sale_price are required"})
	}
	if !model.ValidPaymentMethod(s.PaymentMethod) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment_method must be cash, credit or finance"})
	}
	if s.PaymentMethod == model.PaymentFinance {
		if s.FinanceTerm == nil || *s.FinanceTerm <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "finance_term is required for finance purchases"})
		}
	} else {
		s.FinanceTerm = nil
	}

	cl := currentClaims(c)
	if cl == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if !cl.IsAdmin() && cl.CustomerID != s.CustomerID {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Sales.Create(ctx, &s); err != nil {
		return fail(c, err, "Sale not found")
	}

	// Best effort: a broker outage must not fail the sale.
	go func(s model.Sale) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		if err := queue_publisher.PublishSaleRecorded(pubCtx, queue.SaleRecordedEvent{
			SaleID:        s.SaleID,
			VehicleID:     s.VehicleID,
			CustomerID:    s.CustomerID,
			SaleDate:      s.SaleDate,
			SalePrice:     s.SalePrice,
			PaymentMethod: s.PaymentMethod,
			RecordedAt:    time.Now().UTC().Format(time.RFC3339),
		}); err != nil {
			logrus.WithError(err).WithField("sale_id", s.SaleID).Warn("sale event publish failed")
		}
	}(s)

	return c.JSON(http.StatusCreated, echo.Map{"message": "Sale recorded", "sale": s})
}

// ListSales handles GET /api/sales. Admins see everything; a customer sees
// only their own purchases.
func (h *SaleHandler) ListSales(c echo.Context) error {
	cl := currentClaims(c)
	if cl == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	var (
		items []*model.Sale
		err   error
	)
	if cl.IsAdmin() {
		items, err = h.Sales.List(ctx)
	} else {
		items, err = h.Sales.ListByCustomer(ctx, cl.CustomerID)
	}
	if err != nil {
		return fail(c, err, "Sale not found")
	}
	return c.JSON(http.StatusOK, items)
}
