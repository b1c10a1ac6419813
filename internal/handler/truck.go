package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
)

// TruckHandler serves the trucks subtype CRUD surface.
type TruckHandler struct {
	Trucks *repository.TruckRepo
}

func NewTruckHandler(trucks *repository.TruckRepo) *TruckHandler {
	return &TruckHandler{Trucks: trucks}
}

func (h *TruckHandler) ListTrucks(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.Trucks.List(ctx)
	if err != nil {
		return fail(c, err, "Truck not found")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *TruckHandler) GetTruck(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	truck, err := h.Trucks.GetByID(ctx, id)
	if err != nil {
		return fail(c, err, "Truck not found")
	}
	return c.JSON(http.StatusOK, truck)
}

func (h *TruckHandler) AddTruck(c echo.Context) error {
	var truck model.Truck
	if err := c.Bind(&truck); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if truck.VehicleID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Trucks.Create(ctx, &truck); err != nil {
		return fail(c, err, "Truck not found")
	}
	return c.JSON(http.StatusCreated, truck)
}

func (h *TruckHandler) EditTruck(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var truck model.Truck
	if err := c.Bind(&truck); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	truck.ID = id

	ctx, cancel := reqContext(c)
	defer cancel()

	updated, err := h.Trucks.Update(ctx, &truck)
	if err != nil {
		return fail(c, err, "Truck not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *TruckHandler) DeleteTruck(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	deleted, err := h.Trucks.Delete(ctx, id)
	if err != nil {
		return fail(c, err, "Truck not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Truck deleted successfully", "truck": deleted})
}
