package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
)

// VehicleHandler serves the vehicles CRUD surface.
type VehicleHandler struct {
	Vehicles *repository.VehicleRepo
}

func NewVehicleHandler(vehicles *repository.VehicleRepo) *VehicleHandler {
	return &VehicleHandler{Vehicles: vehicles}
}

// ListVehicles handles GET /api/vehicles. The status query parameter filters
// by lifecycle state; "All" or no parameter returns everything.
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	status := c.QueryParam("status")
	if status != "" && status != "All" && !model.ValidStatus(status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status filter"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.Vehicles.List(ctx, status)
	if err != nil {
		return fail(c, err, "Vehicle not found")
	}
	return c.JSON(http.StatusOK, items)
}

// GetVehicle handles GET /api/vehicles/:id.
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	v, err := h.Vehicles.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err, "Vehicle not found")
	}
	return c.JSON(http.StatusOK, v)
}

// AddVehicle handles POST /api/vehicles/add. The identifier is assigned by
// the generator and the status defaults to in_stock when not submitted.
func (h *VehicleHandler) AddVehicle(c echo.Context) error {
	var v model.Vehicle
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if v.Make == "" || v.Model == "" || v.Year == 0 || v.VIN == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "make, model, year and vin are required"})
	}
	if v.Status == "" {
		v.Status = model.StatusInStock
	}
	if !model.ValidStatus(v.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Vehicles.Create(ctx, &v); err != nil {
		return fail(c, err, "Vehicle not found")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message":    "Vehicle added successfully",
		"vehicle_id": v.VehicleID,
	})
}

// EditVehicle handles PUT /api/vehicles/edit/:id. The update is a full-row
// overwrite: unsubmitted fields are written as their zero values, so clients
// resubmit the complete record.
func (h *VehicleHandler) EditVehicle(c echo.Context) error {
	var v model.Vehicle
	if err := c.Bind(&v); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	v.VehicleID = c.Param("id")
	if !model.ValidStatus(v.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Vehicles.Update(ctx, &v); err != nil {
		return fail(c, err, "Vehicle not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Vehicle updated successfully"})
}

// DeleteVehicle handles DELETE /api/vehicles/delete/:id. The retired
// identifier is never reissued.
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Vehicles.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err, "Vehicle not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Vehicle deleted successfully"})
}
