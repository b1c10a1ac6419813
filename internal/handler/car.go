package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
)

// CarHandler serves the cars subtype CRUD surface. Subtype rows carry the
// full vehicle column set plus category attributes and are addressed by
// their own numeric id.
type CarHandler struct {
	Cars *repository.CarRepo
}

func NewCarHandler(cars *repository.CarRepo) *CarHandler { return &CarHandler{Cars: cars} }

// ListCars handles GET /api/cars.
func (h *CarHandler) ListCars(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.Cars.List(ctx)
	if err != nil {
		return fail(c, err, "Car not found")
	}
	return c.JSON(http.StatusOK, items)
}

// GetCar handles GET /api/cars/:id.
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	car, err := h.Cars.GetByID(ctx, id)
	if err != nil {
		return fail(c, err, "Car not found")
	}
	return c.JSON(http.StatusOK, car)
}

// AddCar handles POST /api/cars/add.
func (h *CarHandler) AddCar(c echo.Context) error {
	var car model.Car
	if err := c.Bind(&car); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if car.VehicleID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Cars.Create(ctx, &car); err != nil {
		return fail(c, err, "Car not found")
	}
	return c.JSON(http.StatusCreated, car)
}

// EditCar handles PUT /api/cars/edit/:id with full-row overwrite semantics.
func (h *CarHandler) EditCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var car model.Car
	if err := c.Bind(&car); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	car.ID = id

	ctx, cancel := reqContext(c)
	defer cancel()

	updated, err := h.Cars.Update(ctx, &car)
	if err != nil {
		return fail(c, err, "Car not found")
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCar handles DELETE /api/cars/delete/:id and echoes the deleted row.
func (h *CarHandler) DeleteCar(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	deleted, err := h.Cars.Delete(ctx, id)
	if err != nil {
		return fail(c, err, "Car not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Car deleted successfully", "car": deleted})
}
