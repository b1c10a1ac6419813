package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
)

// SedanHandler serves the sedans subtype CRUD surface.
type SedanHandler struct {
	Sedans *repository.SedanRepo
}

func NewSedanHandler(sedans *repository.SedanRepo) *SedanHandler {
	return &SedanHandler{Sedans: sedans}
}

func (h *SedanHandler) ListSedans(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.Sedans.List(ctx)
	if err != nil {
		return fail(c, err, "Sedan not found")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SedanHandler) GetSedan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	sedan, err := h.Sedans.GetByID(ctx, id)
	if err != nil {
		return fail(c, err, "Sedan not found")
	}
	return c.JSON(http.StatusOK, sedan)
}

func (h *SedanHandler) AddSedan(c echo.Context) error {
	var sedan model.Sedan
	if err := c.Bind(&sedan); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if sedan.VehicleID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Sedans.Create(ctx, &sedan); err != nil {
		return fail(c, err, "Sedan not found")
	}
	return c.JSON(http.StatusCreated, sedan)
}

func (h *SedanHandler) EditSedan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var sedan model.Sedan
	if err := c.Bind(&sedan); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	sedan.ID = id

	ctx, cancel := reqContext(c)
	defer cancel()

	updated, err := h.Sedans.Update(ctx, &sedan)
	if err != nil {
		return fail(c, err, "Sedan not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *SedanHandler) DeleteSedan(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	deleted, err := h.Sedans.Delete(ctx, id)
	if err != nil {
		return fail(c, err, "Sedan not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Sedan deleted successfully", "sedan": deleted})
}
