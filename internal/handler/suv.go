package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
)

// SUVHandler serves the suvs subtype CRUD surface.
type SUVHandler struct {
	SUVs *repository.SUVRepo
}

func NewSUVHandler(suvs *repository.SUVRepo) *SUVHandler { return &SUVHandler{SUVs: suvs} }

func (h *SUVHandler) ListSUVs(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.SUVs.List(ctx)
	if err != nil {
		return fail(c, err, "SUV not found")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SUVHandler) GetSUV(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	suv, err := h.SUVs.GetByID(ctx, id)
	if err != nil {
		return fail(c, err, "SUV not found")
	}
	return c.JSON(http.StatusOK, suv)
}

func (h *SUVHandler) AddSUV(c echo.Context) error {
	var suv model.SUV
	if err := c.Bind(&suv); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if suv.VehicleID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.SUVs.Create(ctx, &suv); err != nil {
		return fail(c, err, "SUV not found")
	}
	return c.JSON(http.StatusCreated, suv)
}

func (h *SUVHandler) EditSUV(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var suv model.SUV
	if err := c.Bind(&suv); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	suv.ID = id

	ctx, cancel := reqContext(c)
	defer cancel()

	updated, err := h.SUVs.Update(ctx, &suv)
	if err != nil {
		return fail(c, err, "SUV not found")
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *SUVHandler) DeleteSUV(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	deleted, err := h.SUVs.Delete(ctx, id)
	if err != nil {
		return fail(c, err, "SUV not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "SUV deleted successfully", "suv": deleted})
}
