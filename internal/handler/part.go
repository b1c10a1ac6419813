package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/baherjr/OODB-Project/internal/model"
	"github.com/baherjr/OODB-Project/internal/repository"
)

// PartHandler serves the parts catalog and the vehicle-part installation
// records.
type PartHandler struct {
	Parts        *repository.PartRepo
	VehicleParts *repository.VehiclePartRepo
}

func NewPartHandler(parts *repository.PartRepo, vehicleParts *repository.VehiclePartRepo) *PartHandler {
	return &PartHandler{Parts: parts, VehicleParts: vehicleParts}
}

// AddPart handles POST /api/parts/add. Part identifiers are supplied by the
// caller, unlike the generated vehicle and customer ones.
func (h *PartHandler) AddPart(c echo.Context) error {
	var p model.Part
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if p.PartID == "" || p.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "part_id and name are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Parts.Create(ctx, &p); err != nil {
		return fail(c, err, "Part not found")
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Part added successfully", "part": p})
}

// ListParts handles GET /api/parts.
func (h *PartHandler) ListParts(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.Parts.List(ctx)
	if err != nil {
		return fail(c, err, "Part not found")
	}
	return c.JSON(http.StatusOK, items)
}

// GetPart handles GET /api/parts/:id.
func (h *PartHandler) GetPart(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	p, err := h.Parts.GetByID(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err, "Part not found")
	}
	return c.JSON(http.StatusOK, p)
}

// EditPart handles PUT /api/parts/edit/:id with full-row overwrite semantics.
func (h *PartHandler) EditPart(c echo.Context) error {
	var p model.Part
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	p.PartID = c.Param("id")
	if p.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Parts.Update(ctx, &p); err != nil {
		return fail(c, err, "Part not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Part updated successfully", "part": p})
}

// DeletePart handles DELETE /api/parts/delete/:id.
func (h *PartHandler) DeletePart(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Parts.Delete(ctx, c.Param("id")); err != nil {
		return fail(c, err, "Part not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Part deleted successfully"})
}

// AddVehiclePart handles POST /api/vehicleParts/add, recording that a part
// is installed on a vehicle.
func (h *PartHandler) AddVehiclePart(c echo.Context) error {
	var vp model.VehiclePart
	if err := c.Bind(&vp); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if vp.VehicleID == "" || vp.PartID == "" || vp.Quantity <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "vehicle_id, part_id and a positive quantity are required"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.VehicleParts.Create(ctx, &vp); err != nil {
		return fail(c, err, "Part not found")
	}
	return c.JSON(http.StatusCreated, vp)
}

// ListVehicleParts handles GET /api/vehicles/:id/parts.
func (h *PartHandler) ListVehicleParts(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	items, err := h.VehicleParts.ListByVehicle(ctx, c.Param("id"))
	if err != nil {
		return fail(c, err, "Vehicle not found")
	}
	return c.JSON(http.StatusOK, items)
}
