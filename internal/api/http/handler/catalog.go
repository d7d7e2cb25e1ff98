package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/service/catalog"
)

type CatalogHandler struct {
	svc catalog.Service
}

func NewCatalogHandler(svc catalog.Service) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func mapCatalogError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, catalog.ErrTestNotFound),
		errors.Is(err, catalog.ErrItemNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /api/v1/tests/ide
func (h *CatalogHandler) ActiveIDETest(c fiber.Ctx) error {
	t, err := h.svc.ActiveIDETest(c.Context())
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, t)
}

// GET /api/v1/tests/:id
func (h *CatalogHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid test id")
	}

	t, err := h.svc.GetTest(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, t)
}

// GET /api/v1/tests/:id/items?part=B&domain=SO&age_months=30
func (h *CatalogHandler) Items(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid test id")
	}

	if part := c.Query("part"); part != "" {
		items, err := h.svc.ItemsForPart(c.Context(), id, ide.Part(part))
		if err != nil {
			return mapCatalogError(c, err)
		}
		return ok(c, fiber.Map{"items": items})
	}

	if domain := c.Query("domain"); domain != "" {
		items, err := h.svc.ItemsForDomain(c.Context(), id, ide.Domain(domain))
		if err != nil {
			return mapCatalogError(c, err)
		}
		return ok(c, fiber.Map{"items": items})
	}

	if raw := c.Query("age_months"); raw != "" {
		age, err := strconv.Atoi(raw)
		if err != nil || age < 0 {
			return badRequest(c, "invalid age_months")
		}
		items, err := h.svc.ItemsForAge(c.Context(), id, age)
		if err != nil {
			return mapCatalogError(c, err)
		}
		return ok(c, fiber.Map{"items": items})
	}

	items, err := h.svc.Items(c.Context(), id)
	if err != nil {
		return mapCatalogError(c, err)
	}
	return ok(c, fiber.Map{"items": items})
}
