package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/pkg/authorize"
)

func (r *Router) registerCatalogRoutes(
	api fiber.Router,
	h *handler.CatalogHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	tests := api.Group("/tests", authRequired)

	tests.Get("/ide", requirePerm(authorize.ResourceTest, authorize.ActionRead), h.ActiveIDETest)
	tests.Get("/:id", requirePerm(authorize.ResourceTest, authorize.ActionRead), h.Get)
	tests.Get("/:id/items", requirePerm(authorize.ResourceTestItem, authorize.ActionList), h.Items)
}
