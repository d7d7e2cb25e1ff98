package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/pkg/authorize"
)

func (r *Router) registerUserRoutes(
	api fiber.Router,
	h *handler.UserHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	users := api.Group("/users", authRequired)

	users.Get("/me", h.Me)
	users.Patch("/me", h.UpdateMe)

	// Platform administration
	users.Get("/", requirePerm(authorize.ResourceUser, authorize.ActionList), h.List)
	users.Post("/:id/suspend", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Suspend)
	users.Post("/:id/reinstate", requirePerm(authorize.ResourceUser, authorize.ActionUpdate), h.Reinstate)
	users.Delete("/:id", requirePerm(authorize.ResourceUser, authorize.ActionDelete), h.Delete)
}
