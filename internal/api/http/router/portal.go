package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
)

// Guardian-facing endpoints. Activation and login are public by nature;
// everything else the portal uses goes through the passation routes.
func (r *Router) registerPortalRoutes(api fiber.Router, h *handler.AccountHandler) {
	portal := api.Group("/portal")

	portal.Post("/activate", h.Activate)
	portal.Post("/login", h.Login)
}
