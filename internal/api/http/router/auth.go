package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
)

func (r *Router) registerAuthRoutes(api fiber.Router, h *handler.AuthHandler, authRequired fiber.Handler) {
	auth := api.Group("/auth")

	auth.Post("/register", h.Register)
	auth.Post("/login", h.Login)
	auth.Post("/refresh", h.Refresh)

	auth.Post("/logout", authRequired, h.Logout)
	auth.Post("/password", authRequired, h.ChangePassword)
}
