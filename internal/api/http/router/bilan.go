package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/pkg/authorize"
)

func (r *Router) registerBilanRoutes(
	api fiber.Router,
	h *handler.BilanHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	bilans := api.Group("/bilans", authRequired)

	manage := requirePerm(authorize.ResourceBilan, authorize.ActionManage)

	bilans.Get("/pending", manage, h.PendingValidation)
	bilans.Get("/compare", manage, h.Compare)
	bilans.Get("/stats", manage, h.Stats)

	b := bilans.Group("/:id")
	b.Get("/", manage, h.Get)
	b.Patch("/review", manage, h.Review)
	b.Post("/validate", requirePerm(authorize.ResourceBilan, authorize.ActionValidate), h.Validate)
	b.Post("/finalize", requirePerm(authorize.ResourceBilan, authorize.ActionValidate), h.Finalize)
	b.Get("/summary", manage, h.Summary)
	b.Post("/export", requirePerm(authorize.ResourceBilan, authorize.ActionExport), h.ExportPDF)
}
