package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/pkg/authorize"
)

func (r *Router) registerPrescriptionRoutes(
	api fiber.Router,
	h *handler.PrescriptionHandler,
	ph *handler.PassationHandler,
	bh *handler.BilanHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	prescriptions := api.Group("/prescriptions", authRequired)

	manage := requirePerm(authorize.ResourcePrescription, authorize.ActionManage)

	prescriptions.Get("/", manage, h.List)
	prescriptions.Post("/", manage, h.Create)
	prescriptions.Get("/overdue", manage, h.Overdue)
	prescriptions.Get("/stats", manage, h.Stats)

	p := prescriptions.Group("/:id")
	p.Get("/", manage, h.Get)
	p.Patch("/", manage, h.Update)
	p.Delete("/", manage, h.Cancel)

	// Sessions under a prescription. Starting is the guardian's move.
	p.Post("/passations", requirePerm(authorize.ResourcePassation, authorize.ActionExecute), ph.Start)
	p.Get("/passations/active", requirePerm(authorize.ResourcePassation, authorize.ActionRead), ph.ActiveForPrescription)
	p.Get("/passations/last", requirePerm(authorize.ResourcePassation, authorize.ActionRead), ph.LastForPrescription)

	p.Get("/bilans", requirePerm(authorize.ResourceBilan, authorize.ActionManage), bh.ForPrescription)
}
