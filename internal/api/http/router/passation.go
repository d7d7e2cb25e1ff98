package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/pkg/authorize"
)

func (r *Router) registerPassationRoutes(
	api fiber.Router,
	h *handler.PassationHandler,
	bh *handler.BilanHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	passations := api.Group("/passations", authRequired)

	execute := requirePerm(authorize.ResourcePassation, authorize.ActionExecute)
	read := requirePerm(authorize.ResourcePassation, authorize.ActionRead)

	passations.Get("/stats", requirePerm(authorize.ResourcePassation, authorize.ActionManage), h.Stats)

	p := passations.Group("/:id")
	p.Get("/", read, h.Get)
	p.Post("/resume", execute, h.Resume)
	p.Post("/suspend", execute, h.Suspend)
	p.Post("/abandon", execute, h.Abandon)
	p.Post("/finish", execute, h.Finish)

	p.Put("/answers/:item", execute, h.RecordAnswer)
	p.Patch("/answers", execute, h.RecordAnswers)

	p.Post("/scores", requirePerm(authorize.ResourcePassation, authorize.ActionManage), h.ComputeScores)
	p.Get("/consistency", requirePerm(authorize.ResourcePassation, authorize.ActionManage), h.ValidateConsistency)

	p.Post("/bilan", requirePerm(authorize.ResourceBilan, authorize.ActionManage), bh.Generate)
}
