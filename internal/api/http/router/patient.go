package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/ortholab/depisto_backend/internal/api/http/handler"
	"github.com/ortholab/depisto_backend/pkg/authorize"
)

func (r *Router) registerPatientRoutes(
	api fiber.Router,
	ph *handler.PatientHandler,
	ah *handler.AccountHandler,
	prh *handler.PrescriptionHandler,
	bh *handler.BilanHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	patients := api.Group("/patients", authRequired)

	patients.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.List)
	patients.Post("/", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.Create)

	p := patients.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.Get)
	p.Patch("/", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.Update)
	p.Delete("/", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.Delete)
	p.Get("/social-security", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.SocialSecurity)
	p.Get("/age", requirePerm(authorize.ResourcePatient, authorize.ActionManage), ph.Age)

	// Family-space activation
	p.Post("/activation", requirePerm(authorize.ResourcePatientAccount, authorize.ActionManage), ah.IssueActivation)

	// Clinical history
	p.Get("/prescriptions", requirePerm(authorize.ResourcePrescription, authorize.ActionManage), prh.ForPatient)
	p.Get("/bilans", requirePerm(authorize.ResourceBilan, authorize.ActionManage), bh.ForPatient)
}
