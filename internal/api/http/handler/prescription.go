package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/service/prescription"
)

type PrescriptionHandler struct {
	svc prescription.Service
}

func NewPrescriptionHandler(svc prescription.Service) *PrescriptionHandler {
	return &PrescriptionHandler{svc: svc}
}

func mapPrescriptionError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, prescription.ErrPrescriptionNotFound),
		errors.Is(err, prescription.ErrPatientNotFound),
		errors.Is(err, prescription.ErrTestNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, prescription.ErrAccessDenied),
		errors.Is(err, prescription.ErrPatientNotOwned):
		return forbidden(c)
	case errors.Is(err, prescription.ErrAgeOutOfRange):
		return badRequest(c, err.Error())
	case errors.Is(err, prescription.ErrNotCancellable),
		errors.Is(err, prescription.ErrNotEditable):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /api/v1/prescriptions
func (h *PrescriptionHandler) Create(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		PatientID    string     `json:"patient_id" validate:"required,uuid"`
		TestID       string     `json:"test_id" validate:"required,uuid"`
		GdprConsent  bool       `json:"gdpr_consent"`
		Priority     int        `json:"priority" validate:"min=0,max=3"`
		Deadline     *time.Time `json:"deadline"`
		Instructions *string    `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return validationError(c, err)
	}

	patientID, err := uuid.Parse(body.PatientID)
	if err != nil {
		return badRequest(c, "invalid patient_id")
	}
	testID, err := uuid.Parse(body.TestID)
	if err != nil {
		return badRequest(c, "invalid test_id")
	}

	p, err := h.svc.Create(c.Context(), practitionerID, prescription.CreateRequest{
		PatientID:    patientID,
		TestID:       testID,
		GdprConsent:  body.GdprConsent,
		Priority:     body.Priority,
		Deadline:     body.Deadline,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return created(c, p)
}

// GET /api/v1/prescriptions
func (h *PrescriptionHandler) List(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	var q struct {
		Status    string `query:"status"`
		PatientID string `query:"patient_id"`
		Page      int    `query:"page"`
		PerPage   int    `query:"per_page"`
	}
	_ = c.Bind().Query(&q)

	req := prescription.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.PatientID != "" {
		id, err := uuid.Parse(q.PatientID)
		if err != nil {
			return badRequest(c, "invalid patient_id")
		}
		req.PatientID = &id
	}

	rows, err := h.svc.List(c.Context(), practitionerID, req)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, fiber.Map{"prescriptions": rows})
}

// GET /api/v1/prescriptions/:id
func (h *PrescriptionHandler) Get(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	p, err := h.svc.Get(c.Context(), id, practitionerID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, p)
}

// PATCH /api/v1/prescriptions/:id
func (h *PrescriptionHandler) Update(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		GdprConsent  *bool      `json:"gdpr_consent"`
		Priority     *int       `json:"priority"`
		Deadline     *time.Time `json:"deadline"`
		Instructions *string    `json:"instructions"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, practitionerID, prescription.UpdateRequest{
		GdprConsent:  body.GdprConsent,
		Priority:     body.Priority,
		Deadline:     body.Deadline,
		Instructions: body.Instructions,
	})
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, p)
}

// DELETE /api/v1/prescriptions/:id
func (h *PrescriptionHandler) Cancel(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	if err := h.svc.Cancel(c.Context(), id, practitionerID); err != nil {
		return mapPrescriptionError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/patients/:id/prescriptions
func (h *PrescriptionHandler) ForPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	rows, err := h.svc.ForPatient(c.Context(), patientID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, fiber.Map{"prescriptions": rows})
}

// GET /api/v1/prescriptions/overdue
func (h *PrescriptionHandler) Overdue(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	rows, err := h.svc.Overdue(c.Context(), practitionerID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, fiber.Map{"prescriptions": rows})
}

// GET /api/v1/prescriptions/stats
func (h *PrescriptionHandler) Stats(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	stats, err := h.svc.Stats(c.Context(), practitionerID)
	if err != nil {
		return mapPrescriptionError(c, err)
	}
	return ok(c, stats)
}
