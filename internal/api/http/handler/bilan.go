package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/service/bilan"
)

type BilanHandler struct {
	svc bilan.Service
}

func NewBilanHandler(svc bilan.Service) *BilanHandler {
	return &BilanHandler{svc: svc}
}

func mapBilanError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, bilan.ErrBilanNotFound),
		errors.Is(err, bilan.ErrPassationNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, bilan.ErrPassationNotFinished),
		errors.Is(err, bilan.ErrBilanImmutable),
		errors.Is(err, bilan.ErrNotValidated),
		errors.Is(err, bilan.ErrNoScores):
		return conflict(c, err.Error())
	case errors.Is(err, bilan.ErrDifferentPatients):
		return badRequest(c, err.Error())
	case errors.Is(err, bilan.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/passations/:id/bilan
func (h *BilanHandler) Generate(c fiber.Ctx) error {
	passationID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	b, err := h.svc.Generate(c.Context(), passationID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return created(c, b)
}

// GET /api/v1/bilans/:id
func (h *BilanHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid bilan id")
	}

	b, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, b)
}

// PATCH /api/v1/bilans/:id/review
func (h *BilanHandler) Review(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid bilan id")
	}

	var body struct {
		Comments        *string `json:"comments"`
		Recommendations *string `json:"recommendations"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	b, err := h.svc.Review(c.Context(), id, bilan.ReviewRequest{
		PractitionerID:  practitionerID,
		Comments:        body.Comments,
		Recommendations: body.Recommendations,
	})
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, b)
}

// POST /api/v1/bilans/:id/validate
func (h *BilanHandler) Validate(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid bilan id")
	}

	// The body is optional: validation may carry final comments.
	var body struct {
		Comments *string `json:"comments"`
	}
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&body); err != nil {
			return badRequest(c, "invalid request body")
		}
	}

	b, err := h.svc.Validate(c.Context(), id, practitionerID, body.Comments)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, b)
}

// POST /api/v1/bilans/:id/finalize
func (h *BilanHandler) Finalize(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid bilan id")
	}

	b, err := h.svc.Finalize(c.Context(), id, practitionerID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, b)
}

// GET /api/v1/prescriptions/:id/bilans
func (h *BilanHandler) ForPrescription(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	rows, err := h.svc.ForPrescription(c.Context(), prescriptionID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, fiber.Map{"bilans": rows})
}

// GET /api/v1/patients/:id/bilans
func (h *BilanHandler) ForPatient(c fiber.Ctx) error {
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	rows, err := h.svc.ForPatient(c.Context(), patientID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, fiber.Map{"bilans": rows})
}

// GET /api/v1/bilans/pending
func (h *BilanHandler) PendingValidation(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	rows, err := h.svc.PendingValidation(c.Context(), practitionerID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, fiber.Map{"bilans": rows})
}

// GET /api/v1/bilans/:id/summary
func (h *BilanHandler) Summary(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid bilan id")
	}

	s, err := h.svc.ExecutiveSummary(c.Context(), id)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, s)
}

// GET /api/v1/bilans/compare?older=<id>&newer=<id>
func (h *BilanHandler) Compare(c fiber.Ctx) error {
	olderID, err := uuid.Parse(c.Query("older"))
	if err != nil {
		return badRequest(c, "invalid older bilan id")
	}
	newerID, err := uuid.Parse(c.Query("newer"))
	if err != nil {
		return badRequest(c, "invalid newer bilan id")
	}

	cmp, err := h.svc.Compare(c.Context(), olderID, newerID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, cmp)
}

// POST /api/v1/bilans/:id/export
func (h *BilanHandler) ExportPDF(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid bilan id")
	}

	url, err := h.svc.ExportPDF(c.Context(), id)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, fiber.Map{"download_url": url})
}

// GET /api/v1/bilans/stats
func (h *BilanHandler) Stats(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	stats, err := h.svc.Stats(c.Context(), practitionerID)
	if err != nil {
		return mapBilanError(c, err)
	}
	return ok(c, stats)
}
