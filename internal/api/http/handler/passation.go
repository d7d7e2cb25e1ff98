package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/ide"
	"github.com/ortholab/depisto_backend/internal/service/passation"
)

type PassationHandler struct {
	svc passation.Service
}

func NewPassationHandler(svc passation.Service) *PassationHandler {
	return &PassationHandler{svc: svc}
}

func mapPassationError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, passation.ErrPassationNotFound),
		errors.Is(err, passation.ErrPrescriptionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, passation.ErrActivePassationExists),
		errors.Is(err, passation.ErrPrescriptionNotStartable),
		errors.Is(err, passation.ErrNotSuspendable),
		errors.Is(err, passation.ErrNotResumable),
		errors.Is(err, passation.ErrNotFinishable),
		errors.Is(err, passation.ErrAlreadyTerminated):
		return conflict(c, err.Error())
	case errors.Is(err, ide.ErrInvalidAnswer),
		errors.Is(err, ide.ErrInvalidItemKey),
		errors.Is(err, ide.ErrNoAnswers),
		errors.Is(err, passation.ErrWrongTestKind):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// translateAnswer accepts the canonical yes/no values plus the legacy
// numeric questionnaire encoding, where only 1 marks an acquired item.
func translateAnswer(raw string) (string, error) {
	switch raw {
	case "yes", "oui", "1":
		return string(ide.AnswerYes), nil
	case "no", "non", "0", "2":
		return string(ide.AnswerNo), nil
	default:
		return "", ide.ErrInvalidAnswer
	}
}

// POST /api/v1/prescriptions/:id/passations
func (h *PassationHandler) Start(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	var body struct {
		BirthDate string `json:"birth_date"` // YYYY-MM-DD
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	birthDate, err := time.Parse("2006-01-02", body.BirthDate)
	if err != nil {
		return badRequest(c, "invalid birth_date, expected YYYY-MM-DD")
	}

	ip := c.IP()
	ua := c.Get("User-Agent")
	req := passation.StartRequest{BirthDate: birthDate}
	if ip != "" {
		req.IPAddress = &ip
	}
	if ua != "" {
		req.UserAgent = &ua
	}

	p, err := h.svc.Start(c.Context(), prescriptionID, req)
	if err != nil {
		return mapPassationError(c, err)
	}
	return created(c, p)
}

// GET /api/v1/passations/:id
func (h *PassationHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	p, err := h.svc.Get(c.Context(), id)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, p)
}

// POST /api/v1/passations/:id/resume
func (h *PassationHandler) Resume(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	p, err := h.svc.Resume(c.Context(), id)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, p)
}

// POST /api/v1/passations/:id/suspend
func (h *PassationHandler) Suspend(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	if err := h.svc.Suspend(c.Context(), id); err != nil {
		return mapPassationError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/passations/:id/abandon
func (h *PassationHandler) Abandon(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	if err := h.svc.Abandon(c.Context(), id); err != nil {
		return mapPassationError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/passations/:id/finish
func (h *PassationHandler) Finish(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	if err := h.svc.Finish(c.Context(), id); err != nil {
		return mapPassationError(c, err)
	}
	return noContent(c)
}

// PUT /api/v1/passations/:id/answers/:item
func (h *PassationHandler) RecordAnswer(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	var body struct {
		Value       string  `json:"value"`
		CurrentPart *string `json:"current_part"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	value, err := translateAnswer(body.Value)
	if err != nil {
		return badRequest(c, "invalid answer value")
	}

	p, err := h.svc.RecordAnswer(c.Context(), id, c.Params("item"), value, body.CurrentPart)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, fiber.Map{"progress": p.Progress, "status": p.Status})
}

// PATCH /api/v1/passations/:id/answers
func (h *PassationHandler) RecordAnswers(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	var body struct {
		Answers     map[string]string `json:"answers"`
		CurrentPart *string           `json:"current_part"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if len(body.Answers) == 0 {
		return badRequest(c, "answers is empty")
	}

	translated := make(map[string]string, len(body.Answers))
	for key, raw := range body.Answers {
		value, err := translateAnswer(raw)
		if err != nil {
			return badRequest(c, "invalid answer value for item "+key)
		}
		translated[key] = value
	}

	p, err := h.svc.RecordAnswers(c.Context(), id, translated, body.CurrentPart)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, fiber.Map{
		"progress": p.Progress,
		"status":   p.Status,
		"saved":    len(translated),
	})
}

// POST /api/v1/passations/:id/scores
func (h *PassationHandler) ComputeScores(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	scores, err := h.svc.ComputeScores(c.Context(), id)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, scores)
}

// GET /api/v1/passations/:id/consistency
func (h *PassationHandler) ValidateConsistency(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid passation id")
	}

	report, err := h.svc.ValidateConsistency(c.Context(), id)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, report)
}

// GET /api/v1/prescriptions/:id/passations/active
func (h *PassationHandler) ActiveForPrescription(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	p, err := h.svc.ActiveForPrescription(c.Context(), prescriptionID)
	if err != nil {
		return mapPassationError(c, err)
	}
	if p == nil {
		return notFound(c, "no active passation")
	}
	return ok(c, p)
}

// GET /api/v1/prescriptions/:id/passations/last
func (h *PassationHandler) LastForPrescription(c fiber.Ctx) error {
	prescriptionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid prescription id")
	}

	p, err := h.svc.LastForPrescription(c.Context(), prescriptionID)
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, p)
}

// GET /api/v1/passations/stats
func (h *PassationHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return mapPassationError(c, err)
	}
	return ok(c, stats)
}
