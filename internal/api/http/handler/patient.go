package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/service/patient"
)

type PatientHandler struct {
	svc patient.Service
}

func NewPatientHandler(svc patient.Service) *PatientHandler {
	return &PatientHandler{svc: svc}
}

func mapPatientError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patient.ErrEmailTaken):
		return conflict(c, err.Error())
	case errors.Is(err, patient.ErrInvalidPhone),
		errors.Is(err, patient.ErrInvalidBirthDate):
		return badRequest(c, err.Error())
	case errors.Is(err, patient.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c)
	}
}

// POST /api/v1/patients
func (h *PatientHandler) Create(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		FirstName      string  `json:"first_name" validate:"required,max=100"`
		LastName       string  `json:"last_name" validate:"required,max=100"`
		BirthDate      string  `json:"birth_date" validate:"required"` // YYYY-MM-DD
		GuardianEmail  string  `json:"guardian_email" validate:"required,email"`
		GuardianPhone  *string `json:"guardian_phone"`
		SocialSecurity *string `json:"social_security"`
		Notes          *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return validationError(c, err)
	}

	birthDate, err := time.Parse("2006-01-02", body.BirthDate)
	if err != nil {
		return badRequest(c, "invalid birth_date, expected YYYY-MM-DD")
	}

	p, err := h.svc.Create(c.Context(), practitionerID, patient.CreateRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		BirthDate:      birthDate,
		GuardianEmail:  body.GuardianEmail,
		GuardianPhone:  body.GuardianPhone,
		SocialSecurity: body.SocialSecurity,
		Notes:          body.Notes,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return created(c, p)
}

// GET /api/v1/patients
func (h *PatientHandler) List(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	var q struct {
		Page         int    `query:"page"`
		PerPage      int    `query:"per_page"`
		Activated    *bool  `query:"activated"`
		AgeMinMonths *int   `query:"age_min_months"`
		AgeMaxMonths *int   `query:"age_max_months"`
		Order        string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), practitionerID, patient.ListRequest{
		Page:         q.Page,
		PerPage:      q.PerPage,
		Activated:    q.Activated,
		AgeMinMonths: q.AgeMinMonths,
		AgeMaxMonths: q.AgeMaxMonths,
		Order:        q.Order,
	})
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, fiber.Map{
		"patients": result.Data,
		"total":    result.Total,
		"page":     result.Page,
		"per_page": result.PerPage,
	})
}

// GET /api/v1/patients/:id
func (h *PatientHandler) Get(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	p, err := h.svc.GetByID(c.Context(), practitionerID, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// PATCH /api/v1/patients/:id
func (h *PatientHandler) Update(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	var body struct {
		FirstName      *string `json:"first_name"`
		LastName       *string `json:"last_name"`
		BirthDate      *string `json:"birth_date"`
		GuardianEmail  *string `json:"guardian_email"`
		GuardianPhone  *string `json:"guardian_phone"`
		SocialSecurity *string `json:"social_security"`
		Notes          *string `json:"notes"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	req := patient.UpdateRequest{
		FirstName:      body.FirstName,
		LastName:       body.LastName,
		GuardianEmail:  body.GuardianEmail,
		GuardianPhone:  body.GuardianPhone,
		SocialSecurity: body.SocialSecurity,
		Notes:          body.Notes,
	}
	if body.BirthDate != nil {
		bd, err := time.Parse("2006-01-02", *body.BirthDate)
		if err != nil {
			return badRequest(c, "invalid birth_date, expected YYYY-MM-DD")
		}
		req.BirthDate = &bd
	}

	p, err := h.svc.Update(c.Context(), practitionerID, id, req)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, p)
}

// DELETE /api/v1/patients/:id
func (h *PatientHandler) Delete(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.Delete(c.Context(), practitionerID, id); err != nil {
		return mapPatientError(c, err)
	}
	return noContent(c)
}

// GET /api/v1/patients/:id/social-security
func (h *PatientHandler) SocialSecurity(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	nir, err := h.svc.SocialSecurity(c.Context(), practitionerID, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, fiber.Map{"social_security": nir})
}

// GET /api/v1/patients/:id/age
func (h *PatientHandler) Age(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	months, err := h.svc.AgeMonths(c.Context(), practitionerID, id)
	if err != nil {
		return mapPatientError(c, err)
	}
	return ok(c, fiber.Map{"age_months": months})
}
