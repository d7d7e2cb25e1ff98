package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/service/patientaccount"
)

// AccountHandler serves the guardian-facing endpoints: account activation
// and the family-portal login.
type AccountHandler struct {
	svc patientaccount.Service
}

func NewAccountHandler(svc patientaccount.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

// POST /api/v1/patients/:id/activation (practitioner)
func (h *AccountHandler) IssueActivation(c fiber.Ctx) error {
	practitionerID, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}
	patientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid patient id")
	}

	if err := h.svc.IssueActivation(c.Context(), practitionerID, patientID); err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, fiber.Map{"message": "activation link sent"})
}

// POST /api/v1/portal/activate (public)
func (h *AccountHandler) Activate(c fiber.Ctx) error {
	var body struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return validationError(c, err)
	}

	p, err := h.svc.Activate(c.Context(), patientaccount.ActivateRequest{
		Token:    body.Token,
		Password: body.Password,
	})
	if err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, fiber.Map{"patient_id": p.ID, "activated": p.Activated})
}

// POST /api/v1/portal/login (public)
func (h *AccountHandler) Login(c fiber.Ctx) error {
	var body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return validationError(c, err)
	}

	tokens, err := h.svc.Login(c.Context(), patientaccount.LoginRequest{
		GuardianEmail: body.Email,
		Password:      body.Password,
	})
	if err != nil {
		return mapAccountError(c, err)
	}
	return ok(c, fiber.Map{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
		"expires_in":    tokens.ExpiresIn,
	})
}

func mapAccountError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, patientaccount.ErrPatientNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, patientaccount.ErrAccessDenied):
		return forbidden(c)
	case errors.Is(err, patientaccount.ErrAlreadyActivated):
		return conflict(c, err.Error())
	case errors.Is(err, patientaccount.ErrTokenInvalid),
		errors.Is(err, patientaccount.ErrTokenExpired),
		errors.Is(err, patientaccount.ErrTokenUsed),
		errors.Is(err, patientaccount.ErrPasswordTooShort):
		return badRequest(c, err.Error())
	case errors.Is(err, patientaccount.ErrInvalidCredentials),
		errors.Is(err, patientaccount.ErrNotActivated):
		return unauthorized(c)
	case errors.Is(err, patientaccount.ErrAccountLocked):
		return tooManyRequests(c, err.Error())
	default:
		return internalError(c)
	}
}
