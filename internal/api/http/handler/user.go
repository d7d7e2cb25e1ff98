package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/ortholab/depisto_backend/internal/service/user"
	pasetotoken "github.com/ortholab/depisto_backend/pkg/paseto"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// currentUserID extracts the authenticated user's id from the token claims.
func currentUserID(c fiber.Ctx) (uuid.UUID, bool) {
	claims, hasClaims := pasetotoken.ClaimsFromFiber(c)
	if !hasClaims {
		return uuid.UUID{}, false
	}
	return claims.UserID, true
}

// GET /api/v1/users/me
func (h *UserHandler) Me(c fiber.Ctx) error {
	id, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	u, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// PATCH /api/v1/users/me
func (h *UserHandler) UpdateMe(c fiber.Ctx) error {
	id, authed := currentUserID(c)
	if !authed {
		return unauthorized(c)
	}

	var body struct {
		FirstName  *string `json:"first_name"`
		LastName   *string `json:"last_name"`
		Phone      *string `json:"phone"`
		RPPSNumber *string `json:"rpps_number"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), id, user.UpdateProfileRequest{
		FirstName:  body.FirstName,
		LastName:   body.LastName,
		Phone:      body.Phone,
		RPPSNumber: body.RPPSNumber,
	})
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, u)
}

// GET /api/v1/users (admin)
func (h *UserHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Status  string `query:"status"`
		Search  string `query:"search"`
	}
	_ = c.Bind().Query(&q)

	req := user.ListRequest{Page: q.Page, PerPage: q.PerPage}
	if q.Status != "" {
		req.Status = &q.Status
	}
	if q.Search != "" {
		req.Search = &q.Search
	}

	result, err := h.svc.List(c.Context(), req)
	if err != nil {
		return mapUserError(c, err)
	}
	return ok(c, fiber.Map{
		"users":    result.Items,
		"total":    result.Total,
		"page":     result.Page,
		"per_page": result.PerPage,
	})
}

// POST /api/v1/users/:id/suspend (admin)
func (h *UserHandler) Suspend(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := h.svc.Suspend(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// POST /api/v1/users/:id/reinstate (admin)
func (h *UserHandler) Reinstate(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := h.svc.Reinstate(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

// DELETE /api/v1/users/:id (admin)
func (h *UserHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := h.svc.Delete(c.Context(), id); err != nil {
		return mapUserError(c, err)
	}
	return noContent(c)
}

func mapUserError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, user.ErrInvalidPhone):
		return badRequest(c, err.Error())
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, user.ErrNotAdmin):
		return forbidden(c)
	default:
		return internalError(c)
	}
}
