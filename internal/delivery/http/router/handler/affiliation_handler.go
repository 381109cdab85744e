package handler

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/delivery/http/response"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AffiliationHandler holds dependencies for affiliation handlers.
type AffiliationHandler struct {
	uc     usecase.AffiliationUsecase
	logger *slog.Logger
}

// NewAffiliationHandler is the constructor for AffiliationHandler, injected by Fx.
func NewAffiliationHandler(uc usecase.AffiliationUsecase, logger *slog.Logger) *AffiliationHandler {
	return &AffiliationHandler{uc: uc, logger: logger}
}

type createAffiliationRequest struct {
	UserID       uuid.UUID  `json:"userId"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	SpecialtyID  *uuid.UUID `json:"specialtyId"`
	Role         string     `json:"role"`
}

type affiliationView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"userId"`
	DepartmentID   uuid.UUID  `json:"departmentId"`
	SpecialtyID    *uuid.UUID `json:"specialtyId,omitempty"`
	Role           string     `json:"role"`
	DepartmentName string     `json:"departmentName,omitempty"`
	SpecialtyName  string     `json:"specialtyName,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

func newAffiliationView(a *entity.Affiliation) *affiliationView {
	return &affiliationView{
		ID:             a.ID,
		UserID:         a.UserID,
		DepartmentID:   a.DepartmentID,
		SpecialtyID:    a.SpecialtyID,
		Role:           a.Role.String(),
		DepartmentName: a.DepartmentName,
		SpecialtyName:  a.SpecialtyName,
		CreatedAt:      a.CreatedAt,
	}
}

// Create links a user to a department or specialty.
func (h *AffiliationHandler) Create(c echo.Context) error {
	var req createAffiliationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de afiliación inválidos")
	}

	affiliation, err := h.uc.Create(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), &usecase.CreateAffiliationInput{
		UserID:       req.UserID,
		DepartmentID: req.DepartmentID,
		SpecialtyID:  req.SpecialtyID,
		Role:         req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAffiliationView(affiliation), "Afiliación creada")
}

// ListByUser returns all affiliations of one user.
func (h *AffiliationHandler) ListByUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("userId no es un identificador válido"))
	}

	affiliations, err := h.uc.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*affiliationView, 0, len(affiliations))
	for _, a := range affiliations {
		views = append(views, newAffiliationView(a))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Delete removes an affiliation by ID.
func (h *AffiliationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	err = h.uc.Delete(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Afiliación eliminada")
}
