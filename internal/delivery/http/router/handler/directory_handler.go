package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/delivery/http/response"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for department and specialty handlers.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{uc: uc, logger: logger}
}

type createDepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateDepartment adds a department to the clinical directory.
func (h *DirectoryHandler) CreateDepartment(c echo.Context) error {
	var req createDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de departamento inválidos")
	}

	department, err := h.uc.CreateDepartment(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), &usecase.CreateDepartmentInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, department, "Departamento creado")
}

// ListDepartments returns all departments ordered by name.
func (h *DirectoryHandler) ListDepartments(c echo.Context) error {
	departments, err := h.uc.ListDepartments(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, departments, "")
}

type createSpecialtyRequest struct {
	Name         string    `json:"name"`
	DepartmentID uuid.UUID `json:"departmentId"`
	Description  string    `json:"description"`
}

// CreateSpecialty adds a specialty under an existing department.
func (h *DirectoryHandler) CreateSpecialty(c echo.Context) error {
	var req createSpecialtyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de especialidad inválidos")
	}

	specialty, err := h.uc.CreateSpecialty(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), &usecase.CreateSpecialtyInput{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, specialty, "Especialidad creada")
}

// ListSpecialties returns all specialties.
func (h *DirectoryHandler) ListSpecialties(c echo.Context) error {
	specialties, err := h.uc.ListSpecialties(c.Request().Context(), nil)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, specialties, "")
}

// ListSpecialtiesByDepartment returns the specialties of one department.
func (h *DirectoryHandler) ListSpecialtiesByDepartment(c echo.Context) error {
	departmentID, err := uuid.Parse(c.Param("departmentId"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("departmentId no es un identificador válido"))
	}

	specialties, err := h.uc.ListSpecialties(c.Request().Context(), &departmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, specialties, "")
}

type updateSpecialtyRequest struct {
	Name         *string    `json:"name"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	Description  *string    `json:"description"`
}

// UpdateSpecialty renames or moves a specialty. Absent fields stay unchanged.
func (h *DirectoryHandler) UpdateSpecialty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	var req updateSpecialtyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de especialidad inválidos")
	}

	specialty, err := h.uc.UpdateSpecialty(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), id, &usecase.UpdateSpecialtyInput{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		Description:  req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, specialty, "Especialidad actualizada")
}

// DeleteSpecialty removes a specialty.
func (h *DirectoryHandler) DeleteSpecialty(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	err = h.uc.DeleteSpecialty(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Especialidad eliminada")
}
