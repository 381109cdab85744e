package handler

import (
	"encoding/csv"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/delivery/http/response"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account management handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
	Password string `json:"password"`
}

// Create registers a new account on behalf of an administrator. The account
// starts PENDING and receives an activation code by email.
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de usuario inválidos")
	}

	user, err := h.uc.CreateByAdmin(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), &usecase.CreateUserInput{
		Email:    req.Email,
		FullName: req.FullName,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(user), "Usuario creado. Se envió el código de activación por correo.")
}

type listUsersView struct {
	Users      []*userView         `json:"users"`
	Pagination *usecase.Pagination `json:"pagination"`
}

// List returns a filtered, paged user listing.
func (h *UserHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	output, err := h.uc.List(c.Request().Context(), &usecase.ListUsersInput{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &listUsersView{
		Users:      newUserViews(output.Users),
		Pagination: output.Pagination,
	}, "")
}

// Get returns a single account by ID.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "")
}

// Deactivate disables sign-in for an account.
func (h *UserHandler) Deactivate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	user, err := h.uc.Deactivate(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Usuario desactivado")
}

// Activate re-enables a deactivated account.
func (h *UserHandler) Activate(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	user, err := h.uc.Activate(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "Usuario activado")
}

// Delete removes an account and its affiliations permanently.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	err = h.uc.Delete(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Usuario eliminado")
}

type bulkImportView struct {
	Created []*userView              `json:"created"`
	Errors  []usecase.ImportRowError `json:"errors"`
	Summary map[string]int           `json:"summary"`
}

// Import creates accounts in bulk from an uploaded CSV file. The file needs a
// header row; recognized columns are email, fullname, role, status and
// password, in any order.
func (h *UserHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("debe enviar un archivo CSV en el campo file"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("no se pudo leer el archivo"))
	}
	defer file.Close()

	rows, err := parseImportRows(csv.NewReader(file))
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.BulkImport(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), rows)
	if err != nil {
		return errors.WithStack(err)
	}

	view := &bulkImportView{
		Created: newUserViews(output.Created),
		Errors:  output.Errors,
		Summary: map[string]int{
			"created":  len(output.Created),
			"rejected": len(output.Errors),
		},
	}

	return response.Success(c, http.StatusOK, view, "Importación completada")
}

// parseImportRows reads the CSV into usecase rows. The first record is the
// header; column order is free and unknown columns are ignored.
func parseImportRows(reader *csv.Reader) ([]usecase.ImportRow, error) {
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, domainerrors.ErrValidation.WithDetails("el archivo CSV no es válido")
	}
	if len(records) < 2 {
		return nil, domainerrors.ErrValidation.WithDetails("el archivo CSV no contiene filas de datos")
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["email"]; !ok {
		return nil, domainerrors.ErrValidation.WithDetails("el archivo CSV debe tener una columna email")
	}

	field := func(record []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	rows := make([]usecase.ImportRow, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, usecase.ImportRow{
			Line:     i + 2,
			Email:    field(record, "email"),
			FullName: field(record, "fullname"),
			Role:     field(record, "role"),
			Status:   field(record, "status"),
			Password: field(record, "password"),
		})
	}

	return rows, nil
}
