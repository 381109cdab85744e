package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/delivery/http/response"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuditHandler holds dependencies for audit trail handlers.
type AuditHandler struct {
	uc     usecase.AuditUsecase
	logger *slog.Logger
}

// NewAuditHandler is the constructor for AuditHandler, injected by Fx.
func NewAuditHandler(uc usecase.AuditUsecase, logger *slog.Logger) *AuditHandler {
	return &AuditHandler{uc: uc, logger: logger}
}

type queryLogsView struct {
	Logs       any                 `json:"logs"`
	Pagination *usecase.Pagination `json:"pagination"`
}

// Query returns a filtered, paged slice of the activity log, newest first.
// Date filters accept YYYY-MM-DD; the upper bound is inclusive of its whole day.
func (h *AuditHandler) Query(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	input := &usecase.QueryLogsInput{
		UserEmail:  c.QueryParam("userEmail"),
		Action:     c.QueryParam("action"),
		EntityType: c.QueryParam("entityType"),
		EntityID:   c.QueryParam("entityId"),
		SortBy:     c.QueryParam("sortBy"),
		SortOrder:  c.QueryParam("sortOrder"),
		Page:       page,
		Limit:      limit,
	}

	if raw := c.QueryParam("userId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidation.WithDetails("userId no es un identificador válido"))
		}
		input.UserID = &id
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidation.WithDetails("from debe tener formato YYYY-MM-DD"))
		}
		input.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return errors.WithStack(domainerrors.ErrValidation.WithDetails("to debe tener formato YYYY-MM-DD"))
		}
		input.To = &to
	}

	output, err := h.uc.Query(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &queryLogsView{
		Logs:       output.Logs,
		Pagination: output.Pagination,
	}, "")
}

// EntityTrail returns the full audit history of one record, newest first.
func (h *AuditHandler) EntityTrail(c echo.Context) error {
	entityType := c.Param("entityType")
	entityID := c.Param("entityId")
	if entityType == "" || entityID == "" {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("debe enviar entityType y entityId"))
	}

	logs, err := h.uc.EntityTrail(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), entityType, entityID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logs, "")
}
