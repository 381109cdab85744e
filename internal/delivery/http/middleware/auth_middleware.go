package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"slices"
	"strings"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Default request locations for scope identifiers.
const (
	defaultDeptParam      = "departmentId"
	defaultSpecialtyParam = "specialtyId"
)

// ScopeOptions tells RequirePermission to additionally check that the caller
// is affiliated with the department and/or specialty targeted by the request.
// The *Param fields name where the identifier is read from; path params,
// query params and the JSON body are tried in that order.
type ScopeOptions struct {
	NeedDept       bool
	NeedSpecialty  bool
	DeptParam      string
	SpecialtyParam string
}

// AuthMiddleware provides the authentication gate and the permission checks
// route groups are built from.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and attaches the resulting
// identity to the request context. Every protected group uses this first.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrTokenRequired)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return errors.WithStack(domainerrors.ErrTokenRequired)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return errors.WithStack(domainerrors.ErrTokenInvalid)
		}

		deliverycontext.SetIdentity(c, claims.Identity())

		return next(c)
	}
}

// RequirePermission gates a route on a permission key, plus optional
// department/specialty scope checks. The order is fixed: no identity is 401
// before anything else, a missing permission is 403 before any scope is read,
// and only then is the scope identifier resolved (400 when absent, 403 when
// outside the caller's affiliations). An unauthenticated caller therefore
// never learns whether the key itself would have been allowed.
func (m *AuthMiddleware) RequirePermission(key entity.PermissionKey, opts ...ScopeOptions) echo.MiddlewareFunc {
	var scope ScopeOptions
	if len(opts) > 0 {
		scope = opts[0]
	}
	if scope.DeptParam == "" {
		scope.DeptParam = defaultDeptParam
	}
	if scope.SpecialtyParam == "" {
		scope.SpecialtyParam = defaultSpecialtyParam
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			if !entity.RoleHasPermission(identity.Role, key) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			if scope.NeedDept {
				deptID, err := scopeID(c, scope.DeptParam)
				if err != nil {
					return err
				}
				if !identity.HasDept(deptID) {
					return errors.WithStack(domainerrors.ErrDeptScopeForbidden)
				}
			}

			if scope.NeedSpecialty {
				specialtyID, err := scopeID(c, scope.SpecialtyParam)
				if err != nil {
					return err
				}
				if !identity.HasSpecialty(specialtyID) {
					return errors.WithStack(domainerrors.ErrSpecialtyScopeForbidden)
				}
			}

			return next(c)
		}
	}
}

// RequireRole is a coarser gate for routes that do not need a permission key:
// the caller's role must be in the allow-list.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return errors.WithStack(domainerrors.ErrUnauthenticated)
			}

			if !slices.Contains(roles, identity.Role) {
				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// scopeID resolves a scope identifier from the request, trying the path
// param, the query string and finally the JSON body.
func scopeID(c echo.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	if raw == "" {
		raw = c.QueryParam(name)
	}
	if raw == "" {
		raw = bodyField(c, name)
	}
	if raw == "" {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidation.WithDetails("debe enviar " + name))
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidation.WithDetails(name + " no es un identificador válido"))
	}

	return id, nil
}

// bodyField reads a string field from the JSON body without consuming it, so
// the handler can still bind the request afterwards.
func bodyField(c echo.Context, name string) string {
	req := c.Request()
	if req.Body == nil {
		return ""
	}

	raw, err := io.ReadAll(req.Body)
	req.Body = io.NopCloser(bytes.NewReader(raw))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}

	if value, ok := payload[name].(string); ok {
		return value
	}

	return ""
}
