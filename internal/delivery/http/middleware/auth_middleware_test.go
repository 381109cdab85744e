package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/service"
	mockservice "clinica/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func medicoIdentity(deptIDs, specialtyIDs []uuid.UUID) *entity.Identity {
	return &entity.Identity{
		UserID:       uuid.New(),
		Email:        "medico@clinica.test",
		FullName:     "Elena Soto",
		Role:         entity.RoleMedico,
		DeptIDs:      deptIDs,
		SpecialtyIDs: specialtyIDs,
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "missing header", header: "", wantErr: domainerrors.ErrTokenRequired},
		{name: "not a bearer token", header: "Basic abc123", wantErr: domainerrors.ErrTokenRequired},
		{name: "bearer without token", header: "Bearer ", wantErr: domainerrors.ErrTokenRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockservice.NewMockTokenService(t)
			mw := NewAuthMiddleware(tokenSvc)

			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			err := mw.Authenticate(okHandler)(newEchoContext(req))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("garbage").Return(nil, assert.AnError)
	mw := NewAuthMiddleware(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer garbage")

	err := mw.Authenticate(okHandler)(newEchoContext(req))
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}

func TestAuthenticate_AttachesIdentity(t *testing.T) {
	deptID := uuid.New()
	claims := &service.Claims{
		UserID:   uuid.New(),
		Email:    "medico@clinica.test",
		FullName: "Elena Soto",
		Role:     string(entity.RoleMedico),
		DeptIDs:  []uuid.UUID{deptID},
	}

	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("valid.jwt").Return(claims, nil)
	mw := NewAuthMiddleware(tokenSvc)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	c := newEchoContext(req)

	var attached *entity.Identity
	err := mw.Authenticate(func(c echo.Context) error {
		attached = deliverycontext.GetIdentity(c)

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	require.NotNil(t, attached)
	assert.Equal(t, claims.UserID, attached.UserID)
	assert.Equal(t, entity.RoleMedico, attached.Role)
	assert.Equal(t, []uuid.UUID{deptID}, attached.DeptIDs)
}

func TestRequirePermission_NoIdentityIs401BeforePermissionCheck(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	err := mw.RequirePermission(entity.PermUserList)(okHandler)(newEchoContext(req))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestRequirePermission_MissingPermissionIs403(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	c := newEchoContext(req)
	deliverycontext.SetIdentity(c, &entity.Identity{UserID: uuid.New(), Role: entity.RolePaciente})

	err := mw.RequirePermission(entity.PermUserCreate)(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequirePermission_DeptScope(t *testing.T) {
	inScope := uuid.New()
	outOfScope := uuid.New()

	tests := []struct {
		name    string
		deptID  string
		wantErr error
	}{
		{name: "affiliated department passes", deptID: inScope.String(), wantErr: nil},
		{name: "other department is 403", deptID: outOfScope.String(), wantErr: domainerrors.ErrDeptScopeForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

			req := httptest.NewRequest(http.MethodGet, "/users?departmentId="+tt.deptID, nil)
			c := newEchoContext(req)
			deliverycontext.SetIdentity(c, medicoIdentity([]uuid.UUID{inScope}, nil))

			err := mw.RequirePermission(entity.PermPatientViewAssigned, ScopeOptions{NeedDept: true})(okHandler)(c)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequirePermission_MissingScopeIdentifierIs400(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	c := newEchoContext(req)
	deliverycontext.SetIdentity(c, medicoIdentity([]uuid.UUID{uuid.New()}, nil))

	err := mw.RequirePermission(entity.PermPatientViewAssigned, ScopeOptions{NeedDept: true})(okHandler)(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "debe enviar departmentId", appErr.Details())
}

func TestRequirePermission_MalformedScopeIdentifierIs400(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/users?departmentId=not-a-uuid", nil)
	c := newEchoContext(req)
	deliverycontext.SetIdentity(c, medicoIdentity([]uuid.UUID{uuid.New()}, nil))

	err := mw.RequirePermission(entity.PermPatientViewAssigned, ScopeOptions{NeedDept: true})(okHandler)(c)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "departmentId no es un identificador válido", appErr.Details())
}

func TestRequirePermission_ScopeFromPathParam(t *testing.T) {
	deptID := uuid.New()
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := newEchoContext(req)
	c.SetParamNames("departmentId")
	c.SetParamValues(deptID.String())
	deliverycontext.SetIdentity(c, medicoIdentity([]uuid.UUID{deptID}, nil))

	err := mw.RequirePermission(entity.PermPatientViewAssigned, ScopeOptions{NeedDept: true})(okHandler)(c)
	assert.NoError(t, err)
}

func TestRequirePermission_ScopeFromJSONBodyLeavesBodyReadable(t *testing.T) {
	deptID := uuid.New()
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	body := `{"departmentId":"` + deptID.String() + `","name":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := newEchoContext(req)
	deliverycontext.SetIdentity(c, medicoIdentity([]uuid.UUID{deptID}, nil))

	handler := func(c echo.Context) error {
		// The handler must still be able to bind the body after the peek.
		var payload struct {
			DepartmentID string `json:"departmentId"`
			Name         string `json:"name"`
		}
		require.NoError(t, c.Bind(&payload))
		assert.Equal(t, deptID.String(), payload.DepartmentID)
		assert.Equal(t, "x", payload.Name)

		return c.NoContent(http.StatusOK)
	}

	err := mw.RequirePermission(entity.PermPatientViewAssigned, ScopeOptions{NeedDept: true})(handler)(c)
	assert.NoError(t, err)
}

func TestRequirePermission_SpecialtyScope(t *testing.T) {
	specialtyID := uuid.New()
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/?specialtyId="+specialtyID.String(), nil)
	c := newEchoContext(req)
	deliverycontext.SetIdentity(c, medicoIdentity(nil, nil))

	err := mw.RequirePermission(entity.PermPatientViewAssigned, ScopeOptions{NeedSpecialty: true})(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrSpecialtyScopeForbidden)
}

func TestRequirePermission_NoAdministratorScopeBypass(t *testing.T) {
	// Administrators hold the permission but still need the affiliation.
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	req := httptest.NewRequest(http.MethodGet, "/users?departmentId="+uuid.New().String(), nil)
	c := newEchoContext(req)
	deliverycontext.SetIdentity(c, &entity.Identity{
		UserID: uuid.New(),
		Role:   entity.RoleAdministrador,
	})

	err := mw.RequirePermission(entity.PermUserList, ScopeOptions{NeedDept: true})(okHandler)(c)
	assert.ErrorIs(t, err, domainerrors.ErrDeptScopeForbidden)
}

func TestRequireRole(t *testing.T) {
	mw := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	gate := mw.RequireRole(entity.RoleAdministrador)

	t.Run("no identity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audit", nil)

		err := gate(okHandler)(newEchoContext(req))
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("role outside allow-list", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audit", nil)
		c := newEchoContext(req)
		deliverycontext.SetIdentity(c, medicoIdentity(nil, nil))

		err := gate(okHandler)(c)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("allowed role", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/audit", nil)
		c := newEchoContext(req)
		deliverycontext.SetIdentity(c, &entity.Identity{UserID: uuid.New(), Role: entity.RoleAdministrador})

		err := gate(okHandler)(c)
		assert.NoError(t, err)
	})
}
