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

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type signupRequest struct {
	Email    string `json:"email"`
	FullName string `json:"fullname"`
	Password string `json:"password"`
}

// Signup registers the bootstrap administrator. Disabled once any account exists.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de registro inválidos")
	}

	output, err := h.uc.Signup(c.Request().Context(), deliverycontext.RequestMeta(c), &usecase.SignupInput{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "Usuario registrado. Revisa tu correo para activar la cuenta.")
}

type signInRequest struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	VerificationCode string `json:"verificationCode"`
}

type signInView struct {
	RequiresVerification bool      `json:"requiresVerification"`
	AccessToken          string    `json:"accessToken,omitempty"`
	User                 *userView `json:"user,omitempty"`
}

// SignIn performs the two-phase login handshake. Without a verification code
// it emails a second factor; with one it returns the access token.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de inicio de sesión inválidos")
	}

	output, err := h.uc.SignIn(c.Request().Context(), deliverycontext.RequestMeta(c), &usecase.SignInInput{
		Email:    req.Email,
		Password: req.Password,
		Code:     req.VerificationCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	view := &signInView{
		RequiresVerification: output.RequiresVerification,
		AccessToken:          output.AccessToken,
		User:                 newUserView(output.User),
	}

	message := "Inicio de sesión exitoso"
	if output.RequiresVerification {
		message = "Código de verificación enviado a tu correo"
	}

	return response.Success(c, http.StatusOK, view, message)
}

type verifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// VerifyEmail consumes an activation code and activates the account.
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de verificación inválidos")
	}

	err := h.uc.VerifyEmail(c.Request().Context(), deliverycontext.RequestMeta(c), &usecase.VerifyEmailInput{
		Email: req.Email,
		Code:  req.Code,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cuenta verificada correctamente")
}

type resendVerificationRequest struct {
	Email string `json:"email"`
}

// ResendVerification issues a fresh activation code, superseding the previous one.
func (h *AuthHandler) ResendVerification(c echo.Context) error {
	var req resendVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Correo inválido")
	}

	if err := h.uc.ResendVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Código de verificación reenviado")
}

// SignOut records the logout. The client discards the token.
func (h *AuthHandler) SignOut(c echo.Context) error {
	actor := deliverycontext.GetIdentity(c)

	if err := h.uc.SignOut(c.Request().Context(), actor, deliverycontext.RequestMeta(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sesión cerrada")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword updates a user's password. Allowed for the account owner or
// an administrator; the usecase enforces that.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return errors.WithStack(domainerrors.ErrValidation.WithDetails("id no es un identificador válido"))
	}

	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Datos de contraseña inválidos")
	}

	err = h.uc.ChangePassword(c.Request().Context(), deliverycontext.GetIdentity(c), deliverycontext.RequestMeta(c), &usecase.ChangePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Contraseña actualizada")
}
