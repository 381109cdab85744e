package impl

import (
	"context"
	"log/slog"
	"time"

	"clinica/config"
	"clinica/internal/audit"
	deliverycontext "clinica/internal/delivery/context"
	"clinica/internal/domain/entity"
	domainerrors "clinica/internal/domain/errors"
	"clinica/internal/domain/repository"
	"clinica/internal/domain/service"
	"clinica/internal/errors"
	"clinica/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo        repository.UserRepository
	affiliationRepo repository.AffiliationRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	mailer          service.Mailer
	codes           codeIssuer
	recorder        *audit.Recorder
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	AffiliationRepo repository.AffiliationRepository
	Hasher          service.PasswordHasher
	TokenService    service.TokenService
	Mailer          service.Mailer
	CodeStore       service.CodeStore
	Recorder        *audit.Recorder
	Config          *config.Config
	Logger          *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:        params.UserRepo,
		affiliationRepo: params.AffiliationRepo,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		mailer:          params.Mailer,
		codes: codeIssuer{
			store:         params.CodeStore,
			activationTTL: params.Config.Verification.ActivationTTL,
			loginTTL:      params.Config.Verification.LoginCodeTTL,
		},
		recorder: params.Recorder,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup registers the bootstrap administrator. It only works while the user
// table is empty; afterwards accounts are created by administrators.
func (srv *authService) Signup(ctx context.Context, meta audit.Meta, input *usecase.SignupInput) (*usecase.SignupOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.FullName == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if !validEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}
	if err := srv.hasher.ValidateStrength(input.Password); err != nil {
		return nil, domainerrors.ErrWeakPassword.WithDetails(err.Error())
	}

	count, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}
	if count > 0 {
		return nil, domainerrors.ErrSignupDisabled
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         entity.RoleAdministrador,
		Status:       entity.StatusPending,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	if err := srv.sendActivationCode(ctx, user); err != nil {
		// The account is unusable without its activation email, so creation
		// is rolled back rather than leaving a stranded PENDING user.
		if delErr := srv.userRepo.Delete(ctx, user.ID); delErr != nil {
			srv.log(ctx).Error("failed to roll back user after email failure",
				slog.String("email", email), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrEmailDelivery.WithDetails(err.Error())
	}

	srv.recorder.RecordCreate(ctx, user.Identity(), meta, "User", user.ID.String(), user)

	return &usecase.SignupOutput{User: user}, nil
}

// SignIn performs the two-phase login handshake. Without a code it verifies
// the password and emails a second factor; with a code it completes the login
// and returns a signed access token.
func (srv *authService) SignIn(ctx context.Context, meta audit.Meta, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingFields
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.recorder.RecordLoginFailed(ctx, meta, email, "usuario no encontrado")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.IsActive {
		srv.recorder.RecordLoginFailed(ctx, meta, email, "cuenta deshabilitada")

		return nil, domainerrors.ErrAccountDisabled
	}
	if user.Status != entity.StatusActive {
		srv.recorder.RecordLoginFailed(ctx, meta, email, "cuenta no verificada")

		return nil, domainerrors.ErrAccountNotVerified
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.recorder.RecordLoginFailed(ctx, meta, email, "contraseña incorrecta")

		return nil, domainerrors.ErrInvalidCredentials
	}

	if input.Code == "" {
		code, err := srv.codes.issue(ctx, email, entity.PurposeLogin2FA)
		if err != nil {
			return nil, err
		}
		if err := srv.mailer.SendLoginCodeEmail(ctx, user.Email, user.FullName, code.Code, srv.codes.loginTTL); err != nil {
			return nil, domainerrors.ErrEmailDelivery.WithDetails(err.Error())
		}

		return &usecase.SignInOutput{RequiresVerification: true}, nil
	}

	if err := srv.codes.consume(ctx, email, entity.PurposeLogin2FA, input.Code); err != nil {
		return nil, err
	}

	identity, err := srv.buildIdentity(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.Sign(identity)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	srv.recorder.RecordLogin(ctx, identity, meta)
	srv.log(ctx).Info("user signed in", slog.String("email", email), slog.String("role", user.Role.String()))

	return &usecase.SignInOutput{AccessToken: token, User: user}, nil
}

// VerifyEmail activates a pending account.
func (srv *authService) VerifyEmail(ctx context.Context, meta audit.Meta, input *usecase.VerifyEmailInput) error {
	email := normalizeEmail(input.Email)
	if email == "" || input.Code == "" {
		return domainerrors.ErrMissingFields
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user.Status == entity.StatusActive {
		return domainerrors.ErrAlreadyVerified
	}

	if err := srv.codes.consume(ctx, email, entity.PurposeEmailActivation, input.Code); err != nil {
		return err
	}

	before := map[string]any{"status": user.Status.String()}
	user.Status = entity.StatusActive
	user.UpdatedAt = time.Now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to activate user")
	}

	srv.recorder.RecordUpdate(ctx, user.Identity(), meta, "User", user.ID.String(),
		before, map[string]any{"status": user.Status.String()})

	return nil
}

// ResendVerification issues a fresh activation code, superseding the previous
// one, and emails it.
func (srv *authService) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return domainerrors.ErrMissingFields
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if user.Status == entity.StatusActive {
		return domainerrors.ErrAlreadyVerified
	}

	if err := srv.sendActivationCode(ctx, user); err != nil {
		return domainerrors.ErrEmailDelivery.WithDetails(err.Error())
	}

	return nil
}

// SignOut records the logout. The access token stays valid until expiry;
// discarding it is the client's responsibility.
func (srv *authService) SignOut(ctx context.Context, actor *entity.Identity, meta audit.Meta) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}

	srv.recorder.RecordLogout(ctx, actor, meta)

	return nil
}

// ChangePassword updates a password after verifying the current one. The
// account owner may change their own; administrators may change anyone's.
func (srv *authService) ChangePassword(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *usecase.ChangePasswordInput) error {
	if actor == nil {
		return domainerrors.ErrUnauthenticated
	}
	if actor.UserID != input.UserID && actor.Role != entity.RoleAdministrador {
		return domainerrors.ErrForbidden
	}
	if input.CurrentPassword == "" || input.NewPassword == "" {
		return domainerrors.ErrMissingFields
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrPasswordMismatch
	}
	if input.NewPassword == input.CurrentPassword {
		return domainerrors.ErrPasswordUnchanged
	}
	if err := srv.hasher.ValidateStrength(input.NewPassword); err != nil {
		return domainerrors.ErrWeakPassword.WithDetails(err.Error())
	}

	oldHash := user.PasswordHash
	hash, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	srv.recorder.RecordUpdate(ctx, actor, meta, "User", user.ID.String(),
		map[string]any{"password": oldHash}, map[string]any{"password": hash})

	return nil
}

// sendActivationCode issues an activation code and emails it.
func (srv *authService) sendActivationCode(ctx context.Context, user *entity.User) error {
	code, err := srv.codes.issue(ctx, user.Email, entity.PurposeEmailActivation)
	if err != nil {
		return err
	}

	return srv.mailer.SendVerificationEmail(ctx, user.Email, user.FullName, code.Code, srv.codes.activationTTL)
}

// buildIdentity loads the user's affiliations so department and specialty
// scope travels inside the token claims.
func (srv *authService) buildIdentity(ctx context.Context, user *entity.User) (*entity.Identity, error) {
	affiliations, err := srv.affiliationRepo.FindByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load affiliations")
	}

	identity := user.Identity()

	seenDept := make(map[uuid.UUID]struct{})
	seenSpec := make(map[uuid.UUID]struct{})
	for _, affiliation := range affiliations {
		if _, ok := seenDept[affiliation.DepartmentID]; !ok {
			seenDept[affiliation.DepartmentID] = struct{}{}
			identity.DeptIDs = append(identity.DeptIDs, affiliation.DepartmentID)
		}
		if affiliation.SpecialtyID != nil {
			if _, ok := seenSpec[*affiliation.SpecialtyID]; !ok {
				seenSpec[*affiliation.SpecialtyID] = struct{}{}
				identity.SpecialtyIDs = append(identity.SpecialtyIDs, *affiliation.SpecialtyID)
			}
		}
	}

	return identity, nil
}
