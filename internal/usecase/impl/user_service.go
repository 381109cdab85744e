package impl

import (
	"context"
	"log/slog"
	"strings"
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
	"clinica/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager       repository.TransactionManager
	userRepo        repository.UserRepository
	affiliationRepo repository.AffiliationRepository
	hasher          service.PasswordHasher
	mailer          service.Mailer
	codes           codeIssuer
	recorder        *audit.Recorder
	logger          *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	UserRepo        repository.UserRepository
	AffiliationRepo repository.AffiliationRepository
	Hasher          service.PasswordHasher
	Mailer          service.Mailer
	CodeStore       service.CodeStore
	Recorder        *audit.Recorder
	Config          *config.Config
	Logger          *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:       params.TxManager,
		userRepo:        params.UserRepo,
		affiliationRepo: params.AffiliationRepo,
		hasher:          params.Hasher,
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
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateByAdmin creates a PENDING account and emails its activation code.
// When no password is supplied a temporary one is generated; the user sets
// their own after activation.
func (srv *userService) CreateByAdmin(ctx context.Context, actor *entity.Identity, meta audit.Meta, input *usecase.CreateUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.FullName == "" || input.Role == "" {
		return nil, domainerrors.ErrMissingFields
	}
	if !validEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}

	role, ok := entity.ParseRole(input.Role)
	if !ok {
		return nil, domainerrors.ErrValidation.WithDetails(
			"rol inválido; valores aceptados: " + strings.Join(entity.RoleNames(), ", "))
	}

	password := input.Password
	if password == "" {
		generated, err := util.GenerateTempPassword()
		if err != nil {
			return nil, err
		}
		password = generated
	} else if err := srv.hasher.ValidateStrength(password); err != nil {
		return nil, domainerrors.ErrWeakPassword.WithDetails(err.Error())
	}

	user, err := srv.createPendingUser(ctx, email, input.FullName, role, entity.StatusPending, password)
	if err != nil {
		return nil, err
	}

	if err := srv.sendActivationCode(ctx, user); err != nil {
		// Without its activation email the account is stranded, so creation
		// is rolled back.
		if delErr := srv.userRepo.Delete(ctx, user.ID); delErr != nil {
			srv.log(ctx).Error("failed to roll back user after email failure",
				slog.String("email", email), slog.Any("error", delErr))
		}

		return nil, domainerrors.ErrEmailDelivery.WithDetails(err.Error())
	}

	srv.recorder.RecordCreate(ctx, actor, meta, "User", user.ID.String(), user)

	return user, nil
}

// List returns a page of users matching the filter.
func (srv *userService) List(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := repository.UserFilter{
		Search: strings.TrimSpace(input.Search),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}
	if input.Role != "" {
		role, ok := entity.ParseRole(input.Role)
		if !ok {
			return nil, domainerrors.ErrValidation.WithDetails(
				"rol inválido; valores aceptados: " + strings.Join(entity.RoleNames(), ", "))
		}
		filter.Role = role
	}
	if input.Status != "" {
		filter.Status = entity.NormalizeStatus(input.Status)
	}

	users, total, err := srv.userRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{
		Users:      users,
		Pagination: newPagination(total, page, limit),
	}, nil
}

// Get retrieves a single user by ID.
func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// Deactivate disables sign-in for an account without deleting it.
func (srv *userService) Deactivate(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) (*entity.User, error) {
	return srv.setActive(ctx, actor, meta, id, false)
}

// Activate re-enables a deactivated account.
func (srv *userService) Activate(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) (*entity.User, error) {
	return srv.setActive(ctx, actor, meta, id, true)
}

func (srv *userService) setActive(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID, active bool) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.IsActive == active {
		return user, nil
	}

	before := map[string]any{"isActive": user.IsActive}
	user.IsActive = active
	user.UpdatedAt = time.Now().UTC()
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user")
	}

	srv.recorder.RecordUpdate(ctx, actor, meta, "User", user.ID.String(),
		before, map[string]any{"isActive": user.IsActive})

	return user, nil
}

// Delete removes an account permanently, along with its affiliations.
func (srv *userService) Delete(ctx context.Context, actor *entity.Identity, meta audit.Meta, id uuid.UUID) error {
	user, err := srv.userRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound
	}
	if err != nil {
		return errors.Wrap(err, "failed to find user")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewAffiliationRepository().DeleteByUser(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete affiliations")
		}
		if err := repoFactory.NewUserRepository().Delete(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.recorder.RecordDelete(ctx, actor, meta, "User", user.ID.String(), user)

	return nil
}

// BulkImport creates accounts from pre-parsed CSV rows. Invalid rows are
// reported individually; valid rows are still imported.
func (srv *userService) BulkImport(ctx context.Context, actor *entity.Identity, meta audit.Meta, rows []usecase.ImportRow) (*usecase.BulkImportOutput, error) {
	out := &usecase.BulkImportOutput{}
	seen := make(map[string]struct{}, len(rows))

	for _, row := range rows {
		email := normalizeEmail(row.Email)

		reject := func(reason string) {
			out.Errors = append(out.Errors, usecase.ImportRowError{
				Line:   row.Line,
				Email:  email,
				Reason: reason,
			})
		}

		if email == "" || row.FullName == "" || row.Role == "" {
			reject("faltan datos obligatorios")

			continue
		}
		if !validEmail(email) {
			reject("el correo electrónico no es válido")

			continue
		}
		if _, dup := seen[email]; dup {
			reject("correo duplicado en el archivo")

			continue
		}
		seen[email] = struct{}{}

		role, ok := entity.ParseRole(row.Role)
		if !ok {
			reject("rol inválido; valores aceptados: " + strings.Join(entity.RoleNames(), ", "))

			continue
		}

		password := row.Password
		if password == "" {
			generated, err := util.GenerateTempPassword()
			if err != nil {
				return nil, err
			}
			password = generated
		} else if err := srv.hasher.ValidateStrength(password); err != nil {
			reject(err.Error())

			continue
		}

		user, err := srv.createPendingUser(ctx, email, row.FullName, role, entity.NormalizeStatus(row.Status), password)
		if errors.Is(err, domainerrors.ErrEmailTaken) {
			reject("el correo ya está registrado")

			continue
		}
		if err != nil {
			return nil, err
		}

		if user.Status == entity.StatusPending {
			if err := srv.sendActivationCode(ctx, user); err != nil {
				// Imported accounts are kept even when the email bounces; the
				// administrator can resend activation later.
				srv.log(ctx).Warn("failed to send activation email for imported user",
					slog.String("email", email), slog.Any("error", err))
			}
		}

		srv.recorder.RecordCreate(ctx, actor, meta, "User", user.ID.String(), user)
		out.Created = append(out.Created, user)
	}

	srv.log(ctx).Info("bulk import finished",
		slog.Int("created", len(out.Created)), slog.Int("rejected", len(out.Errors)))

	return out, nil
}

func (srv *userService) createPendingUser(ctx context.Context, email, fullName string, role entity.Role, status entity.Status, password string) (*entity.User, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
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

	return user, nil
}

func (srv *userService) sendActivationCode(ctx context.Context, user *entity.User) error {
	code, err := srv.codes.issue(ctx, user.Email, entity.PurposeEmailActivation)
	if err != nil {
		return err
	}

	return srv.mailer.SendVerificationEmail(ctx, user.Email, user.FullName, code.Code, srv.codes.activationTTL)
}

// newPagination derives page metadata from a total row count.
func newPagination(total int64, page, limit int) *usecase.Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))

	return &usecase.Pagination{
		Total:       total,
		Pages:       pages,
		CurrentPage: page,
		PageSize:    limit,
	}
}
