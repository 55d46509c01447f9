// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "estagiohub/internal/delivery/context"
	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	"estagiohub/internal/domain/service"
	"estagiohub/internal/usecase"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 100
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	tokenRepo repository.TokenRepository
	hasher    service.PasswordHasher
	tokens    service.TokenGenerator
	mailer    service.MailerService
	logger    *slog.Logger
}

// registrationConfig parameterizes the shared registration flow per role.
type registrationConfig struct {
	Email         string
	Password      string
	WelcomeName   string
	Role          entity.Role
	CreateProfile func(ctx context.Context, userRepo repository.UserRepository, account entity.User) (*entity.User, error)
}

// loginFinder resolves the account of one role by e-mail. Login dispatches on
// the requested role through the finder map instead of switching inline.
type loginFinder func(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error)

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	TokenRepo repository.TokenRepository
	Hasher    service.PasswordHasher
	Tokens    service.TokenGenerator
	Mailer    service.MailerService
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		tokenRepo: params.TokenRepo,
		hasher:    params.Hasher,
		tokens:    params.Tokens,
		mailer:    params.Mailer,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterStudent orchestrates the complete student registration process.
func (srv *userService) RegisterStudent(ctx context.Context, input *usecase.RegisterStudentInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Email:       input.Email,
		Password:    input.Password,
		WelcomeName: input.FullName,
		Role:        entity.RoleStudent,
		CreateProfile: func(ctx context.Context, userRepo repository.UserRepository, account entity.User) (*entity.User, error) {
			student := &entity.Student{
				User:          account,
				FullName:      input.FullName,
				RG:            input.RG,
				Phone:         input.Phone,
				WhatsApp:      input.WhatsApp,
				AcademicID:    input.AcademicID,
				AcademicClass: input.AcademicClass,
				Address: entity.Address{
					Street:         input.Address.Street,
					Number:         input.Address.Number,
					AdditionalInfo: input.Address.AdditionalInfo,
					District:       input.Address.District,
					City:           input.Address.City,
					State:          input.Address.State,
					PostalCode:     input.Address.PostalCode,
				},
			}
			if err := userRepo.CreateStudent(ctx, student); err != nil {
				return nil, err
			}

			return &student.User, nil
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterSupervisor orchestrates the complete supervisor registration process.
func (srv *userService) RegisterSupervisor(ctx context.Context, input *usecase.RegisterSupervisorInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Email:       input.Email,
		Password:    input.Password,
		WelcomeName: input.Name,
		Role:        entity.RoleSupervisor,
		CreateProfile: func(ctx context.Context, userRepo repository.UserRepository, account entity.User) (*entity.User, error) {
			supervisor := &entity.Supervisor{User: account, Name: input.Name}
			if err := userRepo.CreateSupervisor(ctx, supervisor); err != nil {
				return nil, err
			}

			return &supervisor.User, nil
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterAdmin orchestrates the complete admin registration process.
func (srv *userService) RegisterAdmin(ctx context.Context, input *usecase.RegisterAdminInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		Email:       input.Email,
		Password:    input.Password,
		WelcomeName: input.Name,
		Role:        entity.RoleAdmin,
		CreateProfile: func(ctx context.Context, userRepo repository.UserRepository, account entity.User) (*entity.User, error) {
			admin := &entity.Admin{User: account, Name: input.Name}
			if err := userRepo.CreateAdmin(ctx, admin); err != nil {
				return nil, err
			}

			return &admin.User, nil
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// executeRegistration runs the shared registration flow: hash the password,
// create the role profile with its account inside a transaction, then send
// the welcome e-mail best-effort.
func (srv *userService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	hashedPassword, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", cfg.Role), slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	account := entity.User{
		Email:        cfg.Email,
		PasswordHash: hashedPassword,
		Role:         cfg.Role,
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		createdUser, createErr := cfg.CreateProfile(ctx, userRepo, account)
		if createErr != nil {
			if errors.Is(createErr, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyInUse.WrapMessage("email already registered")
			}

			return errors.Wrap(createErr, "failed to create account profile")
		}
		registeredUser = createdUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, err
	}

	// The welcome e-mail never fails a committed registration.
	if mailErr := srv.mailer.SendWelcome(ctx, cfg.Email, cfg.WelcomeName); mailErr != nil {
		srv.log(ctx).Warn("Failed to send welcome email", slog.String("email", cfg.Email), slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", cfg.Role), slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// loginFinders maps each role to its credential lookup.
func (srv *userService) loginFinders() map[entity.Role]loginFinder {
	return map[entity.Role]loginFinder{
		entity.RoleStudent: func(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
			student, err := userRepo.FindStudentByEmail(ctx, email)
			if err != nil {
				return nil, err
			}

			return &student.User, nil
		},
		entity.RoleSupervisor: func(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
			supervisor, err := userRepo.FindSupervisorByEmail(ctx, email)
			if err != nil {
				return nil, err
			}

			return &supervisor.User, nil
		},
		entity.RoleAdmin: func(ctx context.Context, userRepo repository.UserRepository, email string) (*entity.User, error) {
			admin, err := userRepo.FindAdminByEmail(ctx, email)
			if err != nil {
				return nil, err
			}

			return &admin.User, nil
		},
	}
}

// Login checks the credentials of the requested role and issues an access
// token. Lookup failures and password mismatches collapse into the same
// invalid-credentials error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email), slog.Any("role", input.Role))

	finder, ok := srv.loginFinders()[input.Role]
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown login role")
	}

	account, err := finder(ctx, srv.userRepo, input.Email)
	if err != nil {
		if isProfileNotFound(err) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("role", input.Role))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load login account")
	}

	// bcrypt comparison runs outside any transaction (CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("role", input.Role))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken := &entity.AccessToken{
		Token:     srv.tokens.NewAccessToken(),
		UserID:    account.ID,
		ExpiresAt: time.Now().Add(srv.tokens.TTL()),
	}
	if err := srv.tokenRepo.CreateAccessToken(ctx, accessToken); err != nil {
		srv.log(ctx).Error("Failed to store access token", slog.Any("userID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("userID", account.ID))

	return &usecase.LoginOutput{
		AccessToken: accessToken.Token,
		ExpiresAt:   accessToken.ExpiresAt.Unix(),
		User:        account,
	}, nil
}

func isProfileNotFound(err error) bool {
	return errors.Is(err, repository.ErrStudentNotFound) ||
		errors.Is(err, repository.ErrSupervisorNotFound) ||
		errors.Is(err, repository.ErrAdminNotFound) ||
		errors.Is(err, repository.ErrUserNotFound)
}

// Logout invalidates the access token. An unknown token is treated as already
// logged out.
func (srv *userService) Logout(ctx context.Context, token string) error {
	accessToken, err := srv.tokenRepo.FindAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccessTokenNotFound) {
			srv.log(ctx).Warn("Logout with unknown token")

			return nil
		}

		return errors.Wrap(err, "failed to find access token during logout")
	}

	if accessToken.ExpiredAt == nil {
		now := time.Now()
		accessToken.ExpiredAt = &now
		if err := srv.tokenRepo.UpdateAccessToken(ctx, accessToken); err != nil {
			return errors.Wrap(err, "failed to invalidate access token")
		}
	}

	srv.log(ctx).Debug("Logged out", slog.Any("userID", accessToken.UserID))

	return nil
}

// ForgotPassword issues a reset code to the account e-mail. The result never
// reveals whether the e-mail is registered.
func (srv *userService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	_, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", input.Email))

			return nil
		}

		return errors.Wrap(err, "failed to look up account for password reset")
	}

	code, err := srv.tokens.NewResetPasswordToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate reset code")
	}

	resetToken := &entity.ResetPasswordToken{
		Email:     input.Email,
		Token:     code,
		ExpiresAt: time.Now().Add(srv.tokens.TTL()),
	}
	if err := srv.tokenRepo.CreateResetPasswordToken(ctx, resetToken); err != nil {
		return errors.Wrap(err, "failed to store reset code")
	}

	if err := srv.mailer.SendResetPasswordCode(ctx, input.Email, code); err != nil {
		srv.log(ctx).Error("Failed to send reset code email", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to send reset code email")
	}

	srv.log(ctx).Info("Password reset code issued", slog.String("email", input.Email))

	return nil
}

// ResetPassword validates the e-mailed code and replaces the account password.
// The code is single-use: it is stamped expired together with the password
// write.
func (srv *userService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	resetToken, err := srv.tokenRepo.FindResetPasswordToken(ctx, input.Email, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("reset code not found")
		}

		return errors.Wrap(err, "failed to find reset code")
	}

	now := time.Now()
	if !resetToken.IsValid(now) {
		// Stamp stale codes on first sight so later lookups short-circuit.
		if resetToken.ExpiredAt == nil {
			resetToken.ExpiredAt = &now
			if updateErr := srv.tokenRepo.UpdateResetPasswordToken(ctx, resetToken); updateErr != nil {
				srv.log(ctx).Warn("Failed to stamp stale reset code", slog.Any("error", updateErr))
			}
		}

		return domainerrors.ErrResetTokenInvalid.WrapMessage("reset code expired or already used")
	}

	account, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrResetTokenInvalid.WrapMessage("account no longer exists")
		}

		return errors.Wrap(err, "failed to load account for password reset")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().UpdateUserPassword(ctx, account.ID, hashedPassword); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		resetToken.ExpiredAt = &now
		if err := repoFactory.NewTokenRepository().UpdateResetPasswordToken(ctx, resetToken); err != nil {
			return errors.Wrap(err, "failed to consume reset code")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute password reset transaction", slog.String("email", input.Email), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", account.ID))

	return nil
}

// AuthenticateToken resolves an opaque access token to its account. Stale
// tokens are stamped expired on first sight.
func (srv *userService) AuthenticateToken(ctx context.Context, token string) (*usecase.AuthenticatedUser, error) {
	accessToken, err := srv.tokenRepo.FindAccessToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAccessTokenNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("unknown access token")
		}

		return nil, errors.Wrap(err, "failed to find access token")
	}

	now := time.Now()
	if !accessToken.IsValid(now) {
		if accessToken.ExpiredAt == nil {
			accessToken.ExpiredAt = &now
			if updateErr := srv.tokenRepo.UpdateAccessToken(ctx, accessToken); updateErr != nil {
				srv.log(ctx).Warn("Failed to stamp stale access token", slog.Any("error", updateErr))
			}
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("access token expired")
	}

	account, err := srv.userRepo.FindUserByID(ctx, accessToken.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token account")
	}

	return &usecase.AuthenticatedUser{User: account, Token: accessToken}, nil
}

// SearchStudents matches the term against student names and e-mails,
// paginated with clamped limits.
func (srv *userService) SearchStudents(ctx context.Context, input *usecase.SearchStudentsInput) ([]*entity.Student, error) {
	limit, offset := clampPagination(input.Limit, input.Offset)

	students, err := srv.userRepo.SearchStudents(ctx, input.Term, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search students")
	}

	return students, nil
}

// clampPagination normalizes client-supplied paging values.
func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}
	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
