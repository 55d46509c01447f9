package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"estagiohub/internal/domain/entity"
	domainerrors "estagiohub/internal/domain/errors"
	"estagiohub/internal/domain/repository"
	mockRepo "estagiohub/internal/mocks/repository"
	mockSvc "estagiohub/internal/mocks/service"
	"estagiohub/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	tokenRepo *mockRepo.MockTokenRepository
	hasher    *mockSvc.MockPasswordHasher
	tokens    *mockSvc.MockTokenGenerator
	mailer    *mockSvc.MockMailerService

	factory     *mockRepo.MockRepositoryFactory
	txUserRepo  *mockRepo.MockUserRepository
	txTokenRepo *mockRepo.MockTokenRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokens := mockSvc.NewMockTokenGenerator(t)
	mailer := mockSvc.NewMockMailerService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
		Hasher:    hasher,
		Tokens:    tokens,
		Mailer:    mailer,
		Logger:    logger,
	})

	return userServiceFixtures{
		service:     service,
		txManager:   txManager,
		userRepo:    userRepo,
		tokenRepo:   tokenRepo,
		hasher:      hasher,
		tokens:      tokens,
		mailer:      mailer,
		factory:     mockRepo.NewMockRepositoryFactory(t),
		txUserRepo:  mockRepo.NewMockUserRepository(t),
		txTokenRepo: mockRepo.NewMockTokenRepository(t),
	}
}

// expectTransaction runs the transactional callback against the fixture's
// factory and propagates its error, mirroring a real commit/rollback.
func (f *userServiceFixtures) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestUserService_RegisterStudent_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterStudentInput{
		Email:      "joao@aluno.example",
		Password:   "Password123!",
		FullName:   "João Silva",
		AcademicID: "20260123",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().
		CreateStudent(ctx, mock.AnythingOfType("*entity.Student")).
		Run(func(_ context.Context, student *entity.Student) {
			assert.Equal(t, entity.RoleStudent, student.User.Role)
			assert.Equal(t, "hashed_password", student.User.PasswordHash)
			student.ID = uuid.New()
			student.User.ID = uuid.New()
		}).
		Return(nil)
	fx.mailer.EXPECT().SendWelcome(ctx, input.Email, input.FullName).Return(nil)

	output, err := fx.service.RegisterStudent(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleStudent, output.User.Role)
}

func TestUserService_RegisterStudent_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterStudentInput{
		Email:    "joao@aluno.example",
		Password: "Password123!",
		FullName: "João Silva",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().
		CreateStudent(ctx, mock.AnythingOfType("*entity.Student")).
		Return(repository.ErrDuplicateEmail)

	output, err := fx.service.RegisterStudent(ctx, input)

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyInUse))
}

func TestUserService_RegisterSupervisor_WelcomeMailFailureIsSwallowed(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterSupervisorInput{
		Email:    "ana@docente.example",
		Password: "Password123!",
		Name:     "Profa. Ana",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.txUserRepo.EXPECT().
		CreateSupervisor(ctx, mock.AnythingOfType("*entity.Supervisor")).
		Run(func(_ context.Context, supervisor *entity.Supervisor) {
			supervisor.User.ID = uuid.New()
		}).
		Return(nil)
	fx.mailer.EXPECT().SendWelcome(ctx, input.Email, input.Name).Return(errors.New("smtp down"))

	output, err := fx.service.RegisterSupervisor(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, entity.RoleSupervisor, output.User.Role)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	account := entity.User{
		ID:           uuid.New(),
		Email:        "joao@aluno.example",
		PasswordHash: "hashed_password",
		Role:         entity.RoleStudent,
	}

	fx.userRepo.EXPECT().
		FindStudentByEmail(ctx, account.Email).
		Return(&entity.Student{ID: uuid.New(), User: account}, nil)
	fx.hasher.EXPECT().Check("Password123!", account.PasswordHash).Return(true)
	fx.tokens.EXPECT().NewAccessToken().Return("opaque-token-value")
	fx.tokens.EXPECT().TTL().Return(24 * time.Hour)
	fx.tokenRepo.EXPECT().
		CreateAccessToken(ctx, mock.AnythingOfType("*entity.AccessToken")).
		Run(func(_ context.Context, token *entity.AccessToken) {
			assert.Equal(t, account.ID, token.UserID)
			assert.Equal(t, "opaque-token-value", token.Token)
		}).
		Return(nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    account.Email,
		Password: "Password123!",
		Role:     entity.RoleStudent,
	})

	require.NoError(t, err)
	assert.Equal(t, "opaque-token-value", output.AccessToken)
	assert.Equal(t, account.ID, output.User.ID)
}

func TestUserService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindSupervisorByEmail(ctx, "ghost@docente.example").
		Return(nil, repository.ErrSupervisorNotFound)

	_, missErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@docente.example",
		Password: "whatever",
		Role:     entity.RoleSupervisor,
	})

	fx.userRepo.EXPECT().
		FindSupervisorByEmail(ctx, "ana@docente.example").
		Return(&entity.Supervisor{User: entity.User{PasswordHash: "hashed"}}, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, mismatchErr := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@docente.example",
		Password: "wrong",
		Role:     entity.RoleSupervisor,
	})

	assert.True(t, errors.Is(missErr, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(mismatchErr, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.Login(ctx, &usecase.LoginInput{
		Email:    "joao@aluno.example",
		Password: "Password123!",
		Role:     entity.Role("visitor"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Logout_StampsToken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	accessToken := &entity.AccessToken{
		ID:        uuid.New(),
		Token:     "opaque-token-value",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenRepo.EXPECT().FindAccessToken(ctx, accessToken.Token).Return(accessToken, nil)
	fx.tokenRepo.EXPECT().
		UpdateAccessToken(ctx, mock.AnythingOfType("*entity.AccessToken")).
		Run(func(_ context.Context, token *entity.AccessToken) {
			assert.NotNil(t, token.ExpiredAt)
		}).
		Return(nil)

	err := fx.service.Logout(ctx, accessToken.Token)

	require.NoError(t, err)
}

func TestUserService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		FindAccessToken(ctx, "gone").
		Return(nil, repository.ErrAccessTokenNotFound)

	err := fx.service.Logout(ctx, "gone")

	require.NoError(t, err)
}

func TestUserService_ForgotPassword_UnknownEmailLeaksNothing(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@aluno.example").
		Return(nil, repository.ErrUserNotFound)
	// No reset token is created and no email goes out.

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "ghost@aluno.example"})

	require.NoError(t, err)
}

func TestUserService_ForgotPassword_IssuesAndMailsCode(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	account := &entity.User{ID: uuid.New(), Email: "joao@aluno.example"}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, account.Email).Return(account, nil)
	fx.tokens.EXPECT().NewResetPasswordToken().Return("a1b2c3", nil)
	fx.tokens.EXPECT().TTL().Return(24 * time.Hour)
	fx.tokenRepo.EXPECT().
		CreateResetPasswordToken(ctx, mock.AnythingOfType("*entity.ResetPasswordToken")).
		Run(func(_ context.Context, token *entity.ResetPasswordToken) {
			assert.Equal(t, account.Email, token.Email)
			assert.Equal(t, "a1b2c3", token.Token)
		}).
		Return(nil)
	fx.mailer.EXPECT().SendResetPasswordCode(ctx, account.Email, "a1b2c3").Return(nil)

	err := fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: account.Email})

	require.NoError(t, err)
}

func TestUserService_ResetPassword_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	account := &entity.User{ID: uuid.New(), Email: "joao@aluno.example"}
	resetToken := &entity.ResetPasswordToken{
		ID:        uuid.New(),
		Email:     account.Email,
		Token:     "a1b2c3",
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenRepo.EXPECT().FindResetPasswordToken(ctx, account.Email, "a1b2c3").Return(resetToken, nil)
	fx.userRepo.EXPECT().FindUserByEmail(ctx, account.Email).Return(account, nil)
	fx.hasher.EXPECT().Hash("NewPassword123!").Return("new_hash", nil)
	fx.expectTransaction(ctx)
	fx.factory.EXPECT().NewUserRepository().Return(fx.txUserRepo)
	fx.factory.EXPECT().NewTokenRepository().Return(fx.txTokenRepo)
	fx.txUserRepo.EXPECT().UpdateUserPassword(ctx, account.ID, "new_hash").Return(nil)
	fx.txTokenRepo.EXPECT().
		UpdateResetPasswordToken(ctx, mock.AnythingOfType("*entity.ResetPasswordToken")).
		Run(func(_ context.Context, token *entity.ResetPasswordToken) {
			assert.NotNil(t, token.ExpiredAt)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       account.Email,
		Token:       "a1b2c3",
		NewPassword: "NewPassword123!",
	})

	require.NoError(t, err)
}

func TestUserService_ResetPassword_StaleCodeStampedLazily(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	resetToken := &entity.ResetPasswordToken{
		ID:        uuid.New(),
		Email:     "joao@aluno.example",
		Token:     "a1b2c3",
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenRepo.EXPECT().FindResetPasswordToken(ctx, resetToken.Email, "a1b2c3").Return(resetToken, nil)
	fx.tokenRepo.EXPECT().
		UpdateResetPasswordToken(ctx, mock.AnythingOfType("*entity.ResetPasswordToken")).
		Run(func(_ context.Context, token *entity.ResetPasswordToken) {
			assert.NotNil(t, token.ExpiredAt)
		}).
		Return(nil)

	err := fx.service.ResetPassword(ctx, &usecase.ResetPasswordInput{
		Email:       resetToken.Email,
		Token:       "a1b2c3",
		NewPassword: "NewPassword123!",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrResetTokenInvalid))
}

func TestUserService_AuthenticateToken_Valid(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	account := &entity.User{ID: uuid.New(), Role: entity.RoleSupervisor}
	accessToken := &entity.AccessToken{
		ID:        uuid.New(),
		Token:     "opaque-token-value",
		UserID:    account.ID,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	fx.tokenRepo.EXPECT().FindAccessToken(ctx, accessToken.Token).Return(accessToken, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, account.ID).Return(account, nil)

	authenticated, err := fx.service.AuthenticateToken(ctx, accessToken.Token)

	require.NoError(t, err)
	assert.Equal(t, account.ID, authenticated.User.ID)
}

func TestUserService_AuthenticateToken_ExpiredStampedLazily(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	accessToken := &entity.AccessToken{
		ID:        uuid.New(),
		Token:     "opaque-token-value",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	fx.tokenRepo.EXPECT().FindAccessToken(ctx, accessToken.Token).Return(accessToken, nil)
	fx.tokenRepo.EXPECT().
		UpdateAccessToken(ctx, mock.AnythingOfType("*entity.AccessToken")).
		Run(func(_ context.Context, token *entity.AccessToken) {
			assert.NotNil(t, token.ExpiredAt)
		}).
		Return(nil)

	authenticated, err := fx.service.AuthenticateToken(ctx, accessToken.Token)

	assert.Nil(t, authenticated)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_AuthenticateToken_AlreadyStampedNotRestamped(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	expiredAt := time.Now().Add(-time.Hour)
	accessToken := &entity.AccessToken{
		ID:        uuid.New(),
		Token:     "opaque-token-value",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(time.Hour),
		ExpiredAt: &expiredAt,
	}

	fx.tokenRepo.EXPECT().FindAccessToken(ctx, accessToken.Token).Return(accessToken, nil)
	// No UpdateAccessToken: the stamp is already in place.

	_, err := fx.service.AuthenticateToken(ctx, accessToken.Token)

	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestUserService_SearchStudents_ClampsPagination(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		SearchStudents(ctx, "silva", 10, 0).
		Return([]*entity.Student{}, nil)

	_, err := fx.service.SearchStudents(ctx, &usecase.SearchStudentsInput{
		Term:   "silva",
		Limit:  -1,
		Offset: -10,
	})

	require.NoError(t, err)
}
