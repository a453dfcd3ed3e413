package impl

import (
	"context"
	"testing"
	"time"

	"ewarrants/internal/domain/entity"
	domainerrors "ewarrants/internal/domain/errors"
	"ewarrants/internal/domain/repository"
	mockRepo "ewarrants/internal/mocks/repository"
	mockSvc "ewarrants/internal/mocks/service"
	"ewarrants/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	codes        *mockSvc.MockCodeGenerator
	mailer       *mockSvc.MockMailService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	codes := mockSvc.NewMockCodeGenerator(t)
	mailer := mockSvc.NewMockMailService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Codes:        codes,
		Mailer:       mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*authService).now = func() time.Time { return fixedNow }

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		codes:        codes,
		mailer:       mailer,
	}
}

func TestAuthService_Register_NewUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.codes.EXPECT().NewCode().Return("123456", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "jane@example.com", user.Email)
			assert.Equal(t, "Jane Doe", user.FullName)
			assert.Equal(t, "hashed", user.PasswordHash)
			assert.Equal(t, "123456", user.VerificationCode)
			assert.False(t, user.IsVerified)
			assert.Equal(t, entity.DefaultEmailNotifications(), user.EmailNotifications)
		}).
		Return(nil)
	fx.mailer.EXPECT().SendVerificationCode(ctx, "jane@example.com", "Jane Doe", "123456").Return(nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: " Jane Doe ",
		Email:    " Jane@Example.com ",
		Password: "secret1",
	})
	require.NoError(t, err)
}

func TestAuthService_Register_RefreshesPendingUser(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	pending := &entity.User{ID: uuid.New(), Email: "jane@example.com", VerificationCode: "000000"}
	fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(pending, nil)
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.codes.EXPECT().NewCode().Return("654321", nil)
	fx.userRepo.EXPECT().Update(ctx, pending).Return(nil)
	fx.mailer.EXPECT().
		SendVerificationCode(ctx, "jane@example.com", "Jane", "654321").
		Return(errors.New("relay down"))

	err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "Jane", Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err, "mail failures are not reported to the caller")
	assert.Equal(t, "654321", pending.VerificationCode)
}

func TestAuthService_Register_VerifiedEmailConflicts(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jane@example.com").
		Return(&entity.User{ID: uuid.New(), IsVerified: true}, nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "Jane", Email: "jane@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.Register(context.Background(), &usecase.RegisterInput{FullName: "Jane", Email: "jane@example.com", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("matching code verifies", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := &entity.User{ID: uuid.New(), Email: "jane@example.com", VerificationCode: "123456"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		require.NoError(t, fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Email: "jane@example.com", Code: "123456"}))
		assert.True(t, user.IsVerified)
		assert.Empty(t, user.VerificationCode)
	})

	t.Run("wrong code", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(&entity.User{VerificationCode: "123456"}, nil)

		err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Email: "jane@example.com", Code: "999999"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		err := fx.service.VerifyEmail(ctx, &usecase.VerifyEmailInput{Email: "nobody@example.com", Code: "123456"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	input := &usecase.LoginInput{Email: "jane@example.com", Password: "secret1"}

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := &entity.User{ID: uuid.New(), PasswordHash: "hashed", IsVerified: true}
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.tokenService.EXPECT().GenerateToken(user.ID).Return("signed-token", nil)

		out, err := fx.service.Login(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "signed-token", out.Token)
		assert.Equal(t, user, out.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&entity.User{PasswordHash: "hashed", IsVerified: true}, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(false)

		_, err := fx.service.Login(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unverified", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(&entity.User{PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)

		_, err := fx.service.Login(ctx, input)
		assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	})
}

func TestAuthService_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email is silent", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		require.NoError(t, fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "nobody@example.com"}))
	})

	t.Run("stores an expiring code", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := &entity.User{ID: uuid.New(), Email: "jane@example.com", FullName: "Jane"}
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.codes.EXPECT().NewCode().Return("111222", nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.mailer.EXPECT().SendPasswordResetCode(ctx, "jane@example.com", "Jane", "111222").Return(nil)

		require.NoError(t, fx.service.ForgotPassword(ctx, &usecase.ForgotPasswordInput{Email: "jane@example.com"}))
		assert.Equal(t, "111222", user.ResetPasswordCode)
		require.NotNil(t, user.ResetPasswordExpires)
		assert.Equal(t, fixedNow.Add(time.Hour), *user.ResetPasswordExpires)
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	input := &usecase.ResetPasswordInput{Email: "jane@example.com", Code: "111222", NewPassword: "newsecret"}

	t.Run("valid code", func(t *testing.T) {
		fx := createTestAuthService(t)
		expires := fixedNow.Add(30 * time.Minute)
		user := &entity.User{ID: uuid.New(), ResetPasswordCode: "111222", ResetPasswordExpires: &expires}
		fx.userRepo.EXPECT().FindByEmail(ctx, "jane@example.com").Return(user, nil)
		fx.hasher.EXPECT().Hash("newsecret").Return("rehashed", nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		require.NoError(t, fx.service.ResetPassword(ctx, input))
		assert.Equal(t, "rehashed", user.PasswordHash)
		assert.Empty(t, user.ResetPasswordCode)
		assert.Nil(t, user.ResetPasswordExpires)
	})

	t.Run("expired code", func(t *testing.T) {
		fx := createTestAuthService(t)
		expires := fixedNow.Add(-time.Minute)
		fx.userRepo.EXPECT().
			FindByEmail(ctx, "jane@example.com").
			Return(&entity.User{ResetPasswordCode: "111222", ResetPasswordExpires: &expires}, nil)

		assert.ErrorIs(t, fx.service.ResetPassword(ctx, input), domainerrors.ErrInvalidCode)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("bad", "hashed").Return(false)

		err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{CurrentPassword: "bad", NewPassword: "newsecret"})
		assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	})

	t.Run("missing user", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		err := fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "newsecret"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := &entity.User{ID: userID, PasswordHash: "hashed"}
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
		fx.hasher.EXPECT().Hash("newsecret").Return("rehashed", nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		require.NoError(t, fx.service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "newsecret"}))
		assert.Equal(t, "rehashed", user.PasswordHash)
	})
}
