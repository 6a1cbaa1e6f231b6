package impl

import (
	"context"
	"testing"

	"pantry/config"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/infra/securestore"
	"pantry/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{
		AllowedEmailDomain: "@gmail.com",
		MinPasswordLength:  6,
	}
	return cfg
}

// authFixtures holds all test dependencies for auth service tests.
type authFixtures struct {
	service usecase.AuthUsecase
	store   *mockCredentialStore
	tokens  *mockTokenService
}

func createTestAuthService(t *testing.T) authFixtures {
	t.Helper()

	store := &mockCredentialStore{}
	tokens := &mockTokenService{}
	service := NewAuthService(store, stubDigester{}, tokens, newTestAuthConfig(), newDiscardLogger())

	t.Cleanup(func() {
		store.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	return authFixtures{service: service, store: store, tokens: tokens}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("SetMany", ctx, map[string]string{
		repository.KeyUserEmail:    "a@gmail.com",
		repository.KeyUserPassword: "digest(abc123)",
	}).Return(nil)

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:           "a@gmail.com",
		Password:        "abc123",
		ConfirmPassword: "abc123",
	})

	require.NoError(t, err)
	assert.Equal(t, "a@gmail.com", output.Email)
}

func TestAuthService_Register_ValidationOrder(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.RegisterInput
		want  error
	}{
		{
			name: "wrong domain wins over everything else",
			input: &usecase.RegisterInput{
				Email:           "a@hotmail.com",
				Password:        "ab",
				ConfirmPassword: "xy",
			},
			want: domainerrors.ErrInvalidEmailDomain,
		},
		{
			name: "mismatch wins over short password",
			input: &usecase.RegisterInput{
				Email:           "a@gmail.com",
				Password:        "ab",
				ConfirmPassword: "xy",
			},
			want: domainerrors.ErrPasswordMismatch,
		},
		{
			name: "short password",
			input: &usecase.RegisterInput{
				Email:           "a@gmail.com",
				Password:        "ab",
				ConfirmPassword: "ab",
			},
			want: domainerrors.ErrPasswordTooShort,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(ctx, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	// No write may have happened for any rejected input.
	fx.store.AssertNotCalled(t, "SetMany", mock.Anything, mock.Anything)
}

func TestAuthService_Register_StorageError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("SetMany", ctx, mock.Anything).Return(errors.New("disk full"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:           "a@gmail.com",
		Password:        "abc123",
		ConfirmPassword: "abc123",
	})

	assert.ErrorIs(t, err, domainerrors.ErrStorage)
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("Get", ctx, repository.KeyUserEmail).Return("a@gmail.com", nil)
	fx.store.On("Get", ctx, repository.KeyUserPassword).Return("digest(x)", nil)
	fx.tokens.On("GenerateAccessToken", "a@gmail.com").Return("token-123", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@gmail.com", Password: "x"})

	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)
	assert.Equal(t, "a@gmail.com", output.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("Get", ctx, repository.KeyUserEmail).Return("a@gmail.com", nil)
	fx.store.On("Get", ctx, repository.KeyUserPassword).Return("digest(x)", nil)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@gmail.com", Password: "y"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongDomain(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@hotmail.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidEmailDomain)
	// The store must not even be consulted for a bad domain.
	fx.store.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestAuthService_Login_NoAccountLooksLikeWrongPassword(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("Get", ctx, repository.KeyUserEmail).Return("", repository.ErrKeyNotFound)
	fx.store.On("Get", ctx, repository.KeyUserPassword).Return("", repository.ErrKeyNotFound)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@gmail.com", Password: "x"})

	// Indistinguishable from a wrong password on purpose.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("Get", ctx, repository.KeyUserEmail).Return("", errors.New("io error"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@gmail.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrStorage)
}

// Register then login against a real store and digester: the round trip the
// mobile flow performs.
func TestAuthService_RegisterThenLogin(t *testing.T) {
	tokens := &mockTokenService{}
	tokens.On("GenerateAccessToken", "a@gmail.com").Return("token-123", nil)

	service := NewAuthService(
		securestore.NewMemoryStore(),
		stubDigester{},
		tokens,
		newTestAuthConfig(),
		newDiscardLogger(),
	)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email:           "a@gmail.com",
		Password:        "abc123",
		ConfirmPassword: "abc123",
	})
	require.NoError(t, err)

	output, err := service.Login(ctx, &usecase.LoginInput{Email: "a@gmail.com", Password: "abc123"})
	require.NoError(t, err)
	assert.Equal(t, "token-123", output.AccessToken)

	_, err = service.Login(ctx, &usecase.LoginInput{Email: "a@gmail.com", Password: "abc124"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

// A second signup replaces the account wholesale: last write wins.
func TestAuthService_RegisterOverwritesAccount(t *testing.T) {
	service := NewAuthService(
		securestore.NewMemoryStore(),
		stubDigester{},
		&mockTokenService{},
		newTestAuthConfig(),
		newDiscardLogger(),
	)
	ctx := context.Background()

	_, err := service.Register(ctx, &usecase.RegisterInput{
		Email: "first@gmail.com", Password: "abc123", ConfirmPassword: "abc123",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, &usecase.RegisterInput{
		Email: "second@gmail.com", Password: "xyz789", ConfirmPassword: "xyz789",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, &usecase.LoginInput{Email: "first@gmail.com", Password: "abc123"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Profile(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("Get", ctx, repository.KeyUserEmail).Return("abcdef@gmail.com", nil)
	fx.store.On("Get", ctx, repository.KeyUserPassword).Return("digest(abc123)", nil)

	output, err := fx.service.Profile(ctx)

	require.NoError(t, err)
	assert.Equal(t, "abcdef", output.Username)
	assert.Equal(t, "ab****ef@gmail.com", output.MaskedEmail)
}

func TestAuthService_Profile_NoAccount(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.store.On("Get", ctx, repository.KeyUserEmail).Return("", repository.ErrKeyNotFound)
	fx.store.On("Get", ctx, repository.KeyUserPassword).Return("", repository.ErrKeyNotFound)

	_, err := fx.service.Profile(ctx)

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestMaskEmail_ShortLocalPart(t *testing.T) {
	assert.Equal(t, "a****a@x.com", maskEmail("a@x.com"))
	assert.Equal(t, "ab****ab@x.com", maskEmail("ab@x.com"))
}
