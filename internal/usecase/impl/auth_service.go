// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"pantry/config"
	"pantry/internal/domain/entity"
	domainerrors "pantry/internal/domain/errors"
	"pantry/internal/domain/repository"
	"pantry/internal/domain/service"
	"pantry/internal/usecase"
)

// authService implements the AuthUsecase interface.
type authService struct {
	store    repository.CredentialStore
	digester service.Digester
	tokens   service.TokenService
	logger   *slog.Logger

	allowedEmailDomain string
	minPasswordLength  int

	// mu serializes login/register attempts: a submission that arrives
	// while another is in flight waits instead of racing it, mirroring the
	// disabled-submit-button convention of the mobile shell.
	mu sync.Mutex
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(
	store repository.CredentialStore,
	digester service.Digester,
	tokens service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		store:              store,
		digester:           digester,
		tokens:             tokens,
		logger:             logger,
		allowedEmailDomain: cfg.Auth.AllowedEmailDomain,
		minPasswordLength:  cfg.Auth.MinPasswordLength,
	}
}

// Register validates the input and writes the account to the secure store.
// Validation is ordered, first failure wins: domain suffix, password
// confirmation, minimum length. The previous account, if any, is
// overwritten whole.
func (s *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.HasSuffix(input.Email, s.allowedEmailDomain) {
		return nil, domainerrors.ErrInvalidEmailDomain
	}
	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrPasswordMismatch
	}
	if len(input.Password) < s.minPasswordLength {
		return nil, domainerrors.ErrPasswordTooShort
	}

	account := entity.Credential{
		Email:          input.Email,
		PasswordDigest: s.digester.Digest(input.Password),
	}

	// Both keys go down in one durable write so a failure never leaves the
	// email of one account next to the digest of another.
	err := s.store.SetMany(ctx, map[string]string{
		repository.KeyUserEmail:    account.Email,
		repository.KeyUserPassword: account.PasswordDigest,
	})
	if err != nil {
		s.logger.Error("failed to write credentials", slog.Any("error", err))
		return nil, domainerrors.ErrStorage
	}

	s.logger.Info("account registered", slog.String("email", input.Email))

	return &usecase.RegisterOutput{Email: input.Email}, nil
}

// Login checks the credentials against the stored account. A wrong password
// and a missing account produce the same rejection so the response does not
// reveal whether an account exists.
func (s *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !strings.HasSuffix(input.Email, s.allowedEmailDomain) {
		return nil, domainerrors.ErrInvalidEmailDomain
	}

	account, err := s.loadAccount(ctx)
	if err != nil {
		return nil, err
	}

	digest := s.digester.Digest(input.Password)

	if account.IsZero() || input.Email != account.Email || digest != account.PasswordDigest {
		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(account.Email)
	if err != nil {
		s.logger.Error("failed to issue access token", slog.Any("error", err))
		return nil, domainerrors.ErrInternalError
	}

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		Email:       account.Email,
	}, nil
}

// Profile derives the display username and masked email from the stored
// account, the way the profile tab renders them.
func (s *authService) Profile(ctx context.Context) (*usecase.ProfileOutput, error) {
	account, err := s.loadAccount(ctx)
	if err != nil {
		return nil, err
	}
	if account.IsZero() {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return &usecase.ProfileOutput{
		Username:    usernameOf(account.Email),
		MaskedEmail: maskEmail(account.Email),
	}, nil
}

// loadAccount reads the stored credential. A store with neither key yields
// the zero Credential, meaning no account has been registered.
func (s *authService) loadAccount(ctx context.Context) (entity.Credential, error) {
	email, err := s.getOrEmpty(ctx, repository.KeyUserEmail)
	if err != nil {
		return entity.Credential{}, err
	}
	digest, err := s.getOrEmpty(ctx, repository.KeyUserPassword)
	if err != nil {
		return entity.Credential{}, err
	}

	return entity.Credential{Email: email, PasswordDigest: digest}, nil
}

// getOrEmpty reads a key, treating an absent key as the empty string.
// Only real I/O failures surface as storage errors.
func (s *authService) getOrEmpty(ctx context.Context, key string) (string, error) {
	value, err := s.store.Get(ctx, key)
	if errors.Is(err, repository.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		s.logger.Error("secure store read failed",
			slog.String("key", key),
			slog.Any("error", err),
		)
		return "", domainerrors.ErrStorage
	}
	return value, nil
}

// usernameOf returns the local part of the email.
func usernameOf(email string) string {
	name, _, found := strings.Cut(email, "@")
	if !found {
		return email
	}
	return name
}

// maskEmail hides the middle of the local part: "abcdef@x.com" -> "ab****ef@x.com".
func maskEmail(email string) string {
	local, domain, found := strings.Cut(email, "@")
	if !found {
		return "*****"
	}

	runes := []rune(local)
	head := string(runes[:min(2, len(runes))])
	tail := runes
	if len(runes) > 2 {
		tail = runes[len(runes)-2:]
	}

	return head + "****" + string(tail) + "@" + domain
}
