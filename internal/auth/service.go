package auth

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"

	"wordhook/internal/config"
	"wordhook/internal/database/accounts"
	"wordhook/internal/entities"
)

// Validation patterns
var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrAccountExists    = errors.New("account already exists")
	ErrInvalidToken     = errors.New("invalid token")
	ErrAuthRequired     = errors.New("authentication required")
	ErrUsernameRequired = errors.New("username is required")
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrUsernameInvalid  = errors.New("username must be 3-64 characters, alphanumeric and underscore/hyphen only")
	ErrEmailInvalid     = errors.New("invalid email format")
)

// Service handles authentication and account credential management.
//
// Deleted accounts authenticate like any other: the recovery operation is
// only reachable by the authenticated owner, so locking deleted accounts out
// would make recovery impossible.
type Service struct {
	repo   *accounts.Repository
	config config.Auth
}

// NewService creates a new authentication service.
func NewService(repo *accounts.Repository, cfg config.Auth) *Service {
	return &Service{
		repo:   repo,
		config: cfg,
	}
}

// Register creates a new account with password authentication.
func (s *Service) Register(username, email, nickname, password string) (*entities.Account, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	if !usernamePattern.MatchString(username) {
		return nil, ErrUsernameInvalid
	}

	// RFC 5321 limit is 254
	if len(email) > 254 || !emailPattern.MatchString(email) {
		return nil, ErrEmailInvalid
	}

	if _, err := s.repo.GetByUsername(username); err == nil {
		return nil, ErrAccountExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if nickname == "" {
		nickname = username
	}

	account := &entities.Account{
		Username:     username,
		Email:        email,
		Nickname:     nickname,
		PasswordHash: passwordHash,
		Role:         entities.RoleUser,
	}

	return s.repo.CreateAccount(account)
}

// Authenticate validates credentials and returns the account, deleted or not.
func (s *Service) Authenticate(username, password string) (*entities.Account, error) {
	account, err := s.repo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}

	if err := CheckPassword(password, account.PasswordHash); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccountByID retrieves an account by its ID.
func (s *Service) GetAccountByID(id uint) (*entities.Account, error) {
	account, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}

// ValidateToken checks a plaintext API token and returns the account.
func (s *Service) ValidateToken(token string) (*entities.Account, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	account, err := s.repo.GetByTokenHash(HashToken(token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return account, nil
}

// GenerateToken creates a new API token for an account. Returns the
// plaintext token (shown to the user once) - only the hash is stored.
func (s *Service) GenerateToken(accountID uint) (string, error) {
	plaintext, hash, err := GenerateAPIToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.repo.UpdateTokenHash(accountID, hash); err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}

	return plaintext, nil
}

// RevokeToken removes an account's API token.
func (s *Service) RevokeToken(accountID uint) error {
	if err := s.repo.UpdateTokenHash(accountID, ""); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// ChangePassword updates an account's password after verifying the old one.
func (s *Service) ChangePassword(accountID uint, oldPassword, newPassword string) error {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return err
	}

	if err := CheckPassword(oldPassword, account.PasswordHash); err != nil {
		return err
	}

	newHash, err := HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePasswordHash(accountID, newHash)
}
