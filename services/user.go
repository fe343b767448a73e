package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
	"github.com/myfinance/tracker-api/utils"
)

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService {
	return &UserService{store: s}
}

// Register validates the request, rejects duplicate usernames and emails,
// and persists the user with a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if strings.TrimSpace(req.Username) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Password) == "" {
		return nil, ErrValidation
	}

	if taken, err := s.store.UsernameExists(ctx, req.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicate
	}
	if taken, err := s.store.EmailExists(ctx, req.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies username/password, and the TOTP code when the account has
// 2FA enabled. An unknown username reports the same error as a wrong
// password.
func (s *UserService) Login(ctx context.Context, username, password, totpCode string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, ErrBadCredentials
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return nil, ErrBadCredentials
	}

	if user.TOTPEnabled {
		if totpCode == "" {
			return nil, ErrTOTPRequired
		}
		if !utils.VerifyTOTP(user.TOTPSecret, totpCode) {
			return nil, ErrBadTOTP
		}
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.store.GetUserByUsername(ctx, username)
}

// ============================================================================
// 2FA MANAGEMENT
// ============================================================================

// SetupTOTP generates and stores a new TOTP secret for the user. The secret
// only becomes enforced once VerifyTOTP confirms a valid code.
func (s *UserService) SetupTOTP(ctx context.Context, username string) (*models.TOTPSetupResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	secret, url, err := utils.GenerateTOTPSecret(user.Username)
	if err != nil {
		return nil, err
	}

	user.TOTPSecret = secret
	user.TOTPEnabled = false
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{Secret: secret, URL: url}, nil
}

// VerifyTOTP enables 2FA once the user proves possession of the secret.
func (s *UserService) VerifyTOTP(ctx context.Context, username, code string) error {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" || !utils.VerifyTOTP(user.TOTPSecret, code) {
		return ErrBadTOTP
	}

	user.TOTPEnabled = true
	return s.store.UpdateUser(ctx, user)
}

// DisableTOTP turns off 2FA after re-checking the password.
func (s *UserService) DisableTOTP(ctx context.Context, username, password string) error {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(password, user.PasswordHash) {
		return ErrBadCredentials
	}

	user.TOTPSecret = ""
	user.TOTPEnabled = false
	return s.store.UpdateUser(ctx, user)
}
