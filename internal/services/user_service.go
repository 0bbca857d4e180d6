package services

import (
	"context"
	"errors"

	"vente-backend/internal/auth"
	"vente-backend/internal/cache"
	"vente-backend/internal/models"
	"vente-backend/internal/repositories"
)

type UserService struct {
	Repo       *repositories.UserRepository
	JWTManager *auth.JWTManager
}

func NewUserService(repo *repositories.UserRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		Repo:       repo,
		JWTManager: jwtManager,
	}
}

// Signup creates a new user with hashed password
func (s *UserService) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	// Validate input
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, errors.New("name, email, and password are required")
	}

	// Check if user already exists
	existingUser, _ := s.Repo.GetByEmail(ctx, req.Email)
	if existingUser != nil {
		return nil, errors.New("user with this email already exists")
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Role:         "seller",
		IsActive:     true,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// Login authenticates a user and returns a JWT token. When 2FA is enabled
// on the account the TOTP code must accompany the credentials.
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	// Validate input
	if req.Email == "" || req.Password == "" {
		return nil, errors.New("email and password are required")
	}

	user, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("invalid email or password")
	}

	if !user.IsActive {
		return nil, errors.New("account is suspended")
	}

	// Fast path: credentials recently verified against the same hash
	if userID, ok := cache.GetCachedAuth(ctx, req.Email, req.Password); !ok || int(userID) != user.ID {
		if !auth.VerifyPassword(user.PasswordHash, req.Password) {
			return nil, errors.New("invalid email or password")
		}
		cache.CacheAuth(ctx, req.Email, req.Password, int64(user.ID))
	}

	if user.TOTPEnabled {
		if req.TOTPCode == "" {
			return nil, errors.New("totp code is required")
		}
		if !auth.ValidateTOTPCode(req.TOTPCode, user.TOTPSecret) {
			return nil, errors.New("invalid totp code")
		}
	}

	token, err := s.JWTManager.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

func (s *UserService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.Repo.Get(ctx, id)
}

// SetupTOTP generates a fresh secret for the user and stores it in a
// pending state; 2FA is not active until the first code is verified.
func (s *UserService) SetupTOTP(ctx context.Context, userID int) (*models.TOTPSetupResponse, error) {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	secret, url, err := auth.GenerateTOTPSecret(user.Email)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.SetTOTPSecret(ctx, user.ID, secret); err != nil {
		return nil, err
	}

	return &models.TOTPSetupResponse{
		Secret: secret,
		URL:    url,
	}, nil
}

// VerifyTOTP confirms the pending secret with a live code and enables 2FA.
func (s *UserService) VerifyTOTP(ctx context.Context, userID int, code string) error {
	user, err := s.Repo.Get(ctx, userID)
	if err != nil {
		return err
	}
	if user.TOTPSecret == "" {
		return errors.New("totp setup has not been started")
	}
	if !auth.ValidateTOTPCode(code, user.TOTPSecret) {
		return errors.New("invalid totp code")
	}
	return s.Repo.EnableTOTP(ctx, user.ID)
}
