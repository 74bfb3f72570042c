package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"studypath-be/internal/jwt"
	"studypath-be/internal/models"
	"studypath-be/internal/repository"
)

// ErrEmailTaken is returned when signing up with an already registered email
var ErrEmailTaken = errors.New("user with this email already exists")

// ErrInvalidCredentials is returned for both unknown email and wrong password,
// so callers cannot probe which accounts exist
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication business logic
type AuthService interface {
	Signup(req *models.SignupRequest) error
	Login(req *models.LoginRequest) (*models.TokenResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Signup creates a new user account with a hashed password
func (s *authService) Signup(req *models.SignupRequest) error {
	// Check if user already exists
	existingUser, err := s.userRepo.FindByEmail(req.Email)
	if err == nil && existingUser != nil {
		return ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if _, err := s.userRepo.Create(req.Name, req.Email, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Login authenticates a user and returns a bearer token
func (s *authService) Login(req *models.LoginRequest) (*models.TokenResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}
