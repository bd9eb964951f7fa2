package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"

	"github.com/Karlyle101/tip-me-api/internal/auth"
	"github.com/Karlyle101/tip-me-api/internal/models"
	"github.com/Karlyle101/tip-me-api/internal/repository"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrHandleTaken        = errors.New("handle already taken")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidHandle      = errors.New("handle must be 3-32 characters of letters, digits, - or _")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{3,32}$`)

type AuthService struct {
	userRepo     *repository.UserRepository
	tokenService *TokenService
	bcryptCost   int
}

func NewAuthService(userRepo *repository.UserRepository, tokenService *TokenService, bcryptCost int) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		bcryptCost:   bcryptCost,
	}
}

// Register creates a user and returns a signed token alongside it. An empty
// role defaults to CUSTOMER; ADMIN cannot be self-selected, elevation goes
// through the admin role endpoint.
func (s *AuthService) Register(email, password, name string, role models.Role, handle string) (string, *models.User, error) {
	email = strings.ToLower(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return "", nil, ErrPasswordTooShort
	}
	if name == "" {
		return "", nil, errors.New("name is required")
	}
	if !handlePattern.MatchString(handle) {
		return "", nil, ErrInvalidHandle
	}
	if role == "" {
		role = models.RoleCustomer
	}
	if role != models.RoleCustomer && role != models.RoleBarista {
		return "", nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrEmailTaken
	}

	existing, err = s.userRepo.FindByHandle(handle)
	if err != nil {
		return "", nil, err
	}
	if existing != nil {
		return "", nil, ErrHandleTaken
	}

	passwordHash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		Handle:       handle,
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", nil, err
	}

	token, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Login returns the same ErrInvalidCredentials for an unknown email and a
// password mismatch so callers cannot enumerate accounts.
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(email))
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokenService.GenerateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// UpdateUserRole is the admin-only elevation path.
func (s *AuthService) UpdateUserRole(id uint, role models.Role) (*models.User, error) {
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.userRepo.UpdateRole(user, role); err != nil {
		return nil, err
	}
	return user, nil
}
