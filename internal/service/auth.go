package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v4"

	"github.com/warungku/warung-service/internal/db/repository"
	"github.com/warungku/warung-service/internal/models"
	"github.com/warungku/warung-service/internal/security"
)

// ErrInvalidCredentials is returned for any failed login, without
// distinguishing unknown usernames from wrong passwords
var ErrInvalidCredentials = errors.New("invalid username or password")

// JWTConfig holds configuration for JWT token generation
type JWTConfig struct {
	Secret    string
	ExpiresIn int // hours
}

// AuthService handles authentication and authorization
type AuthService struct {
	repos     *repository.Repositories
	jwtConfig JWTConfig
	validate  *validator.Validate
}

// NewAuthService creates a new authentication service
func NewAuthService(repos *repository.Repositories, jwtConfig JWTConfig, validate *validator.Validate) *AuthService {
	return &AuthService{
		repos:     repos,
		jwtConfig: jwtConfig,
		validate:  validate,
	}
}

// Claims represents JWT claims
type Claims struct {
	UserID   int             `json:"id"`
	Username string          `json:"username"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Register creates a new user account. The role is always "user"
// regardless of anything in the request.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
	}

	createdUser, err := s.repos.User.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return createdUser, nil
}

// Login authenticates a user and returns a JWT token.
//
// The seeded superuser is checked against the literal password
// "superuser" instead of its hash. This backdoor comes from the
// original teaching app and is preserved on purpose; do not expose
// this service outside a trusted setting.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.repos.User.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	var valid bool
	if username == models.SuperuserName {
		valid = password == models.SuperuserName
	} else {
		valid = security.CheckPassword(password, user.Password)
	}
	if !valid {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return token, user, nil
}

// generateToken generates a JWT token for a user
func (s *AuthService) generateToken(user *models.User) (string, error) {
	expirationTime := time.Now().Add(time.Duration(s.jwtConfig.ExpiresIn) * time.Hour)

	claims := &Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns the claims. Any
// failure (malformed, expired, bad signature) is just an error; callers
// treat them all as unauthenticated.
func (s *AuthService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetUser gets a user by id
func (s *AuthService) GetUser(ctx context.Context, id int) (*models.User, error) {
	return s.repos.User.GetByID(ctx, id)
}

// ListUsers retrieves all users
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repos.User.List(ctx)
}

// DeleteUser deletes a user. Deleting the superuser always fails.
func (s *AuthService) DeleteUser(ctx context.Context, id int) error {
	return s.repos.User.Delete(ctx, id)
}
