package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel_tracking"
	"parcel_tracking/internal/config"
	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService handles registration, login and token checks.
type AuthService struct {
	users      repository.UserRepo
	signingKey []byte
	tokenTTL   time.Duration
	admin      config.AdminConfig
}

func NewAuthService(users repository.UserRepo, signingKey string, tokenTTL time.Duration, admin config.AdminConfig) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		users:      users,
		signingKey: []byte(signingKey),
		tokenTTL:   tokenTTL,
		admin:      admin,
	}
}

var _ Authorization = (*AuthService)(nil)

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (c *Claims) IsAdmin() bool { return c.Role == models.RoleAdmin }

// Register hashes the password and creates a new user.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	u := models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     normalizeEmail(in.Email),
		Role:      normalizeRole(in.Role),
		CreatedAt: time.Now().UTC(),
	}
	switch {
	case u.FirstName == "":
		return nil, invalid("first name is required")
	case u.Email == "":
		return nil, invalid("email is required")
	case !emailPattern.MatchString(u.Email):
		return nil, invalid("invalid email format")
	}

	existing, err := s.users.GetByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil || s.isAdminEmail(u.Email) {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash

	id, err := s.users.Create(ctx, u)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return &u, nil
}

// Login checks credentials and returns the profile with a signed token.
// The configured administrator is checked before stored users.
func (s *AuthService) Login(ctx context.Context, email, password string) (*parcel_tracking.LoginResponse, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	if s.isAdmin(email, password) {
		token, err := s.issueToken(0, email, models.RoleAdmin)
		if err != nil {
			return nil, err
		}
		return &parcel_tracking.LoginResponse{
			Email: email,
			Name:  s.admin.Name,
			Role:  models.RoleAdmin,
			Token: token,
		}, nil
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &parcel_tracking.LoginResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Name:      u.FullName(),
		Role:      u.Role,
		Token:     token,
	}, nil
}

// ParseToken parses a JWT and returns its claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// ResetPassword replaces the password of the account registered with email.
func (s *AuthService) ResetPassword(ctx context.Context, email, newPassword string) error {
	u, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if u == nil {
		return ErrEmailNotFound
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, u.ID, hash)
}

func (s *AuthService) isAdminEmail(email string) bool {
	return s.admin.Email != "" && strings.EqualFold(s.admin.Email, email)
}

func (s *AuthService) isAdmin(email, password string) bool {
	if !s.isAdminEmail(email) || s.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.admin.Password), []byte(password)) == 1
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int64, email, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})
	return token.SignedString(s.signingKey)
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", invalid("password is required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", invalid("password is too long")
		}
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeRole(role string) string {
	if strings.EqualFold(strings.TrimSpace(role), models.RoleAdmin) {
		return models.RoleAdmin
	}
	return models.RoleUser
}
