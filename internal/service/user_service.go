package service

import (
	"context"
	"strings"

	"parcel_tracking/internal/models"
	"parcel_tracking/internal/repository"
)

type UserService struct {
	users      repository.UserRepo
	adminEmail string
}

// NewUserService creates the account service. adminEmail is the configured
// administrator address; no stored account may take it.
func NewUserService(users repository.UserRepo, adminEmail string) *UserService {
	return &UserService{users: users, adminEmail: normalizeEmail(adminEmail)}
}

var _ Users = (*UserService)(nil)

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}

// UpdateUser replaces names, e-mail and (for admins) role.
// An empty password keeps the stored hash.
func (s *UserService) UpdateUser(ctx context.Context, id int64, in UserUpdate, asAdmin bool) (*models.User, error) {
	u, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(in.Email)
	if field := firstMissing("first name", in.FirstName, "email", email); field != "" {
		return nil, invalid("%s is required", field)
	}
	if !emailPattern.MatchString(email) {
		return nil, invalid("invalid email format")
	}
	if s.adminEmail != "" && email == s.adminEmail {
		return nil, ErrEmailTaken
	}
	if email != u.Email {
		other, err := s.users.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != u.ID {
			return nil, ErrEmailTaken
		}
	}

	// The password is checked before the first write.
	var hash string
	if in.Password != "" {
		if hash, err = hashPassword(in.Password); err != nil {
			return nil, err
		}
	}

	u.FirstName = strings.TrimSpace(in.FirstName)
	u.LastName = strings.TrimSpace(in.LastName)
	u.Email = email
	if asAdmin && in.Role != "" {
		u.Role = normalizeRole(in.Role)
	}
	if err := s.users.Update(ctx, *u); err != nil {
		return nil, err
	}

	if hash != "" {
		if err := s.users.UpdatePassword(ctx, u.ID, hash); err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	ok, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
