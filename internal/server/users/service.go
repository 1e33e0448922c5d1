package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lockboxapp/lockbox/internal/common"
)

// AuthRequest is the payload of the combined login-or-register operation.
// Name, DOB, and Role only matter when the request turns out to be a
// registration.
type AuthRequest struct {
	Email    string
	Password string
	Name     string
	DOB      string
	Role     string
}

// UpdateRequest carries the mutable profile fields. Empty strings mean
// "keep the stored value"; the password cannot be changed through here.
type UpdateRequest struct {
	Name  string
	Email string
	Role  string
	DOB   string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Authenticate is the combined login-or-register operation. The existence
// check takes precedence over caller intent: when an account with the
// given email exists, the call is a login attempt regardless of any
// profile fields sent along; only an unknown email creates an account.
//
// Returns the sanitizable user and whether an account was created.
// Failures map to sentinels: blank credentials → common.ErrorValidation,
// wrong password → common.ErrorUnauthorized; anything else is a storage
// failure passed through verbatim.
func (s *Service) Authenticate(ctx context.Context, req AuthRequest) (*User, bool, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Password) == "" {
		return nil, false, common.ErrorValidation
	}

	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(req.Password)) != nil {
			return nil, false, common.ErrorUnauthorized
		}
		return existing, false, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, false, fmt.Errorf("error checking account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, false, fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now()
	user := &User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         normalizeRole(req.Role),
		DOB:          req.DOB,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, false, fmt.Errorf("error creating user: %w", err)
	}
	return created, true, nil
}

func normalizeRole(role string) string {
	if role == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// Update overlays the non-empty fields of req onto the stored record and
// refreshes the updated timestamp.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = normalizeRole(req.Role)
	}
	if req.DOB != "" {
		user.DOB = req.DOB
	}
	user.UpdatedAt = time.Now()

	return s.repo.Update(ctx, user)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
