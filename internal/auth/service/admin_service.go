package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"
	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
)

// AdminService gates the operator endpoints. Unlike user credentials, the
// admin password is never stored or compared in the clear: only its bcrypt
// hash lives in configuration.
type AdminService struct {
	repo         domain.DirectoryRepository
	tokens       TokenGenerator
	passwordHash string
}

func NewAdminService(repo domain.DirectoryRepository, tokens TokenGenerator, passwordHash string) *AdminService {
	return &AdminService{
		repo:         repo,
		tokens:       tokens,
		passwordHash: passwordHash,
	}
}

func (s *AdminService) Login(password string) (string, time.Time, error) {
	if s.passwordHash == "" {
		return "", time.Time{}, apperrors.ErrAdminNotConfigured
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", time.Time{}, apperrors.ErrInvalidAdminCredentials
	}

	return s.tokens.GenerateAdminToken()
}

// ListUsers returns full directory records, credentials included; the admin
// console displays them.
func (s *AdminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.repo.GetAll(ctx)
}

func (s *AdminService) UpdateUser(ctx context.Context, email string, updates domain.Updates) (*domain.User, error) {
	return s.repo.Update(ctx, email, updates)
}

func (s *AdminService) DeleteUser(ctx context.Context, targetEmail string) error {
	return s.repo.Delete(ctx, targetEmail)
}

func (s *AdminService) DeleteDatabase(ctx context.Context, targetEmail string, dbIndex int) error {
	return s.repo.DeleteDatabase(ctx, targetEmail, dbIndex)
}
