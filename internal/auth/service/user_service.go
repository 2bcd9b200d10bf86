package service

import (
	"context"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/dto"
	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
)

type UserService struct {
	repo   domain.DirectoryRepository
	tokens TokenGenerator
}

func NewUserService(repo domain.DirectoryRepository, tokens TokenGenerator) *UserService {
	return &UserService{
		repo:   repo,
		tokens: tokens,
	}
}

func (s *UserService) Register(ctx context.Context, input dto.RegisterInput) error {
	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrEmailAlreadyInUse
	}

	user := &domain.User{
		Email:     input.Email,
		Password:  input.Password, // stored verbatim; see domain.User
		PIN:       input.PIN,
		Databases: []domain.DatabaseRegistration{},
	}

	return s.repo.Create(ctx, user)
}

// Login checks the supplied password against storage with an exact,
// case-sensitive comparison. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*dto.UserOutput, error) {
	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || user.Password != input.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.output(user), nil
}

// VerifyPIN compares PINs as strings; the repository already normalizes
// numeric sheet cells, so "284915" matches regardless of how it was stored.
func (s *UserService) VerifyPIN(ctx context.Context, email, pin string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return apperrors.ErrUserNotFound
	}
	if user.PIN != pin {
		return apperrors.ErrPinMismatch
	}

	return nil
}

// ResetPassword re-verifies the PIN before mutating even though the caller is
// expected to have checked it through a separate round trip already. Only the
// password changes; the PIN and every sharing token stay untouched.
func (s *UserService) ResetPassword(ctx context.Context, email, pin, newPassword string) error {
	if err := s.VerifyPIN(ctx, email, pin); err != nil {
		return err
	}

	_, err := s.repo.Update(ctx, email, domain.Updates{Password: newPassword})
	return err
}

// Sync reconciles a client's cached record with the directory. The claimed
// session token is recomputed from current storage: any password or PIN
// change since issuance invalidates it and forces re-login.
func (s *UserService) Sync(ctx context.Context, email, claimed string) (*dto.UserOutput, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	if !s.tokens.VerifySessionToken(claimed, user.Email, user.Password, user.PIN) {
		return nil, apperrors.ErrSessionExpired
	}

	return s.output(user), nil
}

// UpdateCredentials applies a self-service password/PIN change and returns
// the record with a session token re-derived from the new values.
func (s *UserService) UpdateCredentials(ctx context.Context, email string, updates domain.Updates) (*dto.UserOutput, error) {
	user, err := s.repo.Update(ctx, email, updates)
	if err != nil {
		return nil, err
	}

	return s.output(user), nil
}

func (s *UserService) output(user *domain.User) *dto.UserOutput {
	databases := user.Databases
	if databases == nil {
		databases = []domain.DatabaseRegistration{}
	}

	return &dto.UserOutput{
		Email:        user.Email,
		PIN:          user.PIN,
		EditCount:    user.EditCount,
		Databases:    databases,
		SessionToken: s.tokens.SessionToken(user.Email, user.Password, user.PIN),
	}
}
