package service

import (
	"context"
	"strings"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"
	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
)

// Policy bounds what a single account may register. Zero values disable the
// corresponding cap.
type Policy struct {
	MaxDatabases      int
	MaxScriptURLEdits int
}

type DatabaseService struct {
	repo   domain.DirectoryRepository
	tokens TokenGenerator
	policy Policy
}

func NewDatabaseService(repo domain.DirectoryRepository, tokens TokenGenerator, policy Policy) *DatabaseService {
	return &DatabaseService{
		repo:   repo,
		tokens: tokens,
		policy: policy,
	}
}

// UpsertDatabases replaces the user's registration list wholesale. The caller
// sends the complete new list; matching against the stored list decides which
// tokens survive, which rotate, and which edit counters move. The conflict
// scan runs before any write so a rejected update mutates nothing.
func (s *DatabaseService) UpsertDatabases(ctx context.Context, email string, incoming []domain.DatabaseRegistration) (*domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	return s.upsert(ctx, user, incoming)
}

// AddDatabase appends one registration and flows through the same upsert path
// so uniqueness, token assignment and the database cap all apply.
func (s *DatabaseService) AddDatabase(ctx context.Context, email, name, scriptURL string) ([]domain.DatabaseRegistration, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}

	next := make([]domain.DatabaseRegistration, 0, len(user.Databases)+1)
	next = append(next, user.Databases...)
	next = append(next, domain.DatabaseRegistration{Name: name, ScriptURL: scriptURL})

	updated, err := s.upsert(ctx, user, next)
	if err != nil {
		return nil, err
	}

	return updated.Databases, nil
}

// ResolveToken grants read access by possession alone: the token is a bearer
// credential with no expiry, revocable only by the owner changing the
// registration's script URL.
func (s *DatabaseService) ResolveToken(ctx context.Context, token string) (*domain.TokenResolution, error) {
	resolution, err := s.repo.FindDatabaseByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if resolution == nil {
		return nil, apperrors.ErrTokenNotFound
	}

	return resolution, nil
}

func (s *DatabaseService) upsert(ctx context.Context, user *domain.User, incoming []domain.DatabaseRegistration) (*domain.User, error) {
	if s.policy.MaxDatabases > 0 && len(incoming) > s.policy.MaxDatabases {
		return nil, apperrors.ErrDatabaseLimitReached
	}

	for _, db := range incoming {
		url := strings.TrimSpace(db.ScriptURL)
		if url == "" {
			continue
		}
		taken, err := s.repo.IsScriptURLTaken(ctx, url, user.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrDuplicateScriptURL
		}
	}

	next := make([]domain.DatabaseRegistration, len(incoming))
	for i, db := range incoming {
		old := matchRegistration(user.Databases, db)

		switch {
		case old == nil:
			token, err := s.tokens.SharingToken()
			if err != nil {
				return nil, err
			}
			db.Token = token
			db.EditCount = 0

		case old.ScriptURL != db.ScriptURL:
			if s.policy.MaxScriptURLEdits > 0 && old.EditCount >= s.policy.MaxScriptURLEdits {
				return nil, apperrors.ErrEditLimitReached
			}
			token, err := s.tokens.SharingToken()
			if err != nil {
				return nil, err
			}
			db.Token = token
			db.EditCount = old.EditCount + 1

		default:
			db.Token = old.Token
			db.EditCount = old.EditCount
			if db.Token == "" {
				token, err := s.tokens.SharingToken()
				if err != nil {
					return nil, err
				}
				db.Token = token
			}
		}

		next[i] = db
	}

	return s.repo.Update(ctx, user.Email, domain.Updates{Databases: &next})
}

// matchRegistration finds the stored entry an incoming one replaces: by token
// when the client sent one, falling back to the (non-unique) name otherwise.
func matchRegistration(current []domain.DatabaseRegistration, incoming domain.DatabaseRegistration) *domain.DatabaseRegistration {
	if incoming.Token != "" {
		for i := range current {
			if current[i].Token == incoming.Token {
				return &current[i]
			}
		}
	}

	for i := range current {
		if current[i].Name == incoming.Name {
			return &current[i]
		}
	}

	return nil
}
