package domain

//go:generate mockgen -destination=../../mocks/mock_directory_repository.go -package=mocks github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain DirectoryRepository

import "context"

// DirectoryRepository is the remote user directory. FindByEmail and
// FindDatabaseByToken return (nil, nil) when nothing matches.
type DirectoryRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, email string, updates Updates) (*User, error)
	FindDatabaseByToken(ctx context.Context, token string) (*TokenResolution, error)
	GetAll(ctx context.Context) ([]User, error)
	Delete(ctx context.Context, targetEmail string) error
	DeleteDatabase(ctx context.Context, targetEmail string, dbIndex int) error
	IsScriptURLTaken(ctx context.Context, scriptURL, ownerEmail string) (bool, error)
}
