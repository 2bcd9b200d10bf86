package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"
	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/service"
	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
	"github.com/rizqunbw/rizqu-moneytracker/internal/mocks"
)

func defaultPolicy() service.Policy {
	return service.Policy{MaxDatabases: 3, MaxScriptURLEdits: 3}
}

func TestDatabaseService_Upsert_NewEntryGetsTokenAndZeroEditCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	user := &domain.User{Email: "a@example.com", Databases: []domain.DatabaseRegistration{}}
	incoming := []domain.DatabaseRegistration{{Name: "Main", ScriptURL: "https://script.google.com/macros/s/one/exec"}}

	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), incoming[0].ScriptURL, user.Email).Return(false, nil)
	mockTokens.EXPECT().SharingToken().Return("Ab12Cd", nil)
	mockRepo.EXPECT().Update(gomock.Any(), user.Email, gomock.Any()).DoAndReturn(
		func(_ context.Context, email string, updates domain.Updates) (*domain.User, error) {
			require.NotNil(t, updates.Databases)
			dbs := *updates.Databases
			require.Len(t, dbs, 1)
			assert.Equal(t, "Main", dbs[0].Name)
			assert.Equal(t, "Ab12Cd", dbs[0].Token)
			assert.Equal(t, 0, dbs[0].EditCount)
			return &domain.User{Email: email, Databases: dbs}, nil
		})

	updated, err := s.UpsertDatabases(context.Background(), user.Email, incoming)

	require.NoError(t, err)
	assert.Equal(t, "Ab12Cd", updated.Databases[0].Token)
}

func TestDatabaseService_Upsert_RenameKeepsTokenAndEditCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	stored := domain.DatabaseRegistration{
		Name:      "Main",
		ScriptURL: "https://script.google.com/macros/s/one/exec",
		Token:     "Xy99Zz",
		EditCount: 1,
	}
	user := &domain.User{Email: "a@example.com", Databases: []domain.DatabaseRegistration{stored}}

	// Same token, same URL, new display name. No SharingToken expectation: a
	// rename must not rotate anything.
	incoming := []domain.DatabaseRegistration{{Name: "Budget", ScriptURL: stored.ScriptURL, Token: stored.Token}}

	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), stored.ScriptURL, user.Email).Return(false, nil)
	mockRepo.EXPECT().Update(gomock.Any(), user.Email, gomock.Any()).DoAndReturn(
		func(_ context.Context, email string, updates domain.Updates) (*domain.User, error) {
			dbs := *updates.Databases
			require.Len(t, dbs, 1)
			assert.Equal(t, "Budget", dbs[0].Name)
			assert.Equal(t, "Xy99Zz", dbs[0].Token)
			assert.Equal(t, 1, dbs[0].EditCount)
			return &domain.User{Email: email, Databases: dbs}, nil
		})

	_, err := s.UpsertDatabases(context.Background(), user.Email, incoming)

	assert.NoError(t, err)
}

func TestDatabaseService_Upsert_URLChangeRotatesTokenAndIncrements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	stored := domain.DatabaseRegistration{
		Name:      "Main",
		ScriptURL: "https://script.google.com/macros/s/one/exec",
		Token:     "Xy99Zz",
		EditCount: 1,
	}
	user := &domain.User{Email: "a@example.com", Databases: []domain.DatabaseRegistration{stored}}

	newURL := "https://script.google.com/macros/s/two/exec"
	incoming := []domain.DatabaseRegistration{{Name: "Main", ScriptURL: newURL, Token: stored.Token}}

	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), newURL, user.Email).Return(false, nil)
	mockTokens.EXPECT().SharingToken().Return("Fr3sh1", nil)
	mockRepo.EXPECT().Update(gomock.Any(), user.Email, gomock.Any()).DoAndReturn(
		func(_ context.Context, email string, updates domain.Updates) (*domain.User, error) {
			dbs := *updates.Databases
			require.Len(t, dbs, 1)
			assert.Equal(t, "Fr3sh1", dbs[0].Token)
			assert.Equal(t, 2, dbs[0].EditCount)
			return &domain.User{Email: email, Databases: dbs}, nil
		})

	_, err := s.UpsertDatabases(context.Background(), user.Email, incoming)

	assert.NoError(t, err)
}

func TestDatabaseService_Upsert_EditLimitReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	stored := domain.DatabaseRegistration{
		Name:      "Main",
		ScriptURL: "https://script.google.com/macros/s/one/exec",
		Token:     "Xy99Zz",
		EditCount: 3,
	}
	user := &domain.User{Email: "a@example.com", Databases: []domain.DatabaseRegistration{stored}}

	newURL := "https://script.google.com/macros/s/four/exec"
	incoming := []domain.DatabaseRegistration{{Name: "Main", ScriptURL: newURL, Token: stored.Token}}

	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), newURL, user.Email).Return(false, nil)

	_, err := s.UpsertDatabases(context.Background(), user.Email, incoming)

	assert.Equal(t, apperrors.ErrEditLimitReached, err)
}

func TestDatabaseService_Upsert_DatabaseLimitReached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	user := &domain.User{Email: "a@example.com"}
	incoming := []domain.DatabaseRegistration{
		{Name: "One"}, {Name: "Two"}, {Name: "Three"}, {Name: "Four"},
	}

	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

	_, err := s.UpsertDatabases(context.Background(), user.Email, incoming)

	assert.Equal(t, apperrors.ErrDatabaseLimitReached, err)
}

func TestDatabaseService_Upsert_DuplicateScriptURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	user := &domain.User{Email: "a@example.com"}
	url := "https://script.google.com/macros/s/taken/exec"
	incoming := []domain.DatabaseRegistration{{Name: "Main", ScriptURL: url}}

	// No Update expectation: the conflict must reject before any write.
	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), url, user.Email).Return(true, nil)

	_, err := s.UpsertDatabases(context.Background(), user.Email, incoming)

	assert.Equal(t, apperrors.ErrDuplicateScriptURL, err)
}

func TestDatabaseService_AddDatabase_Appends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	mockTokens := mocks.NewMockTokenGenerator(ctrl)
	s := service.NewDatabaseService(mockRepo, mockTokens, defaultPolicy())

	existing := domain.DatabaseRegistration{
		Name:      "Main",
		ScriptURL: "https://script.google.com/macros/s/one/exec",
		Token:     "Xy99Zz",
	}
	user := &domain.User{Email: "a@example.com", Databases: []domain.DatabaseRegistration{existing}}

	newURL := "https://script.google.com/macros/s/two/exec"

	mockRepo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), existing.ScriptURL, user.Email).Return(false, nil)
	mockRepo.EXPECT().IsScriptURLTaken(gomock.Any(), newURL, user.Email).Return(false, nil)
	mockTokens.EXPECT().SharingToken().Return("Nw5678", nil)
	mockRepo.EXPECT().Update(gomock.Any(), user.Email, gomock.Any()).DoAndReturn(
		func(_ context.Context, email string, updates domain.Updates) (*domain.User, error) {
			dbs := *updates.Databases
			require.Len(t, dbs, 2)
			assert.Equal(t, "Xy99Zz", dbs[0].Token)
			assert.Equal(t, "Nw5678", dbs[1].Token)
			assert.Equal(t, 0, dbs[1].EditCount)
			return &domain.User{Email: email, Databases: dbs}, nil
		})

	databases, err := s.AddDatabase(context.Background(), user.Email, "Savings", newURL)

	require.NoError(t, err)
	assert.Len(t, databases, 2)
}

func TestDatabaseService_ResolveToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDirectoryRepository(ctrl)
	s := service.NewDatabaseService(mockRepo, mocks.NewMockTokenGenerator(ctrl), defaultPolicy())

	t.Run("found", func(t *testing.T) {
		resolution := &domain.TokenResolution{
			Name:       "Main",
			ScriptURL:  "https://script.google.com/macros/s/one/exec",
			OwnerEmail: "a@example.com",
		}
		mockRepo.EXPECT().FindDatabaseByToken(gomock.Any(), "Ab12Cd").Return(resolution, nil)

		got, err := s.ResolveToken(context.Background(), "Ab12Cd")

		require.NoError(t, err)
		assert.Equal(t, resolution, got)
	})

	t.Run("unknown token", func(t *testing.T) {
		mockRepo.EXPECT().FindDatabaseByToken(gomock.Any(), "nope99").Return(nil, nil)

		got, err := s.ResolveToken(context.Background(), "nope99")

		assert.Equal(t, apperrors.ErrTokenNotFound, err)
		assert.Nil(t, got)
	})
}

// fakeDirectory is an in-memory DirectoryRepository for end-to-end service
// scenarios that span several calls.
type fakeDirectory struct {
	users map[string]*domain.User
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{users: make(map[string]*domain.User)}
}

func (f *fakeDirectory) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeDirectory) Create(_ context.Context, user *domain.User) error {
	copied := *user
	f.users[user.Email] = &copied
	return nil
}

func (f *fakeDirectory) Update(_ context.Context, email string, updates domain.Updates) (*domain.User, error) {
	user, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if updates.Password != "" {
		user.Password = updates.Password
	}
	if updates.PIN != "" {
		user.PIN = updates.PIN
	}
	if updates.Databases != nil {
		user.Databases = *updates.Databases
		user.EditCount++
	}
	copied := *user
	return &copied, nil
}

func (f *fakeDirectory) FindDatabaseByToken(_ context.Context, token string) (*domain.TokenResolution, error) {
	for _, user := range f.users {
		for _, db := range user.Databases {
			if db.Token == token {
				return &domain.TokenResolution{Name: db.Name, ScriptURL: db.ScriptURL, OwnerEmail: user.Email}, nil
			}
		}
	}
	return nil, nil
}

func (f *fakeDirectory) GetAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeDirectory) Delete(_ context.Context, targetEmail string) error {
	delete(f.users, targetEmail)
	return nil
}

func (f *fakeDirectory) DeleteDatabase(_ context.Context, targetEmail string, dbIndex int) error {
	user, ok := f.users[targetEmail]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.Databases = append(user.Databases[:dbIndex], user.Databases[dbIndex+1:]...)
	return nil
}

func (f *fakeDirectory) IsScriptURLTaken(_ context.Context, scriptURL, ownerEmail string) (bool, error) {
	for _, user := range f.users {
		if user.Email == ownerEmail {
			continue
		}
		for _, db := range user.Databases {
			if db.ScriptURL == scriptURL {
				return true, nil
			}
		}
	}
	return false, nil
}

func TestDatabaseService_TokenLifecycle(t *testing.T) {
	directory := newFakeDirectory()
	tokens := service.NewTokenService("", 0)
	s := service.NewDatabaseService(directory, tokens, defaultPolicy())

	ctx := context.Background()

	require.NoError(t, directory.Create(ctx, &domain.User{Email: "a@example.com", Password: "pw", PIN: "123456"}))
	require.NoError(t, directory.Create(ctx, &domain.User{Email: "b@example.com", Password: "pw", PIN: "654321"}))

	// First registration mints a sharing token.
	databases, err := s.AddDatabase(ctx, "a@example.com", "Main", "https://script.google.com/macros/s/one/exec")
	require.NoError(t, err)
	require.Len(t, databases, 1)

	firstToken := databases[0].Token
	assert.Len(t, firstToken, 6)
	assert.Equal(t, 0, databases[0].EditCount)

	resolution, err := s.ResolveToken(ctx, firstToken)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", resolution.OwnerEmail)

	// Changing the script URL rotates the token and spends one edit.
	updated, err := s.UpsertDatabases(ctx, "a@example.com", []domain.DatabaseRegistration{
		{Name: "Main", ScriptURL: "https://script.google.com/macros/s/two/exec", Token: firstToken},
	})
	require.NoError(t, err)
	require.Len(t, updated.Databases, 1)
	assert.NotEqual(t, firstToken, updated.Databases[0].Token)
	assert.Equal(t, 1, updated.Databases[0].EditCount)

	// The old token is dead; the new one resolves to the new URL.
	_, err = s.ResolveToken(ctx, firstToken)
	assert.Equal(t, apperrors.ErrTokenNotFound, err)

	resolution, err = s.ResolveToken(ctx, updated.Databases[0].Token)
	require.NoError(t, err)
	assert.Equal(t, "https://script.google.com/macros/s/two/exec", resolution.ScriptURL)

	// Another account may not claim the same endpoint.
	_, err = s.AddDatabase(ctx, "b@example.com", "Mine", "https://script.google.com/macros/s/two/exec")
	assert.Equal(t, apperrors.ErrDuplicateScriptURL, err)
}
