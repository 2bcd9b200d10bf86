package script

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rizqunbw/rizqu-moneytracker/internal/auth/domain"
	apperrors "github.com/rizqunbw/rizqu-moneytracker/internal/errors"
	"github.com/rizqunbw/rizqu-moneytracker/internal/observability/metrics"
)

// Repository talks to the admin directory script: a single POST endpoint with
// action dispatch in the body and a flat {status, ...} envelope back. The
// script serializes concurrent writers itself with a lock-with-timeout; a
// timed-out lock surfaces here as ErrStoreBusy and is never retried.
type Repository struct {
	endpoint func() string
	hc       *http.Client
	log      *slog.Logger
}

// NewRepository builds a directory repository. The endpoint is resolved per
// call because its absence must be a per-request error, not a startup one.
func NewRepository(endpoint func() string, timeout time.Duration, log *slog.Logger) *Repository {
	return &Repository{
		endpoint: endpoint,
		hc: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		log: log,
	}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	env, err := r.call(ctx, "findUser", map[string]interface{}{"email": email})
	if err != nil {
		return nil, err
	}

	if env.Status == "success" && env.User != nil {
		return env.User.toDomain(), nil
	}
	if env.Status == "error" {
		return nil, remoteErr(env)
	}

	return nil, nil
}

func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	if user.Databases == nil {
		user.Databases = []domain.DatabaseRegistration{}
	}

	env, err := r.call(ctx, "register", map[string]interface{}{"user": user})
	if err != nil {
		return err
	}
	if env.Status != "success" {
		return remoteErr(env)
	}

	return nil
}

func (r *Repository) Update(ctx context.Context, email string, updates domain.Updates) (*domain.User, error) {
	env, err := r.call(ctx, "updateUser", map[string]interface{}{
		"email":   email,
		"updates": updates,
	})
	if err != nil {
		return nil, err
	}

	if env.Status != "success" || env.User == nil {
		if strings.EqualFold(env.Message, "user not found") {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, remoteErr(env)
	}

	return env.User.toDomain(), nil
}

func (r *Repository) FindDatabaseByToken(ctx context.Context, token string) (*domain.TokenResolution, error) {
	env, err := r.call(ctx, "findDbByToken", map[string]interface{}{"token": token})
	if err != nil {
		return nil, err
	}

	if env.Status == "success" && env.Data != nil {
		return env.Data, nil
	}

	// The script reports an unknown token as a plain error status.
	return nil, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]domain.User, error) {
	env, err := r.call(ctx, "getAllUsers", nil)
	if err != nil {
		return nil, err
	}
	if env.Status != "success" {
		return nil, remoteErr(env)
	}

	users := make([]domain.User, len(env.Users))
	for i := range env.Users {
		users[i] = *env.Users[i].toDomain()
	}

	return users, nil
}

func (r *Repository) Delete(ctx context.Context, targetEmail string) error {
	env, err := r.call(ctx, "deleteUser", map[string]interface{}{"targetEmail": targetEmail})
	if err != nil {
		return err
	}
	if env.Status != "success" {
		if strings.EqualFold(env.Message, "user not found") {
			return apperrors.ErrUserNotFound
		}
		return remoteErr(env)
	}

	return nil
}

func (r *Repository) DeleteDatabase(ctx context.Context, targetEmail string, dbIndex int) error {
	env, err := r.call(ctx, "deleteUserDatabase", map[string]interface{}{
		"targetEmail": targetEmail,
		"dbIndex":     dbIndex,
	})
	if err != nil {
		return err
	}
	if env.Status != "success" {
		if strings.EqualFold(env.Message, "user not found") {
			return apperrors.ErrUserNotFound
		}
		return remoteErr(env)
	}

	return nil
}

// IsScriptURLTaken scans every other user's registrations for a trimmed URL
// match. Linear over all records on purpose: the directory is small-scale and
// offers no indexed query.
func (r *Repository) IsScriptURLTaken(ctx context.Context, scriptURL, ownerEmail string) (bool, error) {
	users, err := r.GetAll(ctx)
	if err != nil {
		return false, err
	}

	needle := strings.TrimSpace(scriptURL)
	for _, user := range users {
		if user.Email == ownerEmail {
			continue
		}
		for _, db := range user.Databases {
			if db.ScriptURL != "" && strings.TrimSpace(db.ScriptURL) == needle {
				return true, nil
			}
		}
	}

	return false, nil
}

func (r *Repository) call(ctx context.Context, action string, payload map[string]interface{}) (*envelope, error) {
	endpoint := r.endpoint()
	if endpoint == "" {
		r.log.Error("ADMIN_SCRIPT_URL is not set")
		return nil, apperrors.ErrMissingScriptURL
	}

	body := map[string]interface{}{"action": action}
	for k, v := range payload {
		body[k] = v
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory response: %w", err)
	}

	duration := time.Since(start)
	metrics.UpstreamRequestDuration.WithLabelValues("directory").Observe(duration.Seconds())
	r.log.Debug("directory call", "action", action, "status", resp.StatusCode, "duration", duration.String())

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		// Apps Script answers with an HTML error page when the deployment
		// permissions are wrong; never propagate the parse failure raw.
		r.log.Warn("directory returned non-JSON", "action", action, "preview", preview(data))
		return nil, apperrors.ErrInvalidUpstream
	}

	if env.Status == "error" && strings.Contains(strings.ToLower(env.Message), "busy") {
		return nil, apperrors.ErrStoreBusy
	}

	return &env, nil
}

func remoteErr(env *envelope) error {
	if env.Message != "" {
		return &apperrors.Remote{Message: env.Message}
	}
	return &apperrors.Remote{Message: "directory request rejected"}
}

func preview(data []byte) string {
	const max = 150
	s := strings.TrimSpace(string(data))
	if len(s) > max {
		s = s[:max] + "..."
	}
	return s
}
