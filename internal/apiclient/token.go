package apiclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tijaniyah/companion/internal/ports"
	"golang.org/x/oauth2"
)

// TokenHolder owns the bearer token: one in-memory copy mirrored to the key-value store.
// Persistence failures never block the in-memory change.
type TokenHolder struct {
	store  ports.KeyValueStore
	logger *slog.Logger

	mu    sync.RWMutex
	token *oauth2.Token
}

// NewTokenHolder creates an empty holder backed by store.
func NewTokenHolder(store ports.KeyValueStore, logger *slog.Logger) *TokenHolder {
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenHolder{store: store, logger: logger}
}

// Load reads the persisted token into memory. A JWT whose exp claim has passed is evicted
// from the store instead. Read failures leave the holder empty.
func (h *TokenHolder) Load(ctx context.Context) {
	raw, err := h.store.Get(ctx, ports.KeyAuthToken)
	if err != nil {
		h.logger.WarnContext(ctx, "load auth token", "error", err)
		return
	}
	if raw == nil {
		return
	}
	var access string
	if err := json.Unmarshal(raw, &access); err != nil || access == "" {
		h.logger.WarnContext(ctx, "discarding unreadable auth token", "error", err)
		h.deletePersisted(ctx)
		return
	}

	tok := newBearer(access)
	if !tok.Valid() {
		h.logger.InfoContext(ctx, "evicting expired auth token", "expired_at", tok.Expiry)
		h.deletePersisted(ctx)
		return
	}

	h.mu.Lock()
	h.token = tok
	h.mu.Unlock()
}

// Set replaces the token in memory and persists it.
func (h *TokenHolder) Set(ctx context.Context, access string) {
	if access == "" {
		return
	}
	h.mu.Lock()
	h.token = newBearer(access)
	h.mu.Unlock()

	b, err := json.Marshal(access)
	if err == nil {
		err = h.store.Set(ctx, ports.KeyAuthToken, b)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "persist auth token", "error", err)
	}
}

// Clear drops the in-memory token and deletes the persisted copy. The in-memory token is
// always cleared; the returned error reports only the store failure.
func (h *TokenHolder) Clear(ctx context.Context) error {
	h.mu.Lock()
	h.token = nil
	h.mu.Unlock()
	return h.store.Delete(ctx, ports.KeyAuthToken)
}

// Current returns the access token, or "" when none is held.
func (h *TokenHolder) Current() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == nil {
		return ""
	}
	return h.token.AccessToken
}

// Token returns a copy of the held token, or nil.
func (h *TokenHolder) Token() *oauth2.Token {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token == nil {
		return nil
	}
	cp := *h.token
	return &cp
}

func (h *TokenHolder) deletePersisted(ctx context.Context) {
	if err := h.store.Delete(ctx, ports.KeyAuthToken); err != nil {
		h.logger.WarnContext(ctx, "delete auth token", "error", err)
	}
}

// newBearer wraps access in an oauth2.Token. When access is a JWT with an exp claim the
// expiry is copied over; opaque tokens never expire locally.
func newBearer(access string) *oauth2.Token {
	tok := &oauth2.Token{AccessToken: access, TokenType: "Bearer"}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return tok
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		tok.Expiry = exp.Time
	}
	return tok
}
