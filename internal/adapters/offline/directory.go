package offline

// Package offline provides the on-device account directory used when the backend
// cannot be reached: lookup by email, offline registration, and password checks.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	apperrors "github.com/tijaniyah/companion/internal/errors"
	"github.com/tijaniyah/companion/internal/ports"
	"golang.org/x/crypto/bcrypt"
)

// Config controls the directory behavior.
type Config struct {
	// Store persists the account list. Required.
	Store ports.AccountDirectory
	// SeedDemoAccounts adds the demo fixture when the stored list is empty.
	SeedDemoAccounts bool
	// Now stamps seeded accounts; defaults to time.Now in UTC.
	Now    func() time.Time
	Logger *slog.Logger
}

// Directory implements ports.AccountDirectory on top of a persisted list and,
// optionally, the demo fixture.
type Directory struct {
	store  ports.AccountDirectory
	seed   bool
	now    func() time.Time
	logger *slog.Logger

	seedOnce sync.Once
}

var _ ports.AccountDirectory = (*Directory)(nil)

// NewDirectory constructs a Directory from Config.
func NewDirectory(cfg Config) (*Directory, error) {
	if cfg.Store == nil {
		return nil, errors.New("offline directory: Store is required")
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC().Round(0) }
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{
		store:  cfg.Store,
		seed:   cfg.SeedDemoAccounts,
		now:    now,
		logger: logger,
	}, nil
}

// List returns every account, seeding the demo fixture into an empty directory first.
func (d *Directory) List(ctx context.Context) ([]domainauth.LocalAccount, error) {
	accounts, err := d.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(accounts) > 0 || !d.seed {
		return accounts, nil
	}

	var seedErr error
	d.seedOnce.Do(func() {
		for _, acct := range DemoAccounts(d.now()) {
			if addErr := d.store.Add(ctx, acct); addErr != nil {
				seedErr = fmt.Errorf("seed demo account %s: %w", acct.Email, addErr)
				return
			}
		}
		d.logger.DebugContext(ctx, "seeded demo accounts", "count", len(demoAccounts))
	})
	if seedErr != nil {
		return nil, seedErr
	}
	return d.store.List(ctx)
}

// Add appends account to the directory.
func (d *Directory) Add(ctx context.Context, account domainauth.LocalAccount) error {
	return d.store.Add(ctx, account)
}

// Find returns the account whose email matches case-insensitively, or nil when none does.
func Find(accounts []domainauth.LocalAccount, email string) *domainauth.LocalAccount {
	addr := domainauth.NormalizeEmail(email)
	for i := range accounts {
		if domainauth.NormalizeEmail(accounts[i].Email) == addr {
			acct := accounts[i]
			return &acct
		}
	}
	return nil
}

// Authenticate checks password against account. Demo accounts require their fixture
// password; other accounts are checked against their bcrypt hash when one is stored.
func Authenticate(account domainauth.LocalAccount, password string) error {
	if IsDemoEmail(account.Email) {
		return CheckDemoPassword(account.Email, password)
	}
	if account.PasswordHash == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return apperrors.Unauthorized("Invalid email or password")
	}
	return nil
}

// HashPassword returns the bcrypt hash stored for offline-registered accounts.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
