package data

import (
	"context"

	domainauth "github.com/tijaniyah/companion/internal/domain/auth"
	"github.com/tijaniyah/companion/internal/ports"
)

// AccountRepo persists the local account directory as a JSON list under ports.KeyLocalUsers.
type AccountRepo struct {
	kv ports.KeyValueStore
}

// NewAccountRepo creates an AccountRepo on kv.
func NewAccountRepo(kv ports.KeyValueStore) *AccountRepo {
	return &AccountRepo{kv: kv}
}

// List returns every stored account; an absent list is empty.
func (r *AccountRepo) List(ctx context.Context) ([]domainauth.LocalAccount, error) {
	var accounts []domainauth.LocalAccount
	if _, err := getJSON(ctx, r.kv, ports.KeyLocalUsers, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Add appends account to the stored list.
func (r *AccountRepo) Add(ctx context.Context, account domainauth.LocalAccount) error {
	accounts, err := r.List(ctx)
	if err != nil {
		return err
	}
	return setJSON(ctx, r.kv, ports.KeyLocalUsers, append(accounts, account))
}
