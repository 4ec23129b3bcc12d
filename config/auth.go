package config

// AuthConfig controls the offline account fallback used when the backend is unreachable.
type AuthConfig struct {
	// OfflineAccountsEnabled turns on the local account directory fallback for login and registration.
	OfflineAccountsEnabled bool `env:"OFFLINE_ACCOUNTS_ENABLED" envDefault:"true"`

	// SeedDemoAccounts adds the demo fixture accounts to an empty directory.
	SeedDemoAccounts bool `env:"OFFLINE_SEED_DEMO_ACCOUNTS" envDefault:"true"`
}
