package models

import "time"

const (
	ProviderPassword = "password"
	ProviderGoogle   = "google"
	ProviderApple    = "apple"
)

// AccountRecord is one entry of the user directory, keyed by ID.
type AccountRecord struct {
	ID              string          `json:"id"`
	Email           string          `json:"email"`
	CredentialProof string          `json:"credentialProof,omitempty"`
	AuthProvider    string          `json:"authProvider"`
	Profile         *FitnessProfile `json:"profile,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastLoginAt     time.Time       `json:"lastLoginAt"`
	IsAdmin         bool            `json:"isAdmin"`
}

// Directory is the stored shape of the whole account directory.
type Directory map[string]*AccountRecord

// IsFederated reports whether the account signs in through an external
// identity provider.
func (a *AccountRecord) IsFederated() bool {
	return a.AuthProvider == ProviderGoogle || a.AuthProvider == ProviderApple
}

// Public returns a copy safe to hand to clients.
func (a *AccountRecord) Public() AccountRecord {
	out := *a
	out.CredentialProof = ""
	return out
}
