// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is a registered customer. The email is the account identifier and
// is unique across all accounts.
type Account struct {
	Email        string    // Unique identifier, also used as the login name.
	PasswordHash string    // Salted bcrypt output; never the plaintext password.
	CreatedAt    time.Time // Set by the store when the account is inserted.
}
