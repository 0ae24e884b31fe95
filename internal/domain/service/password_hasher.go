// Package service defines interfaces for core, stateless domain logic.
package service

// PasswordHasher hashes passwords for storage and verifies login attempts.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password. A fresh salt is drawn on every call.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
