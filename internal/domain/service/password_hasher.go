// Package service defines interfaces for domain capabilities implemented in infra.
package service

// PasswordHasher turns plaintext passwords into salted one-way hashes.
type PasswordHasher interface {
	// Hash returns a new salted hash. Hashing the same input twice yields different output.
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}
