// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted one-way hash from a plaintext credential.
	Hash(password string) (string, error)

	// Check compares a plaintext credential with a hash to see if they match.
	Check(password, hash string) bool
}
