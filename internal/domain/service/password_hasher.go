// Package service declares the collaborators the usecases depend on: crypto,
// mail, blob storage and the AI providers.
package service

// PasswordHasher hashes account passwords. Check is also used to confirm the
// password before account deletion.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}
