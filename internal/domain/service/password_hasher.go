package service

// PasswordHasher turns signup passwords into stored credential hashes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches a hash produced by Hash.
	Check(password, hash string) bool
}
