package core

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil when password matches hash
	Compare(hash, password string) error
}

// TokenIssuer issues and validates signed bearer tokens identifying a user
type TokenIssuer interface {
	Issue(userID uint64) (string, error)
	// Parse returns the user ID carried by a valid, unexpired token
	Parse(token string) (uint64, error)
}
