package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way verifiers and
// checks plaintexts against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns a fresh verifier for plaintext. Two calls with the same
	// plaintext produce different verifiers because each one carries its
	// own random salt. An error means the entropy source failed; no
	// verifier must be stored in that case.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches verifier. A malformed or
	// foreign verifier yields false, never an error.
	Verify(plaintext, verifier string) bool
}
