package soundseal

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// KeyProvider supplies encryption keys derived from per-artifact salts.
type KeyProvider interface {
	// DeriveKey derives an encryption key from the given salt
	DeriveKey(salt []byte) ([]byte, error)

	// GenerateSalt generates a new random salt
	GenerateSalt() ([]byte, error)
}

// PBKDF2Params contains parameters for PBKDF2 key derivation
type PBKDF2Params struct {
	Iterations int       // Number of iterations (default 100,000)
	Rand       io.Reader // Salt randomness source (default crypto/rand.Reader)
}

// PassphraseKeyProvider implements KeyProvider using PBKDF2-SHA256.
// Derivation is deterministic: the same passphrase and salt always
// yield the same 256-bit key.
type PassphraseKeyProvider struct {
	passphrase []byte
	iterations int
	rand       io.Reader
}

// NewPassphraseKeyProvider creates a passphrase-based key provider.
func NewPassphraseKeyProvider(passphrase []byte, params PBKDF2Params) *PassphraseKeyProvider {
	if params.Iterations == 0 {
		params.Iterations = DefaultIterations
	}
	if params.Rand == nil {
		params.Rand = rand.Reader
	}

	return &PassphraseKeyProvider{
		passphrase: passphrase,
		iterations: params.Iterations,
		rand:       params.Rand,
	}
}

// DeriveKey derives a 256-bit key from the passphrase and salt.
func (p *PassphraseKeyProvider) DeriveKey(salt []byte) ([]byte, error) {
	if len(p.passphrase) == 0 {
		return nil, &InputError{Field: "passphrase", Message: ErrEmptyPassphrase.Error(), Err: ErrEmptyPassphrase}
	}
	if err := ValidateSalt(salt); err != nil {
		return nil, err
	}

	key := pbkdf2.Key(p.passphrase, salt, p.iterations, KeySize, sha256.New)
	return key, nil
}

// GenerateSalt draws a fresh random salt from the provider's
// randomness source.
func (p *PassphraseKeyProvider) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(p.rand, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	return salt, nil
}
