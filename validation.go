package soundseal

import (
	"fmt"
)

// Input validation helpers shared by the codec and cipher paths

// ValidateSalt checks that a salt has the exact size the payload
// format requires.
func ValidateSalt(salt []byte) error {
	if salt == nil {
		return &InputError{Field: "salt", Message: "salt cannot be nil"}
	}
	if len(salt) != SaltSize {
		return &InputError{
			Field:   "salt",
			Message: fmt.Sprintf("salt must be %d bytes, got %d", SaltSize, len(salt)),
		}
	}
	return nil
}

// ValidateNonce checks that a nonce has the exact size AES-GCM expects.
func ValidateNonce(nonce []byte) error {
	if nonce == nil {
		return &InputError{Field: "nonce", Message: "nonce cannot be nil"}
	}
	if len(nonce) != NonceSize {
		return &InputError{
			Field:   "nonce",
			Message: fmt.Sprintf("nonce must be %d bytes, got %d", NonceSize, len(nonce)),
		}
	}
	return nil
}

// ValidateSampleRate checks that a sample rate lies in (0, max].
func ValidateSampleRate(rate, max uint32) error {
	if rate == 0 || rate > max {
		return &FormatError{
			Offset:  SaltSize + NonceSize + 4,
			Message: fmt.Sprintf("sample rate %d outside (0, %d]", rate, max),
			Err:     ErrSampleRate,
		}
	}
	return nil
}
