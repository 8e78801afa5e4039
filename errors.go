package soundseal

import (
	"errors"
	"fmt"
)

// Error types represent the failure categories of the codec:
// InputError for caller-supplied input rejected before any cryptography
// runs, FormatError for malformed payloads, and AuthenticationError for
// AEAD rejection (wrong passphrase or tampered data).
//
// Callers presenting decryption failures to users should collapse
// FormatError and AuthenticationError into a single generic message;
// distinguishing them can leak payload validity to an attacker probing
// keys.

// InputError represents invalid caller-supplied input
type InputError struct {
	Field   string // The input that failed validation
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *InputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("input error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("input error: %s", e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// FormatError represents a malformed or truncated payload
type FormatError struct {
	Offset  int    // Byte offset of the failure, -1 if not applicable
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *FormatError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("format error at offset %d: %s", e.Offset, e.Message)
	}
	return fmt.Sprintf("format error: %s", e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// AuthenticationError represents an AEAD authentication failure
type AuthenticationError struct {
	Message string // Human-readable error message
	Err     error  // Underlying error
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Common sentinel errors
var (
	ErrEmptyPassphrase     = errors.New("passphrase cannot be empty")
	ErrWeakPassphrase      = errors.New("passphrase is too weak for encryption")
	ErrAuthFailed          = errors.New("authentication failed - data may be corrupted or tampered")
	ErrHeaderTruncated     = errors.New("payload too short to contain a header")
	ErrCiphertextTruncated = errors.New("declared ciphertext length exceeds payload")
	ErrSampleRate          = errors.New("sample rate out of range")
	ErrInvalidKey          = errors.New("invalid encryption key")
	ErrNilConfig           = errors.New("config cannot be nil")
)

// Error checking helpers

// IsInputError checks if an error is an input error
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsFormatError checks if an error is a payload format error
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsAuthenticationError checks if an error is an authentication failure
func IsAuthenticationError(err error) bool {
	var ae *AuthenticationError
	return errors.As(err, &ae)
}
