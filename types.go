package soundseal

import (
	"crypto/rand"
	"io"
	"time"
)

const (
	// SaltSize is the length of the key derivation salt in bytes
	SaltSize = 16

	// NonceSize is the length of the AES-GCM nonce in bytes
	NonceSize = 12

	// KeySize is the length of the derived AES-256 key in bytes
	KeySize = 32

	// HeaderSize is the fixed size of the payload header:
	// 16 bytes (salt) + 12 bytes (nonce) + 4 bytes (ciphertext length) +
	// 4 bytes (sample rate) = 36 bytes
	HeaderSize = SaltSize + NonceSize + 8

	// SampleBytes is the serialized size of one audio sample
	SampleBytes = 4

	// BytesPerPixel is the number of payload bytes carried by one pixel
	// (the R, G and B channels; alpha carries no data)
	BytesPerPixel = 3

	// DefaultIterations is the default PBKDF2 iteration count
	DefaultIterations = 100000

	// DefaultMaxSampleRate is the default upper bound accepted for the
	// header's sample rate field. It is a sanity check against corrupted
	// data, not a protocol limit, and can be raised via Config.
	DefaultMaxSampleRate = 192000
)

// Clip is a single-channel audio buffer: 32-bit float samples in
// [-1.0, 1.0] paired with their sample rate in Hz.
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the playback duration of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(c.Samples)) / float64(c.SampleRate) * float64(time.Second))
}

// Config contains configuration for a Sealer.
type Config struct {
	// Rand is the source of cryptographic randomness for salts and
	// nonces. Defaults to crypto/rand.Reader when nil. Tests may inject
	// a fixed byte sequence for deterministic artifacts.
	Rand io.Reader

	// Iterations is the PBKDF2 iteration count. Defaults to
	// DefaultIterations when 0.
	Iterations int

	// MaxSampleRate bounds the sample rate accepted when parsing a
	// payload header. Defaults to DefaultMaxSampleRate when 0.
	MaxSampleRate uint32
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() *Config {
	return &Config{
		Rand:          rand.Reader,
		Iterations:    DefaultIterations,
		MaxSampleRate: DefaultMaxSampleRate,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return ErrNilConfig
	}
	if c.Iterations < 0 {
		return &InputError{Field: "iterations", Message: "iteration count cannot be negative"}
	}
	return nil
}

// rand returns the configured randomness source, defaulting to the
// system CSPRNG.
func (c *Config) rand() io.Reader {
	if c.Rand == nil {
		return rand.Reader
	}
	return c.Rand
}

// iterations returns the configured PBKDF2 iteration count.
func (c *Config) iterations() int {
	if c.Iterations == 0 {
		return DefaultIterations
	}
	return c.Iterations
}

// maxSampleRate returns the configured sample rate bound.
func (c *Config) maxSampleRate() uint32 {
	if c.MaxSampleRate == 0 {
		return DefaultMaxSampleRate
	}
	return c.MaxSampleRate
}
