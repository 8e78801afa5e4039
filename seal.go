package soundseal

import (
	"fmt"
	"image"
)

// Sealer binds the full pipeline: strength gate, key derivation,
// authenticated encryption, payload framing and pixel packing, plus
// the exact inverse. A Sealer is stateless between operations; every
// Seal call draws a fresh salt and nonce and derives a throwaway key.
type Sealer struct {
	config *Config
}

// NewSealer creates a Sealer. A nil config means DefaultConfig.
func NewSealer(config *Config) (*Sealer, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Sealer{config: config}, nil
}

// Seal encrypts a clip under the passphrase and packs the result into
// a pixel grid. The passphrase must score at least MinEncryptScore
// (see ScorePassphrase) or Seal refuses with an InputError.
func (s *Sealer) Seal(clip *Clip, passphrase string) (*image.NRGBA, error) {
	if clip == nil || len(clip.Samples) == 0 {
		return nil, &InputError{Field: "clip", Message: "no audio samples"}
	}
	if clip.SampleRate <= 0 || uint64(clip.SampleRate) > uint64(s.config.maxSampleRate()) {
		return nil, &InputError{
			Field:   "sample rate",
			Message: fmt.Sprintf("sample rate %d outside (0, %d]", clip.SampleRate, s.config.maxSampleRate()),
		}
	}
	if passphrase == "" {
		return nil, &InputError{Field: "passphrase", Message: ErrEmptyPassphrase.Error(), Err: ErrEmptyPassphrase}
	}
	if strength := ScorePassphrase(passphrase); !strength.AllowsEncryption() {
		return nil, &InputError{
			Field:   "passphrase",
			Message: fmt.Sprintf("%s (scored %q)", ErrWeakPassphrase.Error(), strength.Level),
			Err:     ErrWeakPassphrase,
		}
	}

	provider := NewPassphraseKeyProvider([]byte(passphrase), PBKDF2Params{
		Iterations: s.config.iterations(),
		Rand:       s.config.rand(),
	})

	salt, err := provider.GenerateSalt()
	if err != nil {
		return nil, err
	}

	key, err := provider.DeriveKey(salt)
	if err != nil {
		return nil, err
	}

	engine, err := NewAESGCMEngine(key)
	if err != nil {
		return nil, err
	}

	nonce, err := GenerateNonce(s.config.rand())
	if err != nil {
		return nil, err
	}

	ciphertext, err := engine.Encrypt(nonce, encodeSamples(clip.Samples))
	if err != nil {
		return nil, err
	}

	payload, err := AssemblePayload(salt, nonce, ciphertext, uint32(clip.SampleRate))
	if err != nil {
		return nil, err
	}

	return PackPixels(payload), nil
}

// Unseal recovers a clip from a pixel grid. A wrong passphrase and a
// tampered artifact are indistinguishable by construction: both
// surface as an AuthenticationError. Malformed artifacts surface as a
// FormatError before any key derivation runs.
func (s *Sealer) Unseal(img image.Image, passphrase string) (*Clip, error) {
	if img == nil {
		return nil, &InputError{Field: "image", Message: "image cannot be nil"}
	}
	if passphrase == "" {
		return nil, &InputError{Field: "passphrase", Message: ErrEmptyPassphrase.Error(), Err: ErrEmptyPassphrase}
	}

	parsed, err := ParsePayload(UnpackPixels(img), s.config.maxSampleRate())
	if err != nil {
		return nil, err
	}

	provider := NewPassphraseKeyProvider([]byte(passphrase), PBKDF2Params{
		Iterations: s.config.iterations(),
	})

	key, err := provider.DeriveKey(parsed.Header.Salt[:])
	if err != nil {
		return nil, err
	}

	engine, err := NewAESGCMEngine(key)
	if err != nil {
		return nil, err
	}

	plaintext, err := engine.Decrypt(parsed.Header.Nonce[:], parsed.Ciphertext)
	if err != nil {
		return nil, err
	}

	samples, err := decodeSamples(plaintext)
	if err != nil {
		return nil, err
	}

	return &Clip{Samples: samples, SampleRate: int(parsed.Header.SampleRate)}, nil
}
