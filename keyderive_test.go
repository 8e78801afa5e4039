package soundseal

import (
	"bytes"
	"errors"
	"testing"
)

func TestDeriveKeyDeterministic(t *testing.T) {
	salt, _ := testSaltNonce()
	provider := NewPassphraseKeyProvider([]byte("correct horse battery staple"), PBKDF2Params{Iterations: 1000})

	a, err := provider.DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	b, err := provider.DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}

	if len(a) != KeySize {
		t.Fatalf("key length = %d, want %d", len(a), KeySize)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical passphrase and salt produced different keys")
	}
}

func TestDeriveKeySaltSensitivity(t *testing.T) {
	salt1, _ := testSaltNonce()
	salt2 := bytes.Clone(salt1)
	salt2[0] ^= 0x01

	provider := NewPassphraseKeyProvider([]byte("correct horse battery staple"), PBKDF2Params{Iterations: 1000})

	a, err := provider.DeriveKey(salt1)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	b, err := provider.DeriveKey(salt2)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("different salts produced the same key")
	}
}

func TestDeriveKeyPassphraseSensitivity(t *testing.T) {
	salt, _ := testSaltNonce()

	a, err := NewPassphraseKeyProvider([]byte("passphrase one"), PBKDF2Params{Iterations: 1000}).DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	b, err := NewPassphraseKeyProvider([]byte("passphrase two"), PBKDF2Params{Iterations: 1000}).DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("different passphrases produced the same key")
	}
}

func TestDeriveKeyIterationSensitivity(t *testing.T) {
	salt, _ := testSaltNonce()

	a, err := NewPassphraseKeyProvider([]byte("stretch me"), PBKDF2Params{Iterations: 1000}).DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	b, err := NewPassphraseKeyProvider([]byte("stretch me"), PBKDF2Params{Iterations: 2000}).DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Error("different iteration counts produced the same key")
	}
}

func TestDeriveKeyEmptyPassphrase(t *testing.T) {
	salt, _ := testSaltNonce()

	_, err := NewPassphraseKeyProvider(nil, PBKDF2Params{}).DeriveKey(salt)
	if !errors.Is(err, ErrEmptyPassphrase) {
		t.Fatalf("expected ErrEmptyPassphrase, got %v", err)
	}
	if !IsInputError(err) {
		t.Fatalf("expected InputError, got %T", err)
	}
}

func TestDeriveKeyBadSalt(t *testing.T) {
	provider := NewPassphraseKeyProvider([]byte("pass"), PBKDF2Params{Iterations: 1000})

	for _, size := range []int{0, 15, 17, 32} {
		if _, err := provider.DeriveKey(make([]byte, size)); !IsInputError(err) {
			t.Errorf("salt size %d: expected InputError, got %v", size, err)
		}
	}
}

func TestGenerateSalt(t *testing.T) {
	t.Run("FromFixedSource", func(t *testing.T) {
		seq := bytes.Repeat([]byte{0xAB}, SaltSize)
		provider := NewPassphraseKeyProvider([]byte("pass"), PBKDF2Params{Rand: bytes.NewReader(seq)})

		salt, err := provider.GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt failed: %v", err)
		}
		if !bytes.Equal(salt, seq) {
			t.Errorf("salt = % x, want % x", salt, seq)
		}
	})

	t.Run("FromSystemSource", func(t *testing.T) {
		provider := NewPassphraseKeyProvider([]byte("pass"), PBKDF2Params{})

		a, err := provider.GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt failed: %v", err)
		}
		b, err := provider.GenerateSalt()
		if err != nil {
			t.Fatalf("GenerateSalt failed: %v", err)
		}
		if len(a) != SaltSize {
			t.Fatalf("salt length = %d, want %d", len(a), SaltSize)
		}
		if bytes.Equal(a, b) {
			t.Error("two fresh salts are identical")
		}
	})

	t.Run("ExhaustedSource", func(t *testing.T) {
		provider := NewPassphraseKeyProvider([]byte("pass"), PBKDF2Params{Rand: bytes.NewReader(nil)})
		if _, err := provider.GenerateSalt(); err == nil {
			t.Error("expected error from empty randomness source")
		}
	})
}

// Pins the default derivation parameters (100,000 iterations, 32-byte
// key); a silent change to either breaks decryption of existing
// artifacts.
func TestDeriveKeyDefaultParameters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping 100k-iteration derivation in short mode")
	}

	salt, _ := testSaltNonce()
	provider := NewPassphraseKeyProvider([]byte("Tr0ub4dor&3"), PBKDF2Params{})

	key, err := provider.DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if len(key) != KeySize {
		t.Fatalf("key length = %d, want %d", len(key), KeySize)
	}

	// Default iteration count must be applied when unset
	explicit, err := NewPassphraseKeyProvider([]byte("Tr0ub4dor&3"), PBKDF2Params{Iterations: DefaultIterations}).DeriveKey(salt)
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if !bytes.Equal(key, explicit) {
		t.Error("default parameters differ from explicit DefaultIterations")
	}
}
