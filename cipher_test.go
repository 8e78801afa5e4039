package soundseal

import (
	"bytes"
	"errors"
	"testing"
)

func testKey() []byte {
	key := make([]byte, KeySize)
	for i := range key {
		key[i] = byte(i * 7)
	}
	return key
}

func TestNewAESGCMEngineKeySize(t *testing.T) {
	for _, size := range []int{0, 16, 24, 31, 33, 64} {
		if _, err := NewAESGCMEngine(make([]byte, size)); !errors.Is(err, ErrInvalidKey) {
			t.Errorf("key size %d: expected ErrInvalidKey, got %v", size, err)
		}
	}

	if _, err := NewAESGCMEngine(testKey()); err != nil {
		t.Fatalf("32-byte key rejected: %v", err)
	}
}

func TestAESGCMRoundTrip(t *testing.T) {
	engine, err := NewAESGCMEngine(testKey())
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}

	nonce := make([]byte, NonceSize)
	plaintext := []byte("a short mono clip, serialized")

	ciphertext, err := engine.Encrypt(nonce, plaintext)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	if len(ciphertext) != len(plaintext)+engine.Overhead() {
		t.Errorf("ciphertext length = %d, want %d", len(ciphertext), len(plaintext)+engine.Overhead())
	}

	decrypted, err := engine.Decrypt(nonce, ciphertext)
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if !bytes.Equal(decrypted, plaintext) {
		t.Error("decrypted plaintext does not match original")
	}
}

func TestAESGCMSizes(t *testing.T) {
	engine, err := NewAESGCMEngine(testKey())
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}
	if engine.NonceSize() != NonceSize {
		t.Errorf("NonceSize = %d, want %d", engine.NonceSize(), NonceSize)
	}
	if engine.Overhead() != 16 {
		t.Errorf("Overhead = %d, want 16", engine.Overhead())
	}
}

func TestAESGCMDeterministic(t *testing.T) {
	engine, err := NewAESGCMEngine(testKey())
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}

	nonce := make([]byte, NonceSize)
	plaintext := []byte("same inputs, same ciphertext")

	a, _ := engine.Encrypt(nonce, plaintext)
	b, _ := engine.Encrypt(nonce, plaintext)
	if !bytes.Equal(a, b) {
		t.Error("identical (key, nonce, plaintext) produced different ciphertexts")
	}
}

// Flipping any single byte of the ciphertext, including the tag, must
// be rejected.
func TestAESGCMTamperDetection(t *testing.T) {
	engine, err := NewAESGCMEngine(testKey())
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}

	nonce := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	ciphertext, err := engine.Encrypt(nonce, []byte("tamper with any byte of me"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	for i := range ciphertext {
		tampered := bytes.Clone(ciphertext)
		tampered[i] ^= 0x01

		_, err := engine.Decrypt(nonce, tampered)
		if err == nil {
			t.Fatalf("byte %d: tampered ciphertext accepted", i)
		}
		if !IsAuthenticationError(err) {
			t.Fatalf("byte %d: expected AuthenticationError, got %T", i, err)
		}
		if !errors.Is(err, ErrAuthFailed) {
			t.Fatalf("byte %d: expected ErrAuthFailed, got %v", i, err)
		}
	}
}

func TestAESGCMWrongKeyOrNonce(t *testing.T) {
	engine, err := NewAESGCMEngine(testKey())
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}

	nonce := make([]byte, NonceSize)
	ciphertext, err := engine.Encrypt(nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	otherKey := testKey()
	otherKey[0] ^= 0xFF
	other, err := NewAESGCMEngine(otherKey)
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}
	if _, err := other.Decrypt(nonce, ciphertext); !IsAuthenticationError(err) {
		t.Errorf("wrong key: expected AuthenticationError, got %v", err)
	}

	wrongNonce := bytes.Clone(nonce)
	wrongNonce[0] ^= 0xFF
	if _, err := engine.Decrypt(wrongNonce, ciphertext); !IsAuthenticationError(err) {
		t.Errorf("wrong nonce: expected AuthenticationError, got %v", err)
	}
}

func TestAESGCMNonceValidation(t *testing.T) {
	engine, err := NewAESGCMEngine(testKey())
	if err != nil {
		t.Fatalf("NewAESGCMEngine failed: %v", err)
	}

	for _, size := range []int{0, 11, 13} {
		if _, err := engine.Encrypt(make([]byte, size), []byte("x")); !IsInputError(err) {
			t.Errorf("Encrypt with %d-byte nonce: expected InputError, got %v", size, err)
		}
		if _, err := engine.Decrypt(make([]byte, size), []byte("x")); !IsInputError(err) {
			t.Errorf("Decrypt with %d-byte nonce: expected InputError, got %v", size, err)
		}
	}
}

func TestGenerateNonce(t *testing.T) {
	t.Run("FromFixedSource", func(t *testing.T) {
		seq := []byte{9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 11, 12}
		nonce, err := GenerateNonce(bytes.NewReader(seq))
		if err != nil {
			t.Fatalf("GenerateNonce failed: %v", err)
		}
		if !bytes.Equal(nonce, seq) {
			t.Errorf("nonce = % x, want % x", nonce, seq)
		}
	})

	t.Run("FromSystemSource", func(t *testing.T) {
		a, err := GenerateNonce(nil)
		if err != nil {
			t.Fatalf("GenerateNonce failed: %v", err)
		}
		b, err := GenerateNonce(nil)
		if err != nil {
			t.Fatalf("GenerateNonce failed: %v", err)
		}
		if len(a) != NonceSize {
			t.Fatalf("nonce length = %d, want %d", len(a), NonceSize)
		}
		if bytes.Equal(a, b) {
			t.Error("two fresh nonces are identical")
		}
	})

	t.Run("ExhaustedSource", func(t *testing.T) {
		if _, err := GenerateNonce(bytes.NewReader([]byte{1, 2, 3})); err == nil {
			t.Error("expected error from short randomness source")
		}
	})
}
