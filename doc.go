// Package soundseal converts single-channel audio into an encrypted,
// pixel-encoded artifact and back.
//
// # Overview
//
// A Sealer encrypts a mono float32 sample buffer under a passphrase and
// packs the result into an RGBA pixel grid suitable for export as a
// lossless image. Unsealing is the exact inverse: the pixel grid is
// flattened back into a payload, the payload header is parsed, the key
// is re-derived from the passphrase and the embedded salt, and the
// ciphertext is decrypted and deserialized into samples.
//
// Encryption uses AES-256-GCM, so any tampering with the artifact --
// and any wrong passphrase -- is detected at decryption time instead of
// producing garbage audio.
//
// # Basic Usage
//
//	sealer, err := soundseal.NewSealer(nil) // default config
//	if err != nil {
//	    panic(err)
//	}
//
//	clip := &soundseal.Clip{Samples: samples, SampleRate: 44100}
//	img, err := sealer.Seal(clip, "correct horse battery staple")
//	if err != nil {
//	    panic(err)
//	}
//
//	// ... export img as PNG, load it back later ...
//
//	clip, err = sealer.Unseal(img, "correct horse battery staple")
//
// # Key Derivation
//
// Keys are derived with PBKDF2-SHA256 (100,000 iterations by default)
// from the passphrase and a fresh 16-byte random salt. The salt and the
// 12-byte GCM nonce are public and stored in the payload header; the
// derived key exists only for the duration of a single operation.
//
// Passphrases are scored before encryption (see ScorePassphrase) and
// encryption is refused below the Weak threshold.
//
// # Payload Format
//
// The flat payload embedded in the pixel grid:
//   - Salt (16 bytes): random salt for key derivation
//   - Nonce (12 bytes): random GCM nonce
//   - Ciphertext length (4 bytes): unsigned, big-endian
//   - Sample rate (4 bytes): unsigned, big-endian
//   - Ciphertext (variable): encrypted samples + 16-byte auth tag
//
// Payload bytes occupy the R, G and B channels of each pixel in
// row-major order; alpha is fixed at 255 and carries no data. The grid
// is chosen roughly square, and any capacity beyond the payload is
// zero-filled.
//
// # Not Protected Against
//
//   - Visual detection: placement is fixed and deterministic, this is
//     not a steganography system
//   - Memory dumps while samples are decrypted in memory
//   - Loss of the passphrase: there is no key escrow or recovery
package soundseal
