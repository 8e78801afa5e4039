package soundseal

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Header is the fixed 36-byte structure at the start of every payload:
// salt, nonce, ciphertext length and sample rate. The two integer
// fields are unsigned big-endian, independent of platform byte order.
type Header struct {
	Salt          [SaltSize]byte  // Salt for key derivation
	Nonce         [NonceSize]byte // Nonce/IV for encryption
	CiphertextLen uint32          // Exact byte length of the ciphertext that follows
	SampleRate    uint32          // Sample rate of the original audio in Hz
}

// NewHeader creates a header for the given salt, nonce and ciphertext.
func NewHeader(salt, nonce []byte, ciphertext []byte, sampleRate uint32) (*Header, error) {
	if err := ValidateSalt(salt); err != nil {
		return nil, err
	}
	if err := ValidateNonce(nonce); err != nil {
		return nil, err
	}

	h := &Header{
		CiphertextLen: uint32(len(ciphertext)),
		SampleRate:    sampleRate,
	}
	copy(h.Salt[:], salt)
	copy(h.Nonce[:], nonce)
	return h, nil
}

// appendBinary appends the 36-byte wire encoding of the header to buf.
func (h *Header) appendBinary(buf []byte) []byte {
	buf = append(buf, h.Salt[:]...)
	buf = append(buf, h.Nonce[:]...)
	buf = binary.BigEndian.AppendUint32(buf, h.CiphertextLen)
	buf = binary.BigEndian.AppendUint32(buf, h.SampleRate)
	return buf
}

// WriteTo writes the header to the given writer
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.appendBinary(make([]byte, 0, HeaderSize)))
	return int64(n), err
}

// ReadFrom reads the header from the given reader
func (h *Header) ReadFrom(r io.Reader) (int64, error) {
	var buf [HeaderSize]byte
	n, err := io.ReadFull(r, buf[:])
	if err != nil {
		return int64(n), &FormatError{
			Offset:  n,
			Message: "header truncated",
			Err:     ErrHeaderTruncated,
		}
	}

	copy(h.Salt[:], buf[0:SaltSize])
	copy(h.Nonce[:], buf[SaltSize:SaltSize+NonceSize])
	h.CiphertextLen = binary.BigEndian.Uint32(buf[SaltSize+NonceSize:])
	h.SampleRate = binary.BigEndian.Uint32(buf[SaltSize+NonceSize+4:])
	return int64(n), nil
}

// Validate checks the header fields against the given sample rate
// bound. A bound of 0 means DefaultMaxSampleRate.
func (h *Header) Validate(maxSampleRate uint32) error {
	if maxSampleRate == 0 {
		maxSampleRate = DefaultMaxSampleRate
	}
	return ValidateSampleRate(h.SampleRate, maxSampleRate)
}

// ParsedPayload is the result of splitting a payload into its header
// and ciphertext.
type ParsedPayload struct {
	Header     Header
	Ciphertext []byte // Subslice of the parsed payload, not a copy
}

// AssemblePayload writes the 36-byte header and appends the
// ciphertext, producing the flat payload buffer that gets packed into
// pixels.
func AssemblePayload(salt, nonce, ciphertext []byte, sampleRate uint32) ([]byte, error) {
	h, err := NewHeader(salt, nonce, ciphertext, sampleRate)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, 0, HeaderSize+len(ciphertext))
	payload = h.appendBinary(payload)
	payload = append(payload, ciphertext...)
	return payload, nil
}

// ParsePayload splits a payload into header and ciphertext, validating
// the framing. maxSampleRate of 0 means DefaultMaxSampleRate. The
// returned ciphertext aliases the input buffer; parsing never allocates
// beyond the supplied payload.
//
// Trailing bytes past the declared ciphertext length are ignored: the
// pixel grid pads the payload with zeros up to its capacity.
func ParsePayload(payload []byte, maxSampleRate uint32) (*ParsedPayload, error) {
	if len(payload) < HeaderSize {
		return nil, &FormatError{
			Offset:  len(payload),
			Message: fmt.Sprintf("payload is %d bytes, header needs %d", len(payload), HeaderSize),
			Err:     ErrHeaderTruncated,
		}
	}

	var parsed ParsedPayload
	if _, err := parsed.Header.ReadFrom(bytes.NewReader(payload[:HeaderSize])); err != nil {
		return nil, err
	}
	if err := parsed.Header.Validate(maxSampleRate); err != nil {
		return nil, err
	}

	end := HeaderSize + uint64(parsed.Header.CiphertextLen)
	if end > uint64(len(payload)) {
		return nil, &FormatError{
			Offset:  SaltSize + NonceSize,
			Message: fmt.Sprintf("declared ciphertext length %d exceeds %d available bytes", parsed.Header.CiphertextLen, len(payload)-HeaderSize),
			Err:     ErrCiphertextTruncated,
		}
	}

	parsed.Ciphertext = payload[HeaderSize:end]
	return &parsed, nil
}
