// Package wav provides minimal WAV encoding and decoding for
// single-channel audio buffers.
//
// Encode writes a canonical 44-byte-header mono IEEE-float32 WAV.
// Decode reads mono PCM 16-bit (converted to float32) and mono IEEE
// float 32-bit streams, skipping unrelated chunks. Multi-channel audio
// and other sample encodings are rejected.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	formatPCM       = 1
	formatIEEEFloat = 3
)

var (
	// ErrNotWAV means the stream does not start with a RIFF/WAVE header.
	ErrNotWAV = errors.New("wav: not a RIFF/WAVE stream")

	// ErrUnsupported means the stream is WAV but uses an encoding this
	// package does not read: multi-channel, compressed, or a sample
	// format other than PCM16 and float32.
	ErrUnsupported = errors.New("wav: unsupported encoding")

	// ErrMalformed means a chunk is truncated or inconsistent.
	ErrMalformed = errors.New("wav: malformed stream")
)

// Encode writes samples as a mono IEEE-float32 WAV file.
func Encode(w io.Writer, samples []float32, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrUnsupported, sampleRate)
	}

	dataLen := len(samples) * 4

	header := make([]byte, 0, 44)
	header = append(header, "RIFF"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(36+dataLen))
	header = append(header, "WAVE"...)
	header = append(header, "fmt "...)
	header = binary.LittleEndian.AppendUint32(header, 16)
	header = binary.LittleEndian.AppendUint16(header, formatIEEEFloat)
	header = binary.LittleEndian.AppendUint16(header, 1) // mono
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate))
	header = binary.LittleEndian.AppendUint32(header, uint32(sampleRate*4))
	header = binary.LittleEndian.AppendUint16(header, 4)  // block align
	header = binary.LittleEndian.AppendUint16(header, 32) // bits per sample
	header = append(header, "data"...)
	header = binary.LittleEndian.AppendUint32(header, uint32(dataLen))

	if _, err := w.Write(header); err != nil {
		return err
	}

	buf := make([]byte, 0, dataLen)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(s))
	}
	_, err := w.Write(buf)
	return err
}

// fmtChunk is the decoded "fmt " chunk of a WAV stream.
type fmtChunk struct {
	format        uint16
	channels      uint16
	sampleRate    uint32
	bitsPerSample uint16
}

// Decode reads a mono WAV stream and returns its samples and sample
// rate. PCM16 samples are scaled to [-1.0, 1.0); float32 samples are
// returned bit-exact.
func Decode(r io.Reader) ([]float32, int, error) {
	var riff [12]byte
	if _, err := io.ReadFull(r, riff[:]); err != nil {
		return nil, 0, ErrNotWAV
	}
	if string(riff[0:4]) != "RIFF" || string(riff[8:12]) != "WAVE" {
		return nil, 0, ErrNotWAV
	}

	var format *fmtChunk

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(r, chunkHeader[:]); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return nil, 0, fmt.Errorf("%w: no data chunk", ErrMalformed)
			}
			return nil, 0, err
		}

		id := string(chunkHeader[0:4])
		size := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch id {
		case "fmt ":
			if size < 16 {
				return nil, 0, fmt.Errorf("%w: fmt chunk is %d bytes", ErrMalformed, size)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("%w: fmt chunk truncated", ErrMalformed)
			}
			format = &fmtChunk{
				format:        binary.LittleEndian.Uint16(body[0:2]),
				channels:      binary.LittleEndian.Uint16(body[2:4]),
				sampleRate:    binary.LittleEndian.Uint32(body[4:8]),
				bitsPerSample: binary.LittleEndian.Uint16(body[14:16]),
			}

		case "data":
			if format == nil {
				return nil, 0, fmt.Errorf("%w: data chunk before fmt chunk", ErrMalformed)
			}
			body := make([]byte, size)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, 0, fmt.Errorf("%w: data chunk truncated", ErrMalformed)
			}
			samples, err := decodeData(format, body)
			if err != nil {
				return nil, 0, err
			}
			return samples, int(format.sampleRate), nil

		default:
			// Chunks are word-aligned; skip the pad byte on odd sizes
			skip := int64(size)
			if size%2 == 1 {
				skip++
			}
			if _, err := io.CopyN(io.Discard, r, skip); err != nil {
				return nil, 0, fmt.Errorf("%w: %q chunk truncated", ErrMalformed, id)
			}
		}
	}
}

func decodeData(format *fmtChunk, body []byte) ([]float32, error) {
	if format.channels != 1 {
		return nil, fmt.Errorf("%w: %d channels, want mono", ErrUnsupported, format.channels)
	}

	switch {
	case format.format == formatPCM && format.bitsPerSample == 16:
		if len(body)%2 != 0 {
			return nil, fmt.Errorf("%w: odd PCM16 data length", ErrMalformed)
		}
		samples := make([]float32, len(body)/2)
		for i := range samples {
			v := int16(binary.LittleEndian.Uint16(body[i*2:]))
			samples[i] = float32(v) / 32768
		}
		return samples, nil

	case format.format == formatIEEEFloat && format.bitsPerSample == 32:
		if len(body)%4 != 0 {
			return nil, fmt.Errorf("%w: float32 data length not a multiple of 4", ErrMalformed)
		}
		samples := make([]float32, len(body)/4)
		for i := range samples {
			samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(body[i*4:]))
		}
		return samples, nil

	default:
		return nil, fmt.Errorf("%w: format %d with %d bits per sample", ErrUnsupported, format.format, format.bitsPerSample)
	}
}
