package soundseal

import (
	"encoding/binary"
	"fmt"
	"math"
)

// The plaintext handed to the cipher is the sample buffer serialized
// as little-endian IEEE-754 float32 values, 4 bytes per sample.

// encodeSamples serializes samples into the plaintext byte buffer.
func encodeSamples(samples []float32) []byte {
	buf := make([]byte, 0, len(samples)*SampleBytes)
	for _, s := range samples {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(s))
	}
	return buf
}

// decodeSamples deserializes a plaintext byte buffer back into
// samples. The buffer length must be a multiple of the sample size.
func decodeSamples(data []byte) ([]float32, error) {
	if len(data)%SampleBytes != 0 {
		return nil, &FormatError{
			Offset:  -1,
			Message: fmt.Sprintf("plaintext length %d is not a multiple of %d", len(data), SampleBytes),
		}
	}

	samples := make([]float32, len(data)/SampleBytes)
	for i := range samples {
		samples[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*SampleBytes:]))
	}
	return samples, nil
}
