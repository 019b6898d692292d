// SPDX-License-Identifier: EPL-2.0

// Package utils holds the small numeric helpers shared by the sample pipeline.
package utils

// Silence8 is the unsigned 8-bit PCM value of a zero sample.
const Silence8 = 128

// Float32ToUint8 converts a sample in [-1, 1] to unsigned 8-bit PCM, rounding
// to the nearest step. Out of range input is clamped.
func Float32ToUint8(x float32) uint8 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := int32(x*128 + Silence8 + 0.5)

	return uint8(min(v, 255))
}

// Uint8ToFloat32 converts unsigned 8-bit PCM to a sample in [-1, 1).
func Uint8ToFloat32(b uint8) float32 {
	return (float32(b) - Silence8) / 128
}

// Int16LEToFloat32 converts a little-endian signed 16-bit sample to [-1, 1).
func Int16LEToFloat32(lo, hi byte) float32 {
	return float32(int16(uint16(lo)|uint16(hi)<<8)) / 32768
}

// IntToFloat32 scales a signed integer sample of the given bit depth to
// [-1, 1). Depths outside 2..32 are treated as 16 bits.
func IntToFloat32(v, bits int) float32 {
	if bits < 2 || bits > 32 {
		bits = 16
	}

	return float32(float64(v) / float64(int64(1)<<(bits-1)))
}
