package state

import (
	"encoding/binary"
	"math"
)

// #region clamp
// Clamp bounds v to [0,1].
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion clamp

// #region apply
// Apply returns the vector produced by adding delta and clamping every
// dimension to [0,1]. All nine values are computed before any is visible;
// the caller commits the returned vector as a unit.
func Apply(old Vector, delta Delta) Vector {
	var next Vector
	for i := range old {
		next[i] = Clamp(old[i] + delta[i])
	}
	return next
}

// #endregion apply

// #region copy
// CopyState returns a deep copy of s. Flags is the only reference field.
func CopyState(s AffectiveState) AffectiveState {
	out := s
	if s.Flags != nil {
		out.Flags = make([]string, len(s.Flags))
		copy(out.Flags, s.Flags)
	}
	return out
}

// #endregion copy

// #region codec
// EncodeVector serializes a vector as little-endian float64s for BLOB storage.
func EncodeVector(v Vector) []byte {
	buf := make([]byte, int(NumDimensions)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

// DecodeVector deserializes a vector blob. Short blobs decode as zeros.
func DecodeVector(b []byte) Vector {
	var v Vector
	for i := range v {
		if (i+1)*8 > len(b) {
			break
		}
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}

// #endregion codec
