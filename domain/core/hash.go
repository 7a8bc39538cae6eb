package core

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// Short returns the first 12 hex characters, enough to tell runs apart in a report.
func (h Hash) Short() string {
	if len(h) <= 12 {
		return string(h)
	}
	return string(h[:12])
}

// SampleHash fingerprints the ordered inputs of a two-sample comparison.
type SampleHash Hash

func (h SampleHash) Short() string { return Hash(h).Short() }

// ComputeSampleHash hashes both samples bit-for-bit. Each sample is length-prefixed
// so that moving a value from one sample to the other changes the hash.
func ComputeSampleHash(sample1, sample2 []float64) SampleHash {
	buf := make([]byte, 0, 16+8*(len(sample1)+len(sample2)))
	for _, sample := range [][]float64{sample1, sample2} {
		buf = binary.BigEndian.AppendUint64(buf, uint64(len(sample)))
		for _, v := range sample {
			buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	return SampleHash(NewHash(buf))
}
