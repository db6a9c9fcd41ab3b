// Package hash computes value fingerprints for datasets.
package hash

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Pairs computes the xxHash64 of a sequence of (x, y) pairs.
//
// Each pair contributes the little-endian IEEE-754 bits of x followed by those
// of y, so two sequences hash equal only when they are equal bit for bit and in
// the same order. An empty sequence hashes like empty input.
func Pairs(seq iter.Seq2[float64, float64]) uint64 {
	d := xxhash.New()

	var buf [16]byte
	for x, y := range seq {
		binary.LittleEndian.PutUint64(buf[:8], math.Float64bits(x))
		binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(y))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}
