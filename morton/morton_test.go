package morton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/bvh/morton"
)

func TestEncode_KnownVectors(t *testing.T) {
	// 6 =  00110, 19 = 10011, 2 = 00010; bits interleave as z_y_x.
	got := morton.Encode(6, 19, 2, 3)
	assert.Equal(t, uint64(0b010_000_001_111_010), got)

	// 6000 = 1011101110000, 3000 = 0101110111000, 1234 = 0010011010010
	got = morton.Encode(6000, 3000, 1234, 4)
	assert.Equal(t, uint64(0b001_010_101_011_011_110_101_011_111_010_000_100_000), got)
}

func TestEncode_ZeroIsZero(t *testing.T) {
	assert.Equal(t, uint64(0), morton.Encode(0, 0, 0, 5))
}

func TestEncode_MasksOutOfRangeBits(t *testing.T) {
	// With logBits=3, bit width is 8; any bits beyond that are masked away,
	// so x and x+256 must encode identically.
	a := morton.Encode(5, 0, 0, 3)
	b := morton.Encode(5+256, 0, 0, 3)
	assert.Equal(t, a, b)
}

func TestEncode_2DLeavesZOut(t *testing.T) {
	withoutZ := morton.Encode(6, 19, 0, 3)
	got := morton.Encode(6, 19, 2, 3)
	assert.NotEqual(t, withoutZ, got, "nonzero z must perturb the code")
}
