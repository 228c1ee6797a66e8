package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimize(t *testing.T) {
	tests := []struct {
		name      string
		itemCount uint64
		errorRate float64
		want      Params
	}{
		{"95 default rate", 95, 0, Params{Bits: 1048, Hashes: 8}},
		{"95 explicit rate", 95, 0.005, Params{Bits: 1048, Hashes: 8}},
		{"148", 148, 0, Params{Bits: 1632, Hashes: 8}},
		{"10", 10, 0, Params{Bits: 110, Hashes: 8}},
		{"20000", 20000, 0.005, Params{Bits: 220555, Hashes: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Optimize(tt.itemCount, tt.errorRate))
		})
	}
}

func TestOptimizeMatchesClosedForm(t *testing.T) {
	for _, n := range []uint64{1, 7, 100, 12345, 1_000_000} {
		for _, p := range []float64{0.5, 0.1, 0.01, 0.001, 1e-6} {
			got := Optimize(n, p)
			bits := math.Round(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
			require.Equal(t, uint64(bits), got.Bits, "n=%d p=%g", n, p)
			require.Equal(t, int(math.Round(bits/float64(n)*math.Ln2)), got.Hashes, "n=%d p=%g", n, p)
		}
	}
}

func TestOptimizeRelaxedRateNeedsFewerBits(t *testing.T) {
	strict := Optimize(20000, 0)
	relaxed := Optimize(20000, 0.2)
	require.Less(t, relaxed.Bits, strict.Bits)
}

func TestCheckOptimize(t *testing.T) {
	require.NoError(t, CheckOptimize(1, 0))
	require.NoError(t, CheckOptimize(1, 0.5))
	require.ErrorIs(t, CheckOptimize(0, 0.1), ErrBadItemCount)
	require.ErrorIs(t, CheckOptimize(10, 1), ErrBadErrorRate)
	require.ErrorIs(t, CheckOptimize(10, -0.1), ErrBadErrorRate)
	require.ErrorIs(t, CheckOptimize(10, math.NaN()), ErrBadErrorRate)
}

func TestCreateOptimal(t *testing.T) {
	f, err := CreateOptimal(95, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1048), f.Bits())
	require.Equal(t, 8, f.K())
	require.Len(t, f.Bitset(), 131)

	f, err = CreateOptimal(148, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(1632), f.Bits())
	require.Equal(t, 8, f.K())

	f, err = CreateOptimal(20000, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(220555), f.Bits())
	previous := f.Bits()

	f, err = CreateOptimal(20000, 0.2)
	require.NoError(t, err)
	require.Less(t, f.Bits(), previous)

	_, err = CreateOptimal(0, 0.1)
	require.ErrorIs(t, err, ErrBadItemCount)
}

func TestCreateOptimalOptions(t *testing.T) {
	f, err := CreateOptimal(50, 0.01, WithHash(XXH3), WithSeeds([]uint32{3, 1, 4}))
	require.NoError(t, err)
	require.Equal(t, []uint32{3, 1, 4}, f.Seeds())

	f.AddString("cat")
	require.True(t, f.HasString("cat"))
}

func TestSizingV1(t *testing.T) {
	require.Equal(t, uint64(0), BitsetBytesV1(0))
	require.Equal(t, uint64(1), BitsetBytesV1(1))
	require.Equal(t, uint64(1), BitsetBytesV1(8))
	require.Equal(t, uint64(2), BitsetBytesV1(9))
	require.Equal(t, uint64(16), BitsetBytesV1(128))

	// header + 3 seeds + 16 bitset bytes
	require.Equal(t, uint64(8+12+16), EncodedBytesV1(128, 3))
	require.Equal(t, uint64(8+1), EncodedBytesV1(1, 0))
}
