package bigbigint

import (
	"encoding/binary"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// toBig converts an Int to a math/big value for oracle comparisons.
func toBig(x *Int) *big.Int {
	x.ensure()
	buf := make([]byte, len(x.words)*4)
	for i, w := range x.words {
		binary.BigEndian.PutUint32(buf[i*4:], w)
	}
	n := new(big.Int).SetBytes(buf)
	if x.neg {
		n.Neg(n)
	}
	return n
}

// fromBig builds an Int holding the same value as n, sized to the smallest
// capacity that fits the magnitude.
func fromBig(n *big.Int) *Int {
	b := n.Bytes()
	z := New((len(b) + 3) / 4)
	buf := make([]byte, len(z.words)*4)
	copy(buf[len(buf)-len(b):], b)
	for i := range z.words {
		z.words[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	z.neg = n.Sign() < 0
	return z
}

func requireEqualBig(t *testing.T, want *big.Int, got *Int) {
	t.Helper()
	require.Zero(t, want.Cmp(toBig(got)), "want %s, got %s", want, toBig(got))
}

func TestNewClampsCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"negative", -3, MinWords},
		{"zero", 0, MinWords},
		{"below floor", 1, MinWords},
		{"at floor", 2, 2},
		{"above floor", 7, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x := New(tc.capacity)
			require.Equal(t, tc.want, x.Cap())
			require.True(t, x.IsZero())
			require.Equal(t, 0, x.Sign())
		})
	}
}

func TestZeroValueUsable(t *testing.T) {
	var x Int
	require.True(t, x.IsZero())
	require.Equal(t, MinWords, x.Cap())
	require.Equal(t, int64(0), x.Int64())
}

func TestGrowPreservesValue(t *testing.T) {
	x := fromBig(new(big.Int).SetUint64(0xDEADBEEF_CAFEF00D))
	want := toBig(x)

	x.Grow(8)
	require.Equal(t, 8, x.Cap())
	requireEqualBig(t, want, x)

	// Requests at or below the current capacity do not shrink.
	x.Grow(3)
	require.Equal(t, 8, x.Cap())
	requireEqualBig(t, want, x)
}

func TestGrowPreservesSign(t *testing.T) {
	x := FromNumber(int64(-42))
	x.Grow(6)
	require.Equal(t, int64(-42), x.Int64())
	require.Equal(t, -1, x.Sign())
}

func TestCloneIndependence(t *testing.T) {
	x := FromNumber(int64(1234))
	c := x.Clone()
	require.Equal(t, x.Cap(), c.Cap())
	require.True(t, x.Eq(c))

	x.AddAssign(FromNumber(int64(1)))
	require.Equal(t, int64(1234), c.Int64())
	require.Equal(t, int64(1235), x.Int64())
}

func TestSetCapacityRules(t *testing.T) {
	t.Run("equal capacity copies straight across", func(t *testing.T) {
		z, x := New(4), New(4)
		Assign(x, uint64(0x1122334455667788))
		z.Set(x)
		require.Equal(t, 4, z.Cap())
		require.True(t, z.Eq(x))
	})

	t.Run("smaller destination grows", func(t *testing.T) {
		z, x := New(2), New(6)
		Assign(x, uint64(99))
		z.Set(x)
		require.Equal(t, 6, z.Cap())
		require.True(t, z.Eq(x))
	})

	t.Run("larger destination keeps capacity and zero-fills", func(t *testing.T) {
		z := New(6)
		Assign(z, uint64(0xFFFFFFFFFFFFFFFF))
		x := FromNumber(uint64(7))
		z.Set(x)
		require.Equal(t, 6, z.Cap())
		require.Equal(t, uint64(7), z.Uint64())
		requireEqualBig(t, big.NewInt(7), z)
	})

	t.Run("self set is a no-op", func(t *testing.T) {
		z := FromNumber(int64(-5))
		z.Set(z)
		require.Equal(t, int64(-5), z.Int64())
	})
}

func TestSetZeroKeepsCapacity(t *testing.T) {
	z := New(5)
	Assign(z, int64(-77))
	z.SetZero()
	require.True(t, z.IsZero())
	require.Equal(t, 0, z.Sign())
	require.Equal(t, 5, z.Cap())
}

func TestSignNegAbs(t *testing.T) {
	pos := FromNumber(int64(5))
	neg := FromNumber(int64(-5))
	zero := New(MinWords)

	require.Equal(t, 1, pos.Sign())
	require.Equal(t, -1, neg.Sign())
	require.Equal(t, 0, zero.Sign())

	require.Equal(t, int64(-5), pos.Neg().Int64())
	require.Equal(t, int64(5), neg.Neg().Int64())
	require.Equal(t, int64(5), neg.Abs().Int64())
	require.Equal(t, int64(5), pos.Abs().Int64())

	// No signed zero: negating zero stays non-negative.
	require.Equal(t, 0, zero.Neg().Sign())
}

func TestIncDec(t *testing.T) {
	z := New(MinWords)
	require.Equal(t, int64(1), z.Inc().Int64())
	require.Equal(t, int64(0), z.Dec().Int64())
	require.Equal(t, int64(-1), z.Dec().Int64())
	require.Equal(t, int64(0), z.Inc().Int64())
}
