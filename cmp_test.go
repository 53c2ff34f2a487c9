package bigbigint

import "testing"

func TestCmpInt64(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want int
	}{
		{"less", 3, 5, -1},
		{"greater", 5, 3, 1},
		{"equal", 5, 5, 0},
		{"negative less than positive", -1, 1, -1},
		{"negative less than zero", -1, 0, -1},
		{"zero less than positive", 0, 1, -1},
		{"order inverts for negatives", -5, -3, -1},
		{"equal negatives", -7, -7, 0},
		{"zero equals zero", 0, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromNumber(tc.a).Cmp(FromNumber(tc.b)); got != tc.want {
				t.Fatalf("Cmp(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestCmpIgnoresCapacityPadding(t *testing.T) {
	small := FromNumber(int64(42))
	large := New(16)
	Assign(large, int64(42))
	if small.Cmp(large) != 0 || large.Cmp(small) != 0 {
		t.Fatalf("equal values with different capacities compare unequal")
	}
}

func TestCmpMultiWordMagnitude(t *testing.T) {
	lo := FromNumber(uint64(0xFFFFFFFFFFFFFFFF))
	hi := lo.Add(FromNumber(uint64(1)))
	if lo.Cmp(hi) != -1 || hi.Cmp(lo) != 1 {
		t.Fatalf("multi-word magnitude comparison wrong")
	}
	if hi.Neg().Cmp(lo.Neg()) != -1 {
		t.Fatalf("negative multi-word comparison not inverted")
	}
}

func TestPredicates(t *testing.T) {
	a, b := FromNumber(int64(3)), FromNumber(int64(5))

	if !a.Lt(b) || !a.Lte(b) || a.Gt(b) || a.Gte(b) || a.Eq(b) || !a.Neq(b) {
		t.Fatalf("predicates wrong for 3 vs 5")
	}
	if !b.Gt(a) || !b.Gte(a) || b.Lt(a) || b.Lte(a) {
		t.Fatalf("predicates wrong for 5 vs 3")
	}
	c := FromNumber(int64(3))
	if !a.Eq(c) || !a.Lte(c) || !a.Gte(c) || a.Neq(c) || a.Lt(c) || a.Gt(c) {
		t.Fatalf("predicates wrong for 3 vs 3")
	}
}
