package bigbigint

import (
	"math/big"
	"testing"

	"golang.org/x/sync/errgroup"
)

// Instances are not synchronized, but distinct instances are fully
// independent: concurrent goroutines each working on their own values must
// never observe interference.
func TestDistinctInstancesAreIndependent(t *testing.T) {
	var g errgroup.Group
	for w := 0; w < 16; w++ {
		seed := int64(w + 1)
		g.Go(func() error {
			x := FromNumber(seed)
			oracle := big.NewInt(seed)
			for i := 0; i < 200; i++ {
				x.MulAssign(FromNumber(int64(3)))
				x.AddAssign(FromNumber(seed))
				oracle.Mul(oracle, big.NewInt(3))
				oracle.Add(oracle, big.NewInt(seed))
			}
			if oracle.Cmp(toBig(x)) != 0 {
				t.Errorf("worker %d diverged: got %s, want %s", seed, toBig(x), oracle)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

// Shared read-only operands are safe as long as no goroutine mutates them.
func TestConcurrentReadsOfSharedOperands(t *testing.T) {
	a := FromNumber(uint64(0xDEADBEEFCAFEF00D))
	b := FromNumber(int64(-987654321))
	wantSum := new(big.Int).Add(toBig(a), toBig(b))
	wantProd := new(big.Int).Mul(toBig(a), toBig(b))

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				if wantSum.Cmp(toBig(a.Add(b))) != 0 {
					t.Error("concurrent Add diverged")
					return nil
				}
				if wantProd.Cmp(toBig(a.Mul(b))) != 0 {
					t.Error("concurrent Mul diverged")
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}
