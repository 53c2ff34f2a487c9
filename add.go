package bigbigint

// Add returns x + y as a new value. Operands are not modified.
//
// Differing signs redirect to magnitude subtraction with the sign chosen by
// magnitude; same-sign operands ripple-add least-significant-word first with
// an explicit carry. A carry surviving past the most significant word grows
// the result by one word, so the sum is never truncated.
func (x *Int) Add(y *Int) *Int {
	x.ensure()
	y.ensure()
	switch {
	case x.neg && !y.neg:
		// (-a) + b  =>  b - |a|
		return y.Sub(x.Abs())
	case !x.neg && y.neg:
		// a + (-b)  =>  a - |b|
		return x.Sub(y.Abs())
	}
	z := addMag(x, y)
	z.neg = x.neg
	return z.normSign()
}

// AddAssign sets z = z + y in place and returns z. The sum is fully
// computed before z is overwritten, so z.AddAssign(z) is safe.
func (z *Int) AddAssign(y *Int) *Int {
	return z.Set(z.Add(y))
}

// addMag adds the magnitudes of x and y, ignoring both sign flags. The
// result capacity is the larger operand capacity, plus one word when the
// final carry demands it.
func addMag(x, y *Int) *Int {
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	z := New(n)
	var carry uint64
	for i := 0; i < n; i++ {
		sum := uint64(x.lsw(i)) + uint64(y.lsw(i)) + carry
		z.setLSW(i, uint32(sum))
		carry = sum >> wordBits
	}
	if carry != 0 {
		z.Grow(n + 1)
		z.setLSW(n, uint32(carry))
	}
	return z
}
