package bigbigint

// Mul returns x * y as a new value. Operands are not modified.
//
// Schoolbook multiply-accumulate: each word of the shorter operand is
// multiplied against every word of the longer one in a 64-bit accumulator,
// summed into the running partial product at the right offset, with the
// carry pushed into the next more-significant result word. The result
// capacity is the sum of the operand capacities, so no carry can ever fall
// off the top. The result sign is the XOR of the operand signs.
func (x *Int) Mul(y *Int) *Int {
	x.ensure()
	y.ensure()

	neg := x.neg != y.neg

	// Fast paths. Multiplying by zero yields zero; multiplying by one
	// yields a copy of the other operand with the corrected sign.
	if x.IsZero() || y.IsZero() {
		return New(MinWords)
	}
	if y.isMagOne() {
		z := x.Abs()
		z.neg = neg
		return z
	}
	if x.isMagOne() {
		z := y.Abs()
		z.neg = neg
		return z
	}

	// Point the inner loop at the longer operand.
	a, b := x, y
	if a.sigWords() < b.sigWords() {
		a, b = b, a
	}
	la, lb := a.sigWords(), b.sigWords()

	z := New(len(x.words) + len(y.words))
	for j := 0; j < lb; j++ {
		m := uint64(b.lsw(j))
		if m == 0 {
			continue
		}
		var carry uint64
		for i := 0; i < la; i++ {
			t := uint64(a.lsw(i))*m + uint64(z.lsw(i+j)) + carry
			z.setLSW(i+j, uint32(t))
			carry = t >> wordBits
		}
		for k := la + j; carry != 0; k++ {
			t := uint64(z.lsw(k)) + carry
			z.setLSW(k, uint32(t))
			carry = t >> wordBits
		}
	}
	z.neg = neg
	return z.normSign()
}

// MulAssign sets z = z * y in place and returns z. The product is fully
// computed before z is overwritten, so z.MulAssign(z) is safe.
func (z *Int) MulAssign(y *Int) *Int {
	return z.Set(z.Mul(y))
}

// isMagOne reports whether the magnitude is exactly one, independent of
// sign.
func (x *Int) isMagOne() bool {
	return x.sigWords() == 1 && x.lsw(0) == 1
}
