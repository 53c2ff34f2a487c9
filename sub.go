package bigbigint

// Sub returns x - y as a new value. Operands are not modified.
//
// Sign cases redirect so the core only ever subtracts a non-negative value
// from a non-negative value. The core reproduces two's-complement
// subtraction on top of sign-magnitude storage: add the one's complement of
// the subtrahend to the minuend; an end-around carry out of the most
// significant word means the difference is already the correct (positive)
// magnitude once the carry is folded back in, while no carry means the
// accumulated words are the one's complement of the true magnitude, so the
// result is complemented again and the sign flipped.
func (x *Int) Sub(y *Int) *Int {
	x.ensure()
	y.ensure()
	switch {
	case !x.neg && y.neg:
		// a - (-b)  =>  a + b
		return x.Add(y.Abs())
	case x.neg && y.neg:
		// (-a) - (-b)  =>  b - a
		return y.Abs().Sub(x.Abs())
	case x.neg && !y.neg:
		// (-a) - b  =>  -(a + b)
		z := addMag(x, y)
		z.neg = true
		return z.normSign()
	}
	return subMagOnes(x, y)
}

// SubAssign sets z = z - y in place and returns z. The difference is fully
// computed before z is overwritten, so z.SubAssign(z) is safe.
func (z *Int) SubAssign(y *Int) *Int {
	return z.Set(z.Sub(y))
}

// subMagOnes computes minuend - subtrahend for two non-negative operands
// using one's-complement addition with an end-around carry. The result
// capacity is the larger operand capacity.
func subMagOnes(minuend, subtrahend *Int) *Int {
	n := len(minuend.words)
	if len(subtrahend.words) > n {
		n = len(subtrahend.words)
	}
	z := New(n)

	// z = minuend + ^subtrahend over the full common width. Words past the
	// subtrahend's capacity complement to all-ones.
	var carry uint64
	for i := 0; i < n; i++ {
		sum := uint64(minuend.lsw(i)) + uint64(^subtrahend.lsw(i)) + carry
		z.setLSW(i, uint32(sum))
		carry = sum >> wordBits
	}

	if carry != 0 {
		// End-around carry: fold it back in at the least significant word.
		// The propagation cannot overflow past the top word again.
		add := carry
		for i := 0; i < n && add != 0; i++ {
			sum := uint64(z.lsw(i)) + add
			z.setLSW(i, uint32(sum))
			add = sum >> wordBits
		}
		return z
	}

	// No carry: the accumulated words are the one's complement of the true
	// magnitude and the true difference is negative.
	for i := range z.words {
		z.words[i] = ^z.words[i]
	}
	z.neg = true
	return z.normSign()
}
