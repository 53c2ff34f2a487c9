package bigbigint

// The bitwise operators combine magnitudes word by word after right-aligning
// both operands to the longer capacity, the same alignment rule the
// comparisons use. Sign-magnitude storage has no two's-complement bit
// pattern for negative values, so the result sign is defined explicitly and
// symmetrically: the operator itself is applied to the two sign flags
// (OR, AND, XOR respectively), and a zero magnitude normalizes the sign
// away.

// Or returns the word-wise OR of the magnitudes of x and y as a new value.
// The result capacity is the longer operand's capacity; the result is
// negative when either operand is.
func (x *Int) Or(y *Int) *Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a | b }, x.neg || y.neg)
}

// And returns the word-wise AND of the magnitudes of x and y as a new
// value. The result is negative when both operands are.
func (x *Int) And(y *Int) *Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a & b }, x.neg && y.neg)
}

// Xor returns the word-wise XOR of the magnitudes of x and y as a new
// value. The result is negative when exactly one operand is.
func (x *Int) Xor(y *Int) *Int {
	return bitwise(x, y, func(a, b uint32) uint32 { return a ^ b }, x.neg != y.neg)
}

// OrAssign sets z = z | y in place and returns z.
func (z *Int) OrAssign(y *Int) *Int { return z.Set(z.Or(y)) }

// AndAssign sets z = z & y in place and returns z.
func (z *Int) AndAssign(y *Int) *Int { return z.Set(z.And(y)) }

// XorAssign sets z = z ^ y in place and returns z.
func (z *Int) XorAssign(y *Int) *Int { return z.Set(z.Xor(y)) }

// bitwise runs one of the word-wise combiners over the aligned magnitudes.
// The loop bound is the explicit common word count; shorter operands read
// as zero above their own capacity.
func bitwise(x, y *Int, op func(a, b uint32) uint32, neg bool) *Int {
	x.ensure()
	y.ensure()
	n := len(x.words)
	if len(y.words) > n {
		n = len(y.words)
	}
	z := New(n)
	for i := 0; i < n; i++ {
		z.setLSW(i, op(x.lsw(i), y.lsw(i)))
	}
	z.neg = neg
	return z.normSign()
}
