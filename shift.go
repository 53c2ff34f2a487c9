package bigbigint

// Lsh returns x shifted left by n bits as a new value. A negative n invokes
// the opposite-direction shift with the absolute amount. The result grows
// as needed so no high-order bits are lost: x.Lsh(8) always equals
// multiplying x by 256.
//
// The shift splits n into a whole-word offset (n / 32) and an intra-word
// bit offset (n % 32). A zero bit offset degenerates to a pure word
// relocation; otherwise each output word is assembled from the two adjacent
// input words that contribute to it.
func (x *Int) Lsh(n int) *Int {
	x.ensure()
	if n < 0 {
		return x.Rsh(-n)
	}
	if x.IsZero() {
		return New(len(x.words))
	}
	wordOff, bitOff := n/wordBits, uint(n%wordBits)

	capWords := len(x.words)
	if need := (x.magBitLen() + n + wordBits - 1) / wordBits; need > capWords {
		capWords = need
	}
	z := New(capWords)

	lx := x.sigWords()
	if bitOff == 0 {
		for i := 0; i < lx; i++ {
			z.setLSW(i+wordOff, x.lsw(i))
		}
	} else {
		for i := 0; i < lx; i++ {
			v := uint64(x.lsw(i)) << bitOff
			z.orLSW(i+wordOff, uint32(v))
			z.orLSW(i+wordOff+1, uint32(v>>wordBits))
		}
	}
	z.neg = x.neg
	return z.normSign()
}

// Rsh returns x shifted right by n bits as a new value, discarding the low
// n bits of the magnitude. A negative n invokes the opposite-direction
// shift with the absolute amount. The result keeps the operand's capacity.
func (x *Int) Rsh(n int) *Int {
	x.ensure()
	if n < 0 {
		return x.Lsh(-n)
	}
	wordOff, bitOff := n/wordBits, uint(n%wordBits)

	z := New(len(x.words))
	lx := x.sigWords()
	if wordOff >= lx {
		return z
	}
	if bitOff == 0 {
		for i := wordOff; i < lx; i++ {
			z.setLSW(i-wordOff, x.lsw(i))
		}
	} else {
		for i := wordOff; i < lx; i++ {
			v := x.lsw(i)>>bitOff | x.lsw(i+1)<<(wordBits-bitOff)
			z.setLSW(i-wordOff, v)
		}
	}
	z.neg = x.neg
	return z.normSign()
}

// LshAssign shifts z left by n bits in place and returns z.
func (z *Int) LshAssign(n int) *Int {
	return z.Set(z.Lsh(n))
}

// RshAssign shifts z right by n bits in place and returns z.
func (z *Int) RshAssign(n int) *Int {
	return z.Set(z.Rsh(n))
}
