package bigbigint

import (
	"math/bits"

	"github.com/richard-andrasek/bigbigint/internal/wordpool"
)

// DivMod returns the quotient and remainder of x / y as new values, or
// ErrDivisionByZero when y is zero. Operands are not modified.
//
// Division is truncated: q = trunc(x/y), r = x - q*y, so the quotient sign
// is the XOR of the operand signs, the remainder takes the sign of the
// dividend, and |r| < |y| always holds.
//
// The magnitude algorithm is restoring binary long division: after the
// degenerate cases are dispatched directly, the leading zero bits of the
// dividend are skipped and each remaining bit is shifted into a running
// remainder; the divisor is tentatively subtracted and the subtraction kept
// (setting the corresponding quotient bit) whenever it does not borrow. The
// quotient buffer grows by one word whenever its most significant bit
// becomes set, so no quotient bit is ever shifted off the top.
func (x *Int) DivMod(y *Int) (q, r *Int, err error) {
	x.ensure()
	y.ensure()
	countDiv()

	if y.IsZero() {
		logger.Debug("division by zero rejected")
		countDivByZero()
		return nil, nil, ErrDivisionByZero
	}

	qNeg := x.neg != y.neg
	rNeg := x.neg

	switch {
	case x.IsZero():
		return New(MinWords), New(MinWords), nil
	case cmpMag(y, x) > 0:
		// Divisor magnitude exceeds the dividend's: quotient 0, remainder
		// is the dividend.
		r = x.Abs()
		r.neg = rNeg
		return New(MinWords), r.normSign(), nil
	case cmpMag(y, x) == 0:
		q = FromNumber(1)
		q.neg = qNeg
		return q, New(MinWords), nil
	case y.isMagOne():
		q = x.Abs()
		q.neg = qNeg
		return q.normSign(), New(MinWords), nil
	}

	qm, rm := divModMag(x, y)
	qm.neg = qNeg
	rm.neg = rNeg
	return qm.normSign(), rm.normSign(), nil
}

// Div returns the quotient of x / y, or ErrDivisionByZero.
func (x *Int) Div(y *Int) (*Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the remainder of x / y, or ErrDivisionByZero. The remainder
// takes the sign of the dividend and |r| < |y|.
func (x *Int) Mod(y *Int) (*Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivAssign sets z = z / y in place, or returns ErrDivisionByZero leaving z
// untouched.
func (z *Int) DivAssign(y *Int) error {
	q, _, err := z.DivMod(y)
	if err != nil {
		return err
	}
	z.Set(q)
	return nil
}

// ModAssign sets z = z % y in place, or returns ErrDivisionByZero leaving z
// untouched.
func (z *Int) ModAssign(y *Int) error {
	_, r, err := z.DivMod(y)
	if err != nil {
		return err
	}
	z.Set(r)
	return nil
}

// divModMag runs the restoring division bit loop on magnitudes only. The
// caller has already dispatched the degenerate cases, so here
// 0 < |y| < |x| and |y| > 1.
func divModMag(x, y *Int) (q, r *Int) {
	// The remainder never reaches 2*|y|, so sigWords(y)+1 words always
	// suffice and the remainder buffer needs no mid-loop growth.
	remCap := y.sigWords() + 1
	if remCap < MinWords {
		remCap = MinWords
	}
	r = New(remCap)
	q = New(MinWords)

	// Scratch for the tentative subtraction, same layout as r.words.
	tmp := wordpool.Acquire(remCap)
	defer wordpool.Release(tmp)

	for i := x.magBitLen() - 1; i >= 0; i-- {
		r.shiftLeft1()
		if x.magBit(i) {
			r.words[len(r.words)-1] |= 1
		}

		// Grow the quotient before its most significant bit would be
		// shifted off.
		if q.words[0]&0x80000000 != 0 {
			q.Grow(len(q.words) + 1)
		}
		q.shiftLeft1()

		if !subMagTentative(r, y, tmp) {
			q.words[len(q.words)-1] |= 1
		}
	}
	return q, r
}

// shiftLeft1 shifts the magnitude left by one bit in place, discarding the
// bit leaving the most significant word. Callers guarantee capacity.
func (z *Int) shiftLeft1() {
	var carry uint32
	for i := len(z.words) - 1; i >= 0; i-- {
		w := z.words[i]
		z.words[i] = w<<1 | carry
		carry = w >> 31
	}
}

// subMagTentative computes dst - src into tmp and reports whether the
// subtraction borrowed. On no borrow the result is kept (copied into dst);
// on borrow dst is left untouched, which is the "restore" of restoring
// division without ever mutating the remainder.
func subMagTentative(dst, src *Int, tmp []uint32) (borrowed bool) {
	n := len(dst.words)
	var borrow uint64
	for k := 0; k < n; k++ {
		d := uint64(dst.lsw(k)) - uint64(src.lsw(k)) - borrow
		tmp[n-1-k] = uint32(d)
		borrow = (d >> wordBits) & 1
	}
	if borrow != 0 {
		return true
	}
	copy(dst.words, tmp[:n])
	return false
}

// magBitLen returns the length of the magnitude in bits, ignoring the sign;
// zero has bit length zero.
func (x *Int) magBitLen() int {
	sig := x.sigWords()
	top := x.lsw(sig - 1)
	if top == 0 {
		return 0
	}
	return (sig-1)*wordBits + bits.Len32(top)
}

// magBit reports bit i (counted from the least significant bit) of the
// magnitude.
func (x *Int) magBit(i int) bool {
	return (x.lsw(i/wordBits)>>(uint(i)%wordBits))&1 != 0
}
