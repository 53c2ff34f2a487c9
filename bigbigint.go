package bigbigint

// MinWords is the capacity floor, in 32-bit words. Constructors and Grow
// silently clamp smaller requests up to this value, so every Int can hold at
// least a full 64-bit primitive without reallocating.
const MinWords = 2

const wordBits = 32

// Int is a growable sign-magnitude integer.
//
// words holds the magnitude with the most significant word first; its length
// is the allocated capacity and may exceed the number of significant words
// (leading words are zero). neg is the sign flag; a zero magnitude always has
// neg == false.
type Int struct {
	words []uint32
	neg   bool
}

// New returns a zero-valued Int with capacity for at least the given number
// of 32-bit words. Requests below MinWords are clamped up.
func New(capacity int) *Int {
	if capacity < MinWords {
		capacity = MinWords
	}
	return &Int{words: make([]uint32, capacity)}
}

// ensure backfills storage for an Int created as a bare zero value
// (var x bigbigint.Int), so every method sees the MinWords invariant.
func (x *Int) ensure() {
	if x.words == nil {
		x.words = make([]uint32, MinWords)
	}
}

// Cap returns the allocated capacity in 32-bit words. Capacity only ever
// grows over an instance's lifetime.
func (x *Int) Cap() int {
	x.ensure()
	return len(x.words)
}

// Grow reallocates the magnitude buffer to hold at least capacity words,
// zero-filling the new high-order words and copying the existing magnitude
// into the low-order position. The numeric value is preserved exactly.
// Requests at or below the current capacity are no-ops; capacity never
// shrinks.
//
// Allocation failure is not a recoverable condition in Go: a failed make
// aborts the runtime. Grow is exposed as an explicit operation so callers
// can pre-size buffers at a point of their choosing.
func (z *Int) Grow(capacity int) *Int {
	z.ensure()
	if capacity <= len(z.words) {
		return z
	}
	logger.Debug("growing magnitude buffer",
		Int64Field("from_words", int64(len(z.words))),
		Int64Field("to_words", int64(capacity)))
	countGrow()
	words := make([]uint32, capacity)
	copy(words[capacity-len(z.words):], z.words)
	z.words = words
	return z
}

// Clone returns an exact copy: capacity, magnitude and sign are all
// reproduced, and the copy owns its own buffer.
func (x *Int) Clone() *Int {
	x.ensure()
	z := &Int{words: make([]uint32, len(x.words)), neg: x.neg}
	copy(z.words, x.words)
	return z
}

// Set replaces z's value with x's. If the capacities match the magnitude is
// copied straight across; if z is smaller it grows to x's capacity first; if
// z is larger the magnitude lands in the low-order words and the high-order
// remainder is zero-filled. z's capacity never shrinks. Returns z.
func (z *Int) Set(x *Int) *Int {
	z.ensure()
	x.ensure()
	if z == x {
		return z
	}
	if len(z.words) < len(x.words) {
		z.Grow(len(x.words))
	}
	off := len(z.words) - len(x.words)
	for i := 0; i < off; i++ {
		z.words[i] = 0
	}
	copy(z.words[off:], x.words)
	z.neg = x.neg
	return z
}

// SetZero sets z to zero, keeping its capacity. Returns z.
func (z *Int) SetZero() *Int {
	z.ensure()
	clear(z.words)
	z.neg = false
	return z
}

// IsZero reports whether x is exactly zero.
func (x *Int) IsZero() bool {
	x.ensure()
	for _, w := range x.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Sign returns -1 if x < 0, 0 if x == 0, and +1 if x > 0.
func (x *Int) Sign() int {
	if x.IsZero() {
		return 0
	}
	if x.neg {
		return -1
	}
	return 1
}

// Neg returns -x as a new value. Negating zero yields zero (the
// representation has no signed zero).
func (x *Int) Neg() *Int {
	z := x.Clone()
	if !z.IsZero() {
		z.neg = !z.neg
	} else {
		z.neg = false
	}
	return z
}

// Abs returns |x| as a new value.
func (x *Int) Abs() *Int {
	z := x.Clone()
	z.neg = false
	return z
}

// Inc increments z by one in place and returns z.
func (z *Int) Inc() *Int {
	return z.AddAssign(one())
}

// Dec decrements z by one in place and returns z.
func (z *Int) Dec() *Int {
	return z.SubAssign(one())
}

// one returns a fresh Int holding 1.
func one() *Int {
	z := New(MinWords)
	z.words[len(z.words)-1] = 1
	return z
}

// lsw returns the i-th least significant word of the magnitude, treating
// words beyond the allocated capacity as zero.
func (x *Int) lsw(i int) uint32 {
	n := len(x.words)
	if i < 0 || i >= n {
		return 0
	}
	return x.words[n-1-i]
}

// setLSW stores the i-th least significant word. The index must be within
// the allocated capacity.
func (z *Int) setLSW(i int, w uint32) {
	z.words[len(z.words)-1-i] = w
}

// orLSW ORs bits into the i-th least significant word, ignoring indexes past
// the allocated capacity (callers size the result so that dropped words are
// always zero).
func (z *Int) orLSW(i int, w uint32) {
	n := len(z.words)
	if i < 0 || i >= n {
		return
	}
	z.words[n-1-i] |= w
}

// sigWords returns the number of significant magnitude words (at least 1, so
// zero reports a single significant word).
func (x *Int) sigWords() int {
	x.ensure()
	for i, w := range x.words {
		if w != 0 {
			return len(x.words) - i
		}
	}
	return 1
}

// normSign clears the sign flag if the magnitude collapsed to zero,
// maintaining the no-signed-zero invariant. Returns z.
func (z *Int) normSign() *Int {
	if z.neg && z.IsZero() {
		z.neg = false
	}
	return z
}
