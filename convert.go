package bigbigint

import "math"

// Type sets covering every fixed-width primitive numeric type the host
// offers. They are the single generic conversion boundary: each primitive
// width is funneled through one canonical (sign, uint64 magnitude) form
// instead of a hand-written per-width fan-out.

// Signed is the set of signed fixed-width integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned fixed-width integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the union of Signed and Unsigned.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

// Number is every primitive type an Int converts to and from.
type Number interface {
	Integer | Float
}

// maxInt64Float is 2^63 as a float64, exactly representable.
const maxInt64Float = 9223372036854775808.0

// isFloatType reports whether T has a floating-point underlying type. The
// conversion of 0.5 truncates to zero for every integer type and is
// preserved for every float type, so the check is branch-free at runtime
// for a given instantiation.
func isFloatType[T Number]() bool {
	half := 0.5
	return T(half) != T(0)
}

// splitNumber reduces a primitive value to the canonical conversion form:
// a sign flag and an unsigned 64-bit magnitude. Floating-point values are
// truncated toward zero through int64 first (the fractional part is
// discarded); see splitFloat for the saturation rules.
func splitNumber[T Number](v T) (neg bool, mag uint64) {
	if isFloatType[T]() {
		return splitFloat(float64(v))
	}
	if v >= 0 {
		return false, uint64(v)
	}
	// -(v+1) avoids overflow when v is the minimum value of T.
	return true, uint64(-(v + 1)) + 1
}

// splitFloat truncates f toward zero to a 64-bit signed value and splits it
// into sign and magnitude. NaN maps to zero; values beyond the int64 range
// saturate to the int64 bounds. Discarding the fractional part is defined,
// lossy behavior: products and quotients involving values near zero will be
// wrong in the way the documentation warns about.
func splitFloat(f float64) (neg bool, mag uint64) {
	t := math.Trunc(f)
	switch {
	case math.IsNaN(t):
		return false, 0
	case t >= maxInt64Float:
		logger.Debug("float conversion saturated", Float64Field("value", f))
		return false, math.MaxInt64
	case t <= -maxInt64Float:
		logger.Debug("float conversion saturated", Float64Field("value", f))
		return true, uint64(math.MaxInt64) + 1
	}
	i := int64(t)
	if i < 0 {
		return true, uint64(-i)
	}
	return false, uint64(i)
}

// setMag64 is the byte-order normalization point: it writes a canonical
// uint64 magnitude into the low-order end of the big-endian word buffer,
// zero-filling everything above it. All primitive-to-magnitude adaptation
// funnels through here and its inverse mag64; there are no endianness
// conditionals anywhere else.
func (z *Int) setMag64(m uint64) {
	z.ensure()
	clear(z.words)
	n := len(z.words)
	z.words[n-1] = uint32(m)
	z.words[n-2] = uint32(m >> 32)
}

// mag64 reads the low-order 64 bits of the magnitude. High-order words are
// ignored: narrowing is silent by contract.
func (x *Int) mag64() uint64 {
	x.ensure()
	n := len(x.words)
	return uint64(x.words[n-2])<<32 | uint64(x.words[n-1])
}

// FromNumber returns a new Int holding the value of v. Floating-point input
// is truncated toward zero.
func FromNumber[T Number](v T) *Int {
	return Assign(New(MinWords), v)
}

// Assign stores v into z, reusing z's buffer. The magnitude lands
// right-aligned in the low-order words and all higher-order words are
// zero-filled; capacity never shrinks. Returns z.
func Assign[T Number](z *Int, v T) *Int {
	neg, mag := splitNumber(v)
	z.setMag64(mag)
	z.neg = neg && mag != 0
	return z
}

// ToNumber converts x to the primitive type T. Only the low-order
// sizeof(T) bytes of the magnitude participate: if the value does not fit,
// the high-order information is silently discarded and the result wraps,
// exactly as the reinterpretation contract documents. The sign flag negates
// the reinterpreted value (wrapping for unsigned T).
func ToNumber[T Number](x *Int) T {
	if isFloatType[T]() {
		f := float64(x.mag64())
		if x.neg {
			f = -f
		}
		return T(f)
	}
	t := T(x.mag64())
	if x.neg {
		t = -t
	}
	return t
}

// SetInt64 sets z to v and returns z.
func (z *Int) SetInt64(v int64) *Int { return Assign(z, v) }

// SetUint64 sets z to v and returns z.
func (z *Int) SetUint64(v uint64) *Int { return Assign(z, v) }

// SetFloat64 sets z to v truncated toward zero and returns z.
func (z *Int) SetFloat64(v float64) *Int { return Assign(z, v) }

// Int64 returns the low-order 64 bits of x as a signed value.
func (x *Int) Int64() int64 { return ToNumber[int64](x) }

// Uint64 returns the low-order 64 bits of the magnitude, negated (two's
// complement) when x is negative.
func (x *Int) Uint64() uint64 { return ToNumber[uint64](x) }

// Float64 returns the low-order 64 bits of the magnitude as a float64 with
// x's sign applied. High-order magnitude is discarded, not rounded.
func (x *Int) Float64() float64 { return ToNumber[float64](x) }

// The *Num helpers promote a primitive operand to an Int and apply the
// corresponding operator, standing in for the per-width operator fan-out of
// a classical C++ rendition. The primitive may appear on either side by
// promoting explicitly with FromNumber.

// AddNum returns x + v as a new value.
func AddNum[T Number](x *Int, v T) *Int { return x.Add(FromNumber(v)) }

// SubNum returns x - v as a new value.
func SubNum[T Number](x *Int, v T) *Int { return x.Sub(FromNumber(v)) }

// MulNum returns x * v as a new value.
func MulNum[T Number](x *Int, v T) *Int { return x.Mul(FromNumber(v)) }

// DivNum returns x / v as a new value, or ErrDivisionByZero.
func DivNum[T Number](x *Int, v T) (*Int, error) { return x.Div(FromNumber(v)) }

// ModNum returns x % v as a new value, or ErrDivisionByZero.
func ModNum[T Number](x *Int, v T) (*Int, error) { return x.Mod(FromNumber(v)) }

// CmpNum compares x against a primitive value, returning -1, 0 or +1.
func CmpNum[T Number](x *Int, v T) int { return x.Cmp(FromNumber(v)) }

// EqNum reports whether x equals a primitive value.
func EqNum[T Number](x *Int, v T) bool { return CmpNum(x, v) == 0 }
