package bigbigint

// Cmp compares x and y as signed values, returning -1 if x < y, 0 if
// x == y, and +1 if x > y. Neither operand is modified.
//
// Sign flags decide first: any negative value is less than any non-negative
// value. Same-sign operands compare by magnitude over the longer significant
// length, most significant word first, with the order inverted when both are
// negative. The result is a strict total order consistent with the
// represented values.
func (x *Int) Cmp(y *Int) int {
	x.ensure()
	y.ensure()
	xn, yn := x.neg, y.neg
	switch {
	case xn && !yn:
		return -1
	case !xn && yn:
		return 1
	}
	c := cmpMag(x, y)
	if xn {
		c = -c
	}
	return c
}

// Eq reports x == y.
func (x *Int) Eq(y *Int) bool { return x.Cmp(y) == 0 }

// Neq reports x != y.
func (x *Int) Neq(y *Int) bool { return x.Cmp(y) != 0 }

// Lt reports x < y.
func (x *Int) Lt(y *Int) bool { return x.Cmp(y) < 0 }

// Lte reports x <= y.
func (x *Int) Lte(y *Int) bool { return x.Cmp(y) <= 0 }

// Gt reports x > y.
func (x *Int) Gt(y *Int) bool { return x.Cmp(y) > 0 }

// Gte reports x >= y.
func (x *Int) Gte(y *Int) bool { return x.Cmp(y) >= 0 }

// cmpMag compares magnitudes only, ignoring both sign flags. Operands are
// conceptually padded to the longer significant length; neither is mutated.
func cmpMag(x, y *Int) int {
	lx, ly := x.sigWords(), y.sigWords()
	n := lx
	if ly > n {
		n = ly
	}
	for i := n - 1; i >= 0; i-- {
		xw, yw := x.lsw(i), y.lsw(i)
		switch {
		case xw < yw:
			return -1
		case xw > yw:
			return 1
		}
	}
	return 0
}
