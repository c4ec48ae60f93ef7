package numeric

// Complex is a rectangular complex pair. Invariant: im != 0 -- a zero
// imaginary part normalizes to Flonum(re) in MakeComplex (construct.go).
type Complex struct {
	re, im float64
}

func (*Complex) numberSealed() {}

// Kind implements Number.
func (*Complex) Kind() Kind { return KindComplex }

// String implements Number, rendering "re+imi" / "re-imi" per
// original_source's Scm_NumberToString compnum branch (the imaginary
// part always carries an explicit sign).
func (c *Complex) String() string {
	im := printFlonum(c.im, true)
	return printFlonum(c.re, false) + im + "i"
}

// Re returns the real part.
func (c *Complex) Re() float64 { return c.re }

// Im returns the imaginary part.
func (c *Complex) Im() float64 { return c.im }

func newComplex(re, im float64) *Complex { return &Complex{re: re, im: im} }
