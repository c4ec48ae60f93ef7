package numeric

import (
	"math"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"
)

var readValidate = validator.New()

// ReadOptions configures StringToNumber. Radix follows the same bounds as
// the printer; Strict selects whether a malformed literal is reported as
// a ParseError or simply rejected by returning ok=false from the
// lower-level parse functions.
type ReadOptions struct {
	Radix  int `validate:"min=2,max=36"`
	Strict bool
}

// exactnessPrefix tracks whether #e or #i appeared in the <prefix>
// grammar production.
type exactnessPrefix int

const (
	exactnessNone exactnessPrefix = iota
	exactnessExact
	exactnessInexact
)

// numReader walks a <number> production left to right over s[pos:].
type numReader struct {
	s       string
	pos     int
	radix   int
	exact   exactnessPrefix
	strict  bool
	padread bool
}

func (r *numReader) rest() string  { return r.s[r.pos:] }
func (r *numReader) eof() bool     { return r.pos >= len(r.s) }
func (r *numReader) peek() byte    { return r.s[r.pos] }
func (r *numReader) advance(n int) { r.pos += n }

// StringToNumber parses s as a single <number> token. radix gives the
// default radix when no #b/#o/#d/#x prefix overrides
// it; strict requests a ParseError instead of a silent "not a number"
// report for malformed input (the distinction Gauche's read_number makes
// between its library-internal and `string->number`-facing callers). In
// non-strict mode a malformed literal yields a nil Number and a nil error.
func StringToNumber(s string, radix int, strict bool) (Number, error) {
	opts := ReadOptions{Radix: radix, Strict: strict}
	if err := readValidate.Struct(opts); err != nil {
		return nil, newErr(ErrRangeError, "string->number", "radix must be between 2 and 36")
	}
	initTables()
	initRadixTable()

	n, ok, err := readNumber(s, radix, strict)
	if err != nil {
		return nil, err
	}
	if !ok {
		if strict {
			return nil, newErr(ErrParseError, "string->number", "malformed number literal: "+s)
		}
		return nil, nil
	}
	return n, nil
}

func readNumber(s string, radix int, strict bool) (Number, bool, error) {
	r := &numReader{s: s, radix: radix, strict: strict}

	for !r.eof() && r.peek() == '#' {
		if len(r.rest()) < 2 {
			return nil, false, nil
		}
		switch r.s[r.pos+1] {
		case 'x', 'X':
			r.radix = 16
		case 'o', 'O':
			r.radix = 8
		case 'b', 'B':
			r.radix = 2
		case 'd', 'D':
			r.radix = 10
		case 'e', 'E':
			if r.exact != exactnessNone {
				return nil, false, nil
			}
			r.exact = exactnessExact
		case 'i', 'I':
			if r.exact != exactnessNone {
				return nil, false, nil
			}
			r.exact = exactnessInexact
		default:
			return nil, false, nil
		}
		r.advance(2)
	}
	if r.eof() {
		return nil, false, nil
	}

	signSeen := false
	if r.peek() == '+' || r.peek() == '-' {
		rest := r.rest()
		if len(rest) == 1 {
			return nil, false, nil
		}
		if len(rest) == 2 && (rest[1] == 'i' || rest[1] == 'I') {
			if r.exact == exactnessExact {
				return nil, false, newErr(ErrUnsupportedExact, "string->number", "exact complex numbers are not supported")
			}
			im := 1.0
			if rest[0] == '-' {
				im = -1.0
			}
			return newComplex(0, im), true, nil
		}
		signSeen = true
	}

	realPart, ok, err := r.readReal()
	if err != nil || !ok {
		return nil, ok, err
	}
	if r.eof() {
		return realPart, true, nil
	}

	switch r.peek() {
	case '@':
		if len(r.rest()) <= 1 {
			return nil, false, nil
		}
		r.advance(1)
		angle, ok, err := r.readReal()
		if err != nil || !ok || !r.eof() {
			return nil, false, err
		}
		if r.exact == exactnessExact {
			return nil, false, newErr(ErrUnsupportedExact, "string->number", "exact complex numbers are not supported")
		}
		mag, _ := ToFloat64(realPart)
		ang, _ := ToFloat64(angle)
		re := mag * math.Cos(ang)
		im := mag * math.Sin(ang)
		return newComplex(re, im), true, nil

	case '+', '-':
		rest := r.rest()
		if len(rest) <= 1 {
			return nil, false, nil
		}
		if len(rest) == 2 && rest[1] == 'i' {
			im := 1.0
			if rest[0] == '-' {
				im = -1.0
			}
			ref, _ := ToFloat64(realPart)
			return newComplex(ref, im), true, nil
		}
		imagPart, ok, err := r.readReal()
		if err != nil || !ok || r.pos+1 != len(r.s) || r.s[r.pos] != 'i' {
			return nil, false, err
		}
		if r.exact == exactnessExact {
			return nil, false, newErr(ErrUnsupportedExact, "string->number", "exact complex numbers are not supported")
		}
		ref, _ := ToFloat64(realPart)
		imf, _ := ToFloat64(imagPart)
		if imf == 0 {
			return realPart, true, nil
		}
		return newComplex(ref, imf), true, nil

	case 'i', 'I':
		if !signSeen || r.pos+1 != len(r.s) {
			return nil, false, nil
		}
		if r.exact == exactnessExact {
			return nil, false, newErr(ErrUnsupportedExact, "string->number", "exact complex numbers are not supported")
		}
		ref, _ := ToFloat64(realPart)
		if ref == 0 {
			return Flonum(0), true, nil
		}
		return newComplex(0, ref), true, nil

	default:
		return nil, false, nil
	}
}

// readUint reads a run of radix digits optionally followed by '#' padding
// digits, folding into a *big.Int only once the machine-word accumulator
// from radixLimits would overflow, mirroring Gauche's read_uint.
func (r *numReader) readUint() (*big.Int, bool) {
	info := radixLimits(r.radix)
	start := r.pos

	for !r.eof() && r.peek() == '0' {
		r.advance(1)
	}
	leadingZeroSkip := r.pos > start

	var small int64
	var big_ *big.Int
	digits := 0
	digread := leadingZeroSkip

	for !r.eof() {
		if digits >= info.longDigs {
			if big_ == nil {
				big_ = big.NewInt(small)
			} else {
				big_ = new(big.Int).Add(new(big.Int).Mul(big_, big.NewInt(info.bigDig)), big.NewInt(small))
			}
			small, digits = 0, 0
		}
		c := r.peek()
		if r.padread {
			if c == '#' {
				small = small*int64(r.radix) + 0
				digits++
				r.advance(1)
				continue
			}
			break
		}
		if digread && c == '#' {
			r.padread = true
			if r.exact == exactnessNone {
				r.exact = exactnessInexact
			}
			small = small * int64(r.radix)
			digits++
			r.advance(1)
			continue
		}
		v := digitValue(c)
		if v < 0 || v >= r.radix {
			break
		}
		digread = true
		small = small*int64(r.radix) + int64(v)
		digits++
		r.advance(1)
	}

	if !digread {
		return nil, false
	}
	if big_ == nil {
		return big.NewInt(small), true
	}
	if digits > 0 {
		mult := new(big.Int).Exp(big.NewInt(int64(r.radix)), big.NewInt(int64(digits)), nil)
		big_ = new(big.Int).Add(new(big.Int).Mul(big_, mult), big.NewInt(small))
	}
	return big_, true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	default:
		return -1
	}
}

// readReal parses a single <real>: optional
// sign, integer/rational/decimal body. Returns ok=false (no error) for
// input that simply isn't a valid real, matching read_real's #f-return
// convention; genuine limit violations surface as errors.
func (r *numReader) readReal() (Number, bool, error) {
	minus := false
	if !r.eof() && (r.peek() == '+' || r.peek() == '-') {
		minus = r.peek() == '-'
		r.advance(1)
	}
	if r.eof() {
		return nil, false, nil
	}

	var intPart *big.Int
	haveIntPart := false
	if r.peek() != '.' {
		v, ok := r.readUint()
		if !ok {
			return nil, false, nil
		}
		intPart, haveIntPart = v, true

		if r.eof() {
			n := normalizeInt(intPart)
			if minus {
				n = Negate(n)
			}
			if r.exact == exactnessInexact {
				f, _ := ToFloat64(n)
				return Flonum(f), true, nil
			}
			return n, true, nil
		}

		if r.peek() == '/' {
			if len(r.rest()) <= 1 {
				return nil, false, nil
			}
			r.advance(1)
			den, ok := r.readUint()
			if !ok {
				return nil, false, nil
			}
			if den.Sign() == 0 {
				return nil, false, newErr(ErrDivisionByZero, "string->number", "zero denominator in rational literal")
			}
			n := intPart
			if minus {
				n = new(big.Int).Neg(n)
			}
			rat := MakeRational(n, den)
			if r.exact == exactnessInexact {
				f, _ := ToFloat64(rat)
				return Flonum(f), true, nil
			}
			return rat, true, nil
		}
	}

	var fraction *big.Int
	fracdigs := 0
	if !r.eof() && r.peek() == '.' {
		if r.radix != 10 {
			return nil, false, newErr(ErrParseError, "string->number", "only base-10 fractions are supported")
		}
		r.advance(1)
		before := r.pos
		init := intPart
		if !haveIntPart {
			init = big.NewInt(0)
		}
		f, ok := r.readUintWithInit(init)
		if !ok {
			f = init
		}
		fraction = f
		fracdigs = r.pos - before
	} else {
		fraction = intPart
	}

	if !haveIntPart && fracdigs == 0 {
		return nil, false, nil
	}

	exponent := 0
	if !r.eof() && strings.IndexByte("eEsSfFdDlL", r.peek()) >= 0 {
		r.advance(1)
		if r.eof() {
			return nil, false, nil
		}
		expMinus := false
		if r.peek() == '+' || r.peek() == '-' {
			expMinus = r.peek() == '-'
			r.advance(1)
			if r.eof() {
				return nil, false, nil
			}
		}
		digitsSeen := false
		overflow := false
		for !r.eof() && r.peek() >= '0' && r.peek() <= '9' {
			digitsSeen = true
			if !overflow {
				exponent = exponent*10 + int(r.peek()-'0')
				if exponent >= maxDecimalExponent*4 {
					overflow = true
				}
			}
			r.advance(1)
		}
		if !digitsSeen {
			return nil, false, nil
		}
		if expMinus {
			exponent = -exponent
		}
		if overflow {
			if r.exact == exactnessExact {
				return nil, false, newErr(ErrLimitViolation, "string->number", "exact exponent out of range")
			}
			if expMinus {
				return Flonum(0), true, nil
			}
			if minus {
				return NegativeInfinity, true, nil
			}
			return PositiveInfinity, true, nil
		}
	}

	if r.exact == exactnessExact {
		if exponent > maxDecimalExponent || exponent < -maxDecimalExponent {
			return nil, false, newErr(ErrLimitViolation, "string->number", "exact exponent out of range")
		}
		e, err := Expt(SmallInt(10), SmallInt(int64(exponent-fracdigs)))
		if err != nil {
			return nil, false, err
		}
		result, err := Mul(normalizeInt(fraction), e)
		if err != nil {
			return nil, false, err
		}
		if minus {
			result = Negate(result)
		}
		return result, true, nil
	}

	realnum := raisePow10(bigIntToFloat(fraction), exponent-fracdigs)
	if math.IsInf(realnum, 0) {
		if minus {
			return NegativeInfinity, true, nil
		}
		return PositiveInfinity, true, nil
	}
	if realnum > 0 && (fraction.Cmp(twoP52) > 0 || exponent-fracdigs > maxExact10Exp || exponent-fracdigs < -maxExact10Exp) {
		realnum = algorithmR(fraction, exponent-fracdigs, realnum)
	}
	if minus {
		realnum = -realnum
	}
	return Flonum(realnum), true, nil
}

// readUintWithInit continues accumulating digits on top of init, used for
// the fractional part where the integer part (if any) seeds the value
// (e.g. "12.5" reads the "12" and "5" into one running integer).
func (r *numReader) readUintWithInit(init *big.Int) (*big.Int, bool) {
	acc := new(big.Int).Set(init)
	digread := false
	for !r.eof() {
		c := r.peek()
		if r.padread {
			if c != '#' {
				break
			}
			acc = new(big.Int).Mul(acc, big.NewInt(int64(r.radix)))
			r.advance(1)
			digread = true
			continue
		}
		if digread && c == '#' {
			r.padread = true
			acc = new(big.Int).Mul(acc, big.NewInt(int64(r.radix)))
			if r.exact == exactnessNone {
				r.exact = exactnessInexact
			}
			r.advance(1)
			continue
		}
		v := digitValue(c)
		if v < 0 || v >= r.radix {
			break
		}
		acc = new(big.Int).Add(new(big.Int).Mul(acc, big.NewInt(int64(r.radix))), big.NewInt(int64(v)))
		digread = true
		r.advance(1)
	}
	return acc, digread
}

const maxExact10Exp = 23

func bigIntToFloat(v *big.Int) float64 {
	f := new(big.Float).SetInt(v)
	r, _ := f.Float64()
	return r
}

// raisePow10 computes x * 10^n in double precision, matching
// raise_pow10's exact range [0, 23] fast path and the loop for larger
// magnitudes; any residual rounding error here is what algorithmR exists
// to correct, via Clinger's algorithm below.
func raisePow10(x float64, n int) float64 {
	var dpow10 = [...]float64{
		1.0, 1.0e1, 1.0e2, 1.0e3, 1.0e4,
		1.0e5, 1.0e6, 1.0e7, 1.0e8, 1.0e9,
		1.0e10, 1.0e11, 1.0e12, 1.0e13, 1.0e14,
		1.0e15, 1.0e16, 1.0e17, 1.0e18, 1.0e19,
		1.0e20, 1.0e21, 1.0e22, 1.0e23,
	}
	if n >= 0 {
		for n > 23 {
			x *= 1.0e24
			n -= 24
		}
		return x * dpow10[n]
	}
	for n < -23 {
		x /= 1.0e24
		n += 24
	}
	return x / dpow10[-n]
}

// algorithmR finds the double closest to f * 10^e, starting from the
// already-close approximation z, per Will Clinger's "How to Read
// Floating Point Numbers Accurately" (ACM SIGPLAN '90). Translated from
// original_source/src/number.c's algorithmR: the goto-based retry/next
// loop becomes a labeled Go for-loop with explicit phase flags.
func algorithmR(f *big.Int, e int, z float64) float64 {
	m, k, _, special := decodeFlonum(z)
	if special != decodeNormal {
		return z
	}

	one := big.NewInt(1)

	computeXY := func(k int) (x, y *big.Int) {
		if k >= 0 {
			if e >= 0 {
				x = new(big.Int).Mul(f, pow10Big(e))
				y = new(big.Int).Lsh(m, uint(k))
			} else {
				x = new(big.Int).Set(f)
				y = new(big.Int).Lsh(new(big.Int).Mul(m, pow10Big(-e)), uint(k))
			}
		} else {
			if e >= 0 {
				x = new(big.Int).Lsh(new(big.Int).Mul(f, pow10Big(e)), uint(-k))
				y = new(big.Int).Set(m)
			} else {
				x = new(big.Int).Lsh(f, uint(-k))
				y = new(big.Int).Mul(m, pow10Big(-e))
			}
		}
		return x, y
	}

	x, y := computeXY(k)
	kprev := k

	for {
		signD := x.Cmp(y)
		var absD *big.Int
		if signD > 0 {
			absD = new(big.Int).Sub(x, y)
		} else {
			absD = new(big.Int).Sub(y, x)
		}
		d2 := new(big.Int).Lsh(new(big.Int).Mul(m, absD), 1)

		cmp := d2.Cmp(y)
		var goPrev, goNext, done bool
		switch {
		case cmp < 0:
			if m.Cmp(twoP52) == 0 && signD < 0 && new(big.Int).Lsh(d2, 1).Cmp(y) > 0 {
				goPrev = true
			} else {
				done = true
			}
		case cmp == 0:
			if m.Bit(0) == 0 {
				if m.Cmp(twoP52) == 0 && signD < 0 {
					goPrev = true
				} else {
					done = true
				}
			} else if signD < 0 {
				goPrev = true
			} else {
				goNext = true
			}
		default:
			if signD < 0 {
				goPrev = true
			} else {
				goNext = true
			}
		}

		if done {
			return ldexpBig(m, k)
		}

		if goPrev {
			m = new(big.Int).Sub(m, one)
			if k > -1074 && m.Cmp(twoP52) < 0 {
				m = new(big.Int).Lsh(m, 1)
				k--
			}
		} else if goNext {
			m = new(big.Int).Add(m, one)
			twoP53 := new(big.Int).Lsh(twoP52, 1)
			if m.Cmp(twoP53) >= 0 {
				m = new(big.Int).Rsh(m, 1)
				k++
			}
		}

		if kprev >= 0 {
			if k >= 0 {
				if e >= 0 {
					y = new(big.Int).Lsh(m, uint(k))
				} else {
					y = new(big.Int).Lsh(new(big.Int).Mul(m, pow10Big(-e)), uint(k))
				}
			} else {
				x, y = computeXY(k)
				kprev = k
			}
		} else {
			if k < 0 {
				if k != kprev {
					if e >= 0 {
						x = new(big.Int).Lsh(new(big.Int).Mul(f, pow10Big(e)), uint(-k))
					} else {
						x = new(big.Int).Lsh(f, uint(-k))
					}
				}
				if e >= 0 {
					y = m
				} else {
					y = new(big.Int).Mul(m, pow10Big(-e))
				}
			} else {
				x, y = computeXY(k)
				kprev = k
			}
		}
	}
}

// ldexpBig returns float64(m) * 2^k, going through big.Float so an m with
// up to 53 significant bits converts without intermediate overflow.
func ldexpBig(m *big.Int, k int) float64 {
	f := new(big.Float).SetInt(m)
	return math.Ldexp(mustFloat(f), k)
}

func mustFloat(f *big.Float) float64 {
	v, _ := f.Float64()
	return v
}
