package numeric

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var printValidate = validator.New()

// PrintOptions configures NumberToString. Radix applies to Integer and
// Ratnum components only -- Flonum and Complex real/imaginary parts are
// always rendered in the Burger-Dybvig base-10 format, matching Gauche's
// own number printer.
type PrintOptions struct {
	Radix int  `validate:"min=2,max=36"`
	Upper bool
}

// NumberToString renders n in the given radix. upper requests uppercase
// hex/alpha digits for non-decimal radixes; it has no effect on Flonum or
// Complex rendering, which is always base 10.
func NumberToString(n Number, radix int, upper bool) (string, error) {
	opts := PrintOptions{Radix: radix, Upper: upper}
	if err := printValidate.Struct(opts); err != nil {
		return "", newErr(ErrRangeError, "number->string", "radix must be between 2 and 36")
	}

	switch v := n.(type) {
	case SmallInt:
		return formatBigInt(big.NewInt(int64(v)), radix, upper), nil
	case *BigInt:
		return formatBigInt(v.v, radix, upper), nil
	case *Ratnum:
		return formatBigInt(v.num, radix, upper) + "/" + formatBigInt(v.den, radix, upper), nil
	case Flonum:
		return v.String(), nil
	case *Complex:
		return v.String(), nil
	default:
		return "", newErr(ErrTypeError, "number->string", "not a number")
	}
}

func formatBigInt(v *big.Int, radix int, upper bool) string {
	s := v.Text(radix)
	if upper {
		s = strings.ToUpper(s)
	}
	return s
}

// twoP52 is the boundary mantissa (lowest-mantissa normal double) where
// the Burger-Dybvig asymmetric m+ == 2*m- case applies.
var twoP52 = new(big.Int).Lsh(big.NewInt(1), 52)

// printFlonum renders v as the shortest decimal that reads back to
// exactly v (Burger & Dybvig, PLDI '96), translated from
// original_source/src/number.c's double_print into idiomatic Go (no
// goto; the retry/fixup steps become plain sequential code since Go has
// no computed restart point to emulate there). forceSign requests a
// leading '+' on non-negative finite values, used when printing the
// imaginary part of a Complex.
func printFlonum(v float64, forceSign bool) string {
	if v == 0 {
		if math.Signbit(v) {
			return "-0.0"
		}
		if forceSign {
			return "+0.0"
		}
		return "0.0"
	}
	if math.IsInf(v, 1) {
		return "+inf.0"
	}
	if math.IsInf(v, -1) {
		return "-inf.0"
	}
	if math.IsNaN(v) {
		return "+nan.0"
	}

	neg := v < 0
	if neg {
		v = -v
	}

	digits, est := burgerDybvig(v)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	} else if forceSign {
		b.WriteByte('+')
	}

	const expLow, expHigh = -3, 10
	if est > expLow && est < expHigh {
		writePositional(&b, digits, est)
	} else {
		writeScientific(&b, digits, est)
	}
	return b.String()
}

// burgerDybvig returns the shortest round-tripping decimal digit string
// for the positive finite value v, plus the decimal point position est
// such that the value equals 0.<digits> * 10^est.
func burgerDybvig(v float64) (digits string, est int) {
	f, e, _, special := decodeFlonum(v)
	if special != decodeNormal {
		// v is finite and non-zero by the caller's contract, so this
		// can only be reached for subnormal/normal flonums, never here.
		return "0", 1
	}

	round := f.Bit(0) == 0 // tie-break toward even source mantissa
	boundary := f.Cmp(twoP52) == 0

	var r, s, mm *big.Int
	mp2 := false

	if e >= 0 {
		be := new(big.Int).Lsh(big.NewInt(1), uint(e))
		if !boundary {
			r = new(big.Int).Lsh(f, uint(e+1))
			s = big.NewInt(2)
			mm = be
		} else {
			r = new(big.Int).Lsh(f, uint(e+2))
			s = big.NewInt(4)
			mp2 = true
			mm = be
		}
	} else {
		if !boundary {
			r = new(big.Int).Lsh(f, 1)
			s = new(big.Int).Lsh(big.NewInt(1), uint(-e+1))
			mm = big.NewInt(1)
		} else {
			r = new(big.Int).Lsh(f, 2)
			s = new(big.Int).Lsh(big.NewInt(1), uint(-e+2))
			mp2 = true
			mm = big.NewInt(1)
		}
	}

	est = int(math.Ceil(math.Log10(v) - 0.1))
	if est >= 0 {
		s = new(big.Int).Mul(s, pow10Big(est))
	} else {
		scale := pow10Big(-est)
		r = new(big.Int).Mul(r, scale)
		mm = new(big.Int).Mul(mm, scale)
	}

	mpOf := func() *big.Int {
		if mp2 {
			return new(big.Int).Lsh(mm, 1)
		}
		return mm
	}

	fixup := false
	if r.Cmp(s) >= 0 {
		fixup = true
	} else {
		mp := mpOf()
		cmp3 := numCmp3(r, mp, s)
		if round {
			fixup = cmp3 >= 0
		} else {
			fixup = cmp3 > 0
		}
	}
	if fixup {
		s = new(big.Int).Mul(s, big.NewInt(10))
		est++
	}

	var out strings.Builder
	ten := big.NewInt(10)
	for {
		r = new(big.Int).Mul(r, ten)
		q, rem := new(big.Int).QuoRem(r, s, new(big.Int))
		r = rem
		mm = new(big.Int).Mul(mm, ten)
		mp := mpOf()

		var tc1, tc2 bool
		if round {
			tc1 = r.Cmp(mm) <= 0
			tc2 = numCmp3(r, mp, s) >= 0
		} else {
			tc1 = r.Cmp(mm) < 0
			tc2 = numCmp3(r, mp, s) > 0
		}

		digit := q.Int64()
		switch {
		case !tc1 && !tc2:
			out.WriteByte(byte('0' + digit))
		case tc1 && !tc2:
			out.WriteByte(byte('0' + digit))
			return out.String(), est
		case !tc1 && tc2:
			out.WriteByte(byte('0' + digit + 1))
			return out.String(), est
		default: // tc1 && tc2: pick whichever minimizes |10r - s|, tie to even.
			doubled := new(big.Int).Lsh(r, 1)
			tc3 := doubled.Cmp(s)
			if (round && tc3 <= 0) || (!round && tc3 < 0) {
				out.WriteByte(byte('0' + digit))
			} else {
				out.WriteByte(byte('0' + digit + 1))
			}
			return out.String(), est
		}
	}
}

// numCmp3 compares x+d against y (the tc1/tc2 termination tests use this shape).
func numCmp3(x, d, y *big.Int) int {
	sum := new(big.Int).Add(x, d)
	return sum.Cmp(y)
}

func writePositional(b *strings.Builder, digits string, est int) {
	point := est
	if point <= 0 {
		b.WriteString("0.")
		for i := 0; i < -point; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
		return
	}
	if point >= len(digits) {
		b.WriteString(digits)
		for i := len(digits); i < point; i++ {
			b.WriteByte('0')
		}
		b.WriteString(".0")
		return
	}
	b.WriteString(digits[:point])
	b.WriteByte('.')
	b.WriteString(digits[point:])
}

func writeScientific(b *strings.Builder, digits string, est int) {
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(est - 1))
}
