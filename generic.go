package numeric

// Coercible is implemented by external types that want to participate in
// this package's arithmetic without being one of the five Number kinds
// themselves -- a currency amount, a physical unit, or any other
// domain value with a sensible numeric projection. Add/Sub/Mul/Div
// accept Number directly; AddAny/SubAny/MulAny/DivAny accept any operand
// and fall back to this interface before giving up.
type Coercible interface {
	ToNumber() (Number, error)
}

// asNumber resolves v to a Number, either because it already is one or
// because it implements Coercible. Anything else is a dispatch failure:
// no method exists to combine it with a Number.
func asNumber(v any) (Number, error) {
	switch t := v.(type) {
	case Number:
		return t, nil
	case Coercible:
		return t.ToNumber()
	default:
		return nil, newErr(ErrGenericDispatchError, "generic", "operand has no numeric coercion")
	}
}

// AddAny adds two operands that are each either a Number or Coercible,
// reporting ErrGenericDispatchError if either is neither.
func AddAny(a, b any) (Number, error) {
	an, err := asNumber(a)
	if err != nil {
		return nil, err
	}
	bn, err := asNumber(b)
	if err != nil {
		return nil, err
	}
	return Add(an, bn)
}

// SubAny subtracts two operands per the same coercion rule as AddAny.
func SubAny(a, b any) (Number, error) {
	an, err := asNumber(a)
	if err != nil {
		return nil, err
	}
	bn, err := asNumber(b)
	if err != nil {
		return nil, err
	}
	return Sub(an, bn)
}

// MulAny multiplies two operands per the same coercion rule as AddAny.
func MulAny(a, b any) (Number, error) {
	an, err := asNumber(a)
	if err != nil {
		return nil, err
	}
	bn, err := asNumber(b)
	if err != nil {
		return nil, err
	}
	return Mul(an, bn)
}

// DivAny divides two operands per the same coercion rule as AddAny.
func DivAny(a, b any) (Number, error) {
	an, err := asNumber(a)
	if err != nil {
		return nil, err
	}
	bn, err := asNumber(b)
	if err != nil {
		return nil, err
	}
	return Div(an, bn)
}
