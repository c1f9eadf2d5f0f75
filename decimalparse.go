package exess

import (
	"math"
	"math/big"
)

// decimalparse.go implements component D: converting a lexed decimal
// mantissa (a string of digits) and decimal exponent into the nearest
// IEEE-754 double, correctly rounded.
//
// The algorithm follows a two-tier structure:
//  1. An exact fast path when the mantissa has at most 15 digits (so it
//     is exactly representable as a float64) and the scaling
//     power of ten is one of the 23 exactly representable float64 powers
//     (10^0..10^22) - ordinary multiplication/division then introduces no
//     rounding error at all.
//  2. Otherwise, a SoftFloat "guess" computed from the cached power-of-ten
//     table (component B), truncated to 53 significant bits, and then
//     verified (and corrected, if necessary) by an exact BigNat comparison
//     against the midpoint to the next representable double - precisely
//     the `plus_compare`-style exact check, implemented
//     here as compareExact. Subnormal results (where the 64-bit guess
//     doesn't carry enough headroom to trust the truncation) fall back to
//     a high-working-precision big.Float conversion, which is exact to
//     far more bits than a double ever needs and therefore still
//     correctly rounded.
func decimalDigitsToFloat64(digits string, decExp int) float64 {
	if n := len(digits); n <= 15 {
		if mant, ok := parseUint64Digits(digits); ok {
			switch {
			case decExp >= 0 && decExp <= 22:
				return float64(mant) * exactPow10Float(decExp)
			case decExp < 0 && decExp >= -22:
				return float64(mant) / exactPow10Float(-decExp)
			}
		}
	}

	mant, mantOK := parseUint64Digits(digits)
	if mantOK && mant == 0 {
		return 0
	}
	if !mantOK || len(digits) > 19 {
		return bigFloatParseDigits(digits, decExp)
	}

	sig, exp := softFloatGuess(mant, decExp)

	sig53 := sig >> 11
	g := exp + 11

	mid := 2*sig53 + 1
	cmp := compareExactScaled(digits, decExp, mid, int(g))
	if cmp > 0 || (cmp == 0 && sig53&1 == 1) {
		sig53++
		if sig53 == (1 << 53) {
			sig53 >>= 1
			g++
		}
	}

	e := int(g) + 52 + 1023
	if e >= 0x7FF {
		return math.Inf(1)
	}
	if e <= 0 {
		// Too close to (or within) the subnormal range for the truncated
		// 64-bit guess to carry enough margin; fall back to the exact
		// high-precision path.
		return bigFloatParseDigits(digits, decExp)
	}

	frac := sig53 &^ (uint64(1) << 52)
	return math.Float64frombits(uint64(e)<<52 | frac)
}

// parseUint64Digits parses a (possibly empty) string of ASCII decimal
// digits into a uint64, reporting overflow via ok=false.
func parseUint64Digits(digits string) (uint64, bool) {
	var v uint64
	for i := 0; i < len(digits); i++ {
		d := uint64(digits[i] - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}
	return v, true
}

// softFloatGuess computes a 64-bit normalized SoftFloat approximation of
// mantissa * 10^decExp using the cached power-of-ten table (component B).
func softFloatGuess(mantissa uint64, decExp int) (significand uint64, exponent int32) {
	m := SoftFloat{Significand: mantissa}
	m.Normalize()

	cached, cachedExp, ok := cachedPow10Floor(decExp)
	if !ok {
		product := m.Multiply(computePow10(decExp))
		return product.Significand, product.Exponent
	}

	extra := decExp - cachedExp
	product := m.Multiply(cached)
	if extra != 0 {
		product = product.Multiply(computePow10(extra))
	}
	return product.Significand, product.Exponent
}

// compareExactScaled returns the sign of (digits * 10^decExp) - (mid *
// 2^(g-1)), computed exactly with BigNat by clearing denominators on
// whichever side needs them.
func compareExactScaled(digits string, decExp int, mid uint64, g int) int {
	lhs := NewBigNat()
	lhs.SetDecimalString(digits)
	rhs := NewBigNat().SetU64(mid)

	if decExp >= 0 {
		lhs.MultiplyPow10(decExp)
	} else {
		rhs.MultiplyPow10(-decExp)
	}

	gm1 := g - 1
	if gm1 >= 0 {
		rhs.ShiftLeft(uint(gm1))
	} else {
		lhs.ShiftLeft(uint(-gm1))
	}

	return lhs.Compare(rhs)
}

// bigFloatParseDigits computes the correctly-rounded float64 value of
// digits * 10^decExp using math/big at a working precision far beyond
// what a double needs, for the rare inputs (subnormal results, or
// mantissas too long to fit a uint64) the fast paths above don't cover.
func bigFloatParseDigits(digits string, decExp int) float64 {
	const guardBits = 256

	n := new(big.Int)
	n.SetString(digits, 10)

	prec := uint(len(digits)*4 + guardBits)
	f := new(big.Float).SetPrec(prec).SetInt(n)

	if decExp > 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decExp)), nil)
		pf := new(big.Float).SetPrec(prec).SetInt(pow)
		f.Mul(f, pf)
	} else if decExp < 0 {
		pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-decExp)), nil)
		pf := new(big.Float).SetPrec(prec).SetInt(pow)
		f.Quo(f, pf)
	}

	v, _ := f.Float64()
	return v
}

// decimalDigitsToFloat32 rounds digits * 10^decExp to the nearest float32,
// for the Float datatype. It reuses the float64 path (double precision is
// always enough guard for a correct float32 rounding) and lets the final
// float32 conversion perform the second, correctly-rounded narrowing.
func decimalDigitsToFloat32(digits string, decExp int) float32 {
	if len(digits) <= 9 && decExp >= -10 && decExp <= 10 {
		if mant, ok := parseUint64Digits(digits); ok {
			switch {
			case decExp >= 0 && decExp <= 10:
				return float32(float64(mant) * exactPow10Float(decExp))
			case decExp < 0:
				return float32(float64(mant) / exactPow10Float(-decExp))
			}
		}
	}
	return float32(bigFloatParseDigits(digits, decExp))
}
