package exess

import (
	"math"
	"math/bits"
)

// FloatingDecimalKind classifies the value a FloatingDecimal represents,
// mirroring the `kind` field of component C.
type FloatingDecimalKind uint8

const (
	// FDNaN is not-a-number; payload bits are not preserved (explicit Non-goal).
	FDNaN FloatingDecimalKind = iota
	// FDNegInf is negative infinity.
	FDNegInf
	// FDPosInf is positive infinity.
	FDPosInf
	// FDNegZero is negative zero.
	FDNegZero
	// FDPosZero is positive zero.
	FDPosZero
	// FDNegative is a finite negative, nonzero value.
	FDNegative
	// FDPositive is a finite positive, nonzero value.
	FDPositive
)

// FloatingDecimal is the shortest decimal digit sequence that round-trips
// to a particular IEEE-754 value (component C). For finite nonzero values,
// the represented number is:
//
//	sign * Digits[:NDigits] * 10^(Exponent - (NDigits - 1))
//
// Digits holds ASCII digit bytes with no leading or trailing zeros (a
// single zero digit is reserved for the zero kinds, which don't use
// Digits/Exponent/NDigits at all).
type FloatingDecimal struct {
	Kind     FloatingDecimalKind
	Exponent int32
	NDigits  uint8
	Digits   [19]byte
}

// dblDecimalDig and fltDecimalDig are the C standard's DBL_DECIMAL_DIG and
// FLT_DECIMAL_DIG: the number of significant decimal digits that always
// suffices to round-trip a double or a float, and so the digit budget
// generateDigits is capped at for each.
const (
	dblDecimalDig = 17
	fltDecimalDig = 9
)

// DecomposeFloat64 classifies d and, for finite nonzero values, computes
// its shortest round-trip decimal digit sequence.
func DecomposeFloat64(d float64) FloatingDecimal {
	switch {
	case math.IsNaN(d):
		return FloatingDecimal{Kind: FDNaN}
	case math.IsInf(d, 1):
		return FloatingDecimal{Kind: FDPosInf}
	case math.IsInf(d, -1):
		return FloatingDecimal{Kind: FDNegInf}
	case d == 0:
		if math.Signbit(d) {
			return FloatingDecimal{Kind: FDNegZero}
		}
		return FloatingDecimal{Kind: FDPosZero}
	}

	fd := FloatingDecimal{}
	if d < 0 {
		fd.Kind = FDNegative
	} else {
		fd.Kind = FDPositive
	}

	n, expt := generateDigits(math.Abs(d), dblDecimalDig, fd.Digits[:])
	fd.NDigits = uint8(n)
	fd.Exponent = int32(expt)
	return fd
}

// DecomposeFloat32 is like DecomposeFloat64 but for the Float datatype.
// The value is widened to float64 (exactly, float32 being a strict subset)
// and run through the same digit generator capped at fltDecimalDig digits:
// nine significant decimal digits suffice to round-trip any float32. The
// boundary arithmetic is done at double precision, so the result is not
// always the shortest decimal that round-trips through a float32: 0.1f
// decomposes to the digits 100000001, not 1.
func DecomposeFloat32(f float32) FloatingDecimal {
	switch {
	case math.IsNaN(float64(f)):
		return FloatingDecimal{Kind: FDNaN}
	case math.IsInf(float64(f), 1):
		return FloatingDecimal{Kind: FDPosInf}
	case math.IsInf(float64(f), -1):
		return FloatingDecimal{Kind: FDNegInf}
	case f == 0:
		if math.Signbit(float64(f)) {
			return FloatingDecimal{Kind: FDNegZero}
		}
		return FloatingDecimal{Kind: FDPosZero}
	}

	fd := FloatingDecimal{}
	if f < 0 {
		fd.Kind = FDNegative
	} else {
		fd.Kind = FDPositive
	}

	mag := float64(f)
	if mag < 0 {
		mag = -mag
	}

	n, expt := generateDigits(mag, fltDecimalDig, fd.Digits[:])
	fd.NDigits = uint8(n)
	fd.Exponent = int32(expt)
	return fd
}

// generateDigits is the Dragon4 rational digit generator: find a big
// rational between 1 and 10 where d = (numer/denom) * 10^power, then
// repeatedly divide to peel off decimal digits until the remaining
// uncertainty interval (bounded by d_lower/d_upper, the distance to the
// binary values adjacent to d) shows that no more digits can change the
// value this decodes back to. d must be finite and nonzero.
//
// It writes at most maxDigits digit bytes to buf and returns the digit
// count (with trailing zeros trimmed) and the decimal power such that the
// value equals digit[0].digit[1:] * 10^expt.
func generateDigits(d float64, maxDigits int, buf []byte) (count int, expt int) {
	raw := rawSoftFloatFromFloat64(d)
	significand, exponent := raw.Significand, int(raw.Exponent)

	power := approximatePower(significand, exponent)
	isEven := significand&1 == 0
	lowerIsCloser := lowerBoundaryIsCloser(d)

	numer, denom, dLower := calculateInitialValues(significand, exponent, power, lowerIsCloser)

	var dUpper *BigNat
	if lowerIsCloser {
		// Boundaries differ: the lower one is only half as far, so widen
		// the upper one to compensate (numer/denom were already scaled by
		// the extra factor of two calculateInitialValues adds for this case).
		dUpper = dLower.Clone().ShiftLeft(1)
	} else {
		// Boundaries are the same distance; share the bigint so the
		// "multiply both" step below only happens once.
		dUpper = dLower
	}

	if withinUpper(numer, denom, dUpper, isEven) {
		expt = power
	} else {
		expt = power - 1
		numer.MultiplyU32(10)
		dLower.MultiplyU32(10)
		if dUpper != dLower {
			dUpper.MultiplyU32(10)
		}
	}

	n := emitDigits(numer, denom, dLower, dUpper, isEven, maxDigits, buf)
	for n > 1 && buf[n-1] == '0' {
		n--
	}
	return n, expt
}

// calculateInitialValues finds numer, denom, and the lower boundary delta
// such that 0.1 <= numer/denom < 1 or 1 <= numer/denom < 10, scaled by a
// common denominator chosen so every quantity is an exact integer.
func calculateInitialValues(
	significand uint64, exponent, decimalPower int, lowerIsCloser bool,
) (numer, denom, dLower *BigNat) {
	lgDenom := uint(1)
	if lowerIsCloser {
		lgDenom = 2
	}

	numer = NewBigNat()
	denom = NewBigNat()
	dLower = NewBigNat()

	switch {
	case exponent >= 0:
		dLower.SetU32(1).ShiftLeft(uint(exponent))
		numer.SetU64(significand).ShiftLeft(uint(exponent) + lgDenom)
		denom.SetPow10(decimalPower).ShiftLeft(lgDenom)
	case decimalPower >= 0:
		dLower.SetU32(1)
		numer.SetU64(significand).ShiftLeft(lgDenom)
		denom.SetPow10(decimalPower).ShiftLeft(uint(-exponent) + lgDenom)
	default:
		dLower.SetPow10(-decimalPower)
		numer = dLower.Clone().MultiplyU64(significand).ShiftLeft(lgDenom)
		denom.SetU32(1).ShiftLeft(uint(-exponent) + lgDenom)
	}

	return numer, denom, dLower
}

// emitDigits writes decimal digits of numer/denom to buf until the
// running remainder falls inside [dLower, dUpper) of a boundary, rounding
// the final digit up when the remainder sits past the midpoint. It
// returns the number of digits written.
func emitDigits(numer, denom, dLower, dUpper *BigNat, isEven bool, maxDigits int, buf []byte) int {
	length := 0
	for i := 0; i < maxDigits; i++ {
		digit := numer.DivMod(denom)
		buf[length] = byte('0' + digit)
		length++

		withinLow := withinLower(numer, dLower, isEven)
		withinHigh := withinUpper(numer, denom, dUpper, isEven)
		if !withinLow && !withinHigh {
			numer.MultiplyU32(10)
			dLower.MultiplyU32(10)
			if dUpper != dLower {
				dUpper.MultiplyU32(10)
			}
			continue
		}

		// In high only, or halfway and the remaining fraction rounds up;
		// the algorithm's invariant guarantees this never carries past '9'.
		if !withinLow || (withinHigh && PlusCompare(numer, numer, denom) >= 0) {
			buf[length-1]++
		}
		break
	}
	return length
}

func withinLower(numer, dLower *BigNat, isEven bool) bool {
	c := numer.Compare(dLower)
	if isEven {
		return c <= 0
	}
	return c < 0
}

func withinUpper(numer, denom, dUpper *BigNat, isEven bool) bool {
	c := PlusCompare(numer, dUpper, denom)
	if isEven {
		return c >= 0
	}
	return c > 0
}

// approximatePower estimates the decimal power of a value with the given
// raw (unnormalized) significand/exponent, undershooting by at most 1.
// The 0.69 fudge factor is from Robert G. Burger and R. Kent Dybvig's
// "Printing Floating-Point Numbers Quickly and Accurately", via Ryan
// Juckett's writeup of the same trick.
func approximatePower(significand uint64, exponent int) int {
	const log10_2 = 0.30102999566398119521373889472449
	msbIndex := float64(64 - bits.LeadingZeros64(significand))
	power := math.Ceil((msbIndex+float64(exponent))*log10_2 - 0.69)
	return int(power)
}

// lowerBoundaryIsCloser reports whether d's lower neighbor is only half a
// ULP away rather than the usual whole ULP: true exactly when d's
// significand is an exact power of two, except at the smallest normal
// (where the neighbor below is subnormal and equally far either way).
func lowerBoundaryIsCloser(d float64) bool {
	bits64 := math.Float64bits(d)
	mant := bits64 & ((1 << 52) - 1)
	biasedExp := (bits64 >> 52) & 0x7FF
	return biasedExp > 1 && mant == 0
}
