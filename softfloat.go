package exess

import (
	"math"
	"math/big"
	"math/bits"
)

// SoftFloat is an unnormalized binary floating-point value with a 64-bit
// significand (component B): value = significand * 2^exponent. It is
// "normalized" when the significand's high bit (bit 63) is set.
//
// The algorithm this is modeled on uses a hand-rolled cached-power-of-ten
// table computed once and consulted by the fast paths in DecimalParse and
// FloatingDecimal. This rewrite builds that table at package init time from
// math/big.Float at generous precision (the same substitution of a growable
// bignum for a fixed-size original that BigNat makes extends naturally to
// deriving this table instead of hand-transcribing ~87 magic 64-bit
// constants that could not be checked against a compiler here). The
// resulting table has the same shape as the original: powers of ten from
// 10^-348 to 10^340 at step 8, each already rounded to the nearest 64-bit
// normalized significand.
type SoftFloat struct {
	Significand uint64
	Exponent    int32
}

// Normalize shifts f's significand left until its high bit is set,
// decrementing the exponent to compensate, and returns f.
func (f *SoftFloat) Normalize() *SoftFloat {
	if f.Significand == 0 {
		return f
	}
	shift := bits.LeadingZeros64(f.Significand)
	f.Significand <<= uint(shift)
	f.Exponent -= int32(shift)
	return f
}

// Multiply returns the normalized product of two normalized SoftFloats,
// using a 64x64->128 multiply and rounding the top 64 bits to nearest
// (adding 1<<63 before truncating the low word).
func (f SoftFloat) Multiply(o SoftFloat) SoftFloat {
	hi, lo := bits.Mul64(f.Significand, o.Significand)
	// Round to nearest: add 1<<63 (half an ULP of the 128-bit product's
	// high word) and propagate the carry into hi.
	var carry uint64
	lo, carry = bits.Add64(lo, 1<<63, 0)
	hi += carry
	result := SoftFloat{Significand: hi, Exponent: f.Exponent + o.Exponent + 64}
	return *result.Normalize()
}

// softFloatFromFloat64 decomposes a finite, nonzero double into a
// normalized SoftFloat representing its exact value (IEEE-754 doubles are
// always exactly representable this way, since the significand fits in 64
// bits after normalization).
func softFloatFromFloat64(d float64) SoftFloat {
	f := rawSoftFloatFromFloat64(d)
	return *f.Normalize()
}

// rawSoftFloatFromFloat64 decomposes a finite, nonzero double into its
// exact (significand, exponent) pair straight from the IEEE-754 bit
// layout, without shifting the significand's leading set bit up to
// position 63 the way Normalize does. FloatingDecimal's digit generator
// needs this unnormalized pair directly, since its boundary arithmetic is
// defined in terms of the value's actual bit-for-bit exponent.
func rawSoftFloatFromFloat64(d float64) SoftFloat {
	bits64 := math.Float64bits(d)
	rawExp := int32((bits64 >> 52) & 0x7FF)
	frac := bits64 & ((1 << 52) - 1)

	if rawExp == 0 {
		// Subnormal: no implicit leading bit.
		return SoftFloat{Significand: frac, Exponent: -1074}
	}
	return SoftFloat{Significand: frac | (1 << 52), Exponent: rawExp - 1075}
}

// toFloat64 converts a normalized SoftFloat back to the nearest double,
// correctly rounded (including subnormal results and overflow to
// infinity). The exact value significand*2^exponent always fits a 64-bit
// mantissa, so representing it as a big.Float and asking for its nearest
// float64 delegates the correctly-rounded binary conversion to math/big
// rather than re-deriving round-to-nearest-even by hand.
func (f SoftFloat) toFloat64() float64 {
	if f.Significand == 0 {
		return 0
	}
	mant := new(big.Float).SetPrec(64).SetUint64(f.Significand)
	exact := new(big.Float).SetPrec(64).SetMantExp(mant, int(f.Exponent))
	v, _ := exact.Float64()
	return v
}

const pow10Step = 8
const pow10MinExp = -348
const pow10MaxExp = 340

var pow10Table = func() map[int]SoftFloat {
	table := make(map[int]SoftFloat, (pow10MaxExp-pow10MinExp)/pow10Step+1)
	for e := pow10MinExp; e <= pow10MaxExp; e += pow10Step {
		table[e] = computePow10(e)
	}
	return table
}()

// computePow10 derives the normalized SoftFloat nearest to 10^e using
// math/big.Float at high working precision, so that the only rounding
// error introduced is the unavoidable final rounding to 64 significant
// bits (the same guarantee the original's hand-built table provides).
func computePow10(e int) SoftFloat {
	const workingPrec = 200

	var mag *big.Int
	if e >= 0 {
		mag = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(e)), nil)
	} else {
		mag = new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(-e)), nil)
	}

	val := new(big.Float).SetPrec(workingPrec).SetInt(mag)
	if e < 0 {
		one := new(big.Float).SetPrec(workingPrec).SetInt64(1)
		val.Quo(one, val)
	}

	mant := new(big.Float).SetPrec(workingPrec)
	binExp := val.MantExp(mant) // mant in [0.5, 1), val = mant * 2^binExp

	shifted := new(big.Float).SetPrec(workingPrec).SetMantExp(mant, 64) // mant * 2^64
	rounded := new(big.Float).SetPrec(workingPrec).Add(shifted, big.NewFloat(0.5))

	sig := new(big.Int)
	rounded.Int(sig)

	significand := sig.Uint64()
	exponent := int32(binExp - 64)

	f := SoftFloat{Significand: significand, Exponent: exponent}
	return *f.Normalize()
}

// cachedPow10Floor returns the tabulated SoftFloat for the largest table
// entry 10^cachedExp with cachedExp <= targetExp (table entries sit at
// pow10MinExp + k*pow10Step), or ok=false if targetExp lies outside
// [pow10MinExp, pow10MaxExp]. It also reports that entry's decimal exponent, matching the "cached power at or below
// target, fixed up by an exact multiplication" fast path this is modeled on.
func cachedPow10Floor(targetExp int) (f SoftFloat, cachedExp int, ok bool) {
	if targetExp < pow10MinExp || targetExp > pow10MaxExp {
		return SoftFloat{}, 0, false
	}
	cachedExp = (targetExp - pow10MinExp) / pow10Step * pow10Step + pow10MinExp
	return pow10Table[cachedExp], cachedExp, true
}

// exactPow10Float returns 10^e as a float64: exactly, from float64pow10,
// for e in [0,22], the classic exact-power fast path; any other e goes
// through math.Pow.
func exactPow10Float(e int) float64 {
	switch {
	case e >= 0 && e <= 22:
		return float64pow10[e]
	default:
		return math.Pow(10, float64(e))
	}
}

// float64pow10 holds 10^0..10^22, every one of which is exactly
// representable as a float64, so multiplying or dividing by one of these
// introduces no rounding error (the classic fast-path table used by every
// strtod implementation, including Go's own strconv).
var float64pow10 = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10,
	1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
}
