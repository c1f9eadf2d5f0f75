package exess

import "math"

// coerce.go implements component O: converting a decoded Value from one
// datatype to another. Every conversion that could lose information is
// gated behind a bit in CoercionPolicy; the caller opts in to exactly the
// kinds of loss it can tolerate.

// CoercionPolicy is a bitmask of the kinds of information loss a caller
// permits CoerceValue to perform.
type CoercionPolicy uint8

const (
	// ReducePrecision permits a conversion that can't represent every value
	// of the source type exactly (e.g. double -> float, or a large integer
	// -> double beyond its 53-bit exact-integer range).
	ReducePrecision CoercionPolicy = 1 << iota
	// Round permits a conversion that must round a fractional value to fit
	// an integer target.
	Round
	// Truncate permits a conversion that discards information outright
	// rather than rounding it (dateTime -> date or time, a number other than
	// 0 or 1 -> boolean).
	Truncate
)

// Allows reports whether p includes flag.
func (p CoercionPolicy) Allows(flag CoercionPolicy) bool {
	return p&flag != 0
}

// maxFloatExactInt and maxDoubleExactInt are the magnitudes up to which
// every integer is exactly representable in each IEEE-754 format (2^24 for
// float32, 2^53 for float64); converting an integer whose magnitude
// exceeds the target's bound always requires ReducePrecision.
const (
	maxFloatExactInt  = 1 << 24
	maxDoubleExactInt = 1 << 53
)

func isSignedIntTag(t Tag) bool {
	switch t {
	case Integer, NonPositiveInteger, NegativeInteger, Long, Int, Short, Byte:
		return true
	}
	return false
}

func isUnsignedIntTag(t Tag) bool {
	switch t {
	case NonNegativeInteger, ULong, UInt, UShort, UByte, PositiveInteger:
		return true
	}
	return false
}

func isFloatTag(t Tag) bool {
	return t == Decimal || t == Double || t == Float
}

func isNumericTag(t Tag) bool {
	return isSignedIntTag(t) || isUnsignedIntTag(t) || isFloatTag(t)
}

// intTagBounds returns outTag's representable range: either the signed
// range [smin, smax], or (when signed is false) the unsigned range
// [umin, umax].
func intTagBounds(t Tag) (signed bool, smin, smax int64, umin, umax uint64) {
	switch t {
	case Integer, Long:
		return true, math.MinInt64, math.MaxInt64, 0, 0
	case NonPositiveInteger:
		return true, math.MinInt64, 0, 0, 0
	case NegativeInteger:
		return true, math.MinInt64, -1, 0, 0
	case Int:
		return true, math.MinInt32, math.MaxInt32, 0, 0
	case Short:
		return true, math.MinInt16, math.MaxInt16, 0, 0
	case Byte:
		return true, math.MinInt8, math.MaxInt8, 0, 0
	case NonNegativeInteger, ULong:
		return false, 0, 0, 0, math.MaxUint64
	case PositiveInteger:
		return false, 0, 0, 1, math.MaxUint64
	case UInt:
		return false, 0, 0, 0, math.MaxUint32
	case UShort:
		return false, 0, 0, 0, math.MaxUint16
	case UByte:
		return false, 0, 0, 0, math.MaxUint8
	}
	return true, 0, 0, 0, 0
}

// absI64 returns the magnitude of v as a uint64, without overflowing for
// v == math.MinInt64.
func absI64(v int64) uint64 {
	if v >= 0 {
		return uint64(v)
	}
	return uint64(-(v + 1)) + 1
}

func numericToFloat64(v Value) float64 {
	switch {
	case v.Tag == Decimal || v.Tag == Double:
		return v.F64
	case v.Tag == Float:
		return float64(v.F32)
	case isSignedIntTag(v.Tag):
		return float64(v.I64)
	case isUnsignedIntTag(v.Tag):
		return float64(v.U64)
	}
	return 0
}

func numericIsNonzero(v Value) bool {
	switch {
	case isFloatTag(v.Tag):
		return numericToFloat64(v) != 0
	case isSignedIntTag(v.Tag):
		return v.I64 != 0
	default:
		return v.U64 != 0
	}
}

func integerMagnitudeExceeds(v Value, limit int64) bool {
	switch {
	case isSignedIntTag(v.Tag):
		return absI64(v.I64) > uint64(limit)
	case isUnsignedIntTag(v.Tag):
		return v.U64 > uint64(limit)
	}
	return false
}

// CoerceValue converts in (whose Tag must match its populated field) to
// outTag, applying policy to decide whether a lossy conversion is allowed.
// Same-tag coercion is always a no-op copy.
func CoerceValue(policy CoercionPolicy, in Value, outTag Tag) (Value, Status) {
	if in.Tag == outTag {
		return in, Success
	}

	if (in.Tag == Hex && outTag == Base64) || (in.Tag == Base64 && outTag == Hex) {
		return Value{Tag: outTag, Bin: in.Bin}, Success
	}

	if isNumericTag(in.Tag) && isNumericTag(outTag) {
		return coerceNumeric(policy, in, outTag)
	}

	if isNumericTag(in.Tag) && outTag == Boolean {
		f := numericToFloat64(in)
		if f != 0 && f != 1 && !policy.Allows(Truncate) {
			return Value{}, WouldTruncate
		}
		return Value{Tag: Boolean, Bool: numericIsNonzero(in)}, Success
	}

	if in.Tag == DateTime && (outTag == Time || outTag == Date) {
		if !policy.Allows(Truncate) {
			return Value{}, WouldTruncate
		}
		if outTag == Time {
			return Value{Tag: Time, Tm: Time{
				Hour: in.DT.Hour, Minute: in.DT.Minute, Second: in.DT.Second,
				Nanosecond: in.DT.Nanosecond, Zone: in.DT.Zone,
			}}, Success
		}
		return Value{Tag: Date, Dt: Date{Year: in.DT.Year, Month: in.DT.Month, Day: in.DT.Day, Zone: in.DT.Zone}}, Success
	}

	return Value{}, Unsupported
}

func coerceNumeric(policy CoercionPolicy, in Value, outTag Tag) (Value, Status) {
	if isFloatTag(outTag) {
		if isSignedIntTag(in.Tag) || isUnsignedIntTag(in.Tag) {
			limit := int64(maxDoubleExactInt)
			if outTag == Float {
				limit = maxFloatExactInt
			}
			if integerMagnitudeExceeds(in, limit) && !policy.Allows(ReducePrecision) {
				return Value{}, WouldReducePrecision
			}
		}
		if in.Tag == Double && outTag == Float && !policy.Allows(ReducePrecision) {
			return Value{}, WouldReducePrecision
		}

		f := numericToFloat64(in)
		if outTag == Float {
			return Value{Tag: Float, F32: float32(f)}, Success
		}
		return Value{Tag: outTag, F64: f}, Success
	}

	if isFloatTag(in.Tag) {
		f := numericToFloat64(in)
		if f != math.Trunc(f) {
			if !policy.Allows(Round) {
				return Value{}, WouldRound
			}
			f = math.Round(f)
		}
		return intFromFloat(f, outTag)
	}

	return intFromInt(in, outTag)
}

func intFromFloat(f float64, outTag Tag) (Value, Status) {
	signed, smin, smax, umin, umax := intTagBounds(outTag)
	if signed {
		if f < float64(smin) || f > float64(smax) {
			return Value{}, OutOfRange
		}
		return Value{Tag: outTag, I64: int64(f)}, Success
	}
	if f < 0 || f > float64(umax) {
		return Value{}, OutOfRange
	}
	uv := uint64(f)
	if uv < umin {
		return Value{}, OutOfRange
	}
	return Value{Tag: outTag, U64: uv}, Success
}

func intFromInt(in Value, outTag Tag) (Value, Status) {
	signed, smin, smax, umin, umax := intTagBounds(outTag)

	if isSignedIntTag(in.Tag) {
		v := in.I64
		if signed {
			if v < smin || v > smax {
				return Value{}, OutOfRange
			}
			return Value{Tag: outTag, I64: v}, Success
		}
		if v < 0 {
			return Value{}, OutOfRange
		}
		uv := uint64(v)
		if uv < umin || uv > umax {
			return Value{}, OutOfRange
		}
		return Value{Tag: outTag, U64: uv}, Success
	}

	v := in.U64
	if signed {
		if smax < 0 || v > uint64(smax) {
			return Value{}, OutOfRange
		}
		return Value{Tag: outTag, I64: int64(v)}, Success
	}
	if v < umin || v > umax {
		return Value{}, OutOfRange
	}
	return Value{Tag: outTag, U64: v}, Success
}
