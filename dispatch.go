package exess

import "math"

// dispatch.go implements component N: the generic, Tag-indexed entry
// points that let a caller hold a Tag at runtime (read from a schema, a
// column type, a wire message) and read/write/compare a value without a
// a type switch of their own. Every branch below delegates to the typed
// codec built for that tag elsewhere in this package; this file adds no
// parsing or formatting logic of its own.

// Value is a tagged union holding exactly one datatype's in-memory
// representation, selected by Tag. Integer tags narrower than 64 bits
// still use I64/U64 (sign- or zero-extended); Bin is only meaningful for
// Hex and Base64.
type Value struct {
	Tag Tag

	Bool bool
	I64  int64
	U64  uint64
	F64  float64
	F32  float32
	Dur  Duration
	DT   DateTime
	Tm   Time
	Dt   Date
	Bin  []byte
}

// ReadValue parses s as a lexical value of the given tag. The
// ReadCount of the result is the number of input bytes consumed;
// WriteCount is the size of the decoded value (ValueSize(tag) for every
// bounded tag, the decoded byte count for Hex/Base64).
func ReadValue(tag Tag, s string, out []byte) (Value, VariableResult) {
	v := Value{Tag: tag}
	switch tag {
	case Boolean:
		b, r := ReadBoolean(s)
		v.Bool = b
		return v, variable(r.Status, r.Count, 1)
	case Decimal:
		f, r := ReadDecimal(s)
		v.F64 = f
		return v, variable(r.Status, r.Count, 8)
	case Double:
		f, r := ReadDouble(s)
		v.F64 = f
		return v, variable(r.Status, r.Count, 8)
	case Float:
		f, r := ReadFloat(s)
		v.F32 = f
		return v, variable(r.Status, r.Count, 4)
	case Integer:
		n, r := ReadInteger(s)
		v.I64 = n
		return v, variable(r.Status, r.Count, 8)
	case NonPositiveInteger:
		n, r := ReadNonPositiveInteger(s)
		v.I64 = n
		return v, variable(r.Status, r.Count, 8)
	case NegativeInteger:
		n, r := ReadNegativeInteger(s)
		v.I64 = n
		return v, variable(r.Status, r.Count, 8)
	case Long:
		n, r := ReadLong(s)
		v.I64 = n
		return v, variable(r.Status, r.Count, 8)
	case Int:
		n, r := ReadInt(s)
		v.I64 = int64(n)
		return v, variable(r.Status, r.Count, 4)
	case Short:
		n, r := ReadShort(s)
		v.I64 = int64(n)
		return v, variable(r.Status, r.Count, 2)
	case Byte:
		n, r := ReadByte(s)
		v.I64 = int64(n)
		return v, variable(r.Status, r.Count, 1)
	case NonNegativeInteger:
		n, r := ReadNonNegativeInteger(s)
		v.U64 = n
		return v, variable(r.Status, r.Count, 8)
	case ULong:
		n, r := ReadULong(s)
		v.U64 = n
		return v, variable(r.Status, r.Count, 8)
	case UInt:
		n, r := ReadUInt(s)
		v.U64 = uint64(n)
		return v, variable(r.Status, r.Count, 4)
	case UShort:
		n, r := ReadUShort(s)
		v.U64 = uint64(n)
		return v, variable(r.Status, r.Count, 2)
	case UByte:
		n, r := ReadUByte(s)
		v.U64 = uint64(n)
		return v, variable(r.Status, r.Count, 1)
	case PositiveInteger:
		n, r := ReadPositiveInteger(s)
		v.U64 = n
		return v, variable(r.Status, r.Count, 8)
	case Duration:
		d, r := ReadDuration(s)
		v.Dur = d
		return v, variable(r.Status, r.Count, 12)
	case DateTime:
		dt, r := ReadDateTime(s)
		v.DT = dt
		return v, variable(r.Status, r.Count, 12)
	case Time:
		tm, r := ReadTime(s)
		v.Tm = tm
		return v, variable(r.Status, r.Count, 8)
	case Date:
		d, r := ReadDate(s)
		v.Dt = d
		return v, variable(r.Status, r.Count, 8)
	case Hex:
		r := ReadHex(s, out)
		v.Bin = out
		return v, r
	case Base64:
		r := ReadBase64(s, out)
		v.Bin = out
		return v, r
	default:
		return v, variable(Unsupported, 0, 0)
	}
}

// WriteValue formats v in its tag's canonical lexical form. A nil
// buf only measures the required length.
func WriteValue(v Value, buf []byte) VariableResult {
	var r FixedResult
	switch v.Tag {
	case Boolean:
		r = WriteBoolean(v.Bool, buf)
	case Decimal:
		r = WriteDecimal(v.F64, buf)
	case Double:
		r = WriteDouble(v.F64, buf)
	case Float:
		r = WriteFloat(v.F32, buf)
	case Integer, NonPositiveInteger, NegativeInteger, Long:
		r = WriteLong(v.I64, buf)
	case Int:
		r = WriteInt(int32(v.I64), buf)
	case Short:
		r = WriteShort(int16(v.I64), buf)
	case Byte:
		r = WriteByte(int8(v.I64), buf)
	case NonNegativeInteger, ULong, PositiveInteger:
		r = WriteULong(v.U64, buf)
	case UInt:
		r = WriteUInt(uint32(v.U64), buf)
	case UShort:
		r = WriteUShort(uint16(v.U64), buf)
	case UByte:
		r = WriteUByte(uint8(v.U64), buf)
	case Duration:
		r = WriteDuration(v.Dur, buf)
	case DateTime:
		r = WriteDateTime(v.DT, buf)
	case Time:
		r = WriteTime(v.Tm, buf)
	case Date:
		r = WriteDate(v.Dt, buf)
	case Hex:
		return variableFromFixed(WriteHex(v.Bin, buf), len(v.Bin))
	case Base64:
		return variableFromFixed(WriteBase64(v.Bin, buf), len(v.Bin))
	default:
		return variable(Unsupported, 0, 0)
	}
	return variableFromFixed(r, 0)
}

func variableFromFixed(r FixedResult, readCount int) VariableResult {
	return variable(r.Status, readCount, r.Count)
}

// WriteCanonical is WriteValue under a different name for callers that
// want to stress the fact that the result is the shortest-round-trip
// canonical spelling: since ReadValue already decodes into each
// tag's canonical in-memory form, there is no separate "canonicalize
// after the fact" step to perform here.
func WriteCanonical(v Value, buf []byte) VariableResult {
	return WriteValue(v, buf)
}

// CompareValue implements generic comparison: when the two values don't
// share a tag, the result is the tag names compared lexicographically
// (never a strict result, since values of different datatypes are never
// known-ordered the way two values of the same datatype are), otherwise
// the per-type comparator. NaN is unordered, matching IEEE 754 and XML
// Schema's float/double comparison rules, and is reported as Unsupported
// rather than forced into a five-valued Order it doesn't have.
func CompareValue(a, b Value) (Order, Status) {
	if a.Tag != b.Tag {
		switch {
		case a.Tag.String() < b.Tag.String():
			return MaybeLess, Success
		default:
			return MaybeGreater, Success
		}
	}

	switch a.Tag {
	case Boolean:
		return compareBool(a.Bool, b.Bool), Success
	case Decimal, Double:
		return compareFloat64(a.F64, b.F64)
	case Float:
		return compareFloat64(float64(a.F32), float64(b.F32))
	case Integer, NonPositiveInteger, NegativeInteger, Long, Int, Short, Byte:
		return compareInt64(a.I64, b.I64), Success
	case NonNegativeInteger, ULong, UInt, UShort, UByte, PositiveInteger:
		return compareUint64(a.U64, b.U64), Success
	case Duration:
		return orderFromInt(CompareDuration(a.Dur, b.Dur)), Success
	case DateTime:
		return CompareDateTime(a.DT, b.DT), Success
	case Time:
		return CompareTime(a.Tm, b.Tm), Success
	case Date:
		return CompareDate(a.Dt, b.Dt), Success
	default:
		return OrderEqual, Unsupported
	}
}

func compareBool(a, b bool) Order {
	switch {
	case a == b:
		return OrderEqual
	case !a:
		return StrictlyLess
	default:
		return StrictlyGreater
	}
}

func compareInt64(a, b int64) Order {
	switch {
	case a < b:
		return StrictlyLess
	case a > b:
		return StrictlyGreater
	default:
		return OrderEqual
	}
}

func compareUint64(a, b uint64) Order {
	switch {
	case a < b:
		return StrictlyLess
	case a > b:
		return StrictlyGreater
	default:
		return OrderEqual
	}
}

func compareFloat64(a, b float64) (Order, Status) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return OrderEqual, Unsupported
	}
	switch {
	case a < b:
		return StrictlyLess, Success
	case a > b:
		return StrictlyGreater, Success
	default:
		return OrderEqual, Success
	}
}

func orderFromInt(c int) Order {
	switch {
	case c < 0:
		return StrictlyLess
	case c > 0:
		return StrictlyGreater
	default:
		return OrderEqual
	}
}
