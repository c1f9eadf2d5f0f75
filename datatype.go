package exess

import "fmt"

// Tag is the closed datatype enumeration dispatch.go and coerce.go switch
// on: an exhaustive enum with a String method, so that adding a new
// datatype forces every switch over Tag to be revisited.
type Tag uint8

const (
	// Nothing is returned by generic operations that have no datatype to
	// report; it sorts before every real tag.
	Nothing Tag = iota

	Boolean
	Decimal
	Double
	Float
	Integer
	NonPositiveInteger
	NegativeInteger
	Long
	Int
	Short
	Byte
	NonNegativeInteger
	ULong
	UInt
	UShort
	UByte
	PositiveInteger
	Duration
	DateTime
	Time
	Date
	Hex
	Base64
)

// tagInfo is one row of the datatype registry (component M): the
// datatype's canonical URI suffix, whether it has a compile-time bounded
// canonical-string length, that maximum length (0 if unbounded), and the
// size in bytes ReadValue reports as WriteCount for a decoded value (0 for
// the variable-length binary types). For Duration, DateTime and Time that
// size is smaller than the Go struct this package decodes into.
type tagInfo struct {
	name       string
	bounded    bool
	maxLength  int
	valueBytes int
}

// xsdNamespace is the fixed prefix every canonical datatype URI shares;
// Tag.URI and TagForURI special-case it so lookups don't need to scan the
// full string for the common case.
const xsdNamespace = "http://www.w3.org/2001/XMLSchema#"

var registry = [...]tagInfo{
	Nothing:            {"", false, 0, 0},
	Boolean:            {"boolean", true, 5, 1},
	Decimal:            {"decimal", true, 327, 8},
	Double:             {"double", true, 24, 8},
	Float:              {"float", true, 15, 4},
	Integer:            {"integer", true, 20, 8},
	NonPositiveInteger: {"nonPositiveInteger", true, 20, 8},
	NegativeInteger:    {"negativeInteger", true, 20, 8},
	Long:               {"long", true, 20, 8},
	Int:                {"int", true, 11, 4},
	Short:              {"short", true, 6, 2},
	Byte:               {"byte", true, 4, 1},
	NonNegativeInteger: {"nonNegativeInteger", true, 20, 8},
	ULong:              {"unsignedLong", true, 20, 8},
	UInt:               {"unsignedInt", true, 10, 4},
	UShort:             {"unsignedShort", true, 5, 2},
	UByte:              {"unsignedByte", true, 3, 1},
	PositiveInteger:    {"positiveInteger", true, 20, 8},
	Duration:           {"duration", true, 41, 12},
	DateTime:           {"dateTime", true, 37, 12},
	Time:               {"time", true, 24, 8},
	Date:               {"date", true, 18, 8},
	Hex:                {"hexBinary", false, 0, 0},
	Base64:             {"base64Binary", false, 0, 0},
}

// String returns the short XSD name of t (e.g. "unsignedLong"), or a
// placeholder for Nothing and any out-of-range value.
func (t Tag) String() string {
	if int(t) < len(registry) && registry[t].name != "" {
		return registry[t].name
	}
	if t == Nothing {
		return "<nothing>"
	}
	return fmt.Sprintf("<unknown tag %d>", uint8(t))
}

// URI returns t's canonical XML Schema URI (e.g.
// "http://www.w3.org/2001/XMLSchema#unsignedLong").
func (t Tag) URI() string {
	if t == Nothing || int(t) >= len(registry) {
		return ""
	}
	return xsdNamespace + registry[t].name
}

// Bounded reports whether t has a compile-time maximum canonical-string
// length (every tag except Hex and Base64).
func (t Tag) Bounded() bool {
	return int(t) < len(registry) && registry[t].bounded
}

// MaxLength returns t's maximum canonical-string length, or 0 if t is
// unbounded (Hex, Base64) or invalid.
func (t Tag) MaxLength() int {
	if int(t) >= len(registry) {
		return 0
	}
	return registry[t].maxLength
}

// ValueSize returns t's value size from the registry (the WriteCount
// ReadValue reports for t), or 0 for Nothing and the variable-length binary
// types. For Duration, DateTime and Time it is smaller than the size of the
// corresponding Go struct.
func (t Tag) ValueSize() int {
	if int(t) >= len(registry) {
		return 0
	}
	return registry[t].valueBytes
}

// TagForURI looks up the Tag whose canonical URI is uri, using the
// fast path: check the common namespace prefix once,
// then compare only the suffix.
func TagForURI(uri string) (Tag, bool) {
	if len(uri) > len(xsdNamespace) && uri[:len(xsdNamespace)] == xsdNamespace {
		suffix := uri[len(xsdNamespace):]
		for i := 1; i < len(registry); i++ {
			if registry[i].name == suffix {
				return Tag(i), true
			}
		}
		return Nothing, false
	}
	// Full linear scan over every entry's complete URI. Each of those starts
	// with xsdNamespace, so this finds nothing the prefix check above missed.
	for i := 1; i < len(registry); i++ {
		if xsdNamespace+registry[i].name == uri {
			return Tag(i), true
		}
	}
	return Nothing, false
}

// isSignedLargeInteger reports whether t is one of the two "large integer"
// sub-tags that share Long's in-memory representation but restrict its
// sign: NonPositiveInteger, NegativeInteger. Integer itself carries
// no extra sign restriction beyond Long's own range.
func isSignedLargeInteger(t Tag) bool {
	return t == NonPositiveInteger || t == NegativeInteger
}

// isUnsignedLargeInteger reports whether t is one of the "large integer"
// sub-tags that share ULong's in-memory representation but restrict its
// sign: NonNegativeInteger, PositiveInteger.
func isUnsignedLargeInteger(t Tag) bool {
	return t == NonNegativeInteger || t == PositiveInteger
}
