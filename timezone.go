package exess

// timezone.go implements component H: the shared timezone representation
// used by Time, Date, and DateTime. A timezone offset is stored as a
// signed count of 15-minute units in [-56, 56] (±14:00), with the sentinel
// value localTimezone meaning "no timezone in the lexical form".

// TimeZone is a quarter-hour-resolution UTC offset, or the sentinel value
// returned by ParseTimeZone when the lexical form carried no timezone at
// all. This mirrors original_source's int8_t "zone" field.
type TimeZone int8

// localTimezone is the sentinel reported when no timezone was present in
// the input; it is not a valid offset (±14:00 is the extreme legal value).
const localTimezone TimeZone = 127

// HasZone reports whether z represents an explicit offset rather than the
// "no timezone" sentinel.
func (z TimeZone) HasZone() bool {
	return z != localTimezone
}

// Minutes returns z's offset from UTC in minutes. The result is undefined
// if !z.HasZone().
func (z TimeZone) Minutes() int {
	return int(z) * 15
}

// ParseTimeZone parses a trailing timezone lexical form at s[i:]: either
// "Z", or "+HH:MM"/"-HH:MM" with MM restricted to :00, :15, :30, :45.
// It returns the parsed zone, the new position, and whether a timezone
// was present at all (absent is not an error; callers that require one
// check present themselves).
func ParseTimeZone(s string, i int) (zone TimeZone, newPos int, present bool, failure Status) {
	if i >= len(s) {
		return localTimezone, i, false, Success
	}
	if s[i] == 'Z' {
		return 0, i + 1, true, Success
	}
	if s[i] != '+' && s[i] != '-' {
		return localTimezone, i, false, Success
	}

	neg := s[i] == '-'
	hh, ok := parseFixedWidth(s, i+1, 2)
	if !ok {
		return 0, i, true, ExpectedDigit
	}
	if i+3 >= len(s) || s[i+3] != ':' {
		return 0, i, true, ExpectedColon
	}
	mm, ok := parseFixedWidth(s, i+4, 2)
	if !ok {
		return 0, i, true, ExpectedDigit
	}
	if mm%15 != 0 {
		return 0, i, true, Unsupported
	}
	if hh > 14 || (hh == 14 && mm != 0) {
		return 0, i, true, OutOfRange
	}

	units := (hh*60 + mm) / 15
	if neg {
		units = -units
	}
	return TimeZone(units), i + 6, true, Success
}

// WriteTimeZone formats z into buf starting at position i ("Z" for UTC,
// "+HH:MM"/"-HH:MM" otherwise), or writes nothing if z is the "no
// timezone" sentinel. It returns the new position.
func WriteTimeZone(z TimeZone, buf []byte, i int) int {
	if !z.HasZone() {
		return i
	}
	if z == 0 {
		buf[i] = 'Z'
		return i + 1
	}

	units := int(z)
	if units < 0 {
		buf[i] = '-'
		units = -units
	} else {
		buf[i] = '+'
	}
	i++
	hh := (units * 15) / 60
	mm := (units * 15) % 60
	writeFixedWidth(buf[i:i+2], hh, 2)
	buf[i+2] = ':'
	writeFixedWidth(buf[i+3:i+5], mm, 2)
	return i + 5
}

// TimeZoneLen returns the number of bytes WriteTimeZone would write for z.
func TimeZoneLen(z TimeZone) int {
	if !z.HasZone() {
		return 0
	}
	if z == 0 {
		return 1
	}
	return 6
}
