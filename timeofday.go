package exess

// timeofday.go implements component J: xsd:time, HH:MM:SS with an optional
// fractional-second suffix and an optional trailing timezone. Hour
// 24 is accepted only as the special midnight spelling "24:00:00".

// Time is a time-of-day value with nanosecond resolution.
type Time struct {
	Hour       uint8 // 0-24; 24 only valid with Minute==Second==Nanosecond==0
	Minute     uint8
	Second     uint8
	Nanosecond uint32
	Zone       TimeZone
}

// ReadTime parses an xsd:time lexical value: HH:MM:SS[.fffffffff] with an
// optional trailing timezone.
func ReadTime(s string) (Time, FixedResult) {
	start := skipWhitespace(s, 0)
	tm, i, status := readTimeCore(s, start)
	if status != Success {
		return Time{}, fixed(status, i)
	}

	zone, newPos, _, zstatus := ParseTimeZone(s, i)
	if zstatus != Success {
		return Time{}, fixed(zstatus, newPos)
	}
	tm.Zone = zone

	end, ok := skipTrailingWhitespace(s, newPos)
	if !ok {
		return Time{}, fixed(ExpectedEnd, newPos)
	}
	return tm, fixed(Success, end)
}

// readTimeCore parses the HH:MM:SS[.fffffffff] portion shared by ReadTime
// and ReadDateTime, starting at s[i:]. It does not consume a timezone.
func readTimeCore(s string, i int) (Time, int, Status) {
	hour, ok := parseFixedWidth(s, i, 2)
	if !ok {
		return Time{}, i, ExpectedDigit
	}
	i += 2
	if hour > 24 {
		return Time{}, i - 2, OutOfRange
	}
	if i >= len(s) || s[i] != ':' {
		return Time{}, i, ExpectedColon
	}
	i++

	minute, ok := parseFixedWidth(s, i, 2)
	if !ok {
		return Time{}, i, ExpectedDigit
	}
	i += 2
	if minute > 59 {
		return Time{}, i - 2, OutOfRange
	}
	if i >= len(s) || s[i] != ':' {
		return Time{}, i, ExpectedColon
	}
	i++

	second, ok := parseFixedWidth(s, i, 2)
	if !ok {
		return Time{}, i, ExpectedDigit
	}
	i += 2
	if second > 59 {
		return Time{}, i - 2, OutOfRange
	}

	var nanos uint32
	if i < len(s) && s[i] == '.' {
		j := i + 1
		fracStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == fracStart {
			return Time{}, i, ExpectedDigit
		}
		nanos = fracToNanos(s[fracStart:j])
		i = j
	}

	if hour == 24 && (minute != 0 || second != 0 || nanos != 0) {
		return Time{}, i, BadValue
	}

	return Time{
		Hour:       uint8(hour),
		Minute:     uint8(minute),
		Second:     uint8(second),
		Nanosecond: nanos,
	}, i, Success
}

// fracToNanos converts a fractional-second digit string (after the '.',
// any length) to nanoseconds, truncating digits beyond the ninth.
func fracToNanos(digits string) uint32 {
	var n uint32
	for k := 0; k < 9; k++ {
		n *= 10
		if k < len(digits) {
			n += uint32(digits[k] - '0')
		}
	}
	return n
}

// WriteTime formats tm in xsd:time canonical form: HH:MM:SS, with a
// fractional-second suffix only if Nanosecond != 0, plus its timezone if
// present.
func WriteTime(tm Time, buf []byte) FixedResult {
	n := timeCoreLen(tm) + TimeZoneLen(tm.Zone)
	if buf == nil {
		return fixed(Success, n)
	}
	if len(buf) < n {
		return fixed(NoSpace, 0)
	}
	i := writeTimeCore(tm, buf, 0)
	i = WriteTimeZone(tm.Zone, buf, i)
	return fixed(Success, i)
}

func timeCoreLen(tm Time) int {
	n := 8 // "HH:MM:SS"
	if tm.Nanosecond != 0 {
		n += 1 + nanoDigits(tm.Nanosecond)
	}
	return n
}

// nanoDigits returns the number of fractional digits needed to represent n
// nanoseconds with no trailing zeros (canonical form omits them).
func nanoDigits(n uint32) int {
	digits := 9
	for digits > 1 && n%10 == 0 {
		n /= 10
		digits--
	}
	return digits
}

func writeTimeCore(tm Time, buf []byte, i int) int {
	writeFixedWidth(buf[i:i+2], int(tm.Hour), 2)
	i += 2
	buf[i] = ':'
	i++
	writeFixedWidth(buf[i:i+2], int(tm.Minute), 2)
	i += 2
	buf[i] = ':'
	i++
	writeFixedWidth(buf[i:i+2], int(tm.Second), 2)
	i += 2

	if tm.Nanosecond != 0 {
		buf[i] = '.'
		i++
		d := nanoDigits(tm.Nanosecond)
		full := [9]byte{}
		writeFixedWidth(full[:], int(tm.Nanosecond), 9)
		i += copy(buf[i:], full[:d])
	}
	return i
}
