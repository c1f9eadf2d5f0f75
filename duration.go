package exess

import (
	"math"
	"strconv"
)

// duration.go implements component L: xsd:duration, an ISO-8601 duration
// literal decomposed into a calendar part (years, months) and an exact
// part (days, hours, minutes, seconds, nanoseconds). The two parts are
// kept separate because a month has no fixed length in seconds; DateTime
// addition (component K) consumes them independently.

// Duration is a signed ISO-8601 duration. Months is years*12+months; the
// exact part is carried as Seconds (which already folds in days*86400,
// hours*3600, minutes*60) plus a Nanoseconds remainder whose magnitude is
// below 1e9. Sign is uniform across all three fields: a negative duration
// has Months <= 0 and Seconds/Nanoseconds <= 0 together.
type Duration struct {
	Months      int32
	Seconds     int64
	Nanoseconds int32
}

// durationFieldTag identifies which ISO-8601 letter a numeric field was
// read under, so ReadDuration can enforce field ordering.
type durationFieldTag int

const (
	tagYear durationFieldTag = iota
	tagMonth
	tagDay
	tagHour
	tagMinute
	tagSecond
)

// ReadDuration parses an xsd:duration lexical value: [-]P(nY)?(nM)?(nD)?
// (T(nH)?(nM)?(n(.f+)?S)?)? with at least one field present, fields
// strictly ordered, and (after 'T') at least one time field if 'T' is
// present at all.
func ReadDuration(s string) (Duration, FixedResult) {
	start := skipWhitespace(s, 0)
	i := start

	neg := false
	if i < len(s) && s[i] == '-' {
		neg = true
		i++
	}
	if i >= len(s) || s[i] != 'P' {
		return Duration{}, fixed(ExpectedDuration, start)
	}
	i++

	var months int64
	var seconds int64
	var nanos int32
	fieldSeen := false
	lastTag := tagYear - 1 // before any valid tag

	for i < len(s) && isDigit(s[i]) {
		digStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		intEnd := i
		if i < len(s) && s[i] == '.' {
			// Only the seconds field may carry a fraction, and only after
			// 'T'; a fraction here is a date-field tag error.
			return Duration{}, fixed(ExpectedDateTag, i)
		}
		if i >= len(s) {
			return Duration{}, fixed(ExpectedDateTag, i)
		}

		value, perr := strconv.ParseInt(s[digStart:intEnd], 10, 64)
		if perr != nil {
			return Duration{}, fixed(OutOfRange, digStart)
		}

		switch s[i] {
		case 'Y':
			if lastTag >= tagYear {
				return Duration{}, fixed(BadOrder, i)
			}
			lastTag = tagYear
			months += value * 12
		case 'M':
			if lastTag >= tagMonth {
				return Duration{}, fixed(BadOrder, i)
			}
			lastTag = tagMonth
			months += value
		case 'D':
			if lastTag >= tagDay {
				return Duration{}, fixed(BadOrder, i)
			}
			lastTag = tagDay
			seconds += value * 86400
		default:
			return Duration{}, fixed(ExpectedDateTag, i)
		}
		fieldSeen = true
		i++
	}

	if i < len(s) && s[i] == 'T' {
		i++
		lastTag = tagHour - 1
		timeFieldSeen := false
		for i < len(s) && isDigit(s[i]) {
			digStart := i
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			intEnd := i
			var frac string
			if i < len(s) && s[i] == '.' {
				j := i + 1
				fracStart := j
				for j < len(s) && isDigit(s[j]) {
					j++
				}
				if j == fracStart {
					return Duration{}, fixed(ExpectedDigit, i)
				}
				frac = s[fracStart:j]
				i = j
			}
			if i >= len(s) {
				return Duration{}, fixed(ExpectedSecondTag, i)
			}
			value, perr := strconv.ParseInt(s[digStart:intEnd], 10, 64)
			if perr != nil {
				return Duration{}, fixed(OutOfRange, digStart)
			}

			switch s[i] {
			case 'H':
				if frac != "" || lastTag >= tagHour {
					return Duration{}, fixed(BadOrder, i)
				}
				lastTag = tagHour
				seconds += value * 3600
			case 'M':
				if frac != "" || lastTag >= tagMinute {
					return Duration{}, fixed(BadOrder, i)
				}
				lastTag = tagMinute
				seconds += value * 60
			case 'S':
				if lastTag >= tagSecond {
					return Duration{}, fixed(BadOrder, i)
				}
				lastTag = tagSecond
				seconds += value
				nanos = int32(fracToNanos(frac))
			default:
				return Duration{}, fixed(ExpectedTimeTag, i)
			}
			timeFieldSeen = true
			fieldSeen = true
			i++
		}
		if !timeFieldSeen {
			return Duration{}, fixed(ExpectedTimeTag, i)
		}
	}

	if !fieldSeen {
		return Duration{}, fixed(ExpectedDateTag, i)
	}

	if neg {
		months, seconds, nanos = -months, -seconds, -nanos
	}
	if months > (1<<31-1) || months < -(1 << 31) {
		return Duration{}, fixed(OutOfRange, start)
	}

	end, ok := skipTrailingWhitespace(s, i)
	if !ok {
		return Duration{}, fixed(ExpectedEnd, i)
	}
	return Duration{Months: int32(months), Seconds: seconds, Nanoseconds: nanos}, fixed(Success, end)
}

// WriteDuration formats d in xsd:duration canonical form: the largest
// nonzero calendar unit down to seconds, years/months folded from Months,
// days/hours/minutes/seconds folded from Seconds, with an all-zero
// duration written as "P0Y". A duration whose fields have mixed signs is
// rejected with BadValue; one whose Months or Nanoseconds is
// math.MinInt32, or whose Seconds is math.MinInt64, with OutOfRange.
func WriteDuration(d Duration, buf []byte) FixedResult {
	if (d.Months < 0 || d.Seconds < 0 || d.Nanoseconds < 0) &&
		(d.Months > 0 || d.Seconds > 0 || d.Nanoseconds > 0) {
		return fixed(BadValue, 0)
	}
	if d.Months == math.MinInt32 || d.Nanoseconds == math.MinInt32 || d.Seconds == math.MinInt64 {
		return fixed(OutOfRange, 0)
	}
	s := formatDuration(d)
	return writeString(s, buf)
}

func formatDuration(d Duration) string {
	neg := d.Months < 0 || d.Seconds < 0 || d.Nanoseconds < 0
	months := d.Months
	seconds := d.Seconds
	nanos := d.Nanoseconds
	if neg {
		months, seconds, nanos = -months, -seconds, -nanos
	}

	years := months / 12
	remMonths := months % 12

	days := seconds / 86400
	remSeconds := seconds % 86400
	hours := remSeconds / 3600
	remSeconds %= 3600
	minutes := remSeconds / 60
	remSeconds %= 60

	buf := make([]byte, 0, 32)
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, 'P')
	if years != 0 {
		buf = strconv.AppendInt(buf, int64(years), 10)
		buf = append(buf, 'Y')
	}
	if remMonths != 0 {
		buf = strconv.AppendInt(buf, int64(remMonths), 10)
		buf = append(buf, 'M')
	}
	if days != 0 {
		buf = strconv.AppendInt(buf, days, 10)
		buf = append(buf, 'D')
	}

	hasTime := hours != 0 || minutes != 0 || remSeconds != 0 || nanos != 0
	if hasTime {
		buf = append(buf, 'T')
		if hours != 0 {
			buf = strconv.AppendInt(buf, hours, 10)
			buf = append(buf, 'H')
		}
		if minutes != 0 {
			buf = strconv.AppendInt(buf, minutes, 10)
			buf = append(buf, 'M')
		}
		if remSeconds != 0 || nanos != 0 {
			buf = strconv.AppendInt(buf, remSeconds, 10)
			if nanos != 0 {
				buf = append(buf, '.')
				nd := nanoDigits(uint32(nanos))
				var full [9]byte
				writeFixedWidth(full[:], int(nanos), 9)
				buf = append(buf, full[:nd]...)
			}
			buf = append(buf, 'S')
		}
	}

	if len(buf) == 1 || (neg && len(buf) == 2) {
		// Only "P" (or "-P") was written: all fields were zero.
		if neg {
			buf = buf[:1]
		} else {
			buf = buf[:0]
		}
		buf = append(buf, 'P', '0', 'Y')
	}

	return string(buf)
}

// CompareDuration implements the simple representation-order comparator
// for durations: compare the calendar part first, then the exact
// part, without reference to any calendar (unlike DateTime's partial
// order, this never returns "maybe").
func CompareDuration(a, b Duration) int {
	if a.Months != b.Months {
		if a.Months < b.Months {
			return -1
		}
		return 1
	}
	an := int64(a.Seconds)*1_000_000_000 + int64(a.Nanoseconds)
	bn := int64(b.Seconds)*1_000_000_000 + int64(b.Nanoseconds)
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	default:
		return 0
	}
}
