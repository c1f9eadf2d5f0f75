package exess

import "math"

// datetime.go implements component K: xsd:dateTime, duration addition with
// calendar carry, UTC normalization, and the five-valued partial
// order XML Schema Part 2 Appendix E defines for comparing date/time
// values that may or may not carry an explicit timezone.

// Order is the result of comparing two date/time values under the
// partial order below. Unlike CompareDuration's total order, a value with
// an explicit timezone and one without may only be "maybe" related: every
// timezone choice in [-14:00, +14:00] that the zone-free side could have
// meant is considered, and if the choices disagree on direction the
// comparison reports MaybeLess or MaybeGreater rather than claiming
// certainty it doesn't have. Two values that both lack a timezone compare
// strictly by their fields.
type Order int

const (
	StrictlyLess Order = iota
	MaybeLess
	OrderEqual
	MaybeGreater
	StrictlyGreater
)

// DateTime is an xsd:dateTime value. Year follows XSD's no-
// year-zero lexical numbering (as Date.Year does); Infinite is nonzero
// only for the sentinel values AddDuration produces when a calendar carry
// would overflow the representable year range.
type DateTime struct {
	Year       int32
	Month      uint8
	Day        uint8
	Hour       uint8
	Minute     uint8
	Second     uint8
	Nanosecond uint32
	Zone       TimeZone

	// Infinite is 0 for an ordinary value, +1 for "infinite future", -1 for
	// "infinite past".
	Infinite int8
}

// ReadDateTime parses an xsd:dateTime lexical value: a date, 'T', a time,
// and an optional trailing timezone. Hour 24 is
// normalized here, by rolling over to 00:00 of the following day.
func ReadDateTime(s string) (DateTime, FixedResult) {
	start := skipWhitespace(s, 0)
	d, i, status := readDateCore(s, start)
	if status != Success {
		return DateTime{}, fixed(status, i)
	}
	if i >= len(s) || s[i] != 'T' {
		return DateTime{}, fixed(ExpectedTimeSep, i)
	}
	i++

	tm, i2, status := readTimeCore(s, i)
	if status != Success {
		return DateTime{}, fixed(status, i2)
	}

	zone, newPos, _, zstatus := ParseTimeZone(s, i2)
	if zstatus != Success {
		return DateTime{}, fixed(zstatus, newPos)
	}

	end, ok := skipTrailingWhitespace(s, newPos)
	if !ok {
		return DateTime{}, fixed(ExpectedEnd, newPos)
	}

	dt := DateTime{
		Year: d.Year, Month: d.Month, Day: d.Day,
		Hour: tm.Hour, Minute: tm.Minute, Second: tm.Second, Nanosecond: tm.Nanosecond,
		Zone: zone,
	}
	if dt.Hour == 24 {
		dt.Hour = 0
		addOneDay(&dt.Year, &dt.Month, &dt.Day)
	}
	return dt, fixed(Success, end)
}

// addOneDay advances (year, month, day) by exactly one calendar day,
// skipping lexical year zero.
func addOneDay(year *int32, month, day *uint8) {
	*day++
	if *day > DaysInMonth(*year, *month) {
		*day = 1
		*month++
		if *month > 12 {
			*month = 1
			*year++
			if *year == 0 {
				*year = 1
			}
		}
	}
}

// WriteDateTime formats dt in xsd:dateTime canonical form. dt must not be
// infinite (callers check Infinite == 0 first; AddDuration's sentinel
// results have no lexical form).
func WriteDateTime(dt DateTime, buf []byte) FixedResult {
	d := Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
	tm := Time{Hour: dt.Hour, Minute: dt.Minute, Second: dt.Second, Nanosecond: dt.Nanosecond}
	n := dateCoreLen(d) + 1 + timeCoreLen(tm) + TimeZoneLen(dt.Zone)
	if buf == nil {
		return fixed(Success, n)
	}
	if len(buf) < n {
		return fixed(NoSpace, 0)
	}
	i := writeDateCore(d, buf, 0)
	buf[i] = 'T'
	i++
	i = writeTimeCore(tm, buf, i)
	i = WriteTimeZone(dt.Zone, buf, i)
	return fixed(Success, i)
}

// toAstronomicalYear converts XSD's no-year-zero lexical year numbering to
// astronomical numbering (where year 0 is 1 BCE), which is what the civil-
// calendar day arithmetic below requires.
func toAstronomicalYear(lexYear int32) int64 {
	if lexYear < 0 {
		return int64(lexYear) + 1
	}
	return int64(lexYear)
}

// fromAstronomicalYear is toAstronomicalYear's inverse.
func fromAstronomicalYear(astro int64) int64 {
	if astro <= 0 {
		return astro - 1
	}
	return astro
}

// daysFromCivil converts an astronomical (y, m, d) to a day count relative
// to 1970-01-01, using Howard Hinnant's well-known constant-time formula.
func daysFromCivil(y int64, m, d int) int64 {
	if m <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400
	var mp int64
	if m > 2 {
		mp = int64(m) - 3
	} else {
		mp = int64(m) + 9
	}
	doy := (153*mp+2)/5 + int64(d) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is daysFromCivil's inverse, returning an astronomical year.
func civilFromDays(z int64) (y int64, m int, d int) {
	z += 719468
	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y = yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d = int(doy-(153*mp+2)/5) + 1
	if mp < 10 {
		m = int(mp + 3)
	} else {
		m = int(mp - 9)
	}
	if m <= 2 {
		y++
	}
	return y, m, d
}

const nanosPerDay = 86400_000_000_000

// normalizeInstant carries nanos outside [0, nanosPerDay) into days.
func normalizeInstant(days, nanos int64) (int64, int64) {
	q := nanos / nanosPerDay
	r := nanos % nanosPerDay
	if r < 0 {
		r += nanosPerDay
		q--
	}
	return days + q, r
}

// instantRange returns the inclusive range of UTC instants dt could denote
// (a single point if dt has an explicit timezone, the ±14:00 envelope
// otherwise), each as a (days since 1970-01-01, nanoseconds into that day)
// pair.
func instantRange(year int32, month, day, hour, minute, second uint8, nanos uint32, zone TimeZone) (minD, minN, maxD, maxN int64) {
	days := daysFromCivil(toAstronomicalYear(year), int(month), int(day))
	ns := int64(hour)*3600_000_000_000 + int64(minute)*60_000_000_000 + int64(second)*1_000_000_000 + int64(nanos)

	if zone.HasZone() {
		offset := int64(zone.Minutes()) * 60_000_000_000
		ud, un := normalizeInstant(days, ns-offset)
		return ud, un, ud, un
	}
	const extreme = 14 * 60 * 60_000_000_000
	lo1, lo2 := normalizeInstant(days, ns-extreme)
	hi1, hi2 := normalizeInstant(days, ns+extreme)
	return lo1, lo2, hi1, hi2
}

func instantLess(aD, aN, bD, bN int64) bool {
	if aD != bD {
		return aD < bD
	}
	return aN < bN
}

func instantEqual(aD, aN, bD, bN int64) bool {
	return aD == bD && aN == bN
}

// CompareDateTime implements the five-valued partial order described above.
func CompareDateTime(a, b DateTime) Order {
	if a.Infinite != 0 || b.Infinite != 0 {
		switch {
		case a.Infinite == b.Infinite:
			return OrderEqual
		case a.Infinite < b.Infinite:
			return StrictlyLess
		default:
			return StrictlyGreater
		}
	}

	aMinD, aMinN, aMaxD, aMaxN := instantRange(a.Year, a.Month, a.Day, a.Hour, a.Minute, a.Second, a.Nanosecond, a.Zone)
	bMinD, bMinN, bMaxD, bMaxN := instantRange(b.Year, b.Month, b.Day, b.Hour, b.Minute, b.Second, b.Nanosecond, b.Zone)

	if instantLess(aMaxD, aMaxN, bMinD, bMinN) {
		return StrictlyLess
	}
	if instantLess(bMaxD, bMaxN, aMinD, aMinN) {
		return StrictlyGreater
	}
	// Both zoned (points) or both zone-free (envelopes of the same width,
	// so their lower ends order them exactly like their nominal fields).
	if a.Zone.HasZone() == b.Zone.HasZone() {
		if instantEqual(aMinD, aMinN, bMinD, bMinN) {
			return OrderEqual
		}
		if instantLess(aMinD, aMinN, bMinD, bMinN) {
			return StrictlyLess
		}
		return StrictlyGreater
	}

	// Ranges overlap and exactly one side is a zone-free envelope: break
	// the tie using the nominal (zone-absent-as-UTC) instant to decide
	// which "maybe" direction to report.
	if instantEqual(aMinD, aMinN, bMinD, bMinN) && instantEqual(aMaxD, aMaxN, bMaxD, bMaxN) {
		return OrderEqual
	}
	if instantLess(aMinD, aMinN, bMinD, bMinN) {
		return MaybeLess
	}
	if instantLess(bMinD, bMinN, aMinD, aMinN) {
		return MaybeGreater
	}
	return OrderEqual
}

// referenceDate is the fixed date XSD's Appendix E algorithm attaches to
// bare time-of-day values so they can be compared via CompareDateTime.
var referenceDate = struct {
	Year  int32
	Month uint8
	Day   uint8
}{1972, 12, 31}

// CompareTime orders two times by attaching referenceDate to
// both operands and delegating to CompareDateTime.
func CompareTime(a, b Time) Order {
	da := DateTime{Year: referenceDate.Year, Month: referenceDate.Month, Day: referenceDate.Day,
		Hour: a.Hour, Minute: a.Minute, Second: a.Second, Nanosecond: a.Nanosecond, Zone: a.Zone}
	db := DateTime{Year: referenceDate.Year, Month: referenceDate.Month, Day: referenceDate.Day,
		Hour: b.Hour, Minute: b.Minute, Second: b.Second, Nanosecond: b.Nanosecond, Zone: b.Zone}
	if da.Hour == 24 {
		da.Hour = 0
		addOneDay(&da.Year, &da.Month, &da.Day)
	}
	if db.Hour == 24 {
		db.Hour = 0
		addOneDay(&db.Year, &db.Month, &db.Day)
	}
	return CompareDateTime(da, db)
}

// CompareDate orders two dates by attaching midnight to both
// operands and delegating to CompareDateTime.
func CompareDate(a, b Date) Order {
	da := DateTime{Year: a.Year, Month: a.Month, Day: a.Day, Zone: a.Zone}
	db := DateTime{Year: b.Year, Month: b.Month, Day: b.Day, Zone: b.Zone}
	return CompareDateTime(da, db)
}

// AddDuration implements the dateTime-plus-duration algorithm (XML
// Schema Part 2 Appendix E): months are added to the calendar field with
// day clamping, then the exact (seconds, nanoseconds) part is added via
// instant arithmetic. A result outside the representable year range
// collapses to a sentinel whose Infinite field is +1 (future) or -1 (past).
func AddDuration(dt DateTime, dur Duration) DateTime {
	if dt.Infinite != 0 {
		return dt
	}

	astroYear := toAstronomicalYear(dt.Year)
	monthIndex := astroYear*12 + int64(dt.Month-1) + int64(dur.Months)
	newAstroYear := monthIndex / 12
	newMonth := monthIndex % 12
	if newMonth < 0 {
		newMonth += 12
		newAstroYear--
	}
	newMonth++

	lexYear := fromAstronomicalYear(newAstroYear)
	if lexYear > math.MaxInt32 {
		return DateTime{Infinite: 1, Zone: dt.Zone}
	}
	if lexYear < math.MinInt32 {
		return DateTime{Infinite: -1, Zone: dt.Zone}
	}

	maxDay := DaysInMonth(int32(lexYear), uint8(newMonth))
	day := dt.Day
	if day > maxDay {
		day = maxDay
	}

	days := daysFromCivil(newAstroYear, int(newMonth), int(day))
	nanos := int64(dt.Hour)*3600_000_000_000 + int64(dt.Minute)*60_000_000_000 + int64(dt.Second)*1_000_000_000 + int64(dt.Nanosecond)
	nanos += dur.Seconds*1_000_000_000 + int64(dur.Nanoseconds)
	days, nanos = normalizeInstant(days, nanos)

	finalAstroYear, finalMonth, finalDay := civilFromDays(days)
	finalLexYear := fromAstronomicalYear(finalAstroYear)
	if finalLexYear > math.MaxInt32 {
		return DateTime{Infinite: 1, Zone: dt.Zone}
	}
	if finalLexYear < math.MinInt32 {
		return DateTime{Infinite: -1, Zone: dt.Zone}
	}

	hour := nanos / 3600_000_000_000
	nanos -= hour * 3600_000_000_000
	minute := nanos / 60_000_000_000
	nanos -= minute * 60_000_000_000
	second := nanos / 1_000_000_000
	nanos -= second * 1_000_000_000

	return DateTime{
		Year: int32(finalLexYear), Month: uint8(finalMonth), Day: uint8(finalDay),
		Hour: uint8(hour), Minute: uint8(minute), Second: uint8(second), Nanosecond: uint32(nanos),
		Zone: dt.Zone,
	}
}

// ToUTC converts dt to the equivalent UTC instant. If dt has no explicit
// timezone, it is returned unchanged (there is nothing to normalize).
func ToUTC(dt DateTime) DateTime {
	if dt.Infinite != 0 || !dt.Zone.HasZone() {
		return dt
	}
	days := daysFromCivil(toAstronomicalYear(dt.Year), int(dt.Month), int(dt.Day))
	nanos := int64(dt.Hour)*3600_000_000_000 + int64(dt.Minute)*60_000_000_000 + int64(dt.Second)*1_000_000_000 + int64(dt.Nanosecond)
	nanos -= int64(dt.Zone.Minutes()) * 60_000_000_000
	days, nanos = normalizeInstant(days, nanos)

	astroYear, month, day := civilFromDays(days)
	hour := nanos / 3600_000_000_000
	nanos -= hour * 3600_000_000_000
	minute := nanos / 60_000_000_000
	nanos -= minute * 60_000_000_000
	second := nanos / 1_000_000_000
	nanos -= second * 1_000_000_000

	return DateTime{
		Year: int32(fromAstronomicalYear(astroYear)), Month: uint8(month), Day: uint8(day),
		Hour: uint8(hour), Minute: uint8(minute), Second: uint8(second), Nanosecond: uint32(nanos),
		Zone: 0,
	}
}
