package exess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReadDateTime(t *testing.T) {
	dt, res := ReadDateTime("2024-02-29T13:20:00Z")
	require.Equal(t, Success, res.Status)
	require.Equal(t, int32(2024), dt.Year)
	require.Equal(t, uint8(13), dt.Hour)
	require.Equal(t, TimeZone(0), dt.Zone)
}

func TestReadDateTimeMidnightWrap(t *testing.T) {
	dt, res := ReadDateTime("2024-02-29T24:00:00")
	require.Equal(t, Success, res.Status)
	require.Equal(t, int32(2024), dt.Year)
	require.Equal(t, uint8(3), dt.Month)
	require.Equal(t, uint8(1), dt.Day)
	require.Equal(t, uint8(0), dt.Hour)
}

func TestReadDateTimeRequiresTimeSep(t *testing.T) {
	_, res := ReadDateTime("2024-02-29 13:20:00")
	require.Equal(t, ExpectedTimeSep, res.Status)
}

func TestWriteDateTimeRoundTrip(t *testing.T) {
	cases := []string{"2024-02-29T13:20:00Z", "-0001-01-01T00:00:00", "2024-01-01T00:00:00.5+05:30"}
	for _, c := range cases {
		dt, res := ReadDateTime(c)
		require.Equal(t, Success, res.Status, "input %q", c)

		buf := make([]byte, 64)
		wres := WriteDateTime(dt, buf)
		require.Equal(t, Success, wres.Status)
		require.Equal(t, c, string(buf[:wres.Count]), "input %q", c)

		reparsed, res2 := ReadDateTime(string(buf[:wres.Count]))
		require.Equal(t, Success, res2.Status, "input %q", c)
		if diff := cmp.Diff(dt, reparsed); diff != "" {
			t.Errorf("round trip through %q changed fields (-want +got):\n%s", c, diff)
		}
	}
}

func TestCompareDateTimeBothZoned(t *testing.T) {
	a, _ := ReadDateTime("2024-01-01T00:00:00Z")
	b, _ := ReadDateTime("2024-01-01T01:00:00Z")
	require.Equal(t, StrictlyLess, CompareDateTime(a, b))
	require.Equal(t, StrictlyGreater, CompareDateTime(b, a))
	require.Equal(t, OrderEqual, CompareDateTime(a, a))
}

func TestCompareDateTimeBothUnzoned(t *testing.T) {
	a, _ := ReadDateTime("2024-01-01T12:00:00")
	b, _ := ReadDateTime("2024-01-01T12:00:00")
	require.Equal(t, OrderEqual, CompareDateTime(a, b))

	c, _ := ReadDateTime("2024-01-01T00:00:00")
	require.Equal(t, StrictlyLess, CompareDateTime(c, a))
}

func TestAddDurationCalendarCarry(t *testing.T) {
	dt, _ := ReadDateTime("2024-01-31T00:00:00")
	dur, _ := ReadDuration("P1M")
	result := AddDuration(dt, dur)
	require.Equal(t, uint8(2), result.Month)
	require.Equal(t, uint8(29), result.Day) // clamped to Feb 2024's last day
}

func TestAddDurationSeconds(t *testing.T) {
	dt, _ := ReadDateTime("2024-01-01T23:59:59")
	dur, _ := ReadDuration("PT2S")
	result := AddDuration(dt, dur)
	require.Equal(t, uint8(2), result.Day)
	require.Equal(t, uint8(0), result.Hour)
	require.Equal(t, uint8(0), result.Minute)
	require.Equal(t, uint8(1), result.Second)
}

func TestToUTC(t *testing.T) {
	dt, _ := ReadDateTime("2024-01-01T00:00:00+05:30")
	utc := ToUTC(dt)
	require.Equal(t, uint8(31), utc.Day)
	require.Equal(t, uint8(12), utc.Month)
	require.Equal(t, int32(2023), utc.Year)
	require.Equal(t, uint8(18), utc.Hour)
	require.Equal(t, uint8(30), utc.Minute)
	require.Equal(t, TimeZone(0), utc.Zone)
}

func TestCompareTimeAndDateDelegateToCompareDateTime(t *testing.T) {
	a, _ := ReadTime("13:20:00Z")
	b, _ := ReadTime("13:20:00Z")
	require.Equal(t, OrderEqual, CompareTime(a, b))

	da, _ := ReadDate("2024-01-01Z")
	db, _ := ReadDate("2024-01-02Z")
	require.Equal(t, StrictlyLess, CompareDate(da, db))
}
