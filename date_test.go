package exess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	require.True(t, IsLeapYear(2000))
	require.False(t, IsLeapYear(1900))
	require.True(t, IsLeapYear(2024))
	require.False(t, IsLeapYear(2023))
}

func TestDaysInMonth(t *testing.T) {
	require.Equal(t, uint8(29), DaysInMonth(2024, 2))
	require.Equal(t, uint8(28), DaysInMonth(2023, 2))
	require.Equal(t, uint8(31), DaysInMonth(2023, 1))
	require.Equal(t, uint8(30), DaysInMonth(2023, 4))
}

func TestReadDate(t *testing.T) {
	d, res := ReadDate("2024-02-29")
	require.Equal(t, Success, res.Status)
	require.Equal(t, Date{Year: 2024, Month: 2, Day: 29, Zone: localTimezone}, d)

	d, res = ReadDate("-0001-01-01")
	require.Equal(t, Success, res.Status)
	require.Equal(t, int32(-1), d.Year)

	d, res = ReadDate("2024-01-01Z")
	require.Equal(t, Success, res.Status)
	require.Equal(t, TimeZone(0), d.Zone)
}

func TestReadDateRejectsYearZero(t *testing.T) {
	_, res := ReadDate("0000-01-01")
	require.Equal(t, BadValue, res.Status)
}

func TestReadDateRejectsBadDay(t *testing.T) {
	_, res := ReadDate("2023-02-29")
	require.Equal(t, OutOfRange, res.Status)

	_, res = ReadDate("2024-13-01")
	require.Equal(t, OutOfRange, res.Status)
}

func TestWriteDateRoundTrip(t *testing.T) {
	cases := []string{"2024-02-29", "-0001-01-01", "2024-01-01Z", "0099-05-05+05:30"}
	for _, c := range cases {
		d, res := ReadDate(c)
		require.Equal(t, Success, res.Status, "input %q", c)

		buf := make([]byte, 64)
		wres := WriteDate(d, buf)
		require.Equal(t, Success, wres.Status)
		require.Equal(t, c, string(buf[:wres.Count]), "input %q", c)
	}
}

func TestWriteDateNoSpace(t *testing.T) {
	d, _ := ReadDate("2024-01-01")
	buf := make([]byte, 2)
	res := WriteDate(d, buf)
	require.Equal(t, NoSpace, res.Status)
}
