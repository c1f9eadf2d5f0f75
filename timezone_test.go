package exess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTimeZoneUTC(t *testing.T) {
	z, pos, present, status := ParseTimeZone("Z", 0)
	require.Equal(t, Success, status)
	require.True(t, present)
	require.Equal(t, 1, pos)
	require.Equal(t, TimeZone(0), z)
	require.Equal(t, 0, z.Minutes())
}

func TestParseTimeZoneOffsets(t *testing.T) {
	z, pos, present, status := ParseTimeZone("+05:30", 0)
	require.Equal(t, Success, status)
	require.True(t, present)
	require.Equal(t, 6, pos)
	require.Equal(t, 330, z.Minutes())

	z, _, present, status = ParseTimeZone("-14:00", 0)
	require.Equal(t, Success, status)
	require.True(t, present)
	require.Equal(t, -840, z.Minutes())
}

func TestParseTimeZoneAbsent(t *testing.T) {
	z, pos, present, status := ParseTimeZone("", 0)
	require.Equal(t, Success, status)
	require.False(t, present)
	require.Equal(t, 0, pos)
	require.False(t, z.HasZone())
}

func TestParseTimeZoneRejectsBadMinutes(t *testing.T) {
	_, _, present, status := ParseTimeZone("+05:20", 0)
	require.True(t, present)
	require.Equal(t, Unsupported, status)
}

func TestParseTimeZoneRejectsOutOfBoundHours(t *testing.T) {
	_, _, present, status := ParseTimeZone("+15:00", 0)
	require.True(t, present)
	require.Equal(t, OutOfRange, status)

	_, _, present, status = ParseTimeZone("+14:15", 0)
	require.True(t, present)
	require.Equal(t, OutOfRange, status)
}

func TestWriteTimeZoneRoundTrip(t *testing.T) {
	cases := []string{"Z", "+05:30", "-14:00", "+00:15"}
	for _, c := range cases {
		z, _, _, status := ParseTimeZone(c, 0)
		require.Equal(t, Success, status)

		buf := make([]byte, TimeZoneLen(z))
		n := WriteTimeZone(z, buf, 0)
		require.Equal(t, c, string(buf[:n]))
	}
}

func TestWriteTimeZoneAbsentWritesNothing(t *testing.T) {
	buf := make([]byte, 0)
	n := WriteTimeZone(localTimezone, buf, 0)
	require.Equal(t, 0, n)
	require.Equal(t, 0, TimeZoneLen(localTimezone))
}
