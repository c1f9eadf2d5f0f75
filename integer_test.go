package exess

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadLong(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"-0", 0},
		{"+0", 0},
		{"  42", 42},
		{"-42", -42},
		{"007", 7},
		{"9223372036854775807", math.MaxInt64},
		{"-9223372036854775808", math.MinInt64},
	}
	for _, c := range cases {
		v, res := ReadLong(c.in)
		require.Equal(t, Success, res.Status, "input %q", c.in)
		require.Equal(t, c.want, v, "input %q", c.in)
	}
}

func TestReadLongOverflow(t *testing.T) {
	for _, s := range []string{"9223372036854775808", "-9223372036854775809", "99999999999999999999999999"} {
		_, res := ReadLong(s)
		require.Equal(t, OutOfRange, res.Status, "input %q", s)
	}
}

func TestReadLongRejectsJunk(t *testing.T) {
	for _, s := range []string{"", "+", "-", "1a", "1.0", "1 2"} {
		_, res := ReadLong(s)
		require.NotEqual(t, Success, res.Status, "input %q", s)
	}
}

func TestReadULong(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"-0", 0},
		{"42", 42},
		{"18446744073709551615", math.MaxUint64},
	}
	for _, c := range cases {
		v, res := ReadULong(c.in)
		require.Equal(t, Success, res.Status, "input %q", c.in)
		require.Equal(t, c.want, v, "input %q", c.in)
	}
}

func TestReadULongRejectsNegative(t *testing.T) {
	for _, s := range []string{"-1", "-18446744073709551615"} {
		_, res := ReadULong(s)
		require.Equal(t, OutOfRange, res.Status, "input %q", s)
	}
}

func TestReadBoundedRanges(t *testing.T) {
	_, res := ReadInt("2147483648")
	require.Equal(t, OutOfRange, res.Status)
	v, res := ReadInt("-2147483648")
	require.Equal(t, Success, res.Status)
	require.Equal(t, int32(math.MinInt32), v)

	_, res = ReadShort("32768")
	require.Equal(t, OutOfRange, res.Status)

	_, res = ReadByte("128")
	require.Equal(t, OutOfRange, res.Status)

	_, res = ReadUInt("4294967296")
	require.Equal(t, OutOfRange, res.Status)

	_, res = ReadUShort("65536")
	require.Equal(t, OutOfRange, res.Status)

	_, res = ReadUByte("256")
	require.Equal(t, OutOfRange, res.Status)
}

func TestReadLargeIntegerSigns(t *testing.T) {
	_, res := ReadNonPositiveInteger("1")
	require.Equal(t, OutOfRange, res.Status)
	v, res := ReadNonPositiveInteger("0")
	require.Equal(t, Success, res.Status)
	require.Equal(t, int64(0), v)

	_, res = ReadNegativeInteger("0")
	require.Equal(t, OutOfRange, res.Status)
	v, res = ReadNegativeInteger("-1")
	require.Equal(t, Success, res.Status)
	require.Equal(t, int64(-1), v)

	uv, res := ReadNonNegativeInteger("0")
	require.Equal(t, Success, res.Status)
	require.Equal(t, uint64(0), uv)

	_, res = ReadPositiveInteger("0")
	require.Equal(t, OutOfRange, res.Status)
	uv, res = ReadPositiveInteger("1")
	require.Equal(t, Success, res.Status)
	require.Equal(t, uint64(1), uv)
}

func TestWriteLongRoundTrip(t *testing.T) {
	var buf [32]byte
	for _, v := range []int64{0, -1, 1, math.MinInt64, math.MaxInt64} {
		res := WriteLong(v, buf[:])
		require.Equal(t, Success, res.Status)
		got, rres := ReadLong(string(buf[:res.Count]))
		require.Equal(t, Success, rres.Status)
		require.Equal(t, v, got)
	}
}

func TestWriteIntegerNoSpace(t *testing.T) {
	buf := make([]byte, 1)
	res := WriteLong(12345, buf)
	require.Equal(t, NoSpace, res.Status)
}
