package exess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadHex(t *testing.T) {
	var buf [8]byte
	res := ReadHex("48656C6C6F", buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "Hello", string(buf[:res.WriteCount]))

	res = ReadHex("  48 65 6C 6C 6F  ", buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "Hello", string(buf[:res.WriteCount]))
}

func TestReadHexMeasureOnly(t *testing.T) {
	res := ReadHex("48656C6C6F", nil)
	require.Equal(t, Success, res.Status)
	require.Equal(t, 5, res.WriteCount)
}

func TestReadHexOddDigits(t *testing.T) {
	res := ReadHex("486", nil)
	require.Equal(t, ExpectedHex, res.Status)
}

func TestReadHexNoSpace(t *testing.T) {
	buf := make([]byte, 2)
	res := ReadHex("48656C", buf)
	require.Equal(t, NoSpace, res.Status)
}

func TestWriteHex(t *testing.T) {
	var buf [10]byte
	res := WriteHex([]byte("Hello"), buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "48656C6C6F", string(buf[:res.Count]))
}

func TestWriteHexNoSpace(t *testing.T) {
	buf := make([]byte, 1)
	res := WriteHex([]byte("Hello"), buf)
	require.Equal(t, NoSpace, res.Status)
}

func TestBase64RoundTrip(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("f"),
		[]byte("fo"),
		[]byte("foo"),
		[]byte("foob"),
		[]byte("fooba"),
		[]byte("foobar"),
	}
	for _, c := range cases {
		var wbuf [16]byte
		wres := WriteBase64(c, wbuf[:])
		require.Equal(t, Success, wres.Status)
		encoded := string(wbuf[:wres.Count])

		var rbuf [16]byte
		rres := ReadBase64(encoded, rbuf[:])
		require.Equal(t, Success, rres.Status, "encoded %q", encoded)
		require.Equal(t, c, rbuf[:rres.WriteCount])
	}
}

func TestReadBase64KnownVectors(t *testing.T) {
	var buf [16]byte
	res := ReadBase64("Zm9vYmFy", buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "foobar", string(buf[:res.WriteCount]))

	res = ReadBase64("Zm9v", buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "foo", string(buf[:res.WriteCount]))

	res = ReadBase64("Zg==", buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "f", string(buf[:res.WriteCount]))
}

func TestReadBase64WhitespaceTolerant(t *testing.T) {
	var buf [16]byte
	res := ReadBase64("Zm9v\nYmFy", buf[:])
	require.Equal(t, Success, res.Status)
	require.Equal(t, "foobar", string(buf[:res.WriteCount]))
}

func TestReadBase64Incomplete(t *testing.T) {
	res := ReadBase64("Zm9", nil)
	require.Equal(t, ExpectedBase64, res.Status)
}

func TestReadBase64PaddingInMiddle(t *testing.T) {
	res := ReadBase64("Zg==Zm9v", nil)
	require.Equal(t, BadValue, res.Status)
}

func TestReadBase64NoSpace(t *testing.T) {
	buf := make([]byte, 2)
	res := ReadBase64("Zm9vYmFy", buf)
	require.Equal(t, NoSpace, res.Status)
}
