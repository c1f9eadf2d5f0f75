package exess

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsWhitespace(t *testing.T) {
	for _, b := range []byte(" \t\r\n\f\v") {
		require.True(t, isWhitespace(b), "byte %q", b)
	}
	for _, b := range []byte("a0-Z") {
		require.False(t, isWhitespace(b), "byte %q", b)
	}
}

func TestIsDigit(t *testing.T) {
	for c := byte('0'); c <= '9'; c++ {
		require.True(t, isDigit(c))
	}
	require.False(t, isDigit('a'))
	require.False(t, isDigit(':'))
}

func TestIsHexDigit(t *testing.T) {
	require.True(t, isHexDigit('0'))
	require.True(t, isHexDigit('a'))
	require.True(t, isHexDigit('F'))
	require.False(t, isHexDigit('g'))
	require.False(t, isHexDigit('G'))
}

func TestIsBase64Char(t *testing.T) {
	require.True(t, isBase64Char('A'))
	require.True(t, isBase64Char('z'))
	require.True(t, isBase64Char('9'))
	require.True(t, isBase64Char('+'))
	require.True(t, isBase64Char('/'))
	require.True(t, isBase64Char('='))
	require.False(t, isBase64Char(' '))
	require.False(t, isBase64Char('-'))
}

func TestHexValue(t *testing.T) {
	require.Equal(t, byte(0), hexValue('0'))
	require.Equal(t, byte(9), hexValue('9'))
	require.Equal(t, byte(10), hexValue('a'))
	require.Equal(t, byte(15), hexValue('F'))
}

func TestSkipWhitespace(t *testing.T) {
	require.Equal(t, 3, skipWhitespace("   abc", 0))
	require.Equal(t, 0, skipWhitespace("abc", 0))
	require.Equal(t, 3, skipWhitespace("abc", 3))
}

func TestSkipTrailingWhitespace(t *testing.T) {
	end, ok := skipTrailingWhitespace("abc   ", 3)
	require.True(t, ok)
	require.Equal(t, 6, end)

	_, ok = skipTrailingWhitespace("abc xyz", 3)
	require.False(t, ok)
}

func TestFixedWidth(t *testing.T) {
	buf := make([]byte, 4)
	writeFixedWidth(buf, 7, 4)
	require.Equal(t, "0007", string(buf))

	v, ok := parseFixedWidth("0007rest", 0, 4)
	require.True(t, ok)
	require.Equal(t, 7, v)

	_, ok = parseFixedWidth("00x7", 0, 4)
	require.False(t, ok)

	_, ok = parseFixedWidth("00", 0, 4)
	require.False(t, ok)
}
