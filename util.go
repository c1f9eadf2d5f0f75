package exess

// Surface utilities shared by every reader: whitespace skipping and
// character classification. These mirror read_utils.c / string_utils.h,
// keeping to small, single-purpose byte predicates rather than a regexp
// or unicode table.

// isWhitespace reports whether b is XML whitespace: space, tab, CR, LF,
// form feed, or vertical tab.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n', '\f', '\v':
		return true
	}
	return false
}

// isDigit reports whether b is a decimal digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// isHexDigit reports whether b is a hexadecimal digit (upper or lower case).
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'A' && b <= 'F') || (b >= 'a' && b <= 'f')
}

// isBase64Char reports whether b is in the standard (RFC 4648) base64
// alphabet, including the '=' padding character.
func isBase64Char(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '+' || b == '/' || b == '=':
		return true
	}
	return false
}

// hexValue returns the numeric value of the hex digit b. The caller must
// have already checked isHexDigit(b).
func hexValue(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10
	default:
		return b - 'a' + 10
	}
}

const hexChars = "0123456789ABCDEF"

// skipWhitespace returns the index of the first non-whitespace byte in
// s[i:], scanning forward from i.
func skipWhitespace(s string, i int) int {
	for i < len(s) && isWhitespace(s[i]) {
		i++
	}
	return i
}

// skipTrailingWhitespace reports whether s[i:] consists entirely of
// whitespace (possibly empty), which is the standard "reject trailing junk"
// check every fixed-result reader performs before returning ExpectedEnd.
func skipTrailingWhitespace(s string, i int) (end int, ok bool) {
	end = skipWhitespace(s, i)
	return end, end == len(s)
}

// writeFixedWidth writes the decimal representation of v into buf,
// left-padded with '0' to exactly width digits. v must fit in width digits.
func writeFixedWidth(buf []byte, v int, width int) {
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte('0' + v%10)
		v /= 10
	}
}

// parseFixedWidth parses exactly width decimal digits from s[i:] into an
// int, returning ok=false if any of those bytes is not a digit (including
// running off the end of s).
func parseFixedWidth(s string, i int, width int) (v int, ok bool) {
	if i+width > len(s) {
		return 0, false
	}
	for k := 0; k < width; k++ {
		c := s[i+k]
		if !isDigit(c) {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
