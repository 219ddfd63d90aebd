package text

// decodeRune decodes the UTF-8 sequence starting at s[i] and returns the
// codepoint and the number of bytes consumed.
//
// Continuation bytes are not validated. A byte that cannot start a
// sequence, or a sequence cut short by the end of s, decodes to codepoint
// 0 and consumes one byte, so a decoder loop always makes progress.
func decodeRune(s string, i int) (rune, int) {
	b := s[i]
	var cp rune
	var n int
	switch {
	case b&0x80 == 0:
		return rune(b), 1
	case b&0xE0 == 0xC0:
		cp, n = rune(b&0x1F), 2
	case b&0xF0 == 0xE0:
		cp, n = rune(b&0x0F), 3
	case b&0xF8 == 0xF0:
		cp, n = rune(b&0x07), 4
	default:
		return 0, 1
	}
	if i+n > len(s) {
		return 0, 1
	}
	for k := 1; k < n; k++ {
		cp = cp<<6 | rune(s[i+k]&0x3F)
	}
	return cp, n
}
