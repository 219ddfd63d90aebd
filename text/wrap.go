package text

// goodPostbreak reports whether a line should preferably end after r.
func goodPostbreak(r rune) bool {
	return r == ' '
}

// allowPrebreak reports whether a line may end after r with a hyphen.
// Spaces and trailing punctuation are excluded so a hyphen never follows
// them.
func allowPrebreak(r rune) bool {
	switch r {
	case ' ', '!', '"', ',', '.':
		return false
	}
	return true
}

// needsHyphen reports whether a line broken after r gets a hyphen: ASCII
// letters and digits and the Latin Extended-A and -B blocks.
func needsHyphen(r rune) bool {
	switch {
	case r >= '0' && r <= '9',
		r >= 'A' && r <= 'Z',
		r >= 'a' && r <= 'z',
		r >= 0x100 && r <= 0x24F:
		return true
	}
	return false
}

// ignoredAtLineEnd reports whether r is left out of a line's measured
// width when it ends the line.
func ignoredAtLineEnd(r rune) bool {
	return r == ' '
}
