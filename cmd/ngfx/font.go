package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/ngfx/internal/fontconv"
)

func runFont(args []string, stdout, stderr io.Writer) error {
	var (
		debug    bool
		output   string
		size     float64
		ranges   string
		wildcard string
		height   int
	)
	fs := newFlagSet("font", stderr, &debug)
	fs.StringVarP(&output, "output", "o", "", "Output font file (required)")
	fs.Float64VarP(&size, "size", "s", 14, "Font size in pixels per em")
	fs.StringVarP(&ranges, "ranges", "r", "20-7E,A0-17F", "Hex codepoint ranges to convert")
	fs.StringVar(&wildcard, "wildcard", "?", "Wildcard codepoint stored in the font")
	fs.IntVar(&height, "line-height", 0, "Line height override in pixels")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	setupLogging(debug, stderr)
	if fs.NArg() != 1 {
		return fmt.Errorf("font: expected one source font, got %d", fs.NArg())
	}
	if output == "" {
		return fmt.Errorf("font: --output is required")
	}

	rgs, err := parseRanges(ranges)
	if err != nil {
		return err
	}
	wc := []rune(wildcard)
	if len(wc) != 1 {
		return fmt.Errorf("font: wildcard must be one character, got %q", wildcard)
	}
	opts := fontconv.Options{
		Size:       size,
		LineHeight: height,
		Ranges:     rgs,
		Wildcard:   wc[0],
	}

	var res *fontconv.Result
	switch src := fs.Arg(0); src {
	case "builtin":
		res, err = fontconv.FromFace(basicfont.Face7x13, opts)
	case "goregular":
		res, err = fontconv.FromTTF(goregular.TTF, opts)
	default:
		data, rerr := os.ReadFile(src)
		if rerr != nil {
			return fmt.Errorf("font: %w", rerr)
		}
		res, err = fontconv.FromTTF(data, opts)
	}
	if err != nil {
		return err
	}
	if err := os.WriteFile(output, res.Font, 0o644); err != nil {
		return fmt.Errorf("font: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s: %d glyphs, %d bytes", output, res.Glyphs, len(res.Font))
	if len(res.Skipped) > 0 {
		fmt.Fprintf(stdout, ", %d skipped", len(res.Skipped))
	}
	fmt.Fprintln(stdout)
	return nil
}

// parseRanges parses comma-separated hex ranges such as "20-7E,A0".
func parseRanges(s string) ([]fontconv.Range, error) {
	var out []fontconv.Range
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		l, err := parseHexRune(lo)
		if err != nil {
			return nil, err
		}
		h := l
		if isRange {
			if h, err = parseHexRune(hi); err != nil {
				return nil, err
			}
		}
		if h < l {
			return nil, fmt.Errorf("range %q: end before start", part)
		}
		out = append(out, fontconv.Range{Lo: l, Hi: h})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no codepoint ranges in %q", s)
	}
	return out, nil
}

func parseHexRune(s string) (rune, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "U+"), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > 0x10FFFF {
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	return rune(v), nil
}
