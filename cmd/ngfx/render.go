package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/basicfont"

	"github.com/gogpu/ngfx"
	"github.com/gogpu/ngfx/drawcmd"
	"github.com/gogpu/ngfx/internal/fontconv"
	"github.com/gogpu/ngfx/text"
)

type renderOptions struct {
	profile  string
	output   string
	icon     string
	sequence bool
	frame    int
	at       int
	font     string
	align    string
	margin   int
	offset   []int
}

func runRender(args []string, stdout, stderr io.Writer) error {
	var (
		debug bool
		o     renderOptions
	)
	fs := newFlagSet("render", stderr, &debug)
	fs.StringVarP(&o.profile, "profile", "p", "basalt", "Panel profile name or YAML file")
	fs.StringVarP(&o.output, "output", "o", "", "Output PNG file (required)")
	fs.StringVarP(&o.icon, "icon", "i", "", "Draw-command image or sequence (.pdc blob or YAML source)")
	fs.BoolVar(&o.sequence, "sequence", false, "Treat a blob without resource header as a sequence")
	fs.IntVar(&o.frame, "frame", -1, "Sequence frame index")
	fs.IntVar(&o.at, "at", 0, "Sequence time in milliseconds, used when --frame is not set")
	fs.StringVarP(&o.font, "font", "f", "", "Font blob for text (default: built-in 7x13)")
	fs.StringVarP(&o.align, "align", "a", "left", "Text alignment: left, center or right")
	fs.IntVarP(&o.margin, "margin", "m", 4, "Text box margin in pixels")
	fs.IntSliceVar(&o.offset, "offset", []int{0, 0}, "Icon offset as x,y")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	setupLogging(debug, stderr)
	if o.output == "" {
		return fmt.Errorf("render: --output is required")
	}
	msg := strings.Join(fs.Args(), " ")
	if o.icon == "" && msg == "" {
		return fmt.Errorf("render: nothing to render, pass --icon or text")
	}

	fb, err := render(o, msg)
	if err != nil {
		return err
	}
	if err := fb.SavePNG(o.output); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s: %dx%d\n", o.output, fb.Width(), fb.Height())
	return nil
}

func render(o renderOptions, msg string) (*ngfx.Framebuffer, error) {
	prof, err := loadProfile(o.profile)
	if err != nil {
		return nil, err
	}
	fb, err := prof.framebuffer()
	if err != nil {
		return nil, err
	}
	ctx, err := ngfx.NewContext(fb)
	if err != nil {
		return nil, err
	}

	if o.icon != "" {
		if len(o.offset) != 2 {
			return nil, fmt.Errorf("render: --offset needs x,y")
		}
		if err := drawIcon(ctx, o, ngfx.Pt(o.offset[0], o.offset[1])); err != nil {
			return nil, err
		}
	}
	if msg != "" {
		fg, err := parseColor(prof.Foreground)
		if err != nil {
			return nil, err
		}
		align, err := parseAlignment(o.align)
		if err != nil {
			return nil, err
		}
		font, err := loadFont(o.font)
		if err != nil {
			return nil, err
		}
		defer font.Close()
		ctx.SetTextColor(fg)
		box := ngfx.R(o.margin, o.margin, fb.Width()-2*o.margin, fb.Height()-2*o.margin)
		layout := text.NewLayout(msg, font, box, text.WithAlignment(align))
		if layout.Truncated {
			ngfx.Logger().Warn("render: text truncated", "lines", len(layout.Lines))
		}
		layout.Draw(ctx)
	}
	return fb, nil
}

func drawIcon(ctx *ngfx.Context, o renderOptions, offset ngfx.Point) error {
	data, err := os.ReadFile(o.icon)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	seq := o.sequence
	switch ext := strings.ToLower(filepath.Ext(o.icon)); {
	case ext == ".yaml" || ext == ".yml":
		if data, seq, err = compileIcon(data); err != nil {
			return err
		}
	case bytes.HasPrefix(data, []byte(drawcmd.MagicImage)):
		img, err := drawcmd.ParseImageFile(data)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		drawcmd.DrawImage(ctx, img, offset)
		return nil
	case bytes.HasPrefix(data, []byte(drawcmd.MagicSequence)):
		s, err := drawcmd.ParseSequenceFile(data)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return drawSequence(ctx, s, o, offset)
	}

	if !seq {
		img, err := drawcmd.ParseImage(data)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		drawcmd.DrawImage(ctx, img, offset)
		return nil
	}
	s, err := drawcmd.ParseSequence(data)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return drawSequence(ctx, s, o, offset)
}

func drawSequence(ctx *ngfx.Context, s *drawcmd.Sequence, o renderOptions, offset ngfx.Point) error {
	var frame drawcmd.Frame
	var ok bool
	if o.frame >= 0 {
		frame, ok = s.Frame(o.frame)
	} else {
		frame, ok = s.FrameAtElapsed(uint32(max(o.at, 0)))
	}
	if !ok {
		return fmt.Errorf("render: sequence has no frame %d (of %d)", o.frame, s.NumFrames())
	}
	drawcmd.DrawFrame(ctx, frame, offset)
	return nil
}

// loadFont opens a font blob, or converts the built-in 7x13 face when
// path is empty.
func loadFont(path string) (*text.Font, error) {
	if path != "" {
		return text.OpenFont(path)
	}
	res, err := fontconv.FromFace(basicfont.Face7x13, fontconv.Options{
		Ranges:   []fontconv.Range{{Lo: 0x20, Hi: 0x7E}},
		Wildcard: '?',
	})
	if err != nil {
		return nil, err
	}
	return text.NewFontFromBytes(res.Font)
}

func parseAlignment(s string) (text.Alignment, error) {
	switch strings.ToLower(s) {
	case "left", "":
		return text.AlignLeft, nil
	case "center", "centre":
		return text.AlignCenter, nil
	case "right":
		return text.AlignRight, nil
	}
	return 0, fmt.Errorf("invalid alignment %q", s)
}
