package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ngfx"
	"github.com/gogpu/ngfx/drawcmd"
)

// iconSource is the YAML form of a draw-command image or sequence.
// An icon with frames compiles to a sequence, otherwise to an image.
type iconSource struct {
	ViewBox   [2]int16      `yaml:"viewbox"`
	Commands  []shapeSource `yaml:"commands"`
	PlayCount uint16        `yaml:"play_count"`
	Frames    []frameSource `yaml:"frames"`
}

type frameSource struct {
	Duration uint16        `yaml:"duration"`
	Commands []shapeSource `yaml:"commands"`
}

type shapeSource struct {
	Type   string     `yaml:"type"`
	Stroke string     `yaml:"stroke"`
	Fill   string     `yaml:"fill"`
	Width  uint8      `yaml:"width"`
	Open   bool       `yaml:"open"`
	Hidden bool       `yaml:"hidden"`
	Radius uint16     `yaml:"radius"`
	Points [][2]int16 `yaml:"points"`
	BW     *struct {
		Stroke string `yaml:"stroke"`
		Fill   string `yaml:"fill"`
	} `yaml:"bw"`
}

var shapeTypes = map[string]drawcmd.Type{
	"path":           drawcmd.TypePath,
	"circle":         drawcmd.TypeCircle,
	"precise-path":   drawcmd.TypePrecisePath,
	"precise-circle": drawcmd.TypePreciseCircle,
}

var bwColors = map[string]drawcmd.BWColor{
	"clear": drawcmd.BWClear,
	"gray":  drawcmd.BWGray,
	"black": drawcmd.BWBlack,
	"white": drawcmd.BWWhite,
}

func (s shapeSource) shape() (drawcmd.Shape, error) {
	typ, ok := shapeTypes[strings.ToLower(s.Type)]
	if !ok {
		return drawcmd.Shape{}, fmt.Errorf("unknown command type %q", s.Type)
	}
	stroke, err := parseColor(s.Stroke)
	if err != nil {
		return drawcmd.Shape{}, err
	}
	fill, err := parseColor(s.Fill)
	if err != nil {
		return drawcmd.Shape{}, err
	}
	sh := drawcmd.Shape{
		Type:        typ,
		Hidden:      s.Hidden,
		StrokeColor: stroke,
		StrokeWidth: s.Width,
		FillColor:   fill,
		Open:        s.Open,
		Radius:      s.Radius,
	}
	if s.BW != nil {
		sh.UseBW = true
		if sh.BWStroke, ok = bwColors[s.BW.Stroke]; !ok {
			return drawcmd.Shape{}, fmt.Errorf("unknown b/w color %q", s.BW.Stroke)
		}
		if sh.BWFill, ok = bwColors[s.BW.Fill]; !ok {
			return drawcmd.Shape{}, fmt.Errorf("unknown b/w color %q", s.BW.Fill)
		}
	}
	for _, p := range s.Points {
		sh.Points = append(sh.Points, ngfx.Point{X: p[0], Y: p[1]})
	}
	return sh, nil
}

func shapes(src []shapeSource) ([]drawcmd.Shape, error) {
	out := make([]drawcmd.Shape, 0, len(src))
	for i, s := range src {
		sh, err := s.shape()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i, err)
		}
		out = append(out, sh)
	}
	return out, nil
}

// compileIcon turns YAML icon source into a draw-command blob. It reports
// whether the blob is a sequence.
func compileIcon(data []byte) (blob []byte, sequence bool, err error) {
	var src iconSource
	if err := yaml.Unmarshal(data, &src); err != nil {
		return nil, false, fmt.Errorf("icon: %w", err)
	}
	viewBox := ngfx.Size{W: src.ViewBox[0], H: src.ViewBox[1]}
	if len(src.Frames) == 0 {
		list, err := shapes(src.Commands)
		if err != nil {
			return nil, false, fmt.Errorf("icon: %w", err)
		}
		blob, err = drawcmd.EncodeImage(viewBox, list)
		return blob, false, err
	}
	if len(src.Commands) > 0 {
		return nil, true, fmt.Errorf("icon: commands and frames are exclusive")
	}
	frames := make([]drawcmd.FrameShapes, len(src.Frames))
	for i, f := range src.Frames {
		list, err := shapes(f.Commands)
		if err != nil {
			return nil, true, fmt.Errorf("icon: frame %d: %w", i, err)
		}
		frames[i] = drawcmd.FrameShapes{Duration: f.Duration, Shapes: list}
	}
	blob, err = drawcmd.EncodeSequence(viewBox, src.PlayCount, frames)
	return blob, true, err
}

func runIcon(args []string, stdout, stderr io.Writer) error {
	var (
		debug  bool
		output string
		raw    bool
	)
	fs := newFlagSet("icon", stderr, &debug)
	fs.StringVarP(&output, "output", "o", "", "Output file (required)")
	fs.BoolVar(&raw, "raw", false, "Write the bare blob without the resource header")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	setupLogging(debug, stderr)
	if fs.NArg() != 1 {
		return fmt.Errorf("icon: expected one YAML source, got %d", fs.NArg())
	}
	if output == "" {
		return fmt.Errorf("icon: --output is required")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	blob, seq, err := compileIcon(data)
	if err != nil {
		return err
	}
	kind := "image"
	if !raw {
		magic := drawcmd.MagicImage
		if seq {
			magic = drawcmd.MagicSequence
		}
		blob = drawcmd.WrapFile(magic, blob)
	}
	if seq {
		kind = "sequence"
	}
	if err := os.WriteFile(output, blob, 0o644); err != nil {
		return fmt.Errorf("icon: %w", err)
	}
	fmt.Fprintf(stdout, "wrote %s: %s, %d bytes\n", output, kind, len(blob))
	return nil
}
