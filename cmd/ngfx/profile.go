package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ngfx"
)

// Profile describes the panel a preview is rendered for.
type Profile struct {
	Name       string `yaml:"name"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Format     string `yaml:"format"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
}

var builtinProfiles = map[string]Profile{
	"aplite": {Name: "aplite", Width: 144, Height: 168, Format: "1bit", Background: "white", Foreground: "black"},
	"basalt": {Name: "basalt", Width: 144, Height: 168, Format: "8bit", Background: "white", Foreground: "black"},
	"chalk":  {Name: "chalk", Width: 180, Height: 180, Format: "8bit", Background: "white", Foreground: "black"},
}

// loadProfile returns a builtin profile by name or reads a YAML profile
// file. Fields missing from a file default to the basalt profile.
func loadProfile(nameOrPath string) (Profile, error) {
	if p, ok := builtinProfiles[nameOrPath]; ok {
		return p, nil
	}
	data, err := os.ReadFile(nameOrPath)
	if err != nil {
		return Profile{}, fmt.Errorf("profile: %w", err)
	}
	p := builtinProfiles["basalt"]
	p.Name = ""
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", nameOrPath, err)
	}
	if p.Width <= 0 || p.Height <= 0 {
		return Profile{}, fmt.Errorf("profile %s: invalid size %dx%d", nameOrPath, p.Width, p.Height)
	}
	return p, nil
}

func (p Profile) format() (ngfx.Format, error) {
	switch strings.ToLower(p.Format) {
	case "1bit", "1bpp", "mono":
		return ngfx.Format1Bit, nil
	case "8bit", "8bpp", "color", "":
		return ngfx.Format8Bit, nil
	}
	return 0, fmt.Errorf("profile: unknown format %q", p.Format)
}

// framebuffer allocates a framebuffer for the panel, cleared to the
// background color.
func (p Profile) framebuffer() (*ngfx.Framebuffer, error) {
	format, err := p.format()
	if err != nil {
		return nil, err
	}
	bg, err := parseColor(p.Background)
	if err != nil {
		return nil, err
	}
	fb, err := ngfx.AllocFramebuffer(p.Width, p.Height, format)
	if err != nil {
		return nil, err
	}
	fb.Clear(bg)
	return fb, nil
}

var namedColors = map[string]ngfx.Color{
	"clear":     ngfx.ColorClear,
	"black":     ngfx.ColorBlack,
	"white":     ngfx.ColorWhite,
	"lightgray": ngfx.ColorLightGray,
	"darkgray":  ngfx.ColorDarkGray,
	"red":       ngfx.ColorRed,
	"green":     ngfx.ColorGreen,
	"blue":      ngfx.ColorBlue,
	"yellow":    ngfx.ColorYellow,
	"orange":    ngfx.ColorOrange,
}

// parseColor accepts a color name or "#rrggbb". The empty string is
// clear.
func parseColor(s string) (ngfx.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ngfx.ColorClear, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok && len(hex) == 6 {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err == nil {
			return ngfx.ColorFromHex(uint32(v)), nil
		}
	}
	return 0, fmt.Errorf("invalid color %q", s)
}
