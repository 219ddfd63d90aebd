package ngfx

import "image/color"

// Color is a packed 8-bit color with two bits per channel, laid out as
// aarrggbb.
//
// Alpha is binary: 0b11 means opaque and the color is drawn, every other
// alpha value means the color is skipped. There is no blending.
type Color uint8

// Alpha, Red, Green and Blue return the 2-bit channel values.
func (c Color) Alpha() uint8 { return uint8(c>>6) & 0b11 }
func (c Color) Red() uint8   { return uint8(c>>4) & 0b11 }
func (c Color) Green() uint8 { return uint8(c>>2) & 0b11 }
func (c Color) Blue() uint8  { return uint8(c) & 0b11 }

// Opaque reports whether the color is drawn at all.
func (c Color) Opaque() bool { return c.Alpha() == 0b11 }

// Equal reports whether two colors have the same packed value.
func (c Color) Equal(o Color) bool { return c == o }

// LegibleOver picks the monochrome color matching the brightness of c:
// white when the channel sum exceeds 6, black otherwise. It is used to
// choose a 1-bit substitute for a palette color.
func (c Color) LegibleOver() Color {
	if int(c.Red())+int(c.Green())+int(c.Blue()) > 6 {
		return ColorWhite
	}
	return ColorBlack
}

// RGBA implements color.Color. Each 2-bit channel is expanded to 16 bits
// and the binary alpha maps to fully opaque or fully transparent.
func (c Color) RGBA() (r, g, b, a uint32) {
	if !c.Opaque() {
		return 0, 0, 0, 0
	}
	expand := func(v uint8) uint32 { return uint32(v) * 0x5555 }
	return expand(c.Red()), expand(c.Green()), expand(c.Blue()), 0xffff
}

// Mono maps the color to the fill byte used on 1-bit targets: 0xFF for
// white, 0x00 for black and the 0x55 dither pattern for everything in
// between. Alpha is ignored; callers check Opaque first.
func (c Color) Mono() byte {
	switch c & 0b111111 {
	case 0b111111:
		return 0xFF
	case 0:
		return 0x00
	default:
		return 0x55
	}
}

// ColorFromRGBA quantizes 8-bit channels to a packed color.
func ColorFromRGBA(r, g, b, a uint8) Color {
	return Color((a>>6)<<6 | (r>>6)<<4 | (g>>6)<<2 | b>>6)
}

// ColorFromRGB quantizes 8-bit channels to an opaque packed color.
func ColorFromRGB(r, g, b uint8) Color {
	return ColorFromRGBA(r, g, b, 0xFF)
}

// ColorFromHex converts a 0xRRGGBB value to an opaque packed color.
func ColorFromHex(hex uint32) Color {
	return ColorFromRGB(uint8(hex>>16), uint8(hex>>8), uint8(hex))
}

// ColorFromStd quantizes any color.Color. Colors with less than half alpha
// become ColorClear.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A < 0x80 {
		return ColorClear
	}
	return ColorFromRGB(n.R, n.G, n.B)
}

// Named colors of the 64-color palette.
const (
	ColorClear                 Color = 0b00000000
	ColorBlack                 Color = 0b11000000
	ColorOxfordBlue            Color = 0b11000001
	ColorDarkBlue              Color = 0b11000010
	ColorBlue                  Color = 0b11000011
	ColorDarkGreen             Color = 0b11000100
	ColorMidnightGreen         Color = 0b11000101
	ColorCobaltBlue            Color = 0b11000110
	ColorBlueMoon              Color = 0b11000111
	ColorIslamicGreen          Color = 0b11001000
	ColorJaegerGreen           Color = 0b11001001
	ColorTiffanyBlue           Color = 0b11001010
	ColorVividCerulean         Color = 0b11001011
	ColorGreen                 Color = 0b11001100
	ColorMalachite             Color = 0b11001101
	ColorMediumSpringGreen     Color = 0b11001110
	ColorCyan                  Color = 0b11001111
	ColorBulgarianRose         Color = 0b11010000
	ColorImperialPurple        Color = 0b11010001
	ColorIndigo                Color = 0b11010010
	ColorElectricUltramarine   Color = 0b11010011
	ColorArmyGreen             Color = 0b11010100
	ColorDarkGray              Color = 0b11010101
	ColorLiberty               Color = 0b11010110
	ColorVeryLightBlue         Color = 0b11010111
	ColorKellyGreen            Color = 0b11011000
	ColorMayGreen              Color = 0b11011001
	ColorCadetBlue             Color = 0b11011010
	ColorPictonBlue            Color = 0b11011011
	ColorBrightGreen           Color = 0b11011100
	ColorScreaminGreen         Color = 0b11011101
	ColorMediumAquamarine      Color = 0b11011110
	ColorElectricBlue          Color = 0b11011111
	ColorDarkCandyAppleRed     Color = 0b11100000
	ColorJazzberryJam          Color = 0b11100001
	ColorPurple                Color = 0b11100010
	ColorVividViolet           Color = 0b11100011
	ColorWindsorTan            Color = 0b11100100
	ColorRoseVale              Color = 0b11100101
	ColorPurpureus             Color = 0b11100110
	ColorLavenderIndigo        Color = 0b11100111
	ColorLimerick              Color = 0b11101000
	ColorBrass                 Color = 0b11101001
	ColorLightGray             Color = 0b11101010
	ColorBabyBlueEyes          Color = 0b11101011
	ColorSpringBud             Color = 0b11101100
	ColorInchworm              Color = 0b11101101
	ColorMintGreen             Color = 0b11101110
	ColorCeleste               Color = 0b11101111
	ColorRed                   Color = 0b11110000
	ColorFolly                 Color = 0b11110001
	ColorFashionMagenta        Color = 0b11110010
	ColorMagenta               Color = 0b11110011
	ColorOrange                Color = 0b11110100
	ColorSunsetOrange          Color = 0b11110101
	ColorBrilliantRose         Color = 0b11110110
	ColorShockingPink          Color = 0b11110111
	ColorChromeYellow          Color = 0b11111000
	ColorRajah                 Color = 0b11111001
	ColorMelon                 Color = 0b11111010
	ColorRichBrilliantLavender Color = 0b11111011
	ColorYellow                Color = 0b11111100
	ColorIcterine              Color = 0b11111101
	ColorPastelYellow          Color = 0b11111110
	ColorWhite                 Color = 0b11111111
)
