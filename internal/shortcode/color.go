package shortcode

import "strings"

// Color is a badge color from the closed palette.
type Color string

// Palette colors.
const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorStone  Color = "stone"
	ColorBlack  Color = "black"
)

var paletteClasses = map[Color]string{
	ColorBlue:   "bento-badge-blue bg-blue-100 text-blue-800",
	ColorGreen:  "bento-badge-green bg-green-100 text-green-800",
	ColorYellow: "bento-badge-yellow bg-yellow-100 text-yellow-800",
	ColorRed:    "bento-badge-red bg-red-100 text-red-800",
	ColorStone:  "bento-badge-stone bg-stone-100 text-stone-800",
	ColorBlack:  "bento-badge-black bg-black text-white",
}

// Palette returns the palette colors in display order.
func Palette() []Color {
	return []Color{ColorBlue, ColorGreen, ColorYellow, ColorRed, ColorStone, ColorBlack}
}

// ParseColor maps s onto the palette. Anything outside it is ColorStone.
func ParseColor(s string) Color {
	c := Color(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := paletteClasses[c]; ok {
		return c
	}
	return ColorStone
}

// Classes returns the class list for c, falling back to stone.
func (c Color) Classes() string {
	if classes, ok := paletteClasses[c]; ok {
		return classes
	}
	return paletteClasses[ColorStone]
}
