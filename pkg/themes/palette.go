package themes

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const shadeCount = 10

// shadeNames index a Shades scale, lightest first, using Tailwind's numbering.
var shadeNames = [shadeCount]string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// Shades is a ten-step colour scale from lightest (50) to darkest (900).
type Shades [shadeCount]lipgloss.Color

// Shade returns the colour for a Tailwind shade number such as "500".
func (s Shades) Shade(name string) (lipgloss.Color, bool) {
	for i, shade := range shadeNames {
		if shade == name && s[i] != "" {
			return s[i], true
		}
	}
	return "", false
}

func (s Shades) tokens() map[string]any {
	out := make(map[string]any, shadeCount)
	for i, shade := range shadeNames {
		out[shade] = string(s[i])
	}
	return out
}

// Families are the colour scales shared by every built-in theme.
var Families = map[string]Shades{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"purple": {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"},
	"cyan":   {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"},
}

// PaletteColor resolves a "family.shade" reference such as "blue.500".
func PaletteColor(ref string) (lipgloss.Color, bool) {
	family, shade, ok := strings.Cut(ref, ".")
	if !ok {
		return "", false
	}
	if _, err := strconv.Atoi(shade); err != nil {
		return "", false
	}
	shades, ok := Families[family]
	if !ok {
		return "", false
	}
	return shades.Shade(shade)
}

// ColourSet is a semantic colour slot: a base colour, the text colour that
// reads on it, a muted variant and an accent.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

func (c ColourSet) tokens(dark bool) map[string]any {
	pick := func(ac lipgloss.AdaptiveColor) string {
		if dark {
			return ac.Dark
		}
		return ac.Light
	}
	return map[string]any{
		"base":     pick(c.Base),
		"onBase":   pick(c.OnBase),
		"muted":    pick(c.Muted),
		"contrast": pick(c.Contrast),
	}
}

// Palette names the semantic slots style documents refer to.
type Palette map[string]ColourSet

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func defaultPalette() Palette {
	return Palette{
		"primary":   {Base: ac("#3b82f6", "#60a5fa"), OnBase: ac("#f8fafc", "#0b1120"), Muted: ac("#2563eb", "#1d4ed8"), Contrast: ac("#facc15", "#ca8a04")},
		"secondary": {Base: ac("#a855f7", "#c084fc"), OnBase: ac("#f8fafc", "#1f2937"), Muted: ac("#7c3aed", "#6b21a8"), Contrast: ac("#f472b6", "#f472b6")},
		"surface":   {Base: ac("#f9fafb", "#111827"), OnBase: ac("#111827", "#f9fafb"), Muted: ac("#e2e8f0", "#1f2937"), Contrast: ac("#3b82f6", "#60a5fa")},
		"success":   {Base: ac("#22c55e", "#4ade80"), OnBase: ac("#052e16", "#022c22"), Muted: ac("#16a34a", "#15803d"), Contrast: ac("#f8fafc", "#f8fafc")},
		"warning":   {Base: ac("#eab308", "#facc15"), OnBase: ac("#422006", "#422006"), Muted: ac("#ca8a04", "#a16207"), Contrast: ac("#111827", "#111827")},
		"danger":    {Base: ac("#ef4444", "#f87171"), OnBase: ac("#7f1d1d", "#450a0a"), Muted: ac("#dc2626", "#b91c1c"), Contrast: ac("#f8fafc", "#f8fafc")},
		"info":      {Base: ac("#06b6d4", "#22d3ee"), OnBase: ac("#083344", "#04121a"), Muted: ac("#0891b2", "#0e7490"), Contrast: ac("#f8fafc", "#f8fafc")},
		"neutral":   {Base: ac("#64748b", "#94a3b8"), OnBase: ac("#f1f5f9", "#0f172a"), Muted: ac("#475569", "#334155"), Contrast: ac("#f8fafc", "#f8fafc")},
	}
}

// darkPalette darkens the surface and neutral slots.
func darkPalette() Palette {
	p := defaultPalette()
	p["surface"] = ColourSet{Base: ac("#111827", "#0b1120"), OnBase: ac("#f9fafb", "#e5e7eb"), Muted: ac("#1f2937", "#111827"), Contrast: ac("#3b82f6", "#60a5fa")}
	p["neutral"] = ColourSet{Base: ac("#475569", "#334155"), OnBase: ac("#e5e7eb", "#cbd5f5"), Muted: ac("#374151", "#1f2937"), Contrast: ac("#f8fafc", "#f8fafc")}
	return p
}
