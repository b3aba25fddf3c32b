package themes

import "github.com/charmbracelet/lipgloss"

// SpacingSizes lists the spacing scale names from smallest to largest.
var SpacingSizes = []string{"none", "xs", "sm", "md", "lg", "xl", "2xl", "3xl", "4xl"}

var spacingTable = map[string]int{
	"none": 0,
	"xs":   2,
	"sm":   3,
	"md":   4,
	"lg":   5,
	"xl":   6,
	"2xl":  7,
	"3xl":  8,
	"4xl":  9,
}

// Spacing returns the cell count for a spacing size such as "md".
func Spacing(size string) (int, bool) {
	n, ok := spacingTable[size]
	return n, ok
}

func spacingTokens() map[string]any {
	out := make(map[string]any, len(spacingTable))
	for size, n := range spacingTable {
		out[size] = n
	}
	return out
}

// Borders maps border names to lipgloss borders. "none" draws nothing.
var Borders = map[string]lipgloss.Border{
	"none":    {},
	"hidden":  lipgloss.HiddenBorder(),
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
}

// Border returns the border registered under name.
func Border(name string) (lipgloss.Border, bool) {
	b, ok := Borders[name]
	return b, ok
}
