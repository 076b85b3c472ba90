package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Before  lipgloss.Style
	Pivot   lipgloss.Style
	After   lipgloss.Style
	Marker  lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Playing lipgloss.Style
	Paused  lipgloss.Style
	Help    lipgloss.Style
	Panel   lipgloss.Style
	BarHigh lipgloss.Style
	BarLow  lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Before:  lipgloss.NewStyle().Foreground(t.Word).Bold(true),
		Pivot:   lipgloss.NewStyle().Foreground(t.Pivot).Bold(true).Underline(true),
		After:   lipgloss.NewStyle().Foreground(t.Tail),
		Marker:  lipgloss.NewStyle().Foreground(t.Pivot),
		Title:   lipgloss.NewStyle().Foreground(t.Title).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(t.Muted).Width(10),
		Value:   lipgloss.NewStyle().Foreground(t.Word),
		Playing: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Paused:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(t.Border).Padding(1, 2),
		BarHigh: lipgloss.NewStyle().Foreground(t.Accent),
		BarLow:  lipgloss.NewStyle().Foreground(t.Muted),
	}
}

// ProgressBar renders fraction in [0, 1] as a bar of width cells.
func ProgressBar(fraction float64, width int, s Styles) string {
	filled := int(fraction * float64(width))
	filled = max(0, min(filled, width))
	return s.BarHigh.Render(strings.Repeat("█", filled)) + s.BarLow.Render(strings.Repeat("░", width-filled))
}

// GradientText colors each character of text between two hex colors.
func GradientText(text string, from, to lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	fr, fg, fb := parseHex(string(from))
	tr, tg, tb := parseHex(string(to))

	var b strings.Builder
	for i, c := range runes {
		f := 0.0
		if len(runes) > 1 {
			f = float64(i) / float64(len(runes)-1)
		}
		color := lipgloss.Color(hexColor(lerp(fr, tr, f), lerp(fg, tg, f), lerp(fb, tb, f)))
		b.WriteString(lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(c)))
	}
	return b.String()
}

// Separator draws a muted rule with a centered diamond.
func Separator(width int, s Styles) string {
	if width < 8 {
		return s.BarLow.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	return s.BarLow.Render(strings.Repeat("─", mid-2) + " ◆ " + strings.Repeat("─", width-mid-1))
}

func lerp(a, b int, f float64) int { return a + int(f*float64(b-a)) }

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	v, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return 255, 255, 255
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

func hexColor(r, g, b int) string {
	clamp := func(v int) int { return max(0, min(v, 255)) }
	return "#" + pad2(strconv.FormatInt(int64(clamp(r)), 16)) +
		pad2(strconv.FormatInt(int64(clamp(g)), 16)) +
		pad2(strconv.FormatInt(int64(clamp(b)), 16))
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
