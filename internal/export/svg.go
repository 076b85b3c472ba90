package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/rsvp/internal/token"
)

const (
	svgWidth  = 800
	svgHeight = 200
	svgStroke = "#ff00ff"
)

// WriteSVG draws the letter count of each token against its start time as a
// step line. Tokens without letters sit on the baseline.
func WriteSVG(w io.Writer, data Data) error {
	_, err := io.WriteString(w, TimelineToSVG(data, svgWidth, svgHeight, svgStroke))
	return err
}

// TimelineToSVG renders the timeline chart. An empty timeline yields an empty
// canvas.
func TimelineToSVG(data Data, width, height int, strokeColor string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<text x="8" y="16" fill="#888888" font-family="monospace" font-size="12">%s · %d wpm · %d tokens</text>
`, width, height, width, height, escape(data.Metadata.Source), data.Metadata.Rate, data.Metadata.Tokens))

	if len(data.Frames) == 0 {
		sb.WriteString("</svg>")
		return sb.String()
	}

	maxLetters := 1
	for _, f := range data.Frames {
		maxLetters = max(maxLetters, token.Token(f.Token).Letters())
	}
	total := float64(max(data.Metadata.TotalMs, 1))

	// leave room for the caption
	top, plotH := 24.0, float64(height)-32
	x := func(ms int64) float64 { return float64(ms) / total * float64(width) }
	y := func(n int) float64 { return top + plotH - float64(n)/float64(maxLetters)*plotH }

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, f := range data.Frames {
		n := token.Token(f.Token).Letters()
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x(f.StartMs), y(n)))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x(f.StartMs), y(n)))
		}
		end := data.Metadata.TotalMs
		if i+1 < len(data.Frames) {
			end = data.Frames[i+1].StartMs
		}
		sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x(end), y(n)))
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func escape(s string) string {
	return strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;").Replace(s)
}
