package viz

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/rsvp/internal/orp"
	"github.com/san-kum/rsvp/internal/playback"
	"github.com/san-kum/rsvp/internal/token"
)

// Stats summarizes a token sequence.
type Stats struct {
	Tokens     int
	NoLetters  int
	MaxLetters int
	AvgLetters float64
	// Lengths[n] counts tokens with n letters.
	Lengths []float64
	// Offsets[n] counts tokens whose fixation sits n letters in.
	Offsets []float64
}

func ComputeStats(seq token.Sequence) Stats {
	st := Stats{Tokens: len(seq)}
	total := 0
	for _, tok := range seq {
		n := tok.Letters()
		if n == 0 {
			st.NoLetters++
			continue
		}
		total += n
		st.MaxLetters = max(st.MaxLetters, n)
	}
	if withLetters := st.Tokens - st.NoLetters; withLetters > 0 {
		st.AvgLetters = float64(total) / float64(withLetters)
	}

	st.Lengths = make([]float64, st.MaxLetters+1)
	st.Offsets = make([]float64, orp.Offset(st.MaxLetters)+1)
	for _, tok := range seq {
		n := tok.Letters()
		if n == 0 {
			continue
		}
		st.Lengths[n]++
		st.Offsets[orp.Offset(n)]++
	}
	return st
}

// RenderStats prints counts, reading-time estimates for each rate, and plots of
// the letter-count and fixation-offset distributions.
func RenderStats(seq token.Sequence, rates map[string]int, order []string) string {
	st := ComputeStats(seq)

	var b strings.Builder
	fmt.Fprintf(&b, "tokens: %d\n", st.Tokens)
	fmt.Fprintf(&b, "without letters: %d\n", st.NoLetters)
	fmt.Fprintf(&b, "average letters: %.2f\n", st.AvgLetters)
	fmt.Fprintf(&b, "longest: %d letters\n\n", st.MaxLetters)

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tWPM\tINTERVAL\tTOTAL")
	for _, name := range order {
		wpm := rates[name]
		fmt.Fprintf(w, "%s\t%d\t%v\t%v\n", name, wpm, playback.Interval(wpm), playback.ReadingTime(st.Tokens, wpm).Round(time.Second))
	}
	w.Flush()

	if len(st.Lengths) > 2 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(st.Lengths,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption("tokens by letter count"),
		))
		b.WriteString("\n")
	}
	if len(st.Offsets) > 2 {
		b.WriteString("\n")
		b.WriteString(asciigraph.Plot(st.Offsets,
			asciigraph.Height(6),
			asciigraph.Width(60),
			asciigraph.Caption("tokens by fixation offset"),
		))
		b.WriteString("\n")
	}
	return b.String()
}
