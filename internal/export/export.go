package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/rsvp/internal/playback"
)

var ErrUnknownFormat = errors.New("export: unknown format")

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

type Metadata struct {
	Source     string    `json:"source"`
	Rate       int       `json:"rate"`
	Tokens     int       `json:"tokens"`
	TotalMs    int64     `json:"total_ms"`
	IntervalMs float64   `json:"interval_ms"`
	Timestamp  time.Time `json:"timestamp"`
}

type Frame struct {
	Index    int    `json:"index"`
	Token    string `json:"token"`
	Fixation *int   `json:"fixation"`
	StartMs  int64  `json:"start_ms"`
}

type Data struct {
	Metadata Metadata `json:"metadata"`
	Frames   []Frame  `json:"frames"`
}

// Build converts a playback timeline into its exported form.
func Build(source string, rate int, frames []playback.Frame) Data {
	rate = playback.ClampRate(rate)
	data := Data{
		Metadata: Metadata{
			Source:     source,
			Rate:       rate,
			Tokens:     len(frames),
			TotalMs:    playback.ReadingTime(len(frames), rate).Milliseconds(),
			IntervalMs: float64(playback.Interval(rate)) / float64(time.Millisecond),
			Timestamp:  time.Now().UTC(),
		},
		Frames: make([]Frame, len(frames)),
	}
	for i, f := range frames {
		out := Frame{
			Index:   f.Index,
			Token:   string(f.Token),
			StartMs: f.Start.Milliseconds(),
		}
		if f.HasFixation {
			idx := f.Fixation
			out.Fixation = &idx
		}
		data.Frames[i] = out
	}
	return data
}

// Write encodes data to w in the given format.
func Write(w io.Writer, format string, data Data) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return WriteCSV(w, data)
	case FormatJSON:
		return WriteJSON(w, data)
	case FormatSVG:
		return WriteSVG(w, data)
	}
	return fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownFormat, format, FormatCSV, FormatJSON, FormatSVG)
}

func WriteJSON(w io.Writer, data Data) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per token. Tokens without a fixation point get an
// empty fixation column.
func WriteCSV(w io.Writer, data Data) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"index", "start_ms", "token", "fixation", "pivot"}); err != nil {
		return err
	}
	for _, f := range data.Frames {
		fixation, pivot := "", ""
		if f.Fixation != nil {
			fixation = strconv.Itoa(*f.Fixation)
			pivot = string([]rune(f.Token)[*f.Fixation])
		}
		row := []string{
			strconv.Itoa(f.Index),
			strconv.FormatInt(f.StartMs, 10),
			f.Token,
			fixation,
			pivot,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes data to path, picking the format from the extension when
// format is empty.
func WriteFile(path, format string, data Data) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	switch strings.ToLower(format) {
	case FormatCSV, FormatJSON, FormatSVG:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := Write(file, format, data); err != nil {
		return err
	}
	return file.Close()
}
