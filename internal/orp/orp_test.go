package orp

import (
	"strings"
	"testing"

	"github.com/san-kum/rsvp/internal/token"
)

func TestOffset(t *testing.T) {
	tests := []struct {
		letters int
		want    int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 0},
		{4, 1},
		{5, 1},
		{6, 2},
		{9, 2},
		{10, 3},
		{13, 3},
		{14, 3},
		{15, 3},
		{16, 4},
		{20, 5},
		{41, 10},
	}
	for _, tt := range tests {
		if got := Offset(tt.letters); got != tt.want {
			t.Errorf("Offset(%d) = %d, want %d", tt.letters, got, tt.want)
		}
	}
}

func TestFixationIndex(t *testing.T) {
	tests := []struct {
		name  string
		tok   token.Token
		want  int
		found bool
	}{
		{"single letter", "a", 0, true},
		{"focus", "focus", 1, true},
		{"three letters", "the", 0, true},
		{"four letters", "word", 1, true},
		{"six letters", "reader", 2, true},
		{"ten letters", "comprehend", 3, true},
		{"twenty letters", token.Token(strings.Repeat("x", 20)), 5, true},
		{"leading quote", "\"focus", 2, true},
		{"leading punctuation run", "(...hello", 5, true},
		{"trailing punctuation", "focus,", 1, true},
		{"apostrophe skipped", "o'clock", 3, true},
		{"hyphen skipped", "a-bcd", 2, true},
		{"digits before letters", "3rd", 1, true},
		{"multibyte letters", "éclair", 2, true},
		{"no letters", "42", 0, false},
		{"punctuation only", "--", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FixationIndex(tt.tok)
			if ok != tt.found {
				t.Fatalf("FixationIndex(%q) ok = %v, want %v", tt.tok, ok, tt.found)
			}
			if got != tt.want {
				t.Errorf("FixationIndex(%q) = %d, want %d", tt.tok, got, tt.want)
			}
		})
	}
}

func TestFixationIndex_LandsOnLetter(t *testing.T) {
	for _, tok := range token.Tokenize(`"Well," she said -- it's 3rd-rate (mostly) nonsense!`) {
		idx, ok := FixationIndex(tok)
		if !ok {
			continue
		}
		r := []rune(string(tok))[idx]
		if !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z') {
			t.Errorf("FixationIndex(%q) = %d, points at %q", tok, idx, r)
		}
	}
}

func TestFixationIndex_Deterministic(t *testing.T) {
	tok := token.Token("extraordinarily")
	first, _ := FixationIndex(tok)
	for i := 0; i < 10; i++ {
		if got, _ := FixationIndex(tok); got != first {
			t.Fatalf("call %d returned %d, first returned %d", i, got, first)
		}
	}
}

func TestSplit(t *testing.T) {
	before, pivot, after, ok := Split("focus")
	if !ok || before != "f" || pivot != "o" || after != "cus" {
		t.Errorf("Split(focus) = %q %q %q %v", before, pivot, after, ok)
	}

	before, pivot, after, ok = Split("éclair!")
	if !ok || before != "éc" || pivot != "l" || after != "air!" {
		t.Errorf("Split(éclair!) = %q %q %q %v", before, pivot, after, ok)
	}

	before, pivot, after, ok = Split("1984")
	if ok || before != "1984" || pivot != "" || after != "" {
		t.Errorf("Split(1984) = %q %q %q %v", before, pivot, after, ok)
	}
}
