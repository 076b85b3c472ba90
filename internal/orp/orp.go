// Package orp locates the optimal recognition point of a token: the character
// the reader's eye should fixate on.
package orp

import (
	"unicode"

	"github.com/san-kum/rsvp/internal/token"
)

// Offset maps a letter count to the letter-relative fixation offset.
func Offset(letters int) int {
	switch {
	case letters <= 3:
		return 0
	case letters <= 5:
		return 1
	case letters <= 9:
		return 2
	case letters <= 13:
		return 3
	default:
		return letters / 4
	}
}

// FixationIndex returns the rune index of the fixation character in t. The
// second result is false when t contains no letters.
func FixationIndex(t token.Token) (int, bool) {
	runes := []rune(string(t))

	start, letters := -1, 0
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			continue
		}
		if start < 0 {
			start = i
		}
		letters++
	}
	if start < 0 {
		return 0, false
	}

	k := Offset(letters)
	seen := 0
	for i := start; i < len(runes); i++ {
		if !unicode.IsLetter(runes[i]) {
			continue
		}
		if seen == k {
			return i, true
		}
		seen++
	}
	return start, true
}

// Split cuts t around its fixation character. Without a fixation point the
// whole token is returned in before and ok is false.
func Split(t token.Token) (before, pivot, after string, ok bool) {
	idx, ok := FixationIndex(t)
	if !ok {
		return string(t), "", "", false
	}
	runes := []rune(string(t))
	return string(runes[:idx]), string(runes[idx]), string(runes[idx+1:]), true
}
