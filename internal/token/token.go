package token

import (
	"strings"
	"unicode"
)

// Token is one display unit. It never contains whitespace.
type Token string

// Sequence is the ordered token list produced from one input text.
type Sequence []Token

// Tokenize splits text on runs of whitespace. Empty or whitespace-only input
// yields an empty sequence.
func Tokenize(text string) Sequence {
	fields := strings.FieldsFunc(text, unicode.IsSpace)
	if len(fields) == 0 {
		return nil
	}
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		seq = append(seq, Token(f))
	}
	return seq
}

func (s Sequence) Len() int { return len(s) }

// At returns the token at i, or false when i is out of range.
func (s Sequence) At(i int) (Token, bool) {
	if i < 0 || i >= len(s) {
		return "", false
	}
	return s[i], true
}

func (t Token) String() string { return string(t) }

// Letters counts the alphabetic characters in t.
func (t Token) Letters() int {
	n := 0
	for _, r := range string(t) {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
