// Package token splits raw text into the display units of a reading session.
//
// A [Token] is a maximal run of non-whitespace characters. Punctuation stays
// attached to the word it touches; nothing is normalized or lower-cased.
//
//	seq := token.Tokenize("Hello,   world!")
//	// seq == Sequence{"Hello,", "world!"}
package token
