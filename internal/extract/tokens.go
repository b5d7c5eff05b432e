package extract

import (
	"regexp"
	"strings"
)

// tokenKind separates word tokens from numeric tokens.
type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenNumber
)

// token is one scanned unit of ASCII-normalized text with its byte span
// and line number.
type token struct {
	text  string
	start int
	end   int
	line  int
	kind  tokenKind
}

// tokenPattern captures words (apostrophe-attached suffixes included)
// and digit groups with decimal separators.
var tokenPattern = regexp.MustCompile(`[a-z]+(?:['’][a-z]+)*|\d+(?:[.,]\d+)*`)

// digitGapPattern matches the short separators that join digit groups of
// one phone-shaped run (spaces, dots, dashes, parentheses).
var digitGapPattern = regexp.MustCompile(`^[ \t.()/-]{0,3}$`)

// tokenize splits ASCII-normalized text into word and number tokens.
func tokenize(text string) []token {
	matches := tokenPattern.FindAllStringIndex(text, -1)
	tokens := make([]token, 0, len(matches))

	line := 0
	scanned := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		line += strings.Count(text[scanned:start], "\n")
		scanned = start

		tok := token{text: text[start:end], start: start, end: end, line: line}
		if tok.text[0] >= '0' && tok.text[0] <= '9' {
			tok.kind = tokenNumber
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// isDigitish treats masked phone groups (xx, xxx) like digit groups so
// run detection still works on partially hidden numbers.
func isDigitish(tok token) bool {
	if tok.kind == tokenNumber {
		return true
	}
	return strings.Trim(tok.text, "x") == ""
}

// inDigitRun reports whether the token at index i sits next to another
// digit-shaped token with only phone-style separators between them.
func inDigitRun(src string, tokens []token, i int) bool {
	if i > 0 && isDigitish(tokens[i-1]) {
		if digitGapPattern.MatchString(src[tokens[i-1].end:tokens[i].start]) {
			return true
		}
	}
	if i+1 < len(tokens) && isDigitish(tokens[i+1]) {
		if digitGapPattern.MatchString(src[tokens[i].end:tokens[i+1].start]) {
			return true
		}
	}
	return false
}
