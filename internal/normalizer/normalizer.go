package normalizer

import (
	"regexp"
	"strings"
)

// Normalizer prepares raw freight messages for the extractors. The fold
// is line-preserving: multi-route layouts depend on line structure, so
// vertical whitespace is kept while horizontal whitespace collapses.
type Normalizer struct {
	invisiblePattern *regexp.Regexp
	hspacePattern    *regexp.Regexp
	blankRunPattern  *regexp.Regexp
}

// New creates a Normalizer with all patterns precompiled.
func New() *Normalizer {
	n := &Normalizer{}
	n.initializePatterns()
	return n
}

func (n *Normalizer) initializePatterns() {
	// Zero-width characters and the emoji variation selector. Stripping
	// U+FE0F turns ➡️ into the plain U+27A1 arrow, so the route patterns
	// only need the base glyph.
	n.invisiblePattern = regexp.MustCompile("[​‌‍⁠️]")
	n.hspacePattern = regexp.MustCompile(`[ \t]+`)
	n.blankRunPattern = regexp.MustCompile(`\n{3,}`)
}

// NormalizeMessage folds a whole message to its matching form: Turkish
// letters to ASCII lower case, invisible characters removed, horizontal
// whitespace collapsed, line structure preserved.
func (n *Normalizer) NormalizeMessage(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}

	// 1. Drop invisible characters before folding.
	cleaned := n.invisiblePattern.ReplaceAllString(text, "")

	// 2. Unify line endings.
	cleaned = strings.ReplaceAll(cleaned, "\r\n", "\n")
	cleaned = strings.ReplaceAll(cleaned, "\r", "\n")

	// 3. Fold Turkish letters, keep digits, punctuation and separators.
	folded := NormalizeToASCII(cleaned)

	// 4. Collapse horizontal whitespace and trim each line.
	lines := strings.Split(folded, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(n.hspacePattern.ReplaceAllString(line, " "))
	}
	out := strings.Join(lines, "\n")

	// 5. Cap blank-line runs so section gaps stay visible but bounded.
	out = n.blankRunPattern.ReplaceAllString(out, "\n\n")

	return strings.TrimSpace(out)
}

// Lines splits a normalized message into its non-empty lines, in order.
func (n *Normalizer) Lines(normalized string) []string {
	var out []string
	for _, line := range strings.Split(normalized, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
