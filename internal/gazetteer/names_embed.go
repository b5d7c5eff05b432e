package gazetteer

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

//go:embed data/turkish_names.txt
var firstNamesRaw []byte

// loadFirstNames parses the embedded name list. Blank lines and lines
// starting with # are skipped.
func loadFirstNames() map[string]struct{} {
	names := make(map[string]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(firstNamesRaw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names[strings.ToLower(line)] = struct{}{}
	}

	return names
}
