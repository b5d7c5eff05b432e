package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns the hex SHA-256 of the normalized message text.
// Identical messages reposted across groups share a fingerprint, which
// is what the cache and dedup layers key on.
func Fingerprint(normalizedText string) string {
	sum := sha256.Sum256([]byte(normalizedText))
	return hex.EncodeToString(sum[:])
}

// TruncateText shortens a message for log lines and admin listings,
// cutting at a rune boundary.
func TruncateText(text string, max int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
