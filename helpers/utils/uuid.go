package utils

import "github.com/google/uuid"

// GenerateUUID returns a random v4 UUID. Batch job IDs use this.
func GenerateUUID() string {
	return uuid.NewString()
}
