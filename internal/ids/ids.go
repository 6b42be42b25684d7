// Package ids provides deterministic IDs and timestamp formatting for the mock.
//
// Real backends use a mix of ID formats; the mock favors content-addressed
// IDs so that repeating the same request resolves to the same entities
// across requests and process restarts.
package ids

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultLength is the hex length used when callers do not care.
const DefaultLength = 12

// StableID derives a deterministic id from seed: "<prefix>-<hex>".
// Same seed yields the same id; n bounds the hex part.
func StableID(prefix, seed string, n int) string {
	if n <= 0 {
		n = DefaultLength
	}
	sum := sha256.Sum256([]byte(seed))
	h := hex.EncodeToString(sum[:])
	if n > len(h) {
		n = len(h)
	}
	return fmt.Sprintf("%s-%s", prefix, h[:n])
}

// NewID returns a random, non-reproducible id with the given type prefix.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}

// NowUTC returns the current UTC time formatted at second precision.
// All entity timestamps use this format.
func NowUTC() string {
	return time.Now().UTC().Truncate(time.Second).Format(time.RFC3339)
}

// LocalISO formats t as a LocalDateTime (no timezone suffix), the format
// used for segment departure/arrival dates.
func LocalISO(t time.Time) string {
	return t.Truncate(time.Second).Format("2006-01-02T15:04:05")
}
