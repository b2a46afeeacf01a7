package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

// NewID returns a unique identifier in the format <prefix>_<8 hex chars>,
// e.g. "book_7a8b9c2d". User ids use the role as prefix.
func NewID(prefix string) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s_%08x", prefix, time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("%s_%08x", prefix, b)
}

// NewToken returns a fresh opaque bearer credential (32 hex chars).
func NewToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%032x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}

// Timestamp formats t in the RFC3339 form stored on entities.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DateOnly formats t as an ISO calendar date, the form used by check-in and
// check-out fields and by all date-range comparisons.
func DateOnly(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
