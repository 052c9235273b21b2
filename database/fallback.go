package database

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"

	"gorm.io/gorm"
)

// FindWithFallback runs a read operation against the store and returns the
// supplied fallback value on any failure instead of propagating it. Public
// read paths use this so a degraded or unconfigured store degrades pages to
// empty lists and defaults rather than crashing them.
//
// Write paths must never go through here; a dropped customer submission has
// to surface as an explicit failure.
func FindWithFallback[T any](fallback T, op func(db *gorm.DB) (T, error)) T {
	if DB == nil {
		log.Println("⚠️ store read skipped (connection): database not initialised")
		return fallback
	}

	value, err := op(DB)
	if err != nil {
		log.Printf("⚠️ store read failed (%s): %v", classifyError(err), err)
		return fallback
	}
	return value
}

// classifyError buckets a read failure for the warning log: connectivity
// problems versus everything else (malformed rows, bad queries).
func classifyError(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return "connection"
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, gorm.ErrInvalidDB) {
		return "connection"
	}
	msg := err.Error()
	if strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "failed to connect") {
		return "connection"
	}
	return "other"
}
