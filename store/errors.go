package store

import (
	"strings"

	"github.com/dock-labs/rdf2020soundness/errors"
)

// ErrClosed is returned when operations are attempted on a closed database.
// This typically occurs during graceful shutdown when the connection is
// closed before all goroutines have finished their work.
var ErrClosed = errors.New("rule store is closed")

// IsClosed reports whether err indicates the store connection is closed,
// either because it wraps ErrClosed or because the underlying sql/sqlite
// driver reported the condition directly (those errors can't be wrapped at
// the source).
func IsClosed(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrClosed) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "database is closed") ||
		strings.Contains(msg, "sql: database is closed")
}
