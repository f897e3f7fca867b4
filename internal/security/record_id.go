// Package security generates record identifiers.
package security

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRecordID returns a time-prefixed unique ID. The millisecond prefix
// keeps IDs sortable by creation time; the random suffix keeps two records
// created in the same millisecond distinct.
func NewRecordID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
