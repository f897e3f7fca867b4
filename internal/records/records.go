// Package records holds the write-through collection types shared by every
// feature. Each collection owns one storage key; every mutation serializes
// the whole collection back to the store before returning. When the store
// fails the in-memory state stands and the storage error is returned for
// the caller to surface as a warning.
package records

import "encoding/json"

// Dated records are keyed by their calendar date: at most one record per
// date per collection, enforced by upsert-by-date.
type Dated interface {
	DateKey() string
}

// Identified records carry a generated ID that never changes; several may
// share a date.
type Identified interface {
	RecordID() string
}

// decode treats an absent key and an undecodable payload the same way:
// no data. A payload that stopped parsing resets that feature's history
// rather than crashing the application.
func decode(value string, ok bool, target any) bool {
	if !ok {
		return false
	}
	return json.Unmarshal([]byte(value), target) == nil
}
