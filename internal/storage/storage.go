// Package storage is the durable key/value layer every feature collection
// persists through. One logical collection maps to one key; values are the
// serialized JSON documents of the owning feature.
package storage

import "fmt"

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set writes the value for the key, replacing any previous value.
	Set(key string, value string) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// Error reports that the durable medium failed an operation. The in-memory
// state stays authoritative for the running session; callers surface the
// failure as a warning, never a crash.
type Error struct {
	Op  string
	Key string
	Err error
}

func (err *Error) Error() string {
	return fmt.Sprintf("storage %s %q: %v", err.Op, err.Key, err.Err)
}

func (err *Error) Unwrap() error {
	return err.Err
}
