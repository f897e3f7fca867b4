package records

import (
	"encoding/json"

	"github.com/terraincognita07/haven/internal/storage"
)

// Collection is an ordered sequence of dated records with upsert-by-date
// semantics: saving a date that already exists replaces the record in place,
// preserving its position; a new date appends at the end.
type Collection[T Dated] struct {
	store storage.Store
	key   string
	items []T
}

func NewCollection[T Dated](store storage.Store, key string) *Collection[T] {
	collection := &Collection[T]{store: store, key: key}
	collection.Load()
	return collection
}

// Load rereads the collection from the store. A missing key or a payload
// that fails to parse yields an empty collection.
func (collection *Collection[T]) Load() []T {
	value, ok, _ := collection.store.Get(collection.key)
	items := make([]T, 0)
	if !decode(value, ok, &items) {
		items = items[:0]
	}
	collection.items = items
	return collection.Records()
}

// UpsertByDate inserts the record, or replaces the existing record with the
// same date. Repeated identical upserts are idempotent.
func (collection *Collection[T]) UpsertByDate(record T) error {
	replaced := false
	for index, existing := range collection.items {
		if existing.DateKey() == record.DateKey() {
			collection.items[index] = record
			replaced = true
			break
		}
	}
	if !replaced {
		collection.items = append(collection.items, record)
	}
	return collection.persist()
}

// Records returns a snapshot in insertion order.
func (collection *Collection[T]) Records() []T {
	snapshot := make([]T, len(collection.items))
	copy(snapshot, collection.items)
	return snapshot
}

func (collection *Collection[T]) Len() int {
	return len(collection.items)
}

func (collection *Collection[T]) persist() error {
	payload, err := json.Marshal(collection.items)
	if err != nil {
		return err
	}
	return collection.store.Set(collection.key, string(payload))
}
