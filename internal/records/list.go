package records

import (
	"encoding/json"
	"fmt"

	"github.com/terraincognita07/haven/internal/storage"
)

// List is an ordered sequence of identified records. IDs are unique within
// the list and immutable once assigned.
type List[T Identified] struct {
	store storage.Store
	key   string
	items []T
}

func NewList[T Identified](store storage.Store, key string) *List[T] {
	list := &List[T]{store: store, key: key}
	list.Load()
	return list
}

func (list *List[T]) Load() []T {
	value, ok, _ := list.store.Get(list.key)
	items := make([]T, 0)
	if !decode(value, ok, &items) {
		items = items[:0]
	}
	list.items = items
	return list.Records()
}

// Append adds the record at the end. A duplicate ID is rejected.
func (list *List[T]) Append(record T) error {
	if err := list.rejectDuplicate(record); err != nil {
		return err
	}
	list.items = append(list.items, record)
	return list.persist()
}

// Prepend adds the record at the front, the journal's newest-first order.
func (list *List[T]) Prepend(record T) error {
	if err := list.rejectDuplicate(record); err != nil {
		return err
	}
	list.items = append([]T{record}, list.items...)
	return list.persist()
}

// DeleteByID removes exactly one record. An absent ID is a no-op, not an
// error; the list shrinks by at most one per call.
func (list *List[T]) DeleteByID(id string) error {
	for index, existing := range list.items {
		if existing.RecordID() == id {
			list.items = append(list.items[:index], list.items[index+1:]...)
			return list.persist()
		}
	}
	return nil
}

// ReplaceAll swaps the whole sequence, the path an editing form takes when
// it commits changes to an existing record by ID.
func (list *List[T]) ReplaceAll(items []T) error {
	replacement := make([]T, len(items))
	copy(replacement, items)
	list.items = replacement
	return list.persist()
}

func (list *List[T]) Records() []T {
	snapshot := make([]T, len(list.items))
	copy(snapshot, list.items)
	return snapshot
}

func (list *List[T]) Len() int {
	return len(list.items)
}

func (list *List[T]) rejectDuplicate(record T) error {
	for _, existing := range list.items {
		if existing.RecordID() == record.RecordID() {
			return fmt.Errorf("duplicate record id %q", record.RecordID())
		}
	}
	return nil
}

func (list *List[T]) persist() error {
	payload, err := json.Marshal(list.items)
	if err != nil {
		return err
	}
	return list.store.Set(list.key, string(payload))
}
