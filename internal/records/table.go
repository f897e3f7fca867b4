package records

import (
	"encoding/json"
	"sort"

	"github.com/terraincognita07/haven/internal/storage"
)

// Table is a date-keyed map collection, the shape of the period calendar's
// marks.
type Table[V any] struct {
	store storage.Store
	key   string
	items map[string]V
}

func NewTable[V any](store storage.Store, key string) *Table[V] {
	table := &Table[V]{store: store, key: key}
	table.Load()
	return table
}

func (table *Table[V]) Load() map[string]V {
	value, ok, _ := table.store.Get(table.key)
	items := make(map[string]V)
	if !decode(value, ok, &items) {
		items = make(map[string]V)
	}
	table.items = items
	return table.All()
}

func (table *Table[V]) Get(date string) (V, bool) {
	value, ok := table.items[date]
	return value, ok
}

func (table *Table[V]) Put(date string, value V) error {
	table.items[date] = value
	return table.persist()
}

// Mutate applies fn to the current value for the date, creating a zero
// value first when the date has no entry yet.
func (table *Table[V]) Mutate(date string, fn func(V) V) error {
	table.items[date] = fn(table.items[date])
	return table.persist()
}

func (table *Table[V]) All() map[string]V {
	snapshot := make(map[string]V, len(table.items))
	for date, value := range table.items {
		snapshot[date] = value
	}
	return snapshot
}

// Dates returns every keyed date in ascending order. ISO dates sort
// chronologically as strings.
func (table *Table[V]) Dates() []string {
	dates := make([]string, 0, len(table.items))
	for date := range table.items {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

func (table *Table[V]) Len() int {
	return len(table.items)
}

func (table *Table[V]) persist() error {
	payload, err := json.Marshal(table.items)
	if err != nil {
		return err
	}
	return table.store.Set(table.key, string(payload))
}
