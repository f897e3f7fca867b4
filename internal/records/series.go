package records

import (
	"encoding/json"

	"github.com/terraincognita07/haven/internal/storage"
)

// Series is an append-only sequence of scalars: game scores, completed
// grounding-session dates. Existing elements are never mutated.
type Series[E any] struct {
	store storage.Store
	key   string
	items []E
}

func NewSeries[E any](store storage.Store, key string) *Series[E] {
	series := &Series[E]{store: store, key: key}
	series.Load()
	return series
}

func (series *Series[E]) Load() []E {
	value, ok, _ := series.store.Get(series.key)
	items := make([]E, 0)
	if !decode(value, ok, &items) {
		items = items[:0]
	}
	series.items = items
	return series.Values()
}

func (series *Series[E]) Append(element E) error {
	series.items = append(series.items, element)
	return series.persist()
}

func (series *Series[E]) Values() []E {
	snapshot := make([]E, len(series.items))
	copy(snapshot, series.items)
	return snapshot
}

func (series *Series[E]) Len() int {
	return len(series.items)
}

func (series *Series[E]) persist() error {
	payload, err := json.Marshal(series.items)
	if err != nil {
		return err
	}
	return series.store.Set(series.key, string(payload))
}
