package records

import (
	"errors"
	"testing"

	"github.com/terraincognita07/haven/internal/storage"
)

type datedRecord struct {
	Date  string `json:"date"`
	Value int    `json:"value"`
}

func (record datedRecord) DateKey() string {
	return record.Date
}

type failingStore struct {
	values  map[string]string
	setErr  error
	setCall int
}

func newFailingStore(setErr error) *failingStore {
	return &failingStore{values: make(map[string]string), setErr: setErr}
}

func (store *failingStore) Get(key string) (string, bool, error) {
	value, ok := store.values[key]
	return value, ok, nil
}

func (store *failingStore) Set(key string, value string) error {
	store.setCall++
	if store.setErr != nil {
		return store.setErr
	}
	store.values[key] = value
	return nil
}

func (store *failingStore) Remove(key string) error {
	delete(store.values, key)
	return nil
}

func TestCollectionUpsertByDate(t *testing.T) {
	store := storage.NewMemory()
	collection := NewCollection[datedRecord](store, "test")

	mustUpsert := func(record datedRecord) {
		t.Helper()
		if err := collection.UpsertByDate(record); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	mustUpsert(datedRecord{Date: "2024-03-01", Value: 1})
	mustUpsert(datedRecord{Date: "2024-03-02", Value: 2})
	mustUpsert(datedRecord{Date: "2024-03-01", Value: 10})

	items := collection.Records()
	if len(items) != 2 {
		t.Fatalf("expected one record per distinct date, got %#v", items)
	}
	if items[0].Date != "2024-03-01" || items[0].Value != 10 {
		t.Fatalf("expected replacement in place preserving position, got %#v", items[0])
	}
	if items[1].Date != "2024-03-02" || items[1].Value != 2 {
		t.Fatalf("unexpected second record %#v", items[1])
	}

	// Repeating the identical upsert changes nothing.
	mustUpsert(datedRecord{Date: "2024-03-01", Value: 10})
	if collection.Len() != 2 {
		t.Fatalf("expected idempotent upsert, got %d records", collection.Len())
	}
}

func TestCollectionWriteThrough(t *testing.T) {
	store := storage.NewMemory()
	collection := NewCollection[datedRecord](store, "test")
	if err := collection.UpsertByDate(datedRecord{Date: "2024-03-01", Value: 7}); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}

	// A fresh collection sees the persisted state immediately.
	reloaded := NewCollection[datedRecord](store, "test")
	items := reloaded.Records()
	if len(items) != 1 || items[0].Value != 7 {
		t.Fatalf("expected persisted record after mutation, got %#v", items)
	}
}

func TestCollectionRoundTrip(t *testing.T) {
	store := storage.NewMemory()
	collection := NewCollection[datedRecord](store, "test")

	seeded := []datedRecord{
		{Date: "2024-03-01", Value: 1},
		{Date: "2024-03-02", Value: 2},
		{Date: "2024-03-03", Value: 3},
	}
	for _, record := range seeded {
		if err := collection.UpsertByDate(record); err != nil {
			t.Fatalf("upsert failed: %v", err)
		}
	}

	loaded := NewCollection[datedRecord](store, "test").Load()
	if len(loaded) != len(seeded) {
		t.Fatalf("expected %d records after reload, got %#v", len(seeded), loaded)
	}
	for index, record := range seeded {
		if loaded[index] != record {
			t.Fatalf("round trip mismatch at %d: expected %#v, got %#v", index, record, loaded[index])
		}
	}
}

func TestCollectionLoadTreatsBadPayloadAsEmpty(t *testing.T) {
	store := storage.NewMemory()
	if err := store.Set("test", "{not json"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	collection := NewCollection[datedRecord](store, "test")
	if collection.Len() != 0 {
		t.Fatalf("expected parse failure to yield an empty collection, got %d records", collection.Len())
	}
}

func TestCollectionKeepsMemoryStateWhenStoreFails(t *testing.T) {
	storeErr := &storage.Error{Op: "set", Key: "test", Err: errors.New("disk full")}
	store := newFailingStore(storeErr)
	collection := NewCollection[datedRecord](store, "test")

	err := collection.UpsertByDate(datedRecord{Date: "2024-03-01", Value: 1})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the storage error to surface, got %v", err)
	}

	items := collection.Records()
	if len(items) != 1 || items[0].Value != 1 {
		t.Fatalf("expected in-memory state to remain authoritative, got %#v", items)
	}
}
