package storage

// Memory keeps values for the current process only. It backs tests and the
// degraded session-only mode used when the sqlite medium cannot be opened.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (store *Memory) Get(key string) (string, bool, error) {
	value, ok := store.values[key]
	return value, ok, nil
}

func (store *Memory) Set(key string, value string) error {
	store.values[key] = value
	return nil
}

func (store *Memory) Remove(key string) error {
	delete(store.values, key)
	return nil
}
