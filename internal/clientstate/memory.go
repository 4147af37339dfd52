package clientstate

// Memory is an in-memory KV used by tests and tooling in place of the
// cookie jar.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.values[key] = value
}

func (m *Memory) Delete(key string) {
	delete(m.values, key)
}
