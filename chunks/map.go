package chunks

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is an insertion-ordered string-keyed map.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty map with room for n keys.
func NewMap(n int) *Map {
	return &Map{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set stores v under key. A new key goes to the end; an existing key keeps
// its position.
func (m *Map) Set(key string, v any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.values[key] = v
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]

	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}

		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
