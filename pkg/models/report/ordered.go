package report

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Map is a string-keyed mapping that keeps the insertion order of its keys.
// Column order in a quality report carries user meaning, so sections decoded
// from the analysis service must iterate in source-document order rather than
// Go's randomized map order.
type Map[T any] struct {
	keys  []string
	items map[string]T
}

func (m *Map[T]) Set(key string, value T) {
	if m.items == nil {
		m.items = make(map[string]T)
	}
	if _, exists := m.items[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.items[key] = value
}

func (m Map[T]) Get(key string) (T, bool) {
	v, ok := m.items[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m Map[T]) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

func (m Map[T]) Len() int {
	return len(m.keys)
}

func (m *Map[T]) UnmarshalJSON(data []byte) error {
	m.keys = nil
	m.items = nil

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}

		var value T
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("value for key %q: %w", key, err)
		}
		m.Set(key, value)
	}

	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func (m Map[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valueJSON, err := json.Marshal(m.items[key])
		if err != nil {
			return nil, fmt.Errorf("value for key %q: %w", key, err)
		}
		buf.Write(valueJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
