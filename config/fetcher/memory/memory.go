// Package memory provides an in-memory config.Source, for embedded defaults and tests.
package memory

// Source serves a fixed buffer under a caller-chosen name.
type Source struct {
	name string
	data []byte
}

// New returns a Source named name holding a copy of data.
func New(name string, data []byte) *Source {
	buf := make([]byte, len(data))
	copy(buf, data)

	return &Source{name: name, data: buf}
}

// FromString returns a Source named name holding text.
func FromString(name, text string) *Source {
	return &Source{name: name, data: []byte(text)}
}

// Name returns the name diagnostics report for this source.
func (s *Source) Name() string {
	return s.name
}

// Fetch returns a copy of the buffer.
func (s *Source) Fetch() ([]byte, error) {
	result := make([]byte, len(s.data))
	copy(result, s.data)

	return result, nil
}
