package config

// Source defines an interface for reading raw configuration data.
// Name identifies the source in diagnostics, usually a file path.
type Source interface {
	Name() string
	Fetch() ([]byte, error)
}

// Scalar is the set of Go types a setting value can be extracted as.
// The type parameter at the call site selects the extraction, the way a
// typed accessor family does in configuration libraries.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
