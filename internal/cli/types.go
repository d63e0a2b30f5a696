package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/0xalexb/econfig"
	"github.com/0xalexb/econfig/config"
)

const autoType = "auto"

var (
	// ErrUnknownType is returned for a --type the command does not support.
	ErrUnknownType = errors.New("unknown value type")
	// ErrInvalidDefault is returned when --default cannot be parsed as the requested type.
	ErrInvalidDefault = errors.New("invalid default value")
)

// scalarType binds the generic accessors to one Go type selected on the command line.
type scalarType struct {
	get  func(doc *config.Document, path string) (string, error)
	try  func(doc *config.Document, path, def string) (string, error)
	elem func(setting *config.Setting, index int) (string, error)
}

//nolint:gochecknoglobals // immutable lookup table of supported --type values.
var scalarTypes = map[string]scalarType{
	"int":    newScalarType("int", strconv.Atoi),
	"int64":  newScalarType("int64", func(s string) (int64, error) { return strconv.ParseInt(s, 10, 64) }),
	"uint":   newScalarType("uint", parseUint),
	"float":  newScalarType("float", func(s string) (float64, error) { return strconv.ParseFloat(s, 64) }),
	"bool":   newScalarType("bool", strconv.ParseBool),
	"string": newScalarType("string", func(s string) (string, error) { return s, nil }),
}

func newScalarType[T config.Scalar](name string, parse func(string) (T, error)) scalarType {
	return scalarType{
		get: func(doc *config.Document, path string) (string, error) {
			value, err := econfig.Get[T](doc, path)

			return formatValue(value), err
		},
		try: func(doc *config.Document, path, def string) (string, error) {
			var fallback T

			if def != "" {
				parsed, err := parse(def)
				if err != nil {
					return "", fmt.Errorf("%w: %q is not a valid %s", ErrInvalidDefault, def, name)
				}

				fallback = parsed
			}

			return formatValue(econfig.TryGetOr(doc, path, fallback)), nil
		},
		elem: func(setting *config.Setting, index int) (string, error) {
			value, err := econfig.ElemValue[T](setting, index)

			return formatValue(value), err
		},
	}
}

// lookupType returns the scalar type named on the command line.
// "auto" picks the type from kind.
func lookupType(name string, kind config.Kind) (scalarType, error) {
	if name == autoType {
		name = autoTypeName(kind)
	}

	typ, ok := scalarTypes[name]
	if !ok {
		return scalarType{}, fmt.Errorf("%w %q, expected one of %s", ErrUnknownType, name, joinedTypeNames())
	}

	return typ, nil
}

func autoTypeName(kind config.Kind) string {
	switch kind {
	case config.KindInt:
		return "int64"
	case config.KindFloat:
		return "float"
	case config.KindBool:
		return "bool"
	default:
		return "string"
	}
}

func typeNames() []string {
	names := []string{autoType}
	for name := range scalarTypes {
		names = append(names, name)
	}

	slices.Sort(names[1:])

	return names
}

func parseUint(s string) (uint, error) {
	value, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("parsing uint: %w", err)
	}

	return uint(value), nil
}

func formatValue[T config.Scalar](value T) string {
	return fmt.Sprint(value)
}
