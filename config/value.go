package config

import (
	"errors"
	"reflect"
)

// ErrNilSetting is returned by Decode for a nil setting.
var ErrNilSetting = errors.New("nil setting")

// Value extracts the scalar held by s as T.
// It reports false for a nil setting, a group, a list, a null, or a scalar
// whose kind does not fit T. Integers fit floating point types; nothing else converts.
func Value[T Scalar](s *Setting) (T, bool) {
	var zero T

	if !accepts[T](s.Kind()) {
		return zero, false
	}

	var value T

	err := s.doc.tree.Decode(s.node, &value)
	if err != nil {
		return zero, false
	}

	return value, true
}

// LookupValue resolves an absolute path in doc and extracts its value as T.
func LookupValue[T Scalar](doc *Document, path string) (T, bool) {
	return Value[T](doc.Lookup(path))
}

// MemberValue extracts the value of the direct child name of s as T.
func MemberValue[T Scalar](s *Setting, name string) (T, bool) {
	return Value[T](s.Member(name))
}

func accepts[T Scalar](k Kind) bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Bool:
		return k == KindBool
	case reflect.String:
		return k == KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return k == KindInt
	case reflect.Float32, reflect.Float64:
		return k == KindInt || k == KindFloat
	default:
		return false
	}
}

// Decode converts the setting into target, which must be a pointer.
// Struct fields are matched with `yaml` tags. An empty root decodes to nothing.
func Decode(s *Setting, target any) error {
	if s == nil {
		return ErrNilSetting
	}

	if s.node == nil {
		return nil
	}

	return s.doc.tree.Decode(s.node, target)
}
