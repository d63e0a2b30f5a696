package config

import "github.com/goccy/go-yaml/ast"

// Kind classifies a setting.
type Kind int

const (
	// KindNone marks a nil setting.
	KindNone Kind = iota
	// KindGroup is a mapping of named settings.
	KindGroup
	// KindList is an ordered sequence of settings.
	KindList
	// KindInt is an integer scalar.
	KindInt
	// KindFloat is a floating point scalar, including .inf and .nan.
	KindFloat
	// KindBool is a boolean scalar.
	KindBool
	// KindString is a string scalar, including block literals.
	KindString
	// KindNull is an explicit null or an empty value.
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindList:
		return "list"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNull:
		return "null"
	case KindNone:
		return "none"
	default:
		return "unknown"
	}
}

// IsAggregate reports whether settings of this kind contain other settings.
func (k Kind) IsAggregate() bool {
	return k == KindGroup || k == KindList
}

// IsScalar reports whether settings of this kind carry a single value.
func (k Kind) IsScalar() bool {
	switch k {
	case KindInt, KindFloat, KindBool, KindString:
		return true
	default:
		return false
	}
}

func kindOf(node ast.Node) Kind {
	if node == nil {
		return KindNone
	}

	switch node.Type() {
	case ast.MappingType, ast.MappingValueType:
		return KindGroup
	case ast.SequenceType:
		return KindList
	case ast.IntegerType:
		return KindInt
	case ast.FloatType, ast.InfinityType, ast.NanType:
		return KindFloat
	case ast.BoolType:
		return KindBool
	case ast.StringType, ast.LiteralType:
		return KindString
	case ast.NullType:
		return KindNull
	default:
		return KindNone
	}
}
