package config

import (
	"github.com/goccy/go-yaml/ast"

	yamlparser "github.com/0xalexb/econfig/config/parser/yaml"
)

// Setting is a node of a parsed document: a group, a list, or a scalar.
// Settings belong to their Document and stay valid until it is read again.
type Setting struct {
	doc    *Document
	parent *Setting
	node   ast.Node
	name   string
	path   string
	line   int
}

// Name returns the member name of the setting, or "" for the root and list elements.
func (s *Setting) Name() string {
	return s.name
}

// Path returns the absolute path of the setting, "" for the root.
func (s *Setting) Path() string {
	return s.path
}

// Parent returns the enclosing setting, or nil for the root.
func (s *Setting) Parent() *Setting {
	return s.parent
}

// IsRoot reports whether s is the root group of its document.
func (s *Setting) IsRoot() bool {
	return s.parent == nil
}

// Kind returns the kind of the setting; KindNone for a nil setting.
func (s *Setting) Kind() Kind {
	if s == nil {
		return KindNone
	}

	// an empty document has a root without a node
	if s.node == nil && s.parent == nil {
		return KindGroup
	}

	return kindOf(s.node)
}

// SourceFile returns the name of the source the setting was read from.
func (s *Setting) SourceFile() string {
	return s.doc.name
}

// SourceLine returns the line the setting is defined on, or 0 when unknown.
func (s *Setting) SourceLine() int {
	return s.line
}

// Lookup resolves path relative to s. "." and "" return s itself.
// It returns nil when any segment is missing or the path is malformed.
func (s *Setting) Lookup(path string) *Setting {
	if s == nil {
		return nil
	}

	segments, err := parsePath(path)
	if err != nil {
		return nil
	}

	current := s
	for _, seg := range segments {
		if seg.isIndex {
			current = current.Elem(seg.index)
		} else {
			current = current.Member(seg.name)
		}

		if current == nil {
			return nil
		}
	}

	return current
}

// Member returns the direct child of a group called name, or nil.
func (s *Setting) Member(name string) *Setting {
	if s == nil || s.Kind() != KindGroup {
		return nil
	}

	for _, member := range s.doc.tree.Members(s.node) {
		if member.Name == name {
			return s.child(member.Name, joinPath(s.path, member.Name), member.Line, member.Value)
		}
	}

	return nil
}

// Elem returns the element at index of a list or group, or nil when index is out of range.
func (s *Setting) Elem(index int) *Setting {
	if s == nil || index < 0 {
		return nil
	}

	switch s.Kind() {
	case KindGroup:
		members := s.doc.tree.Members(s.node)
		if index >= len(members) {
			return nil
		}

		member := members[index]

		return s.child(member.Name, joinPath(s.path, member.Name), member.Line, member.Value)
	case KindList:
		elements := s.doc.tree.Elements(s.node)
		if index >= len(elements) {
			return nil
		}

		element := elements[index]

		return s.child("", joinPath(s.path, indexName(index)), yamlparser.Line(element), element)
	default:
		return nil
	}
}

// Len returns the number of members of a group or elements of a list; 0 for scalars.
func (s *Setting) Len() int {
	switch s.Kind() {
	case KindGroup:
		return len(s.doc.tree.Members(s.node))
	case KindList:
		return len(s.doc.tree.Elements(s.node))
	default:
		return 0
	}
}

// Members returns the children of a group in source order.
func (s *Setting) Members() []*Setting {
	count := s.Len()
	if count == 0 || s.Kind() != KindGroup {
		return nil
	}

	members := make([]*Setting, 0, count)
	for index := range count {
		members = append(members, s.Elem(index))
	}

	return members
}

func (s *Setting) child(name, path string, line int, node ast.Node) *Setting {
	return &Setting{
		doc:    s.doc,
		parent: s,
		node:   s.doc.tree.Resolve(node),
		name:   name,
		path:   path,
		line:   line,
	}
}
