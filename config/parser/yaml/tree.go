package yaml

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
)

// maxAliasDepth bounds alias chains so a malformed tree cannot loop forever.
const maxAliasDepth = 64

// Tree is a parsed document with its anchors indexed.
type Tree struct {
	body    ast.Node
	root    ast.Node
	anchors map[string]ast.Node
}

// Member is one key of a mapping, merge keys already expanded.
type Member struct {
	Name  string
	Line  int
	Value ast.Node
}

// Root returns the resolved root mapping, or nil for an empty document.
func (t *Tree) Root() ast.Node {
	return t.root
}

// Resolve follows anchors, tags and aliases down to the node that carries the value.
// It returns nil for an alias to an unknown anchor.
func (t *Tree) Resolve(node ast.Node) ast.Node {
	for range maxAliasDepth {
		switch typed := node.(type) {
		case *ast.AnchorNode:
			node = typed.Value
		case *ast.TagNode:
			node = typed.Value
		case *ast.AliasNode:
			target, ok := t.anchors[aliasName(typed)]
			if !ok {
				return nil
			}

			node = target
		default:
			return node
		}
	}

	return nil
}

// Members lists the keys of a resolved mapping node in source order.
// Keys pulled in through merge keys follow the explicit ones and never override them.
func (t *Tree) Members(node ast.Node) []Member {
	var values []*ast.MappingValueNode

	switch typed := node.(type) {
	case *ast.MappingNode:
		values = typed.Values
	case *ast.MappingValueNode:
		values = []*ast.MappingValueNode{typed}
	default:
		return nil
	}

	members := make([]Member, 0, len(values))
	seen := make(map[string]struct{}, len(values))

	var merged []Member

	for _, value := range values {
		if value.Key != nil && value.Key.IsMergeKey() {
			merged = append(merged, t.mergedMembers(value.Value)...)

			continue
		}

		name := keyName(value.Key)
		seen[name] = struct{}{}
		members = append(members, Member{Name: name, Line: Line(value.Key), Value: value.Value})
	}

	for _, member := range merged {
		if _, ok := seen[member.Name]; ok {
			continue
		}

		seen[member.Name] = struct{}{}
		members = append(members, member)
	}

	return members
}

func (t *Tree) mergedMembers(node ast.Node) []Member {
	resolved := t.Resolve(node)

	sequence, ok := resolved.(*ast.SequenceNode)
	if !ok {
		return t.Members(resolved)
	}

	var members []Member

	for _, value := range sequence.Values {
		members = append(members, t.Members(t.Resolve(value))...)
	}

	return members
}

// Elements returns the entries of a resolved sequence node.
func (t *Tree) Elements(node ast.Node) []ast.Node {
	sequence, ok := node.(*ast.SequenceNode)
	if !ok {
		return nil
	}

	return sequence.Values
}

// index records anchors in document order and rejects duplicate keys and dangling aliases.
// An anchor is recorded after its value is walked, so it cannot refer to itself.
func (t *Tree) index(node ast.Node) error {
	switch typed := node.(type) {
	case *ast.AnchorNode:
		err := t.index(typed.Value)
		if err != nil {
			return err
		}

		t.anchors[typed.Name.GetToken().Value] = typed.Value
	case *ast.AliasNode:
		name := aliasName(typed)
		if _, ok := t.anchors[name]; !ok {
			return &SyntaxError{line: Line(typed), err: fmt.Errorf("%w: %s", ErrUnknownAnchor, name)}
		}
	case *ast.TagNode:
		return t.index(typed.Value)
	case *ast.MappingNode:
		return t.indexMapping(typed.Values)
	case *ast.MappingValueNode:
		return t.indexMapping([]*ast.MappingValueNode{typed})
	case *ast.SequenceNode:
		for _, value := range typed.Values {
			err := t.index(value)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *Tree) indexMapping(values []*ast.MappingValueNode) error {
	seen := make(map[string]struct{}, len(values))

	for _, value := range values {
		if value.Key != nil && !value.Key.IsMergeKey() {
			name := keyName(value.Key)
			if _, ok := seen[name]; ok {
				return &SyntaxError{line: Line(value.Key), err: fmt.Errorf("%w: %s", ErrDuplicateKey, name)}
			}

			seen[name] = struct{}{}
		}

		err := t.index(value.Value)
		if err != nil {
			return err
		}
	}

	return nil
}

func keyName(key ast.MapKeyNode) string {
	if key == nil {
		return ""
	}

	if scalar, ok := key.(ast.ScalarNode); ok {
		if value := scalar.GetValue(); value != nil {
			return fmt.Sprint(value)
		}
	}

	return key.GetToken().Value
}

func aliasName(alias *ast.AliasNode) string {
	if alias.Value == nil {
		return ""
	}

	return alias.Value.GetToken().Value
}
