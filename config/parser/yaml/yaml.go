package yaml

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("document root is not a mapping")

// ErrDuplicateKey is returned when a mapping defines the same key twice.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrUnknownAnchor is returned when an alias refers to an anchor that is not defined before it.
var ErrUnknownAnchor = errors.New("unknown anchor")

// ErrNilNode is returned when decoding is requested for a nil node.
var ErrNilNode = errors.New("nil node")

// SyntaxError reports a document that could not be parsed, with the line it failed on.
type SyntaxError struct {
	line int
	err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %v", e.line, e.err)
}

func (e *SyntaxError) Unwrap() error {
	return e.err
}

// Line returns the 1-based source line of the failure, or 0 when unknown.
func (e *SyntaxError) Line() int {
	return e.line
}

// Parser turns raw YAML bytes into a Tree.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses the first document of data.
// An empty input yields a Tree with a nil root.
func (p *Parser) Parse(data []byte) (*Tree, error) {
	file, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, newSyntaxError(err)
	}

	tree := &Tree{
		body:    nil,
		root:    nil,
		anchors: make(map[string]ast.Node),
	}

	body := firstBody(file)
	if body == nil {
		return tree, nil
	}

	err = tree.index(body)
	if err != nil {
		return nil, err
	}

	root := tree.Resolve(body)
	if root == nil || (root.Type() != ast.MappingType && root.Type() != ast.MappingValueType) {
		return nil, &SyntaxError{line: Line(body), err: ErrNotMapping}
	}

	tree.body = body
	tree.root = root

	return tree, nil
}

func firstBody(file *ast.File) ast.Node {
	for _, doc := range file.Docs {
		if doc == nil || doc.Body == nil {
			continue
		}

		switch doc.Body.Type() {
		case ast.DirectiveType, ast.CommentType, ast.CommentGroupType:
			continue
		default:
			return doc.Body
		}
	}

	return nil
}

func newSyntaxError(err error) *SyntaxError {
	var yamlErr yaml.Error
	if errors.As(err, &yamlErr) {
		tok := yamlErr.GetToken()
		if tok != nil && tok.Position != nil {
			return &SyntaxError{line: tok.Position.Line, err: errors.New(yamlErr.GetMessage())}
		}
	}

	return &SyntaxError{line: 0, err: err}
}

// Line returns the 1-based source line of node, or 0 when the node carries no position.
func Line(node ast.Node) int {
	if node == nil {
		return 0
	}

	tok := node.GetToken()
	if tok == nil || tok.Position == nil {
		return 0
	}

	return tok.Position.Line
}

// Decode converts node into the value pointed to by target.
func (t *Tree) Decode(node ast.Node, target any) error {
	if node == nil {
		return ErrNilNode
	}

	decoder := yaml.NewDecoder(&bytes.Buffer{})

	// anchors defined outside node are only known to a decoder that has seen them
	if len(t.anchors) > 0 && t.body != nil {
		var discard any

		_ = decoder.DecodeFromNode(t.body, &discard)
	}

	err := decoder.DecodeFromNode(node, target)
	if err != nil {
		return fmt.Errorf("decoding line %d: %w", Line(node), err)
	}

	return nil
}
