package config

import (
	"errors"
	"fmt"

	"github.com/0xalexb/econfig/config/fetcher/file"
	yamlparser "github.com/0xalexb/econfig/config/parser/yaml"
)

// Document is an open configuration document: the root handle settings are looked up from.
//
// A Document is safe for concurrent lookups once a Read call has returned.
// Reading into a Document while other goroutines look settings up is not.
type Document struct {
	parser  *yamlparser.Parser
	tree    *yamlparser.Tree
	root    *Setting
	name    string
	errFile string
	errLine int
}

// NewDocument creates an empty document whose root is an empty group.
func NewDocument() *Document {
	doc := &Document{
		parser:  yamlparser.NewParser(),
		tree:    &yamlparser.Tree{},
		root:    nil,
		name:    "",
		errFile: "",
		errLine: 0,
	}
	doc.root = &Setting{doc: doc, parent: nil, node: nil, name: "", path: "", line: 0}

	return doc
}

// ReadFile reads and parses the file at path, replacing the document contents.
func (d *Document) ReadFile(path string) error {
	fetcher, err := file.Open(path)
	if err != nil {
		d.setError(path, 0)

		return fmt.Errorf("reading %s: %w", path, err)
	}

	return d.Read(fetcher)
}

// Read fetches and parses src, replacing the document contents.
// On failure the document keeps its previous contents and ErrorFile/ErrorLine
// describe the failure.
func (d *Document) Read(src Source) error {
	data, err := src.Fetch()
	if err != nil {
		d.setError(src.Name(), 0)

		return fmt.Errorf("reading %s: %w", src.Name(), err)
	}

	return d.ReadBytes(src.Name(), data)
}

// ReadBytes parses data as the contents of a source called name.
func (d *Document) ReadBytes(name string, data []byte) error {
	tree, err := d.parser.Parse(data)
	if err != nil {
		d.setError(name, errorLine(err))

		return fmt.Errorf("parsing %s: %w", name, err)
	}

	d.tree = tree
	d.name = name
	d.errFile = ""
	d.errLine = 0

	root := tree.Root()
	d.root = &Setting{doc: d, parent: nil, node: root, name: "", path: "", line: yamlparser.Line(root)}

	return nil
}

// Name returns the name of the source the document was read from.
func (d *Document) Name() string {
	return d.name
}

// ErrorFile returns the source named by the most recent failed read, or "".
func (d *Document) ErrorFile() string {
	return d.errFile
}

// ErrorLine returns the line of the most recent failed read, or 0 when it has none.
func (d *Document) ErrorLine() int {
	return d.errLine
}

// Root returns the root group. It is never nil.
func (d *Document) Root() *Setting {
	return d.root
}

// Lookup resolves an absolute path. It returns nil when nothing is found.
func (d *Document) Lookup(path string) *Setting {
	return d.root.Lookup(path)
}

func (d *Document) setError(name string, line int) {
	d.errFile = name
	d.errLine = line
}

func errorLine(err error) int {
	var syntaxErr *yamlparser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Line()
	}

	return 0
}
