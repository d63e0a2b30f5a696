// Package yaml adapts github.com/goccy/go-yaml into the node model used by the config package.
//
// Parse reads the first document of a source into a Tree. The root must be a
// mapping; an empty source yields a Tree without a root. Anchors are indexed
// at parse time so aliases and merge keys resolve anywhere in the document.
//
// Usage:
//
//	tree, err := yaml.NewParser().Parse(data)
//	if err != nil {
//	    var syntaxErr *yaml.SyntaxError
//	    if errors.As(err, &syntaxErr) {
//	        fmt.Println("failed at line", syntaxErr.Line())
//	    }
//	}
//	for _, member := range tree.Members(tree.Root()) {
//	    fmt.Println(member.Name, member.Line)
//	}
//
// Node Resolution:
//   - Resolve unwraps anchors, tags and aliases
//   - Members expands merge keys (<<) without overriding explicit keys
//   - Decode converts a node into a Go value with goccy/go-yaml NodeToValue semantics
package yaml
