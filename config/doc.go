// Package config provides the unchecked configuration document model.
//
// A Document is the root handle of a parsed configuration source; a Setting
// is one node of it (group, list or scalar). Every primitive reports failure
// the quiet way, with a nil Setting or a false ok, and leaves the decision of
// what a missing setting means to the caller. The econfig package at the
// module root wraps these primitives with checked, diagnostic-producing
// variants.
//
// # Paths
//
// Paths separate member names with dots. List elements are addressed with an
// index in brackets, either as its own segment or attached to a name:
//
//	"server.port"           -> member port of group server
//	"servers.[0].host"      -> host of the first element of servers
//	"servers[0].host"       -> same
//	"." or ""               -> the setting the lookup starts from
//
// # Values
//
// Value, LookupValue and MemberValue take the target type as a type
// parameter. Integers extract into any integer or floating point type (with
// overflow reported as failure), floats into floating point types, and
// strings and booleans only into their own kinds.
//
// # Example
//
//	doc := config.NewDocument()
//	if err := doc.ReadFile("app.yaml"); err != nil {
//	    log.Fatalf("%s:%d: %v", doc.ErrorFile(), doc.ErrorLine(), err)
//	}
//	port, ok := config.LookupValue[int](doc, "server.port")
package config
