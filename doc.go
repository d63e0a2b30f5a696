// Package econfig provides checked accessors for configuration documents.
//
// Every accessor forwards to the unchecked primitives of the config package
// and turns their quiet failures (a nil setting, a false ok) into structured
// errors that carry the source file, line and path involved. Each accessor
// comes in two forms:
//
//   - an error-returning form (Lookup, Get, Elem, Length, ...) for callers
//     that want to recover;
//   - a Must form (MustLookup, MustGet, MustElem, MustLength, ...) for
//     mandatory settings, which prints the diagnostic and terminates the
//     process through the default Asserter.
//
// TryGet and TryGetOr are the only accessors meant for optional settings:
// they return a default instead of failing.
//
// # Diagnostics
//
// Error messages are the diagnostic lines written on termination:
//
//	error occurred in app.yaml: unable to find server.timeout
//	error occurred in app.yaml:12
//
// The first form reports a path that could not be resolved, the second a
// read failure or a setting-level failure (bad index, empty list), where a
// line is meaningful and a path is not.
//
// # Example
//
//	doc := config.NewDocument()
//	econfig.MustReadFile(doc, "app.yaml")
//
//	port := econfig.MustGet[int](doc, "server.port")
//	timeout := econfig.TryGetOr(doc, "server.timeout", 30)
//	servers := econfig.MustLookup(doc, "servers")
//	for i := range econfig.MustLength(servers) {
//	    host := econfig.MustSettingGet[string](econfig.MustElem(servers, i), "host")
//	    ...
//	}
package econfig
