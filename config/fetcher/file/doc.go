// Package file provides a file-based config.Source.
//
// The file is read once when the Fetcher is constructed; Fetch returns a copy
// of those bytes. Name reports the path exactly as the caller passed it, which
// is what diagnostics print as the source file.
//
// Usage:
//
//	fetcher, err := file.Open("/etc/app/app.yaml")
//	if err != nil {
//	    // file not found, permission denied, path is a directory, file too large
//	}
//	err = doc.Read(fetcher)
//
// NewFetcher returns the same constructor in deferred form, which suits
// go.uber.org/fx providers.
package file
