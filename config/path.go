package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPath is returned when a path string cannot be parsed.
var ErrInvalidPath = errors.New("invalid path")

// segment is one step of a path: a member name or a list index.
type segment struct {
	name    string
	index   int
	isIndex bool
}

// parsePath splits a path such as "servers.[0].host" or "servers[0].host" into segments.
// "" and "." address the setting the path is resolved from.
func parsePath(path string) ([]segment, error) {
	if path == "" || path == "." {
		return nil, nil
	}

	parts := strings.Split(path, ".")
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		parsed, err := parsePart(part)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, path, err)
		}

		segments = append(segments, parsed...)
	}

	return segments, nil
}

func parsePart(part string) ([]segment, error) {
	if part == "" {
		return nil, errors.New("empty segment")
	}

	name, rest, _ := strings.Cut(part, "[")

	var segments []segment

	if name != "" {
		segments = append(segments, segment{name: name, index: 0, isIndex: false})
	}

	if len(rest) == 0 && len(name) == len(part) {
		return segments, nil
	}

	rest = "[" + rest

	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q after index", rest)
		}

		closing := strings.IndexByte(rest, ']')
		if closing < 0 {
			return nil, errors.New("unterminated index")
		}

		index, err := strconv.Atoi(rest[1:closing])
		if err != nil || index < 0 {
			return nil, fmt.Errorf("bad index %q", rest[1:closing])
		}

		segments = append(segments, segment{name: "", index: index, isIndex: true})
		rest = rest[closing+1:]
	}

	return segments, nil
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}

	return parent + "." + child
}

func indexName(index int) string {
	return "[" + strconv.Itoa(index) + "]"
}
