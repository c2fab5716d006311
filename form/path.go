package form

import "strings"

// pathSegment is one step of a bracket key. "a[b][]" parses to the segments
// {Key: "a"}, {Key: "b"}, {Index: true}.
type pathSegment struct {
	Key   string
	Index bool
}

func parseKey(key string) ([]pathSegment, error) {
	var path []pathSegment
	for key != "" {
		open := strings.IndexByte(key, '[')
		if open == -1 {
			return append(path, pathSegment{Key: key}), nil
		}
		if open > 0 {
			path = append(path, pathSegment{Key: key[:open]})
		}

		key = key[open+1:]
		end := strings.IndexByte(key, ']')
		if end == -1 {
			return nil, errKeySyntax
		}
		if inner := key[:end]; inner == "" {
			path = append(path, pathSegment{Index: true})
		} else {
			path = append(path, pathSegment{Key: inner})
		}
		key = key[end+1:]
	}
	return path, nil
}
