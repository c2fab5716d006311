package urlenc

import (
	"sort"
	"strings"
)

// Values maps a string key to a list of values. It is typically used for query
// parameters and form values. Unlike in an HTTP header map, the keys in a
// Values map are case-sensitive.
type Values map[string][]string

// Get gets the first value associated with the given key. If there are no
// values associated with the key, Get returns the empty string. To access
// multiple values, use the map directly.
func (v Values) Get(key string) string {
	vs := v[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[0]
}

// Set sets the key to value. It replaces any existing values.
func (v Values) Set(key, value string) {
	v[key] = []string{value}
}

// Add adds the value to key. It appends to any existing values associated with
// key.
func (v Values) Add(key, value string) {
	v[key] = append(v[key], value)
}

// Del deletes the values associated with key.
func (v Values) Del(key string) {
	delete(v, key)
}

// Has checks whether a given key is set.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Encode encodes the values into "URL encoded" form ("bar=baz&foo=quux")
// sorted by key.
func (v Values) Encode() string {
	if len(v) == 0 {
		return ""
	}

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		keyEscaped := QueryEscape(k)
		for _, val := range v[k] {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(keyEscaped)
			b.WriteByte('=')
			b.WriteString(QueryEscape(val))
		}
	}
	return b.String()
}

// ParseQuery parses the URL-encoded query string and returns a map listing the
// values specified for each key. ParseQuery always returns a non-nil map
// containing all the valid query parameters found; err describes the first
// decoding error encountered, if any.
//
// Query is expected to be a list of key=value settings separated by ampersands
// or semicolons. A setting without an equals sign is interpreted as a key set
// to an empty value.
func ParseQuery(query string) (Values, error) {
	m := make(Values)
	err := parseQuery(m, query)
	return m, err
}

func parseQuery(m Values, query string) (err error) {
	for query != "" {
		var key string
		if i := strings.IndexAny(query, "&;"); i >= 0 {
			key, query = query[:i], query[i+1:]
		} else {
			key, query = query, ""
		}
		if key == "" {
			continue
		}

		value := ""
		if i := strings.IndexByte(key, '='); i >= 0 {
			key, value = key[:i], key[i+1:]
		}

		key1, err1 := QueryUnescape(key)
		if err1 != nil {
			if err == nil {
				err = err1
			}
			continue
		}
		value1, err1 := QueryUnescape(value)
		if err1 != nil {
			if err == nil {
				err = err1
			}
			continue
		}
		m[key1] = append(m[key1], value1)
	}
	return err
}
