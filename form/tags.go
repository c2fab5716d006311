package form

import (
	"reflect"
	"strings"
	"sync"
)

// fieldCache maps a struct [reflect.Type] to its parsed []*field, one entry
// per struct field in declaration order. Safe for concurrent use.
var fieldCache sync.Map

// field holds the parsed "form" tag of one struct field.
type field struct {
	Name   string
	Omit   bool
	Ignore bool
}

func tags(v reflect.Value) []*field {
	t := reflect.Indirect(v).Type()
	if t.Kind() != reflect.Struct {
		return nil
	}
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]*field)
	}

	fields := make([]*field, t.NumField())
	for i := range fields {
		sf := t.Field(i)
		f := parseTag(sf.Tag.Get("form"))
		// Unexported fields can be neither read nor set through reflection.
		if !sf.IsExported() {
			f.Ignore = true
		}
		if !f.Ignore && f.Name == "" {
			f.Name = sf.Name
		}
		fields[i] = f
	}

	actual, _ := fieldCache.LoadOrStore(t, fields)
	return actual.([]*field)
}

// parseTag parses `form:"name,omitempty"`. A name of "-" or an "ignore"
// option skips the field.
func parseTag(s string) *field {
	name, opts, _ := strings.Cut(strings.TrimSpace(s), ",")

	f := &field{}
	switch name = strings.TrimSpace(name); name {
	case "-":
		f.Ignore = true
	default:
		f.Name = name
	}

	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		switch strings.TrimSpace(opt) {
		case "omitempty":
			f.Omit = true
		case "ignore":
			f.Ignore = true
		}
	}
	return f
}
