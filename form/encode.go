package form

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"

	"github.com/tomasbasham/urlenc"
)

// Marshaler is the interface implemented by types that can marshal themselves
// into a form value.
type Marshaler interface {
	MarshalForm() (string, error)
}

// EncodeToString is a convenience function that returns the form encoding of v
// as a string.
func EncodeToString(v interface{}) (string, error) {
	values, err := MarshalValues(v)
	if err != nil {
		return "", err
	}
	return values.Encode(), nil
}

// Marshal returns the form encoding of v. Keys are sorted, so the output is
// deterministic even when v contains maps.
func Marshal(v interface{}) ([]byte, error) {
	values, err := MarshalValues(v)
	if err != nil {
		return nil, err
	}
	return []byte(values.Encode()), nil
}

// MarshalValues flattens v into a [urlenc.Values]. A nil v, or a nil pointer,
// yields empty values.
func MarshalValues(v interface{}) (urlenc.Values, error) {
	values := urlenc.Values{}
	if v == nil {
		return values, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return values, nil
		}
		rv = rv.Elem()
	}
	if err := checkTopLevel(rv.Type()); err != nil {
		return nil, err
	}

	if err := marshalValue(values, nil, rv); err != nil {
		return nil, err
	}
	return values, nil
}

func checkTopLevel(t reflect.Type) error {
	switch t.Kind() {
	case reflect.Struct:
		return nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return errMapKey
		}
		return nil
	default:
		return errTopLevel
	}
}

func marshalValue(out urlenc.Values, path []string, v reflect.Value) error {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	// A value can only stand in for itself when it has a key to live under.
	if len(path) == 0 {
		return marshalContainer(out, path, v)
	}

	if m, ok := asMarshaler(v); ok {
		s, err := m.MarshalForm()
		if err != nil {
			return err
		}
		out.Add(renderPath(path), s)
		return nil
	}
	if m, ok := asTextMarshaler(v); ok {
		b, err := m.MarshalText()
		if err != nil {
			return err
		}
		out.Add(renderPath(path), string(b))
		return nil
	}

	switch v.Kind() {
	case reflect.Struct, reflect.Map:
		return marshalContainer(out, path, v)
	case reflect.Slice, reflect.Array:
		return marshalSlice(out, path, v)
	case reflect.Interface:
		if v.IsNil() {
			return nil
		}
		return marshalValue(out, path, v.Elem())
	default:
		s, err := formatScalar(v)
		if err != nil {
			return err
		}
		out.Add(renderPath(path), s)
		return nil
	}
}

func marshalContainer(out urlenc.Values, path []string, v reflect.Value) error {
	if v.Kind() == reflect.Map {
		return marshalMap(out, path, v)
	}
	return marshalStruct(out, path, v)
}

func marshalStruct(out urlenc.Values, path []string, v reflect.Value) error {
	fields := tags(v)
	for i := 0; i < v.NumField(); i++ {
		f := fields[i]
		if f.Ignore || f.Name == "" {
			continue
		}
		fv := v.Field(i)
		if f.Omit && isEmptyValue(fv) {
			continue
		}
		if err := marshalValue(out, append(path, f.Name), fv); err != nil {
			return err
		}
	}
	return nil
}

func marshalMap(out urlenc.Values, path []string, v reflect.Value) error {
	if v.Type().Key().Kind() != reflect.String {
		return errMapKey
	}
	iter := v.MapRange()
	for iter.Next() {
		mv := iter.Value()
		if mv.Kind() == reflect.Interface && mv.IsNil() {
			continue
		}
		if err := marshalValue(out, append(path, iter.Key().String()), mv); err != nil {
			return err
		}
	}
	return nil
}

func marshalSlice(out urlenc.Values, path []string, v reflect.Value) error {
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Interface && elem.IsNil() {
			continue
		}
		if err := marshalValue(out, append(path, ""), elem); err != nil {
			return err
		}
	}
	return nil
}

func asMarshaler(v reflect.Value) (Marshaler, bool) {
	if m, ok := v.Interface().(Marshaler); ok {
		return m, true
	}
	m, ok := addressable(v).Interface().(Marshaler)
	return m, ok
}

func asTextMarshaler(v reflect.Value) (encoding.TextMarshaler, bool) {
	if m, ok := v.Interface().(encoding.TextMarshaler); ok {
		return m, true
	}
	m, ok := addressable(v).Interface().(encoding.TextMarshaler)
	return m, ok
}

// addressable returns a pointer to v, copying v when it cannot be addressed
// so that methods with pointer receivers are still found.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v.Addr()
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	return p
}

// renderPath turns a field path into its bracket form, e.g. ["a", "b", ""]
// becomes "a[b][]".
func renderPath(path []string) string {
	var b strings.Builder
	b.WriteString(path[0])
	for _, p := range path[1:] {
		b.WriteByte('[')
		b.WriteString(p)
		b.WriteByte(']')
	}
	return b.String()
}

func formatScalar(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", &UnsupportedTypeError{v.Type()}
	}
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.Interface, reflect.Pointer, reflect.Struct:
		return v.IsZero()
	}
	return false
}
