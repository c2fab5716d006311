package form

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/tomasbasham/urlenc"
)

// Unmarshaler is the interface implemented by types that can unmarshal a form
// description of themselves. The input can be assumed to be a valid encoding of
// a form value. [Unmarshaler.UnmarshalForm] must copy the form data if it
// wishes to retain the data after returning.
type Unmarshaler interface {
	UnmarshalForm(string) error
}

// DecodeString is a convenience function that parses the form data in the
// string and stores the result in the value pointed to by v.
func DecodeString(data string, v interface{}) error {
	return Unmarshal([]byte(data), v)
}

// Unmarshal parses the form data and stores the result in the value pointed to
// by v. If v is nil or not a pointer, Unmarshal returns an
// [InvalidUnmarshalError]. Pairs may be separated by '&' or ';'.
func Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return errEmptyInput
	}

	rv, err := target(v)
	if err != nil {
		return err
	}

	// Surrounding whitespace would otherwise end up inside the first key or
	// the last value.
	values, err := urlenc.ParseQuery(strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("form: invalid form data: %w", err)
	}
	return unmarshalValues(values, rv)
}

// UnmarshalValues stores already parsed values in the value pointed to by v,
// following the same rules as [Unmarshal].
func UnmarshalValues(values urlenc.Values, v interface{}) error {
	rv, err := target(v)
	if err != nil {
		return err
	}
	return unmarshalValues(values, rv)
}

// target checks that v is a non-nil pointer to a struct or a string keyed
// map and returns the value it points to.
func target(v interface{}) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, &InvalidUnmarshalError{reflect.TypeOf(v)}
	}
	rv = rv.Elem()
	if err := checkTopLevel(rv.Type()); err != nil {
		return reflect.Value{}, err
	}
	return rv, nil
}

func unmarshalValues(values urlenc.Values, v reflect.Value) error {
	// Keys are visited in order so that the first failing key is stable.
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		path, err := parseKey(key)
		if err != nil {
			return err
		}
		for _, val := range values[key] {
			if err := assign(v, path, val); err != nil {
				return &FieldError{Key: key, Err: err}
			}
		}
	}
	return nil
}

func assign(v reflect.Value, path []pathSegment, val string) error {
	v = deref(v)
	if len(path) == 0 {
		return assignLeaf(v, val)
	}

	seg := path[0]
	switch v.Kind() {
	case reflect.Struct:
		return assignStructField(v, seg.Key, path[1:], val)
	case reflect.Map:
		return assignMapValue(v, seg, path[1:], val)
	case reflect.Slice:
		return assignSliceValue(v, seg, path[1:], val)
	case reflect.Interface:
		return assignInterfaceValue(v, path, val)
	default:
		return fmt.Errorf("cannot assign %q to %v", seg.Key, v.Kind())
	}
}

// deref follows a pointer, allocating the pointee when it is nil.
func deref(v reflect.Value) reflect.Value {
	if v.Kind() != reflect.Pointer {
		return v
	}
	if v.IsNil() {
		v.Set(reflect.New(v.Type().Elem()))
	}
	return v.Elem()
}

// assignLeaf stores val in v, preferring [Unmarshaler] and then
// [encoding.TextUnmarshaler] over the built-in scalar conversions.
func assignLeaf(v reflect.Value, val string) error {
	if u, ok := asUnmarshaler(v); ok {
		return u.UnmarshalForm(val)
	}
	if u, ok := asTextUnmarshaler(v); ok {
		return u.UnmarshalText([]byte(val))
	}
	// A repeated plain key fills a slice one element at a time.
	if v.Kind() == reflect.Slice {
		item := reflect.New(v.Type().Elem()).Elem()
		if err := assign(item, nil, val); err != nil {
			return err
		}
		v.Set(reflect.Append(v, item))
		return nil
	}
	return setScalar(v, val)
}

func assignStructField(v reflect.Value, key string, path []pathSegment, val string) error {
	field := findStructField(v, key)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("unknown field %q in struct %v", key, v.Type())
	}
	return assign(field, path, val)
}

func assignMapValue(v reflect.Value, seg pathSegment, path []pathSegment, val string) error {
	if v.Type().Key().Kind() != reflect.String {
		return errMapKey
	}
	if v.IsNil() {
		v.Set(reflect.MakeMap(v.Type()))
	}

	key := reflect.ValueOf(seg.Key).Convert(v.Type().Key())
	elem := v.MapIndex(key)
	elemType := v.Type().Elem()

	switch elemType.Kind() {
	case reflect.Interface:
		inferred, err := inferInterfaceValue(elem, path, val)
		if err != nil {
			return err
		}
		v.SetMapIndex(key, inferred)
		return nil
	case reflect.Slice:
		// A repeated key appends to the slice already stored in the map.
		slice := elem
		if !slice.IsValid() {
			slice = reflect.MakeSlice(elemType, 0, 1)
		}
		item := reflect.New(elemType.Elem()).Elem()
		if err := assignLeaf(item, val); err != nil {
			return err
		}
		v.SetMapIndex(key, reflect.Append(slice, item))
		return nil
	default:
		// Map elements are not addressable, so work on a copy.
		cp := reflect.New(elemType).Elem()
		if elem.IsValid() {
			cp.Set(elem)
		}
		if err := assign(cp, path, val); err != nil {
			return err
		}
		v.SetMapIndex(key, cp)
		return nil
	}
}

func assignSliceValue(v reflect.Value, seg pathSegment, path []pathSegment, val string) error {
	if !seg.Index {
		return errSliceIndex
	}

	elemType := v.Type().Elem()
	if elemType.Kind() == reflect.Interface {
		inferred, err := inferInterfaceValue(reflect.Value{}, path, val)
		if err != nil {
			return err
		}
		v.Set(reflect.Append(v, inferred))
		return nil
	}

	item := reflect.New(elemType).Elem()
	if err := assign(item, path, val); err != nil {
		return err
	}
	v.Set(reflect.Append(v, item))
	return nil
}

func assignInterfaceValue(v reflect.Value, path []pathSegment, val string) error {
	if !v.IsNil() {
		cur := v.Elem()
		// Only pointers held in an interface can be updated in place.
		if cur.Kind() == reflect.Pointer {
			return assign(cur, path, val)
		}
	}
	inferred, err := inferInterfaceValue(v, path, val)
	if err != nil {
		return err
	}
	v.Set(inferred)
	return nil
}

// inferInterfaceValue builds a value for an untyped destination from the
// shape of the remaining path: "[]" produces []interface{}, a named segment
// produces map[string]interface{}, and a leaf stays a string.
func inferInterfaceValue(v reflect.Value, path []pathSegment, val string) (reflect.Value, error) {
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if len(path) == 0 {
		return reflect.ValueOf(val), nil
	}
	if path[0].Index {
		return inferSliceValue(v, path, val)
	}
	return inferMapValue(v, path[0], path, val)
}

func inferSliceValue(v reflect.Value, path []pathSegment, val string) (reflect.Value, error) {
	var slice []interface{}
	if v.IsValid() {
		if s, ok := v.Interface().([]interface{}); ok {
			slice = s
		}
	}

	elem, err := inferInterfaceValue(reflect.Value{}, path[1:], val)
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(append(slice, elem.Interface())), nil
}

func inferMapValue(v reflect.Value, seg pathSegment, path []pathSegment, val string) (reflect.Value, error) {
	m := map[string]interface{}{}
	if v.IsValid() {
		if existing, ok := v.Interface().(map[string]interface{}); ok {
			m = existing
		}
	}

	var cur reflect.Value
	if prev, ok := m[seg.Key]; ok {
		cur = reflect.ValueOf(prev)
	}
	elem, err := inferInterfaceValue(cur, path[1:], val)
	if err != nil {
		return reflect.Value{}, err
	}
	m[seg.Key] = elem.Interface()
	return reflect.ValueOf(m), nil
}

func asUnmarshaler(v reflect.Value) (Unmarshaler, bool) {
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(Unmarshaler); ok {
			return u, true
		}
	}
	u, ok := v.Interface().(Unmarshaler)
	return u, ok
}

func asTextUnmarshaler(v reflect.Value) (encoding.TextUnmarshaler, bool) {
	if v.CanAddr() {
		if u, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return u, true
		}
	}
	u, ok := v.Interface().(encoding.TextUnmarshaler)
	return u, ok
}

func findStructField(v reflect.Value, key string) reflect.Value {
	fields := tags(v)
	for i, f := range fields {
		if !f.Ignore && f.Name == key {
			return v.Field(i)
		}
	}
	return reflect.Value{}
}

// setScalar converts val to the kind of v. An empty string sets the zero
// value.
func setScalar(v reflect.Value, val string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(val)
		return nil
	case reflect.Interface:
		if v.NumMethod() > 0 {
			return &UnsupportedTypeError{v.Type()}
		}
		v.Set(reflect.ValueOf(val))
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Bool:
	default:
		return &UnsupportedTypeError{v.Type()}
	}

	if val == "" {
		v.Set(reflect.Zero(v.Type()))
		return nil
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(val, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(val, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(val, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return err
		}
		v.SetBool(b)
	}
	return nil
}
