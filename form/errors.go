package form

import (
	"errors"
	"reflect"
)

var (
	errEmptyInput = errors.New("form: empty input")
	errTopLevel   = errors.New("form: top-level value must be struct or map")
	errMapKey     = errors.New("form: map keys must be strings")
	errKeySyntax  = errors.New("form: invalid key syntax")
	errSliceIndex = errors.New("form: expected slice index")
)

// InvalidUnmarshalError describes an invalid argument passed to [Unmarshal].
// (The argument to [Unmarshal] must be a non-nil pointer.)
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "form: Unmarshal(nil)"
	}

	if e.Type.Kind() != reflect.Pointer {
		return "form: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "form: Unmarshal(nil " + e.Type.String() + ")"
}

// UnsupportedTypeError is returned when a value of a type with no form
// representation, such as a channel or a func, is encoded or decoded.
type UnsupportedTypeError struct {
	Type reflect.Type
}

func (e *UnsupportedTypeError) Error() string {
	return "form: unsupported type: " + e.Type.String()
}

// FieldError reports a value that could not be stored under Key.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string {
	return "form: field " + e.Key + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }
