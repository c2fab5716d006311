package form

import (
	"fmt"
	"io"
)

// Decoder reads URL-encoded form data from an [io.Reader] and decodes it
// into a Go value.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a [Decoder] that reads from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads all remaining input from the underlying reader and decodes it
// into v with [Unmarshal].
func (d *Decoder) Decode(v interface{}) error {
	body, err := io.ReadAll(d.r)
	if err != nil {
		return fmt.Errorf("form: failed to read body: %w", err)
	}
	return Unmarshal(body, v)
}

// Encoder writes URL-encoded form data to an [io.Writer].
type Encoder struct {
	w io.Writer
}

// NewEncoder returns an [Encoder] that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the form encoding of v to the underlying writer.
func (e *Encoder) Encode(v interface{}) error {
	values, err := MarshalValues(v)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, values.Encode()); err != nil {
		return fmt.Errorf("form: failed to write body: %w", err)
	}
	return nil
}
