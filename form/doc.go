// Package form maps Go values onto URL-encoded query strings.
//
// Structs and maps are flattened into [urlenc.Values] using bracket paths:
// a nested field becomes "address[city]" and a slice element becomes
// "pronouns[]". Decoding walks the same paths back into the target value.
//
// Field names come from the "form" struct tag:
//
//	Name  string `form:"name"`           // encoded as name=...
//	Age   int    `form:"age,omitempty"`  // skipped when zero
//	Token string `form:"-"`              // never encoded
//
// Types can take over their own encoding by implementing [Marshaler] and
// [Unmarshaler]. Types implementing [encoding.TextMarshaler], such as
// *urlenc.URL, are encoded through their text form.
package form
