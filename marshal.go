package urlenc

// MarshalBinary encodes the URL in its string form.
func (u *URL) MarshalBinary() (text []byte, err error) {
	return u.AppendBinary(nil)
}

// AppendBinary appends the string form of the URL to b.
func (u *URL) AppendBinary(b []byte) ([]byte, error) {
	return append(b, u.String()...), nil
}

// UnmarshalBinary replaces u with the URL parsed from text.
func (u *URL) UnmarshalBinary(text []byte) error {
	u1, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *u1
	return nil
}

// MarshalText implements [encoding.TextMarshaler], so that a URL is written
// as a plain string by JSON and YAML encoders.
func (u *URL) MarshalText() ([]byte, error) {
	return u.MarshalBinary()
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URL) UnmarshalText(text []byte) error {
	return u.UnmarshalBinary(text)
}
