package urlenc

// Userinfo is an immutable encapsulation of username and password details for
// a [URL]. An existing Userinfo value is guaranteed to have a username set
// (potentially empty, as allowed by RFC 2396), and optionally a password.
type Userinfo struct {
	username    string
	password    string
	passwordSet bool
}

// User returns a [Userinfo] containing the provided username and no password
// set.
func User(username string) *Userinfo {
	return &Userinfo{username: username}
}

// UserPassword returns a [Userinfo] containing the provided username and
// password.
//
// This functionality should only be used with legacy web sites. RFC 2396 warns
// that interpreting Userinfo this way "is NOT RECOMMENDED, because the passing
// of authentication information in clear text (such as URI) has proven to be a
// security risk in almost every case where it has been used."
func UserPassword(username, password string) *Userinfo {
	return &Userinfo{username: username, password: password, passwordSet: true}
}

// Username returns the username.
func (u *Userinfo) Username() string {
	if u == nil {
		return ""
	}
	return u.username
}

// Password returns the password in case it is set, and whether it is set.
func (u *Userinfo) Password() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.password, u.passwordSet
}

// String returns the encoded userinfo information in the standard form of
// "username[:password]".
func (u *Userinfo) String() string {
	if u == nil {
		return ""
	}
	s := escape(u.username, encodeUserPassword)
	if u.passwordSet {
		s += ":" + escape(u.password, encodeUserPassword)
	}
	return s
}

// validUserinfo reports whether s is a valid userinfo string per RFC 3986
// Section 3.2.1:
//
//	userinfo    = *( unreserved / pct-encoded / sub-delims / ":" )
//	unreserved  = ALPHA / DIGIT / "-" / "." / "_" / "~"
//	sub-delims  = "!" / "$" / "&" / "'" / "(" / ")"
//	              / "*" / "+" / "," / ";" / "="
//
// It doesn't validate pct-encoded. The caller does that via unescape.
func validUserinfo(s string) bool {
	for _, r := range s {
		if 'A' <= r && r <= 'Z' || 'a' <= r && r <= 'z' || '0' <= r && r <= '9' {
			continue
		}
		switch r {
		case '-', '.', '_', ':', '~', '!', '$', '&', '\'',
			'(', ')', '*', '+', ',', ';', '=', '%', '@':
			continue
		default:
			return false
		}
	}
	return true
}
