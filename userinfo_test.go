package urlenc_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/urlenc"
)

func TestUserinfo(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		user         *urlenc.Userinfo
		wantName     string
		wantPassword string
		wantSet      bool
		wantString   string
	}{
		"name only": {
			user:       urlenc.User("gopher"),
			wantName:   "gopher",
			wantString: "gopher",
		},
		"name and password": {
			user:         urlenc.UserPassword("gopher", "secret"),
			wantName:     "gopher",
			wantPassword: "secret",
			wantSet:      true,
			wantString:   "gopher:secret",
		},
		"empty password is still set": {
			user:       urlenc.UserPassword("gopher", ""),
			wantName:   "gopher",
			wantSet:    true,
			wantString: "gopher:",
		},
		"escaped characters": {
			user:         urlenc.UserPassword("j@ne doe", "p:ss/w?rd"),
			wantName:     "j@ne doe",
			wantPassword: "p:ss/w?rd",
			wantSet:      true,
			wantString:   "j%40ne%20doe:p%3Ass%2Fw%3Frd",
		},
		"sub-delims are kept": {
			user:       urlenc.User("a$&+,;=b"),
			wantName:   "a$&+,;=b",
			wantString: "a$&+,;=b",
		},
		"nil": {
			user: nil,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.wantName, tt.user.Username()); diff != "" {
				t.Errorf("Username (-want +got):\n%s", diff)
			}
			password, set := tt.user.Password()
			if diff := cmp.Diff(tt.wantPassword, password); diff != "" {
				t.Errorf("Password (-want +got):\n%s", diff)
			}
			if set != tt.wantSet {
				t.Errorf("Password set = %v, want %v", set, tt.wantSet)
			}
			if diff := cmp.Diff(tt.wantString, tt.user.String()); diff != "" {
				t.Errorf("String (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUserinfo_ParseRoundtrip(t *testing.T) {
	t.Parallel()

	u := &urlenc.URL{
		Scheme: "ftp",
		User:   urlenc.UserPassword("j@ne doe", "p:ss/w?rd"),
		Host:   "example.com",
	}
	got, err := urlenc.Parse(u.String())
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", u.String(), err)
	}
	if diff := cmp.Diff(u, got, userinfoComparer); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
