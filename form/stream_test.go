package form_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/urlenc/form"
)

func TestDecoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    Person
		wantErr bool
	}{
		"valid query string": {
			input: "name=john&age=20&pronouns[]=he&pronouns[]=him",
			want: Person{
				Name:     "john",
				Age:      20,
				Pronouns: []string{"he", "him"},
			},
		},
		"trailing newline": {
			input: "name=john\n",
			want:  Person{Name: "john"},
		},
		"invalid escape": {
			input:   "%%%",
			wantErr: true,
		},
		"empty body": {
			input:   "",
			wantErr: true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var got Person
			err := form.NewDecoder(strings.NewReader(tt.input)).Decode(&got)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if !tt.wantErr {
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("(-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestDecoder_ReadError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var got Person
	err := form.NewDecoder(iotest.ErrReader(errBoom)).Decode(&got)
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected read error in chain, got: %v", err)
	}
}

func TestEncoder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   interface{}
		want    string
		wantErr bool
	}{
		"basic form": {
			input: &Person{
				Name:     "john",
				Age:      20,
				Pronouns: []string{"he", "him"},
			},
			want: "age=20&name=john&pronouns%5B%5D=he&pronouns%5B%5D=him",
		},
		"url field": {
			input: &Webhook{Callback: mustParse("mailto:ops@example.com")},
			want:  "callback=mailto%3Aops%40example.com",
		},
		"invalid target": {
			input:   map[int]interface{}{},
			wantErr: true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var b bytes.Buffer
			err := form.NewEncoder(&b).Encode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if diff := cmp.Diff(tt.want, b.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
