package urlenc_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/urlenc"
)

func TestValues_Encode(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input urlenc.Values
		want  string
	}{
		"nil":   {input: nil, want: ""},
		"empty": {input: urlenc.Values{}, want: ""},
		"sorted by key": {
			input: urlenc.Values{"q": {"puppies"}, "oe": {"utf8"}},
			want:  "oe=utf8&q=puppies",
		},
		"values keep insertion order": {
			input: urlenc.Values{"q": {"dogs", "&", "7"}},
			want:  "q=dogs&q=%26&q=7",
		},
		"several keys with several values": {
			input: urlenc.Values{
				"a": {"a1", "a2", "a3"},
				"b": {"b1", "b2", "b3"},
				"c": {"c1", "c2", "c3"},
			},
			want: "a=a1&a=a2&a=a3&b=b1&b=b2&b=b3&c=c1&c=c2&c=c3",
		},
		"escaped keys": {
			input: urlenc.Values{"a b": {"c d"}, "e&f": {"g=h"}},
			want:  "a+b=c+d&e%26f=g%3Dh",
		},
		"key without values": {
			input: urlenc.Values{"a": {}, "b": {"1"}},
			want:  "b=1",
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.input.Encode()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValues_Mutation(t *testing.T) {
	t.Parallel()

	v := urlenc.Values{}
	v.Set("name", "Ava")
	v.Add("friend", "Jess")
	v.Add("friend", "Sarah")
	v.Add("friend", "Zoe")

	want := urlenc.Values{"name": {"Ava"}, "friend": {"Jess", "Sarah", "Zoe"}}
	if diff := cmp.Diff(want, v); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := v.Get("friend"); got != "Jess" {
		t.Errorf("Get(friend) = %q, want %q", got, "Jess")
	}

	v.Set("friend", "Kim")
	if diff := cmp.Diff([]string{"Kim"}, v["friend"]); diff != "" {
		t.Errorf("Set did not replace values (-want +got):\n%s", diff)
	}

	v.Del("friend")
	if v.Has("friend") {
		t.Error("Has(friend) after Del = true, want false")
	}
	if got := v.Get("friend"); got != "" {
		t.Errorf("Get(friend) after Del = %q, want empty", got)
	}
	if !v.Has("name") {
		t.Error("Has(name) = false, want true")
	}
}

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input   string
		want    urlenc.Values
		wantErr bool
	}{
		"empty": {
			input: "",
			want:  urlenc.Values{},
		},
		"single pair": {
			input: "a=1",
			want:  urlenc.Values{"a": {"1"}},
		},
		"two pairs": {
			input: "a=1&b=2",
			want:  urlenc.Values{"a": {"1"}, "b": {"2"}},
		},
		"repeated key": {
			input: "a=1&a=2&a=banana",
			want:  urlenc.Values{"a": {"1", "2", "banana"}},
		},
		"escaped value": {
			input: "ascii=%3Ckey%3A+0x90%3E",
			want:  urlenc.Values{"ascii": {"<key: 0x90>"}},
		},
		"semicolon separator": {
			input: "a=1;b=2",
			want:  urlenc.Values{"a": {"1"}, "b": {"2"}},
		},
		"mixed separators": {
			input: "x=1&y=2&y=3;z",
			want:  urlenc.Values{"x": {"1"}, "y": {"2", "3"}, "z": {""}},
		},
		"key without value": {
			input: "a;b=1",
			want:  urlenc.Values{"a": {""}, "b": {"1"}},
		},
		"escaped semicolon": {
			input: "a%3Bb=1",
			want:  urlenc.Values{"a;b": {"1"}},
		},
		"empty pairs are skipped": {
			input: "&&a=1&;&",
			want:  urlenc.Values{"a": {"1"}},
		},
		"equals in value": {
			input: "a=b=c",
			want:  urlenc.Values{"a": {"b=c"}},
		},
		"empty key": {
			input: "=x",
			want:  urlenc.Values{"": {"x"}},
		},
		"bad value escape drops the pair": {
			input:   "a=1&a=%zz&b=2",
			want:    urlenc.Values{"a": {"1"}, "b": {"2"}},
			wantErr: true,
		},
		"bad key escape drops the pair": {
			input:   "%gh=1&c=3",
			want:    urlenc.Values{"c": {"3"}},
			wantErr: true,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := urlenc.ParseQuery(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expected error: %v, got: %v", tt.wantErr, err)
			}
			if got == nil {
				t.Fatal("ParseQuery returned a nil map")
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseQuery_ReportsFirstError(t *testing.T) {
	t.Parallel()

	const query = "%gh&%ij"
	_, err := urlenc.ParseQuery(query)
	if err == nil || !strings.Contains(err.Error(), "%gh") {
		t.Errorf("ParseQuery(%q) returned error %v, want something containing %q", query, err, "%gh")
	}
}

func TestParseQuery_EncodeRoundtrip(t *testing.T) {
	t.Parallel()

	want := urlenc.Values{
		"name":  {"Jane Doe"},
		"tags":  {"a&b", "c=d", "e;f"},
		"empty": {""},
		"ünï":   {"cödé"},
	}
	got, err := urlenc.ParseQuery(want.Encode())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
