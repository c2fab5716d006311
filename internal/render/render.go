// Package render writes command results as text, JSON or YAML.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v2"

	"github.com/tomasbasham/urlenc"
)

// Format selects how a result is written.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ParseFormat validates a format name. Matching is case insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case Text, JSON, YAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Components is the broken down form of a URL.
type Components struct {
	Scheme      string        `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Opaque      string        `json:"opaque,omitempty" yaml:"opaque,omitempty"`
	Username    string        `json:"username,omitempty" yaml:"username,omitempty"`
	HasPassword bool          `json:"has_password,omitempty" yaml:"has_password,omitempty"`
	Host        string        `json:"host,omitempty" yaml:"host,omitempty"`
	Hostname    string        `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Port        string        `json:"port,omitempty" yaml:"port,omitempty"`
	Path        string        `json:"path,omitempty" yaml:"path,omitempty"`
	RawPath     string        `json:"raw_path,omitempty" yaml:"raw_path,omitempty"`
	RawQuery    string        `json:"raw_query,omitempty" yaml:"raw_query,omitempty"`
	Query       urlenc.Values `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment    string        `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	RequestURI  string        `json:"request_uri" yaml:"request_uri"`
	IsAbs       bool          `json:"is_abs" yaml:"is_abs"`
	URL         string        `json:"url" yaml:"url"`
}

// NewComponents breaks u down. The password itself is never included; URL
// holds the redacted form.
func NewComponents(u *urlenc.URL) Components {
	c := Components{
		Scheme:     u.Scheme,
		Opaque:     u.Opaque,
		Host:       u.Host,
		Hostname:   u.Hostname(),
		Port:       u.Port(),
		Path:       u.Path,
		RawPath:    u.RawPath,
		RawQuery:   u.RawQuery,
		Fragment:   u.Fragment,
		RequestURI: u.RequestURI(),
		IsAbs:      u.IsAbs(),
		URL:        u.Redacted(),
	}
	if u.User != nil {
		c.Username = u.User.Username()
		_, c.HasPassword = u.User.Password()
	}
	if u.RawQuery != "" {
		c.Query = u.Query()
	}
	return c
}

// Result pairs a command's input with its output, e.g. an escaped string.
type Result struct {
	Input  string `json:"input,omitempty" yaml:"input,omitempty"`
	Output string `json:"output" yaml:"output"`
}

// Write renders v to w in format f. Text output understands [Components],
// [Result] and [urlenc.Values]; anything else is printed with fmt.
func Write(w io.Writer, f Format, v interface{}) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case YAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case Text, "":
		return writeText(w, v)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

func writeText(w io.Writer, v interface{}) error {
	switch v := v.(type) {
	case Result:
		_, err := fmt.Fprintln(w, v.Output)
		return err
	case urlenc.Values:
		return writeValues(w, v)
	case Components:
		return writeComponents(w, v)
	default:
		_, err := fmt.Fprintln(w, v)
		return err
	}
}

// writeValues prints one decoded key=value pair per line, sorted by key.
func writeValues(w io.Writer, values urlenc.Values) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range values[k] {
			if _, err := fmt.Fprintf(w, "%s=%s\n", k, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeComponents(w io.Writer, c Components) error {
	tw := tabwriter.NewWriter(w, 0, 4, 1, ' ', 0)
	line := func(name, value string) {
		if value != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", name, value)
		}
	}

	line("scheme", c.Scheme)
	line("opaque", c.Opaque)
	line("username", c.Username)
	if c.HasPassword {
		line("password", "xxxxx")
	}
	line("host", c.Host)
	if c.Hostname != c.Host {
		line("hostname", c.Hostname)
	}
	line("port", c.Port)
	line("path", c.Path)
	line("raw path", c.RawPath)
	line("raw query", c.RawQuery)
	line("fragment", c.Fragment)
	line("request uri", c.RequestURI)
	line("url", c.URL)
	return tw.Flush()
}
