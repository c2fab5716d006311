package form_test

import (
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/tomasbasham/urlenc"
)

var (
	baseTime    = time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC)
	optionalVal = "optional_value"
)

var (
	myDateComparer = cmp.Comparer(func(x, y MyDate) bool {
		return time.Time(x).Equal(time.Time(y))
	})

	// URLs are compared by their string form; the parsed Userinfo is
	// unexported.
	urlComparer = cmp.Comparer(func(x, y *urlenc.URL) bool {
		if x == nil || y == nil {
			return x == y
		}
		return x.String() == y.String()
	})
)

type Person struct {
	Name     string   `form:"name"`
	Age      int      `form:"age,omitempty"`
	Pronouns []string `form:"pronouns"`
}

type ComplexPerson struct {
	ID        int      `form:"id"`
	Name      string   `form:"name"`
	Age       int      `form:"age,omitempty"`
	Pronouns  []string `form:"pronouns,omitempty"`
	CreatedAt MyDate   `form:"created_at"`
	Private   string   `form:"-"`
	Optional  *string  `form:"optional,omitempty"`
}

type IgnoredFieldsForm struct {
	Public  string `form:"public"`
	Private string `form:"-"`
	Ignored string `form:",ignore"`
	NoTag   string
	Empty   string `form:""`
	Omitted string `form:",omitempty"`
	Complex MyDate `form:"complex,omitempty"`
}

type User struct {
	Name    string  `form:"name"`
	Age     int     `form:"age,omitempty"`
	Address Address `form:"address"`
}

type Address struct {
	Street string `form:"street"`
	City   string `form:"city"`
	State  string `form:"state"`
	Zip    string `form:"zip"`
}

// Webhook carries fields that encode through encoding.TextMarshaler.
type Webhook struct {
	Callback *urlenc.URL   `form:"callback"`
	Mirrors  []*urlenc.URL `form:"mirrors,omitempty"`
	Since    time.Time     `form:"since,omitempty"`
	Events   []string      `form:"events,omitempty"`
}

type MyDate time.Time

func (d MyDate) MarshalForm() (string, error) {
	return time.Time(d).Format("2006.01.02"), nil
}

func (d *MyDate) UnmarshalForm(b string) error {
	t, err := time.Parse("2006.01.02", b)
	if err != nil {
		return err
	}
	*d = MyDate(t)
	return nil
}

func mustParse(raw string) *urlenc.URL {
	u, err := urlenc.Parse(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func intPointer(i int) *int {
	return &i
}
