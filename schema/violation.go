package schema

import (
	"fmt"
	"strings"

	"github.com/reoring/goskema"
)

// Violation describes a single value that did not satisfy its schema
type Violation struct {
	// Location is the JSON pointer of the value, "/" for the document itself
	Location string
	// Check is the goskema issue code
	Check   string
	Message string
}

// Violations is the error returned by a failed validation. Its message
// joins the message of every violation with newlines.
type Violations []*Violation

// Error implements the Go standard error interface
func (v Violations) Error() string {
	msgs := make([]string, 0, len(v))
	for _, violation := range v {
		msgs = append(msgs, violation.Message)
	}
	return strings.Join(msgs, "\n")
}

// Locations returns the location of every violation, in order
func (v Violations) Locations() []string {
	locs := make([]string, 0, len(v))
	for _, violation := range v {
		locs = append(locs, violation.Location)
	}
	return locs
}

func fromIssues(name string, iss goskema.Issues) Violations {
	vs := make(Violations, 0, len(iss))
	for _, is := range iss {
		p := pointer(fmt.Sprint(is.Path))

		loc := p
		if loc == "" {
			loc = "/"
		}

		vs = append(vs, &Violation{
			Location: loc,
			Check:    fmt.Sprint(is.Code),
			Message:  fmt.Sprintf("invalid value supplied to %s%s: %s", name, p, is.Message),
		})
	}
	return vs
}

// pointer renders an issue path as a JSON pointer: "$[0].name", "0.name"
// and "/0/name" all become "/0/name". The document root is "".
func pointer(path string) string {
	p := strings.TrimPrefix(path, "$")
	p = strings.NewReplacer("[", "/", "]", "", ".", "/").Replace(p)
	p = strings.Trim(p, "/")

	if p == "" {
		return ""
	}
	return "/" + p
}
