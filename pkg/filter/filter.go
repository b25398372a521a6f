// Package filter turns key/value criteria into the query strings accepted by
// the collection endpoints.
package filter

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned by Parse for input without a key.
var ErrMalformed = errors.New("filter: malformed criterion")

// Criterion is a single query-parameter pair.
type Criterion struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// String joins criteria as key=value pairs separated by '&'. Only values are
// percent-encoded. Order is preserved and repeated keys are kept.
func String(criteria []Criterion) string {
	if len(criteria) == 0 {
		return ""
	}
	var b strings.Builder
	for i, c := range criteria {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(c.Key)
		b.WriteByte('=')
		b.WriteString(EscapeComponent(c.Value))
	}
	return b.String()
}

// FromPairs builds criteria from alternating keys and values. A trailing key
// without a value gets an empty value.
func FromPairs(kv ...string) []Criterion {
	out := make([]Criterion, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		c := Criterion{Key: kv[i]}
		if i+1 < len(kv) {
			c.Value = kv[i+1]
		}
		out = append(out, c)
	}
	return out
}

// Parse reads a "key=value" expression. Everything after the first '=' is the
// value, unescaped.
func Parse(expr string) (Criterion, error) {
	key, value, ok := strings.Cut(expr, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return Criterion{}, fmt.Errorf("%w: %q", ErrMalformed, expr)
	}
	return Criterion{Key: key, Value: value}, nil
}

// ParseAll parses every expression, stopping at the first malformed one.
func ParseAll(exprs []string) ([]Criterion, error) {
	out := make([]Criterion, 0, len(exprs))
	for _, expr := range exprs {
		c, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
