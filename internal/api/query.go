package api

import (
	"fmt"
	"net/url"
)

// Query holds request query parameters. Nil values and values that
// stringify to "" are dropped; everything else is URL-encoded.
type Query map[string]any

// buildQuery encodes q into a query string without the leading "?".
// An empty or all-dropped mapping yields "".
func buildQuery(q Query) string {
	if len(q) == 0 {
		return ""
	}
	vals := url.Values{}
	for k, v := range q {
		if v == nil {
			continue
		}
		s := fmt.Sprint(v)
		if s == "" {
			continue
		}
		vals.Set(k, s)
	}
	return vals.Encode()
}
