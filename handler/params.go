package handler

import (
	"net/http"
	"net/url"
	"strings"
)

// params resolves request variables from the query string first and
// the form-encoded body second. A repeated name resolves to its last
// value; a missing name resolves to the empty string.
type params struct {
	query url.Values
	form  url.Values
}

func newParams(r *http.Request, body []byte) params {
	return params{
		query: parseVars(r.URL.RawQuery),
		form:  parseVars(string(body)),
	}
}

func (p params) Get(name string) string {
	if v, ok := lastValue(p.query, name); ok {
		return v
	}

	v, _ := lastValue(p.form, name)
	return v
}

func lastValue(values url.Values, name string) (string, bool) {
	vs := values[name]
	if len(vs) == 0 {
		return "", false
	}

	return vs[len(vs)-1], true
}

// parseVars splits form-encoded text on '&' only. Unlike url.ParseQuery,
// a ';' is kept as part of the value and no pair is ever dropped.
func parseVars(raw string) url.Values {
	vars := url.Values{}

	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		vars.Add(unescape(key), unescape(value))
	}

	return vars
}

// unescape decodes '+' and percent escapes. Text with a malformed
// escape is kept verbatim apart from '+'.
func unescape(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}

	return strings.ReplaceAll(s, "+", " ")
}
