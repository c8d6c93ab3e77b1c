package mention

import (
	"regexp"
	"strings"
)

// Pattern fragments shared by all mention variants.
const (
	schemePattern   = `@(resource|res)://`
	serverPattern   = `([A-Za-z0-9_-]+)`
	pathPattern     = `(/[A-Za-z0-9._~/-]*)?`
	queryPattern    = `\?([A-Za-z0-9._~=&-]+)`
	fragmentPattern = `#([A-Za-z0-9._~-]+)`
)

// Regular expressions for the mention variants. Each variant is
// evaluated independently over the whole text; overlapping matches are
// collapsed by Dedupe. Variants are ordered most-specific-first so
// that a query- or fragment-bearing match at a given offset wins over
// a plainer match starting at the same place.
var variants = []struct {
	re          *regexp.Regexp
	hasQuery    bool
	hasFragment bool
}{
	{regexp.MustCompile(schemePattern + serverPattern + pathPattern + queryPattern + fragmentPattern), true, true},
	{regexp.MustCompile(schemePattern + serverPattern + pathPattern + queryPattern), true, false},
	{regexp.MustCompile(schemePattern + serverPattern + pathPattern + fragmentPattern), false, true},
	{regexp.MustCompile(schemePattern + serverPattern + pathPattern), false, false},
}

// Parse extracts every resource mention from text, ordered by start
// offset with zero pairwise overlaps. Candidates that do not conform
// to the mention syntax are simply not matched; Parse never fails.
func Parse(text string) []Mention {
	var found []Mention
	for _, v := range variants {
		for _, idx := range v.re.FindAllStringSubmatchIndex(text, -1) {
			m := Mention{
				Scheme: group(text, idx, 1),
				Server: group(text, idx, 2),
				Path:   group(text, idx, 3),
				Raw:    text[idx[0]:idx[1]],
				Start:  idx[0],
				End:    idx[1],
			}
			if m.Path == "" {
				m.Path = "/"
			}
			next := 4
			if v.hasQuery {
				m.Query = parseQuery(group(text, idx, next))
				next++
			}
			if v.hasFragment {
				m.Fragment = group(text, idx, next)
			}
			found = append(found, m)
		}
	}
	return Dedupe(found)
}

// group returns the nth submatch from a SubmatchIndex result, or ""
// when the group did not participate in the match.
func group(text string, idx []int, n int) string {
	if idx[2*n] < 0 {
		return ""
	}
	return text[idx[2*n]:idx[2*n+1]]
}

// parseQuery splits a raw query component into a string-to-string
// mapping. A key without '=' maps to the empty string. Returns nil for
// an empty input so that an absent query is never an empty map.
func parseQuery(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	query := make(map[string]string)
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		query[k] = v
	}
	if len(query) == 0 {
		return nil
	}
	return query
}
