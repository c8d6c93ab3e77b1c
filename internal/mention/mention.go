package mention

import (
	"sort"
	"strings"
)

// Scheme values recognized in mention sigils.
const (
	SchemeResource = "resource"
	SchemeRes      = "res"
)

// Mention represents a single resource reference found in text.
// Instances are created by Parse and are not mutated afterwards.
type Mention struct {
	// Scheme is the sigil scheme as written in the text ("resource" or "res").
	Scheme string

	// Server is the logical server name, matching [A-Za-z0-9_-]+.
	Server string

	// Path is the resource path. An omitted path defaults to "/".
	Path string

	// Query holds the parsed query parameters. It is nil when the
	// mention carries no query component; an empty query is never
	// represented as an empty map.
	Query map[string]string

	// Fragment is the fragment component without its leading '#',
	// empty when absent.
	Fragment string

	// Raw is the exact matched text, including the '@' sigil.
	Raw string

	// Start and End are byte offsets of Raw within the parsed text,
	// with Start < End and End-Start == len(Raw).
	Start int
	End   int
}

// URI returns the canonical resource URI for the mention, without the
// '@' sigil, query or fragment. This is the identity under which
// resolved content is reported back to callers.
func (m Mention) URI() string {
	return SchemeResource + "://" + m.Server + m.Path
}

// RefKey returns the "server:path" key used in resolution result maps.
func (m Mention) RefKey() string {
	return m.Server + ":" + m.Path
}

// Format renders a mention into its canonical textual form. The
// canonical form always uses the long "resource" scheme and serializes
// query keys in sorted order, so equal mentions format identically
// regardless of how they were written. Format and Parse round-trip:
// parsing a formatted mention and formatting the result reproduces the
// same string.
func Format(m Mention) string {
	var b strings.Builder
	b.WriteString("@")
	b.WriteString(SchemeResource)
	b.WriteString("://")
	b.WriteString(m.Server)
	path := m.Path
	if path == "" {
		path = "/"
	}
	b.WriteString(path)
	if m.Query != nil {
		b.WriteString("?")
		b.WriteString(encodeQuery(m.Query))
	}
	if m.Fragment != "" {
		b.WriteString("#")
		b.WriteString(m.Fragment)
	}
	return b.String()
}

// encodeQuery serializes a query map deterministically: keys sorted,
// joined with '&'. Insertion order of the original text is irrelevant.
func encodeQuery(query map[string]string) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteString("&")
		}
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(query[k])
	}
	return b.String()
}
