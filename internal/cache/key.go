package cache

import (
	"sort"
	"strings"
)

// keySeparator joins the key components. It cannot occur in a server
// name and keeps the path component prefix-addressable for targeted
// invalidation.
const keySeparator = "|"

// Key builds the composite cache key for a resolution target. The
// query mapping is serialized with sorted keys, so two mentions whose
// queries contain the same pairs in different textual order share one
// cache entry.
func Key(server, path string, query map[string]string) string {
	var b strings.Builder
	b.WriteString(server)
	b.WriteString(keySeparator)
	b.WriteString(path)
	b.WriteString(keySeparator)
	if len(query) > 0 {
		keys := make([]string, 0, len(query))
		for k := range query {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			if i > 0 {
				b.WriteString("&")
			}
			b.WriteString(k)
			b.WriteString("=")
			b.WriteString(query[k])
		}
	}
	return b.String()
}

// KeyPrefix returns the prefix shared by all keys for a server and
// path, regardless of query. Used with DeletePrefix to invalidate
// every cached variant of one resource.
func KeyPrefix(server, path string) string {
	return server + keySeparator + path + keySeparator
}
