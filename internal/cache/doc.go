// Package cache provides a TTL-based memoization store for resolved
// resources.
//
// Entries are keyed by the composite of server, path and a
// deterministically serialized query mapping, so equal queries produce
// equal keys regardless of insertion order. Expiry is enforced lazily
// on reads; there is no background sweep. A long-lived cache serving
// many distinct keys therefore grows until those keys are read again
// or the cache is cleared.
package cache
