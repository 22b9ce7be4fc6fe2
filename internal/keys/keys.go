// Package keys builds and parses namespaced storage keys.
//
// A backend that shares its keyspace with other tenants (Redis, typically)
// prefixes every key with "<ns>:" and owns that prefix; enumeration scans
// the matching pattern and strips the prefix before handing keys back.
package keys

import "strings"

// Join returns the storage key for key under ns. Empty ns means the key is
// stored as-is.
func Join(ns, key string) string {
	if ns == "" {
		return key
	}
	return ns + ":" + key
}

// Strip removes the "<ns>:" prefix from a storage key. Keys outside the
// namespace are returned unchanged (foreign keys can only show up when the
// namespace is empty and the whole keyspace is scanned).
func Strip(ns, storageKey string) string {
	if ns == "" {
		return storageKey
	}
	return strings.TrimPrefix(storageKey, ns+":")
}

// Pattern returns the glob matching every key under ns. With no namespace
// it is the universal wildcard.
func Pattern(ns string) string {
	if ns == "" {
		return "*"
	}
	return ns + ":*"
}
