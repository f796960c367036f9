package env

import (
	"os"
	"strings"
)

// Get returns the value of the given environment variable or a fallback.
func Get(key, fallback string) string {
	return GetFirst(fallback, key)
}

// GetFirst returns the first non-blank value among keys, in order, or
// fallback when none is set. Platform-provided variables such as PORT are
// read this way next to the STOREFRONT_ ones.
func GetFirst(fallback string, keys ...string) string {
	for _, key := range keys {
		if val := strings.TrimSpace(os.Getenv(key)); val != "" {
			return val
		}
	}
	return fallback
}
