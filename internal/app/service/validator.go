// Package service provides video link registration, resolution and the
// upstream streaming proxy.
package service

import "net/url"

// IsValidURL reports whether raw is an absolute http or https URL with a
// non-empty host. The value is percent-decoded before inspection; a failed
// decode or parse counts as invalid. Purely syntactic, no DNS lookups.
func IsValidURL(raw string) bool {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return false
	}

	parsed, err := url.Parse(decoded)
	if err != nil {
		return false
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	return parsed.Host != ""
}
