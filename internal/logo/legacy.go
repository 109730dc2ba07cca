package logo

import "strings"

// IsLegacyEmptyDomainURL reports whether a stored logo URL matches the
// malformed lookup URL a previous release could persist when the website
// field emptied mid-debounce: the lookup host with no domain segment, e.g.
// "https://img.logo.dev/?token=abc&size=200". The check is deliberately
// narrow; it is a one-time cleanup of bad persisted data, not general URL
// validation.
func IsLegacyEmptyDomainURL(raw, host string) bool {
	if raw == "" {
		return false
	}
	base := "https://" + host + "/"
	if !strings.HasPrefix(raw, base) {
		return false
	}
	rest := strings.TrimPrefix(raw, base)
	return rest == "" || strings.HasPrefix(rest, "?")
}
