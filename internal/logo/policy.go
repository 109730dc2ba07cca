// Package logo decides whether and how to auto-populate the client logo URL
// from the client's website, against an external domain-to-logo image lookup
// service.
package logo

import (
	"fmt"
	"strings"

	"github.com/agencyforge/roi-proposal/pkg/constants"
)

// Policy holds the lookup-service parameters. A Policy with an empty APIKey
// never resolves anything; the logo is a best-effort enhancement and a
// missing key must not surface to the user.
type Policy struct {
	Host   string
	APIKey string
	Size   int
}

// NewPolicy returns a Policy with defaults applied for host and size.
func NewPolicy(host, apiKey string, size int) Policy {
	if host == "" {
		host = constants.DefaultLogoHost
	}
	if size <= 0 {
		size = constants.DefaultLogoSize
	}
	return Policy{Host: host, APIKey: apiKey, Size: size}
}

// ExtractDomain reduces a free-text website field to a bare lowercase domain:
// scheme and leading "www." stripped, cut at the first '/' or '?'.
func ExtractDomain(website string) string {
	d := strings.TrimSpace(website)
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexAny(d, "/?"); i >= 0 {
		d = d[:i]
	}
	return strings.ToLower(d)
}

// ValidDomain reports whether a candidate domain is worth a lookup call:
// at least one dot, minimum length, and no leading or trailing dot.
func ValidDomain(domain string) bool {
	if len(domain) < constants.MinimumDomainLength {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

// LookupURL builds the lookup-service image URL for a domain. The URL is
// embedded directly as an image source; the service returns the image itself,
// not a JSON envelope.
func (p Policy) LookupURL(domain string) string {
	return fmt.Sprintf("https://%s/%s?token=%s&size=%d", p.Host, domain, p.APIKey, p.Size)
}

// Resolve applies the auto-population policy for the current website and logo
// fields. It returns the URL to store and true only when every trigger
// condition holds: non-empty website, empty existing logo (manual overrides
// are sticky), a valid extracted domain, and a configured API key. Any
// failure aborts silently.
func (p Policy) Resolve(website, existingLogoURL string) (string, bool) {
	if strings.TrimSpace(website) == "" || existingLogoURL != "" {
		return "", false
	}
	if p.APIKey == "" {
		return "", false
	}
	domain := ExtractDomain(website)
	if !ValidDomain(domain) {
		return "", false
	}
	return p.LookupURL(domain), true
}
