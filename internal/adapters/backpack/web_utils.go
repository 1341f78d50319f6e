package backpack

import (
	"fmt"
	"strings"
)

func normalizeDomain(domain string) string {
	trimmed := strings.TrimSpace(domain)
	if trimmed == "" {
		return DefaultDomain
	}
	return trimmed
}

// PublicRESTURL builds the full URL for a public endpoint path.
func PublicRESTURL(pathURL, domain string) string {
	return fmt.Sprintf(restURLFormat, normalizeDomain(domain)) + pathURL
}

// PrivateRESTURL builds the full URL for a private endpoint path. The
// venue serves public and private surfaces from the same host; the
// split is kept so callers declare intent.
func PrivateRESTURL(pathURL, domain string) string {
	return PublicRESTURL(pathURL, domain)
}

// WSSURL returns the websocket endpoint for the domain.
func WSSURL(domain string) string {
	return fmt.Sprintf(wssURLFormat, normalizeDomain(domain))
}
