package analyzer

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeURL trims the input and prepends "https://" when no explicit
// scheme is present. The HTTPS scoring flag is later read off the normalized
// result, so a bare domain is treated as secure by default even though the
// user never asserted a scheme.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		return "https://" + raw
	}
	return raw
}

// ExtractDomain reduces a URL to its registered domain (eTLD+1), e.g.
// "https://mail.example.co.uk/x" -> "example.co.uk". It never fails the
// pipeline: on any parse failure the input is returned unchanged so the
// downstream checks still run in degraded mode.
func ExtractDomain(rawurl string) string {
	u, err := url.Parse(rawurl)
	if err != nil {
		return rawurl
	}
	host := u.Hostname()
	if host == "" {
		return rawurl
	}
	registrable, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return rawurl
	}
	return registrable
}
