package analyzer

import "testing"

func TestHasSuspiciousKeyword(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"login and verify in host", "http://paypal-login-verify.tk", true},
		{"uppercase match", "https://SECURE-site.com", true},
		{"keyword inside path", "https://example.com/free-stuff", true},
		{"clean url", "https://example.com", false},
		{"clean bare domain", "google.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.HasSuspiciousKeyword(tt.raw); got != tt.want {
				t.Errorf("HasSuspiciousKeyword(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestHasUntrustedSuffix(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		domain string
		want   bool
	}{
		{"site.tk", true},
		{"site.ml", true},
		{"site.ga", true},
		{"site.cf", true},
		{"site.gq", true},
		{"site.com", false},
		{"site.co.uk", false},
	}

	for _, tt := range tests {
		t.Run(tt.domain, func(t *testing.T) {
			if got := v.HasUntrustedSuffix(tt.domain); got != tt.want {
				t.Errorf("HasUntrustedSuffix(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestIsBrandImpersonation(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name   string
		domain string
		want   bool
	}{
		{"real brand is not impersonation", "google.com", false},
		{"digit lookalike", "g00gle.com", true},
		{"brand as substring", "mygoogleapp.com", true},
		{"brand with suffix label", "paypal-login-verify.tk", true},
		{"unrelated domain", "example.com", false},
		{"real paypal", "paypal.com", false},
		{"lookalike with 1 for l", "paypa1.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.IsBrandImpersonation(tt.domain); got != tt.want {
				t.Errorf("IsBrandImpersonation(%q) = %v, want %v", tt.domain, got, tt.want)
			}
		})
	}
}

func TestPurpose(t *testing.T) {
	v := DefaultVocabulary()

	if got := v.Purpose("google.com"); got != "Search engine and online services" {
		t.Errorf("Purpose(google.com) = %q", got)
	}
	if got := v.Purpose("GitHub.com"); got != "Software development and code hosting" {
		t.Errorf("Purpose should be case-insensitive, got %q", got)
	}
	if got := v.Purpose("unknown-domain.net"); got != genericPurpose {
		t.Errorf("Purpose fallback = %q, want %q", got, genericPurpose)
	}
}
