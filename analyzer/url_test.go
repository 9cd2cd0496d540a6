package analyzer

import "testing"

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"bare domain gets https", "google.com", "https://google.com"},
		{"http preserved", "http://site.com", "http://site.com"},
		{"https preserved", "https://site.com", "https://site.com"},
		{"whitespace trimmed", "  google.com  ", "https://google.com"},
		{"empty stays empty", "", ""},
		{"blank stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeURL(tt.raw); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeURLIdempotent(t *testing.T) {
	once := NormalizeURL("https://a.com")
	twice := NormalizeURL(once)
	if once != twice {
		t.Errorf("normalization not idempotent: %q vs %q", once, twice)
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name   string
		rawurl string
		want   string
	}{
		{"strips subdomain", "https://www.google.com", "google.com"},
		{"multi-part suffix", "https://shop.example.co.uk/cart", "example.co.uk"},
		{"already registered domain", "https://site.tk", "site.tk"},
		{"keeps hyphenated label", "https://paypal-login-verify.tk", "paypal-login-verify.tk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDomain(tt.rawurl); got != tt.want {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tt.rawurl, got, tt.want)
			}
		})
	}
}

func TestExtractDomainDegradedMode(t *testing.T) {
	// On any parse failure the input comes back unchanged so the rest of the
	// pipeline can still run.
	tests := []struct {
		name   string
		rawurl string
	}{
		{"unparseable url", "https://exa mple.com"},
		{"bare public suffix", "https://com"},
		{"no host", "https://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDomain(tt.rawurl); got != tt.rawurl {
				t.Errorf("ExtractDomain(%q) = %q, want input unchanged", tt.rawurl, got)
			}
		})
	}
}
