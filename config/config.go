package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort string // ex: "8080"

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Registrar lookup
	WhoisEnabled bool   // capability flag, false => go straight to RDAP
	RDAPBaseURL  string // ex: "https://rdap.org"

	// Per-check timeouts
	ProbeTimeout time.Duration // reachability HEAD/GET
	DNSTimeout   time.Duration
	RDAPTimeout  time.Duration
	WhoisTimeout time.Duration

	StaticDir string // directory served at "/"
}

func Load() *Config {
	return &Config{
		ListenPort: getenv("PORT", "8080"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		PrettyLog: mustBool("PRETTY_LOG", true),

		WhoisEnabled: mustBool("WHOIS_ENABLED", true),
		RDAPBaseURL:  getenv("RDAP_BASE_URL", "https://rdap.org"),

		ProbeTimeout: mustDuration("PROBE_TIMEOUT", 6*time.Second),
		DNSTimeout:   mustDuration("DNS_TIMEOUT", 5*time.Second),
		RDAPTimeout:  mustDuration("RDAP_TIMEOUT", 5*time.Second),
		WhoisTimeout: mustDuration("WHOIS_TIMEOUT", 5*time.Second),

		StaticDir: getenv("STATIC_DIR", "static"),
	}
}

// helpers

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
