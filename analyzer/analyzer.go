package analyzer

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"genuine-checker/logger"
)

// Analyzer runs the full URL analysis pipeline. Safe for concurrent use; all
// state is read-only after construction.
type Analyzer struct {
	vocab Vocabulary
	log   logger.Logger

	client   *http.Client
	resolver ipResolver

	whoisEnabled bool
	rdapBaseURL  string

	probeTimeout time.Duration
	dnsTimeout   time.Duration
	rdapTimeout  time.Duration
	whoisTimeout time.Duration

	now func() time.Time
}

// Options configures an Analyzer. Zero values fall back to sane defaults.
type Options struct {
	Vocabulary   Vocabulary
	WhoisEnabled bool
	RDAPBaseURL  string

	ProbeTimeout time.Duration
	DNSTimeout   time.Duration
	RDAPTimeout  time.Duration
	WhoisTimeout time.Duration

	// HTTPClient and Resolver are injectable for tests.
	HTTPClient *http.Client
	Resolver   ipResolver

	// Now overrides the clock used for age math. Defaults to time.Now.
	Now func() time.Time
}

func New(opts Options, log logger.Logger) *Analyzer {
	a := &Analyzer{
		vocab:        opts.Vocabulary,
		log:          log,
		client:       opts.HTTPClient,
		resolver:     opts.Resolver,
		whoisEnabled: opts.WhoisEnabled,
		rdapBaseURL:  strings.TrimSuffix(opts.RDAPBaseURL, "/"),
		probeTimeout: opts.ProbeTimeout,
		dnsTimeout:   opts.DNSTimeout,
		rdapTimeout:  opts.RDAPTimeout,
		whoisTimeout: opts.WhoisTimeout,
		now:          opts.Now,
	}

	if a.client == nil {
		a.client = &http.Client{}
	}
	if a.resolver == nil {
		a.resolver = net.DefaultResolver
	}
	if a.rdapBaseURL == "" {
		a.rdapBaseURL = "https://rdap.org"
	}
	if a.probeTimeout == 0 {
		a.probeTimeout = 6 * time.Second
	}
	if a.dnsTimeout == 0 {
		a.dnsTimeout = 5 * time.Second
	}
	if a.rdapTimeout == 0 {
		a.rdapTimeout = 5 * time.Second
	}
	if a.whoisTimeout == 0 {
		a.whoisTimeout = 5 * time.Second
	}
	if a.now == nil {
		a.now = time.Now
	}

	return a
}

// Analyze classifies one URL. It always returns a complete result: every
// network failure degrades to a safe default for that signal instead of
// aborting the run.
func (a *Analyzer) Analyze(ctx context.Context, raw string) AnalysisResult {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return AnalysisResult{Status: StatusScam, Reason: "Empty URL", TrustScore: 0}
	}

	normalized := NormalizeURL(raw)
	domain := ExtractDomain(normalized)

	sig := Signals{
		SuspiciousKeyword:  a.vocab.HasSuspiciousKeyword(raw),
		UntrustedExtension: a.vocab.HasUntrustedSuffix(domain),
		BrandImpersonation: a.vocab.IsBrandImpersonation(domain),
		HTTPS:              strings.HasPrefix(normalized, "https://"),
	}

	// The three network checks are independent of each other; collect them
	// concurrently, each under its own bounded timeout.
	var (
		ip    string
		reg   registrarInfo
		probe probeOutcome
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr, err := a.resolveDomain(gctx, domain)
		if err != nil {
			a.log.Debugf("dns check for %s: %v", domain, err)
			return nil
		}
		ip = addr
		return nil
	})

	g.Go(func() error {
		reg = a.lookupRegistrar(gctx, domain)
		return nil
	})

	g.Go(func() error {
		out, err := a.probeReachability(gctx, normalized)
		if err != nil {
			a.log.Debugf("reachability check for %s: %v", normalized, err)
			out = failedProbe()
		}
		probe = out
		return nil
	})

	_ = g.Wait()

	sig.DNSResolves = ip != ""
	sig.Reachable = probe.Reachable
	sig.DomainAgeDays = reg.AgeDays

	status, reason := decide(sig, probe)

	result := AnalysisResult{
		URL:           raw,
		Domain:        domain,
		IP:            ip,
		RegistrarDate: reg.CreatedOn,
		DomainAgeDays: reg.AgeDays,
		TrustScore:    TrustScore(sig),
		Status:        status,
		Reason:        reason,
	}
	if status == StatusGenuine {
		result.Purpose = a.vocab.Purpose(domain)
	}
	return result
}

// decide applies the priority-ordered status cascade; the first matching rule
// wins, independently of the numeric score.
func decide(sig Signals, probe probeOutcome) (Status, string) {
	switch {
	case sig.SuspiciousKeyword:
		return StatusScam, "Suspicious keywords found"
	case sig.UntrustedExtension:
		return StatusScam, "Untrusted domain extension"
	case sig.BrandImpersonation:
		return StatusScam, "Brand impersonation detected"
	case !sig.DNSResolves:
		return StatusScam, "DNS resolution failed"
	case !sig.Reachable:
		return StatusScam, "Server unreachable"
	case !sig.HTTPS:
		return StatusScam, "HTTPS missing"
	case sig.DomainAgeDays != nil && *sig.DomainAgeDays < 365:
		return StatusScam, fmt.Sprintf("Domain too new (%d days)", *sig.DomainAgeDays)
	default:
		return StatusGenuine, fmt.Sprintf("Website reachable (%s, %d)", probe.Method, probe.StatusCode)
	}
}
