package analyzer

import (
	"context"
	"net"
	"net/http"
)

//
// NETWORK SIGNAL CHECKS
//

const probeUserAgent = "Mozilla/5.0 GenuineChecker"

// probeOutcome is the reachability verdict. StatusCode -1 means the probe
// never got a response at all.
type probeOutcome struct {
	Reachable  bool
	Method     string
	StatusCode int
}

func failedProbe() probeOutcome {
	return probeOutcome{Reachable: false, Method: "Connection failed", StatusCode: -1}
}

// resolveDomain looks up the domain and returns its address, preferring IPv4.
func (a *Analyzer) resolveDomain(ctx context.Context, domain string) (string, *CheckError) {
	ctx, cancel := context.WithTimeout(ctx, a.dnsTimeout)
	defer cancel()

	ips, err := a.resolver.LookupIP(ctx, "ip", domain)
	if err != nil {
		return "", classifyNetErr("dns lookup", err)
	}
	if len(ips) == 0 {
		return "", checkErr("dns lookup", KindNotFound, nil)
	}
	for _, ip := range ips {
		if ip.To4() != nil {
			return ip.String(), nil
		}
	}
	return ips[0].String(), nil
}

// probeReachability issues a HEAD request against the full URL, following
// redirects, and falls back to a GET when the HEAD draws a 4xx/5xx. Success
// is any response in [200,400). A transport failure on either attempt is
// returned as a CheckError; the caller maps it to a failed probe.
func (a *Analyzer) probeReachability(ctx context.Context, rawurl string) (probeOutcome, *CheckError) {
	code, err := a.doProbe(ctx, http.MethodHead, rawurl)
	if err != nil {
		return failedProbe(), err
	}

	if code >= 400 {
		code, err = a.doProbe(ctx, http.MethodGet, rawurl)
		if err != nil {
			return failedProbe(), err
		}
		return probeOutcome{
			Reachable:  code >= 200 && code < 400,
			Method:     "GET fallback",
			StatusCode: code,
		}, nil
	}

	return probeOutcome{
		Reachable:  code >= 200 && code < 400,
		Method:     "HEAD",
		StatusCode: code,
	}, nil
}

// doProbe runs one request attempt under its own probe timeout, so the GET
// fallback gets a full budget of its own rather than the HEAD's leftovers.
func (a *Analyzer) doProbe(ctx context.Context, method, rawurl string) (int, *CheckError) {
	ctx, cancel := context.WithTimeout(ctx, a.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, rawurl, nil)
	if err != nil {
		return 0, checkErr("reachability probe", KindParseFailure, err)
	}
	req.Header.Set("User-Agent", probeUserAgent)

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, classifyNetErr("reachability probe", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}

// ipResolver is satisfied by *net.Resolver; tests inject a fake.
type ipResolver interface {
	LookupIP(ctx context.Context, network, host string) ([]net.IP, error)
}
