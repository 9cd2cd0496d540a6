package analyzer

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	whois "github.com/likexian/whois"
	parser "github.com/likexian/whois-parser"
)

//
// REGISTRAR / DOMAIN AGE LOOKUP
//

// registrarInfo carries the outcome of the two-tier creation-date lookup.
// A nil AgeDays means both tiers came back empty; age unknown.
type registrarInfo struct {
	CreatedOn string // "02 Jan 2006", empty when unknown
	AgeDays   *int
}

// lookupRegistrar resolves the domain creation date. Tier 1 is a WHOIS query
// (skipped when the capability is off), tier 2 an RDAP query against a public
// aggregator. Either tier degrades to nothing on any failure.
func (a *Analyzer) lookupRegistrar(ctx context.Context, domain string) registrarInfo {
	if a.whoisEnabled {
		if created, err := a.whoisCreation(domain); err == nil {
			if info, ok := a.registrarInfoFrom(created); ok {
				return info
			}
		} else {
			a.log.Debugf("whois lookup for %s: %v", domain, err)
		}
	}

	created, err := a.rdapCreation(ctx, domain)
	if err != nil {
		a.log.Debugf("rdap lookup for %s: %v", domain, err)
		return registrarInfo{}
	}
	if info, ok := a.registrarInfoFrom(created); ok {
		return info
	}
	return registrarInfo{}
}

// registrarInfoFrom turns a creation timestamp into a formatted date and a
// whole-day age. A creation date in the future is degraded to unknown rather
// than reported as a negative age.
func (a *Analyzer) registrarInfoFrom(created time.Time) (registrarInfo, bool) {
	days := int(a.now().UTC().Sub(created).Hours() / 24)
	if days < 0 {
		return registrarInfo{}, false
	}
	return registrarInfo{
		CreatedOn: created.Format("02 Jan 2006"),
		AgeDays:   &days,
	}, true
}

// whoisCreation queries WHOIS for the domain creation date. The registry
// returns dates in assorted shapes; the full ISO form is tried first, then a
// plain "YYYY-MM-DD HH:MM:SS" truncated to 19 characters.
func (a *Analyzer) whoisCreation(domain string) (time.Time, *CheckError) {
	c := whois.NewClient()
	c.SetTimeout(a.whoisTimeout)

	raw, err := c.Whois(domain)
	if err != nil {
		return time.Time{}, classifyNetErr("whois query", err)
	}

	p, err := parser.Parse(raw)
	if err != nil || p.Domain == nil {
		return time.Time{}, checkErr("whois parse", KindParseFailure, err)
	}

	created := strings.TrimSpace(p.Domain.CreatedDate)
	if created == "" {
		return time.Time{}, checkErr("whois parse", KindNotFound, nil)
	}
	return parseCreationDate(created)
}

// parseCreationDate handles the timestamp shapes WHOIS data arrives in: full
// ISO-8601 with or without a zone, then a plain "YYYY-MM-DD HH:MM:SS"
// truncated to 19 characters.
func parseCreationDate(s string) (time.Time, *CheckError) {
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if len(s) >= 19 {
		if t, err := time.Parse("2006-01-02 15:04:05", s[:19]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, checkErr("creation date parse", KindParseFailure, nil)
}

// rdapEvent is one entry of an RDAP response's events list.
type rdapEvent struct {
	EventAction string `json:"eventAction"`
	EventDate   string `json:"eventDate"`
}

// rdapCreation queries the RDAP aggregator and scans the event list for the
// registration event. When several are present the last one wins.
func (a *Analyzer) rdapCreation(ctx context.Context, domain string) (time.Time, *CheckError) {
	ctx, cancel := context.WithTimeout(ctx, a.rdapTimeout)
	defer cancel()

	url := a.rdapBaseURL + "/domain/" + domain
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return time.Time{}, checkErr("rdap query", KindParseFailure, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return time.Time{}, classifyNetErr("rdap query", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, checkErr("rdap query", KindNotFound, nil)
	}

	var data struct {
		Events []rdapEvent `json:"events"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return time.Time{}, checkErr("rdap parse", KindParseFailure, err)
	}

	var registration string
	for _, ev := range data.Events {
		if ev.EventAction == "registration" {
			registration = ev.EventDate
		}
	}
	if registration == "" {
		return time.Time{}, checkErr("rdap parse", KindNotFound, nil)
	}

	return parseRDAPDate(registration)
}

// parseRDAPDate parses an RDAP event date. The trailing UTC "Z" marker is
// stripped before parsing, matching the naive-UTC treatment of the age math.
func parseRDAPDate(s string) (time.Time, *CheckError) {
	s = strings.TrimSuffix(s, "Z")
	for _, layout := range []string{
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.999999999",
		time.RFC3339,
		"2006-01-02T15:04:05.999999999-07:00",
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, checkErr("rdap date parse", KindParseFailure, nil)
}
