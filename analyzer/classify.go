package analyzer

import "strings"

//
// STATIC CLASSIFIERS (no I/O)
//

// lookalike digit substitutions used by typosquatters.
var lookalikes = strings.NewReplacer(
	"0", "o",
	"1", "l",
	"3", "e",
	"5", "s",
	"9", "g",
)

// HasSuspiciousKeyword reports whether the raw input URL contains any word
// from the suspicious vocabulary. Substring match on the whole URL, so
// legitimate URLs containing these words also trip it; recall over precision.
func (v Vocabulary) HasSuspiciousKeyword(raw string) bool {
	lower := strings.ToLower(raw)
	for _, w := range v.SuspiciousWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// HasUntrustedSuffix reports whether the domain ends with a low-trust TLD.
func (v Vocabulary) HasUntrustedSuffix(domain string) bool {
	for _, ext := range v.UntrustedSuffixes {
		if strings.HasSuffix(domain, ext) {
			return true
		}
	}
	return false
}

// IsBrandImpersonation checks the first label of the domain against the brand
// list. An exact brand match is the real brand and short-circuits to false
// before the lookalike and substring rules run.
func (v Vocabulary) IsBrandImpersonation(domain string) bool {
	label := strings.ToLower(strings.Split(domain, ".")[0])
	normalized := lookalikes.Replace(label)

	for _, brand := range v.Brands {
		if label == brand {
			return false
		}
		if normalized == brand {
			return true
		}
		if strings.Contains(label, brand) && label != brand {
			return true
		}
	}
	return false
}

// Purpose returns the known description for a domain, or a generic fallback.
func (v Vocabulary) Purpose(domain string) string {
	if p, ok := v.Purposes[strings.ToLower(domain)]; ok {
		return p
	}
	return genericPurpose
}
