package analyzer

//
// TRUST SCORE
//

// Penalty weights, subtracted from a starting score of 100.
const (
	penaltySuspiciousKeyword  = 30
	penaltyUntrustedSuffix    = 25
	penaltyBrandImpersonation = 40
	penaltyHTTPSMissing       = 20
	penaltyDomainBrandNew     = 25 // age < 30 days
	penaltyDomainYoung        = 10 // age < 365 days
)

// TrustScore folds the collected signals into a 0-100 score. An unreachable
// site scores 0 before any other penalty is considered; a failed DNS
// resolution also forces 0 as an independent safety net. Penalties are
// additive and the result is clamped to [0, 100].
func TrustScore(s Signals) int {
	if !s.Reachable {
		return 0
	}

	score := 100

	if s.SuspiciousKeyword {
		score -= penaltySuspiciousKeyword
	}
	if s.UntrustedExtension {
		score -= penaltyUntrustedSuffix
	}
	if s.BrandImpersonation {
		score -= penaltyBrandImpersonation
	}

	if !s.DNSResolves {
		return 0
	}

	if !s.HTTPS {
		score -= penaltyHTTPSMissing
	}

	// Age penalty only applies when the age is known; unknown is not "new".
	if s.DomainAgeDays != nil {
		switch age := *s.DomainAgeDays; {
		case age < 30:
			score -= penaltyDomainBrandNew
		case age < 365:
			score -= penaltyDomainYoung
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
