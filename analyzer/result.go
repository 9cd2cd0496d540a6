package analyzer

// Status is the final verdict for an analyzed URL.
type Status string

const (
	StatusGenuine Status = "Genuine"
	StatusScam    Status = "Scam"
)

// AnalysisResult is the record returned for one analyzed URL. Optional fields
// are omitted (or null for the age) when the underlying lookup yielded nothing.
type AnalysisResult struct {
	URL           string `json:"url"`
	Domain        string `json:"domain_name"`
	IP            string `json:"ip,omitempty"`
	RegistrarDate string `json:"registrar_date,omitempty"`
	DomainAgeDays *int   `json:"domain_age_days"`
	TrustScore    int    `json:"trust_score"`
	Status        Status `json:"status"`
	Reason        string `json:"reason"`
	Purpose       string `json:"purpose,omitempty"`
}

// Signals collects the per-check outcomes of one analysis run. Built once by
// Analyze, read by the scorer and the decision cascade, then discarded.
// DomainAgeDays is nil when both registrar lookups failed; nil is "unknown"
// and is distinct from an age of 0 days.
type Signals struct {
	SuspiciousKeyword  bool
	UntrustedExtension bool
	BrandImpersonation bool
	HTTPS              bool
	DNSResolves        bool
	Reachable          bool
	DomainAgeDays      *int
}
