package analyzer

// Vocabulary holds the fixed lookup tables the static classifiers run against.
// Built once at startup and shared read-only across requests.
type Vocabulary struct {
	SuspiciousWords   []string
	UntrustedSuffixes []string
	Brands            []string
	Purposes          map[string]string
}

const genericPurpose = "General website / No specific category"

func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		SuspiciousWords: []string{
			"login", "verify", "account", "update", "bank",
			"banking", "secure", "free", "bonus", "offer",
		},
		UntrustedSuffixes: []string{".tk", ".ml", ".ga", ".cf", ".gq"},
		Brands: []string{
			"google", "amazon", "facebook", "instagram",
			"paypal", "sbi", "hdfc", "flipkart",
		},
		Purposes: map[string]string{
			"google.com":    "Search engine and online services",
			"youtube.com":   "Video streaming and content sharing platform",
			"facebook.com":  "Social networking and communication",
			"instagram.com": "Photo and video sharing social media",
			"amazon.com":    "Online shopping and e-commerce marketplace",
			"flipkart.com":  "Indian e-commerce shopping platform",
			"twitter.com":   "Microblogging and social networking",
			"x.com":         "Microblogging and social networking",
			"netflix.com":   "Online movie and web-series streaming",
			"paypal.com":    "Online payment service",
			"github.com":    "Software development and code hosting",
			"linkedin.com":  "Professional social networking",
			"microsoft.com": "Software, cloud and technology services",
			"apple.com":     "Technology, devices and online services",
			"wikipedia.org": "Online encyclopedia",
			"hdfcbank.com":  "Banking and financial services",
			"icicibank.com": "Banking and financial services",
			"sbi.co.in":     "Banking and financial services",
		},
	}
}
