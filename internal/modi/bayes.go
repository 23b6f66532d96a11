package modi

// #region imports
import (
	"math"
	"strings"
)

// #endregion imports

// #region distribution

// DomainDistribution is a diagnostic posterior over technical domains.
// It never drives control flow; the exclusive table match in Analyze does.
type DomainDistribution struct {
	Posterior map[Domain]float32
	Entropy   float32 // Shannon entropy in bits
	Certainty float32 // 1 - entropy/maxEntropy, in [0,1]
}

// #endregion distribution

// #region posterior

// smoothing keeps every domain's likelihood non-zero so the posterior is
// always a proper distribution.
const smoothing = 0.05

// DomainPosterior combines a uniform prior with keyword-match-ratio
// likelihoods into a normalized posterior, reporting Shannon entropy as a
// confidence diagnostic.
func DomainPosterior(input string) DomainDistribution {
	lower := strings.ToLower(strings.TrimSpace(input))

	domains := make([]Domain, 0, len(domainTable)+1)
	likelihoods := make([]float64, 0, len(domainTable)+1)

	for _, entry := range domainTable {
		matched := 0
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, kw) {
				matched++
			}
		}
		ratio := float64(matched) / float64(len(entry.Keywords))
		domains = append(domains, entry.Domain)
		likelihoods = append(likelihoods, ratio+smoothing)
	}
	// The general domain has no keyword table; it carries only the
	// smoothing mass and dominates exactly when nothing else matches.
	domains = append(domains, DomainGeneral)
	likelihoods = append(likelihoods, smoothing)

	// Uniform prior cancels in normalization.
	var total float64
	for _, l := range likelihoods {
		total += l
	}

	posterior := make(map[Domain]float32, len(domains))
	var entropy float64
	for i, d := range domains {
		p := likelihoods[i] / total
		posterior[d] = float32(p)
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}

	maxEntropy := math.Log2(float64(len(domains)))
	certainty := 1 - entropy/maxEntropy
	if certainty < 0 {
		certainty = 0
	}

	return DomainDistribution{
		Posterior: posterior,
		Entropy:   float32(entropy),
		Certainty: float32(certainty),
	}
}

// #endregion posterior
