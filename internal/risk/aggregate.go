package risk

import "github.com/clauseguard/clauseguard/internal/model"

// Aggregate reduces per-clause tiers into one overall contract tier.
// The rules form a strict priority cascade; the first matching rule wins.
// The counts and thresholds are tuned empirically and interact in
// non-obvious ways (a single High clause with a hot enough mean score is
// promoted by rule 2 before rule 4 is ever reached), so the order must
// not be rearranged.
func Aggregate(tiers []model.RiskTier) model.RiskTier {
	if len(tiers) == 0 {
		return model.RiskLow
	}

	highCount := 0
	mediumCount := 0
	total := 0
	for _, t := range tiers {
		total += t.Score()
		switch t {
		case model.RiskHigh:
			highCount++
		case model.RiskMedium:
			mediumCount++
		}
	}
	mean := float64(total) / float64(len(tiers))

	switch {
	case highCount >= 3:
		return model.RiskHigh
	case highCount >= 2 || mean >= 2.5:
		return model.RiskHigh
	case highCount == 1 && mediumCount >= 3:
		return model.RiskHigh
	case highCount == 1 || mean >= 1.5:
		return model.RiskMedium
	case mediumCount >= 4:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}
