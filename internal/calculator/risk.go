package calculator

import "github.com/azizulsheikh/studio/internal/models"

// RiskTier derives a fraud risk label from a 0-based rank (0 = highest risk)
// within an ordered list of total entries. It ignores everything the oracle
// said except the order itself.
//
//	percentile = (total - rank) / total
//	High   if percentile > 0.8
//	Medium if percentile > 0.5
//	Low    otherwise
//
// Out-of-range input (total <= 0, rank outside [0, total)) is Low.
func RiskTier(rank, total int) models.RiskTier {
	if total <= 0 || rank < 0 || rank >= total {
		return models.RiskLow
	}
	// Compared in integers to keep the 0.8 and 0.5 boundaries exact:
	// (total-rank)/total > 4/5  <=>  5*(total-rank) > 4*total
	remaining := total - rank
	switch {
	case 5*remaining > 4*total:
		return models.RiskHigh
	case 2*remaining > total:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
