package calculator

import (
	"testing"

	"github.com/azizulsheikh/studio/internal/models"
)

func TestRiskTier(t *testing.T) {
	tests := []struct {
		rank  int
		total int
		want  models.RiskTier
	}{
		{0, 10, models.RiskHigh},   // percentile 1.0
		{1, 10, models.RiskHigh},   // 0.9
		{2, 10, models.RiskMedium}, // 0.8 is not > 0.8
		{4, 10, models.RiskMedium}, // 0.6
		{5, 10, models.RiskLow},    // 0.5 is not > 0.5
		{9, 10, models.RiskLow},    // 0.1
		{0, 1, models.RiskHigh},
		{0, 2, models.RiskHigh},
		{1, 2, models.RiskLow},
		{1, 3, models.RiskMedium}, // 0.667
		{0, 0, models.RiskLow},
		{-1, 5, models.RiskLow},
		{5, 5, models.RiskLow},
	}

	for _, tt := range tests {
		if got := RiskTier(tt.rank, tt.total); got != tt.want {
			t.Errorf("RiskTier(%d, %d) = %s, want %s", tt.rank, tt.total, got, tt.want)
		}
	}
}
