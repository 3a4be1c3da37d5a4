package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStress(t *testing.T) {
	tests := []struct {
		name      string
		in        StressInput
		wantScore float64
		wantLevel StressLevel
	}{
		{
			name:      "reference values",
			in:        StressInput{Workload: 60, DeadlinePressure: 70, Isolation: 40, FeedbackSentiment: -0.3},
			wantScore: 61.75,
			wantLevel: StressHigh,
		},
		{
			name:      "no feedback lands on the neutral midpoint",
			in:        StressInput{},
			wantScore: 12.5, // feedback stress 50 * 0.25
			wantLevel: StressLow,
		},
		{
			name:      "everything maxed",
			in:        StressInput{Workload: 100, DeadlinePressure: 100, Isolation: 100, FeedbackSentiment: -1},
			wantScore: 100,
			wantLevel: StressCritical,
		},
		{
			name:      "very positive feedback relieves stress",
			in:        StressInput{Workload: 100, DeadlinePressure: 100, Isolation: 100, FeedbackSentiment: 1},
			wantScore: 75,
			wantLevel: StressHigh,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStress(tt.in)
			assert.InDelta(t, tt.wantScore, got.Score, 0.001)
			assert.Equal(t, tt.wantLevel, got.Level)
		})
	}
}

func TestComputeStress_levels(t *testing.T) {
	tests := []struct {
		score float64
		want  StressLevel
	}{
		{0, StressLow},
		{29.9, StressLow},
		{30, StressModerate},
		{59.9, StressModerate},
		{60, StressHigh},
		{79.9, StressHigh},
		{80, StressCritical},
		{100, StressCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stressLevelFor(tt.score), "score %v", tt.score)
	}
}

func TestComputeStress_bounds(t *testing.T) {
	inputs := []StressInput{
		{Workload: -50, DeadlinePressure: -50, Isolation: -50, FeedbackSentiment: 5},
		{Workload: 500, DeadlinePressure: 500, Isolation: 500, FeedbackSentiment: -5},
	}
	for _, in := range inputs {
		got := ComputeStress(in)
		assert.GreaterOrEqual(t, got.Score, 0.0)
		assert.LessOrEqual(t, got.Score, 100.0)
	}
}

func TestComputeStress_idempotent(t *testing.T) {
	in := StressInput{Workload: 33, DeadlinePressure: 45, Isolation: 20, FeedbackSentiment: 0.1}
	first := ComputeStress(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeStress(in))
	}
}
