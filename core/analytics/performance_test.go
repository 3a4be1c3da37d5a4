package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tathmini/core"
)

func TestComputePerformance(t *testing.T) {
	w := DefaultWeights()

	t.Run("thriving student", func(t *testing.T) {
		// progress 90*0.5 + calm 80*0.3 + rating 100*0.2 = 89
		got, err := ComputePerformance(90, 20, []int{5, 5}, w)
		assert.NoError(t, err)
		assert.InDelta(t, 89, got.Score, 0.001)
		assert.Equal(t, "A", got.Grade)
	})

	t.Run("high stress depresses the summary", func(t *testing.T) {
		calm, err := ComputePerformance(80, 10, []int{4}, w)
		assert.NoError(t, err)
		stressed, err := ComputePerformance(80, 90, []int{4}, w)
		assert.NoError(t, err)
		assert.Greater(t, calm.Score, stressed.Score)
	})

	t.Run("no ratings is the neutral default", func(t *testing.T) {
		got, err := ComputePerformance(50, 50, nil, w)
		assert.NoError(t, err)
		// progress 50*0.5 + calm 50*0.3 + neutral rating 50*0.2
		assert.InDelta(t, 50, got.Score, 0.001)
	})

	t.Run("out-of-range rating is rejected", func(t *testing.T) {
		_, err := ComputePerformance(50, 50, []int{4, 0}, w)
		if assert.Error(t, err) {
			vErr, ok := err.(*core.ValidationError)
			if assert.True(t, ok) {
				assert.Equal(t, "ratings[1]", vErr.Fields[0].Field)
			}
		}

		_, err = ComputePerformance(50, 50, []int{6}, w)
		assert.Error(t, err)
	})

	t.Run("scores clamp to 0-100", func(t *testing.T) {
		got, err := ComputePerformance(500, -30, []int{5}, w)
		assert.NoError(t, err)
		assert.LessOrEqual(t, got.Score, 100.0)
		assert.GreaterOrEqual(t, got.Score, 0.0)
	})
}

func TestComputePerformance_weightOverrides(t *testing.T) {
	// a dashboard caring only about progress
	progressOnly := Weights{Progress: 1}
	got, err := ComputePerformance(73, 99, []int{1, 1}, progressOnly)
	assert.NoError(t, err)
	assert.InDelta(t, 73, got.Score, 0.001)

	// unnormalized weights behave as shares of their total
	scaled, err := ComputePerformance(80, 40, []int{3}, Weights{Progress: 5, StressPenalty: 3, Rating: 2})
	assert.NoError(t, err)
	base, err := ComputePerformance(80, 40, []int{3}, DefaultWeights())
	assert.NoError(t, err)
	assert.InDelta(t, base.Score, scaled.Score, 0.001)
}

func TestWeightsFromConfig(t *testing.T) {
	w := WeightsFromConfig(core.PerformanceConfig{ProgressWeight: 0.6, StressPenaltyWeight: 0.2, RatingWeight: 0.2})
	assert.Equal(t, Weights{Progress: 0.6, StressPenalty: 0.2, Rating: 0.2}, w)

	// a zeroed config falls back to the defaults
	assert.Equal(t, DefaultWeights(), WeightsFromConfig(core.PerformanceConfig{}))
}

func TestLetterGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A+"}, {90, "A+"}, {87, "A"}, {82, "A-"}, {76, "B+"},
		{71, "B"}, {66, "B-"}, {61, "C+"}, {56, "C"}, {51, "C-"}, {49, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, letterGrade(tt.score), "score %v", tt.score)
	}
}
