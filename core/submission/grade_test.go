package submission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tathmini/core"
)

func TestComputeGrade(t *testing.T) {
	p := DefaultPolicy()

	t.Run("excellent reviews clamp at 100", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{
			BaseGrade:        100,
			SupervisorRating: null.IntFrom(4),
			AdminRating:      null.IntFrom(5),
			FinalStatus:      StatusAdminApproved,
		}, p)
		assert.NoError(t, err)
		assert.Equal(t, Grade{Score: 100}, got)
	})

	t.Run("rating bonuses", func(t *testing.T) {
		tests := []struct {
			rating int
			want   float64
		}{
			{5, 85}, {4, 80}, {3, 80}, {2, 75}, {1, 70},
		}
		for _, tt := range tests {
			got, err := ComputeGrade(GradeInput{
				BaseGrade:        80,
				SupervisorRating: null.IntFrom(tt.rating),
				FinalStatus:      StatusAdminApproved,
			}, p)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got.Score, "rating %d", tt.rating)
		}
	})

	t.Run("late penalty", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{
			BaseGrade:      90,
			Late:           true,
			LatePenaltyPct: 10,
			FinalStatus:    StatusAdminApproved,
		}, p)
		assert.NoError(t, err)
		assert.Equal(t, Grade{Score: 80}, got)
	})

	t.Run("negative late penalty is ignored", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{
			BaseGrade:      90,
			Late:           true,
			LatePenaltyPct: -10,
			FinalStatus:    StatusAdminApproved,
		}, p)
		assert.NoError(t, err)
		assert.Equal(t, Grade{Score: 90}, got, "a penalty can never add points")
	})

	t.Run("no supervisor decision takes the severe penalty", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{
			BaseGrade:      100,
			Late:           true,
			LatePenaltyPct: 10,
			FinalStatus:    StatusSupervisorReview,
		}, p)
		assert.NoError(t, err)
		assert.Equal(t, Grade{Score: 65}, got, "late and no-decision penalties stack")
	})

	t.Run("no decision can fail outright", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{
			BaseGrade:      60,
			Late:           true,
			LatePenaltyPct: 10,
			FinalStatus:    StatusPending,
		}, p)
		assert.NoError(t, err)
		assert.True(t, got.Failed)
		assert.Equal(t, 25.0, got.Score, "score still reported for audit")
	})

	t.Run("missing ratings are neutral", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{BaseGrade: 70, FinalStatus: StatusAdminApproved}, p)
		assert.NoError(t, err)
		assert.Equal(t, Grade{Score: 70}, got)
	})

	t.Run("out-of-range rating is rejected", func(t *testing.T) {
		_, err := ComputeGrade(GradeInput{
			BaseGrade:   80,
			AdminRating: null.IntFrom(6),
			FinalStatus: StatusAdminApproved,
		}, p)
		if assert.Error(t, err) {
			_, ok := err.(*core.ValidationError)
			assert.True(t, ok)
		}
	})

	t.Run("score never goes below zero", func(t *testing.T) {
		got, err := ComputeGrade(GradeInput{
			BaseGrade:        10,
			Late:             true,
			LatePenaltyPct:   50,
			SupervisorRating: null.IntFrom(1),
			FinalStatus:      StatusSupervisorRejected,
		}, p)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, got.Score)
	})
}

func TestPolicyFromConfig(t *testing.T) {
	p := PolicyFromConfig(core.GradingConfig{NoDecisionPenaltyPct: 30, PassingThreshold: 50})
	assert.Equal(t, Policy{NoDecisionPenaltyPct: 30, PassingThreshold: 50}, p)

	// an unset penalty falls back to the default
	p = PolicyFromConfig(core.GradingConfig{})
	assert.Equal(t, DefaultPolicy().NoDecisionPenaltyPct, p.NoDecisionPenaltyPct)
}
