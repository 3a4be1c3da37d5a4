package submission

import (
	"errors"

	"github.com/volatiletech/null/v8"

	"github.com/trezcool/tathmini/core"
)

var errInvalidRating = errors.New("rating must be between 1 and 5")

// ratingBonuses maps a 1-5 review rating onto a grade delta in percent.
// Above-expectation work earns a small bonus, meeting expectations is
// neutral, below-expectation work subtracts. Kept as a table rather than a
// formula so policy tweaks stay local.
var ratingBonuses = map[int]float64{
	5: 5,
	4: 0,
	3: 0,
	2: -5,
	1: -10,
}

// Policy configures the grading rules applied to terminal submissions.
type Policy struct {
	// NoDecisionPenaltyPct is subtracted when the deadline elapses while
	// the submission still awaits a supervisor decision.
	NoDecisionPenaltyPct float64
	// PassingThreshold is the score under which a no-decision submission
	// fails outright instead of receiving a numeric grade.
	PassingThreshold float64
}

func DefaultPolicy() Policy {
	return Policy{NoDecisionPenaltyPct: 25, PassingThreshold: 40}
}

// PolicyFromConfig reads the deployment's grading overrides.
func PolicyFromConfig(conf core.GradingConfig) Policy {
	p := Policy{
		NoDecisionPenaltyPct: conf.NoDecisionPenaltyPct,
		PassingThreshold:     conf.PassingThreshold,
	}
	if p.NoDecisionPenaltyPct <= 0 {
		p.NoDecisionPenaltyPct = DefaultPolicy().NoDecisionPenaltyPct
	}
	return p
}

// GradeInput carries everything the grading policy needs. Ratings are
// absent until the corresponding reviewer records one.
type GradeInput struct {
	BaseGrade        float64  `json:"base_grade"` // 0..100
	Late             bool     `json:"late"`
	LatePenaltyPct   float64  `json:"late_penalty_pct"`
	SupervisorRating null.Int `json:"supervisor_rating"`
	AdminRating      null.Int `json:"admin_rating"`
	FinalStatus      Status   `json:"final_status"`
}

// Grade is the outcome of grading a submission. When Failed is set the
// numeric score is reported for audit but the submission did not pass.
type Grade struct {
	Score  float64 `json:"score"`
	Failed bool    `json:"failed"`
}

// ComputeGrade applies late and rating deltas to the base grade. Submissions
// that never received a supervisor decision before the deadline take the
// policy's severe penalty on top of any late penalty, and fail outright when
// the result drops under the passing threshold. The score is clamped to
// [0, 100].
func ComputeGrade(in GradeInput, p Policy) (Grade, error) {
	score := core.Clamp(in.BaseGrade, 0, 100)

	if in.Late {
		score -= core.Clamp(in.LatePenaltyPct, 0, 100)
	}

	for _, r := range []null.Int{in.SupervisorRating, in.AdminRating} {
		if !r.Valid {
			continue
		}
		bonus, ok := ratingBonuses[r.Int]
		if !ok {
			return Grade{}, core.NewValidationError(errInvalidRating, core.FieldError{
				Field: "rating",
				Error: errInvalidRating.Error(),
			})
		}
		score += bonus
	}

	// deadline passed with no supervisor decision recorded
	if in.FinalStatus == StatusSupervisorReview || in.FinalStatus == StatusPending {
		score -= p.NoDecisionPenaltyPct
		if score < p.PassingThreshold {
			return Grade{Score: core.Clamp(score, 0, 100), Failed: true}, nil
		}
	}

	return Grade{Score: core.Clamp(score, 0, 100)}, nil
}
