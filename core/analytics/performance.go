package analytics

import (
	"errors"
	"fmt"

	"github.com/trezcool/tathmini/core"
)

var errInvalidRating = errors.New("rating must be between 1 and 5")

// Weights configure the performance blend. Progress contributes positively,
// stress inversely (as 100-stress), ratings as the mean mapped onto 0-100.
// The weights are normalized before use so they always behave as shares of a
// whole; downstream dashboards may override them via core.Conf.Performance.
type Weights struct {
	Progress      float64 `json:"progress"`
	StressPenalty float64 `json:"stress_penalty"`
	Rating        float64 `json:"rating"`
}

func DefaultWeights() Weights {
	return Weights{Progress: 0.50, StressPenalty: 0.30, Rating: 0.20}
}

// WeightsFromConfig reads the deployment's weight overrides.
func WeightsFromConfig(conf core.PerformanceConfig) Weights {
	w := Weights{
		Progress:      conf.ProgressWeight,
		StressPenalty: conf.StressPenaltyWeight,
		Rating:        conf.RatingWeight,
	}
	if w.sum() <= 0 {
		return DefaultWeights()
	}
	return w
}

func (w Weights) sum() float64 { return w.Progress + w.StressPenalty + w.Rating }

func (w Weights) normalized() Weights {
	sum := w.sum()
	if sum == 0 {
		return DefaultWeights()
	}
	return Weights{
		Progress:      w.Progress / sum,
		StressPenalty: w.StressPenalty / sum,
		Rating:        w.Rating / sum,
	}
}

// Performance is the supervisor-facing summary.
type Performance struct {
	Score     float64            `json:"score"` // 0..100
	Grade     string             `json:"grade"` // letter grade
	Breakdown map[string]float64 `json:"breakdown"`
}

// neutralRatingComponent stands in when no ratings exist: the midpoint of
// the 1-5 scale mapped onto 0-100.
const neutralRatingComponent = 50

// ComputePerformance blends progress (positive), stress (inverse) and the
// mean review rating into one 0-100 summary. Ratings outside 1-5 are
// rejected; an empty ratings list is the neutral default, not an error.
func ComputePerformance(progressScore, stressScore float64, ratings []int, w Weights) (Performance, error) {
	ratingComponent := float64(neutralRatingComponent)
	if len(ratings) > 0 {
		var sum float64
		for i, r := range ratings {
			if r < 1 || r > 5 {
				return Performance{}, core.NewValidationError(errInvalidRating, core.FieldError{
					Field: fmt.Sprintf("ratings[%d]", i),
					Error: errInvalidRating.Error(),
				})
			}
			sum += float64(r)
		}
		mean := sum / float64(len(ratings))
		ratingComponent = (mean - 1) / 4 * 100
	}

	progressComponent := core.Clamp(progressScore, 0, 100)
	calmComponent := 100 - core.Clamp(stressScore, 0, 100)

	w = w.normalized()
	score := core.Clamp(
		progressComponent*w.Progress+
			calmComponent*w.StressPenalty+
			ratingComponent*w.Rating,
		0, 100,
	)

	return Performance{
		Score: score,
		Grade: letterGrade(score),
		Breakdown: map[string]float64{
			"progress": progressComponent,
			"calm":     calmComponent,
			"rating":   ratingComponent,
		},
	}, nil
}

func letterGrade(score float64) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 85:
		return "A"
	case score >= 80:
		return "A-"
	case score >= 75:
		return "B+"
	case score >= 70:
		return "B"
	case score >= 65:
		return "B-"
	case score >= 60:
		return "C+"
	case score >= 55:
		return "C"
	case score >= 50:
		return "C-"
	default:
		return "F"
	}
}
