package analytics

import "github.com/trezcool/tathmini/core"

// Stress weights. They total exactly 1.0; changing one requires rebalancing
// the others.
const (
	stressWorkloadWeight = 0.25
	stressDeadlineWeight = 0.35
	stressIsolationWeight = 0.15
	stressFeedbackWeight  = 0.25
)

// Stress level buckets.
type StressLevel string

const (
	StressLow      StressLevel = "low"      // score < 30
	StressModerate StressLevel = "moderate" // score < 60
	StressHigh     StressLevel = "high"     // score < 80
	StressCritical StressLevel = "critical" // score >= 80
)

// StressInput is the per-student fact set the stress score is computed from.
// The pressure axes are percentages (0..100); the read-side adapters convert
// the underlying 0..1 ratios.
type StressInput struct {
	Workload          float64 `json:"workload"`           // 0..100
	DeadlinePressure  float64 `json:"deadline_pressure"`  // 0..100
	Isolation         float64 `json:"isolation"`          // 0..100
	FeedbackSentiment float64 `json:"feedback_sentiment"` // -1..1; 0 when no feedback exists
}

type Stress struct {
	Score float64     `json:"score"` // 0..100
	Level StressLevel `json:"level"`
}

// ComputeStress combines workload, deadline proximity, social isolation and
// feedback sentiment into a 0-100 stress score with a categorical level.
//
// Feedback sentiment maps inversely onto a 0-100 stress axis: -1 (very
// negative) contributes 100, +1 contributes 0. The no-feedback default of 0
// lands on the neutral midpoint 50, distinct from "very positive feedback"
// which would relieve stress.
func ComputeStress(in StressInput) Stress {
	workload := core.Clamp(in.Workload, 0, 100)
	deadlines := core.Clamp(in.DeadlinePressure, 0, 100)
	isolation := core.Clamp(in.Isolation, 0, 100)
	fbSentiment := core.Clamp(in.FeedbackSentiment, -1, 1)

	feedbackStress := (1 - (fbSentiment+1)/2) * 100

	total := workload*stressWorkloadWeight +
		deadlines*stressDeadlineWeight +
		isolation*stressIsolationWeight +
		feedbackStress*stressFeedbackWeight

	score := core.Clamp(total, 0, 100)
	return Stress{Score: score, Level: stressLevelFor(score)}
}

func stressLevelFor(score float64) StressLevel {
	switch {
	case score < 30:
		return StressLow
	case score < 60:
		return StressModerate
	case score < 80:
		return StressHigh
	default:
		return StressCritical
	}
}
