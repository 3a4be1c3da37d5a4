// Package analytics holds the composite Progress, Stress and Performance
// calculators. All of them are pure, stateless functions over caller-supplied
// inputs: no I/O, no hidden state, safe for unlimited concurrent callers.
// Out-of-range continuous inputs are clamped before use, never rejected; the
// absence of feedback is a defined neutral default, never an error.
package analytics

import "github.com/trezcool/tathmini/core"

// Progress weights. They total exactly 1.0; changing one requires
// rebalancing the others.
const (
	progressDeliverableWeight = 0.50
	progressMarkWeight        = 0.30
	progressActivityWeight    = 0.20

	// FeedbackModifierSpan bounds the sentiment modulation of progress:
	// mean feedback sentiment in [-1, 1] scales the base score by
	// [1-span, 1+span].
	FeedbackModifierSpan = 0.05
)

// ProgressInput is the per-student fact set the progress score is computed
// from. It is assembled fresh per request by the read-side collaborators.
type ProgressInput struct {
	DeliverableCompletion float64 `json:"deliverable_completion"` // 0..1
	AverageMark           float64 `json:"average_mark"`           // 0..100
	ActivityLevel         float64 `json:"activity_level"`         // 0..100
	FeedbackSentiment     float64 `json:"feedback_sentiment"`     // -1..1; 0 when no feedback exists
}

// ComputeProgress combines deliverable completion, marks and activity into a
// 0-100 score, then modulates it by the averaged feedback sentiment (±5%).
func ComputeProgress(in ProgressInput) float64 {
	completion := core.Clamp(in.DeliverableCompletion, 0, 1)
	mark := core.Clamp(in.AverageMark, 0, 100)
	activity := core.Clamp(in.ActivityLevel, 0, 100)
	fbSentiment := core.Clamp(in.FeedbackSentiment, -1, 1)

	base := completion*100*progressDeliverableWeight +
		mark*progressMarkWeight +
		activity*progressActivityWeight

	modifier := 1 + fbSentiment*FeedbackModifierSpan
	return core.Clamp(base*modifier, 0, 100)
}
