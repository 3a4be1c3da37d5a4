package feedback

import (
	"time"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/sentiment"
)

// Signal is one recorded supervisor feedback entry for a student. The
// sentiment score is derived from Remarks at creation time and is immutable
// unless the remarks change.
type Signal struct {
	ID                string             `json:"id"`
	StudentID         string             `json:"student_id"`
	SupervisorID      string             `json:"supervisor_id"`
	Date              time.Time          `json:"date"` // UTC
	Rating            int                `json:"rating"`
	Remarks           string             `json:"remarks"`
	SentimentScore    float64            `json:"sentiment_score"` // -1..1
	SentimentCategory sentiment.Category `json:"sentiment_category"`
	ActionRequired    bool               `json:"action_required"`
	CreatedAt         time.Time          `json:"created_at"` // UTC
	UpdatedAt         time.Time          `json:"updated_at"` // UTC
}

type NewSignal struct {
	StudentID      string `json:"student_id" validate:"required"`
	SupervisorID   string `json:"supervisor_id" validate:"required"`
	Rating         int    `json:"rating" validate:"rating"`
	Remarks        string `json:"remarks" validate:"required"`
	ActionRequired bool   `json:"action_required"`
}

func (ns *NewSignal) Validate() error {
	ns.StudentID = core.CleanString(ns.StudentID)
	ns.SupervisorID = core.CleanString(ns.SupervisorID)
	ns.Remarks = core.CleanString(ns.Remarks)
	return core.Validate.Struct(ns)
}

type UpdateRemarks struct {
	Remarks string `json:"remarks" validate:"required"`
}

func (ur *UpdateRemarks) Validate() error {
	ur.Remarks = core.CleanString(ur.Remarks)
	return core.Validate.Struct(ur)
}

// Aggregate is what the calculators consume: never individual signals, only
// the per-student rollup. The zero value (Count 0, MeanSentiment 0) is the
// documented "no feedback" default.
type Aggregate struct {
	StudentID     string    `json:"student_id"`
	MeanSentiment float64   `json:"mean_sentiment"` // -1..1
	MeanRating    float64   `json:"mean_rating"`    // 0 when Count is 0
	Count         int       `json:"count"`
	LastAt        time.Time `json:"last_at"`

	// category breakdown over the aggregated signals
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`

	ActionRequiredCount int `json:"action_required_count"`
}
