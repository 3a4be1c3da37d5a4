// Package feedback records supervisor feedback signals and rolls them up
// into the per-student aggregate the calculators consume.
package feedback

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/sentiment"
)

var (
	// errors
	ErrNotFound = errors.New("feedback signal not found")
)

type (
	Repository interface {
		CreateSignal(sig Signal) (Signal, error)
		GetSignalByID(id string) (Signal, error)
		// QuerySignalsByStudent returns the student's signals ordered by
		// Date ascending.
		QuerySignalsByStudent(studentID string) ([]Signal, error)
		UpdateSignal(sig Signal) (Signal, error)
		DeleteSignalsByID(ids ...string) error
	}

	Service struct {
		repo     Repository
		analyzer *sentiment.Analyzer
	}
)

func NewService(repo Repository, analyzer *sentiment.Analyzer) *Service {
	return &Service{repo: repo, analyzer: analyzer}
}

// Record validates and stores a new signal, deriving its sentiment score
// from the remarks text.
func (svc *Service) Record(ns NewSignal) (Signal, error) {
	if err := ns.Validate(); err != nil {
		return Signal{}, err
	}

	m := svc.analyzer.Analyze(ns.Remarks)
	now := time.Now().UTC()
	sig := Signal{
		ID:                uuid.New().String(),
		StudentID:         ns.StudentID,
		SupervisorID:      ns.SupervisorID,
		Date:              now,
		Rating:            ns.Rating,
		Remarks:           ns.Remarks,
		SentimentScore:    m.Polarity,
		SentimentCategory: m.Category,
		ActionRequired:    ns.ActionRequired,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return svc.repo.CreateSignal(sig)
}

// UpdateRemarks replaces a signal's remarks and re-derives its sentiment.
// This is the only way a stored sentiment score changes.
func (svc *Service) UpdateRemarks(id string, ur UpdateRemarks) (Signal, error) {
	if err := ur.Validate(); err != nil {
		return Signal{}, err
	}

	sig, err := svc.repo.GetSignalByID(id)
	if err != nil {
		return Signal{}, err
	}

	m := svc.analyzer.Analyze(ur.Remarks)
	sig.Remarks = ur.Remarks
	sig.SentimentScore = m.Polarity
	sig.SentimentCategory = m.Category
	sig.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateSignal(sig)
}

func (svc *Service) GetByID(id string) (Signal, error) {
	return svc.repo.GetSignalByID(id)
}

func (svc *Service) QueryByStudent(studentID string) ([]Signal, error) {
	return svc.repo.QuerySignalsByStudent(core.CleanString(studentID))
}

func (svc *Service) Delete(ids ...string) error {
	return svc.repo.DeleteSignalsByID(ids...)
}

// Aggregate rolls a student's signals up. No signals is not an error: the
// zero-count aggregate is the neutral default the calculators expect.
func (svc *Service) Aggregate(studentID string) (Aggregate, error) {
	studentID = core.CleanString(studentID)
	sigs, err := svc.repo.QuerySignalsByStudent(studentID)
	if err != nil {
		return Aggregate{}, err
	}

	agg := Aggregate{StudentID: studentID, Count: len(sigs)}
	if len(sigs) == 0 {
		return agg, nil
	}

	var sentimentSum, ratingSum float64
	for _, sig := range sigs {
		sentimentSum += core.Clamp(sig.SentimentScore, -1, 1)
		ratingSum += float64(sig.Rating)
		if sig.Date.After(agg.LastAt) {
			agg.LastAt = sig.Date
		}
		switch sentiment.Categorize(sig.SentimentScore) {
		case sentiment.CategoryPositive:
			agg.Positive++
		case sentiment.CategoryNegative:
			agg.Negative++
		default:
			agg.Neutral++
		}
		if sig.ActionRequired {
			agg.ActionRequiredCount++
		}
	}

	n := float64(len(sigs))
	agg.MeanSentiment = core.Clamp(sentimentSum/n, -1, 1)
	agg.MeanRating = ratingSum / n
	return agg, nil
}

// Ratings returns the student's feedback ratings, oldest first, for the
// performance summary.
func (svc *Service) Ratings(studentID string) ([]int, error) {
	sigs, err := svc.repo.QuerySignalsByStudent(core.CleanString(studentID))
	if err != nil {
		return nil, err
	}
	ratings := make([]int, 0, len(sigs))
	for _, sig := range sigs {
		ratings = append(ratings, sig.Rating)
	}
	return ratings, nil
}
