package feedback_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/tathmini/core/feedback"
	"github.com/trezcool/tathmini/core/sentiment"
	inmemdb "github.com/trezcool/tathmini/storage/database/inmem"
)

func newService(t *testing.T) *feedback.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("inmemdb.Open() failed: %v", err)
	}
	return feedback.NewService(inmemdb.NewFeedbackRepository(db), sentiment.NewAnalyzer(0))
}

func record(t *testing.T, svc *feedback.Service, ns feedback.NewSignal) feedback.Signal {
	sig, err := svc.Record(ns)
	if err != nil {
		t.Fatalf("Record() failed: %v", err)
	}
	return sig
}

func TestService_Record(t *testing.T) {
	svc := newService(t)

	sig := record(t, svc, feedback.NewSignal{
		StudentID:    "stu-1",
		SupervisorID: "sup-1",
		Rating:       5,
		Remarks:      "Excellent progress, the prototype is working well",
	})
	assert.NotEmpty(t, sig.ID)
	assert.Equal(t, sentiment.CategoryPositive, sig.SentimentCategory)
	assert.Greater(t, sig.SentimentScore, 0.0)
	assert.False(t, sig.Date.IsZero())

	got, err := svc.GetByID(sig.ID)
	assert.NoError(t, err)
	assert.Equal(t, sig, got)
}

func TestService_Record_validation(t *testing.T) {
	svc := newService(t)

	tests := []struct {
		name string
		ns   feedback.NewSignal
	}{
		{"missing student", feedback.NewSignal{SupervisorID: "sup-1", Rating: 3, Remarks: "ok"}},
		{"missing remarks", feedback.NewSignal{StudentID: "stu-1", SupervisorID: "sup-1", Rating: 3}},
		{"rating too low", feedback.NewSignal{StudentID: "stu-1", SupervisorID: "sup-1", Rating: 0, Remarks: "ok"}},
		{"rating too high", feedback.NewSignal{StudentID: "stu-1", SupervisorID: "sup-1", Rating: 6, Remarks: "ok"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(tt.ns)
			assert.Error(t, err)
		})
	}
}

func TestService_UpdateRemarks(t *testing.T) {
	svc := newService(t)

	sig := record(t, svc, feedback.NewSignal{
		StudentID:    "stu-1",
		SupervisorID: "sup-1",
		Rating:       4,
		Remarks:      "Good progress so far",
	})
	assert.Equal(t, sentiment.CategoryPositive, sig.SentimentCategory)

	updated, err := svc.UpdateRemarks(sig.ID, feedback.UpdateRemarks{
		Remarks: "The student seems stressed and overwhelmed",
	})
	assert.NoError(t, err)
	assert.Equal(t, sentiment.CategoryNegative, updated.SentimentCategory)
	assert.Less(t, updated.SentimentScore, 0.0)
	assert.Equal(t, sig.Rating, updated.Rating, "rating untouched")

	_, err = svc.UpdateRemarks("no-such-id", feedback.UpdateRemarks{Remarks: "hello"})
	assert.Equal(t, feedback.ErrNotFound, err)
}

func TestService_Aggregate(t *testing.T) {
	svc := newService(t)

	t.Run("no signals is the neutral default", func(t *testing.T) {
		agg, err := svc.Aggregate("stu-none")
		assert.NoError(t, err)
		assert.Equal(t, feedback.Aggregate{StudentID: "stu-none"}, agg)
	})

	record(t, svc, feedback.NewSignal{
		StudentID:    "stu-1",
		SupervisorID: "sup-1",
		Rating:       5,
		Remarks:      "Excellent progress this week", // fully positive
	})
	record(t, svc, feedback.NewSignal{
		StudentID:      "stu-1",
		SupervisorID:   "sup-1",
		Rating:         2,
		Remarks:        "Very stressed and overwhelmed lately", // fully negative
		ActionRequired: true,
	})
	record(t, svc, feedback.NewSignal{
		StudentID:    "stu-2",
		SupervisorID: "sup-1",
		Rating:       3,
		Remarks:      "The meeting is on Tuesday",
	})

	agg, err := svc.Aggregate("stu-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, agg.Count)
	assert.InDelta(t, 0, agg.MeanSentiment, 0.001, "one fully positive + one fully negative")
	assert.InDelta(t, 3.5, agg.MeanRating, 0.001)
	assert.Equal(t, 1, agg.Positive)
	assert.Equal(t, 1, agg.Negative)
	assert.Equal(t, 0, agg.Neutral)
	assert.Equal(t, 1, agg.ActionRequiredCount)
	assert.False(t, agg.LastAt.IsZero())

	agg, err = svc.Aggregate("stu-2")
	assert.NoError(t, err)
	assert.Equal(t, 1, agg.Neutral)
}

func TestService_Ratings(t *testing.T) {
	svc := newService(t)

	record(t, svc, feedback.NewSignal{StudentID: "stu-1", SupervisorID: "sup-1", Rating: 4, Remarks: "fine"})
	record(t, svc, feedback.NewSignal{StudentID: "stu-1", SupervisorID: "sup-1", Rating: 2, Remarks: "late again"})

	ratings, err := svc.Ratings("stu-1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []int{4, 2}, ratings)
}

func TestService_Delete(t *testing.T) {
	svc := newService(t)

	sig := record(t, svc, feedback.NewSignal{StudentID: "stu-1", SupervisorID: "sup-1", Rating: 3, Remarks: "ok work"})
	assert.NoError(t, svc.Delete(sig.ID))

	_, err := svc.GetByID(sig.ID)
	assert.Equal(t, feedback.ErrNotFound, err)
}
