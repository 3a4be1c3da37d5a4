package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzer_Analyze_categories(t *testing.T) {
	analyzer := NewAnalyzer(0)

	tests := []struct {
		name string
		text string
		want Category
	}{
		{name: "empty", text: "", want: CategoryNeutral},
		{name: "whitespace only", text: "   \t\n  ", want: CategoryNeutral},
		{name: "no lexicon words", text: "the meeting is on tuesday at noon", want: CategoryNeutral},
		{name: "positive", text: "great progress, the prototype is completed and working", want: CategoryPositive},
		{name: "negative", text: "I am stressed and completely overwhelmed, this is impossible", want: CategoryNegative},
		{name: "negated positive reads negative", text: "this is not good, not good at all", want: CategoryNegative},
		{name: "mixed balances out", text: "happy with the design but worried about the schedule", want: CategoryNeutral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analyzer.Analyze(tt.text)
			assert.Equal(t, tt.want, got.Category)
		})
	}
}

func TestAnalyzer_Analyze_bounds(t *testing.T) {
	analyzer := NewAnalyzer(0)

	texts := []string{
		"",
		"!!!",
		"AMAZING AMAZING AMAZING!!! love love love",
		"hate hate hate hate terrible awful horrible worst",
		"a plain sentence about nothing in particular",
	}
	for _, text := range texts {
		m := analyzer.Analyze(text)
		assert.GreaterOrEqual(t, m.Polarity, -1.0, "polarity lower bound: %q", text)
		assert.LessOrEqual(t, m.Polarity, 1.0, "polarity upper bound: %q", text)
		assert.GreaterOrEqual(t, m.Subjectivity, 0.0, "subjectivity lower bound: %q", text)
		assert.LessOrEqual(t, m.Subjectivity, 1.0, "subjectivity upper bound: %q", text)
		assert.GreaterOrEqual(t, m.Intensity, 0.0, "intensity lower bound: %q", text)
		assert.LessOrEqual(t, m.Intensity, 1.0, "intensity upper bound: %q", text)
	}
}

func TestAnalyzer_Analyze_empty(t *testing.T) {
	m := NewAnalyzer(0).Analyze("  ")
	assert.Equal(t, Measurement{Category: CategoryNeutral}, m)
}

func TestAnalyzer_Analyze_deterministic(t *testing.T) {
	analyzer := NewAnalyzer(0)
	text := "I'm really EXCITED!!! great progress, almost finished... but the deadline pressure is hard"

	first := analyzer.Analyze(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, analyzer.Analyze(text))
	}
}

func TestAnalyzer_Analyze_intensity(t *testing.T) {
	analyzer := NewAnalyzer(0)

	flat := analyzer.Analyze("the report is good")
	strong := analyzer.Analyze("the report is amazing")
	punct := analyzer.Analyze("the report is good!!!")
	caps := analyzer.Analyze("the report is GOOD")

	assert.Greater(t, strong.Intensity, flat.Intensity, "strong-emotion word")
	assert.Greater(t, punct.Intensity, flat.Intensity, "repeated punctuation")
	assert.Greater(t, caps.Intensity, flat.Intensity, "all-caps run")
}

func TestAnalyzer_Analyze_capsRunLength(t *testing.T) {
	// a 4-letter caps run counts with the default min length but not with 5
	loose := NewAnalyzer(4).Analyze("this is GOOD")
	strict := NewAnalyzer(5).Analyze("this is GOOD")
	assert.Greater(t, loose.Intensity, strict.Intensity)
}

func TestCategorize_thresholds(t *testing.T) {
	assert.Equal(t, CategoryNeutral, Categorize(0))
	assert.Equal(t, CategoryNeutral, Categorize(0.1))
	assert.Equal(t, CategoryNeutral, Categorize(-0.1))
	assert.Equal(t, CategoryPositive, Categorize(0.11))
	assert.Equal(t, CategoryNegative, Categorize(-0.11))
}
