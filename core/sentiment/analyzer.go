// Package sentiment maps free text (supervisor remarks, student chat and
// forum posts) to a bounded sentiment measurement. The analyzer is a pure
// function of its input: same text in, same measurement out. No network, no
// randomness; only the static lexicons.
package sentiment

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/trezcool/tathmini/core"
)

type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNeutral  Category = "neutral"
	CategoryNegative Category = "negative"
)

// Polarity beyond ±categoryThreshold leaves the neutral band. This is a
// policy choice shared with the feedback aggregates; do not vary it silently.
const categoryThreshold = 0.1

const defaultCapsMinRunLength = 4

// Measurement is the result of analyzing one piece of text.
type Measurement struct {
	Polarity     float64  `json:"polarity"`     // -1 (negative) .. 1 (positive)
	Subjectivity float64  `json:"subjectivity"` // 0 (factual) .. 1 (opinionated)
	Intensity    float64  `json:"intensity"`    // 0 (flat) .. 1 (emphatic)
	Category     Category `json:"category"`
}

type Analyzer struct {
	capsRunRegex *regexp.Regexp
}

var punctRunRegex = regexp.MustCompile(`[!?]{2,}`)

// NewAnalyzer creates an analyzer. capsMinRunLength is the minimum length of
// an ALL-CAPS run that counts toward intensity; <= 0 selects the default.
func NewAnalyzer(capsMinRunLength int) *Analyzer {
	if capsMinRunLength <= 0 {
		capsMinRunLength = defaultCapsMinRunLength
	}
	return &Analyzer{
		capsRunRegex: regexp.MustCompile(fmt.Sprintf(`[A-Z]{%d,}`, capsMinRunLength)),
	}
}

// Analyze scores `text`. Empty or whitespace-only text yields the zero
// measurement with a neutral category; it is not an error.
func (a *Analyzer) Analyze(text string) Measurement {
	text = strings.TrimSpace(text)
	if text == "" {
		return Measurement{Category: CategoryNeutral}
	}

	words := tokenize(text)

	var posScore, negScore float64
	var opinionHits, strongHits int
	negated := false
	for _, w := range words {
		if _, ok := negations[w]; ok {
			negated = true
			continue
		}
		if wt, ok := positiveWords[w]; ok {
			if negated {
				negScore += wt
			} else {
				posScore += wt
			}
			opinionHits++
		} else if wt, ok := negativeWords[w]; ok {
			if negated {
				posScore += wt
			} else {
				negScore += wt
			}
			opinionHits++
		}
		if _, ok := strongEmotionWords[w]; ok {
			strongHits++
		}
		negated = false
	}

	var polarity float64
	if total := posScore + negScore; total > 0 {
		polarity = (posScore - negScore) / total
	}

	var subjectivity float64
	if len(words) > 0 {
		subjectivity = core.Clamp(2*float64(opinionHits)/float64(len(words)), 0, 1)
	}
	intensity := a.intensity(text, strongHits)

	return Measurement{
		Polarity:     core.Clamp(polarity, -1, 1),
		Subjectivity: subjectivity,
		Intensity:    intensity,
		Category:     Categorize(polarity),
	}
}

// Categorize buckets a polarity into a category using the shared ±0.1
// threshold.
func Categorize(polarity float64) Category {
	switch {
	case polarity > categoryThreshold:
		return CategoryPositive
	case polarity < -categoryThreshold:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}

// intensity accumulates emphasis signals: strong-emotion words, repeated
// `!`/`?` runs and ALL-CAPS runs.
func (a *Analyzer) intensity(text string, strongHits int) float64 {
	var v float64

	if strong := 0.15 * float64(strongHits); strong > 0 {
		if strong > 0.45 {
			strong = 0.45
		}
		v += strong
	}

	if runs := 0.15 * float64(len(punctRunRegex.FindAllString(text, -1))); runs > 0 {
		if runs > 0.3 {
			runs = 0.3
		}
		v += runs
	}

	if caps := 0.2 * float64(len(a.capsRunRegex.FindAllString(text, -1))); caps > 0 {
		if caps > 0.4 {
			caps = 0.4
		}
		v += caps
	}

	return core.Clamp(v, 0, 1)
}

// tokenize lowercases and splits `text` into words, trimming surrounding
// punctuation but keeping in-word apostrophes so negation contractions
// ("can't") survive.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '\'')
		})
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}
