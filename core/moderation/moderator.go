// Package moderation classifies free text for policy violations,
// independently of its sentiment. Chat and forum ingestion runs every new
// message through Moderate before persisting it; a high-severity verdict is
// a hard block, not advice.
package moderation

import (
	"github.com/trezcool/tathmini/core"
	"github.com/trezcool/tathmini/core/sentiment"
)

// Verdict aggregates all findings for one piece of text. Issues keep the
// order the checks ran in; Suggestions hold one remediation hint per
// distinct finding category.
type Verdict struct {
	Issues      []Finding `json:"issues"`
	Suggestions []string  `json:"suggestions"`
	Severity    Severity  `json:"severity"`
}

// Blocked reports whether the caller must reject the content.
func (v Verdict) Blocked() bool { return v.Severity == SeverityHigh }

// BlockedError converts a blocking verdict into a core.ContentBlockedError
// for the ingestion collaborator; nil when the verdict does not block.
func (v Verdict) BlockedError() error {
	if !v.Blocked() {
		return nil
	}
	issues := make([]string, 0, len(v.Issues))
	for _, f := range v.Issues {
		issues = append(issues, f.Description)
	}
	return core.NewContentBlockedError(issues, v.Suggestions)
}

type Options struct {
	// WordRepeatThreshold is the max allowed repetitions of a single word;
	// <= 0 selects the default (5).
	WordRepeatThreshold int

	// Analyzer, when set, adds an extreme-negativity check on top of the
	// lexicon rules (hostile tone without any flagged word).
	Analyzer *sentiment.Analyzer
}

type Moderator struct {
	rules []Rule
}

func NewModerator(opts Options) *Moderator {
	rules := defaultRules(opts.WordRepeatThreshold)
	if opts.Analyzer != nil {
		rules = append(rules, Rule{
			Code:       "hostile_tone",
			Suggestion: "Rewrite the message in a more constructive tone.",
			Check:      checkHostileTone(opts.Analyzer),
		})
	}
	return &Moderator{rules: rules}
}

// Moderate runs every rule over `text` and aggregates the findings. It never
// fails: clean text yields a verdict with severity none and no issues.
func (m *Moderator) Moderate(text string) Verdict {
	verdict := Verdict{Severity: SeverityNone}
	suggested := make(map[string]bool, len(m.rules))

	for _, rule := range m.rules {
		findings := rule.Check(text)
		if len(findings) == 0 {
			continue
		}
		verdict.Issues = append(verdict.Issues, findings...)
		for _, f := range findings {
			if f.Severity > verdict.Severity {
				verdict.Severity = f.Severity
			}
		}
		if !suggested[rule.Code] {
			verdict.Suggestions = append(verdict.Suggestions, rule.Suggestion)
			suggested[rule.Code] = true
		}
	}
	return verdict
}

// checkHostileTone flags extremely negative text (polarity < -0.7) that the
// word-level rules may not catch.
func checkHostileTone(analyzer *sentiment.Analyzer) func(string) []Finding {
	return func(text string) []Finding {
		if analyzer.Analyze(text).Polarity < -0.7 {
			return []Finding{{
				Code:        "hostile_tone",
				Description: "Extremely negative or hostile tone.",
				Severity:    SeverityMedium,
			}}
		}
		return nil
	}
}
