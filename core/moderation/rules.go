package moderation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Severity of a finding. Ordered: a verdict's severity is the maximum over
// its findings.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	default:
		return "none"
	}
}

func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	switch strings.Trim(string(data), `"`) {
	case "low":
		*s = SeverityLow
	case "medium":
		*s = SeverityMedium
	case "high":
		*s = SeverityHigh
	case "none":
		*s = SeverityNone
	default:
		return fmt.Errorf("unknown severity %s", data)
	}
	return nil
}

// Finding is one detected policy violation.
type Finding struct {
	Code        string   `json:"code"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Rule is one independent check. Rules never short-circuit each other: all
// of them run and all findings contribute to the verdict.
type Rule struct {
	Code       string
	Suggestion string
	Check      func(text string) []Finding
}

var (
	profanityWords = []string{
		"fuck", "fucking", "shit", "bitch", "asshole", "bastard", "dick",
		"cunt", "piss", "wanker", "bullshit",
	}
	profanityRegex = wordsRegex(profanityWords)

	// leet-speak substitutions unfolded before the similarity pass
	leetReplacer = strings.NewReplacer(
		"0", "o", "1", "i", "3", "e", "4", "a", "5", "s", "7", "t",
		"@", "a", "$", "s", "!", "i", "*", "",
	)
	profanitySimilarityMin = 0.85

	harassmentPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(kill|hurt|beat|stab|shoot)\b[^.!?]{0,20}\byou\b`),
		regexp.MustCompile(`(?i)\byou\b[^.!?]{0,20}\b(deserve to die|will regret|will pay)\b`),
		regexp.MustCompile(`(?i)\b(threat(en)?(ing)?|violence|attack)\b`),
		regexp.MustCompile(`(?i)\bgo\s+(kill|hurt)\s+yourself\b`),
	}

	hostileVerbs    = `(hate|despise|destroy|eliminate|get rid of|don't belong|deport)`
	protectedGroups = `(women|men|immigrants|foreigners|refugees|muslims|jews|christians|hindus|gays|lesbians|blacks|whites|asians|arabs|disabled|jewish|gay)`
	hateSpeechPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b` + hostileVerbs + `\b[^.!?]{0,30}\b(all\s+)?` + protectedGroups + `\b`),
		regexp.MustCompile(`(?i)\b` + protectedGroups + `\b[^.!?]{0,30}\b(are|is)\s+(all\s+)?(subhuman|inferior|vermin|scum|animals)\b`),
	}

	capsRatioMax   = 0.7
	capsMinTextLen = 20

	punctRunRegex  = regexp.MustCompile(`[!?]{3,}`)
	punctCountsMax = 5

	currencyRunRegex = regexp.MustCompile(`[$€£¥]{2,}`)
	spamPatterns     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bfree\s*money\b`),
		regexp.MustCompile(`(?i)\bclick\s*here\b`),
		regexp.MustCompile(`(?i)\b(earn|get\s+rich)\s*(fast|quick)\b`),
		regexp.MustCompile(`(?i)\b(send|enter|confirm|verify)\b[^.!?]{0,25}\b(password|login|credit\s*card|bank\s+account|social\s+security)\b`),
		regexp.MustCompile(`(?i)https?://(bit\.ly|tinyurl\.com|goo\.gl|t\.co)/\S+`),
	}

	dishonestyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bplagiari[sz](m|e|es|ed|ing)?\b`),
		regexp.MustCompile(`(?i)\b(buy|sell(ing)?)\s+(an?\s+)?(essay|thesis|report|assignment)s?\b`),
		regexp.MustCompile(`(?i)\bpay\s+someone\s+to\s+(write|do)\b`),
	}

	defaultWordRepeatThreshold = 5
)

func wordsRegex(words []string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + strings.Join(words, "|") + `)\b`)
}

// defaultRules builds the rule list in check order; the order is part of the
// contract since verdict issues keep it.
func defaultRules(wordRepeatThreshold int) []Rule {
	if wordRepeatThreshold <= 0 {
		wordRepeatThreshold = defaultWordRepeatThreshold
	}
	return []Rule{
		{
			Code:       "profanity",
			Suggestion: "Remove offensive language before posting.",
			Check:      checkProfanity,
		},
		{
			Code:       "harassment",
			Suggestion: "Rephrase without threats or personal attacks.",
			Check:      checkHarassment,
		},
		{
			Code:       "hate_speech",
			Suggestion: "Remove content targeting a group of people.",
			Check:      checkHateSpeech,
		},
		{
			Code:       "excessive_caps",
			Suggestion: "Avoid writing in all capitals; it reads as shouting.",
			Check:      checkExcessiveCaps,
		},
		{
			Code:       "excessive_punctuation",
			Suggestion: "Tone down repeated exclamation and question marks.",
			Check:      checkExcessivePunctuation,
		},
		{
			Code:       "spam",
			Suggestion: "Remove promotional links and offers.",
			Check:      checkSpam,
		},
		{
			Code:       "word_repetition",
			Suggestion: "Avoid repeating the same word over and over.",
			Check:      checkWordRepetition(wordRepeatThreshold),
		},
		{
			Code:       "academic_dishonesty",
			Suggestion: "Discussion of buying or plagiarizing work is not allowed.",
			Check:      checkAcademicDishonesty,
		},
	}
}

func checkProfanity(text string) []Finding {
	if profanityRegex.MatchString(text) {
		return []Finding{{
			Code:        "profanity",
			Description: "Contains profanity.",
			Severity:    SeverityHigh,
		}}
	}

	// catch leet-speak obfuscation ("sh1t", "f*ck") by unfolding common
	// substitutions and comparing tokens against the lexicon
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		unfolded := leetReplacer.Replace(tok)
		if unfolded == tok {
			continue
		}
		for _, w := range profanityWords {
			matcher := difflib.NewMatcher(splitChars(unfolded), splitChars(w))
			if matcher.Ratio() >= profanitySimilarityMin {
				return []Finding{{
					Code:        "profanity",
					Description: "Contains obfuscated profanity.",
					Severity:    SeverityHigh,
				}}
			}
		}
	}
	return nil
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for _, r := range s {
		chars = append(chars, string(r))
	}
	return chars
}

func checkHarassment(text string) []Finding {
	for _, re := range harassmentPatterns {
		if re.MatchString(text) {
			return []Finding{{
				Code:        "harassment",
				Description: "Contains threatening or harassing language.",
				Severity:    SeverityHigh,
			}}
		}
	}
	return nil
}

func checkHateSpeech(text string) []Finding {
	for _, re := range hateSpeechPatterns {
		if re.MatchString(text) {
			return []Finding{{
				Code:        "hate_speech",
				Description: "Contains hostile content targeting a protected group.",
				Severity:    SeverityHigh,
			}}
		}
	}
	return nil
}

func checkExcessiveCaps(text string) []Finding {
	if len(text) <= capsMinTextLen {
		return nil
	}
	var upper, letters int
	for _, r := range text {
		switch {
		case r >= 'A' && r <= 'Z':
			upper++
			letters++
		case r >= 'a' && r <= 'z':
			letters++
		}
	}
	if letters == 0 {
		return nil
	}
	if ratio := float64(upper) / float64(letters); ratio > capsRatioMax {
		return []Finding{{
			Code:        "excessive_caps",
			Description: fmt.Sprintf("Excessive capitalization (%.0f%% of letters).", ratio*100),
			Severity:    SeverityMedium,
		}}
	}
	return nil
}

func checkExcessivePunctuation(text string) []Finding {
	var findings []Finding
	if punctRunRegex.MatchString(text) {
		findings = append(findings, Finding{
			Code:        "excessive_punctuation",
			Description: "Repeated exclamation or question marks.",
			Severity:    SeverityLow,
		})
	}
	if strings.Count(text, "!") > punctCountsMax || strings.Count(text, "?") > punctCountsMax {
		findings = append(findings, Finding{
			Code:        "excessive_punctuation",
			Description: "Too many exclamation or question marks.",
			Severity:    SeverityMedium,
		})
	}
	return findings
}

func checkSpam(text string) []Finding {
	var findings []Finding
	if currencyRunRegex.MatchString(text) {
		findings = append(findings, Finding{
			Code:        "spam",
			Description: "Repeated currency symbols.",
			Severity:    SeverityMedium,
		})
	}
	for _, re := range spamPatterns {
		if re.MatchString(text) {
			findings = append(findings, Finding{
				Code:        "spam",
				Description: "Suspicious offer, link or credential solicitation.",
				Severity:    SeverityMedium,
			})
			break
		}
	}
	return findings
}

func checkWordRepetition(threshold int) func(string) []Finding {
	return func(text string) []Finding {
		counts := make(map[string]int)
		for _, tok := range strings.Fields(strings.ToLower(text)) {
			w := strings.Trim(tok, `.,;:!?"'()[]`)
			if w == "" {
				continue
			}
			counts[w]++
			if counts[w] > threshold {
				return []Finding{{
					Code:        "word_repetition",
					Description: fmt.Sprintf("The word %q is repeated more than %d times.", w, threshold),
					Severity:    SeverityLow,
				}}
			}
		}
		return nil
	}
}

func checkAcademicDishonesty(text string) []Finding {
	for _, re := range dishonestyPatterns {
		if re.MatchString(text) {
			return []Finding{{
				Code:        "academic_dishonesty",
				Description: "References plagiarism or contract cheating.",
				Severity:    SeverityMedium,
			}}
		}
	}
	return nil
}
