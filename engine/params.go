package engine

import "errors"

// Default tuning values. See Params for the rationale behind each one.
const (
	DefaultSimilarityThreshold  = 0.15
	DefaultKeywordMatchBonus    = 0.25
	DefaultExperienceYearsBoost = 0.3
	DefaultKeywordBonusCap      = 0.8
	DefaultMaxFuzzyDistance     = 2
	DefaultMergeMargin          = 0.15
	DefaultMaxAnswerLength      = 600
)

// DefaultFallbackMessage is returned when no chunk clears the confidence
// threshold. It distinguishes "no good answer" from "something is broken".
const DefaultFallbackMessage = "I used my internal knowledge base but couldn't find a direct answer. " +
	"Please ask specifically about my Skills (e.g., Python, AWS), Experience (e.g., TCS, Meta), or Contact info."

// Params holds the tunable constants of the hybrid scorer and answer
// composer. They are exposed as a struct rather than hardcoded literals so
// tests can probe boundary behavior directly.
type Params struct {
	// SimilarityThreshold is the minimum total score a chunk must reach
	// before it is trusted as an answer; anything below falls back.
	SimilarityThreshold float64

	// KeywordMatchBonus is added once per query token that fuzzy-matches
	// at least one chunk keyword. It corrects for noisy embeddings on
	// exact-entity queries without abandoning semantic matching.
	KeywordMatchBonus float64

	// ExperienceYearsBoost is a targeted boost ensuring the canonical
	// "years of experience" chunk wins that specific, common question.
	// Applied when the whole query fuzzy-matches "experience" and the
	// chunk carries the "years" keyword.
	ExperienceYearsBoost float64

	// KeywordBonusCap limits the total keyword bonus so lexical signal
	// can dominate short or noisy embeddings but never fully override
	// semantic similarity on its own.
	KeywordBonusCap float64

	// MaxFuzzyDistance is the Levenshtein budget for keyword matching,
	// enough to absorb typos and simple morphological variants.
	MaxFuzzyDistance int

	// MergeMargin is how close a runner-up's score must be to the best
	// score before its text is considered for merging into the answer.
	MergeMargin float64

	// MaxAnswerLength caps the combined character length of a merged
	// answer.
	MaxAnswerLength int

	// FallbackMessage is the answer text of a fallback result.
	FallbackMessage string
}

// DefaultParams returns the tuning the engine ships with.
func DefaultParams() Params {
	return Params{
		SimilarityThreshold:  DefaultSimilarityThreshold,
		KeywordMatchBonus:    DefaultKeywordMatchBonus,
		ExperienceYearsBoost: DefaultExperienceYearsBoost,
		KeywordBonusCap:      DefaultKeywordBonusCap,
		MaxFuzzyDistance:     DefaultMaxFuzzyDistance,
		MergeMargin:          DefaultMergeMargin,
		MaxAnswerLength:      DefaultMaxAnswerLength,
		FallbackMessage:      DefaultFallbackMessage,
	}
}

// Validate checks that the parameters are usable.
func (p *Params) Validate() error {
	if p.KeywordMatchBonus < 0 || p.ExperienceYearsBoost < 0 {
		return errors.New("engine params: bonuses cannot be negative")
	}
	if p.KeywordBonusCap < 0 {
		return errors.New("engine params: KeywordBonusCap cannot be negative")
	}
	if p.MaxFuzzyDistance < 0 {
		return errors.New("engine params: MaxFuzzyDistance cannot be negative")
	}
	if p.MaxAnswerLength <= 0 {
		return errors.New("engine params: MaxAnswerLength must be positive")
	}
	if p.FallbackMessage == "" {
		return errors.New("engine params: FallbackMessage is required")
	}
	return nil
}
