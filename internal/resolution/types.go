package resolution

import "assistant-srv/internal/model"

const (
	// DefaultSatisfiedThreshold is the quality score at which results are
	// considered good enough to show. Precision over recall: plausible but
	// wrong matches cost more trust than one extra question.
	DefaultSatisfiedThreshold = 0.6

	// DefaultMaxAttempts bounds search calls per user turn.
	DefaultMaxAttempts = 2
)

// Config tunes the resolution loop. Zero values fall back to the defaults.
type Config struct {
	SatisfiedThreshold float64
	MaxAttempts        int
}

// WithDefaults fills unset tunables with the default values.
func (c Config) WithDefaults() Config {
	if c.SatisfiedThreshold <= 0 {
		c.SatisfiedThreshold = DefaultSatisfiedThreshold
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	return c
}

// ResolveInput is one search turn.
type ResolveInput struct {
	Language string
	Query    string
	History  []model.Turn
}

// ResolveOutput is the terminal result of the loop. Satisfied distinguishes
// the results-returned flavor from the clarification flavor.
type ResolveOutput struct {
	Reply      string
	Satisfied  bool
	Results    []model.SearchResultItem
	Evaluation model.EvaluationResult
	Attempts   int
}
