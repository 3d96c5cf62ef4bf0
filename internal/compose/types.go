package compose

import "assistant-srv/internal/model"

const (
	// LLMTemperature keeps composition close to the provided facts.
	LLMTemperature = 0.4

	// ExcellentQuality and GoodQuality are the quality tiers mentioned to the user.
	ExcellentQuality = 0.8
	GoodQuality      = 0.6
)

// ResultsInput composes a reply for a satisfied search.
type ResultsInput struct {
	Language     string
	Query        string
	Results      []model.SearchResultItem
	QualityScore float64
	MatchCount   int
}

// ClarificationInput composes the honest "results did not match" reply.
type ClarificationInput struct {
	Language        string
	TotalFound      int
	MatchCount      int
	MissingCriteria []string
}

// QuestionsInput composes the elicitation follow-up questions reply.
type QuestionsInput struct {
	Language   string
	Questions  []model.NextQuestion
	Frustrated bool
	// Collected is shown verbatim when Frustrated is set, so the user can see
	// and correct what was understood.
	Collected []model.FieldValue
}

// OfferInput composes the ready-to-post summary and confirmation question.
type OfferInput struct {
	Language   string
	Summary    []string
	Frustrated bool
	Collected  []model.FieldValue
}

// ReAskInput composes the confirmation re-ask after an ambiguous reply. A
// frustrated user gets an apology and the collected fields before the question.
type ReAskInput struct {
	Language   string
	Frustrated bool
	Collected  []model.FieldValue
}

// CompletedInput composes the post-success message.
type CompletedInput struct {
	Language    string
	ReferenceID string
}

// ChatInput composes a plain chat reply.
type ChatInput struct {
	Language      string
	Message       string
	History       []model.Turn
	PriceAnalysis bool
}
