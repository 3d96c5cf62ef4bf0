package compose

import (
	"context"
	"fmt"
	"strings"

	"assistant-srv/pkg/gemini"
)

const systemPrompt = `You are a friendly real-estate assistant for a property marketplace.
Write the reply for the user based strictly on the facts given. Do not invent
listings, fields, or numbers. Reply in the language named in the facts, in a
natural conversational tone, without markdown headers.`

// generate runs one LLM composition. The empty string means the caller must
// fall back to a template.
func (c *implComposer) generate(ctx context.Context, facts string) string {
	out, err := c.gemini.Generate(ctx, gemini.GenerateInput{
		System: systemPrompt,
		Messages: []gemini.Message{
			{Role: "user", Content: facts},
		},
		Temperature: LLMTemperature,
	})
	if err != nil {
		c.l.Warnf(ctx, "compose.generate: %v", err)
		return ""
	}
	return strings.TrimSpace(out)
}

func (c *implComposer) Results(ctx context.Context, input ResultsInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	fmt.Fprintf(&b, "Situation: search succeeded, present the results.\n")
	fmt.Fprintf(&b, "User query: %s\n", input.Query)
	fmt.Fprintf(&b, "Matched %d of %d results, quality score %.2f.\n", input.MatchCount, len(input.Results), input.QualityScore)
	b.WriteString("Listings:\n")
	for i, r := range input.Results {
		if i >= 5 {
			break
		}
		fmt.Fprintf(&b, "%d. %s | %s | %s | %d bedrooms | price %.0f\n", i+1, r.Title, r.Location, r.PropertyType, r.Bedrooms, r.Price)
	}
	b.WriteString("Summarize briefly, list the listings with titles and locations, and mention how well they fit.")

	if out := c.generate(ctx, b.String()); out != "" {
		return out
	}
	return fallbackResults(input)
}

func (c *implComposer) Clarification(ctx context.Context, input ClarificationInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	b.WriteString("Situation: search found results but they do not fit the user's requirements well. Be honest about it.\n")
	fmt.Fprintf(&b, "Found %d results, only %d matched.\n", input.TotalFound, input.MatchCount)
	if len(input.MissingCriteria) > 0 {
		fmt.Fprintf(&b, "Unmet criteria: %s\n", strings.Join(input.MissingCriteria, ", "))
	}
	b.WriteString("Tell the user the results did not match, name the unmet criteria, and suggest broadening the area, giving an exact bedroom count, or sharing a budget. Do not show the results.")

	if out := c.generate(ctx, b.String()); out != "" {
		return out
	}
	return fallbackClarification(input)
}

func (c *implComposer) Questions(ctx context.Context, input QuestionsInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	b.WriteString("Situation: collecting details for a property listing, ask the follow-up questions.\n")
	if input.Frustrated {
		b.WriteString("The user sounds frustrated. First apologize briefly and list exactly what has been understood so far, so they can correct it:\n")
		for _, fv := range input.Collected {
			fmt.Fprintf(&b, "- %s: %s\n", fv.Name, fv.Value)
		}
	}
	b.WriteString("Questions to ask:\n")
	for _, q := range input.Questions {
		fmt.Fprintf(&b, "- %s\n", q.Prompt)
	}
	b.WriteString("Ask these questions naturally in one short message. Do not ask anything else.")

	if out := c.generate(ctx, b.String()); out != "" {
		return out
	}
	return fallbackQuestions(input)
}

func (c *implComposer) ConfirmationOffer(ctx context.Context, input OfferInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	b.WriteString("Situation: enough details were collected for the listing. Summarize them and ask whether to post now.\n")
	if input.Frustrated {
		b.WriteString("The user sounds frustrated. Apologize briefly first and show what has been understood:\n")
		for _, fv := range input.Collected {
			fmt.Fprintf(&b, "- %s: %s\n", fv.Name, fv.Value)
		}
	}
	b.WriteString("Listing summary:\n")
	for _, line := range input.Summary {
		fmt.Fprintf(&b, "- %s\n", line)
	}
	b.WriteString("End with a clear yes/no question about posting it now.")

	if out := c.generate(ctx, b.String()); out != "" {
		return out
	}
	return fallbackOffer(input)
}

func (c *implComposer) Completed(ctx context.Context, input CompletedInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	fmt.Fprintf(&b, "Situation: the listing was posted successfully with reference ID %s.\n", input.ReferenceID)
	b.WriteString("Confirm the posting in one or two sentences and state the reference ID exactly as given.")

	if out := c.generate(ctx, b.String()); out != "" && strings.Contains(out, input.ReferenceID) {
		return out
	}
	return fmt.Sprintf(phrasesFor(input.Language).completed, input.ReferenceID)
}

func (c *implComposer) ReAskConfirmation(ctx context.Context, input ReAskInput) string {
	if !input.Frustrated {
		return phrasesFor(input.Language).reAsk
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	b.WriteString("Situation: the user gave an unclear answer to the posting confirmation and sounds frustrated.\n")
	b.WriteString("Apologize briefly, list exactly what has been understood so far so they can correct it:\n")
	for _, fv := range input.Collected {
		fmt.Fprintf(&b, "- %s: %s\n", fv.Name, fv.Value)
	}
	b.WriteString("Then end with a clear yes/no question about posting the listing now.")

	if out := c.generate(ctx, b.String()); out != "" {
		return out
	}
	return fallbackReAsk(input)
}

func (c *implComposer) Chat(ctx context.Context, input ChatInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Language: %s\n", input.Language)
	if input.PriceAnalysis {
		b.WriteString("Situation: the user asks about property prices or market trends. Give a brief, balanced view and note that exact figures depend on the specific listing.\n")
	} else {
		b.WriteString("Situation: general conversation. Answer helpfully and steer toward searching for or posting property when relevant.\n")
	}
	if len(input.History) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, t := range input.History {
			fmt.Fprintf(&b, "%s: %s\n", t.Role, t.Content)
		}
	}
	fmt.Fprintf(&b, "User message: %s\n", input.Message)

	if out := c.generate(ctx, b.String()); out != "" {
		return out
	}
	return phrasesFor(input.Language).chatFallback
}

func (c *implComposer) Failure(ctx context.Context, lang string) string {
	return phrasesFor(lang).failure
}
