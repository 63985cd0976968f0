package flows

import (
	"strings"

	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/types"
)

type QuoteInput struct {
	Language string `json:"language" validate:"required,oneof=Tigrinya English"`
	Topic    string `json:"topic,omitempty" validate:"max=200"`
}

func (in *QuoteInput) languageField() *string { return &in.Language }

type QuoteOutput struct {
	Quote       string `json:"quote"`
	Explanation string `json:"explanation"`
}

type QuestionInput struct {
	Language string `json:"language" validate:"required,oneof=Tigrinya English"`
	Question string `json:"question" validate:"required,max=2000"`
}

func (in *QuestionInput) languageField() *string { return &in.Language }

type AnswerOutput struct {
	Answer string `json:"answer"`
}

const quoteSchema = `{
  "type": "object",
  "properties": {
    "quote": {"type": "string", "minLength": 1, "description": "The generated quote."},
    "explanation": {"type": "string", "minLength": 1, "description": "A short, insightful explanation of the quote."}
  },
  "required": ["quote", "explanation"]
}`

const answerSchema = `{
  "type": "object",
  "properties": {
    "answer": {"type": "string", "minLength": 1, "description": "A clear, concise and helpful answer."}
  },
  "required": ["answer"]
}`

var quoteLanguages = languagePolicy{supported: []string{types.Tigrinya, types.English}, fallback: types.Tigrinya}

// GenerateQuote writes a quote with an explanation, optionally on a topic.
var GenerateQuote = func() *Flow[QuoteInput, QuoteOutput] {
	f := newFlow[QuoteInput, QuoteOutput]("generate-quote",
		"Generate an inspiring quote with a short explanation",
		prompts.GetQuotePrompt, quoteSchema)
	f.language = quoteLanguages
	return f
}()

// QuoteOfTheDay is GenerateQuote cached for the UTC day per language and topic.
var QuoteOfTheDay = func() *Flow[QuoteInput, QuoteOutput] {
	f := newFlow[QuoteInput, QuoteOutput]("quote-of-the-day",
		"Today's quote, shared by everyone asking in the same language and topic",
		prompts.GetQuotePrompt, quoteSchema)
	f.language = quoteLanguages
	f.daily = func(in *QuoteInput) []string {
		return []string{in.Language, strings.ToLower(strings.TrimSpace(in.Topic))}
	}
	return f
}()

// AnswerQuestion answers a follow-up question on the quotes page.
var AnswerQuestion = func() *Flow[QuestionInput, AnswerOutput] {
	f := newFlow[QuestionInput, AnswerOutput]("answer-question",
		"Answer a question in Tigrinya or English",
		prompts.GetAnswerQuestionPrompt, answerSchema)
	f.language = quoteLanguages
	return f
}()
