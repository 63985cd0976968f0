package flows

import (
	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/types"
)

type BrainTeasersInput struct {
	Language string `json:"language" validate:"required,max=40"`
}

func (in *BrainTeasersInput) languageField() *string { return &in.Language }

type TrickQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Lifehack struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BrainTeasersOutput struct {
	FootballTrickQuestions []TrickQuestion `json:"footballTrickQuestions"`
	LifeTrickQuestions     []TrickQuestion `json:"lifeTrickQuestions"`
	Lifehacks              []Lifehack      `json:"lifehacks"`
}

const brainTeasersSchema = `{
  "type": "object",
  "definitions": {
    "qa": {
      "type": "object",
      "properties": {"question": {"type": "string"}, "answer": {"type": "string"}},
      "required": ["question", "answer"]
    }
  },
  "properties": {
    "footballTrickQuestions": {"type": "array", "minItems": 1, "maxItems": 3, "items": {"$ref": "#/definitions/qa"}},
    "lifeTrickQuestions": {"type": "array", "minItems": 1, "maxItems": 3, "items": {"$ref": "#/definitions/qa"}},
    "lifehacks": {
      "type": "array",
      "minItems": 1,
      "maxItems": 3,
      "items": {
        "type": "object",
        "properties": {"title": {"type": "string"}, "description": {"type": "string"}},
        "required": ["title", "description"]
      }
    }
  },
  "required": ["footballTrickQuestions", "lifeTrickQuestions", "lifehacks"]
}`

// BrainTeasers produces football trick questions, riddles and lifehacks.
var BrainTeasers = func() *Flow[BrainTeasersInput, BrainTeasersOutput] {
	f := newFlow[BrainTeasersInput, BrainTeasersOutput]("brain-teasers",
		"Football trick questions, riddles and lifehacks",
		prompts.GetBrainTeasersPrompt, brainTeasersSchema)
	f.language = languagePolicy{supported: []string{types.Tigrinya, types.English, types.Arabic}, fallback: types.Tigrinya}
	return f
}()
