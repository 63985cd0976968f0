package flows

import (
	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/types"
)

type DailyInput struct {
	Language string `json:"language,omitempty" validate:"omitempty,oneof=Tigrinya English Arabic"`
}

func (in *DailyInput) languageField() *string { return &in.Language }

type DailyQuote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

type DailySong struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Description string `json:"description"`
}

type LearningTip struct {
	Tip string `json:"tip"`
}

type DailyRecommendationOutput struct {
	QuoteOfTheDay       DailyQuote    `json:"quote_of_the_day"`
	RiddleOfTheDay      TrickQuestion `json:"riddle_of_the_day"`
	PopularEritreanSong DailySong     `json:"popular_eritrean_song"`
	LearningTip         LearningTip   `json:"learning_tip"`
}

const dailySchema = `{
  "type": "object",
  "properties": {
    "quote_of_the_day": {
      "type": "object",
      "properties": {"text": {"type": "string", "minLength": 1}, "author": {"type": "string"}},
      "required": ["text", "author"]
    },
    "riddle_of_the_day": {
      "type": "object",
      "properties": {"question": {"type": "string", "minLength": 1}, "answer": {"type": "string", "minLength": 1}},
      "required": ["question", "answer"]
    },
    "popular_eritrean_song": {
      "type": "object",
      "properties": {"title": {"type": "string"}, "artist": {"type": "string"}, "description": {"type": "string"}},
      "required": ["title", "artist", "description"]
    },
    "learning_tip": {
      "type": "object",
      "properties": {"tip": {"type": "string", "minLength": 1}},
      "required": ["tip"]
    }
  },
  "required": ["quote_of_the_day", "riddle_of_the_day", "popular_eritrean_song", "learning_tip"]
}`

// DailyRecommendation is the home card, cached for the UTC day per language.
var DailyRecommendation = func() *Flow[DailyInput, DailyRecommendationOutput] {
	f := newFlow[DailyInput, DailyRecommendationOutput]("daily-recommendation",
		"Today's quote, riddle, Eritrean song and learning tip",
		prompts.GetDailyRecommendationPrompt, dailySchema)
	f.language = languagePolicy{supported: []string{types.Tigrinya, types.English, types.Arabic}, fallback: types.English}
	f.daily = func(in *DailyInput) []string { return []string{in.Language} }
	return f
}()
