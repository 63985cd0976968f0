package flows

import (
	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/types"
)

type ChatInput struct {
	Message        string `json:"message" validate:"required,max=4000"`
	TargetLanguage string `json:"targetLanguage" validate:"required,oneof=Tigrinya Saho"`
}

func (in *ChatInput) languageField() *string { return &in.TargetLanguage }

type ChatOutput struct {
	Response string `json:"response"`
}

const chatSchema = `{
  "type": "object",
  "properties": {
    "response": {"type": "string", "minLength": 1, "description": "The AI response in the target language."}
  },
  "required": ["response"]
}`

// TranslateAndChat answers an English message in Tigrinya or Saho.
var TranslateAndChat = func() *Flow[ChatInput, ChatOutput] {
	f := newFlow[ChatInput, ChatOutput]("translate-and-chat",
		"Chat in English and get answers in Tigrinya or Saho",
		prompts.GetTranslateAndChatPrompt, chatSchema)
	f.language = languagePolicy{supported: []string{types.Tigrinya, types.Saho}, fallback: types.Tigrinya}
	return f
}()
