package flows

import (
	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/types"
)

type GeneralQuestionInput struct {
	Question string `json:"question" validate:"required,max=2000"`
	Language string `json:"language" validate:"required,oneof=Tigrinya English Arabic"`
}

func (in *GeneralQuestionInput) languageField() *string { return &in.Language }

// AnswerGeneralQuestion is the general Q&A tool.
var AnswerGeneralQuestion = func() *Flow[GeneralQuestionInput, AnswerOutput] {
	f := newFlow[GeneralQuestionInput, AnswerOutput]("answer-general-question",
		"Answer questions on any topic in Tigrinya, English or Arabic",
		prompts.GetGeneralQuestionPrompt, answerSchema)
	f.language = languagePolicy{supported: []string{types.Tigrinya, types.English, types.Arabic}, fallback: types.Tigrinya}
	return f
}()
