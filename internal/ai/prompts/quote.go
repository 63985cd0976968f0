package prompts

// GetQuotePrompt returns the prompt template and system instruction for quote generation.
func GetQuotePrompt() (string, string) {
	prompt := `Generate a {{if .Topic}}{{.Topic}}{{else}}random{{end}} quote in {{.Language}}.
The quote can be motivational, inspirational, funny, or life-related.
Also provide a short, insightful explanation or lesson related to the quote, in the same language.`

	system := `You are an AI that provides inspiring and insightful quotes.`
	return prompt, system
}

// GetAnswerQuestionPrompt returns the prompt template and system instruction for follow-up questions on the quotes page.
func GetAnswerQuestionPrompt() (string, string) {
	prompt := `Answer the following question clearly and concisely in {{.Language}}.

Question: {{.Question}}`

	system := `You are a helpful AI assistant.`
	return prompt, system
}
