package prompts

// GetGeneralQuestionPrompt returns the prompt template and system instruction for the Q&A tool.
func GetGeneralQuestionPrompt() (string, string) {
	prompt := `Please answer the following question in {{.Language}}.

Question: {{.Question}}`

	system := `You are an intelligent and helpful Q&A assistant. Your goal is to provide clear, accurate, and concise answers to user questions.`
	return prompt, system
}
