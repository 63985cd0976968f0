package prompts

// GetTranslateAndChatPrompt returns the prompt template and system instruction for multilingual chat.
func GetTranslateAndChatPrompt() (string, string) {
	prompt := `The user will send you a message in English, and you will respond in {{.TargetLanguage}}.
Respond in a way that is natural and helpful.

Here is the user's message:
---
{{.Message}}
---`

	system := `You are a multilingual AI assistant fluent in Tigrinya, Saho and English.`
	return prompt, system
}
