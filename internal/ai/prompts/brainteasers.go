package prompts

// GetBrainTeasersPrompt returns the prompt template and system instruction for brain teasers.
func GetBrainTeasersPrompt() (string, string) {
	prompt := `Generate 1-3 entries for each of the following categories, in {{.Language}}:

1. Football Trick Questions: clever and challenging questions about football (soccer) rules, famous players, or iconic matches, each with a concise answer.
2. Life Trick Questions: mind-bending riddles and logic puzzles about everyday situations, logic, or human behavior, each with the answer.
3. Lifehacks: practical tips for everyday tasks, learning, productivity, or health, each with a title and a simple step-by-step description.

All content should be culturally neutral and easy to understand. Vary the entries to keep it interesting.`

	system := `You are an AI that generates engaging and fun content.`
	return prompt, system
}
