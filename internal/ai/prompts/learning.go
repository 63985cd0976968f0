package prompts

// GetLearningResourcesPrompt returns the prompt template and system instruction for learning suggestions.
func GetLearningResourcesPrompt() (string, string) {
	prompt := `Based on the user's current skill level: {{.SkillLevel}},
and their learning goal: {{.LearningGoal}},
suggest a list of relevant learning resources (URLs, book titles, courses).
{{- if .PreferredResourceType}}
Prefer this type of resource: {{.PreferredResourceType}}.{{end}}

Explain in 'reasoning' why you are suggesting these resources.`

	system := `You are an AI learning resource recommender.`
	return prompt, system
}
