package prompts

// GetRecipePrompt returns the prompt template and system instruction for the recipe planner.
func GetRecipePrompt() (string, string) {
	prompt := `Generate a single recipe based on the following user preferences.

User Preferences:
{{- if .Cuisine}}
Cuisine: {{.Cuisine}}{{end}}
{{- if .Diet}}
Diet: {{.Diet}}{{end}}
{{- if .Difficulty}}
Difficulty: {{.Difficulty}}{{end}}
{{- if .MaxTime}}
Maximum cook time: {{.MaxTime}} minutes{{end}}

Your response must include:
1. A creative and appealing 'recipeName'.
2. A short, mouth-watering 'description'.
3. A list of 'ingredients'.
4. A list of step-by-step 'instructions'.
5. Estimated 'nutrition' information (calories, protein, carbs, fat) per serving.
6. A detailed 'imagePrompt' for an AI to generate a photorealistic image of the final dish. Describe the plating, lighting, and background.

If no preferences are provided, generate a random popular and healthy recipe. Ensure the recipe is easy to follow.`

	system := `You are a creative chef who specializes in healthy and delicious meals.`
	return prompt, system
}
