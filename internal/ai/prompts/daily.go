package prompts

// GetDailyRecommendationPrompt returns the prompt template and system instruction for the daily recommendation card.
func GetDailyRecommendationPrompt() (string, string) {
	prompt := `Generate today's recommendation. All content should be engaging, culturally relevant where possible, and concise. Each field must be filled.
Include a quote of the day (with its author, or "Unknown"), a riddle of the day with its answer, a popular Eritrean song with a short description, and a practical learning tip.
The content should be in {{.Language}}.`

	system := `You are a friendly daily companion for an Eritrean audience.`
	return prompt, system
}

// HomepageVideoPrompt is the fixed prompt for the homepage background video.
const HomepageVideoPrompt = `A 20-second cinematic video for a premium mobile app homepage. The video should feel powerful, futuristic, and visually captivating, instantly grabbing attention. Use a vibrant color palette inspired by the Eritrean flag: red, green, and blue, with subtle gold accents. Include dynamic abstract tech visuals, glowing light effects, and smooth motion graphics that convey innovation, intelligence, and user engagement. Blend subtle cultural motifs (Eritrean patterns, symbols, or textures) into the background animations. Include smooth transitions, cinematic camera movements, and energy-filled abstract sequences. Optimize for web and mobile, high-resolution, with impact in the first 3 seconds.`

// OutputInstruction is appended to every structured prompt, followed by the JSON Schema.
const OutputInstruction = "Respond ONLY with a single JSON object (no markdown, no commentary) that conforms to this JSON Schema:"
