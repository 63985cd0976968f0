package prompts

// GetEritreanMusicPrompt returns the prompt template and system instruction for the music finder.
func GetEritreanMusicPrompt() (string, string) {
	prompt := `Generate a curated list of 3-5 Eritrean music tracks for a user.

The user's preferences are:
{{- if .Artist}}
Artist: {{.Artist}}{{end}}
{{- if .Genre}}
Genre: {{.Genre}}{{end}}
{{- if .Language}}
Language: {{.Language}}{{end}}
{{- if .Mood}}
Mood: {{.Mood}}{{end}}

For each suggestion, provide the song title, artist, album, a YouTube link to listen to the song, and a brief reason for the recommendation.
If you can't find a specific detail, use "N/A". Every link must be a valid absolute URL.
Create a creative title for this playlist.`

	system := `You are an expert on Eritrean music.`
	return prompt, system
}
