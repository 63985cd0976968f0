package prompts

// GetSummarizeWebpagePrompt returns the prompt template and system instruction for webpage summaries.
// When the page could not be fetched the template only carries the URL.
func GetSummarizeWebpagePrompt() (string, string) {
	prompt := `{{if .Text}}Summarize the content of the webpage at {{.URL}}.
{{- if .Title}}
Page title: {{.Title}}{{end}}

Page content:
---
{{.Text}}
---{{else}}Summarize the content of the webpage at the following URL:

{{.URL}}{{end}}`

	system := `You are an AI assistant that summarizes the content of webpages concisely.`
	return prompt, system
}
