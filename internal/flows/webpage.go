package flows

import (
	"context"

	"go.uber.org/zap"

	"ai_dashboard_server/internal/ai/prompts"
	"ai_dashboard_server/internal/utils"
)

// maxPageChars bounds the page text sent to the model.
const maxPageChars = 20000

type WebpageInput struct {
	URL string `json:"url" validate:"required,http_url,max=2048"`
}

type WebpageOutput struct {
	Summary string `json:"summary"`
}

type pageData struct {
	URL   string
	Title string
	Text  string
}

const webpageSchema = `{
  "type": "object",
  "properties": {
    "summary": {"type": "string", "minLength": 1, "description": "A concise summary of the webpage content."}
  },
  "required": ["summary"]
}`

// SummarizeWebpage fetches a page and summarizes its visible text. When the
// page cannot be fetched the model only gets the URL.
var SummarizeWebpage = func() *Flow[WebpageInput, WebpageOutput] {
	f := newFlow[WebpageInput, WebpageOutput]("summarize-webpage",
		"Summarize the content of a webpage",
		prompts.GetSummarizeWebpagePrompt, webpageSchema)
	f.data = func(ctx context.Context, d Deps, in *WebpageInput) any {
		data := pageData{URL: in.URL}
		if d.Fetcher == nil {
			return data
		}
		page, err := d.Fetcher.FetchText(ctx, in.URL)
		if err != nil {
			d.Log.Info("Falling back to URL-only summary", zap.String("url", in.URL), zap.Error(err))
			return data
		}
		data.Title = page.Title
		data.Text = utils.Truncate(page.Text, maxPageChars)
		return data
	}
	return f
}()
