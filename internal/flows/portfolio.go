package flows

import "context"

type Skill struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type Experience struct {
	Role        string `json:"role"`
	Description string `json:"description"`
}

type Contact struct {
	Facebook string `json:"facebook"`
}

type PortfolioData struct {
	Name       string       `json:"name"`
	About      string       `json:"about"`
	Skills     []Skill      `json:"skills"`
	Experience []Experience `json:"experience"`
	Languages  []string     `json:"languages"`
	Contact    Contact      `json:"contact"`
}

type PortfolioInput struct{}

// portfolio is the author's fixed profile; it is served without a model call.
var portfolio = PortfolioData{
	Name:  "Abdella Mohammed Ali",
	About: "I am a passionate programmer and app builder with experience in creating practical and user-friendly applications. I enjoy turning ideas into functional digital solutions and continuously learning new technologies to improve my skills. I am dedicated, detail-oriented, and always strive to deliver high-quality work.",
	Skills: []Skill{
		{Category: "Programming", Skills: []string{"App Development", "Problem-Solving", "Technology Integration"}},
	},
	Experience: []Experience{
		{
			Role:        "App Builder",
			Description: "Developed and built applications from concept to deployment, focusing on functionality, user experience, and performance. Successfully managed projects independently, ensuring timely delivery and effective solutions.",
		},
	},
	Languages: []string{"Saho - Fluent", "English - Fluent", "Arabic - Fluent", "Tigrinya - Fluent"},
	Contact:   Contact{Facebook: "https://www.facebook.com/share/1AsKNNfYpH/"},
}

// Portfolio returns the static portfolio document.
var Portfolio = newAction("portfolio", "The author's portfolio",
	func(context.Context, Deps, PortfolioInput) (PortfolioData, bool, error) {
		return portfolio, false, nil
	})
