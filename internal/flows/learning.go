package flows

import "ai_dashboard_server/internal/ai/prompts"

type LearningInput struct {
	SkillLevel            string `json:"skillLevel" validate:"required,max=50"`
	LearningGoal          string `json:"learningGoal" validate:"required,min=3,max=500"`
	PreferredResourceType string `json:"preferredResourceType,omitempty" validate:"max=50"`
}

type LearningOutput struct {
	SuggestedResources []string `json:"suggestedResources"`
	Reasoning          string   `json:"reasoning"`
}

const learningSchema = `{
  "type": "object",
  "properties": {
    "suggestedResources": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "reasoning": {"type": "string", "minLength": 1}
  },
  "required": ["suggestedResources", "reasoning"]
}`

// SuggestLearningResources recommends resources for a skill level and goal.
var SuggestLearningResources = newFlow[LearningInput, LearningOutput]("suggest-learning-resources",
	"Suggest learning resources for a goal and skill level",
	prompts.GetLearningResourcesPrompt, learningSchema)
