package flows

import "ai_dashboard_server/internal/ai/prompts"

type RecipeInput struct {
	Diet       string `json:"diet,omitempty" validate:"max=100"`
	Cuisine    string `json:"cuisine,omitempty" validate:"max=100"`
	Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=Easy Medium Hard"`
	MaxTime    int    `json:"maxTime,omitempty" validate:"omitempty,gt=0"`
}

type Nutrition struct {
	Calories string `json:"calories"`
	Protein  string `json:"protein"`
	Carbs    string `json:"carbs"`
	Fat      string `json:"fat"`
}

type RecipeOutput struct {
	RecipeName   string    `json:"recipeName"`
	Description  string    `json:"description"`
	Ingredients  []string  `json:"ingredients"`
	Instructions []string  `json:"instructions"`
	Nutrition    Nutrition `json:"nutrition"`
	ImagePrompt  string    `json:"imagePrompt"`
}

const recipeSchema = `{
  "type": "object",
  "properties": {
    "recipeName": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "ingredients": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "instructions": {"type": "array", "items": {"type": "string"}, "minItems": 1},
    "nutrition": {
      "type": "object",
      "properties": {
        "calories": {"type": "string", "description": "Estimated calories per serving."},
        "protein": {"type": "string", "description": "Estimated protein per serving."},
        "carbs": {"type": "string", "description": "Estimated carbohydrates per serving."},
        "fat": {"type": "string", "description": "Estimated fat per serving."}
      },
      "required": ["calories", "protein", "carbs", "fat"]
    },
    "imagePrompt": {"type": "string", "description": "A detailed prompt for a photo of the finished dish."}
  },
  "required": ["recipeName", "description", "ingredients", "instructions", "nutrition", "imagePrompt"]
}`

// GenerateRecipe plans one healthy recipe from optional preferences.
var GenerateRecipe = newFlow[RecipeInput, RecipeOutput]("generate-recipe",
	"Plan a healthy recipe from diet, cuisine, difficulty and time preferences",
	prompts.GetRecipePrompt, recipeSchema)
