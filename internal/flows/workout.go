package flows

import "ai_dashboard_server/internal/ai/prompts"

type WorkoutInput struct {
	Goal        string  `json:"goal" validate:"required,oneof='weight loss' 'muscle gain' strength 'beginner fitness' endurance"`
	WorkoutType string  `json:"workoutType" validate:"required,oneof=Gym Home Outdoor"`
	Difficulty  string  `json:"difficulty" validate:"required,oneof=Easy Medium Advanced"`
	SessionTime float64 `json:"sessionTime" validate:"required,min=15,max=120"`
	Focus       string  `json:"focus,omitempty" validate:"max=100"`
	Equipment   string  `json:"equipment,omitempty" validate:"max=200"`
}

type Exercise struct {
	Name string `json:"name"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Rest string `json:"rest"`
}

type WorkoutOutput struct {
	PlanTitle        string     `json:"planTitle"`
	Goal             string     `json:"goal"`
	WorkoutType      string     `json:"workoutType"`
	Difficulty       string     `json:"difficulty"`
	SessionTime      string     `json:"sessionTime"`
	WarmUp           []string   `json:"warmUp"`
	MainWorkout      []Exercise `json:"mainWorkout"`
	CoolDown         []string   `json:"coolDown"`
	SafetyTips       string     `json:"safetyTips"`
	CaloriesEstimate string     `json:"caloriesEstimate,omitempty"`
}

// sets, reps and sessionTime are free text ("3-4", "to failure", "45 minutes").
const workoutSchema = `{
  "type": "object",
  "properties": {
    "planTitle": {"type": "string", "minLength": 1},
    "goal": {"type": "string"},
    "workoutType": {"type": "string"},
    "difficulty": {"type": "string"},
    "sessionTime": {"type": "string"},
    "warmUp": {"type": "array", "items": {"type": "string"}},
    "mainWorkout": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "sets": {"type": "string"},
          "reps": {"type": "string"},
          "rest": {"type": "string"}
        },
        "required": ["name", "sets", "reps", "rest"]
      }
    },
    "coolDown": {"type": "array", "items": {"type": "string"}},
    "safetyTips": {"type": "string"},
    "caloriesEstimate": {"type": "string"}
  },
  "required": ["planTitle", "goal", "workoutType", "difficulty", "sessionTime", "warmUp", "mainWorkout", "coolDown", "safetyTips"]
}`

// GenerateWorkout builds a workout plan for a goal, place and session length.
var GenerateWorkout = newFlow[WorkoutInput, WorkoutOutput]("generate-workout",
	"Build a personalized workout plan",
	prompts.GetWorkoutPrompt, workoutSchema)
