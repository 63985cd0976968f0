package prompts

// GetWorkoutPrompt returns the prompt template and system instruction for the workout planner.
func GetWorkoutPrompt() (string, string) {
	prompt := `Generate a personalized workout plan.

User preferences:
- Goal: {{.Goal}}
- Workout Type: {{.WorkoutType}}
- Difficulty Level: {{.Difficulty}}
- Session Time: {{.SessionTime}} minutes
{{- if .Focus}}
- Body-part focus: {{.Focus}}{{end}}
{{- if .Equipment}}
- Available equipment: {{.Equipment}}{{end}}

For the plan, include:
- A creative 'planTitle'.
- The user's 'goal', 'workoutType', 'difficulty', and 'sessionTime'.
- 'warmUp': a list of warm-up exercises.
- 'mainWorkout': exercises, each with 'name', 'sets', 'reps', and 'rest' time.
- 'coolDown': a list of cool-down and stretching exercises.
- 'safetyTips': safety tips and proper form guidance, including recovery and hydration.
- 'caloriesEstimate': an estimate of calories burned, if possible.

Provide clear, simple instructions that anyone can follow.`

	system := `Act as a smart Gym & Fitness AI Coach. You write workout plans, exercise guides and fitness recommendations tailored to the user's goals, experience level and equipment.`
	return prompt, system
}
