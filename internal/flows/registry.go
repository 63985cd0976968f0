package flows

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
)

// Info describes a registered flow.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Registry maps flow names to runners. It is read-only after construction.
type Registry struct {
	runners map[string]Runner
}

// NewRegistry registers runners by name. Duplicate names are an error.
func NewRegistry(runners ...Runner) (*Registry, error) {
	r := &Registry{runners: make(map[string]Runner, len(runners))}
	for _, runner := range runners {
		if _, dup := r.runners[runner.Name()]; dup {
			return nil, fmt.Errorf("flow %q registered twice", runner.Name())
		}
		r.runners[runner.Name()] = runner
	}
	return r, nil
}

// Default returns a registry with every flow the dashboard offers.
func Default() *Registry {
	r, err := NewRegistry(
		TranslateAndChat,
		GenerateQuote,
		AnswerQuestion,
		QuoteOfTheDay,
		AnswerGeneralQuestion,
		GenerateRecipe,
		GenerateWorkout,
		FindEritreanMusic,
		SuggestLearningResources,
		SummarizeWebpage,
		BrainTeasers,
		DailyRecommendation,
		GenerateImage,
		GenerateHomepageVideo,
		Portfolio,
	)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the runner registered under name.
func (r *Registry) Get(name string) (Runner, error) {
	runner, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}
	return runner, nil
}

// Names lists registered flow names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List describes every registered flow, sorted by name.
func (r *Registry) List() []Info {
	names := r.Names()
	out := make([]Info, len(names))
	for i, name := range names {
		out[i] = Info{Name: name, Description: r.runners[name].Description()}
	}
	return out
}

// RunJSON runs the named flow with a raw JSON input.
func (r *Registry) RunJSON(ctx context.Context, d Deps, name string, raw json.RawMessage, lang string) (Result, error) {
	runner, err := r.Get(name)
	if err != nil {
		return Result{}, err
	}
	return runner.RunJSON(ctx, d, raw, lang)
}
