// Package generator produces workout plans, preferring an LLM and falling
// back to the deterministic planner on any failure. Generation never errors:
// every path ends in a valid plan.
package generator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/claude/planfit/internal/llm"
	"github.com/claude/planfit/internal/models"
	"github.com/claude/planfit/internal/planner"
)

// Sampling parameters for the completion call.
const (
	temperature = 0.7
	maxTokens   = 2048
	// maxPromptExercises bounds prompt size.
	maxPromptExercises = 20
)

// Source records which path produced a plan.
type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// ChatClient is the completion surface the generator needs. *llm.Client
// satisfies it; tests substitute a stub.
type ChatClient interface {
	Chat(ctx context.Context, messages []llm.Message, temperature float64, maxTokens int) (string, error)
}

// Generator builds workout plans. A nil chat client means no credential is
// configured; every request then takes the fallback path.
type Generator struct {
	chat ChatClient
	log  *slog.Logger
}

// New creates a Generator. chat may be nil.
func New(chat ChatClient, log *slog.Logger) *Generator {
	return &Generator{chat: chat, log: log}
}

// Generate returns a plan for the profile using the given exercise pool,
// and the source that produced it. The LLM path is all-or-nothing: any
// transport error, unparsable output, or shape mismatch discards the AI
// result entirely and yields the deterministic fallback plan instead.
func (g *Generator) Generate(ctx context.Context, profile models.UserProfile, exercises []models.ExerciseRecord) (models.WorkoutPlan, Source) {
	if g.chat == nil {
		return planner.Fallback(profile, exercises), SourceFallback
	}

	text, err := g.chat.Chat(ctx, []llm.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildPrompt(profile, exercises)},
	}, temperature, maxTokens)
	if err != nil {
		g.log.Warn("llm call failed, using fallback plan", "error", err)
		return planner.Fallback(profile, exercises), SourceFallback
	}

	plan, err := parsePlan(text)
	if err != nil {
		g.log.Warn("llm output unusable, using fallback plan", "error", err)
		return planner.Fallback(profile, exercises), SourceFallback
	}
	if err := plan.Validate(); err != nil {
		g.log.Warn("llm plan failed shape validation, using fallback plan", "error", err)
		return planner.Fallback(profile, exercises), SourceFallback
	}

	return plan, SourceAI
}

const systemPrompt = "You are a certified personal trainer. You respond with a single JSON object and no additional text or formatting."

// buildPrompt renders the profile and exercise pool into the generation
// request. Only the first few exercises are embedded to keep the prompt
// bounded.
func buildPrompt(profile models.UserProfile, exercises []models.ExerciseRecord) string {
	if len(exercises) > maxPromptExercises {
		exercises = exercises[:maxPromptExercises]
	}

	var summary strings.Builder
	for _, ex := range exercises {
		fmt.Fprintf(&summary, "- %s: %s exercise for %s, difficulty: %s, equipment: %s\n",
			ex.Name, ex.Type, ex.Muscle, ex.Difficulty, ex.Equipment)
	}

	return fmt.Sprintf(`Create a personalized weekly workout plan based on:

USER PROFILE:
- Goal: %s
- Experience Level: %s
- Days per Week: %d
- Session Duration: %d minutes
- Equipment Available: %s
- Focus Areas: %s

AVAILABLE EXERCISES:
%s
Please create a structured weekly plan with:
1. Day-by-day workout schedule (keys "day_1" through "day_%d")
2. Specific exercises with sets, reps, and rest periods
3. Progression recommendations
4. Tips for success

Format as JSON with this structure:
{
  "plan_name": "Personalized Plan Name",
  "overview": "Brief description",
  "weekly_schedule": {
    "day_1": {
      "focus": "muscle group focus",
      "exercises": [
        {"name": "exercise name", "sets": 3, "reps": "12-15", "rest": "60 seconds", "notes": "form tips"}
      ]
    }
  },
  "progression_tips": ["tip1", "tip2"],
  "success_tips": ["tip1", "tip2"]
}

Return ONLY the JSON response, no additional text or formatting.`,
		profile.Goal,
		profile.Experience,
		profile.DaysPerWeek,
		profile.DurationMinutes,
		strings.Join(profile.Equipment, ", "),
		strings.Join(profile.FocusAreas, ", "),
		summary.String(),
		profile.DaysPerWeek,
	)
}
