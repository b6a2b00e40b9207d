package catalog

import (
	"strings"

	"github.com/claude/planfit/internal/models"
)

// fallbackTable is the built-in exercise set served when the remote catalog
// is unavailable. Mostly bodyweight movements so a plan can always be built
// without equipment.
var fallbackTable = []models.ExerciseRecord{
	{
		Name:         "Push-ups",
		Type:         "strength",
		Muscle:       "chest",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyBeginner,
		Instructions: "Start in plank position. Lower body until chest nearly touches floor. Push back up to start position.",
	},
	{
		Name:         "Squats",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyBeginner,
		Instructions: "Stand with feet shoulder-width apart. Lower body by bending knees and hips. Return to starting position.",
	},
	{
		Name:         "Plank",
		Type:         "strength",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyBeginner,
		Instructions: "Hold a push-up position with forearms on ground. Keep body straight from head to heels.",
	},
	{
		Name:         "Lunges",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyIntermediate,
		Instructions: "Step forward with one leg, lowering hips until both knees are bent at 90 degrees. Return to start.",
	},
	{
		Name:         "Burpees",
		Type:         "cardio",
		Muscle:       "full_body",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyIntermediate,
		Instructions: "From standing, drop to squat, jump back to plank, do push-up, jump forward to squat, jump up.",
	},
	{
		Name:         "Mountain Climbers",
		Type:         "cardio",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyIntermediate,
		Instructions: "Start in plank position. Alternate bringing knees to chest in running motion.",
	},
	{
		Name:         "Deadlifts",
		Type:         "strength",
		Muscle:       "hamstrings",
		Equipment:    "barbell",
		Difficulty:   models.DifficultyIntermediate,
		Instructions: "Stand with barbell at feet. Bend at hips and knees to lower bar. Stand up by extending hips and knees.",
	},
	{
		Name:         "Pull-ups",
		Type:         "strength",
		Muscle:       "lats",
		Equipment:    "pull_up_bar",
		Difficulty:   models.DifficultyIntermediate,
		Instructions: "Hang from pull-up bar with palms facing away. Pull body up until chin clears bar.",
	},
	{
		Name:         "Bicep Curls",
		Type:         "strength",
		Muscle:       "biceps",
		Equipment:    "dumbbell",
		Difficulty:   models.DifficultyBeginner,
		Instructions: "Hold dumbbells at sides. Curl weights up by flexing biceps. Lower slowly to start.",
	},
	{
		Name:         "Tricep Dips",
		Type:         "strength",
		Muscle:       "triceps",
		Equipment:    "body_only",
		Difficulty:   models.DifficultyBeginner,
		Instructions: "Sit on chair edge, hands gripping seat. Lower body by bending arms, then push back up.",
	},
}

// FallbackExercises returns the built-in exercises whose muscle field
// contains the given muscle group (case-insensitive substring match), or the
// whole table when muscle is empty. The returned slice is a copy.
func FallbackExercises(muscle string) []models.ExerciseRecord {
	muscle = strings.ToLower(strings.TrimSpace(muscle))
	if muscle == "" {
		out := make([]models.ExerciseRecord, len(fallbackTable))
		copy(out, fallbackTable)
		return out
	}

	var out []models.ExerciseRecord
	for _, ex := range fallbackTable {
		if strings.Contains(strings.ToLower(ex.Muscle), muscle) {
			out = append(out, ex)
		}
	}
	return out
}
