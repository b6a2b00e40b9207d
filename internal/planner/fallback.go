// Package planner builds deterministic workout plans without any external
// service. It is the safety net behind the LLM generator: given any profile
// and exercise list it always produces a well-formed plan.
package planner

import (
	"fmt"
	"strings"

	"github.com/claude/planfit/internal/models"
)

// maxExercisesPerDay caps how many exercises a fallback day carries. The
// same selection repeats for every day of the week.
const maxExercisesPerDay = 4

// ProgressionTips are the fixed progression recommendations attached to
// every fallback plan.
var ProgressionTips = []string{
	"Increase weight/reps by 5-10% when you can complete all sets easily",
	"Focus on proper form before increasing intensity",
	"Rest at least one day between intense workouts",
}

// SuccessTips are the fixed adherence recommendations attached to every
// fallback plan.
var SuccessTips = []string{
	"Stay consistent with your schedule",
	"Track your progress",
	"Listen to your body and rest when needed",
	"Stay hydrated and eat well",
}

// prescription is the per-experience set/rep/rest scheme.
type prescription struct {
	sets int
	reps string
	rest string
}

// prescriptionFor maps an experience level to its scheme. Unknown values get
// the advanced row.
func prescriptionFor(experience string) prescription {
	switch experience {
	case models.DifficultyBeginner:
		return prescription{sets: 2, reps: "8-12", rest: "90 seconds"}
	case models.DifficultyIntermediate:
		return prescription{sets: 3, reps: "10-15", rest: "60 seconds"}
	default:
		return prescription{sets: 3, reps: "12-20", rest: "45 seconds"}
	}
}

// Fallback builds a deterministic weekly plan from the profile and exercise
// list. It never fails: an empty exercise list yields days with empty
// exercise slices but an otherwise complete plan.
func Fallback(profile models.UserProfile, exercises []models.ExerciseRecord) models.WorkoutPlan {
	selected := selectExercises(profile.Experience, exercises)
	rx := prescriptionFor(profile.Experience)

	goal := strings.ReplaceAll(profile.Goal, "_", " ")
	plan := models.WorkoutPlan{
		PlanName:        fmt.Sprintf("Custom %s %s Plan", titleCase(profile.Experience), titleCase(goal)),
		Overview:        fmt.Sprintf("A %d-day per week workout plan focused on %s", profile.DaysPerWeek, goal),
		WeeklySchedule:  make(map[string]models.DaySchedule, profile.DaysPerWeek),
		ProgressionTips: ProgressionTips,
		SuccessTips:     SuccessTips,
	}

	for day := 1; day <= profile.DaysPerWeek; day++ {
		focus := "Full Body"
		if day > 3 {
			focus = "Active Recovery"
		}

		planned := make([]models.PlannedExercise, 0, len(selected))
		for _, ex := range selected {
			planned = append(planned, models.PlannedExercise{
				Name:  ex.Name,
				Sets:  rx.sets,
				Reps:  rx.reps,
				Rest:  rx.rest,
				Notes: "Focus on proper form",
			})
		}

		plan.WeeklySchedule[models.DayKey(day)] = models.DaySchedule{
			Focus:     focus,
			Exercises: planned,
		}
	}

	return plan
}

// selectExercises filters by difficulty matching the experience level
// (advanced users take everything), falling back to the unfiltered list when
// nothing matches, then takes the first few in order.
func selectExercises(experience string, exercises []models.ExerciseRecord) []models.ExerciseRecord {
	var suitable []models.ExerciseRecord
	if experience == models.DifficultyAdvanced {
		suitable = exercises
	} else {
		for _, ex := range exercises {
			if ex.Difficulty == experience {
				suitable = append(suitable, ex)
			}
		}
	}
	if len(suitable) == 0 {
		suitable = exercises
	}
	if len(suitable) > maxExercisesPerDay {
		suitable = suitable[:maxExercisesPerDay]
	}
	return suitable
}

// titleCase uppercases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
