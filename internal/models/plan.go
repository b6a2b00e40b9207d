package models

import (
	"fmt"
	"time"
)

// WorkoutPlan is a complete weekly workout schedule. WeeklySchedule is keyed
// "day_1".."day_N" where N is the profile's days per week.
type WorkoutPlan struct {
	PlanName        string                 `json:"plan_name"`
	Overview        string                 `json:"overview"`
	WeeklySchedule  map[string]DaySchedule `json:"weekly_schedule"`
	ProgressionTips []string               `json:"progression_tips"`
	SuccessTips     []string               `json:"success_tips"`
}

// DaySchedule is the workout for a single day of the week.
type DaySchedule struct {
	Focus     string            `json:"focus"`
	Exercises []PlannedExercise `json:"exercises"`
}

// PlannedExercise is one exercise slot in a day's workout.
type PlannedExercise struct {
	Name  string `json:"name"`
	Sets  int    `json:"sets"`
	Reps  string `json:"reps"`
	Rest  string `json:"rest"`
	Notes string `json:"notes"`
}

// DayKey returns the schedule key for a 1-based day index.
func DayKey(day int) string {
	return fmt.Sprintf("day_%d", day)
}

// Validate checks that a plan has the expected shape: a plan name, at least
// one scheduled day, and every planned exercise carries a name and a
// non-negative set count. Plans parsed from LLM output go through this before
// being trusted; a deterministic fallback plan always passes.
func (p *WorkoutPlan) Validate() error {
	if p.PlanName == "" {
		return fmt.Errorf("plan: missing plan_name")
	}
	if len(p.WeeklySchedule) == 0 {
		return fmt.Errorf("plan: empty weekly_schedule")
	}
	for key, day := range p.WeeklySchedule {
		if day.Focus == "" && len(day.Exercises) == 0 {
			return fmt.Errorf("plan: %s has neither focus nor exercises", key)
		}
		for i, ex := range day.Exercises {
			if ex.Name == "" {
				return fmt.Errorf("plan: %s exercise %d has no name", key, i)
			}
			if ex.Sets < 0 {
				return fmt.Errorf("plan: %s exercise %q has negative sets", key, ex.Name)
			}
		}
	}
	return nil
}

// ExportFilename returns the download filename for a plan exported at t,
// e.g. "workout_plan_20260824.json".
func ExportFilename(t time.Time) string {
	return "workout_plan_" + t.Format("20060102") + ".json"
}
