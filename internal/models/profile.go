package models

// Profile field defaults.
const (
	DefaultGoal            = "general_fitness"
	DefaultExperience      = DifficultyBeginner
	DefaultDaysPerWeek     = 3
	DefaultDurationMinutes = 45
)

// UserProfile captures the fitness preferences collected for one plan
// request. Profiles are request-scoped and never persisted on their own;
// a snapshot of the profile is stored alongside each generated plan.
type UserProfile struct {
	Goal            string   `json:"goal"`
	Experience      string   `json:"experience"`
	DaysPerWeek     int      `json:"days_per_week"`
	DurationMinutes int      `json:"duration_minutes"`
	Equipment       []string `json:"equipment"`
	FocusAreas      []string `json:"focus_areas"`
}

// Normalize fills empty fields with defaults and clamps numeric fields to
// their valid ranges (days 2-7, duration 15-120 minutes). Unknown experience
// values are left as-is; the planner treats them as advanced.
func (p *UserProfile) Normalize() {
	if p.Goal == "" {
		p.Goal = DefaultGoal
	}
	if p.Experience == "" {
		p.Experience = DefaultExperience
	}
	if p.DaysPerWeek == 0 {
		p.DaysPerWeek = DefaultDaysPerWeek
	}
	if p.DaysPerWeek < 2 {
		p.DaysPerWeek = 2
	}
	if p.DaysPerWeek > 7 {
		p.DaysPerWeek = 7
	}
	if p.DurationMinutes == 0 {
		p.DurationMinutes = DefaultDurationMinutes
	}
	if p.DurationMinutes < 15 {
		p.DurationMinutes = 15
	}
	if p.DurationMinutes > 120 {
		p.DurationMinutes = 120
	}
	if len(p.Equipment) == 0 {
		p.Equipment = []string{"body_only"}
	}
	if len(p.FocusAreas) == 0 {
		p.FocusAreas = []string{"full_body"}
	}
}
