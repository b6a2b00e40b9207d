package models

// Difficulty levels used by the exercise catalog and user profiles.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// ExerciseRecord is a single exercise as returned by the catalog.
// Records are immutable once fetched.
type ExerciseRecord struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}
