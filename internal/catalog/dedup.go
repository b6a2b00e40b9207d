package catalog

import "github.com/claude/planfit/internal/models"

// Merge concatenates the given lists in argument order and drops every
// record whose name was already seen, keeping the first occurrence. Name
// comparison is case-sensitive exact match.
func Merge(lists ...[]models.ExerciseRecord) []models.ExerciseRecord {
	seen := make(map[string]struct{})
	var merged []models.ExerciseRecord
	for _, list := range lists {
		for _, ex := range list {
			if _, ok := seen[ex.Name]; ok {
				continue
			}
			seen[ex.Name] = struct{}{}
			merged = append(merged, ex)
		}
	}
	return merged
}
