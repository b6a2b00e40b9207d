package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/claude/planfit/internal/models"
)

// parsePlan extracts a WorkoutPlan from free-form LLM output. It strips
// markdown code fences, tries the substring between the first '{' and the
// last '}', then the whole stripped text, and finally a jsonrepair pass over
// the candidate before giving up.
func parsePlan(text string) (models.WorkoutPlan, error) {
	stripped := stripFences(text)

	candidate := stripped
	start := strings.Index(stripped, "{")
	end := strings.LastIndex(stripped, "}")
	if start != -1 && end > start {
		candidate = stripped[start : end+1]
	}

	var plan models.WorkoutPlan
	if err := json.Unmarshal([]byte(candidate), &plan); err == nil {
		return plan, nil
	}
	if err := json.Unmarshal([]byte(stripped), &plan); err == nil {
		return plan, nil
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("generator: no JSON object in output: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &plan); err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("generator: parse repaired output: %w", err)
	}
	return plan, nil
}

// stripFences removes markdown code-fence markers from LLM output.
func stripFences(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	return strings.TrimSpace(text)
}
