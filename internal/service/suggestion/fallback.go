package suggestion

import "github.com/heartmarshall/pathwise-backend/internal/domain"

// Fallback returns the fixed suggestion used when the model output cannot be
// trusted. Each call returns a fresh slice.
func Fallback() []domain.SuggestionItem {
	return []domain.SuggestionItem{{
		Title:  "Strengthen your fundamentals",
		Reason: "Solid core skills make every later step easier, whatever direction you choose.",
		Action: "Pick one foundational topic in your field and spend 30 minutes a day on it for the next two weeks.",
	}}
}
