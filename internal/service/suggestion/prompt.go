package suggestion

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/pathwise-backend/internal/domain"
)

const goalsNotSpecified = "not specified"

// BuildPrompt renders the completion prompt for in. The response format
// section is what llmoutput.Validate expects back.
func BuildPrompt(in domain.SuggestionInput) string {
	goals := goalsNotSpecified
	if in.Goals != nil && strings.TrimSpace(*in.Goals) != "" {
		goals = strings.TrimSpace(*in.Goals)
	}

	var b strings.Builder
	b.WriteString("You are a career and learning mentor. Recommend concrete next steps for the person described below.\n\n")
	fmt.Fprintf(&b, "Experience level: %s\n", in.ExperienceLevel)
	fmt.Fprintf(&b, "Background:\n%s\n\n", strings.TrimSpace(in.Background))
	fmt.Fprintf(&b, "Goals:\n%s\n\n", goals)
	b.WriteString("Return between 3 and 5 suggestions.\n")
	b.WriteString("Respond with ONLY a JSON object of exactly this form:\n")
	b.WriteString(`{"suggestions":[{"title":"short name","reason":"why it fits this person","action":"first concrete step"}]}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- Every suggestion must have a non-empty title, reason and action.\n")
	b.WriteString("- Do not add any text before or after the JSON object.\n")
	b.WriteString("- Do not wrap the JSON in markdown or code fences.\n")
	return b.String()
}
