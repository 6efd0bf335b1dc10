// Package prompt renders the instruction document sent to the generation
// service for advice. Composition is deterministic: same inputs, same text.
package prompt

import (
	"fmt"
	"strings"

	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
)

// NoEntitiesMarker is rendered when the message mentioned no instruments.
const NoEntitiesMarker = "none mentioned"

// Compose builds the counselor prompt from the message, profile, detected
// emotion and extracted entities. No side effects.
func Compose(message string, p profile.UserProfile, detected emotion.Emotion, entities []string) string {
	entityList := NoEntitiesMarker
	if len(entities) > 0 {
		entityList = strings.Join(entities, ", ")
	}

	goals := "none stated"
	if len(p.Goals) > 0 {
		goals = strings.Join(p.Goals, ", ")
	}

	var parts []string
	parts = append(parts, "You are an empathetic financial counselor.")

	parts = append(parts, "\nUser Profile:")
	parts = append(parts, fmt.Sprintf("- Name: %s", p.DisplayName()))
	parts = append(parts, fmt.Sprintf("- Monthly Salary: %.2f", p.Salary))
	parts = append(parts, fmt.Sprintf("- Monthly Expenses: %.2f", p.Expenses))
	parts = append(parts, fmt.Sprintf("- Risk Tolerance: %s", p.RiskTolerance))
	parts = append(parts, fmt.Sprintf("- Target Savings: %.2f", p.TargetSavings))
	parts = append(parts, fmt.Sprintf("- Country: %s", p.Country))
	parts = append(parts, fmt.Sprintf("- Language: %s", p.Language))
	parts = append(parts, fmt.Sprintf("- Life Stage: %s", p.LifeStage))
	parts = append(parts, fmt.Sprintf("- Goals: %s", goals))

	parts = append(parts, fmt.Sprintf("\nDetected Emotion: %s", detected))
	parts = append(parts, fmt.Sprintf("Mentioned Instruments: %s", entityList))
	parts = append(parts, fmt.Sprintf("\nUser Message: %s", message))

	parts = append(parts, "\nInstructions:")
	parts = append(parts, "1. Address the user by name.")
	parts = append(parts, "2. Acknowledge their emotional state.")
	parts = append(parts, "3. Give specific, actionable financial advice.")
	parts = append(parts, "4. Respect their risk tolerance and life stage.")
	parts = append(parts, "5. Reference the mentioned instruments if any.")
	parts = append(parts, "6. Include emotional support alongside the numbers.")
	parts = append(parts, "7. List 2-3 concrete recommendations.")
	parts = append(parts, "8. List 2-3 next steps.")

	parts = append(parts, "\nStructure the response as:")
	parts = append(parts, "- Greeting")
	parts = append(parts, "- Acknowledgment")
	parts = append(parts, "- Advice body")
	parts = append(parts, "- Recommendations (bulleted)")
	parts = append(parts, "- Next Steps (numbered)")
	parts = append(parts, fmt.Sprintf("- Closing reassurance that speaks to feeling %s", detected))

	return strings.Join(parts, "\n")
}
