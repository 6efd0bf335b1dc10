package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestProfile() profile.UserProfile {
	return profile.UserProfile{
		Name:          "Asha",
		Salary:        50000,
		Expenses:      30000,
		RiskTolerance: profile.RiskModerate,
		TargetSavings: 10000,
		Country:       "IN",
		Language:      "en",
		LifeStage:     "early-career",
		Goals:         []string{"house down payment", "retirement"},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestCompose_RendersEverySection(t *testing.T) {
	got := Compose(
		"I'm worried about my SIP",
		createTestProfile(),
		emotion.Worried,
		[]string{"SIP"},
	)

	assert.True(t, strings.HasPrefix(got, "You are an empathetic financial counselor."))

	assert.Contains(t, got, "- Name: Asha")
	assert.Contains(t, got, "- Monthly Salary: 50000.00")
	assert.Contains(t, got, "- Monthly Expenses: 30000.00")
	assert.Contains(t, got, "- Risk Tolerance: moderate")
	assert.Contains(t, got, "- Target Savings: 10000.00")
	assert.Contains(t, got, "- Goals: house down payment, retirement")

	assert.Contains(t, got, "Detected Emotion: worried")
	assert.Contains(t, got, "Mentioned Instruments: SIP")
	assert.Contains(t, got, "User Message: I'm worried about my SIP")

	// All eight numbered instructions.
	for _, instruction := range []string{
		"1. Address the user by name.",
		"2. Acknowledge their emotional state.",
		"3. Give specific, actionable financial advice.",
		"4. Respect their risk tolerance and life stage.",
		"5. Reference the mentioned instruments if any.",
		"6. Include emotional support alongside the numbers.",
		"7. List 2-3 concrete recommendations.",
		"8. List 2-3 next steps.",
	} {
		assert.Contains(t, got, instruction)
	}

	assert.Contains(t, got, "Structure the response as:")
	assert.Contains(t, got, "- Recommendations (bulleted)")
	assert.Contains(t, got, "- Next Steps (numbered)")
	assert.Contains(t, got, "feeling worried")
}

func TestCompose_EmptyEntitiesUseMarker(t *testing.T) {
	got := Compose("hello there", createTestProfile(), emotion.Neutral, nil)

	assert.Contains(t, got, "Mentioned Instruments: "+NoEntitiesMarker)
}

func TestCompose_MissingNameAndGoals(t *testing.T) {
	got := Compose("help me save", profile.UserProfile{}, emotion.Neutral, nil)

	assert.Contains(t, got, "- Name: there")
	assert.Contains(t, got, "- Goals: none stated")
}

// ==========================
// Determinism Tests
// ==========================

func TestCompose_IsDeterministic(t *testing.T) {
	p := createTestProfile()
	entities := []string{"SIP", "gold"}

	first := Compose("same message", p, emotion.Anxious, entities)
	second := Compose("same message", p, emotion.Anxious, entities)

	assert.Equal(t, first, second)
}
