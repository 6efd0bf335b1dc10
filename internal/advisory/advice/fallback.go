package advice

import (
	"fmt"
	"strings"

	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
)

const (
	emergencyFundMonths  = 6
	investmentRate       = 0.3
	maxMonthlyInvestment = 5000.0
)

// Fallback computes templated advice purely from profile arithmetic. It is
// unconditionally safe: no division, no optional dereference, and a negative
// surplus is shown rather than hidden.
func Fallback(p profile.UserProfile, detected emotion.Emotion) string {
	surplus := p.Surplus()
	emergencyFund := emergencyFundMonths * p.Expenses

	monthlyInvestment := investmentRate * surplus
	if monthlyInvestment > maxMonthlyInvestment {
		monthlyInvestment = maxMonthlyInvestment
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("Hi %s,", p.DisplayName()))
	parts = append(parts, fmt.Sprintf(
		"Based on your profile, your monthly surplus is %.2f (salary %.2f minus expenses %.2f).",
		surplus, p.Salary, p.Expenses,
	))

	if surplus > 0 {
		parts = append(parts, fmt.Sprintf(
			"A systematic monthly investment of about %.2f would fit comfortably within that surplus.",
			monthlyInvestment,
		))
	} else {
		// The computed amount is emitted as-is even when non-positive; the
		// overspend itself is the signal the user needs to see.
		parts = append(parts, fmt.Sprintf(
			"Right now the computed room for a systematic monthly investment is %.2f, so the first priority is bringing expenses below income before investing.",
			monthlyInvestment,
		))
	}

	parts = append(parts, fmt.Sprintf(
		"Aim to build an emergency fund of around %.2f, which covers %d months of your expenses.",
		emergencyFund, emergencyFundMonths,
	))
	parts = append(parts, "As a next step, look into tax-advantaged instruments such as ELSS or PPF for long-term savings.")
	parts = append(parts, fmt.Sprintf(
		"Whatever you're feeling %s about today, small consistent steps will get you there.",
		detected,
	))

	return strings.Join(parts, " ")
}
