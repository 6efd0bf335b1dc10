package catalog

import (
	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
)

// maxResources caps the assembled resource list.
const maxResources = 4

// baseResources are always offered first, in this order.
var baseResources = []string{
	"Beginner's guide to budgeting: https://www.investopedia.com/budgeting-4427755",
	"Emergency fund basics: https://www.investopedia.com/terms/e/emergency_fund.asp",
	"Understanding SIPs and mutual funds: https://www.amfiindia.com/investor-corner",
	"Tax-saving instruments overview: https://cleartax.in/s/80c-deductions",
}

// emotionResources add at most two entries per label.
var emotionResources = map[emotion.Emotion][]string{
	emotion.Anxious: {
		"Managing money anxiety: https://www.mind.org.uk/money",
		"Five-minute financial breathing room exercises",
	},
	emotion.Worried: {
		"Stress-free investing checklist",
		"How emergency funds reduce financial worry",
	},
	emotion.Overwhelmed: {
		"One-page money checklist for busy weeks",
	},
	emotion.Sad: {
		"Small financial wins and why they matter",
	},
	emotion.Excited: {
		"Due-diligence checklist before a new investment",
	},
	emotion.Confident: {
		"Portfolio rebalancing primer",
	},
}

// ResourcesFor concatenates the base list with the emotion-specific entries
// and truncates to four, preserving base-list priority. The profile is part
// of the contract for future locale-aware filtering; assembly itself is
// profile-independent today.
func ResourcesFor(e emotion.Emotion, _ profile.UserProfile) []string {
	out := make([]string, 0, maxResources)
	out = append(out, baseResources...)

	extra, ok := emotionResources[e]
	if !ok {
		extra = emotionResources[emotion.Neutral]
	}
	out = append(out, extra...)

	if len(out) > maxResources {
		out = out[:maxResources]
	}
	return out
}
