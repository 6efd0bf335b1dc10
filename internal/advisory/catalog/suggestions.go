// Package catalog holds the static suggestion and resource tables keyed by
// emotion. Tables are immutable; lookups never fail and unknown labels fall
// back to the neutral entry.
package catalog

import "fin-advisory/internal/advisory/emotion"

var suggestions = map[emotion.Emotion][]string{
	emotion.Happy: {
		"Want to put this month's surplus to work?",
		"Should we review your investment mix while things feel good?",
		"Interested in setting a stretch savings goal?",
	},
	emotion.Sad: {
		"Would it help to look at one small win in your finances?",
		"Want me to break your goals into smaller steps?",
		"Should we review just the essentials for now?",
	},
	emotion.Anxious: {
		"Want to check how many months your emergency fund covers?",
		"Should we walk through your fixed expenses together?",
		"Would a simple weekly budget reduce the uncertainty?",
	},
	emotion.Angry: {
		"Want to review the charges that frustrated you?",
		"Should we compare alternatives with lower fees?",
		"Would it help to set an alert for unusual spending?",
	},
	emotion.Excited: {
		"Want to channel that energy into a new investment plan?",
		"Should we compare a few growth options?",
		"Interested in increasing your monthly contribution?",
	},
	emotion.Calm: {
		"Want a quick health check of your portfolio?",
		"Should we look at long-term goals while things are steady?",
		"Interested in automating your savings?",
	},
	emotion.Neutral: {
		"Want a summary of your current financial position?",
		"Should we review your monthly budget?",
		"Interested in learning about one new instrument today?",
	},
	emotion.Worried: {
		"Want to see exactly where your money went last month?",
		"Should we size up your emergency fund first?",
		"Would a conservative plan ease the worry?",
	},
	emotion.Confident: {
		"Ready to review higher-growth options?",
		"Want to rebalance toward your target allocation?",
		"Should we raise your monthly investment amount?",
	},
	emotion.Frustrated: {
		"Want to simplify your accounts down to the essentials?",
		"Should we list what is and isn't working right now?",
		"Would switching to an automated plan help?",
	},
	emotion.Hopeful: {
		"Want to turn that hope into a dated savings goal?",
		"Should we map the first step toward your biggest goal?",
		"Interested in a starter investment plan?",
	},
	emotion.Overwhelmed: {
		"Want to focus on just one money task this week?",
		"Should I pick the single highest-impact change for you?",
		"Would a short checklist make this manageable?",
	},
}

// SuggestionsFor returns up to three follow-up questions for the emotion.
// Unknown labels defensively return the neutral entry.
func SuggestionsFor(e emotion.Emotion) []string {
	entry, ok := suggestions[e]
	if !ok {
		entry = suggestions[emotion.Neutral]
	}
	out := make([]string, len(entry))
	copy(out, entry)
	return out
}
