package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
)

// ==========================
// Suggestion Tests
// ==========================

func TestSuggestionsFor_EveryEmotionHasThree(t *testing.T) {
	for _, e := range emotion.All {
		t.Run(string(e), func(t *testing.T) {
			got := SuggestionsFor(e)
			assert.Len(t, got, 3)
			for _, s := range got {
				assert.NotEmpty(t, s)
			}
		})
	}
}

func TestSuggestionsFor_UnknownFallsBackToNeutral(t *testing.T) {
	got := SuggestionsFor(emotion.Emotion("bewildered"))

	assert.Equal(t, SuggestionsFor(emotion.Neutral), got)
}

func TestSuggestionsFor_ReturnsACopy(t *testing.T) {
	first := SuggestionsFor(emotion.Happy)
	first[0] = "mutated"

	second := SuggestionsFor(emotion.Happy)
	assert.NotEqual(t, "mutated", second[0])
}

// ==========================
// Resource Tests
// ==========================

func TestResourcesFor_NeverExceedsFour(t *testing.T) {
	for _, e := range emotion.All {
		t.Run(string(e), func(t *testing.T) {
			got := ResourcesFor(e, profile.UserProfile{})
			assert.LessOrEqual(t, len(got), 4)
			assert.NotEmpty(t, got)
		})
	}
}

func TestResourcesFor_BaseListComesFirst(t *testing.T) {
	got := ResourcesFor(emotion.Anxious, profile.UserProfile{})

	// The base list alone already fills the cap, so base entries always win
	// the truncation.
	assert.Equal(t, baseResources, got)
}

func TestResourcesFor_UnknownFallsBackToNeutral(t *testing.T) {
	got := ResourcesFor(emotion.Emotion("bewildered"), profile.UserProfile{})

	assert.Equal(t, ResourcesFor(emotion.Neutral, profile.UserProfile{}), got)
}
