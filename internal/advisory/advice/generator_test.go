package advice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"fin-advisory/internal/advisory/catalog"
	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
	"fin-advisory/internal/common/genai"
	"fin-advisory/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

type fakeGenAI struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (f *fakeGenAI) Generate(_ context.Context, prompt string, opts genai.Options) (*genai.Result, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return nil, f.err
	}
	return &genai.Result{Candidates: []genai.Candidate{{Text: f.text}}}, nil
}

func createTestGenerator(t *testing.T, client genai.Client) *Generator {
	return NewGenerator(client, logger.NewTestLogger(t))
}

func createTestProfile() profile.UserProfile {
	return profile.UserProfile{
		Name:          "Asha",
		Salary:        50000,
		Expenses:      30000,
		RiskTolerance: profile.RiskModerate,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestGenerator_Generate_Success(t *testing.T) {
	client := &fakeGenAI{text: "Here is tailored advice."}
	generator := createTestGenerator(t, client)

	got, usedFallback := generator.Generate(
		context.Background(),
		"I'm worried about my SIP",
		createTestProfile(),
		emotion.Worried,
		[]string{"SIP"},
	)

	assert.False(t, usedFallback)
	assert.Equal(t, "Here is tailored advice.", got.Advice)
	assert.Equal(t, emotion.Worried, got.Emotion)
	assert.Equal(t, []string{"SIP"}, got.Entities)
	assert.Equal(t, catalog.SuggestionsFor(emotion.Worried), got.Suggestions)
	assert.Equal(t, catalog.ResourcesFor(emotion.Worried, createTestProfile()), got.Resources)
	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.prompts[0], "I'm worried about my SIP")
}

func TestGenerator_Generate_FailureServesFallback(t *testing.T) {
	tests := []struct {
		name string
		err  error
		text string
	}{
		{
			name: "transport failure",
			err:  genai.ErrGenerationFailed,
		},
		{
			name: "timeout",
			err:  genai.ErrTimeout,
		},
		{
			name: "empty candidate text",
			text: "   \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeGenAI{text: tt.text, err: tt.err}
			generator := createTestGenerator(t, client)
			p := createTestProfile()

			got, usedFallback := generator.Generate(
				context.Background(), "help me plan", p, emotion.Anxious, nil)

			assert.True(t, usedFallback)
			assert.Equal(t, Fallback(p, emotion.Anxious), got.Advice)
			assert.Equal(t, emotion.Anxious, got.Emotion)
			// A nil entity slice still serializes as an empty list.
			assert.Equal(t, []string{}, got.Entities)
			assert.Equal(t, catalog.SuggestionsFor(emotion.Anxious), got.Suggestions)
			assert.Equal(t, 1, client.calls)
		})
	}
}

func TestGenerator_Generate_NoRetryOnFailure(t *testing.T) {
	client := &fakeGenAI{err: genai.ErrGenerationFailed}
	generator := createTestGenerator(t, client)

	generator.Generate(context.Background(), "help", createTestProfile(), emotion.Neutral, nil)

	assert.Equal(t, 1, client.calls)
}
