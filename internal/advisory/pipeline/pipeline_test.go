package pipeline

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fin-advisory/internal/advisory/advice"
	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
	"fin-advisory/internal/audit"
	"fin-advisory/internal/common/genai"
	"fin-advisory/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

// scriptedGenAI returns queued responses in order, then errors. It stands in
// for the generation service behind both the classifier and the generator.
type scriptedGenAI struct {
	mu        sync.Mutex
	responses []string
	err       error
	calls     int
}

func (s *scriptedGenAI) Generate(_ context.Context, _ string, _ genai.Options) (*genai.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if len(s.responses) == 0 {
		return nil, genai.ErrEmptyCandidate
	}
	text := s.responses[0]
	s.responses = s.responses[1:]
	return &genai.Result{Candidates: []genai.Candidate{{Text: text}}}, nil
}

type capturingRecorder struct {
	entries []audit.Entry
}

func (c *capturingRecorder) Record(_ context.Context, e audit.Entry) {
	c.entries = append(c.entries, e)
}

func createTestPipeline(t *testing.T, client genai.Client, opts ...Option) *Pipeline {
	log := logger.NewTestLogger(t)
	return New(
		emotion.NewClassifier(client, log),
		advice.NewGenerator(client, log),
		log,
		opts...,
	)
}

func createTestProfile() profile.UserProfile {
	return profile.UserProfile{
		Name:     "Asha",
		Salary:   50000,
		Expenses: 30000,
	}
}

// ==========================
// Short-Circuit Tests
// ==========================

func TestPipeline_GreetingShortCircuit(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "plain hi", message: "hi"},
		{name: "plain hello", message: "hello"},
		{name: "mixed case with whitespace", message: "  Hello  "},
		{name: "uppercase", message: "HI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedGenAI{}
			p := createTestPipeline(t, client)

			got := p.Advise(context.Background(), tt.message, createTestProfile())

			assert.Equal(t, GreetingReply, got.Advice)
			assert.Equal(t, emotion.Neutral, got.Emotion)
			assert.Len(t, got.Suggestions, 3)
			assert.NotEmpty(t, got.Resources)
			assert.Equal(t, []string{}, got.Entities)
			// No classification, no generation.
			assert.Equal(t, 0, client.calls)
		})
	}
}

func TestPipeline_ThanksShortCircuit(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{name: "thanks", message: "thanks"},
		{name: "thank you", message: "thank you"},
		{name: "mixed case", message: "Thank You"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &scriptedGenAI{}
			p := createTestPipeline(t, client)

			got := p.Advise(context.Background(), tt.message, createTestProfile())

			assert.Equal(t, ThanksReply, got.Advice)
			assert.Equal(t, emotion.Neutral, got.Emotion)
			assert.Equal(t, 0, client.calls)
		})
	}
}

func TestPipeline_GreetingSubstringDoesNotShortCircuit(t *testing.T) {
	client := &scriptedGenAI{responses: []string{"calm", "Good plan ahead."}}
	p := createTestPipeline(t, client)

	got := p.Advise(context.Background(), "hi, what should I do with my bonus?", createTestProfile())

	assert.NotEqual(t, GreetingReply, got.Advice)
	assert.Equal(t, 2, client.calls)
}

// ==========================
// Full Flow Tests
// ==========================

func TestPipeline_GeneratedAdvice(t *testing.T) {
	client := &scriptedGenAI{responses: []string{"worried", "Let's steady the ship together."}}
	recorder := &capturingRecorder{}
	p := createTestPipeline(t, client, WithRecorder(recorder))

	got := p.Advise(context.Background(), "I'm worried about my SIP and PPF investments", createTestProfile())

	assert.Equal(t, "Let's steady the ship together.", got.Advice)
	assert.Equal(t, emotion.Worried, got.Emotion)
	assert.Equal(t, []string{"SIP", "PPF"}, got.Entities)
	assert.Len(t, got.Suggestions, 3)
	// One classify call, one generate call.
	assert.Equal(t, 2, client.calls)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "generated", entry.Outcome)
	assert.Equal(t, "worried", entry.Emotion)
	assert.Equal(t, 2, entry.EntityCount)
	assert.False(t, entry.Fallback)
	assert.NotEmpty(t, entry.RequestID)
}

func TestPipeline_GenerationOutageDegradesGracefully(t *testing.T) {
	client := &scriptedGenAI{err: genai.ErrGenerationFailed}
	recorder := &capturingRecorder{}
	p := createTestPipeline(t, client, WithRecorder(recorder))
	userProfile := createTestProfile()

	got := p.Advise(context.Background(), "I'm worried about my SIP and PPF investments", userProfile)

	// Classification failure coerces to neutral; generation failure serves
	// the deterministic fallback built from profile arithmetic.
	assert.Equal(t, emotion.Neutral, got.Emotion)
	assert.Equal(t, []string{"SIP", "PPF"}, got.Entities)
	assert.Contains(t, got.Advice, "Hi Asha,")
	assert.Contains(t, got.Advice, "20000.00")
	assert.Equal(t, 2, client.calls)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "fallback", recorder.entries[0].Outcome)
	assert.True(t, recorder.entries[0].Fallback)
}

func TestPipeline_ProfileIsNormalizedBeforeUse(t *testing.T) {
	client := &scriptedGenAI{err: genai.ErrGenerationFailed}
	p := createTestPipeline(t, client)

	got := p.Advise(context.Background(), "help me plan", profile.UserProfile{
		Name:     "  Ravi  ",
		Salary:   -1,
		Expenses: -1,
	})

	assert.Contains(t, got.Advice, "Hi Ravi,")
	assert.Contains(t, got.Advice, "surplus is 0.00")
}

// ==========================
// Audit Tests
// ==========================

func TestPipeline_ShortCircuitsAreAudited(t *testing.T) {
	tests := []struct {
		name            string
		message         string
		expectedOutcome string
	}{
		{name: "greeting", message: "hi", expectedOutcome: "greeting"},
		{name: "thanks", message: "thanks", expectedOutcome: "thanks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := &capturingRecorder{}
			p := createTestPipeline(t, &scriptedGenAI{}, WithRecorder(recorder))

			p.Advise(context.Background(), tt.message, createTestProfile())

			require.Len(t, recorder.entries, 1)
			assert.Equal(t, tt.expectedOutcome, recorder.entries[0].Outcome)
			assert.Equal(t, 0, recorder.entries[0].EntityCount)
			assert.False(t, recorder.entries[0].Fallback)
		})
	}
}
