// Package advice turns a composed prompt into the final advisory text, with
// a deterministic profile-arithmetic fallback when the generation service is
// unavailable or returns nothing usable.
package advice

import (
	"context"

	"fin-advisory/internal/advisory/catalog"
	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/profile"
	"fin-advisory/internal/advisory/prompt"
	"fin-advisory/internal/common/genai"
	"fin-advisory/internal/common/logger"
	"fin-advisory/internal/common/metrics"
)

// Generation sampling bounds. One call, no retries: a late advisory has no
// advantage over an immediate safe fallback.
var generationOptions = genai.Options{
	Temperature:     0.7,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 1024,
}

type Generator struct {
	client genai.Client
	logger logger.Logger
}

func NewGenerator(client genai.Client, log logger.Logger) *Generator {
	return &Generator{
		client: client,
		logger: log.With(map[string]interface{}{
			"component": "advice-generator",
		}),
	}
}

// Generate produces a complete AdvisoryResponse. It never returns an error:
// any generation failure routes to the fallback text, and the response is
// assembled identically either way. usedFallback reports which path served
// the advice for metrics and auditing; the response itself carries no such
// marker, so upstream consumers cannot tell the difference.
func (g *Generator) Generate(ctx context.Context, message string, p profile.UserProfile, detected emotion.Emotion, entities []string) (response AdvisoryResponse, usedFallback bool) {
	promptText := prompt.Compose(message, p, detected, entities)

	text, ok := g.generateText(ctx, promptText)
	if !ok {
		metrics.AdvisoryFallbacks.WithLabelValues("generation_failed").Inc()
		text = Fallback(p, detected)
	}

	if entities == nil {
		entities = []string{}
	}

	return AdvisoryResponse{
		Advice:      text,
		Emotion:     detected,
		Suggestions: catalog.SuggestionsFor(detected),
		Resources:   catalog.ResourcesFor(detected, p),
		Entities:    entities,
	}, !ok
}

func (g *Generator) generateText(ctx context.Context, promptText string) (string, bool) {
	result, err := g.client.Generate(ctx, promptText, generationOptions)
	if err != nil {
		metrics.GenAICalls.WithLabelValues("generate", "error").Inc()
		g.logger.Warn("generation failed, serving fallback advice", map[string]interface{}{
			"error": err.Error(),
		})
		return "", false
	}
	metrics.GenAICalls.WithLabelValues("generate", "ok").Inc()

	text, ok := result.FirstText()
	if !ok {
		g.logger.Warn("generation returned no candidate text, serving fallback advice", nil)
		return "", false
	}

	return text, true
}
