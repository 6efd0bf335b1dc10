package emotion

import (
	"context"
	"fmt"
	"strings"

	"fin-advisory/internal/common/genai"
	"fin-advisory/internal/common/logger"
	"fin-advisory/internal/common/metrics"
)

// Classifier asks the generation service for a single emotion token.
// Classification failure is absorbed, never surfaced: any transport error,
// empty candidate or out-of-taxonomy token degrades to Neutral.
type Classifier struct {
	client genai.Client
	logger logger.Logger
}

func NewClassifier(client genai.Client, log logger.Logger) *Classifier {
	return &Classifier{
		client: client,
		logger: log.With(map[string]interface{}{
			"component": "emotion-classifier",
		}),
	}
}

// Classify returns the detected emotion for a message. It never returns an
// error.
func (c *Classifier) Classify(ctx context.Context, message string) Emotion {
	prompt := c.buildPrompt(message)

	result, err := c.client.Generate(ctx, prompt, genai.Options{
		Temperature:     0.0,
		MaxOutputTokens: 8,
	})
	if err != nil {
		metrics.GenAICalls.WithLabelValues("classify", "error").Inc()
		c.logger.Warn("classification degraded to neutral", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.EmotionClassifications.WithLabelValues(string(Neutral)).Inc()
		return Neutral
	}
	metrics.GenAICalls.WithLabelValues("classify", "ok").Inc()

	text, ok := result.FirstText()
	if !ok {
		metrics.EmotionClassifications.WithLabelValues(string(Neutral)).Inc()
		return Neutral
	}

	label, ok := Parse(text)
	if !ok {
		c.logger.Warn("classifier returned out-of-taxonomy label", map[string]interface{}{
			"label": text,
		})
		metrics.EmotionClassifications.WithLabelValues(string(Neutral)).Inc()
		return Neutral
	}

	metrics.EmotionClassifications.WithLabelValues(string(label)).Inc()
	return label
}

func (c *Classifier) buildPrompt(message string) string {
	tokens := make([]string, 0, len(All))
	for _, e := range All {
		tokens = append(tokens, string(e))
	}

	var parts []string
	parts = append(parts, "Classify the emotional state of the following message about personal finances.")
	parts = append(parts, fmt.Sprintf("Respond with exactly one word from this list: %s.", strings.Join(tokens, ", ")))
	parts = append(parts, "Do not explain. Do not add punctuation.")
	parts = append(parts, fmt.Sprintf("\nMessage: %s", message))

	return strings.Join(parts, "\n")
}
