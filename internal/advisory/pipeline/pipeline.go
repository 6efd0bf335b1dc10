// Package pipeline orchestrates the advisory flow: classify, extract,
// generate (with fallback), attach catalogs. One Advise call is a stateless
// unit of work; concurrent calls need no coordination.
package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"fin-advisory/internal/advisory/advice"
	"fin-advisory/internal/advisory/catalog"
	"fin-advisory/internal/advisory/emotion"
	"fin-advisory/internal/advisory/entities"
	"fin-advisory/internal/advisory/profile"
	"fin-advisory/internal/audit"
	"fin-advisory/internal/common/logger"
	"fin-advisory/internal/common/metrics"
	"fin-advisory/internal/common/observability"
)

// Canned replies for the literal-greeting and thanks short circuits.
const (
	GreetingReply = "Hello! I'm your financial advisor. How are you feeling about your finances today?"
	ThanksReply   = "You're welcome! I'm always here to help you with your financial journey."
)

// Classifier is the emotion capability consumed by the pipeline.
type Classifier interface {
	Classify(ctx context.Context, message string) emotion.Emotion
}

// Generator is the advice capability consumed by the pipeline. The second
// return value reports whether the deterministic fallback served the advice;
// it feeds metrics and auditing only and never reaches the caller.
type Generator interface {
	Generate(ctx context.Context, message string, p profile.UserProfile, detected emotion.Emotion, ents []string) (advice.AdvisoryResponse, bool)
}

type Pipeline struct {
	classifier Classifier
	generator  Generator
	recorder   audit.Recorder
	tracing    *observability.Tracing
	obs        *observability.Observability
	logger     logger.Logger
}

type Option func(*Pipeline)

// WithRecorder attaches a best-effort audit recorder.
func WithRecorder(r audit.Recorder) Option {
	return func(p *Pipeline) { p.recorder = r }
}

// WithObservability attaches otel metrics and tracing.
func WithObservability(obs *observability.Observability, tracing *observability.Tracing) Option {
	return func(p *Pipeline) {
		p.obs = obs
		p.tracing = tracing
	}
}

func New(classifier Classifier, generator Generator, log logger.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		classifier: classifier,
		generator:  generator,
		recorder:   audit.NopRecorder{},
		logger: log.With(map[string]interface{}{
			"component": "advisory-pipeline",
		}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Advise runs the full pipeline for one message + profile. It never returns
// an error for well-formed input: every internal failure degrades to a
// fallback path inside the components.
func (p *Pipeline) Advise(ctx context.Context, message string, userProfile profile.UserProfile) advice.AdvisoryResponse {
	start := time.Now()
	requestID := uuid.NewString()
	userProfile = profile.Normalize(userProfile)

	ctx, span := p.tracing.StartSpan(ctx, "pipeline.advise",
		attribute.String("request.id", requestID))
	defer span.End()

	if reply, outcome, ok := cannedReply(message); ok {
		p.finish(ctx, requestID, outcome, emotion.Neutral, 0, false, start)
		return advice.AdvisoryResponse{
			Advice:      reply,
			Emotion:     emotion.Neutral,
			Suggestions: catalog.SuggestionsFor(emotion.Neutral),
			Resources:   catalog.ResourcesFor(emotion.Neutral, userProfile),
			Entities:    []string{},
		}
	}

	// Classification and extraction have no dependency on each other.
	_, classifySpan := p.tracing.StartSpan(ctx, "pipeline.classify")
	detected := p.classifier.Classify(ctx, message)
	classifySpan.End()

	_, extractSpan := p.tracing.StartSpan(ctx, "pipeline.extract")
	ents := entities.Extract(message)
	extractSpan.End()

	_, generateSpan := p.tracing.StartSpan(ctx, "pipeline.generate",
		attribute.String("emotion", string(detected)),
		attribute.Int("entity.count", len(ents)))
	response, usedFallback := p.generator.Generate(ctx, message, userProfile, detected, ents)
	generateSpan.End()

	outcome := "generated"
	if usedFallback {
		outcome = "fallback"
	}

	p.logger.Info("advisory produced", map[string]interface{}{
		"requestId":   requestID,
		"emotion":     string(detected),
		"entityCount": len(ents),
		"outcome":     outcome,
		"durationMs":  time.Since(start).Milliseconds(),
	})

	p.finish(ctx, requestID, outcome, detected, len(ents), usedFallback, start)
	return response
}

func (p *Pipeline) finish(ctx context.Context, requestID, outcome string, detected emotion.Emotion, entityCount int, usedFallback bool, start time.Time) {
	elapsed := time.Since(start)

	metrics.AdvisoryRequests.WithLabelValues(outcome).Inc()
	metrics.AdvisoryDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())

	if p.obs != nil {
		p.obs.RecordAdvisory(ctx, outcome)
		p.obs.RecordAdvisoryDuration(ctx, elapsed, outcome)
		if usedFallback {
			p.obs.RecordFallback(ctx, "generation_failed")
		}
	}

	p.recorder.Record(ctx, audit.Entry{
		RequestID:   requestID,
		Emotion:     string(detected),
		EntityCount: entityCount,
		Fallback:    usedFallback,
		Outcome:     outcome,
		Duration:    elapsed,
	})
}

// cannedReply matches the literal greeting/thanks messages, case- and
// whitespace-insensitively.
func cannedReply(message string) (reply, outcome string, ok bool) {
	switch strings.ToLower(strings.TrimSpace(message)) {
	case "hi", "hello":
		return GreetingReply, "greeting", true
	case "thanks", "thank you":
		return ThanksReply, "thanks", true
	default:
		return "", "", false
	}
}
