package advice

import "fin-advisory/internal/advisory/emotion"

// AdvisoryResponse is the sole output artifact of the pipeline. It is
// created fresh per request and carries no persisted identity. A fallback
// advisory is indistinguishable from a generated one at this level.
type AdvisoryResponse struct {
	Advice      string          `json:"advice"`
	Emotion     emotion.Emotion `json:"emotion"`
	Suggestions []string        `json:"suggestions"`
	Resources   []string        `json:"resources"`
	Entities    []string        `json:"entities"`
}
