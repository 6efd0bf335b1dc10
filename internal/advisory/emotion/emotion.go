// Package emotion holds the closed emotional-state taxonomy and the LLM
// classifier that maps a chat message onto it.
package emotion

import "strings"

// Emotion is one of the twelve labels the pipeline understands. Anything
// else is coerced to Neutral.
type Emotion string

const (
	Happy       Emotion = "happy"
	Sad         Emotion = "sad"
	Anxious     Emotion = "anxious"
	Angry       Emotion = "angry"
	Excited     Emotion = "excited"
	Calm        Emotion = "calm"
	Neutral     Emotion = "neutral"
	Worried     Emotion = "worried"
	Confident   Emotion = "confident"
	Frustrated  Emotion = "frustrated"
	Hopeful     Emotion = "hopeful"
	Overwhelmed Emotion = "overwhelmed"
)

// All lists every member of the taxonomy in a stable order.
var All = []Emotion{
	Happy, Sad, Anxious, Angry, Excited, Calm,
	Neutral, Worried, Confident, Frustrated, Hopeful, Overwhelmed,
}

var members = func() map[Emotion]struct{} {
	m := make(map[Emotion]struct{}, len(All))
	for _, e := range All {
		m[e] = struct{}{}
	}
	return m
}()

// Parse normalizes a raw label (trim + lowercase) and reports membership.
func Parse(raw string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := members[e]
	return e, ok
}

// String implements fmt.Stringer.
func (e Emotion) String() string {
	return string(e)
}
