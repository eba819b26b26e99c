// Package audio converts pipeline text to speech through an external
// synthesis tool. The gateway owns subprocess invocation, timeout
// enforcement and output verification; the orchestrator owns the
// primary/fallback strategy and file placement.
package audio

import "time"

// Purpose is the category of text being synthesized. It selects both the
// speech-rate multiplier and the timeout class: monologue text is an order
// of magnitude longer than anything else, so it gets its own budget.
type Purpose string

const (
	PurposeWord      Purpose = "word"
	PurposeSentence  Purpose = "sentence"
	PurposeMonologue Purpose = "monologue"
	PurposePassage   Purpose = "passage"
)

const (
	shortTimeout     = 30 * time.Second
	monologueTimeout = 200 * time.Second
)

// Timeout returns the synthesis deadline for this purpose.
func (p Purpose) Timeout() time.Duration {
	if p == PurposeMonologue {
		return monologueTimeout
	}
	return shortTimeout
}

// fileSuffix is the purpose's deterministic filename component.
func (p Purpose) fileSuffix() string {
	switch p {
	case PurposeWord:
		return "pronunciation"
	case PurposeMonologue:
		return "monologue"
	case PurposePassage:
		return "passage"
	default:
		return "example"
	}
}

// Speeds holds the per-purpose speech-rate multipliers.
type Speeds struct {
	Word      float64
	Sentence  float64
	Passage   float64
	Monologue float64
}

// DefaultSpeeds returns the standard rate configuration: words are spoken at
// natural pace, longer text slightly faster.
func DefaultSpeeds() Speeds {
	return Speeds{Word: 1.0, Sentence: 1.2, Passage: 1.3, Monologue: 1.25}
}

// For returns the rate multiplier for a purpose, defaulting to the sentence
// rate for anything unknown.
func (s Speeds) For(p Purpose) float64 {
	switch p {
	case PurposeWord:
		return s.Word
	case PurposeSentence:
		return s.Sentence
	case PurposePassage:
		return s.Passage
	case PurposeMonologue:
		return s.Monologue
	default:
		return s.Sentence
	}
}
