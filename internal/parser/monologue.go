package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/quat/dailyvocab/internal/vocab"
)

// Monologue responses follow a fixed three-marker layout. The markers arrive
// with or without markdown bold, so matching tolerates both.
var (
	monologueMarker     = regexp.MustCompile(`(?i)\*{0,2}monologue:\*{0,2}`)
	explanationMarker   = regexp.MustCompile(`(?i)\*{0,2}explanation:\*{0,2}`)
	pronunciationMarker = regexp.MustCompile(`(?i)\*{0,2}pronunciation:\*{0,2}`)
)

// ParseMonologue extracts the narrative body, usage explanation and
// pronunciation note from a monologue response. It returns nil when the
// narrative marker is absent, which callers treat as "no monologue
// available", not as an error.
func (p *Parser) ParseMonologue(raw string) *vocab.Monologue {
	loc := monologueMarker.FindStringIndex(raw)
	if loc == nil {
		return nil
	}
	rest := raw[loc[1]:]

	m := &vocab.Monologue{}

	if exp := explanationMarker.FindStringIndex(rest); exp != nil {
		m.Text = strings.TrimSpace(rest[:exp[0]])
		after := rest[exp[1]:]
		if pron := pronunciationMarker.FindStringIndex(after); pron != nil {
			m.Explanation = strings.TrimSpace(after[:pron[0]])
			m.Pronunciation = trimIPA(after[pron[1]:])
		} else {
			m.Explanation = strings.TrimSpace(after)
		}
	} else if pron := pronunciationMarker.FindStringIndex(rest); pron != nil {
		m.Text = strings.TrimSpace(rest[:pron[0]])
		m.Pronunciation = trimIPA(rest[pron[1]:])
	} else {
		m.Text = strings.TrimSpace(rest)
	}

	if m.Text == "" {
		return nil
	}
	return m
}

// FormatMonologue renders a parsed monologue back into the tagged layout.
// The pipeline appends this to a record's raw explanation so the monologue
// survives in the persisted text and can be re-parsed later.
func FormatMonologue(m *vocab.Monologue) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Monologue:**\n%s", m.Text)
	if m.Explanation != "" {
		fmt.Fprintf(&b, "\n\n**Explanation:**\n%s", m.Explanation)
	}
	if m.Pronunciation != "" {
		fmt.Fprintf(&b, "\n\n**Pronunciation:**\n/%s/", m.Pronunciation)
	}
	return b.String()
}

// trimIPA cleans a pronunciation note down to the bare transcription.
func trimIPA(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	return strings.Trim(s, "/ ")
}
