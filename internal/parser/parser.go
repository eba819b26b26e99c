// Package parser turns free-form model output into typed vocabulary records.
//
// The model is asked to follow a labeled section layout (pronunciation, part
// of speech, definitions, numbered examples, ...) but its output drifts, so
// parsing is best effort: every section that cannot be located is simply left
// unset. Parse never fails; the worst case is a record carrying only the word
// and the verbatim raw text.
package parser

import (
	"regexp"
	"strings"

	"github.com/quat/dailyvocab/internal/vocab"
)

// Parser extracts vocabulary record fields from raw model text. It is
// stateless and safe for concurrent use.
type Parser struct{}

// New returns a ready Parser.
func New() *Parser {
	return &Parser{}
}

// section identifiers, in no particular order.
const (
	secPronunciation = "pronunciation"
	secPartOfSpeech  = "part_of_speech"
	secSimpleDef     = "simple_definition"
	secAdvancedDef   = "advanced_definition"
	secExamples      = "examples"
	secCollocations  = "collocations"
	secSynonyms      = "synonyms"
	secAntonyms      = "antonyms"
	secConfused      = "confused"
	secWordFamily    = "word_family"
	secTranslation   = "translation"
)

// sectionLabels maps each known label heading to its section. Longer labels
// come first in the scan pattern so "ipa pronunciation" beats "pronunciation".
var sectionLabels = []struct {
	section string
	pattern string
}{
	{secPronunciation, `ipa pronunciation`},
	{secPartOfSpeech, `part of speech`},
	{secSimpleDef, `simple definition`},
	{secAdvancedDef, `advanced definition`},
	{secExamples, `example sentences?`},
	{secCollocations, `(?:common )?collocations(?: and fixed expressions)?`},
	{secSynonyms, `synonyms(?: & antonyms)?`},
	{secAntonyms, `antonyms`},
	{secConfused, `(?:commonly )?confused words?`},
	{secWordFamily, `word family`},
	{secTranslation, `(?:vietnamese )?translation`},
	{secPronunciation, `pronunciation`},
}

// labelPattern matches a section heading line: optional markdown decoration
// and numbering around one of the known labels, terminated by a colon.
var labelPattern = func() *regexp.Regexp {
	alts := make([]string, len(sectionLabels))
	for i, l := range sectionLabels {
		alts[i] = `(` + l.pattern + `)`
	}
	return regexp.MustCompile(`(?im)^[ \t]*(?:\*\*|##+\s*)?(?:\d+\.\s*)?(?:` +
		strings.Join(alts, "|") + `)[^\n:]*:?\*{0,2}[ \t]*`)
}()

var (
	ipaPattern      = regexp.MustCompile(`/[^/\n]+/`)
	numberedExample = regexp.MustCompile(`(?m)^\s*(?:\d+\.|[-*•])\s*(.+?)\s*$`)
	quotedExample   = regexp.MustCompile(`(?:\*|\d+\.|-)\s*"([^"]+)"`)
)

const maxExamples = 5

// Parse converts raw model output for word into a vocabulary record. The raw
// text is always retained on the record unmodified.
func (p *Parser) Parse(word, raw string) *vocab.Record {
	rec := vocab.New(word, raw)
	if strings.TrimSpace(raw) == "" {
		return rec
	}

	sections := splitSections(raw)

	rec.Pronunciation = extractIPA(sections[secPronunciation], raw)
	rec.PartOfSpeech = firstLine(sections[secPartOfSpeech])
	rec.SimpleDefinition = firstLine(sections[secSimpleDef])
	rec.AdvancedDef = CleanText(sections[secAdvancedDef])
	rec.Examples = extractExamples(sections[secExamples], raw)
	rec.Collocations = CleanText(sections[secCollocations])
	rec.Synonyms = CleanText(sections[secSynonyms])
	rec.Antonyms = CleanText(sections[secAntonyms])
	rec.ConfusedWords = CleanText(sections[secConfused])
	rec.WordFamily = CleanText(sections[secWordFamily])
	rec.Translation = CleanText(sections[secTranslation])

	return rec
}

// splitSections locates every known label heading and maps each section to
// the span between its heading and the next heading (or end of text).
// Only the first occurrence of a section wins.
func splitSections(text string) map[string]string {
	matches := labelPattern.FindAllStringSubmatchIndex(text, -1)
	sections := make(map[string]string, len(matches))

	for i, m := range matches {
		section := matchedSection(m)
		if section == "" {
			continue
		}
		start := m[1] // end of the heading match
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		if _, seen := sections[section]; !seen {
			sections[section] = strings.TrimSpace(text[start:end])
		}
	}
	return sections
}

// matchedSection maps the submatch indices of a labelPattern match back to
// the section whose alternative fired.
func matchedSection(m []int) string {
	// Submatch k occupies m[2k], m[2k+1]; group 1 is the first label.
	for k := 1; k <= len(sectionLabels); k++ {
		if 2*k+1 < len(m) && m[2*k] >= 0 {
			return sectionLabels[k-1].section
		}
	}
	return ""
}

// extractIPA pulls a /slash-delimited/ transcription out of the pronunciation
// section, falling back to the first such span anywhere in the text.
func extractIPA(section, whole string) string {
	if ipa := ipaPattern.FindString(section); ipa != "" {
		return ipa
	}
	return ipaPattern.FindString(whole)
}

// extractExamples yields the ordered example sentences. Numbered or bulleted
// lines in the examples section are preferred; quoted sentences anywhere in
// the text are the fallback the original layout sometimes produces.
func extractExamples(section, whole string) []string {
	var out []string
	for _, m := range numberedExample.FindAllStringSubmatch(section, -1) {
		s := CleanText(m[1])
		s = strings.Trim(s, `"`)
		if s != "" {
			out = append(out, s)
		}
		if len(out) >= maxExamples {
			return out
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, m := range quotedExample.FindAllStringSubmatch(whole, -1) {
		if s := CleanText(m[1]); s != "" {
			out = append(out, s)
		}
		if len(out) >= maxExamples {
			break
		}
	}
	return out
}

// firstLine returns the cleaned first non-empty line of a section. Used for
// fields that are single values rather than prose.
func firstLine(section string) string {
	for _, line := range strings.Split(section, "\n") {
		if s := CleanText(line); s != "" {
			return s
		}
	}
	return ""
}
