// Package vocab defines the data types shared by the daily vocabulary
// pipeline: the per-word record assembled from parsed AI output and audio
// references, and the parsed monologue content.
package vocab

// Record is the fully assembled output for one word. Word is always
// non-empty; every other field is optional and an absent field never stops a
// record from flowing through the pipeline. RawExplanation keeps the verbatim
// model output even when parsing recovered nothing from it.
type Record struct {
	Word             string
	Pronunciation    string
	PartOfSpeech     string
	SimpleDefinition string
	AdvancedDef      string
	Examples         []string
	Collocations     string
	Synonyms         string
	Antonyms         string
	ConfusedWords    string
	WordFamily       string
	Translation      string
	RawExplanation   string

	// Audio references. Empty when no clip was produced for the word.
	PronunciationAudioURL  string
	PronunciationAudioPath string
	SecondaryAudioURL      string
	SecondaryAudioPath     string
}

// New returns a record holding only the word and its raw explanation text,
// the minimal state a record can be in.
func New(word, rawExplanation string) *Record {
	return &Record{Word: word, RawExplanation: rawExplanation}
}

// FirstExample returns the first parsed example sentence, or "" if none.
func (r *Record) FirstExample() string {
	if len(r.Examples) > 0 {
		return r.Examples[0]
	}
	return ""
}

// AppendExplanation adds text to the raw explanation without touching what is
// already there. Used to merge monologue output into the record.
func (r *Record) AppendExplanation(text string) {
	if text == "" {
		return
	}
	if r.RawExplanation == "" {
		r.RawExplanation = text
		return
	}
	r.RawExplanation += "\n\n" + text
}

// Monologue is the parsed result of a monologue model call: a narrated
// passage using the target word, how the word is used in it, and an optional
// pronunciation note.
type Monologue struct {
	Text          string
	Explanation   string
	Pronunciation string
}
