package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/quat/dailyvocab/internal/vocab"
)

// The digest layout is deliberately plain; the pipeline's contract is the
// record content, not the styling.
var digestTemplate = template.Must(template.New("digest").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; max-width: 720px; margin: 0 auto;">
<h1>Daily English Vocabulary — {{.Date}}</h1>
<p>{{len .Records}} word(s) today.</p>
{{range .Records}}
<div style="border-top: 1px solid #ccc; padding: 12px 0;">
  <h2>{{.Word}}{{if .Pronunciation}} <small>{{.Pronunciation}}</small>{{end}}</h2>
  {{if .PartOfSpeech}}<p><em>{{.PartOfSpeech}}</em></p>{{end}}
  {{if .SimpleDefinition}}<p><strong>Definition:</strong> {{.SimpleDefinition}}</p>{{end}}
  {{if .Examples}}<ol>{{range .Examples}}<li>{{.}}</li>{{end}}</ol>{{end}}
  {{if .Translation}}<p><strong>Translation:</strong> {{.Translation}}</p>{{end}}
  {{if .PronunciationAudioURL}}<p><a href="{{.PronunciationAudioURL}}">Pronunciation audio</a></p>{{end}}
  {{if .SecondaryAudioURL}}<p><a href="{{.SecondaryAudioURL}}">Listening audio</a></p>{{end}}
</div>
{{end}}
</body>
</html>
`))

// renderDigest produces the HTML body for a run's records.
func renderDigest(records []*vocab.Record, day time.Time) (string, error) {
	var buf bytes.Buffer
	err := digestTemplate.Execute(&buf, struct {
		Date    string
		Records []*vocab.Record
	}{
		Date:    day.Format("Monday, January 02, 2006"),
		Records: records,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render digest: %w", err)
	}
	return buf.String(), nil
}
