package vocab

import "testing"

func TestNew(t *testing.T) {
	r := New("eloquent", "some raw text")
	if r.Word != "eloquent" {
		t.Errorf("Word = %q", r.Word)
	}
	if r.RawExplanation != "some raw text" {
		t.Errorf("RawExplanation = %q", r.RawExplanation)
	}
}

func TestFirstExample(t *testing.T) {
	r := New("w", "")
	if r.FirstExample() != "" {
		t.Error("expected empty first example")
	}
	r.Examples = []string{"first", "second"}
	if r.FirstExample() != "first" {
		t.Errorf("FirstExample() = %q, want %q", r.FirstExample(), "first")
	}
}

func TestAppendExplanation(t *testing.T) {
	r := New("w", "original")
	r.AppendExplanation("appended")
	if r.RawExplanation != "original\n\nappended" {
		t.Errorf("RawExplanation = %q", r.RawExplanation)
	}

	// Empty append is a no-op.
	r.AppendExplanation("")
	if r.RawExplanation != "original\n\nappended" {
		t.Error("empty append must not modify the text")
	}
}

func TestAppendExplanationToEmpty(t *testing.T) {
	r := New("w", "")
	r.AppendExplanation("only text")
	if r.RawExplanation != "only text" {
		t.Errorf("RawExplanation = %q", r.RawExplanation)
	}
}
