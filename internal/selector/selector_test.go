package selector

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

// stubSource serves canned candidate lists.
type stubSource struct {
	mixed      []string
	mixedErr   error
	bucket     []string
	mixedCalls int
}

func (s *stubSource) Words(_ context.Context, _ Level, _ Category, count int) ([]string, error) {
	out := s.bucket
	if count < len(out) {
		out = out[:count]
	}
	return append([]string(nil), out...), nil
}

func (s *stubSource) Mixed(_ context.Context, count int) ([]string, error) {
	s.mixedCalls++
	if s.mixedErr != nil {
		return nil, s.mixedErr
	}
	out := s.mixed
	if count < len(out) {
		out = out[:count]
	}
	return append([]string(nil), out...), nil
}

func usedSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[strings.ToLower(w)] = struct{}{}
	}
	return m
}

func TestSelectFreshAvoidsHistory(t *testing.T) {
	src := &stubSource{mixed: []string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet",
		"kilo", "lima", "mike", "november", "oscar",
		"papa", "quebec", "romeo", "sierra", "tango",
	}}
	used := usedSet("alpha", "bravo", "charlie")

	got := New(src, nil).Select(context.Background(), 5, 0, used)
	if len(got) != 5 {
		t.Fatalf("got %d words, want 5: %v", len(got), got)
	}
	for _, w := range got {
		if _, ok := used[strings.ToLower(w)]; ok {
			t.Errorf("selected word %q is already in history", w)
		}
	}
}

func TestSelectNoDuplicates(t *testing.T) {
	// The source repeats itself; the selection must not.
	src := &stubSource{mixed: []string{
		"alpha", "alpha", "ALPHA", "bravo", "bravo",
		"charlie", "delta", "echo", "foxtrot", "golf",
		"hotel", "india", "juliet", "kilo", "lima",
		"mike", "november", "oscar", "papa", "quebec",
	}}

	got := New(src, nil).Select(context.Background(), 10, 0, nil)
	seen := make(map[string]struct{})
	for _, w := range got {
		key := strings.ToLower(w)
		if _, dup := seen[key]; dup {
			t.Errorf("duplicate word %q in selection", w)
		}
		seen[key] = struct{}{}
	}
}

func TestSelectReviewsComeFromHistory(t *testing.T) {
	src := &stubSource{mixed: []string{
		"new1word", "new2word", "new3word", "new4word", "new5word",
		"new6word", "new7word", "new8word", "new9word", "newaword",
		"newbword", "newcword", "newdword", "neweword", "newfword",
		"newgword", "newhword", "newiword", "newjword", "newkword",
	}}
	used := usedSet("oldone", "oldtwo", "oldthree", "oldfour")

	got := New(src, nil).Select(context.Background(), 6, 2, used)

	reviews := 0
	for _, w := range got {
		if _, ok := used[strings.ToLower(w)]; ok {
			reviews++
		}
	}
	if reviews != 2 {
		t.Errorf("got %d review words, want 2: %v", reviews, got)
	}
}

func TestSelectReviewSkippedOnEmptyHistory(t *testing.T) {
	src := &stubSource{mixed: []string{
		"alpha", "bravo", "charlie", "delta", "echo",
		"foxtrot", "golf", "hotel", "india", "juliet",
	}}

	// Review slots cannot be served, so they fall back to fresh words.
	got := New(src, nil).Select(context.Background(), 4, 2, nil)
	if len(got) != 4 {
		t.Errorf("got %d words, want 4: %v", len(got), got)
	}
}

func TestSelectBroadensWhenExhausted(t *testing.T) {
	// Mixed draws keep failing; the bucket scan has to fill the quota.
	src := &stubSource{
		mixedErr: fmt.Errorf("model unavailable"),
		bucket:   []string{"widen1", "widen2", "widen3"},
	}

	got := New(src, nil).Select(context.Background(), 3, 0, nil)
	if len(got) != 3 {
		t.Fatalf("got %d words, want 3: %v", len(got), got)
	}
	if src.mixedCalls != maxAttempts {
		t.Errorf("mixed attempts = %d, want %d", src.mixedCalls, maxAttempts)
	}
}

func TestSelectMayReturnShort(t *testing.T) {
	src := &stubSource{mixed: []string{"only"}, bucket: []string{"only"}}

	got := New(src, nil).Select(context.Background(), 5, 0, nil)
	if len(got) != 1 {
		t.Errorf("got %d words, want the 1 available: %v", len(got), got)
	}
}

func TestSelectZeroTotal(t *testing.T) {
	src := &stubSource{}
	if got := New(src, nil).Select(context.Background(), 0, 0, nil); got != nil {
		t.Errorf("Select(0) = %v, want nil", got)
	}
}

func TestFallbackWords(t *testing.T) {
	got := FallbackWords(5)
	if len(got) != 5 {
		t.Fatalf("got %d words, want 5", len(got))
	}
	seen := make(map[string]struct{})
	for _, w := range got {
		if w == "" {
			t.Error("fallback produced an empty word")
		}
		if _, dup := seen[w]; dup {
			t.Errorf("duplicate fallback word %q", w)
		}
		seen[w] = struct{}{}
	}

	if all := FallbackWords(100); len(all) != 20 {
		t.Errorf("oversized request returned %d words, want the full 20", len(all))
	}
}
