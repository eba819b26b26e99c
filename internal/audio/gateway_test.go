//go:build !windows

package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeScript creates an executable shell script standing in for the external
// synthesis tool.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tts.sh")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestGatewaySynthesize(t *testing.T) {
	// $2 is the destination path; write the text into it.
	script := writeScript(t, `printf '%s' "$1" > "$2"`)
	g, err := NewGateway(&GatewayConfig{Command: []string{script}})
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "clips", "word.mp3")
	if err := g.Synthesize(context.Background(), "hello", out, PurposeWord); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output file not readable: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("output = %q, want %q", data, "hello")
	}
}

func TestGatewayArguments(t *testing.T) {
	// Record the argument vector the gateway passes to the tool.
	argFile := filepath.Join(t.TempDir(), "args.txt")
	script := writeScript(t,
		`printf '%s\n' "$@" > `+argFile+`; printf x > "$2"`)
	g, err := NewGateway(&GatewayConfig{Command: []string{script}})
	if err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(t.TempDir(), "clip.mp3")
	if err := g.Synthesize(context.Background(), "some text", out, PurposeMonologue); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	data, err := os.ReadFile(argFile)
	if err != nil {
		t.Fatal(err)
	}
	args := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	want := []string{"some text", out, "monologue", "1.25"}
	if len(args) != len(want) {
		t.Fatalf("got %d args %v, want %d", len(args), args, len(want))
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("arg[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}

func TestGatewayEmptyText(t *testing.T) {
	script := writeScript(t, `exit 0`)
	g, _ := NewGateway(&GatewayConfig{Command: []string{script}})
	if err := g.Synthesize(context.Background(), "", "out.mp3", PurposeWord); err == nil {
		t.Error("expected error for empty text")
	}
}

func TestGatewayNonZeroExit(t *testing.T) {
	script := writeScript(t, `echo boom >&2; exit 3`)
	g, _ := NewGateway(&GatewayConfig{Command: []string{script}})

	out := filepath.Join(t.TempDir(), "clip.mp3")
	err := g.Synthesize(context.Background(), "text", out, PurposeWord)
	if err == nil {
		t.Fatal("expected error for non-zero exit")
	}
	if errors.Is(err, ErrTimeout) {
		t.Error("non-zero exit should not be reported as a timeout")
	}
}

func TestGatewayEmptyOutputIsFailure(t *testing.T) {
	// A clean exit that produced no audio must still fail.
	script := writeScript(t, `: > "$2"; exit 0`)
	g, _ := NewGateway(&GatewayConfig{Command: []string{script}})

	out := filepath.Join(t.TempDir(), "clip.mp3")
	if err := g.Synthesize(context.Background(), "text", out, PurposeWord); err == nil {
		t.Error("expected error for empty output file")
	}
}

func TestGatewayMissingOutputIsFailure(t *testing.T) {
	script := writeScript(t, `exit 0`)
	g, _ := NewGateway(&GatewayConfig{Command: []string{script}})

	out := filepath.Join(t.TempDir(), "clip.mp3")
	if err := g.Synthesize(context.Background(), "text", out, PurposeWord); err == nil {
		t.Error("expected error when no output file was written")
	}
}

func TestNewGatewayRequiresCommand(t *testing.T) {
	if _, err := NewGateway(&GatewayConfig{}); err == nil {
		t.Error("expected error for empty command")
	}
	if _, err := NewGateway(nil); err == nil {
		t.Error("expected error for nil config")
	}
}

func TestGatewayName(t *testing.T) {
	g, _ := NewGateway(&GatewayConfig{Command: []string{"/usr/bin/python3", "tts_generator.py"}})
	if g.Name() != "python3" {
		t.Errorf("Name() = %q, want %q", g.Name(), "python3")
	}
}
