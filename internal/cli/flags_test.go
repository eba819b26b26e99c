package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"WordsPerDay", flags.WordsPerDay, 10},
		{"ReviewCount", flags.ReviewCount, 0},
		{"Workers", flags.Workers, 8},
		{"At", flags.At, "05:00"},
		{"Provider", flags.Provider, "openai"},
		{"TTSVoice", flags.TTSVoice, "alloy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	// Test boolean defaults (should be false)
	if flags.Daemon {
		t.Error("Daemon should default to false")
	}

	// Test empty string defaults
	emptyTests := []struct {
		name  string
		value string
	}{
		{"CfgFile", flags.CfgFile},
		{"Model", flags.Model},
		{"WordFile", flags.WordFile},
		{"TTSCommand", flags.TTSCommand},
		{"BaseURL", flags.BaseURL},
	}
	for _, tt := range emptyTests {
		t.Run(tt.name+"_empty", func(t *testing.T) {
			if tt.value != "" {
				t.Errorf("%s should default to empty, got %q", tt.name, tt.value)
			}
		})
	}
}
