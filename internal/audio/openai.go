package audio

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// OpenAIConfig configures the hosted TTS synthesizer.
type OpenAIConfig struct {
	APIKey string
	Model  string // "tts-1", "tts-1-hd" or "gpt-4o-mini-tts"
	Voice  string
	Speeds Speeds
	Logger *zap.Logger
}

// OpenAISynthesizer implements Synthesizer against the OpenAI speech API.
// It is an alternative to the subprocess gateway for deployments without a
// local synthesis tool.
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
	speeds Speeds
	logger *zap.Logger
}

// NewOpenAISynthesizer creates the hosted synthesizer.
func NewOpenAISynthesizer(cfg *OpenAIConfig) (*OpenAISynthesizer, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini-tts"
	}
	voice := cfg.Voice
	if voice == "" {
		voice = "alloy"
	}
	speeds := cfg.Speeds
	if speeds == (Speeds{}) {
		speeds = DefaultSpeeds()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OpenAISynthesizer{
		client: openai.NewClient(cfg.APIKey),
		model:  model,
		voice:  voice,
		speeds: speeds,
		logger: logger,
	}, nil
}

// Synthesize generates one clip via the speech API. The purpose's timeout
// class bounds the request the same way it bounds the subprocess gateway.
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text, outputFile string, purpose Purpose) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	ctx, cancel := context.WithTimeout(ctx, purpose.Timeout())
	defer cancel()

	response, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.SpeechVoice(s.voice),
		Speed:          s.speeds.For(purpose),
		ResponseFormat: openai.SpeechResponseFormatMp3,
	})
	if err != nil {
		return fmt.Errorf("OpenAI TTS API error: %w", err)
	}
	defer response.Close()

	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	out, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	written, err := io.Copy(out, response)
	if err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	if written == 0 {
		return fmt.Errorf("no audio data received from OpenAI")
	}

	s.logger.Debug("synthesized audio via OpenAI",
		zap.String("purpose", string(purpose)),
		zap.String("file", outputFile),
		zap.Int64("bytes", written))
	return nil
}

// Name identifies the synthesizer in logs.
func (s *OpenAISynthesizer) Name() string {
	return "openai"
}
