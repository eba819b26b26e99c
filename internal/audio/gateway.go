package audio

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Synthesizer converts one piece of text into one audio file. Implementations
// must be safe for concurrent use and must report failure when no usable file
// was produced, whatever the underlying tool claimed.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, outputFile string, purpose Purpose) error
	Name() string
}

// ErrTimeout is returned when the synthesis tool was forcefully terminated
// after exceeding the purpose's timeout class.
var ErrTimeout = errors.New("synthesis timed out")

// GatewayConfig configures the subprocess gateway.
type GatewayConfig struct {
	// Command is the synthesis executable and its leading arguments, e.g.
	// ["python3", "scripts/tts_generator.py"]. The gateway appends the text,
	// destination path, purpose and rate multiplier.
	Command []string

	Speeds Speeds

	// Logger defaults to a nop logger.
	Logger *zap.Logger
}

// Gateway runs an external text-to-speech executable as a subprocess. It
// enforces the purpose's timeout itself (killing the process on expiry),
// treats a non-zero exit as failure, and verifies the destination file exists
// and is non-empty; a clean exit that produced no audio is still a failure.
type Gateway struct {
	command []string
	speeds  Speeds
	logger  *zap.Logger
}

// NewGateway creates a subprocess gateway. The command must have at least the
// executable itself.
func NewGateway(cfg *GatewayConfig) (*Gateway, error) {
	if cfg == nil || len(cfg.Command) == 0 {
		return nil, fmt.Errorf("synthesis command is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	speeds := cfg.Speeds
	if speeds == (Speeds{}) {
		speeds = DefaultSpeeds()
	}
	return &Gateway{command: cfg.Command, speeds: speeds, logger: logger}, nil
}

// Synthesize runs the external tool for one clip.
func (g *Gateway) Synthesize(ctx context.Context, text, outputFile string, purpose Purpose) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}
	if dir := filepath.Dir(outputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(ctx, purpose.Timeout())
	defer cancel()

	speed := g.speeds.For(purpose)
	args := append(append([]string{}, g.command[1:]...),
		text, outputFile, string(purpose), strconv.FormatFloat(speed, 'f', 2, 64))

	start := time.Now()
	cmd := exec.CommandContext(ctx, g.command[0], args...)
	cmd.WaitDelay = 5 * time.Second
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		g.logger.Error("synthesis process killed after timeout",
			zap.String("purpose", string(purpose)),
			zap.Duration("timeout", purpose.Timeout()),
			zap.Int("text_len", len(text)))
		return ErrTimeout
	}
	if err != nil {
		g.logger.Error("synthesis process failed",
			zap.String("purpose", string(purpose)),
			zap.Error(err),
			zap.ByteString("output", output))
		return fmt.Errorf("synthesis process failed: %w", err)
	}

	// A zero exit status means nothing if the tool wrote no audio.
	info, err := os.Stat(outputFile)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("audio file was not created or is empty: %s", outputFile)
	}

	g.logger.Debug("synthesized audio",
		zap.String("purpose", string(purpose)),
		zap.String("file", outputFile),
		zap.Int64("bytes", info.Size()),
		zap.Float64("speed", speed),
		zap.Duration("took", time.Since(start)))
	return nil
}

// Name identifies the gateway in logs.
func (g *Gateway) Name() string {
	return filepath.Base(g.command[0])
}
