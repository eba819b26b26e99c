package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/quat/dailyvocab/internal/audio"
	"github.com/quat/dailyvocab/internal/history"
	"github.com/quat/dailyvocab/internal/llm"
	"github.com/quat/dailyvocab/internal/parser"
	"github.com/quat/dailyvocab/internal/pipeline"
	"github.com/quat/dailyvocab/internal/report"
	"github.com/quat/dailyvocab/internal/schedule"
	"github.com/quat/dailyvocab/internal/selector"
)

// Run wires the application together from the resolved flags and executes
// either a single digest cycle or the daily daemon loop.
func Run(ctx context.Context, flags *Flags, logger *zap.Logger) error {
	resolveConfig(flags)

	client, err := newModelClient(flags)
	if err != nil {
		return err
	}

	synth, err := newSynthesizer(flags, logger)
	if err != nil {
		return err
	}
	orchestrator := audio.NewOrchestrator(synth, &audio.OrchestratorConfig{
		StorageDir: flags.OutputDir,
		BaseURL:    flags.BaseURL,
		Logger:     logger,
	})

	if err := os.MkdirAll(filepath.Dir(flags.HistoryDB), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}
	store, err := history.OpenSQLite(flags.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	source, err := newWordSource(flags, client, logger)
	if err != nil {
		return err
	}

	processor := pipeline.NewWordProcessor(client, parser.New(), orchestrator, flags.Workers, logger)
	coordinator := pipeline.NewCoordinator(
		source,
		processor,
		store,
		report.NewBuilder(flags.DocumentDir, logger),
		newDeliverer(flags, logger),
		pipeline.CoordinatorConfig{
			WordsPerDay: flags.WordsPerDay,
			ReviewCount: flags.ReviewCount,
		},
		logger,
	)

	if !flags.Daemon {
		return coordinator.RunDaily(ctx)
	}

	sched := schedule.New(logger)
	if err := sched.Register(schedule.Job{
		Name: "daily-digest",
		At:   flags.At,
		Fn:   coordinator.RunDaily,
	}); err != nil {
		return err
	}
	logger.Info("running in daemon mode", zap.String("at", flags.At))
	sched.Start(ctx)
	return nil
}

// resolveConfig overlays config-file values onto the flag defaults. The
// flags are bound to viper, so for a changed flag viper already reports the
// flag value and the overlay is a no-op; zero values mean "not configured"
// and leave the flag default in place.
func resolveConfig(flags *Flags) {
	setString := func(dst *string, key string) {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, key string) {
		if v := viper.GetInt(key); v > 0 {
			*dst = v
		}
	}

	setString(&flags.OutputDir, "output.audio")
	setString(&flags.DocumentDir, "output.documents")
	setString(&flags.BaseURL, "output.base_url")
	setString(&flags.HistoryDB, "history.database")
	setInt(&flags.WordsPerDay, "words.per_day")
	setInt(&flags.Workers, "words.workers")
	setString(&flags.Provider, "model.provider")
	setString(&flags.Model, "model.name")
	setString(&flags.TTSCommand, "audio.tts_command")
	setString(&flags.TTSVoice, "audio.tts_voice")
	setString(&flags.At, "schedule.at")

	// Review slots may legitimately be configured back to zero, so this one
	// keys off presence rather than value.
	if viper.IsSet("words.review") {
		flags.ReviewCount = viper.GetInt("words.review")
	}
}

// speedsFromConfig reads the per-purpose speech-rate multipliers. These are
// config-only (audio.speed.* keys); unset rates keep the defaults.
func speedsFromConfig() audio.Speeds {
	s := audio.DefaultSpeeds()
	setRate := func(dst *float64, key string) {
		if v := viper.GetFloat64(key); v > 0 {
			*dst = v
		}
	}
	setRate(&s.Word, "audio.speed.word")
	setRate(&s.Sentence, "audio.speed.sentence")
	setRate(&s.Passage, "audio.speed.passage")
	setRate(&s.Monologue, "audio.speed.monologue")
	return s
}

func newModelClient(flags *Flags) (llm.Client, error) {
	cfg := &llm.Config{
		Provider: flags.Provider,
		Model:    flags.Model,
	}
	switch flags.Provider {
	case "gemini":
		cfg.APIKey = GetGeminiKey()
	default:
		cfg.APIKey = GetOpenAIKey()
	}
	return llm.NewClient(cfg)
}

// newSynthesizer prefers the external subprocess tool when one is
// configured, otherwise falls back to the hosted OpenAI speech API.
func newSynthesizer(flags *Flags, logger *zap.Logger) (audio.Synthesizer, error) {
	speeds := speedsFromConfig()
	if cmd := strings.Fields(flags.TTSCommand); len(cmd) > 0 {
		return audio.NewGateway(&audio.GatewayConfig{
			Command: cmd,
			Speeds:  speeds,
			Logger:  logger,
		})
	}
	return audio.NewOpenAISynthesizer(&audio.OpenAIConfig{
		APIKey: GetOpenAIKey(),
		Voice:  flags.TTSVoice,
		Speeds: speeds,
		Logger: logger,
	})
}

// newWordSource builds the day's word source: a fixed list from a file when
// --words-file is given, otherwise model-generated candidates with the
// embedded catalog as fallback.
func newWordSource(flags *Flags, client llm.Client, logger *zap.Logger) (pipeline.WordSource, error) {
	if flags.WordFile != "" {
		words, err := readWordList(flags.WordFile)
		if err != nil {
			return nil, err
		}
		if len(words) == 0 {
			return nil, fmt.Errorf("word file %s contains no words", flags.WordFile)
		}
		logger.Info("using fixed word list",
			zap.String("file", flags.WordFile), zap.Int("words", len(words)))
		return fixedSource(words), nil
	}

	catalog := selector.NewCatalog()
	generated := selector.NewGeneratedSource(client, catalog, logger)
	return selector.New(generated, logger), nil
}

// fixedSource serves a predetermined word list, ignoring history.
type fixedSource []string

func (f fixedSource) Select(_ context.Context, total, _ int, _ map[string]struct{}) []string {
	if total > len(f) {
		total = len(f)
	}
	return append([]string(nil), f[:total]...)
}

// readWordList reads one word per line, skipping blanks and # comments.
func readWordList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word file: %w", err)
	}
	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, nil
}

// newDeliverer sends mail when SMTP settings are configured, otherwise
// drops rendered digests into a local outbox directory.
func newDeliverer(flags *Flags, logger *zap.Logger) report.Deliverer {
	cfg := report.MailConfig{
		Host: viper.GetString("mail.host"),
		Port: viper.GetInt("mail.port"),
		User: viper.GetString("mail.user"),
		Pass: viper.GetString("mail.password"),
		From: viper.GetString("mail.from"),
		To:   viper.GetStringSlice("mail.to"),
	}
	if cfg.Host != "" && len(cfg.To) > 0 {
		return report.NewMailer(cfg, logger)
	}
	logger.Info("mail not configured, writing digests to outbox",
		zap.String("dir", filepath.Join(flags.DocumentDir, "outbox")))
	return report.NewOutbox(filepath.Join(flags.DocumentDir, "outbox"), logger)
}
