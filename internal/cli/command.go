package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quat/dailyvocab/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dailyvocab",
		Short: "Daily English Vocabulary Digest Generator",
		Long: `dailyvocab assembles a daily English study digest: it selects
vocabulary words, asks a language model for explanations and short
monologues, synthesizes pronunciation audio, and delivers the result
as an email digest with a plain-text transcript attachment.

Examples:
  dailyvocab                      # Run one digest cycle now
  dailyvocab --daemon             # Run every day at 05:00
  dailyvocab --words-file my.txt  # Use a fixed word list instead of selection`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	home, _ := os.UserHomeDir()
	stateDir := filepath.Join(home, ".local", "state", "dailyvocab")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.dailyvocab.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", filepath.Join(stateDir, "audio"), "Audio output directory")
	cmd.Flags().StringVar(&flags.DocumentDir, "documents", filepath.Join(stateDir, "documents"), "Transcript document directory")
	cmd.Flags().StringVar(&flags.HistoryDB, "history-db", filepath.Join(stateDir, "history.db"), "Word history database file")
	cmd.Flags().StringVar(&flags.BaseURL, "base-url", "", "Public base URL for audio links in the digest")
	cmd.Flags().StringVar(&flags.WordFile, "words-file", "", "Process words from file (one per line) instead of selecting")
	cmd.Flags().IntVarP(&flags.WordsPerDay, "words", "n", flags.WordsPerDay, "Number of words per daily digest")
	cmd.Flags().IntVar(&flags.ReviewCount, "review", flags.ReviewCount, "Slots reserved for previously studied words")
	cmd.Flags().IntVar(&flags.Workers, "workers", flags.Workers, "Parallel word processing workers")
	cmd.Flags().BoolVar(&flags.Daemon, "daemon", false, "Keep running and fire one digest per day")
	cmd.Flags().StringVar(&flags.At, "at", flags.At, "Daily run time in HH:MM (daemon mode)")

	// Model flags
	cmd.Flags().StringVar(&flags.Provider, "provider", flags.Provider, "Language model provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Model, "model", "", "Model name override (defaults per provider)")

	// Audio flags
	cmd.Flags().StringVar(&flags.TTSCommand, "tts-command", "", "External TTS command (e.g. 'python3 tts_generator.py'); empty uses OpenAI speech")
	cmd.Flags().StringVar(&flags.TTSVoice, "tts-voice", flags.TTSVoice, "OpenAI voice for speech synthesis")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.audio", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.documents", cmd.Flags().Lookup("documents"))
	viper.BindPFlag("output.base_url", cmd.Flags().Lookup("base-url"))
	viper.BindPFlag("history.database", cmd.Flags().Lookup("history-db"))
	viper.BindPFlag("words.per_day", cmd.Flags().Lookup("words"))
	viper.BindPFlag("words.review", cmd.Flags().Lookup("review"))
	viper.BindPFlag("words.workers", cmd.Flags().Lookup("workers"))
	viper.BindPFlag("model.provider", cmd.Flags().Lookup("provider"))
	viper.BindPFlag("model.name", cmd.Flags().Lookup("model"))
	viper.BindPFlag("audio.tts_command", cmd.Flags().Lookup("tts-command"))
	viper.BindPFlag("audio.tts_voice", cmd.Flags().Lookup("tts-voice"))
	viper.BindPFlag("schedule.at", cmd.Flags().Lookup("at"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".dailyvocab" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".dailyvocab")
	}

	// Environment variables
	viper.SetEnvPrefix("DAILYVOCAB")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	// First check environment variable
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}

	// Then check config file
	return viper.GetString("model.openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("model.gemini_key")
}
