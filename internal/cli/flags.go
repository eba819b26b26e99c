package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	OutputDir   string
	DocumentDir string
	HistoryDB   string
	BaseURL     string
	WordFile    string
	WordsPerDay int
	ReviewCount int
	Workers     int

	// Scheduling flags
	Daemon bool
	At     string

	// Model flags
	Provider string
	Model    string

	// Audio flags
	TTSCommand string
	TTSVoice   string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		WordsPerDay: 10,
		ReviewCount: 0,
		Workers:     8,
		At:          "05:00",
		Provider:    "openai",
		TTSVoice:    "alloy",
	}
}
