package targeting

// Config holds configuration for reach estimation.
type Config struct {
	// Concurrency is the number of batch chunks in flight at once.
	Concurrency int `mapstructure:"concurrency" default:"1"`
	// ValidateKeywords checks every keyword against the Graph API before a single reach lookup.
	ValidateKeywords bool `mapstructure:"validate_keywords" default:"false"`
}
