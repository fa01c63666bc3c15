package target

// Config holds the target module settings.
type Config struct {
	// StrictValidation enables WithStrictThresholds for every submission.
	StrictValidation bool   `env:"TARGETS_STRICT_VALIDATION" envDefault:"false"`
	SeedFile         string `env:"TARGETS_SEED_FILE"`
	MaxFilterLength  int    `env:"TARGETS_MAX_FILTER_LENGTH" envDefault:"255"`
}

// Options returns the validation options implied by cfg.
func (c Config) Options() []Option {
	if c.StrictValidation {
		return []Option{WithStrictThresholds()}
	}
	return nil
}
