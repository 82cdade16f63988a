package emojifier

const (
	// DefaultNumClasses is the number of emoji categories
	DefaultNumClasses = 5

	// DefaultEpochs is the default number of passes over the training set
	DefaultEpochs = 400

	// DefaultLearningRate is the default SGD step size
	DefaultLearningRate = 0.01

	// DefaultReportEvery is the default epoch-report cadence
	DefaultReportEvery = 100

	// DefaultSeed seeds parameter initialization when no seed is given
	DefaultSeed = 1
)

// Config holds configuration for the Trainer
type Config struct {
	// NumClasses is the number of output classes. If 0, uses DefaultNumClasses.
	NumClasses int

	// Epochs is the number of passes over the training set. If 0, uses DefaultEpochs.
	Epochs int

	// LearningRate is the SGD step size. If 0, uses DefaultLearningRate.
	LearningRate float64

	// Seed seeds the random parameter initialization. If 0, uses DefaultSeed.
	Seed int64

	// ReportEvery is the epoch-report cadence. Reports are also emitted on the
	// final epoch. If 0, uses DefaultReportEvery. Negative disables reporting.
	ReportEvery int

	// ZeroUnknownWords substitutes a zero vector for out-of-vocabulary words
	// instead of failing with UnknownWordError. Off by default.
	ZeroUnknownWords bool

	// OnEpochEnd receives epoch reports at the reporting cadence. If nil,
	// reports are written to the standard logger.
	OnEpochEnd func(EpochReport)
}

// applyDefaults fills in default values for unset config fields
func (c *Config) applyDefaults() {
	if c.NumClasses == 0 {
		c.NumClasses = DefaultNumClasses
	}

	if c.Epochs == 0 {
		c.Epochs = DefaultEpochs
	}

	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}

	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}

	if c.ReportEvery == 0 {
		c.ReportEvery = DefaultReportEvery
	}
}

// validate rejects hyperparameters that would make training meaningless.
// Called after applyDefaults, so only explicitly bad values remain.
func (c *Config) validate() error {
	if c.NumClasses < 2 {
		return &ConfigurationError{Field: "NumClasses", Reason: "must be at least 2"}
	}

	if c.Epochs < 1 {
		return &ConfigurationError{Field: "Epochs", Reason: "must be positive"}
	}

	if c.LearningRate < 0 {
		return &ConfigurationError{Field: "LearningRate", Reason: "must be positive"}
	}

	return nil
}
