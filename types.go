package emojifier

// EmbeddingTable provides read-only lookups into a pretrained word vector
// table. Implementations must be safe for concurrent readers.
type EmbeddingTable interface {
	// Lookup returns the vector for the given lowercase token, or false if
	// the token is not in the vocabulary.
	Lookup(word string) ([]float64, bool)

	// Dim returns the length of every vector in the table.
	Dim() int
}

// LabeledExample pairs a raw sentence with its integer class label.
type LabeledExample struct {
	// Sentence is the raw, whitespace-delimited input text
	Sentence string

	// Label is the class index in [0, numClasses)
	Label int
}

// Prediction is the classifier output for a single example.
type Prediction struct {
	// Label is the argmax of the probability distribution
	Label int

	// Probs is the full probability vector over all classes
	Probs []float64
}

// Mislabeled describes one example whose prediction disagrees with its
// true label.
type Mislabeled struct {
	Sentence  string
	Label     int
	Predicted int
}

// EpochReport is emitted at the configured reporting cadence during training.
type EpochReport struct {
	// RunID identifies the training run that produced this report
	RunID string

	// Epoch is the zero-based epoch index
	Epoch int

	// Loss is the cross-entropy loss of the last example processed in the epoch
	Loss float64

	// Accuracy is the training-set accuracy after the epoch's updates
	Accuracy float64
}

// TrainResult is the outcome of a completed training run.
type TrainResult struct {
	// RunID identifies the training run
	RunID string

	// Model holds the trained parameters
	Model *Model

	// Predictions are the training-set predictions of the final model
	Predictions []Prediction

	// Accuracy is the training-set accuracy of the final model
	Accuracy float64
}
