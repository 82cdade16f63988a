package emojifier

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
)

// Trainer fits the softmax classifier to a labeled dataset using per-example
// stochastic gradient descent on cross-entropy loss.
type Trainer struct {
	table EmbeddingTable
	cfg   Config
}

// NewTrainer creates a Trainer over the given embedding table. Invalid
// hyperparameters are rejected here, before any training starts.
func NewTrainer(table EmbeddingTable, cfg Config) (*Trainer, error) {
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if table == nil {
		return nil, &ConfigurationError{Field: "table", Reason: "must not be nil"}
	}

	if table.Dim() <= 0 {
		return nil, &ConfigurationError{Field: "table", Reason: "must have a positive dimension"}
	}

	return &Trainer{table: table, cfg: cfg}, nil
}

// Train runs the configured number of epochs over the examples in order and
// returns the trained parameters together with the final training-set
// predictions and accuracy.
//
// Each example triggers an immediate gradient step (online SGD, batch size
// 1). Any encoding failure aborts the run with the offending example's index
// and sentence attached; nothing is skipped or substituted.
func (t *Trainer) Train(examples []LabeledExample) (*TrainResult, error) {
	if len(examples) == 0 {
		return nil, &ConfigurationError{Field: "examples", Reason: "must not be empty"}
	}

	// Encode and validate the whole set up front so failures surface before
	// any parameter is touched.
	encoded := make([]*mat.VecDense, len(examples))
	for i, ex := range examples {
		if ex.Label < 0 || ex.Label >= t.cfg.NumClasses {
			return nil, &DimensionMismatchError{
				Expected: t.cfg.NumClasses,
				Actual:   ex.Label,
				Context:  fmt.Sprintf("label of example %d (%q)", i, ex.Sentence),
			}
		}

		vec, err := t.encoder().Encode(ex.Sentence)
		if err != nil {
			return nil, fmt.Errorf("failed to encode example %d: %w", i, err)
		}
		encoded[i] = vec
	}

	runID := uuid.New().String()
	model := NewModel(t.cfg.NumClasses, t.table.Dim(), t.cfg.Seed)

	var lastLoss float64
	for epoch := 0; epoch < t.cfg.Epochs; epoch++ {
		for i, x := range encoded {
			probs := model.Forward(x)
			lastLoss = crossEntropy(probs, examples[i].Label)

			// dz = a - y, the softmax cross-entropy gradient w.r.t. logits.
			dz := mat.NewVecDense(t.cfg.NumClasses, append([]float64(nil), probs...))
			dz.SetVec(examples[i].Label, dz.AtVec(examples[i].Label)-1)

			// W -= lr * dz (outer) x ; b -= lr * dz
			model.W.RankOne(model.W, -t.cfg.LearningRate, dz, x)
			model.B.AddScaledVec(model.B, -t.cfg.LearningRate, dz)
		}

		if t.shouldReport(epoch) {
			_, acc := evaluateEncoded(model, encoded, examples)
			t.report(EpochReport{RunID: runID, Epoch: epoch, Loss: lastLoss, Accuracy: acc})
		}
	}

	preds, acc := evaluateEncoded(model, encoded, examples)

	return &TrainResult{
		RunID:       runID,
		Model:       model.Clone(),
		Predictions: preds,
		Accuracy:    acc,
	}, nil
}

func (t *Trainer) encoder() Encoder {
	return Encoder{Table: t.table, ZeroUnknownWords: t.cfg.ZeroUnknownWords}
}

// shouldReport matches the reporting cadence: every ReportEvery epochs plus
// the final epoch. A negative ReportEvery disables reporting entirely.
func (t *Trainer) shouldReport(epoch int) bool {
	if t.cfg.ReportEvery <= 0 {
		return false
	}

	return epoch%t.cfg.ReportEvery == 0 || epoch == t.cfg.Epochs-1
}

func (t *Trainer) report(r EpochReport) {
	if t.cfg.OnEpochEnd != nil {
		t.cfg.OnEpochEnd(r)
		return
	}

	log.Printf("run=%s epoch=%d loss=%.6f accuracy=%.4f", r.RunID, r.Epoch, r.Loss, r.Accuracy)
}

// evaluateEncoded scores already-encoded examples against the model.
func evaluateEncoded(model *Model, encoded []*mat.VecDense, examples []LabeledExample) ([]Prediction, float64) {
	preds := make([]Prediction, len(encoded))

	correct := 0
	for i, x := range encoded {
		preds[i] = model.Predict(x)
		if preds[i].Label == examples[i].Label {
			correct++
		}
	}

	return preds, float64(correct) / float64(len(examples))
}
