package emojifier

import (
	"fmt"
	"strings"
)

// Evaluator scores sentences against a trained model.
type Evaluator struct {
	// Table supplies the word vectors
	Table EmbeddingTable

	// ZeroUnknownWords mirrors the encoder option of the same name
	ZeroUnknownWords bool
}

// Evaluate predicts every example and returns the per-example predictions
// together with the fraction of exact label matches.
func (e Evaluator) Evaluate(model *Model, examples []LabeledExample) ([]Prediction, float64, error) {
	if len(examples) == 0 {
		return nil, 0, nil
	}

	enc := Encoder{Table: e.Table, ZeroUnknownWords: e.ZeroUnknownWords}

	preds := make([]Prediction, len(examples))
	correct := 0
	for i, ex := range examples {
		x, err := enc.Encode(ex.Sentence)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to encode example %d: %w", i, err)
		}

		preds[i] = model.Predict(x)
		if preds[i].Label == ex.Label {
			correct++
		}
	}

	return preds, float64(correct) / float64(len(examples)), nil
}

// MislabeledExamples returns the examples whose predicted label disagrees
// with the true label, preserving input order.
func MislabeledExamples(examples []LabeledExample, preds []Prediction) ([]Mislabeled, error) {
	if len(examples) != len(preds) {
		return nil, &DimensionMismatchError{Expected: len(examples), Actual: len(preds), Context: "predictions"}
	}

	var out []Mislabeled
	for i, ex := range examples {
		if preds[i].Label != ex.Label {
			out = append(out, Mislabeled{Sentence: ex.Sentence, Label: ex.Label, Predicted: preds[i].Label})
		}
	}

	return out, nil
}

// ConfusionMatrix holds raw counts of (true, predicted) label pairs for a
// fixed number of classes. Counts[i][j] is the number of examples with true
// label i that were predicted as j. No smoothing or normalization is applied.
type ConfusionMatrix struct {
	Counts [][]int
}

// NewConfusionMatrix tallies true/predicted label pairs into raw counts.
// Both slices must have equal length and all labels must lie in
// [0, numClasses).
func NewConfusionMatrix(trueLabels, predicted []int, numClasses int) (*ConfusionMatrix, error) {
	if len(trueLabels) != len(predicted) {
		return nil, &DimensionMismatchError{Expected: len(trueLabels), Actual: len(predicted), Context: "predicted labels"}
	}

	counts := make([][]int, numClasses)
	for i := range counts {
		counts[i] = make([]int, numClasses)
	}

	for i := range trueLabels {
		y, p := trueLabels[i], predicted[i]
		if y < 0 || y >= numClasses {
			return nil, &DimensionMismatchError{Expected: numClasses, Actual: y, Context: fmt.Sprintf("true label %d", i)}
		}
		if p < 0 || p >= numClasses {
			return nil, &DimensionMismatchError{Expected: numClasses, Actual: p, Context: fmt.Sprintf("predicted label %d", i)}
		}
		counts[y][p]++
	}

	return &ConfusionMatrix{Counts: counts}, nil
}

// RowTotals returns the number of evaluated examples per true class.
func (c *ConfusionMatrix) RowTotals() []int {
	totals := make([]int, len(c.Counts))
	for i, row := range c.Counts {
		for _, n := range row {
			totals[i] += n
		}
	}
	return totals
}

// ColTotals returns the number of evaluated examples per predicted class.
func (c *ConfusionMatrix) ColTotals() []int {
	totals := make([]int, len(c.Counts))
	for _, row := range c.Counts {
		for j, n := range row {
			totals[j] += n
		}
	}
	return totals
}

// Total returns the number of evaluated examples.
func (c *ConfusionMatrix) Total() int {
	total := 0
	for _, row := range c.Counts {
		for _, n := range row {
			total += n
		}
	}
	return total
}

// String renders the matrix as a table with row and column totals, rows for
// true labels and columns for predicted labels.
func (c *ConfusionMatrix) String() string {
	var sb strings.Builder

	k := len(c.Counts)

	sb.WriteString("true\\pred")
	for j := 0; j < k; j++ {
		fmt.Fprintf(&sb, "%6d", j)
	}
	sb.WriteString("   all\n")

	rowTotals := c.RowTotals()
	for i, row := range c.Counts {
		fmt.Fprintf(&sb, "%9d", i)
		for _, n := range row {
			fmt.Fprintf(&sb, "%6d", n)
		}
		fmt.Fprintf(&sb, "%6d\n", rowTotals[i])
	}

	sb.WriteString("      all")
	for _, n := range c.ColTotals() {
		fmt.Fprintf(&sb, "%6d", n)
	}
	fmt.Fprintf(&sb, "%6d\n", c.Total())

	return sb.String()
}
