// Package dataset reads sentence/label pairs from CSV resources.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/FrenchMajesty/emojifier"
)

// Load reads a headerless CSV of sentence,label rows into labeled examples.
// Extra columns after the label are ignored. Labels outside [0, numClasses)
// fail with DimensionMismatchError.
func Load(path string, numClasses int) ([]emojifier.LabeledExample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file %s: %w", path, err)
	}

	examples := make([]emojifier.LabeledExample, 0, len(records))
	for i, rec := range records {
		if len(rec) < 2 {
			return nil, fmt.Errorf("%s row %d: expected sentence and label, got %d columns", path, i+1, len(rec))
		}

		label, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("%s row %d: failed to parse label: %w", path, i+1, err)
		}

		if label < 0 || label >= numClasses {
			return nil, &emojifier.DimensionMismatchError{
				Expected: numClasses,
				Actual:   label,
				Context:  fmt.Sprintf("%s row %d", path, i+1),
			}
		}

		examples = append(examples, emojifier.LabeledExample{
			Sentence: strings.TrimSpace(rec[0]),
			Label:    label,
		})
	}

	return examples, nil
}
