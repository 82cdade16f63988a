package main

import (
	"fmt"

	"github.com/FrenchMajesty/emojifier"
	"github.com/spf13/cobra"
)

// trainCmd trains on the training CSV and reports training-set metrics.
var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the classifier and report training-set metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, examples, _, err := trainModel()
		if err != nil {
			return err
		}

		fmt.Printf("run %s finished: training accuracy %.4f over %d examples\n", result.RunID, result.Accuracy, len(examples))

		matrix, err := confusion(examples, result.Predictions)
		if err != nil {
			return err
		}
		fmt.Println(matrix)

		return nil
	},
}

// confusion builds the training confusion matrix from a result's predictions.
func confusion(examples []emojifier.LabeledExample, preds []emojifier.Prediction) (*emojifier.ConfusionMatrix, error) {
	trueLabels := make([]int, len(examples))
	predicted := make([]int, len(preds))
	for i := range examples {
		trueLabels[i] = examples[i].Label
		predicted[i] = preds[i].Label
	}

	return emojifier.NewConfusionMatrix(trueLabels, predicted, numClasses)
}

func init() {
	rootCmd.AddCommand(trainCmd)
}
