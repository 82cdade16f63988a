package main

import (
	"fmt"

	"github.com/FrenchMajesty/emojifier"
	"github.com/FrenchMajesty/emojifier/dataset"
	"github.com/spf13/cobra"
)

var testPath string

// evalCmd trains on the training CSV and evaluates a held-out test CSV:
// accuracy, confusion matrix and the mislabeled examples.
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate the classifier on a held-out test set",
	RunE: func(cmd *cobra.Command, args []string) error {
		result, _, table, err := trainModel()
		if err != nil {
			return err
		}

		testExamples, err := dataset.Load(testPath, numClasses)
		if err != nil {
			return err
		}

		evaluator := emojifier.Evaluator{Table: table, ZeroUnknownWords: zeroUnknown}
		preds, accuracy, err := evaluator.Evaluate(result.Model, testExamples)
		if err != nil {
			return err
		}

		fmt.Printf("run %s: train accuracy %.4f, test accuracy %.4f\n", result.RunID, result.Accuracy, accuracy)

		matrix, err := confusion(testExamples, preds)
		if err != nil {
			return err
		}
		fmt.Println(matrix)

		mislabeled, err := emojifier.MislabeledExamples(testExamples, preds)
		if err != nil {
			return err
		}

		if len(mislabeled) > 0 {
			mapping, err := loadEmojiMapping()
			if err != nil {
				return err
			}

			fmt.Println("mislabeled examples:")
			for _, m := range mislabeled {
				fmt.Printf("  %q: expected %s, predicted %s\n", m.Sentence, mapping.Symbol(m.Label), mapping.Symbol(m.Predicted))
			}
		}

		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&testPath, "test", envOr("EMOJIFY_TEST", "data/test_emoji.csv"), "test CSV of sentence,label rows")
	rootCmd.AddCommand(evalCmd)
}
