package main

import (
	"fmt"

	"github.com/FrenchMajesty/emojifier"
	"github.com/spf13/cobra"
)

// predictCmd trains on the training CSV, then classifies each argument
// sentence and prints it with its emoji.
var predictCmd = &cobra.Command{
	Use:   "predict [sentence]...",
	Short: "Classify sentences into emoji categories",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, _, table, err := trainModel()
		if err != nil {
			return err
		}

		mapping, err := loadEmojiMapping()
		if err != nil {
			return err
		}

		enc := emojifier.Encoder{Table: table, ZeroUnknownWords: zeroUnknown}
		for _, sentence := range args {
			x, err := enc.Encode(sentence)
			if err != nil {
				return err
			}

			pred := result.Model.Predict(x)
			fmt.Printf("%s %s (p=%.3f)\n", sentence, mapping.Symbol(pred.Label), pred.Probs[pred.Label])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)
}
