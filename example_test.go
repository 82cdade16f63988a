package emojifier_test

import (
	"fmt"
	"log"

	"github.com/FrenchMajesty/emojifier"
	"github.com/FrenchMajesty/emojifier/testutil"
)

// Example_basic trains on a tiny two-class dataset and classifies a sentence
// containing a word never seen during training.
func Example_basic() {
	table := testutil.SentimentTable()

	trainer, err := emojifier.NewTrainer(table, emojifier.Config{
		ReportEvery: -1, // silence per-epoch reports
	})
	if err != nil {
		log.Fatal(err)
	}

	result, err := trainer.Train([]emojifier.LabeledExample{
		{Sentence: "I love you", Label: 0},
		{Sentence: "I hate you", Label: 3},
	})
	if err != nil {
		log.Fatal(err)
	}

	// "adore" was never trained on; its embedding sits near "love".
	enc := emojifier.Encoder{Table: table}
	x, err := enc.Encode("I adore you")
	if err != nil {
		log.Fatal(err)
	}

	pred := result.Model.Predict(x)
	fmt.Printf("label=%d\n", pred.Label)
	fmt.Printf("training accuracy=%.2f\n", result.Accuracy)

	// Output:
	// label=0
	// training accuracy=1.00
}
