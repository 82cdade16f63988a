// Command emojify trains the averaged-embedding softmax classifier and
// classifies sentences into emoji categories.
package main

import (
	"os"

	"github.com/FrenchMajesty/emojifier"
	"github.com/FrenchMajesty/emojifier/dataset"
	"github.com/FrenchMajesty/emojifier/embedding"
	"github.com/FrenchMajesty/emojifier/emoji"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	embeddingsPath string
	trainPath      string
	emojiMapPath   string
	numClasses     int
	epochs         int
	learningRate   float64
	seed           int64
	zeroUnknown    bool
	quiet          bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "emojify",
	Short: "Sentence-to-emoji classification over averaged word embeddings",
	Long: `Emojify learns a linear mapping from the average pretrained embedding of a
sentence's words to a probability distribution over emoji categories, trained
with per-example stochastic gradient descent on cross-entropy loss.`,
}

func main() {
	// Optional .env with EMOJIFY_EMBEDDINGS / EMOJIFY_TRAIN defaults.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&embeddingsPath, "embeddings", envOr("EMOJIFY_EMBEDDINGS", "data/glove.6B.50d.txt"), "GloVe-format embedding file")
	rootCmd.PersistentFlags().StringVar(&trainPath, "train", envOr("EMOJIFY_TRAIN", "data/train_emoji.csv"), "training CSV of sentence,label rows")
	rootCmd.PersistentFlags().StringVar(&emojiMapPath, "emoji-map", os.Getenv("EMOJIFY_EMOJI_MAP"), "optional JSON file overriding the label-to-emoji mapping")
	rootCmd.PersistentFlags().IntVar(&numClasses, "classes", emojifier.DefaultNumClasses, "number of emoji categories")
	rootCmd.PersistentFlags().IntVar(&epochs, "epochs", emojifier.DefaultEpochs, "number of passes over the training set")
	rootCmd.PersistentFlags().Float64Var(&learningRate, "lr", emojifier.DefaultLearningRate, "SGD learning rate")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", emojifier.DefaultSeed, "random seed for parameter initialization")
	rootCmd.PersistentFlags().BoolVar(&zeroUnknown, "zero-unknown", false, "substitute a zero vector for out-of-vocabulary words instead of failing")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress per-epoch progress reports")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// trainModel loads the embedding table and training CSV from the shared
// flags and runs a full training pass.
func trainModel() (*emojifier.TrainResult, []emojifier.LabeledExample, *embedding.Table, error) {
	table, err := embedding.Load(embeddingsPath)
	if err != nil {
		return nil, nil, nil, err
	}

	examples, err := dataset.Load(trainPath, numClasses)
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := emojifier.Config{
		NumClasses:       numClasses,
		Epochs:           epochs,
		LearningRate:     learningRate,
		Seed:             seed,
		ZeroUnknownWords: zeroUnknown,
	}
	if quiet {
		cfg.ReportEvery = -1
	}

	trainer, err := emojifier.NewTrainer(table, cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	result, err := trainer.Train(examples)
	if err != nil {
		return nil, nil, nil, err
	}

	return result, examples, table, nil
}

func loadEmojiMapping() (*emoji.Mapping, error) {
	if emojiMapPath == "" {
		return emoji.Default(), nil
	}
	return emoji.LoadFile(emojiMapPath)
}
