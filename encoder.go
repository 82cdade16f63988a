package emojifier

import (
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Encoder converts raw sentences into fixed-length vectors by averaging the
// embeddings of their words. It holds no mutable state; encoding is a pure
// function of the sentence and the table.
type Encoder struct {
	// Table supplies the word vectors
	Table EmbeddingTable

	// ZeroUnknownWords substitutes a zero vector for out-of-vocabulary words
	// instead of failing with UnknownWordError
	ZeroUnknownWords bool
}

// Encode splits the sentence on whitespace, lowercases each token, looks up
// its embedding and returns the per-dimension arithmetic mean of all token
// vectors.
//
// A sentence with zero tokens fails with EmptyInputError. A token missing
// from the table fails with UnknownWordError unless ZeroUnknownWords is set,
// in which case the token contributes a zero vector to the average.
func (e Encoder) Encode(sentence string) (*mat.VecDense, error) {
	tokens := strings.Fields(sentence)
	if len(tokens) == 0 {
		return nil, &EmptyInputError{Sentence: sentence}
	}

	dim := e.Table.Dim()
	avg := mat.NewVecDense(dim, nil)

	for _, token := range tokens {
		vec, ok := e.Table.Lookup(strings.ToLower(token))
		if !ok {
			if e.ZeroUnknownWords {
				// Unknown words still count toward the denominator.
				continue
			}
			return nil, &UnknownWordError{Word: token, Sentence: sentence}
		}

		if len(vec) != dim {
			return nil, &DimensionMismatchError{Expected: dim, Actual: len(vec), Context: "embedding for " + strings.ToLower(token)}
		}

		avg.AddVec(avg, mat.NewVecDense(dim, vec))
	}

	avg.ScaleVec(1/float64(len(tokens)), avg)

	return avg, nil
}
