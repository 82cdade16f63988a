// Package testutil provides fixture embedding tables and toy datasets for
// tests.
package testutil

import "github.com/FrenchMajesty/emojifier"

// FixtureTable is an in-memory embedding table backed by a plain map.
type FixtureTable struct {
	Vectors   map[string][]float64
	Dimension int

	// LookupFunc overrides Lookup when set
	LookupFunc func(word string) ([]float64, bool)
}

// Lookup returns the vector for the given word.
func (t *FixtureTable) Lookup(word string) ([]float64, bool) {
	if t.LookupFunc != nil {
		return t.LookupFunc(word)
	}
	vec, ok := t.Vectors[word]
	return vec, ok
}

// Dim returns the fixture's vector length.
func (t *FixtureTable) Dim() int {
	return t.Dimension
}

// SentimentTable returns a 2-dimensional toy vocabulary where positive words
// cluster near (1,0), negative words near (-1,0) and filler words sit at the
// origin.
func SentimentTable() *FixtureTable {
	return &FixtureTable{
		Dimension: 2,
		Vectors: map[string][]float64{
			"i":       {0, 0},
			"you":     {0, 0},
			"love":    {1, 0},
			"adore":   {0.9, 0.1},
			"hate":    {-1, 0},
			"despise": {-0.9, -0.1},
		},
	}
}

// SentimentExamples returns a linearly separable two-class training set over
// the SentimentTable vocabulary: class 0 for positive, class 3 for negative.
func SentimentExamples() []emojifier.LabeledExample {
	return []emojifier.LabeledExample{
		{Sentence: "I love you", Label: 0},
		{Sentence: "I hate you", Label: 3},
		{Sentence: "love love love", Label: 0},
		{Sentence: "hate hate hate", Label: 3},
	}
}
