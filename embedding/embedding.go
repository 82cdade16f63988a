// Package embedding loads pretrained word vectors in the GloVe text format
// and serves read-only lookups over them.
package embedding

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/FrenchMajesty/emojifier"
)

// Table is an immutable word-to-vector mapping. Besides the vectors it
// carries the two auxiliary indices spanning the vocabulary contiguously
// from 0 in sorted word order.
type Table struct {
	vectors  map[string][]float64
	wordToID map[string]int
	idToWord []string
	dim      int
}

// New builds a Table from a word-to-vector map. All vectors must share the
// same length; a mixed-length map fails with DimensionMismatchError.
func New(vectors map[string][]float64) (*Table, error) {
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedding table is empty")
	}

	words := make([]string, 0, len(vectors))
	for w := range vectors {
		words = append(words, w)
	}
	sort.Strings(words)

	dim := len(vectors[words[0]])
	if dim == 0 {
		return nil, &emojifier.DimensionMismatchError{Expected: 1, Actual: 0, Context: "vector for " + words[0]}
	}

	wordToID := make(map[string]int, len(words))
	for i, w := range words {
		if len(vectors[w]) != dim {
			return nil, &emojifier.DimensionMismatchError{Expected: dim, Actual: len(vectors[w]), Context: "vector for " + w}
		}
		wordToID[w] = i
	}

	return &Table{
		vectors:  vectors,
		wordToID: wordToID,
		idToWord: words,
		dim:      dim,
	}, nil
}

// Load reads a GloVe-format text file: one word per line followed by its
// whitespace-separated vector components.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open embedding file: %w", err)
	}
	defer f.Close()

	vectors := make(map[string][]float64)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	dim := 0
	line := 0
	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, fmt.Errorf("%s line %d: no vector components", path, line)
		}

		word := fields[0]
		vec := make([]float64, len(fields)-1)
		for i, s := range fields[1:] {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: failed to parse component %d: %w", path, line, i, err)
			}
			vec[i] = v
		}

		if dim == 0 {
			dim = len(vec)
		} else if len(vec) != dim {
			return nil, &emojifier.DimensionMismatchError{
				Expected: dim,
				Actual:   len(vec),
				Context:  fmt.Sprintf("%s line %d (%s)", path, line, word),
			}
		}

		vectors[word] = vec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read embedding file: %w", err)
	}

	return New(vectors)
}

// Lookup returns the vector for the given word. Callers must not mutate the
// returned slice.
func (t *Table) Lookup(word string) ([]float64, bool) {
	vec, ok := t.vectors[word]
	return vec, ok
}

// Dim returns the length of every vector in the table.
func (t *Table) Dim() int {
	return t.dim
}

// Size returns the number of words in the vocabulary.
func (t *Table) Size() int {
	return len(t.idToWord)
}

// ID returns the integer id assigned to the word.
func (t *Table) ID(word string) (int, bool) {
	id, ok := t.wordToID[word]
	return id, ok
}

// Word returns the word assigned the given id.
func (t *Table) Word(id int) (string, bool) {
	if id < 0 || id >= len(t.idToWord) {
		return "", false
	}
	return t.idToWord[id], true
}
