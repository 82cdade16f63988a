package embedding_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/FrenchMajesty/emojifier"
	"github.com/FrenchMajesty/emojifier/embedding"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vectors.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// TestLoad_ParsesGloveFormat tests that a GloVe-style text file loads into a
// table with the right dimension, vectors and indices
func TestLoad_ParsesGloveFormat(t *testing.T) {
	path := writeFixture(t, "the 0.1 0.2 0.3\nlove 1.0 0.0 -0.5\napple -0.4 0.9 0.25\n")

	table, err := embedding.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if table.Dim() != 3 {
		t.Errorf("Expected dimension 3, got %d", table.Dim())
	}
	if table.Size() != 3 {
		t.Errorf("Expected 3 words, got %d", table.Size())
	}

	vec, ok := table.Lookup("love")
	if !ok {
		t.Fatal("Expected \"love\" to be present")
	}
	want := []float64{1.0, 0.0, -0.5}
	for i, w := range want {
		if vec[i] != w {
			t.Errorf("love[%d] = %v, want %v", i, vec[i], w)
		}
	}

	if _, ok := table.Lookup("banana"); ok {
		t.Error("Expected \"banana\" to be absent")
	}
}

// TestLoad_BuildsContiguousSortedIndices tests that word ids span the
// vocabulary contiguously from 0 in sorted word order
func TestLoad_BuildsContiguousSortedIndices(t *testing.T) {
	path := writeFixture(t, "the 0.1 0.2\nlove 1.0 0.0\napple -0.4 0.9\n")

	table, err := embedding.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Sorted order: apple, love, the.
	wantOrder := []string{"apple", "love", "the"}
	for id, word := range wantOrder {
		gotID, ok := table.ID(word)
		if !ok || gotID != id {
			t.Errorf("ID(%q) = %d, %v, want %d, true", word, gotID, ok, id)
		}

		gotWord, ok := table.Word(id)
		if !ok || gotWord != word {
			t.Errorf("Word(%d) = %q, %v, want %q, true", id, gotWord, ok, word)
		}
	}

	if _, ok := table.Word(3); ok {
		t.Error("Expected no word for id 3")
	}
	if _, ok := table.Word(-1); ok {
		t.Error("Expected no word for id -1")
	}
}

// TestLoad_DimensionMismatch tests that mixed vector lengths fail with
// DimensionMismatchError
func TestLoad_DimensionMismatch(t *testing.T) {
	path := writeFixture(t, "the 0.1 0.2 0.3\nlove 1.0 0.0\n")

	_, err := embedding.Load(path)
	if err == nil {
		t.Fatal("Expected error for mixed vector lengths, got nil")
	}

	var dimErr *emojifier.DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Fatalf("Expected DimensionMismatchError, got %T", err)
	}
	if dimErr.Expected != 3 || dimErr.Actual != 2 {
		t.Errorf("Expected mismatch 3 vs 2, got %d vs %d", dimErr.Expected, dimErr.Actual)
	}
}

// TestLoad_BadComponent tests that an unparseable vector component fails
func TestLoad_BadComponent(t *testing.T) {
	path := writeFixture(t, "the 0.1 oops 0.3\n")

	if _, err := embedding.Load(path); err == nil {
		t.Error("Expected error for unparseable component, got nil")
	}
}

// TestLoad_MissingFile tests that a nonexistent path fails
func TestLoad_MissingFile(t *testing.T) {
	if _, err := embedding.Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

// TestNew_EmptyTable tests that an empty vector map is rejected
func TestNew_EmptyTable(t *testing.T) {
	if _, err := embedding.New(nil); err == nil {
		t.Error("Expected error for empty table, got nil")
	}
}

// TestNew_MixedLengths tests that New validates vector lengths
func TestNew_MixedLengths(t *testing.T) {
	_, err := embedding.New(map[string][]float64{
		"a": {1, 2},
		"b": {1, 2, 3},
	})
	if err == nil {
		t.Fatal("Expected error for mixed lengths, got nil")
	}

	var dimErr *emojifier.DimensionMismatchError
	if !errors.As(err, &dimErr) {
		t.Errorf("Expected DimensionMismatchError, got %T", err)
	}
}
