package emojifier_test

import (
	"errors"
	"math"
	"testing"

	"github.com/FrenchMajesty/emojifier"
	"gonum.org/v1/gonum/mat"
)

// TestOneHot_Bijection tests that every valid label maps onto the matching
// standard basis vector
func TestOneHot_Bijection(t *testing.T) {
	const numClasses = 5

	for y := 0; y < numClasses; y++ {
		v, err := emojifier.OneHot(y, numClasses)
		if err != nil {
			t.Fatalf("OneHot(%d) failed: %v", y, err)
		}

		if len(v) != numClasses {
			t.Fatalf("Expected length %d, got %d", numClasses, len(v))
		}

		for i, entry := range v {
			want := 0.0
			if i == y {
				want = 1.0
			}
			if entry != want {
				t.Errorf("OneHot(%d)[%d] = %v, want %v", y, i, entry, want)
			}
		}
	}
}

// TestOneHot_OutOfRange tests that labels outside [0, numClasses) are rejected
func TestOneHot_OutOfRange(t *testing.T) {
	for _, y := range []int{-1, 5, 100} {
		_, err := emojifier.OneHot(y, 5)
		if err == nil {
			t.Fatalf("Expected error for label %d, got nil", y)
		}

		var dimErr *emojifier.DimensionMismatchError
		if !errors.As(err, &dimErr) {
			t.Errorf("Expected DimensionMismatchError for label %d, got %T", y, err)
		}
	}
}

// TestForward_ProbabilitySimplex tests that forward outputs are non-negative
// and sum to 1 even for large-magnitude logits
func TestForward_ProbabilitySimplex(t *testing.T) {
	model := &emojifier.Model{
		W: mat.NewDense(5, 2, []float64{
			1000, 0,
			-1000, 0,
			0, 1000,
			0, -1000,
			0.5, 0.5,
		}),
		B: mat.NewVecDense(5, []float64{0, 1, -1, 500, -500}),
	}

	inputs := [][]float64{
		{0.1, -0.2},
		{1000, 1000},
		{-1e6, 1e6},
	}

	for _, in := range inputs {
		probs := model.Forward(mat.NewVecDense(2, in))

		sum := 0.0
		for i, p := range probs {
			if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
				t.Fatalf("Forward(%v)[%d] = %v, want a finite non-negative probability", in, i, p)
			}
			sum += p
		}

		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("Forward(%v) probabilities sum to %v, want 1", in, sum)
		}
	}
}

// TestPredict_Deterministic tests that identical inputs and parameters always
// yield the same output
func TestPredict_Deterministic(t *testing.T) {
	model := emojifier.NewModel(5, 2, 42)
	x := mat.NewVecDense(2, []float64{0.3, -0.7})

	first := model.Predict(x)
	for i := 0; i < 5; i++ {
		next := model.Predict(x)
		if next.Label != first.Label {
			t.Fatalf("Predict returned label %d, want %d", next.Label, first.Label)
		}
		for k := range next.Probs {
			if next.Probs[k] != first.Probs[k] {
				t.Fatalf("Predict probability %d = %v, want %v", k, next.Probs[k], first.Probs[k])
			}
		}
	}
}

// TestPredict_TieBreaksLowestIndex tests that equal probabilities resolve to
// the lowest class index
func TestPredict_TieBreaksLowestIndex(t *testing.T) {
	model := &emojifier.Model{
		W: mat.NewDense(5, 2, make([]float64, 10)),
		B: mat.NewVecDense(5, make([]float64, 5)),
	}

	pred := model.Predict(mat.NewVecDense(2, []float64{0.4, 0.6}))
	if pred.Label != 0 {
		t.Errorf("Expected tie to break to label 0, got %d", pred.Label)
	}
}

// TestNewModel_SeededInitIsReproducible tests that the same seed produces
// identical parameters
func TestNewModel_SeededInitIsReproducible(t *testing.T) {
	a := emojifier.NewModel(5, 3, 7)
	b := emojifier.NewModel(5, 3, 7)

	if !mat.Equal(a.W, b.W) {
		t.Error("Expected identical weight matrices for the same seed")
	}
	if !mat.Equal(a.B, b.B) {
		t.Error("Expected identical bias vectors for the same seed")
	}
}

// TestClone_IsIndependent tests that mutating a clone leaves the original
// parameters untouched
func TestClone_IsIndependent(t *testing.T) {
	model := emojifier.NewModel(5, 2, 1)
	clone := model.Clone()

	before := model.W.At(0, 0)
	clone.W.Set(0, 0, before+100)
	clone.B.SetVec(0, -42)

	if model.W.At(0, 0) != before {
		t.Error("Mutating the clone's weights changed the original")
	}
}
