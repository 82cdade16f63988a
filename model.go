package emojifier

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Model holds the trainable parameters of the softmax classifier: a weight
// matrix of shape (numClasses x dim) and a bias vector of length numClasses.
type Model struct {
	W *mat.Dense
	B *mat.VecDense
}

// NewModel initializes parameters from the given seed: weights are drawn
// from a standard normal scaled by 1/sqrt(dim), biases from a standard
// normal.
func NewModel(numClasses, dim int, seed int64) *Model {
	rng := rand.New(rand.NewSource(seed))

	scale := 1 / math.Sqrt(float64(dim))
	w := make([]float64, numClasses*dim)
	for i := range w {
		w[i] = rng.NormFloat64() * scale
	}

	b := make([]float64, numClasses)
	for i := range b {
		b[i] = rng.NormFloat64()
	}

	return &Model{
		W: mat.NewDense(numClasses, dim, w),
		B: mat.NewVecDense(numClasses, b),
	}
}

// NumClasses returns the number of output classes.
func (m *Model) NumClasses() int {
	r, _ := m.W.Dims()
	return r
}

// Dim returns the expected input vector length.
func (m *Model) Dim() int {
	_, c := m.W.Dims()
	return c
}

// Clone returns an independent copy of the parameters. The Trainer hands out
// clones so callers can keep a snapshot while training continues elsewhere.
func (m *Model) Clone() *Model {
	var w mat.Dense
	w.CloneFrom(m.W)

	var b mat.VecDense
	b.CloneFromVec(m.B)

	return &Model{W: &w, B: &b}
}

// Forward computes the class probability distribution for an encoded vector:
// z = W*x + b followed by softmax. x must have length Dim().
func (m *Model) Forward(x mat.Vector) []float64 {
	var z mat.VecDense
	z.MulVec(m.W, x)
	z.AddVec(&z, m.B)

	return softmax(z.RawVector().Data)
}

// Predict returns the argmax class for an encoded vector along with the full
// probability distribution. Ties resolve to the lowest class index.
func (m *Model) Predict(x mat.Vector) Prediction {
	probs := m.Forward(x)

	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}

	return Prediction{Label: best, Probs: probs}
}

// softmax maps logits to a probability distribution. The max logit is
// subtracted before exponentiation so large-magnitude inputs cannot overflow.
func softmax(z []float64) []float64 {
	maxz := z[0]
	for _, v := range z[1:] {
		if v > maxz {
			maxz = v
		}
	}

	out := make([]float64, len(z))
	var sum float64
	for i, v := range z {
		e := math.Exp(v - maxz)
		out[i] = e
		sum += e
	}

	for i := range out {
		out[i] /= sum
	}

	return out
}

// OneHot returns the standard-basis vector for label y over numClasses
// classes. Labels outside [0, numClasses) fail with DimensionMismatchError.
func OneHot(y, numClasses int) ([]float64, error) {
	if y < 0 || y >= numClasses {
		return nil, &DimensionMismatchError{Expected: numClasses, Actual: y, Context: "label out of range"}
	}

	v := make([]float64, numClasses)
	v[y] = 1

	return v, nil
}

// crossEntropy computes -sum_k y_k*log(a_k) for a one-hot y, which reduces
// to -log(a_y).
func crossEntropy(probs []float64, label int) float64 {
	return -math.Log(probs[label])
}
