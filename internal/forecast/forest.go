package forecast

import (
	"math/rand"
)

// Forest is an ensemble regressor: many decision trees, each trained on a
// bootstrap resample with random feature subsets, predicting the mean of the
// per-tree predictions. Hand-rolled and dependency-free: the inputs here are
// a few thousand rows at most, well inside interactive latency.
type Forest struct {
	NumTrees int
	Seed     int64

	trees []*regressionTree
}

// NewForest creates an unfitted forest. A fixed seed makes the fit (and so
// the forecast) bit-for-bit reproducible for a given input.
func NewForest(numTrees int, seed int64) *Forest {
	return &Forest{NumTrees: numTrees, Seed: seed}
}

// Fit trains the ensemble on the given matrix and targets.
func (f *Forest) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(y) == 0 {
		return &ModelFitError{Reason: "no training rows"}
	}
	if len(x) != len(y) {
		return &ModelFitError{Reason: "feature/target length mismatch"}
	}
	if f.NumTrees <= 0 {
		return &ModelFitError{Reason: "tree count must be positive"}
	}

	rng := rand.New(rand.NewSource(f.Seed))
	params := treeParams{
		maxFeatures:     maxFeaturesFor(len(x[0])),
		minSamplesSplit: 2,
	}

	f.trees = make([]*regressionTree, f.NumTrees)
	for t := 0; t < f.NumTrees; t++ {
		// Bootstrap resample: n draws with replacement.
		idx := make([]int, len(x))
		for i := range idx {
			idx[i] = rng.Intn(len(x))
		}
		f.trees[t] = growTree(x, y, idx, params, rng)
	}
	return nil
}

// Predict returns the mean prediction over all trees.
func (f *Forest) Predict(x []float64) (float64, error) {
	if len(f.trees) == 0 {
		return 0, &ModelFitError{Reason: "predict before fit"}
	}
	sum := 0.0
	for _, t := range f.trees {
		sum += t.predict(x)
	}
	return sum / float64(len(f.trees)), nil
}

// maxFeaturesFor is the per-split feature budget: one third of the features,
// the usual regression-forest default.
func maxFeaturesFor(n int) int {
	k := n / 3
	if k < 1 {
		k = 1
	}
	return k
}
