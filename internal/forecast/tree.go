package forecast

import (
	"math"
	"math/rand"
	"sort"
)

// regressionTree is a CART-style decision tree grown by variance reduction.
// Splits consider only a random subset of features, which is what
// decorrelates the trees of a forest.
type regressionTree struct {
	root *treeNode
}

type treeNode struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
}

// treeParams controls tree growth.
type treeParams struct {
	maxFeatures     int // features examined per split
	minSamplesSplit int
}

// growTree builds a tree over the sample indices idx. The caller's rng drives
// feature subset selection; trees must be grown sequentially from one seeded
// source to keep the forest reproducible.
func growTree(x [][]float64, y []float64, idx []int, p treeParams, rng *rand.Rand) *regressionTree {
	return &regressionTree{root: buildNode(x, y, idx, p, rng)}
}

func buildNode(x [][]float64, y []float64, idx []int, p treeParams, rng *rand.Rand) *treeNode {
	if len(idx) < p.minSamplesSplit || pure(y, idx) {
		return &treeNode{leaf: true, value: meanAt(y, idx)}
	}

	feature, threshold, ok := bestSplit(x, y, idx, p, rng)
	if !ok {
		return &treeNode{leaf: true, value: meanAt(y, idx)}
	}

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &treeNode{leaf: true, value: meanAt(y, idx)}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      buildNode(x, y, left, p, rng),
		right:     buildNode(x, y, right, p, rng),
	}
}

// bestSplit scans a random feature subset for the threshold minimising the
// summed squared error of the two children.
func bestSplit(x [][]float64, y []float64, idx []int, p treeParams, rng *rand.Rand) (feature int, threshold float64, ok bool) {
	numFeatures := len(x[idx[0]])
	features := sampleFeatures(numFeatures, p.maxFeatures, rng)

	bestSSE := math.Inf(1)
	order := make([]int, len(idx))

	for _, f := range features {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool { return x[order[a]][f] < x[order[b]][f] })

		// Prefix sums over the sorted targets let every split position be
		// scored in one pass.
		var sumL, sqL float64
		sumR, sqR := 0.0, 0.0
		for _, i := range order {
			sumR += y[i]
			sqR += y[i] * y[i]
		}

		for k := 0; k < len(order)-1; k++ {
			yi := y[order[k]]
			sumL += yi
			sqL += yi * yi
			sumR -= yi
			sqR -= yi * yi

			a, b := x[order[k]][f], x[order[k+1]][f]
			if a == b {
				continue // cannot split between equal values
			}

			nL, nR := float64(k+1), float64(len(order)-k-1)
			sse := (sqL - sumL*sumL/nL) + (sqR - sumR*sumR/nR)
			if sse < bestSSE {
				bestSSE = sse
				feature = f
				threshold = (a + b) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

// sampleFeatures draws k distinct feature indices without replacement.
func sampleFeatures(n, k int, rng *rand.Rand) []int {
	if k >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}
	perm := rng.Perm(n)
	return perm[:k]
}

func (t *regressionTree) predict(x []float64) float64 {
	node := t.root
	for !node.leaf && node.left != nil {
		if x[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

func pure(y []float64, idx []int) bool {
	first := y[idx[0]]
	for _, i := range idx[1:] {
		if y[i] != first {
			return false
		}
	}
	return true
}

func meanAt(y []float64, idx []int) float64 {
	sum := 0.0
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}
