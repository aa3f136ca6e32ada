// Package index provides an in-memory flat vector index performing exact
// nearest-neighbor search by squared Euclidean distance.
package index

import (
	"errors"
	"sort"
	"sync"
)

// Flat is a brute-force L2 index. It is rebuilt wholesale for each upload;
// there is no incremental delete.
type Flat struct {
	mu      sync.RWMutex
	dim     int
	vectors [][]float32
}

// Result is one search hit: the insertion index of the vector and its
// squared L2 distance to the query.
type Result struct {
	Index    int
	Distance float64
}

// NewFlat creates an empty index for vectors of the given dimension.
func NewFlat(dimension int) (*Flat, error) {
	if dimension <= 0 {
		return nil, errors.New("invalid dimension")
	}
	return &Flat{dim: dimension}, nil
}

// Dimension returns the vector dimension the index was built for.
func (f *Flat) Dimension() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.dim
}

// Len returns the number of stored vectors.
func (f *Flat) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.vectors)
}

// Add appends vectors in order. Their insertion index identifies the chunk
// they embed.
func (f *Flat) Add(vectors [][]float32) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range vectors {
		if len(v) != f.dim {
			return errors.New("vector dimension mismatch")
		}
	}
	f.vectors = append(f.vectors, vectors...)
	return nil
}

// Search returns the k stored vectors closest to the query by squared L2
// distance, ascending. Ties are broken by insertion order.
func (f *Flat) Search(query []float32, k int) ([]Result, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if len(query) != f.dim {
		return nil, errors.New("query dimension mismatch")
	}
	if k <= 0 {
		return nil, nil
	}

	results := make([]Result, len(f.vectors))
	for i, v := range f.vectors {
		var sum float64
		for j := range v {
			d := float64(v[j]) - float64(query[j])
			sum += d * d
		}
		results[i] = Result{Index: i, Distance: sum}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Distance < results[b].Distance
	})

	if k > len(results) {
		k = len(results)
	}
	return results[:k], nil
}
