package lex

import (
	"fmt"
)

// UnknownCluster is the cluster id of words missing from the cluster
// assignment; real ids assigned by enumeration are always >= 0.
const UnknownCluster = -1

// Embeddings exposes a fixed-dimensionality dense vector and a cluster id
// per word. Lookups are total: unknown words yield the zero vector and
// UnknownCluster.
type Embeddings struct {
	dim      int
	vectors  map[string][]float64
	clusters map[string]int
}

func NewEmbeddings(dim int) *Embeddings {
	if dim <= 0 {
		panic(fmt.Sprintf("Embedding dimension must be positive, got %d", dim))
	}
	return &Embeddings{
		dim:      dim,
		vectors:  make(map[string][]float64),
		clusters: make(map[string]int),
	}
}

func (e *Embeddings) Dim() int {
	return e.dim
}

func (e *Embeddings) Len() int {
	return len(e.vectors)
}

func (e *Embeddings) Add(word string, vector []float64) error {
	if len(vector) != e.dim {
		return fmt.Errorf("vector for %q has dimension %d, table has %d", word, len(vector), e.dim)
	}
	e.vectors[word] = vector
	return nil
}

func (e *Embeddings) SetCluster(word string, id int) {
	e.clusters[word] = id
}

func (e *Embeddings) Vector(word string) []float64 {
	if vec, exists := e.vectors[word]; exists {
		return vec
	}
	return make([]float64, e.dim)
}

func (e *Embeddings) ClusterID(word string) int {
	if id, exists := e.clusters[word]; exists {
		return id
	}
	return UnknownCluster
}
