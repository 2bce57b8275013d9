package featurevector

import (
	"fmt"
	"sort"
	"strings"
)

type Feature string

// Sparse is a real-valued sparse feature vector. The zero weight is never
// stored; lookups of absent features yield 0.
type Sparse map[Feature]float64

func (v Sparse) Copy() Sparse {
	copied := make(Sparse, len(v))
	for k, val := range v {
		copied[k] = val
	}
	return copied
}

func (v Sparse) Add(other Sparse) Sparse {
	retvec := v.Copy()
	var val float64
	if other == nil {
		return retvec
	}
	for key, otherVal := range other {
		// v[key] == 0 if v[key] does not exist
		val = v[key] + otherVal
		if val != 0.0 {
			retvec[key] = val
		} else {
			delete(retvec, key)
		}
	}
	return retvec
}

func (v Sparse) Subtract(other Sparse) Sparse {
	retvec := v.Copy()
	var val float64
	if other == nil {
		return retvec
	}
	for key, otherVal := range other {
		val = v[key] - otherVal
		if val != 0.0 {
			retvec[key] = val
		} else {
			delete(retvec, key)
		}
	}
	return retvec
}

func (v Sparse) UpdateAdd(other Sparse) Sparse {
	if other == nil {
		return v
	}
	var val float64
	for key, otherVal := range other {
		val = v[key] + otherVal
		if val != 0.0 {
			v[key] = val
		} else {
			delete(v, key)
		}
	}
	return v
}

func (v Sparse) UpdateScalarDivide(byValue float64) Sparse {
	if byValue == 0.0 {
		panic("Divide by 0")
	}
	for i, val := range v {
		v[i] = val / byValue
	}
	return v
}

func (v Sparse) DotProduct(other Sparse) float64 {
	var result float64
	for i, val := range other {
		// v[i] == 0 if v[i] does not exist
		result += v[i] * val
	}
	return result
}

func (v Sparse) L1Norm() float64 {
	var result float64
	for _, val := range v {
		result += val
	}
	return result
}

// String renders features sorted by name so output is reproducible.
func (v Sparse) String() string {
	keys := make([]string, 0, len(v))
	for feat := range v {
		keys = append(keys, string(feat))
	}
	sort.Strings(keys)
	strs := make([]string, len(keys))
	for i, key := range keys {
		strs[i] = fmt.Sprintf("%v %v", key, v[Feature(key)])
	}
	return strings.Join(strs, "\n")
}

func NewSparse() Sparse {
	return make(Sparse)
}
