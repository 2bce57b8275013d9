package featurize

import (
	"itgfeat/alg/featurevector"
	nlp "itgfeat/nlp/types"
)

// Features maps each rule instance, by identity, to its feature vector.
// Every featurized rule gets an entry, even when its vector is empty.
type Features map[*nlp.Rule]featurevector.Sparse

func (f Features) Add(rule *nlp.Rule, fmap featurevector.Sparse) {
	f[rule] = fmap
}

func (f Features) Get(rule *nlp.Rule) (featurevector.Sparse, bool) {
	fmap, exists := f[rule]
	return fmap, exists
}

func (f Features) Len() int {
	return len(f)
}

// Merge folds all entries of other into f; identical rule instances keep
// the entry merged last.
func (f Features) Merge(other Features) Features {
	for rule, fmap := range other {
		f[rule] = fmap
	}
	return f
}

func NewFeatures() Features {
	return make(Features)
}
