package lex

// AlignmentTable holds IBM-1 style lexical translation probabilities keyed
// by an ordered (source, target) word pair. Either side may be the epsilon
// marker for deletion and insertion events. Unseen pairs have probability 0;
// smoothing is the consumer's policy.
type AlignmentTable map[[2]string]float64

func (t AlignmentTable) Probability(src, tgt string) float64 {
	return t[[2]string{src, tgt}]
}

func (t AlignmentTable) Set(src, tgt string, prob float64) {
	t[[2]string{src, tgt}] = prob
}

func (t AlignmentTable) Len() int {
	return len(t)
}

func NewAlignmentTable() AlignmentTable {
	return make(AlignmentTable)
}
