package featurize

import (
	"itgfeat/alg/featurevector"
	"itgfeat/nlp/lex"
	nlp "itgfeat/nlp/types"

	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Smoothing is added to alignment probabilities before taking a logarithm
// so that unseen pairs stay finite.
const Smoothing = 1e-10

// Featurizer maps each rule instance of a parse forest to a sparse feature
// vector, combining rule-type indicators, smoothed IBM-1 log-probabilities,
// lexical and word-class indicators, skip-gram pairs and embedding-derived
// dense contributions. All lookups are read-only; rules are featurized
// independently of one another.
type Featurizer struct {
	Probs   lex.AlignmentTable
	SrcEmb  *lex.Embeddings
	TgtEmb  *lex.Embeddings
	Options FeatureOptions
}

func New(probs lex.AlignmentTable, srcEmb, tgtEmb *lex.Embeddings, options FeatureOptions) *Featurizer {
	return &Featurizer{
		Probs:   probs,
		SrcEmb:  srcEmb,
		TgtEmb:  tgtEmb,
		Options: options,
	}
}

// BatchItem pairs one parse forest with its best derivation and the raw
// sentence pair it was parsed from. The target sentence is accepted for
// interface symmetry; featurization does not consult it.
type BatchItem struct {
	Forest nlp.Forest
	Best   nlp.Derivation
	Source nlp.BasicSentence
	Target nlp.BasicSentence
}

// Featurize builds the source lattice once, featurizes every rule of the
// forest and, when a best derivation is given, its designated terminal rule.
func (f *Featurizer) Featurize(forest nlp.Forest, best nlp.Derivation, source nlp.BasicSentence) Features {
	lattice := nlp.NewSourceLattice(source)
	features := make(Features, len(forest)+1)
	for _, edge := range forest {
		features.Add(edge, f.FeaturizeEdge(edge, lattice))
	}
	if rule := best.TerminalRule(); rule != nil {
		features.Add(rule, f.FeaturizeEdge(rule, lattice))
	}
	return features
}

// FeaturizeBatch featurizes a batch of items into a single container.
func (f *Featurizer) FeaturizeBatch(batch []BatchItem) Features {
	features := NewFeatures()
	for _, item := range batch {
		features.Merge(f.Featurize(item.Forest, item.Best, item.Source))
	}
	return features
}

// FeaturizeEdge computes the feature vector of a single rule instance.
// Unclassified rules yield an empty vector.
func (f *Featurizer) FeaturizeEdge(rule *nlp.Rule, lattice *nlp.SourceLattice) featurevector.Sparse {
	fmap := featurevector.NewSparse()
	switch class := Classify(rule); class {
	case ClassBinary:
		f.featurizeBinary(rule, lattice, fmap)
	case ClassTerminal, ClassDeletion, ClassInsertion, ClassTranslation:
		f.featurizeTerminal(rule, class, lattice, fmap)
	case ClassStart:
		fmap["top"] += 1.0
	case ClassUpgrade:
		f.featurizeUpgrade(rule, fmap)
	case ClassNone:
	}
	return fmap
}

func (f *Featurizer) featurizeBinary(rule *nlp.Rule, lattice *nlp.SourceLattice, fmap featurevector.Sparse) {
	fmap["type:binary"] += 1.0

	lhs := rule.LHS.(nlp.Span)
	if lhs.Label == nlp.DeletionLabel {
		fmap["binary:recursive_deletion"] += 1.0
		return
	}
	if lhs.Label != nlp.SpanLabel {
		return
	}
	rhs1 := rule.RHS[0].(nlp.Span)
	rhs2 := rule.RHS[1].(nlp.Span)

	// The target side visits the second sub-span first iff both start at
	// the lhs start.
	if lhs.Start == rhs2.Start {
		fmap["binary:inverted"] += 1.0
	} else {
		fmap["binary:monotone"] += 1.0
	}

	// The inside span of X rules represents the phrase as the sum of its
	// source word vectors.
	inside := lattice.WordsInSpan(lhs.Start, lhs.End)
	if len(inside) == 0 {
		panic(fmt.Sprintf("Empty inside phrase for binary rule %v", rule))
	}
	insideRepr := make([]float64, f.SrcEmb.Dim())
	for _, word := range inside {
		floats.Add(insideRepr, f.SrcEmb.Vector(word))
	}
	for dim, val := range insideRepr {
		fmap[featurevector.Feature(fmt.Sprintf("inside-phrase-%d", dim))] = val
	}

	outside := append(lattice.WordsInSpan(0, lhs.Start),
		lattice.WordsInSpan(lhs.End, lattice.NumStates())...)
	if len(outside) > 0 {
		outsideRepr := make([]float64, f.SrcEmb.Dim())
		for _, word := range outside {
			floats.Add(outsideRepr, f.SrcEmb.Vector(word))
		}
		for dim, val := range outsideRepr {
			fmap[featurevector.Feature(fmt.Sprintf("outside-phrase-%d", dim))] = val
		}
	}

	// Skip-gram features over the rhs phrase.
	rhsPhrase := append(lattice.WordsInSpan(rhs1.Start, rhs1.End),
		lattice.WordsInSpan(rhs2.Start, rhs2.End)...)
	for i := 0; i < len(rhsPhrase); i++ {
		for j := i + 1; j < len(rhsPhrase); j++ {
			fmap[featurevector.Feature("skip-gram:"+rhsPhrase[i]+"/"+rhsPhrase[j])] += 1.0
		}
	}
	if f.Options.WordClassFeatures {
		classes := make([]int, len(rhsPhrase))
		for i, word := range rhsPhrase {
			classes[i] = f.SrcEmb.ClusterID(word)
		}
		for i := 0; i < len(classes); i++ {
			for j := i + 1; j < len(classes); j++ {
				fmap[featurevector.Feature(fmt.Sprintf("skip-gram:word-classes:%d/%d", classes[i], classes[j]))] += 1.0
			}
		}
	}

	fmap[featurevector.Feature(fmt.Sprintf("source-span-len-%d", lhs.End-lhs.Start))] += 1.0
}

func (f *Featurizer) featurizeTerminal(rule *nlp.Rule, class RuleClass, lattice *nlp.SourceLattice, fmap featurevector.Sparse) {
	fmap["type:terminal"] += 1.0

	switch class {
	case ClassDeletion:
		fmap["type:deletion"] += 1.0
		lhs := rule.LHS.(nlp.Span)
		srcWord := lattice.WordInSpan(lhs.Start, lhs.End)
		fmap["ibm1:del:logprob"] += math.Log(f.Probs.Probability(srcWord, string(nlp.Epsilon)) + Smoothing)
		if f.Options.SparseWordFeatures {
			fmap[featurevector.Feature("del:"+srcWord)] += 1.0
		}
		if f.Options.WordClassFeatures && f.Options.SparseWordFeatures {
			fmap[featurevector.Feature(fmt.Sprintf("del:class:%d", f.SrcEmb.ClusterID(srcWord)))] += 1.0
		}
		if f.Options.DenseWordEmbFeatures {
			for i, val := range f.SrcEmb.Vector(srcWord) {
				fmap[featurevector.Feature(fmt.Sprintf("del:emb:dim-%d", i))] = val
			}
		}
	case ClassInsertion:
		fmap["type:insertion"] += 1.0
		fmap["target-len"] += 1.0
		tgtWord := string(rule.RHS[0].(nlp.Terminal))
		fmap["ibm1:ins:logprob"] += math.Log(f.Probs.Probability(string(nlp.Epsilon), tgtWord) + Smoothing)
		if f.Options.SparseWordFeatures {
			fmap[featurevector.Feature("ins:"+tgtWord)] += 1.0
		}
		if f.Options.WordClassFeatures && f.Options.SparseWordFeatures {
			fmap[featurevector.Feature(fmt.Sprintf("ins:class:%d", f.TgtEmb.ClusterID(tgtWord)))] += 1.0
		}
		if f.Options.DenseWordEmbFeatures {
			for i, val := range f.TgtEmb.Vector(tgtWord) {
				fmap[featurevector.Feature(fmt.Sprintf("ins:emb:dim-%d", i))] = val
			}
		}
	case ClassTranslation:
		fmap["type:translation"] += 1.0
		fmap["target-len"] += 1.0
		lhs := rule.LHS.(nlp.Span)
		srcWord := lattice.WordInSpan(lhs.Start, lhs.End)
		tgtWord := string(rule.RHS[0].(nlp.Terminal))
		forward := f.Probs.Probability(srcWord, tgtWord)
		backward := f.Probs.Probability(tgtWord, srcWord)
		fmap["ibm1:x2y:logprob"] += math.Log(forward + Smoothing)
		fmap["ibm1:y2x:logprob"] += math.Log(backward + Smoothing)
		fmap["ibm1:geometric:log"] += math.Log(math.Sqrt(forward*backward+Smoothing) + Smoothing)
		if f.Options.SparseWordFeatures {
			fmap[featurevector.Feature("trans:"+srcWord+"/"+tgtWord)] += 1.0
		}
		if f.Options.WordClassFeatures && f.Options.SparseWordFeatures {
			fmap[featurevector.Feature(fmt.Sprintf("trans:class:%d/%d",
				f.SrcEmb.ClusterID(srcWord), f.TgtEmb.ClusterID(tgtWord)))] += 1.0
		}
		if f.Options.DenseWordEmbFeatures {
			srcVec := f.SrcEmb.Vector(srcWord)
			tgtVec := f.TgtEmb.Vector(tgtWord)
			for i := range srcVec {
				fmap[featurevector.Feature(fmt.Sprintf("trans:emb:dim-%d", i))] = srcVec[i] - tgtVec[i]
			}
		}
	}
}

func (f *Featurizer) featurizeUpgrade(rule *nlp.Rule, fmap featurevector.Sparse) {
	rhs, isSpan := rule.RHS[0].(nlp.Span)
	if !isSpan {
		return
	}
	switch rhs.Label {
	case nlp.TranslationLabel:
		fmap["type:upgrade_t"] += 1.0
	case nlp.DeletionLabel:
		fmap["type:upgrade_d"] += 1.0
	}
}
