package app

import (
	"itgfeat/nlp/featurize"
	"itgfeat/nlp/format/embed"
	"itgfeat/nlp/format/features"
	"itgfeat/nlp/format/forest"
	"itgfeat/nlp/format/ibm1"
	"itgfeat/nlp/format/raw"
	nlp "itgfeat/nlp/types"
	"itgfeat/util"

	"log"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"
)

// An approximation of the number of distinct word classes; pre-allocating
// the enumeration saves reallocation while reading cluster files
const APPROX_WORD_CLASSES = 1024

func FeaturizeConfigOut(options featurize.FeatureOptions) {
	log.Println("Configuration")
	log.Printf("Forests:\t\t%s", forestsFile)
	log.Printf("Source:\t\t%s", sourceFile)
	if len(targetFile) > 0 {
		log.Printf("Target:\t\t%s", targetFile)
	}
	if len(derivationsFile) > 0 {
		log.Printf("Derivations:\t%s", derivationsFile)
	}
	log.Printf("IBM-1 Table:\t%s", ibm1File)
	log.Printf("Source Emb.:\t%s", srcEmbFile)
	log.Printf("Target Emb.:\t%s", tgtEmbFile)
	log.Printf("Word Classes:\t%v", options.WordClassFeatures)
	log.Printf("Dense Emb.:\t%v", options.DenseWordEmbFeatures)
	log.Printf("Sparse Words:\t%v", options.SparseWordFeatures)
	if limit > 0 {
		log.Printf("Limit:\t\t%v", limit)
	}
	log.Printf("Output:\t\t%s", outputFile)
}

func Featurize(cmd *commander.Command, args []string) error {
	required := []string{"f", "i", "ibm1", "se", "te", "o"}
	VerifyFlags(cmd, required)
	for _, filename := range []string{forestsFile, sourceFile, ibm1File, srcEmbFile, tgtEmbFile} {
		if !VerifyExists(filename) {
			return errors.Errorf("missing input file %s", filename)
		}
	}

	options := featurize.DefaultOptions()
	if len(optionsFile) > 0 {
		var err error
		options, err = featurize.LoadOptionsConfFile(optionsFile)
		if err != nil {
			return err
		}
	}
	if allOut {
		FeaturizeConfigOut(options)
	}

	forests, err := forest.ReadFile(forestsFile)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Read", len(forests), "forests from", forestsFile)
	}
	sources, err := raw.ReadFile(sourceFile, limit)
	if err != nil {
		return err
	}
	if len(sources) != len(forests) {
		return errors.Errorf("got %d source sentences for %d forests", len(sources), len(forests))
	}

	var targets []nlp.BasicSentence
	if len(targetFile) > 0 {
		if targets, err = raw.ReadFile(targetFile, limit); err != nil {
			return err
		}
		if len(targets) != len(forests) {
			return errors.Errorf("got %d target sentences for %d forests", len(targets), len(forests))
		}
	}

	var derivations []nlp.Derivation
	if len(derivationsFile) > 0 {
		if derivations, err = forest.ReadDerivationsFile(derivationsFile); err != nil {
			return err
		}
		if len(derivations) != len(forests) {
			return errors.Errorf("got %d derivations for %d forests", len(derivations), len(forests))
		}
	}

	probs, err := ibm1.ReadFile(ibm1File)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Read", probs.Len(), "alignment probabilities from", ibm1File)
	}

	srcEmb, err := embed.ReadFile(srcEmbFile)
	if err != nil {
		return err
	}
	tgtEmb, err := embed.ReadFile(tgtEmbFile)
	if err != nil {
		return err
	}
	if allOut {
		log.Println("Read", srcEmb.Len(), "source and", tgtEmb.Len(), "target embeddings, dims",
			srcEmb.Dim(), "/", tgtEmb.Dim())
	}
	if len(srcClusterFile) > 0 {
		classes := util.NewEnumSet(APPROX_WORD_CLASSES)
		if err = embed.ReadClustersFile(srcClusterFile, srcEmb, classes); err != nil {
			return err
		}
	}
	if len(tgtClusterFile) > 0 {
		classes := util.NewEnumSet(APPROX_WORD_CLASSES)
		if err = embed.ReadClustersFile(tgtClusterFile, tgtEmb, classes); err != nil {
			return err
		}
	}

	batch := make([]featurize.BatchItem, len(forests))
	for i, f := range forests {
		batch[i] = featurize.BatchItem{Forest: f, Source: sources[i]}
		if derivations != nil {
			batch[i].Best = derivations[i]
		}
		if targets != nil {
			batch[i].Target = targets[i]
		}
	}

	featurizer := featurize.New(probs, srcEmb, tgtEmb, options)
	startTime := time.Now()
	feats := featurizer.FeaturizeBatch(batch)
	if allOut {
		log.Println("FEATURIZE Total Time:", time.Since(startTime))
		log.Println("Featurized", feats.Len(), "edges")
	}

	if err = features.WriteFile(outputFile, forests, derivations, feats); err != nil {
		return err
	}
	if allOut {
		log.Println("Wrote features to", outputFile)
	}
	return nil
}

func FeaturizeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       Featurize,
		UsageLine: "featurize <file options> [arguments]",
		Short:     "computes feature vectors for translation forest edges",
		Long: `
computes feature vectors for translation forest edges

	$ ./itgfeat featurize -f <forests> -i <source> -ibm1 <table> -se <src emb> -te <tgt emb> -o <output> [options]

`,
		Flag: *flag.NewFlagSet("featurize", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&forestsFile, "f", "", "Parse Forests File")
	cmd.Flag.StringVar(&sourceFile, "i", "", "Source Sentences File (raw format)")
	cmd.Flag.StringVar(&targetFile, "e", "", "Optional - Target Sentences File (raw format)")
	cmd.Flag.StringVar(&derivationsFile, "d", "", "Optional - Best Derivations File")
	cmd.Flag.StringVar(&ibm1File, "ibm1", "", "IBM-1 Alignment Probabilities File")
	cmd.Flag.StringVar(&srcEmbFile, "se", "", "Source Word Embeddings File")
	cmd.Flag.StringVar(&tgtEmbFile, "te", "", "Target Word Embeddings File")
	cmd.Flag.StringVar(&srcClusterFile, "sc", "", "Optional - Source Word Clusters File")
	cmd.Flag.StringVar(&tgtClusterFile, "tc", "", "Optional - Target Word Clusters File")
	cmd.Flag.StringVar(&optionsFile, "fc", "", "Optional - Feature Options Configuration File (yaml)")
	cmd.Flag.StringVar(&outputFile, "o", "", "Output Features File")
	cmd.Flag.IntVar(&limit, "limit", 0, "limit input corpus")
	return cmd
}
