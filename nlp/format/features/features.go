package features

// Package features writes computed feature vectors
// one line per rule: the rule, a tab, then name=value pairs sorted by name
// a blank line ends a forest block, mirroring the forest input format

import (
	"itgfeat/alg/featurevector"
	"itgfeat/nlp/featurize"
	nlp "itgfeat/nlp/types"

	"fmt"
	"io"
	"os"
	"sort"
)

func writeRule(writer io.Writer, rule *nlp.Rule, fmap featurevector.Sparse) error {
	names := make([]string, 0, len(fmap))
	for feat := range fmap {
		names = append(names, string(feat))
	}
	sort.Strings(names)
	if _, err := fmt.Fprint(writer, rule.String()); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(writer, "\t%s=%v", name, fmap[featurevector.Feature(name)]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(writer)
	return err
}

// Write renders the feature maps of each forest, rules in input order and
// feature names sorted, so repeated runs produce identical output. A best
// derivation's designated terminal rule is a distinct instance from the
// forest's rules; when derivations are given, its entry ends the block.
func Write(writer io.Writer, forests []nlp.Forest, derivations []nlp.Derivation, feats featurize.Features) error {
	for i, forest := range forests {
		for _, rule := range forest {
			fmap, exists := feats.Get(rule)
			if !exists {
				continue
			}
			if err := writeRule(writer, rule, fmap); err != nil {
				return err
			}
		}
		if derivations != nil && i < len(derivations) {
			if rule := derivations[i].TerminalRule(); rule != nil {
				if fmap, exists := feats.Get(rule); exists {
					if err := writeRule(writer, rule, fmap); err != nil {
						return err
					}
				}
			}
		}
		if _, err := fmt.Fprintln(writer); err != nil {
			return err
		}
	}
	return nil
}

func WriteFile(filename string, forests []nlp.Forest, derivations []nlp.Derivation, feats featurize.Features) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return Write(file, forests, derivations, feats)
}
