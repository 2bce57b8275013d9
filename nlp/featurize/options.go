package featurize

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// FeatureOptions toggles the optional feature families. All families are
// enabled by default; an options file only needs to name the ones it turns
// off.
type FeatureOptions struct {
	WordClassFeatures    bool `yaml:"word class features"`
	DenseWordEmbFeatures bool `yaml:"dense word embedding features"`
	SparseWordFeatures   bool `yaml:"sparse word features"`
}

func DefaultOptions() FeatureOptions {
	return FeatureOptions{
		WordClassFeatures:    true,
		DenseWordEmbFeatures: true,
		SparseWordFeatures:   true,
	}
}

func LoadOptionsConf(conf []byte) (FeatureOptions, error) {
	options := DefaultOptions()
	if err := yaml.Unmarshal(conf, &options); err != nil {
		return options, errors.Wrap(err, "feature options")
	}
	return options, nil
}

func LoadOptionsConfFile(filename string) (FeatureOptions, error) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return DefaultOptions(), errors.Wrapf(err, "feature options %s", filename)
	}
	return LoadOptionsConf(data)
}
