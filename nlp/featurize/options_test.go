package featurize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	options := DefaultOptions()
	assert.True(t, options.WordClassFeatures)
	assert.True(t, options.DenseWordEmbFeatures)
	assert.True(t, options.SparseWordFeatures)
}

func TestLoadOptionsConf(t *testing.T) {
	conf := []byte("word class features: false\nsparse word features: false\n")
	options, err := LoadOptionsConf(conf)
	require.NoError(t, err)
	assert.False(t, options.WordClassFeatures)
	assert.True(t, options.DenseWordEmbFeatures)
	assert.False(t, options.SparseWordFeatures)
}

func TestLoadOptionsConfEmptyKeepsDefaults(t *testing.T) {
	options, err := LoadOptionsConf(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultOptions(), options)
}
