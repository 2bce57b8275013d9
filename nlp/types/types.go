package types

import (
	"itgfeat/util"

	"reflect"
)

type Token string

type Sentence interface {
	util.Equaler
	Tokens() []string
}

type BasicSentence []Token

var _ Sentence = BasicSentence{}

func (b BasicSentence) Tokens() []string {
	retval := make([]string, len(b))
	for i, val := range b {
		retval[i] = string(val)
	}
	return retval
}

func (b BasicSentence) Equal(other util.Equaler) bool {
	asBasic := other.(BasicSentence)
	return reflect.DeepEqual(b, asBasic)
}
