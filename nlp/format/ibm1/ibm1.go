package ibm1

// Package ibm1 reads lexical translation probability tables
// each line holds a source word, a target word and a probability,
// whitespace separated; either word may be the -EPS- null marker

import (
	"itgfeat/nlp/lex"

	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const NUM_FIELDS = 3

func Read(reader io.Reader) (lex.AlignmentTable, error) {
	table := lex.NewAlignmentTable()
	scanner := bufio.NewScanner(reader)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != NUM_FIELDS {
			return nil, errors.Errorf("ibm1: line %d: expected %d fields, got %d", lineNum, NUM_FIELDS, len(fields))
		}
		prob, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "ibm1: line %d", lineNum)
		}
		if prob < 0.0 || prob > 1.0 {
			return nil, errors.Errorf("ibm1: line %d: probability %v out of range", lineNum, prob)
		}
		table.Set(fields[0], fields[1], prob)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "ibm1")
	}
	return table, nil
}

func ReadFile(filename string) (lex.AlignmentTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "ibm1: %s", filename)
	}
	defer file.Close()

	return Read(file)
}
