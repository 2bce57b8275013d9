package embed

// Package embed reads word embedding tables in the word2vec text format:
// a "count dim" header line followed by one "word v1 .. vd" line per word.
// Cluster assignments come from a separate "word label" file; labels are
// enumerated to dense integer ids in file order.

import (
	"itgfeat/nlp/lex"
	"itgfeat/util"

	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func Read(reader io.Reader) (*lex.Embeddings, error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "embed")
		}
		return nil, errors.New("embed: empty input")
	}
	header := strings.Fields(scanner.Text())
	if len(header) != 2 {
		return nil, errors.Errorf("embed: malformed header %q", scanner.Text())
	}
	count, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, errors.Wrap(err, "embed: header count")
	}
	dim, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, errors.Wrap(err, "embed: header dimension")
	}
	if dim <= 0 {
		return nil, errors.Errorf("embed: non-positive dimension %d", dim)
	}

	embeddings := lex.NewEmbeddings(dim)
	lineNum := 1
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != dim+1 {
			return nil, errors.Errorf("embed: line %d: expected %d values, got %d", lineNum, dim, len(fields)-1)
		}
		vector := make([]float64, dim)
		for i, field := range fields[1:] {
			vector[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "embed: line %d", lineNum)
			}
		}
		if err := embeddings.Add(fields[0], vector); err != nil {
			return nil, errors.Wrapf(err, "embed: line %d", lineNum)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "embed")
	}
	if embeddings.Len() != count {
		return nil, errors.Errorf("embed: header declared %d words, read %d", count, embeddings.Len())
	}
	return embeddings, nil
}

func ReadFile(filename string) (*lex.Embeddings, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "embed: %s", filename)
	}
	defer file.Close()

	return Read(file)
}

func ReadClusters(reader io.Reader, embeddings *lex.Embeddings, classes *util.EnumSet) error {
	scanner := bufio.NewScanner(reader)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return errors.Errorf("clusters: line %d: expected 2 fields, got %d", lineNum, len(fields))
		}
		id, _ := classes.Add(fields[1])
		embeddings.SetCluster(fields[0], id)
	}
	return errors.Wrap(scanner.Err(), "clusters")
}

func ReadClustersFile(filename string, embeddings *lex.Embeddings, classes *util.EnumSet) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "clusters: %s", filename)
	}
	defer file.Close()

	return ReadClusters(file, embeddings, classes)
}
