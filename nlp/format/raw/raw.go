package raw

// Package raw reads raw format files
// raw files contain a token per line
// sentences end with a new line

import (
	nlp "itgfeat/nlp/types"

	"bufio"
	"io"
	"os"
)

func Read(reader io.Reader, limit int) ([]nlp.BasicSentence, error) {
	var sentences []nlp.BasicSentence
	scanner := bufio.NewScanner(reader)
	currentSent := make(nlp.BasicSentence, 0, 10)
	for scanner.Scan() {
		line := scanner.Text()
		// an empty line indicates a new record; runs of empty lines
		// do not produce empty sentences
		if len(line) == 0 {
			if len(currentSent) > 0 {
				sentences = append(sentences, currentSent)
				if limit > 0 && len(sentences) >= limit {
					return sentences, nil
				}
				currentSent = make(nlp.BasicSentence, 0, 10)
			}
		} else {
			currentSent = append(currentSent, nlp.Token(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(currentSent) > 0 {
		sentences = append(sentences, currentSent)
	}
	return sentences, nil
}

func ReadFile(filename string, limit int) ([]nlp.BasicSentence, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Read(file, limit)
}

func Write(writer io.Writer, sents []nlp.BasicSentence) {
	for _, sent := range sents {
		for _, token := range sent {
			writer.Write([]byte(token))
			writer.Write([]byte{'\n'})
		}
		writer.Write([]byte{'\n'})
	}
}

func WriteFile(filename string, sents []nlp.BasicSentence) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	Write(file, sents)
	return nil
}
