package forest

// Package forest reads parse forests as rule lists
// one rule per line, e.g.
//   [X,0,2] -> [X,0,1] [X,1,2]
//   [T,1,2] -> 'chat'
//   [S] -> [X,0,2]
// a blank line ends a forest; one forest block per source sentence

import (
	nlp "itgfeat/nlp/types"

	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const RULE_SEPARATOR = "->"

func parseItem(token string) (nlp.Item, error) {
	if len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\'' {
		return nlp.Terminal(token[1 : len(token)-1]), nil
	}
	if len(token) < 3 || token[0] != '[' || token[len(token)-1] != ']' {
		return nil, errors.Errorf("malformed item %q", token)
	}
	fields := strings.Split(token[1:len(token)-1], ",")
	switch len(fields) {
	case 1:
		return nlp.Nonterminal(fields[0]), nil
	case 3:
		start, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "span start in %q", token)
		}
		end, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.Wrapf(err, "span end in %q", token)
		}
		if start > end {
			return nil, errors.Errorf("span %q starts after it ends", token)
		}
		return nlp.Span{Label: nlp.Nonterminal(fields[0]), Start: start, End: end}, nil
	}
	return nil, errors.Errorf("malformed item %q", token)
}

func ParseRule(line string) (*nlp.Rule, error) {
	sides := strings.SplitN(line, RULE_SEPARATOR, 2)
	if len(sides) != 2 {
		return nil, errors.Errorf("missing %q in rule %q", RULE_SEPARATOR, line)
	}
	lhsFields := strings.Fields(sides[0])
	if len(lhsFields) != 1 {
		return nil, errors.Errorf("rule %q must have exactly one lhs item", line)
	}
	lhs, err := parseItem(lhsFields[0])
	if err != nil {
		return nil, err
	}
	if _, isTerminal := lhs.(nlp.Terminal); isTerminal {
		return nil, errors.Errorf("rule %q has a terminal lhs", line)
	}
	rhsFields := strings.Fields(sides[1])
	if len(rhsFields) < 1 || len(rhsFields) > 2 {
		return nil, errors.Errorf("rule %q must have one or two rhs items", line)
	}
	rhs := make([]nlp.Item, len(rhsFields))
	for i, field := range rhsFields {
		if rhs[i], err = parseItem(field); err != nil {
			return nil, err
		}
	}
	return &nlp.Rule{LHS: lhs, RHS: rhs}, nil
}

func Read(reader io.Reader) ([]nlp.Forest, error) {
	var forests []nlp.Forest
	scanner := bufio.NewScanner(reader)
	current := make(nlp.Forest, 0, 10)
	var lineNum int
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			if len(current) > 0 {
				forests = append(forests, current)
				current = make(nlp.Forest, 0, 10)
			}
			continue
		}
		rule, err := ParseRule(line)
		if err != nil {
			return nil, errors.Wrapf(err, "forest: line %d", lineNum)
		}
		current = append(current, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "forest")
	}
	if len(current) > 0 {
		forests = append(forests, current)
	}
	return forests, nil
}

func ReadFile(filename string) ([]nlp.Forest, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "forest: %s", filename)
	}
	defer file.Close()

	return Read(file)
}

// ReadDerivations reads derivation blocks in the same rule format; the last
// rule of each block is the derivation's designated terminal rule.
func ReadDerivations(reader io.Reader) ([]nlp.Derivation, error) {
	forests, err := Read(reader)
	if err != nil {
		return nil, err
	}
	derivations := make([]nlp.Derivation, len(forests))
	for i, f := range forests {
		derivations[i] = nlp.Derivation(f)
	}
	return derivations, nil
}

func ReadDerivationsFile(filename string) ([]nlp.Derivation, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "derivations: %s", filename)
	}
	defer file.Close()

	return ReadDerivations(file)
}
