package search

import (
	"fmt"
	"regexp"
	"strings"
)

// FieldType names the widget attribute a condition looks at
type FieldType string

const (
	FieldTypeField FieldType = "type"
	FieldValue     FieldType = "value"
	FieldHandler   FieldType = "handler"
	FieldEvent     FieldType = "event"
	FieldSession   FieldType = "session"
	FieldAnywhere  FieldType = "any"
)

// Operator joins conditions or compares a field
type Operator string

const (
	OperatorEquals   Operator = "="
	OperatorContains Operator = "contains"
	OperatorAND      Operator = "AND"
	OperatorOR       Operator = "OR"
)

// Condition is a single field test
type Condition struct {
	Field    FieldType
	Operator Operator
	Value    string
	Negate   bool
}

// Query is a parsed search query. Logic holds one operator between each
// pair of adjacent conditions; it is evaluated left to right.
type Query struct {
	Conditions []Condition
	Logic      []Operator
	Raw        string
}

// Parser turns query strings like `type:button NOT value:"Sign in"` into
// a Query
type Parser struct {
	fieldPattern  *regexp.Regexp
	quotedPattern *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		fieldPattern:  regexp.MustCompile(`^(\w+):(.+)$`),
		quotedPattern: regexp.MustCompile(`^"([^"]*)"$`),
	}
}

// Parse parses a query. An empty query has no conditions and matches
// everything.
func (p *Parser) Parse(input string) (*Query, error) {
	query := &Query{Raw: input}

	tokens := tokenize(input)
	negate := false
	expectCondition := true

	for _, token := range tokens {
		switch strings.ToUpper(token) {
		case "AND", "OR":
			if expectCondition {
				return nil, fmt.Errorf("unexpected operator %s", token)
			}
			query.Logic = append(query.Logic, Operator(strings.ToUpper(token)))
			expectCondition = true
			continue
		case "NOT":
			negate = !negate
			continue
		}

		cond, err := p.parseCondition(token)
		if err != nil {
			return nil, err
		}
		cond.Negate = negate
		negate = false

		// Adjacent conditions without an operator are ANDed
		if !expectCondition {
			query.Logic = append(query.Logic, OperatorAND)
		}
		query.Conditions = append(query.Conditions, cond)
		expectCondition = false
	}

	if negate {
		return nil, fmt.Errorf("NOT operator requires a condition")
	}
	if expectCondition && len(query.Logic) > 0 {
		return nil, fmt.Errorf("query ends with operator %s", query.Logic[len(query.Logic)-1])
	}

	return query, nil
}

func (p *Parser) parseCondition(token string) (Condition, error) {
	matches := p.fieldPattern.FindStringSubmatch(token)
	if matches == nil {
		return Condition{Field: FieldAnywhere, Operator: OperatorContains, Value: p.unquote(token)}, nil
	}

	value := p.unquote(matches[2])
	switch field := strings.ToLower(matches[1]); field {
	case "type":
		return Condition{Field: FieldTypeField, Operator: OperatorEquals, Value: value}, nil
	case "value":
		return Condition{Field: FieldValue, Operator: OperatorContains, Value: value}, nil
	case "handler":
		return Condition{Field: FieldHandler, Operator: OperatorEquals, Value: value}, nil
	case "event":
		return Condition{Field: FieldEvent, Operator: OperatorEquals, Value: value}, nil
	case "session":
		return Condition{Field: FieldSession, Operator: OperatorContains, Value: value}, nil
	default:
		return Condition{}, fmt.Errorf("unknown field: %s", field)
	}
}

func (p *Parser) unquote(s string) string {
	if matches := p.quotedPattern.FindStringSubmatch(s); len(matches) == 2 {
		return matches[1]
	}
	return s
}

// tokenize splits on spaces outside double quotes
func tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			current.WriteRune(r)
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
