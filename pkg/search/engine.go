package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// Item is one placed widget within a session
type Item struct {
	Session   string
	Position  int
	Placement models.WidgetPlacement
}

// Engine answers queries over widgets collected from many sessions
type Engine struct {
	items  []Item
	parser *Parser
}

func NewEngine() *Engine {
	return &Engine{parser: NewParser()}
}

// Add indexes a session's exported layout
func (e *Engine) Add(session string, layout []models.WidgetPlacement) {
	for i, p := range layout {
		e.items = append(e.items, Item{Session: session, Position: i + 1, Placement: p.Clone()})
	}
}

// Len returns the number of indexed widgets
func (e *Engine) Len() int {
	return len(e.items)
}

// Search returns the items matching the query ordered by session name then
// position within the session
func (e *Engine) Search(queryStr string) ([]Item, error) {
	query, err := e.parser.Parse(queryStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse query: %w", err)
	}

	var results []Item
	for _, item := range e.items {
		if query.Matches(item) {
			results = append(results, item)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Session != results[j].Session {
			return results[i].Session < results[j].Session
		}
		return results[i].Position < results[j].Position
	})
	return results, nil
}

// Matches evaluates the query against one item
func (q *Query) Matches(item Item) bool {
	if len(q.Conditions) == 0 {
		return true
	}

	result := q.Conditions[0].Matches(item)
	for i, op := range q.Logic {
		next := q.Conditions[i+1].Matches(item)
		if op == OperatorOR {
			result = result || next
		} else {
			result = result && next
		}
	}
	return result
}

// Matches evaluates a single condition. Comparisons ignore case.
func (c Condition) Matches(item Item) bool {
	want := strings.ToLower(c.Value)
	p := item.Placement

	var ok bool
	switch c.Field {
	case FieldTypeField:
		wt, known := models.ParseWidgetType(c.Value)
		ok = known && wt == p.Type
	case FieldValue:
		ok = strings.Contains(strings.ToLower(p.Value), want)
	case FieldHandler:
		for _, handler := range p.Events {
			if strings.ToLower(handler) == want {
				ok = true
				break
			}
		}
	case FieldEvent:
		_, ok = p.Events[want]
	case FieldSession:
		ok = strings.Contains(strings.ToLower(item.Session), want)
	case FieldAnywhere:
		ok = strings.Contains(strings.ToLower(p.Value), want) ||
			strings.Contains(strings.ToLower(string(p.Type)), want)
		for _, handler := range p.Events {
			ok = ok || strings.Contains(strings.ToLower(handler), want)
		}
	}

	if c.Negate {
		return !ok
	}
	return ok
}
