package codegen

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pluqqy/pluqqy-designer/pkg/models"
)

// namer hands out per-type numbered variable names in document order, so
// two buttons become button_1 and button_2 instead of overwriting each other.
type namer struct {
	counts map[string]int
	join   func(base string, n int) string
	base   func(models.WidgetType) string
}

func newSnakeNamer() *namer {
	return &namer{
		counts: make(map[string]int),
		base:   func(wt models.WidgetType) string { return snakeCase(string(wt)) },
		join:   func(base string, n int) string { return base + "_" + strconv.Itoa(n) },
	}
}

func newCamelNamer() *namer {
	return &namer{
		counts: make(map[string]int),
		base:   func(wt models.WidgetType) string { return lowerCamel(string(wt)) },
		join:   func(base string, n int) string { return base + strconv.Itoa(n) },
	}
}

func (n *namer) next(wt models.WidgetType) string {
	base := n.base(wt)
	n.counts[base]++
	return n.join(base, n.counts[base])
}

// identWords splits a type name into words, dropping anything that is not
// a letter or digit.
func identWords(s string) []string {
	var words []string
	var current []rune
	runes := []rune(s)
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = current[:0]
		}
	}
	for i, r := range runes {
		switch {
		case unicode.IsUpper(r):
			prevLower := i > 0 && (unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1]))
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			prevUpper := i > 0 && unicode.IsUpper(runes[i-1])
			if prevLower || (prevUpper && nextLower) {
				flush()
			}
			current = append(current, unicode.ToLower(r))
		case unicode.IsLower(r) || unicode.IsDigit(r):
			current = append(current, r)
		default:
			flush()
		}
	}
	flush()
	return words
}

func snakeCase(s string) string {
	words := identWords(s)
	if len(words) == 0 {
		return "widget"
	}
	out := strings.Join(words, "_")
	if unicode.IsDigit(rune(out[0])) {
		out = "w_" + out
	}
	return out
}

func lowerCamel(s string) string {
	words := identWords(s)
	if len(words) == 0 {
		return "widget"
	}
	var b strings.Builder
	b.WriteString(words[0])
	for _, w := range words[1:] {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	out := b.String()
	if unicode.IsDigit(rune(out[0])) {
		out = "w" + out
	}
	return out
}

// handlerSet collects distinct handler names in first-seen order
type handlerSet struct {
	seen  map[string]bool
	names []string
}

func (h *handlerSet) add(name string) {
	if h.seen == nil {
		h.seen = make(map[string]bool)
	}
	if h.seen[name] {
		return
	}
	h.seen[name] = true
	h.names = append(h.names, name)
}

// clickHandler returns the bound clicked handler when the rule supports one
func clickHandler(p models.WidgetPlacement, rule emitRule) string {
	if !rule.clickable {
		return ""
	}
	return p.Handler(models.EventClicked)
}
