// Package profanity rejects free-text input containing banned words. The
// default list ships embedded with the binary; an operator list can be
// layered on top at startup.
package profanity

import (
	_ "embed"
	"strings"
)

//go:embed banned_words.txt
var defaultList string

// Filter answers substring membership against a lower-cased word set.
type Filter struct {
	words []string
}

func NewFilter(extra ...string) *Filter {
	f := &Filter{}
	for _, line := range strings.Split(defaultList, "\n") {
		f.add(line)
	}
	for _, w := range extra {
		f.add(w)
	}
	return f
}

func (f *Filter) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" || strings.HasPrefix(w, "#") {
		return
	}
	f.words = append(f.words, w)
}

// ContainsBannedWord reports whether s contains any banned word,
// case-insensitively.
func (f *Filter) ContainsBannedWord(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range f.words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
