package parsec

import (
	"strings"
	"sync"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

type keywordParser struct {
	mu        sync.Mutex // guards automaton
	automaton aho.AhoCorasick
	words     []string
	maxLen    int
	name      string
}

// Keyword matches the longest of words starting at the cursor.
// It panics if words is empty or contains the empty string.
func Keyword(words ...string) Parser[string] {
	if len(words) == 0 {
		panic("parsec: Keyword with no words")
	}
	p := &keywordParser{words: append([]string(nil), words...)}
	for _, w := range words {
		if w == "" {
			panic("parsec: Keyword with empty word")
		}
		p.maxLen = max(p.maxLen, len(w))
	}
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.LeftMostLongestMatch,
		DFA:       true,
	})
	p.automaton = builder.Build(p.words)
	p.name = "keywordP([" + strings.Join(p.words, ", ") + "])"
	return p
}

func (p *keywordParser) String() string { return p.name }

func (p *keywordParser) parse(input string, pos int) (PartialParse[string], *Error) {
	if pos >= len(input) {
		return PartialParse[string]{}, newError(input, pos, p.name, "End of input reached")
	}
	window := input[pos:min(len(input), pos+p.maxLen)]

	p.mu.Lock()
	matches := p.automaton.FindAll(window)
	p.mu.Unlock()

	if len(matches) == 0 || matches[0].Start() != 0 {
		return PartialParse[string]{}, newError(input, pos, p.name,
			"No keyword of ["+strings.Join(p.words, ", ")+"] found")
	}
	w := p.words[matches[0].Pattern()]
	return PartialParse[string]{Value: w, Next: pos + len(w)}, nil
}
