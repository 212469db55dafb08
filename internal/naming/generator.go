package naming

import (
	"fmt"
)

// Words is a family of name parts plus the stem used for numbered fallbacks.
type Words struct {
	Prefixes []string
	Suffixes []string
	Fallback string
}

// Combinations returns the number of distinct prefix/suffix names.
func (w Words) Combinations() int {
	return len(w.Prefixes) * len(w.Suffixes)
}

// Generator produces item names and remembers every name it has handed out.
// The registry only reduces accidental duplicates; uniqueness of fallback
// names relies on callers passing distinct sequence numbers.
type Generator struct {
	words Words
	used  map[string]struct{}
	rng   func(int) int // Injectable for testing
}

// NewGenerator creates a generator with an empty registry. rng must return a
// value in [0, n).
func NewGenerator(words Words, rng func(int) int) *Generator {
	return &Generator{
		words: words,
		used:  make(map[string]struct{}),
		rng:   rng,
	}
}

// Generate returns a name that is not yet registered and registers it. After
// MaxAttempts colliding draws it returns a numbered fallback built from
// sequence; fallback reports whether that happened.
func (g *Generator) Generate(sequence int) (name string, fallback bool) {
	if g.words.Combinations() > 0 {
		for i := 0; i < MaxAttempts; i++ {
			candidate := fmt.Sprintf(NameFormatTemplate,
				g.words.Prefixes[g.rng(len(g.words.Prefixes))],
				g.words.Suffixes[g.rng(len(g.words.Suffixes))],
			)
			if !g.Used(candidate) {
				g.Reserve(candidate)
				return candidate, false
			}
		}
	}

	name = fmt.Sprintf(FallbackFormatTemplate, g.words.Fallback, sequence)
	g.Reserve(name)
	return name, true
}

// Used reports whether name is already registered
func (g *Generator) Used(name string) bool {
	_, ok := g.used[name]
	return ok
}

// Reserve registers name without generating it.
func (g *Generator) Reserve(name string) {
	g.used[name] = struct{}{}
}

// Len returns the number of registered names
func (g *Generator) Len() int {
	return len(g.used)
}
