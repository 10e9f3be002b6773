package namartha

import "strings"

// Devanagari marks the resolver reasons about.
const (
	avagraha   = "ऽ" // vowel elision at a sandhi boundary
	vowelA     = "अ"
	longAMatra = "ा"
)

// OmGloss is the fixed gloss for the praṇava. The literal Om forms resolve
// to it regardless of dictionary contents.
const OmGloss = "प्रणवः — the primordial syllable, the sound form of Brahman, recited before the names and glossed independently of any commentary source."

// omForms are the literal spellings that trigger the built-in gloss.
var omForms = map[string]bool{"ॐ": true, "ओं": true}

// Gloss is one dictionary entry in a commentary source: a canonical Sanskrit
// surface form and its commentary text.
type Gloss struct {
	Term string `json:"term"`
	Text string `json:"text"`
}

// KeyFilter is a probabilistic membership test over dictionary keys. It may
// report false positives but never false negatives, so a negative answer
// lets the resolver skip its linear key scan.
type KeyFilter interface {
	Add(key string)
	MightContain(key string) bool
}

// Source is a named, read-only commentary dictionary. Key insertion order is
// preserved: the resolver's hyphen-insensitive scan visits keys in the order
// their glosses were supplied. A Source is immutable after construction, so
// concurrent resolutions never observe a partially-built dictionary; reload
// by constructing a new Source and swapping it in.
type Source struct {
	name   string
	terms  []string
	texts  map[string]string
	filter KeyFilter
}

// SourceOption configures a Source during construction.
type SourceOption func(*Source)

// WithKeyFilter attaches a prefilter over hyphen-stripped keys. The resolver
// consults it before falling back to the linear key scan.
func WithKeyFilter(f KeyFilter) SourceOption {
	return func(s *Source) {
		s.filter = f
	}
}

// NewSource builds an immutable commentary source from ordered glosses.
// Glosses with an empty term or text are dropped; a repeated term keeps its
// original position but takes the later text.
func NewSource(name string, glosses []Gloss, opts ...SourceOption) *Source {
	s := &Source{
		name:  name,
		texts: make(map[string]string, len(glosses)),
	}
	for _, opt := range opts {
		opt(s)
	}
	for _, g := range glosses {
		if g.Term == "" || g.Text == "" {
			continue
		}
		if _, ok := s.texts[g.Term]; !ok {
			s.terms = append(s.terms, g.Term)
			if s.filter != nil {
				s.filter.Add(stripHyphens(g.Term))
			}
		}
		s.texts[g.Term] = g.Text
	}
	return s
}

// Name returns the source's display name.
func (s *Source) Name() string { return s.name }

// Len returns the number of glosses in the source.
func (s *Source) Len() int { return len(s.terms) }

// Terms returns the source's keys in insertion order.
func (s *Source) Terms() []string {
	terms := make([]string, len(s.terms))
	copy(terms, s.terms)
	return terms
}

// Lookup performs an exact-key lookup without any fallback.
func (s *Source) Lookup(term string) (string, bool) {
	text, ok := s.texts[term]
	return text, ok
}

// Resolve returns the commentary text for a surface word, applying a fixed
// fallback ladder and short-circuiting at the first success:
//
//  1. literal Om forms map to the built-in gloss
//  2. exact-key lookup
//  3. avagraha substituted with अ, exact lookup
//  4. split around the avagraha, resolving the two halves independently
//  5. exact lookup of the word with all hyphens stripped
//  6. ordered scan of every key, compared hyphen-insensitively
//
// A miss is not an error: the second return is false.
func (s *Source) Resolve(word string) (string, bool) {
	if omForms[word] {
		return OmGloss, true
	}
	if text, ok := s.texts[word]; ok {
		return text, true
	}
	if strings.Contains(word, avagraha) {
		if text, ok := s.texts[strings.ReplaceAll(word, avagraha, vowelA)]; ok {
			return text, true
		}
		if text, ok := s.resolveAvagrahaSplit(word); ok {
			return text, true
		}
	}
	stripped := stripHyphens(word)
	if stripped != word {
		if text, ok := s.texts[stripped]; ok {
			return text, true
		}
	}
	if s.filter != nil && !s.filter.MightContain(stripped) {
		return "", false
	}
	for _, term := range s.terms {
		if stripHyphens(term) == stripped {
			return s.texts[term], true
		}
	}
	return "", false
}

// resolveAvagrahaSplit treats the avagraha as a join of exactly two words
// and resolves each half independently. The right half regains its elided
// अ; when the left half misses and ends in the long-ā mātrā, the a + a
// sandhi variant (trailing mātrā dropped) is retried. Both halves resolving
// concatenates their texts left to right with a single space; one half
// resolving returns that text alone.
func (s *Source) resolveAvagrahaSplit(word string) (string, bool) {
	parts := strings.SplitN(word, avagraha, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", false
	}

	left, lok := s.texts[parts[0]]
	if !lok {
		if trimmed, found := strings.CutSuffix(parts[0], longAMatra); found {
			left, lok = s.texts[trimmed]
		}
	}

	right, rok := s.texts[vowelA+parts[1]]
	if !rok {
		right, rok = s.texts[parts[1]]
	}

	switch {
	case lok && rok:
		return left + " " + right, true
	case lok:
		return left, true
	case rok:
		return right, true
	}
	return "", false
}

func stripHyphens(s string) string {
	return strings.ReplaceAll(s, "-", "")
}

// SourceParser builds a commentary source from a scraped HTML glossary page.
type SourceParser interface {
	// ParseSource extracts ordered term/commentary pairs from the page and
	// returns them as a named source. Returns EINVALID if the page contains
	// no recognizable glossary structure.
	ParseSource(html string, name string) (*Source, error)
}
