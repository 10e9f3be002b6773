package namartha

import "context"

// Name holds the forms of one divine name.
type Name struct {
	Devanagari string   `json:"devanagari"`
	IAST       string   `json:"iast"`
	Tokens     []string `json:"tokens,omitempty"`
}

// Meaning pairs a literal rendering with a contextual one.
type Meaning struct {
	Literal    string `json:"literal,omitempty"`
	Contextual string `json:"contextual,omitempty"`
}

// RootBreakdown is one row of an entry's root-breakdown table: a compound
// with its sandhi rule (nil when the table marks none), components, grammar
// note, and meanings.
type RootBreakdown struct {
	Compound   string   `json:"compound"`
	Sandhi     *string  `json:"sandhi,omitempty"`
	Components []string `json:"components,omitempty"`
	Grammar    string   `json:"grammar,omitempty"`
	Meaning    Meaning  `json:"meaning"`
}

// Root identifies the dhātu a compound is traced to.
type Root struct {
	Syllable string `json:"syllable,omitempty"`
	Meaning  string `json:"meaning,omitempty"`
	Class    string `json:"class,omitempty"`
}

// EtymologyDetail is the merged etymology record for one compound. Prose
// fields win over the root-breakdown table; table cells fill whatever the
// prose omits.
type EtymologyDetail struct {
	Breakdown []string `json:"breakdown,omitempty"`
	Root      Root     `json:"root"`
	Prefixes  []string `json:"prefixes,omitempty"`
	Suffix    string   `json:"suffix,omitempty"`
	Sandhi    *string  `json:"sandhi,omitempty"`
	Formation string   `json:"formation,omitempty"`
	Grammar   string   `json:"grammar,omitempty"`
	Meaning   Meaning  `json:"meaning"`
}

// WordMeaning is one bullet of a composition's word-by-word list.
type WordMeaning struct {
	Compound string `json:"compound"`
	Meaning  string `json:"meaning"`
}

// Composition holds an entry's free-prose summary and its word-by-word
// meanings.
type Composition struct {
	Summary    string        `json:"summary,omitempty"`
	WordByWord []WordMeaning `json:"wordByWord,omitempty"`
}

// Commentary is one source's commentary on an entry.
type Commentary struct {
	Author string `json:"author"`
	Period string `json:"period"`
	Source string `json:"source,omitempty"`
	Text   string `json:"text"`
}

// NameEntry is the structured record extracted from one markdown block.
// EntryNumber is 0 when no number could be parsed; such entries sort first
// in the corpus and are surfaced by the audit. Issues records structural
// inconsistencies found during extraction (a number mismatch, a table
// compound without etymology prose) as data rather than failures.
type NameEntry struct {
	ID            string                      `json:"id,omitempty"`
	EntryNumber   int                         `json:"entryNumber"`
	Name          Name                        `json:"name"`
	RootBreakdown []RootBreakdown             `json:"rootBreakdown,omitempty"`
	Etymology     map[string]*EtymologyDetail `json:"etymology,omitempty"`
	Composition   Composition                 `json:"composition"`
	Commentaries  map[string]Commentary       `json:"commentaries,omitempty"`
	Issues        []string                    `json:"issues,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *NameEntry) Validate() error {
	if e.Name.Devanagari == "" {
		return Errorf(EINVALID, "entry Devanagari name required")
	}
	if e.EntryNumber < 0 {
		return Errorf(EINVALID, "entry number must be non-negative")
	}
	return nil
}

// HasCommentary reports whether any source contributed a non-empty
// commentary text.
func (e *NameEntry) HasCommentary() bool {
	for _, c := range e.Commentaries {
		if c.Text != "" {
			return true
		}
	}
	return false
}

// EntryService represents a service for managing extracted name entries.
type EntryService interface {
	// CreateEntry creates a new entry.
	CreateEntry(ctx context.Context, entry *NameEntry) error

	// CreateEntries creates multiple entries in one transaction.
	CreateEntries(ctx context.Context, entries []*NameEntry) error

	// FindEntryByNumber retrieves the entry with the given number.
	// Returns ENOTFOUND if no such entry exists.
	FindEntryByNumber(ctx context.Context, number int) (*NameEntry, error)

	// FindEntries retrieves entries matching the filter, ordered by entry
	// number ascending.
	FindEntries(ctx context.Context, filter EntryFilter) ([]*NameEntry, error)

	// DeleteEntry permanently removes an entry.
	// Returns ENOTFOUND if the entry does not exist.
	DeleteEntry(ctx context.Context, id string) error
}

// EntryFilter represents a filter for FindEntries.
type EntryFilter struct {
	ID          *string `json:"id"`
	EntryNumber *int    `json:"entryNumber"`
	Devanagari  *string `json:"devanagari"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
