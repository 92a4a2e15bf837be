package tokenize

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ordanet/tokenize/tok"
)

//go:embed abbrev.yaml
var abbrevYAML []byte

// abbrevEntry is one document entry of the abbreviation dictionary.
type abbrevEntry struct {
	Abbrev       string `yaml:"abbrev"`
	Meaning      string `yaml:"meaning"`
	Cat          string `yaml:"cat"`
	Finisher     bool   `yaml:"finisher"`
	NotFinisher  bool   `yaml:"not_finisher"`
	NameFinisher bool   `yaml:"name_finisher"`
}

type abbrevDoc struct {
	Abbreviations []abbrevEntry `yaml:"abbreviations"`
}

// abbrevSet is the read-only abbreviation registry shared by all
// tokenizations in the process.
type abbrevSet struct {
	// dict maps the full abbreviated form (periods included) to its
	// meaning list.
	dict map[string][]tok.Meaning
	// singles holds abbreviations that consist of a single word
	// followed by exactly one period, keyed without the period.
	singles map[string]bool
	// The finisher classes; see abbrev.yaml for their semantics.
	finishers     map[string]bool
	notFinishers  map[string]bool
	nameFinishers map[string]bool
}

var (
	abbrevOnce sync.Once
	abbrevs    *abbrevSet
	abbrevErr  error
)

// initAbbreviations parses the embedded dictionary once per process.
func initAbbreviations() *abbrevSet {
	abbrevOnce.Do(func() {
		abbrevs, abbrevErr = parseAbbreviations(abbrevYAML)
		if abbrevErr != nil {
			// The embedded dictionary is part of the build; failing to
			// parse it is a programming error, not an input error.
			panic(abbrevErr)
		}
	})
	return abbrevs
}

func parseAbbreviations(data []byte) (*abbrevSet, error) {
	var doc abbrevDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("abbreviation dictionary: %w", err)
	}
	set := &abbrevSet{
		dict:          make(map[string][]tok.Meaning),
		singles:       make(map[string]bool),
		finishers:     make(map[string]bool),
		notFinishers:  make(map[string]bool),
		nameFinishers: make(map[string]bool),
	}
	for _, e := range doc.Abbreviations {
		if e.Abbrev == "" {
			return nil, fmt.Errorf("abbreviation dictionary: entry with empty abbrev")
		}
		m := tok.Meaning{Stem: e.Meaning, Cat: e.Cat, Fl: "skst", Abbrev: e.Abbrev}
		set.dict[e.Abbrev] = append(set.dict[e.Abbrev], m)
		if strings.HasSuffix(e.Abbrev, ".") && strings.Count(e.Abbrev, ".") == 1 {
			set.singles[strings.TrimSuffix(e.Abbrev, ".")] = true
		}
		if e.Finisher {
			set.finishers[e.Abbrev] = true
		}
		if e.NotFinisher {
			set.notFinishers[e.Abbrev] = true
		}
		if e.NameFinisher {
			set.nameFinishers[e.Abbrev] = true
		}
	}
	return set, nil
}

// isAbbrevWithPeriod reports whether txt, followed by a period in the
// input, should be read as an abbreviation.
func (a *abbrevSet) isAbbrevWithPeriod(txt string) bool {
	if strings.Contains(txt, ".") {
		// Already contains a period: must be an abbreviation
		// ("t.d" but not "mbl.is", which never reaches this check).
		return true
	}
	if a.singles[txt] {
		return true
	}
	if a.singles[strings.ToLower(txt)] {
		// Upper or mixed case is allowed unless the exact form is a
		// separate abbreviation that takes no period ("DR" vs "dr.").
		_, isDict := a.dict[txt]
		return !isDict
	}
	return false
}

// lookup returns the meaning list for an abbreviation, trying the
// original case first and then lowercase, or nil if unknown.
func (a *abbrevSet) lookup(abbrev string) []tok.Meaning {
	if m, ok := a.dict[abbrev]; ok {
		return m
	}
	if m, ok := a.dict[strings.ToLower(abbrev)]; ok {
		return m
	}
	return nil
}

// hasMeaning reports whether txt is a known abbreviation as it
// stands, without any trailing period.
func (a *abbrevSet) hasMeaning(txt string) bool {
	return a.lookup(txt) != nil
}

// isKnown reports whether txt is in the dictionary exactly as given.
func (a *abbrevSet) isKnown(txt string) bool {
	_, ok := a.dict[txt]
	return ok
}
