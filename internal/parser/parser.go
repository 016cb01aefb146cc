// Package parser maps free-text player input onto canonical farm commands,
// tolerating typos via Levenshtein distance so the prompt stays forgiving.
package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// CommandDef declares one recognisable command verb and its aliases.
// Aliases may be multi-word phrases.
type CommandDef struct {
	Canonical string
	Aliases   []string
}

// Intent is the parsed form of one line of input. Verb is empty when no
// command matched; Suggestion then carries the closest known verb, if any
// was near enough to be worth offering.
type Intent struct {
	Raw        string
	Verb       string
	Args       []string
	Confidence float64
	Suggestion string
}

// Matched reports whether the input resolved to a command.
func (i Intent) Matched() bool { return i.Verb != "" }

// CommandLine reassembles the intent as a canonical command string.
func (i Intent) CommandLine() string {
	if i.Verb == "" {
		return ""
	}
	return strings.TrimSpace(i.Verb + " " + strings.Join(i.Args, " "))
}

type phrase struct {
	canonical string
	tokens    []string
	isAlias   bool
}

// Parser matches input lines against a fixed set of command definitions.
type Parser struct {
	phrases []phrase
}

// New builds a parser for the given command set.
func New(defs []CommandDef) *Parser {
	p := &Parser{}
	for _, def := range defs {
		canonical := normalise(def.Canonical)
		if canonical == "" {
			continue
		}
		p.phrases = append(p.phrases, phrase{canonical: canonical, tokens: strings.Fields(canonical)})
		for _, alias := range def.Aliases {
			normalised := normalise(alias)
			if normalised == "" {
				continue
			}
			p.phrases = append(p.phrases, phrase{canonical: canonical, tokens: strings.Fields(normalised), isAlias: true})
		}
	}
	return p
}

type candidate struct {
	canonical string
	consumed  int
	score     float64
}

// Parse resolves one line of input. Matching tries, in order: exact phrase,
// unambiguous prefix, then fuzzy matching within a distance budget scaled
// to the phrase length.
func (p *Parser) Parse(raw string) Intent {
	intent := Intent{Raw: raw}

	tokens := strings.Fields(normalise(raw))
	if len(tokens) == 0 {
		return intent
	}

	var cands []candidate
	for _, ph := range p.phrases {
		consumed := min(len(tokens), len(ph.tokens))
		joined := strings.Join(tokens[:consumed], " ")
		alias := strings.Join(ph.tokens, " ")

		if consumed == len(ph.tokens) && joined == alias {
			score := 1.0
			if ph.isAlias {
				score = 0.97
			}
			cands = append(cands, candidate{canonical: ph.canonical, consumed: consumed, score: score})
			continue
		}

		if len(ph.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(alias, tokens[0]) {
			cands = append(cands, candidate{canonical: ph.canonical, consumed: 1, score: 0.9})
			continue
		}

		if len(joined) < 3 || consumed < len(ph.tokens) {
			continue
		}
		dist := levenshtein.ComputeDistance(joined, alias)
		if dist > distanceLimit(len(alias)) {
			continue
		}
		cands = append(cands, candidate{
			canonical: ph.canonical,
			consumed:  consumed,
			score:     0.72 - 0.08*float64(dist),
		})
	}

	if len(cands) == 0 {
		return intent
	}

	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].score == cands[b].score {
			return cands[a].consumed > cands[b].consumed
		}
		return cands[a].score > cands[b].score
	})
	best := cands[0]

	if best.score < 0.55 {
		intent.Suggestion = best.canonical
		return intent
	}

	intent.Verb = best.canonical
	intent.Args = tokens[best.consumed:]
	intent.Confidence = best.score
	return intent
}

func distanceLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 7:
		return 2
	default:
		return 3
	}
}

// normalise lowercases the input and strips everything but letters, digits
// and single spaces.
func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	lastSpace := true
	for _, r := range raw {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '-' || r == '_' || r == '\'':
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}
