package parser

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Prefix introduces a named argument, e.g. "t/" before each tag.
type Prefix string

const (
	PrefixName    Prefix = "n/"
	PrefixAddress Prefix = "a/"
	PrefixSeller  Prefix = "s/"
	PrefixPhone   Prefix = "p/"
	PrefixEmail   Prefix = "e/"
	PrefixPrice   Prefix = "$/"
	PrefixTag     Prefix = "t/"
)

// ArgumentMultimap maps each prefix to the values that followed it, in
// input order. Text before the first prefix is the preamble.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p. Nil when p never appeared.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	vs := m.values[p]
	if vs == nil {
		return nil
	}
	return append([]string(nil), vs...)
}

func (m ArgumentMultimap) Has(p Prefix) bool { return len(m.values[p]) > 0 }

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts at the
// very start of args or directly after whitespace, so "spa/x" holds no
// "a/" prefix. Values and the preamble are trimmed.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	var positions []prefixPosition
	for _, p := range prefixes {
		positions = append(positions, findPrefixPositions(args, p)...)
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(args)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(args[:end])

	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		m.values[pos.prefix] = append(m.values[pos.prefix], strings.TrimSpace(args[valueStart:valueEnd]))
	}
	return m
}

func findPrefixPositions(args string, p Prefix) []prefixPosition {
	var out []prefixPosition
	from := 0
	for {
		i := strings.Index(args[from:], string(p))
		if i < 0 {
			return out
		}
		at := from + i
		if at == 0 || precededBySpace(args, at) {
			out = append(out, prefixPosition{prefix: p, start: at})
		}
		from = at + 1
	}
}

func precededBySpace(s string, i int) bool {
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return unicode.IsSpace(r)
}

// splitFirstToken returns the first maximal run of non-space characters
// and everything after it, untouched.
func splitFirstToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}
