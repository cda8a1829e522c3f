// Package cset provides the ordered string set used by the automaton
// package: a plain StringSet whose canonical form names composite DFA
// states.
package cset

import (
	"sort"
	"strings"
)

// StringSet is a set of strings with a canonical, sorted string form so that
// two sets built from the same elements in different orders compare equal
// once normalized (composite-state canonicalization, spec §3).
type StringSet map[string]bool

func New(elements ...string) StringSet {
	s := StringSet{}
	for _, e := range elements {
		s.Add(e)
	}
	return s
}

func (s StringSet) Add(e string)      { s[e] = true }
func (s StringSet) Remove(e string)   { delete(s, e) }
func (s StringSet) Has(e string) bool { return s[e] }
func (s StringSet) Len() int          { return len(s) }
func (s StringSet) Empty() bool       { return len(s) == 0 }

func (s StringSet) AddAll(o StringSet) {
	for e := range o {
		s.Add(e)
	}
}

func (s StringSet) Copy() StringSet {
	c := make(StringSet, len(s))
	for e := range s {
		c[e] = true
	}
	return c
}

func (s StringSet) Union(o StringSet) StringSet {
	c := s.Copy()
	c.AddAll(o)
	return c
}

func (s StringSet) Intersects(o StringSet) bool {
	for e := range s {
		if o.Has(e) {
			return true
		}
	}
	return false
}

// IsSubsetOf returns whether every element of s is also in o (s ⊆ o).
func (s StringSet) IsSubsetOf(o StringSet) bool {
	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}

// Elements returns the set's members in unspecified order.
func (s StringSet) Elements() []string {
	out := make([]string, 0, len(s))
	for e := range s {
		out = append(out, e)
	}
	return out
}

// Sorted returns the set's members sorted lexically.
func (s StringSet) Sorted() []string {
	out := s.Elements()
	sort.Strings(out)
	return out
}

// Canonical gives the set's normalized string representation: a
// sorted, brace-delimited, comma-joined list of its elements. Two sets
// with the same elements always produce the same Canonical() string
// regardless of insertion order, which is what lets composite DFA
// states (NFA subsets) be used as map keys (spec §3, "normalized to
// their sorted-set representation").
func (s StringSet) Canonical() string {
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(strings.Join(s.Sorted(), ","))
	sb.WriteByte('}')
	return sb.String()
}

func (s StringSet) Equal(o StringSet) bool {
	if len(s) != len(o) {
		return false
	}
	for e := range s {
		if !o.Has(e) {
			return false
		}
	}
	return true
}
