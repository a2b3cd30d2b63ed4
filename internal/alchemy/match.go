package alchemy

import "strings"

// MatchPolicy selects how a query compares a candidate string against a
// search term. It is a closed two-variant enum rather than an arbitrary
// predicate so query behavior stays enumerable and testable.
//
// All comparisons operate on operands that have already been lowercased;
// the registry never compares mixed-case strings directly.
type MatchPolicy int

const (
	// MatchExact matches only full, equal strings.
	MatchExact MatchPolicy = iota
	// MatchContains matches when the candidate contains the term as a
	// substring.
	MatchContains
)

// Matches applies the policy to a pre-lowercased haystack and needle.
func (p MatchPolicy) Matches(haystack, needle string) bool {
	if p == MatchExact {
		return haystack == needle
	}
	return strings.Contains(haystack, needle)
}

func (p MatchPolicy) String() string {
	if p == MatchExact {
		return "exact"
	}
	return "contains"
}

// SearchScope selects what part of an ingredient a query compares against:
// the ingredient's own name, its effects' names, or either. Scope is
// orthogonal to MatchPolicy: scope picks what is compared, policy picks
// how.
type SearchScope int

const (
	// ScopeBoth matches on the ingredient name or any effect name.
	ScopeBoth SearchScope = iota
	// ScopeNames matches on the ingredient name only.
	ScopeNames
	// ScopeEffects matches on effect names only.
	ScopeEffects
)

func (s SearchScope) String() string {
	switch s {
	case ScopeNames:
		return "names"
	case ScopeEffects:
		return "effects"
	default:
		return "both"
	}
}

// includesNames reports whether the scope compares ingredient names.
func (s SearchScope) includesNames() bool { return s == ScopeBoth || s == ScopeNames }

// includesEffects reports whether the scope compares effect names.
func (s SearchScope) includesEffects() bool { return s == ScopeBoth || s == ScopeEffects }
