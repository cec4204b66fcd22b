package playlist

import (
	"fmt"
	"regexp"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter decides whether a file name may enter the playlist.  It sees the bare name, never the directory.
type Filter interface {
	Match(name string) bool
}

// PatternError reports a match expression that failed to compile
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("failed to compile match expression '%s': %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Pattern is a compiled match expression.  Matching is case-insensitive and only asks whether the expression
// occurs somewhere in the name.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// CompileMatch compiles an extended regular expression.  The expression must be valid POSIX ERE syntax.
func CompileMatch(pattern string) (*Pattern, error) {
	// CompilePOSIX restricts the accepted syntax, the case-folding compile below is what actually matches
	if _, err := regexp.CompilePOSIX(pattern); err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}

	return &Pattern{source: pattern, re: re}, nil
}

// Match reports whether name contains a match for the pattern
func (p *Pattern) Match(name string) bool {
	return p.re.MatchString(name)
}

func (p *Pattern) String() string {
	return p.source
}

// FuzzyFilter keeps names that contain the characters of a term in order, ignoring case
type FuzzyFilter struct {
	term string
}

// NewFuzzyFilter returns a filter for term
func NewFuzzyFilter(term string) *FuzzyFilter {
	return &FuzzyFilter{term: term}
}

func (f *FuzzyFilter) Match(name string) bool {
	return fuzzy.MatchNormalizedFold(f.term, name)
}

type allOf []Filter

func (filters allOf) Match(name string) bool {
	for _, f := range filters {
		if !f.Match(name) {
			return false
		}
	}
	return true
}

// AllOf combines filters so that a name must pass every one of them.  Nil filters are dropped; if none remain the
// result is nil, meaning "no filtering".
func AllOf(filters ...Filter) Filter {
	var kept allOf
	for _, f := range filters {
		if f == nil || isNilPointer(f) {
			continue
		}
		kept = append(kept, f)
	}

	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	default:
		return kept
	}
}

// isNilPointer catches typed nil pointers stored in the interface
func isNilPointer(f Filter) bool {
	switch v := f.(type) {
	case *Pattern:
		return v == nil
	case *FuzzyFilter:
		return v == nil
	}
	return false
}
