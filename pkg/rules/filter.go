package rules

import (
	"sort"

	"github.com/mrhapile/mutability-assert/pkg/types"
)

// FieldNameFilter matches field names against a fixed set.
type FieldNameFilter struct {
	names map[string]struct{}
}

func newFieldNameFilter(names []string) FieldNameFilter {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return FieldNameFilter{names: set}
}

// Match reports whether name is one of the declared field names.
func (f FieldNameFilter) Match(name string) bool {
	_, ok := f.names[name]
	return ok
}

// MatchFinding reports whether the finding is located at a declared field.
func (f FieldNameFilter) MatchFinding(finding types.Finding) bool {
	name, ok := finding.FieldName()
	return ok && f.Match(name)
}

// Names returns the declared names in sorted order.
func (f FieldNameFilter) Names() []string {
	out := make([]string, 0, len(f.names))
	for n := range f.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct names.
func (f FieldNameFilter) Len() int {
	return len(f.names)
}

// ReasonPredicate matches reason codes against a fixed set.
type ReasonPredicate struct {
	codes []types.ReasonCode
}

func isOneOf(codes ...types.ReasonCode) ReasonPredicate {
	cp := append([]types.ReasonCode(nil), codes...)
	sort.Slice(cp, func(i, j int) bool { return cp[i] < cp[j] })
	return ReasonPredicate{codes: cp}
}

// Match reports whether code is one of the accepted codes.
func (p ReasonPredicate) Match(code types.ReasonCode) bool {
	return code.IsOneOf(p.codes...)
}

// Codes returns a copy of the accepted codes, ordered by value.
func (p ReasonPredicate) Codes() []types.ReasonCode {
	return append([]types.ReasonCode(nil), p.codes...)
}
