package rules

import (
	"fmt"
	"strings"

	"github.com/mrhapile/mutability-assert/pkg/types"
)

// Assumption accepts findings located at one of its fields whose reason is
// one of its accepted reasons. The zero value matches nothing.
//
// An Assumption holds no mutable state and may be shared between goroutines.
type Assumption struct {
	kind    Kind
	fields  FieldNameFilter
	reasons ReasonPredicate
}

// ID identifies the assumption by kind and fields, e.g.
// "not-modified-and-does-not-escape[cache,lock]".
func (a Assumption) ID() string {
	return fmt.Sprintf("%s[%s]", a.kind, strings.Join(a.fields.Names(), ","))
}

// Kind returns which of the safe idioms the assumption declares.
func (a Assumption) Kind() Kind {
	return a.kind
}

// Match reports whether the finding is covered by the assumption.
func (a Assumption) Match(finding types.Finding) bool {
	return a.fields.MatchFinding(finding) && a.reasons.Match(finding.Reason)
}

// Fields returns the declared field names, sorted.
func (a Assumption) Fields() []string {
	return a.fields.Names()
}

// Reasons returns the accepted reason codes.
func (a Assumption) Reasons() []types.ReasonCode {
	return a.reasons.Codes()
}

// String describes the assumption for mismatch messages.
func (a Assumption) String() string {
	codes := a.reasons.Codes()
	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = c.String()
	}
	return fmt.Sprintf("fields [%s] %s (accepting %s)",
		strings.Join(a.fields.Names(), ", "), a.kind.Phrase(), strings.Join(names, ", "))
}
