package engine

import "github.com/mrhapile/mutability-assert/pkg/types"

// Rule decides whether a finding is an accepted, expected cause of mutability.
// rules.Assumption implements it.
type Rule interface {
	// ID returns a unique identifier for this rule.
	ID() string

	// Match returns true if the rule accepts the finding.
	Match(finding types.Finding) bool
}

// RulesOf widens a slice of concrete rules, such as []rules.Assumption.
func RulesOf[R Rule](rs []R) []Rule {
	out := make([]Rule, len(rs))
	for i, r := range rs {
		out[i] = r
	}
	return out
}
