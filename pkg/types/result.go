package types

import "time"

// Verdict splits an analysis result into findings covered by an assumption
// and findings nobody accounted for.
type Verdict struct {
	ClassName   string    `json:"className"`
	Expected    []Matched `json:"expected"`
	Unexpected  []Finding `json:"unexpected"`
	GeneratedAt time.Time `json:"generatedAt"`
}

type Matched struct {
	Finding      Finding `json:"finding"`
	AssumptionID string  `json:"assumptionId"`
}

// IsImmutable reports whether every finding was expected.
func (v Verdict) IsImmutable() bool {
	return len(v.Unexpected) == 0
}
