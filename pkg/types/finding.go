package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// LocationKind tells where in a class a finding was reported.
type LocationKind string

const (
	LocationClass LocationKind = "class"
	LocationField LocationKind = "field"
)

func (k *LocationKind) UnmarshalText(text []byte) error {
	switch kind := LocationKind(strings.ToLower(strings.TrimSpace(string(text)))); kind {
	case LocationClass, LocationField:
		*k = kind
		return nil
	default:
		return fmt.Errorf("unknown location kind %q", string(text))
	}
}

type CodeLocation struct {
	Kind      LocationKind `json:"kind"`
	ClassName string       `json:"className,omitempty"`
	FieldName string       `json:"fieldName,omitempty"`
}

// UnmarshalJSON infers the kind when it is omitted: a location naming a
// field is a field location, one naming only a class is a class location.
func (l *CodeLocation) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind      *LocationKind `json:"kind"`
		ClassName string        `json:"className"`
		FieldName *string       `json:"fieldName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	loc := CodeLocation{ClassName: raw.ClassName}
	if raw.FieldName != nil {
		loc.FieldName = *raw.FieldName
	}
	switch {
	case raw.Kind != nil:
		loc.Kind = *raw.Kind
	case raw.FieldName != nil:
		loc.Kind = LocationField
	case raw.ClassName != "":
		loc.Kind = LocationClass
	default:
		return fmt.Errorf("location has no kind, field or class")
	}

	if loc.Kind == LocationField && loc.FieldName == "" {
		return fmt.Errorf("field location without a field name")
	}
	*l = loc
	return nil
}

// FieldLocation returns the location of a named field.
func FieldLocation(name string) CodeLocation {
	return CodeLocation{Kind: LocationField, FieldName: name}
}

// Finding is one cause of mutability reported by the analyzer.
type Finding struct {
	Reason   ReasonCode   `json:"reason"`
	Location CodeLocation `json:"location"`
	Message  string       `json:"message,omitempty"`
}

// NewFieldFinding is shorthand for a finding located at a field.
func NewFieldFinding(reason ReasonCode, field string) Finding {
	return Finding{Reason: reason, Location: FieldLocation(field)}
}

// FieldName returns the field the finding refers to; ok is false when the
// finding is not located at a field.
func (f Finding) FieldName() (string, bool) {
	if f.Location.Kind != LocationField {
		return "", false
	}
	return f.Location.FieldName, true
}

type AnalysisResult struct {
	ClassName string    `json:"className"`
	Findings  []Finding `json:"findings"`
}
