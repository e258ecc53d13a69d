package types

import (
	"fmt"
	"strings"
)

// ReasonCode names why the analyzer judged a class or field mutable.
// The set is closed; the zero value is ReasonUnknown.
type ReasonCode int

const (
	ReasonUnknown ReasonCode = iota

	// AbstractCollectionTypeField is reported when a field is declared with an
	// abstract collection type such as List or Map.
	AbstractCollectionTypeField

	// AbstractTypeField is reported when a field is declared with an abstract
	// type whose implementation may be mutable.
	AbstractTypeField

	// AbstractTypeInherentlyMutable is reported when the class itself is abstract.
	AbstractTypeInherentlyMutable

	// ArrayTypeInherentlyMutable is reported for array-typed fields.
	ArrayTypeInherentlyMutable

	// CannotAnalyse is reported when the analyzer could not inspect the code.
	CannotAnalyse

	// CollectionFieldWithMutableElementType is reported when a collection
	// field holds elements of a mutable (or unknown) type.
	CollectionFieldWithMutableElementType

	// EscapedThisReference is reported when the this reference escapes during construction.
	EscapedThisReference

	// FieldCanBeReassigned is reported when a field is assigned outside the constructor.
	FieldCanBeReassigned

	// MutableTypeField is reported when a field's declared type is mutable.
	MutableTypeField

	// NonFinalField is reported for fields not declared final.
	NonFinalField

	// NotDeclaredFinal is reported when the class can be subclassed.
	NotDeclaredFinal

	// PublishedNonFinalField is reported for visible, non-final fields.
	PublishedNonFinalField
)

var reasonNames = [...]string{
	ReasonUnknown:                         "UNKNOWN",
	AbstractCollectionTypeField:           "ABSTRACT_COLLECTION_TYPE_TO_FIELD",
	AbstractTypeField:                     "ABSTRACT_TYPE_TO_FIELD",
	AbstractTypeInherentlyMutable:         "ABSTRACT_TYPE_INHERENTLY_MUTABLE",
	ArrayTypeInherentlyMutable:            "ARRAY_TYPE_INHERENTLY_MUTABLE",
	CannotAnalyse:                         "CANNOT_ANALYSE",
	CollectionFieldWithMutableElementType: "COLLECTION_FIELD_WITH_MUTABLE_ELEMENT_TYPE",
	EscapedThisReference:                  "ESCAPED_THIS_REFERENCE",
	FieldCanBeReassigned:                  "FIELD_CAN_BE_REASSIGNED",
	MutableTypeField:                      "MUTABLE_TYPE_TO_FIELD",
	NonFinalField:                         "NON_FINAL_FIELD",
	NotDeclaredFinal:                      "NOT_DECLARED_FINAL",
	PublishedNonFinalField:                "PUBLISHED_NON_FINAL_FIELD",
}

var reasonGoNames = [...]string{
	ReasonUnknown:                         "ReasonUnknown",
	AbstractCollectionTypeField:           "AbstractCollectionTypeField",
	AbstractTypeField:                     "AbstractTypeField",
	AbstractTypeInherentlyMutable:         "AbstractTypeInherentlyMutable",
	ArrayTypeInherentlyMutable:            "ArrayTypeInherentlyMutable",
	CannotAnalyse:                         "CannotAnalyse",
	CollectionFieldWithMutableElementType: "CollectionFieldWithMutableElementType",
	EscapedThisReference:                  "EscapedThisReference",
	FieldCanBeReassigned:                  "FieldCanBeReassigned",
	MutableTypeField:                      "MutableTypeField",
	NonFinalField:                         "NonFinalField",
	NotDeclaredFinal:                      "NotDeclaredFinal",
	PublishedNonFinalField:                "PublishedNonFinalField",
}

var reasonDescriptions = [...]string{
	ReasonUnknown:                         "Unknown reason.",
	AbstractCollectionTypeField:           "Field can have an abstract collection type assigned to it.",
	AbstractTypeField:                     "Field can have a mutable implementation of an abstract type assigned to it.",
	AbstractTypeInherentlyMutable:         "Abstract types can have mutable subclasses.",
	ArrayTypeInherentlyMutable:            "Arrays are mutable, even when declared final.",
	CannotAnalyse:                         "Could not analyse the code.",
	CollectionFieldWithMutableElementType: "Collection field may hold elements of a mutable type.",
	EscapedThisReference:                  "The 'this' reference escapes during construction.",
	FieldCanBeReassigned:                  "Field can be reassigned after construction.",
	MutableTypeField:                      "Field is declared with a mutable type.",
	NonFinalField:                         "Field is not declared final.",
	NotDeclaredFinal:                      "Class is not declared final and can be subclassed.",
	PublishedNonFinalField:                "Non-final field is visible outside the class.",
}

// AllReasonCodes returns every known reason code except ReasonUnknown.
func AllReasonCodes() []ReasonCode {
	out := make([]ReasonCode, 0, len(reasonNames)-1)
	for c := AbstractCollectionTypeField; c <= PublishedNonFinalField; c++ {
		out = append(out, c)
	}
	return out
}

func (c ReasonCode) Valid() bool {
	return c >= ReasonUnknown && int(c) < len(reasonNames)
}

// IsOneOf reports whether c equals any of the given codes.
func (c ReasonCode) IsOneOf(codes ...ReasonCode) bool {
	for _, other := range codes {
		if c == other {
			return true
		}
	}
	return false
}

// String returns the analyzer's canonical name, e.g. NON_FINAL_FIELD.
func (c ReasonCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("ReasonCode(%d)", int(c))
	}
	return reasonNames[c]
}

// Description is the human readable explanation of the reason.
func (c ReasonCode) Description() string {
	if !c.Valid() {
		return reasonDescriptions[ReasonUnknown]
	}
	return reasonDescriptions[c]
}

// ParseReasonCode accepts either the canonical name (NON_FINAL_FIELD) or the
// Go identifier (NonFinalField).
func ParseReasonCode(s string) (ReasonCode, error) {
	s = strings.TrimSpace(s)
	for i := int(AbstractCollectionTypeField); i < len(reasonNames); i++ {
		if strings.EqualFold(s, reasonNames[i]) || s == reasonGoNames[i] {
			return ReasonCode(i), nil
		}
	}
	return ReasonUnknown, fmt.Errorf("unknown reason code %q", s)
}

// MarshalText encodes the canonical name; ReasonUnknown is encoded as UNKNOWN
// but is rejected when decoded.
func (c ReasonCode) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid reason code %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText accepts any name ParseReasonCode does.
func (c *ReasonCode) UnmarshalText(text []byte) error {
	parsed, err := ParseReasonCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
