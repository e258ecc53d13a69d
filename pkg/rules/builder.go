package rules

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mrhapile/mutability-assert/pkg/types"
)

// ErrInvalidArgument is returned when an assumption is declared over no fields.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnknownKind is returned by ParseKind and Build for unrecognised kinds.
var ErrUnknownKind = errors.New("unknown assumption kind")

// Kind names one of the safe mutability idioms.
type Kind int

const (
	KindUnknown Kind = iota
	KindCopiedIntoUnmodifiableCollection
	KindNotModifiedAndDoesNotEscape
	KindModifiedAsUnobservableCachingStrategy
)

var kindNames = map[Kind]string{
	KindUnknown:                               "unknown",
	KindCopiedIntoUnmodifiableCollection:      "copied-into-unmodifiable-collection",
	KindNotModifiedAndDoesNotEscape:           "not-modified-and-does-not-escape",
	KindModifiedAsUnobservableCachingStrategy: "modified-as-unobservable-caching-strategy",
}

var kindPhrases = map[Kind]string{
	KindUnknown:                               "match nothing",
	KindCopiedIntoUnmodifiableCollection:      "are safely copied into an unmodifiable collection",
	KindNotModifiedAndDoesNotEscape:           "are not modified and do not escape",
	KindModifiedAsUnobservableCachingStrategy: "are modified as part of an unobservable caching strategy",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Phrase completes the sentence "fields [...] ...".
func (k Kind) Phrase() string {
	if p, ok := kindPhrases[k]; ok {
		return p
	}
	return kindPhrases[KindUnknown]
}

// ParseKind accepts the kebab-case name of a kind; underscores are treated
// as dashes and case is ignored.
func ParseKind(s string) (Kind, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", "-"))
	for k, n := range kindNames {
		if k != KindUnknown && n == norm {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

var (
	copiedIntoUnmodifiableReasons = []types.ReasonCode{
		types.AbstractCollectionTypeField,
		types.AbstractTypeField,
		types.CollectionFieldWithMutableElementType,
	}

	notModifiedReasons = []types.ReasonCode{
		types.MutableTypeField,
		types.CollectionFieldWithMutableElementType,
		types.ArrayTypeInherentlyMutable,
	}

	cachingStrategyReasons = append(append([]types.ReasonCode(nil), notModifiedReasons...),
		types.FieldCanBeReassigned,
		types.NonFinalField,
	)
)

// AssumptionBuilder captures the fields an assumption applies to.
type AssumptionBuilder struct {
	fields FieldNameFilter
}

// ForFields declares assumptions about at least one named field.
func ForFields(first string, others ...string) AssumptionBuilder {
	names := make([]string, 0, len(others)+1)
	names = append(names, first)
	names = append(names, others...)
	return AssumptionBuilder{fields: newFieldNameFilter(names)}
}

// ForFieldSet declares assumptions about a collection of field names.
// Duplicates collapse. An empty collection is rejected with ErrInvalidArgument.
// The names are copied; later changes to the slice have no effect.
func ForFieldSet(names []string) (AssumptionBuilder, error) {
	if len(names) == 0 {
		return AssumptionBuilder{}, fmt.Errorf("%w: at least one field name is required", ErrInvalidArgument)
	}
	return AssumptionBuilder{fields: newFieldNameFilter(names)}, nil
}

// Fields returns the declared field names, sorted.
func (b AssumptionBuilder) Fields() []string {
	return b.fields.Names()
}

// CopiedIntoUnmodifiableCollection accepts collection fields that are
// populated by copying into an unmodifiable wrapper.
func (b AssumptionBuilder) CopiedIntoUnmodifiableCollection() Assumption {
	return b.assume(KindCopiedIntoUnmodifiableCollection, copiedIntoUnmodifiableReasons)
}

// NotModifiedAndDoesNotEscape accepts fields of a mutable type that are never
// reassigned and whose reference never leaves the owning object.
func (b AssumptionBuilder) NotModifiedAndDoesNotEscape() Assumption {
	return b.assume(KindNotModifiedAndDoesNotEscape, notModifiedReasons)
}

// ModifiedAsUnobservableCachingStrategy accepts fields mutated, or even
// reassigned, only to memoize values invisible to callers.
func (b AssumptionBuilder) ModifiedAsUnobservableCachingStrategy() Assumption {
	return b.assume(KindModifiedAsUnobservableCachingStrategy, cachingStrategyReasons)
}

// Build returns the assumption of the given kind.
func (b AssumptionBuilder) Build(kind Kind) (Assumption, error) {
	switch kind {
	case KindCopiedIntoUnmodifiableCollection:
		return b.CopiedIntoUnmodifiableCollection(), nil
	case KindNotModifiedAndDoesNotEscape:
		return b.NotModifiedAndDoesNotEscape(), nil
	case KindModifiedAsUnobservableCachingStrategy:
		return b.ModifiedAsUnobservableCachingStrategy(), nil
	default:
		return Assumption{}, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
}

func (b AssumptionBuilder) assume(kind Kind, reasons []types.ReasonCode) Assumption {
	return Assumption{
		kind:    kind,
		fields:  b.fields,
		reasons: isOneOf(reasons...),
	}
}
