package rules

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/mrhapile/mutability-assert/pkg/types"
)

func genReason() gopter.Gen {
	return gen.IntRange(int(types.ReasonUnknown), int(types.PublishedNonFinalField)).
		Map(func(i int) types.ReasonCode { return types.ReasonCode(i) })
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func allKinds(b AssumptionBuilder) map[Kind]Assumption {
	return map[Kind]Assumption{
		KindCopiedIntoUnmodifiableCollection:      b.CopiedIntoUnmodifiableCollection(),
		KindNotModifiedAndDoesNotEscape:           b.NotModifiedAndDoesNotEscape(),
		KindModifiedAsUnobservableCachingStrategy: b.ModifiedAsUnobservableCachingStrategy(),
	}
}

var acceptedSets = map[Kind][]types.ReasonCode{
	KindCopiedIntoUnmodifiableCollection:      copiedIntoUnmodifiableReasons,
	KindNotModifiedAndDoesNotEscape:           notModifiedReasons,
	KindModifiedAsUnobservableCachingStrategy: cachingStrategyReasons,
}

// Property: ForFieldSet(F) succeeds iff F is non-empty
func TestForFieldSetNonEmptyProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("construction fails only on empty input", prop.ForAll(
		func(names []string) bool {
			_, err := ForFieldSet(names)
			if len(names) == 0 {
				return errors.Is(err, ErrInvalidArgument)
			}
			return err == nil
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}

// Property: a(f) == (f.field ∈ F) && (f.reason ∈ accepted(kind))
func TestAssumptionDefinitionProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("match is field membership AND reason membership", prop.ForAll(
		func(first string, others []string, probe string, pickDeclared bool, reason types.ReasonCode) bool {
			if pickDeclared {
				probe = first
			}
			b := ForFields(first, others...)
			declared := append([]string{first}, others...)
			f := types.NewFieldFinding(reason, probe)

			for kind, a := range allKinds(b) {
				want := contains(declared, probe) && reason.IsOneOf(acceptedSets[kind]...)
				if a.Match(f) != want {
					return false
				}
				if a.Match(f) != a.Match(f) {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
		gen.AlphaString(),
		gen.Bool(),
		genReason(),
	))

	properties.TestingRun(t)
}

// Property: caching strategy accepts everything not-modified accepts, and more
func TestCachingStrategySupersetProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("caching strategy is monotone over not-modified", prop.ForAll(
		func(name string, reason types.ReasonCode) bool {
			b := ForFields(name)
			f := types.NewFieldFinding(reason, name)
			if b.NotModifiedAndDoesNotEscape().Match(f) {
				return b.ModifiedAsUnobservableCachingStrategy().Match(f)
			}
			return true
		},
		gen.AlphaString(),
		genReason(),
	))

	properties.TestingRun(t)
}

func TestAcceptedSetRelations(t *testing.T) {
	caching := isOneOf(cachingStrategyReasons...)
	notModified := isOneOf(notModifiedReasons...)
	copied := isOneOf(copiedIntoUnmodifiableReasons...)

	strict := false
	for _, code := range types.AllReasonCodes() {
		if notModified.Match(code) && !caching.Match(code) {
			t.Errorf("%s accepted by not-modified but not by caching strategy", code)
		}
		if caching.Match(code) && !notModified.Match(code) {
			strict = true
		}
		both := copied.Match(code) && notModified.Match(code)
		if both != (code == types.CollectionFieldWithMutableElementType) {
			t.Errorf("unexpected overlap of copied and not-modified at %s", code)
		}
	}
	if !strict {
		t.Error("caching strategy should accept strictly more reasons than not-modified")
	}
}
