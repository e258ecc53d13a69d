package engine

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/mrhapile/mutability-assert/pkg/types"
)

type options struct {
	logger *zap.Logger
	now    func() time.Time
}

// Option configures Analyze.
type Option func(*options)

// WithLogger logs each accepted finding at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides the timestamp source for the verdict.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// Analyze partitions the findings of an analysis result into those accepted
// by one of the rules and those nothing accounted for.
// It is a pure function that:
//   - Never mutates the input
//   - Performs no I/O besides the optional logger
//   - Produces deterministic ordering
func Analyze(result types.AnalysisResult, allRules []Rule, opts ...Option) types.Verdict {
	o := options{logger: zap.NewNop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(zap.String("class", result.ClassName))

	var expected []types.Matched
	var unexpected []types.Finding

	for _, f := range result.Findings {
		ruleID, ok := firstMatch(allRules, f)
		if !ok {
			unexpected = append(unexpected, f)
			continue
		}
		field, _ := f.FieldName()
		log.Debug("finding accepted",
			zap.Stringer("reason", f.Reason),
			zap.String("field", field),
			zap.String("rule", ruleID))
		expected = append(expected, types.Matched{Finding: f, AssumptionID: ruleID})
	}

	sort.SliceStable(expected, func(i, j int) bool {
		return lessFinding(expected[i].Finding, expected[j].Finding)
	})
	sort.SliceStable(unexpected, func(i, j int) bool {
		return lessFinding(unexpected[i], unexpected[j])
	})

	if len(unexpected) > 0 {
		log.Info("unexpected mutability",
			zap.Int("unexpected", len(unexpected)),
			zap.Int("expected", len(expected)))
	}

	return types.Verdict{
		ClassName:   result.ClassName,
		Expected:    expected,
		Unexpected:  unexpected,
		GeneratedAt: o.now().UTC(),
	}
}

func firstMatch(allRules []Rule, f types.Finding) (string, bool) {
	for _, r := range allRules {
		if r.Match(f) {
			return r.ID(), true
		}
	}
	return "", false
}

func lessFinding(a, b types.Finding) bool {
	// Primary: field name, class-level findings first
	af, _ := a.FieldName()
	bf, _ := b.FieldName()
	if af != bf {
		return af < bf
	}
	// Secondary: reason code
	if a.Reason != b.Reason {
		return a.Reason < b.Reason
	}
	// Tertiary: message
	return a.Message < b.Message
}
