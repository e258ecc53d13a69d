package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mrhapile/mutability-assert/pkg/config"
	"github.com/mrhapile/mutability-assert/pkg/engine"
	"github.com/mrhapile/mutability-assert/pkg/types"
)

// ErrUnexpectedFindings is returned when a finding is not covered by any assumption.
var ErrUnexpectedFindings = errors.New("unexpected mutability findings")

func newCheckCmd(newLogger func() (*zap.Logger, error)) *cobra.Command {
	var findingsPath, assumptionsPath string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report findings not covered by an assumption",
		Example: `  mutassert check --findings result.json --assumptions assumptions.yaml
  mutassert check -f result.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lggr, err := newLogger()
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer func() { _ = lggr.Sync() }()

			result, err := readResult(findingsPath)
			if err != nil {
				return err
			}

			var rs []engine.Rule
			if assumptionsPath != "" {
				f, err := config.Load(assumptionsPath)
				if err != nil {
					return err
				}
				if f.Class != "" && result.ClassName != "" && f.Class != result.ClassName {
					lggr.Warn("assumptions declared for a different class",
						zap.String("declared", f.Class),
						zap.String("analysed", result.ClassName))
				}
				as, err := f.Build()
				if err != nil {
					return err
				}
				rs = engine.RulesOf(as)
			}

			v := engine.Analyze(result, rs, engine.WithLogger(lggr))
			writeVerdict(cmd.OutOrStdout(), v)
			if !v.IsImmutable() {
				return fmt.Errorf("%s: %w (%d)", v.ClassName, ErrUnexpectedFindings, len(v.Unexpected))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&findingsPath, "findings", "f", "", "analyzer result as JSON")
	cmd.Flags().StringVarP(&assumptionsPath, "assumptions", "a", "", "assumptions YAML file")
	_ = cmd.MarkFlagRequired("findings")

	return cmd
}

func readResult(path string) (types.AnalysisResult, error) {
	var result types.AnalysisResult
	data, err := os.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("read findings %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("decode findings %q: %w", path, err)
	}
	return result, nil
}

func writeVerdict(w io.Writer, v types.Verdict) {
	if v.IsImmutable() {
		fmt.Fprintf(w, "%s: immutable (%d expected findings)\n", v.ClassName, len(v.Expected))
		return
	}
	fmt.Fprintf(w, "%s: %d unexpected findings\n", v.ClassName, len(v.Unexpected))
	for _, f := range v.Unexpected {
		where := "class"
		if name, ok := f.FieldName(); ok {
			where = "field " + name
		}
		fmt.Fprintf(w, "  %s at %s: %s\n", f.Reason, where, f.Reason.Description())
	}
}
