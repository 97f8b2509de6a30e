package cmd

import (
	"context"
	"errors"
	"fmt"

	casesadapter "github.com/bnema/lesson-appearance/internal/adapters/cases"
	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/spf13/cobra"
)

type verifyJSON struct {
	Passed     int          `json:"passed"`
	Total      int          `json:"total"`
	Reports    []reportJSON `json:"reports"`
	Mismatches []string     `json:"mismatches"`
}

func newVerifyCmd(app *app) *cobra.Command {
	var (
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a case file's answers against computed overlaps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := casesadapter.Load(file)
			if err != nil {
				return err
			}
			lessons := lessonsFromCases(loaded)

			var (
				result    application.VerifyResult
				verifyErr error
			)
			run := func(ctx context.Context) error {
				result, verifyErr = app.service.Verify(ctx, lessons)
				if errors.Is(verifyErr, application.ErrVerificationFailed) {
					return nil
				}
				return verifyErr
			}

			if asJSON {
				err = run(cmd.Context())
			} else {
				err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Verifying lessons...", run)
			}
			if err != nil {
				return err
			}

			if asJSON {
				if err := writeVerifyJSON(cmd, result); err != nil {
					return err
				}
			} else {
				if err := writeReportsOutput(cmd, app, result.Reports, false); err != nil {
					return err
				}
				for _, m := range result.Mismatches {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "mismatch %s (%s): expected %d, got %d\n", m.Name, m.LessonID, m.Expected, m.Got)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "passed: %d/%d\n", result.Passed, len(result.Reports))
			}

			return verifyErr
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Case file to verify (.json, .yaml, .toml)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func writeVerifyJSON(cmd *cobra.Command, result application.VerifyResult) error {
	out := verifyJSON{
		Passed:     result.Passed,
		Total:      len(result.Reports),
		Reports:    make([]reportJSON, 0, len(result.Reports)),
		Mismatches: make([]string, 0, len(result.Mismatches)),
	}
	for _, report := range result.Reports {
		out.Reports = append(out.Reports, toReportJSON(report))
	}
	for _, m := range result.Mismatches {
		out.Mismatches = append(out.Mismatches, string(m.LessonID))
	}

	return writeJSON(cmd.OutOrStdout(), out)
}
