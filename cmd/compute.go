package cmd

import (
	"fmt"

	casesadapter "github.com/bnema/lesson-appearance/internal/adapters/cases"
	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/spf13/cobra"
)

func newComputeCmd(app *app) *cobra.Command {
	var (
		flags  recordFlags
		file   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the time pupil and tutor spent together in a lesson",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lessons, err := computeInputs(cmd, &flags, file)
			if err != nil {
				return err
			}

			reports, err := app.service.EvaluateAll(cmd.Context(), lessons)
			if err != nil {
				return err
			}

			if asJSON {
				return writeReportsJSON(cmd.OutOrStdout(), reports)
			}

			for _, report := range reports {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), report.Overlap); err != nil {
					return err
				}
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&file, "file", "", "Read lessons from a case file (.json, .yaml, .toml)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.MarkFlagsMutuallyExclusive("file", "lesson")
	cmd.MarkFlagsMutuallyExclusive("file", "pupil")
	cmd.MarkFlagsMutuallyExclusive("file", "tutor")

	return cmd
}

func computeInputs(cmd *cobra.Command, flags *recordFlags, file string) ([]domain.Lesson, error) {
	if file != "" {
		loaded, err := casesadapter.Load(file)
		if err != nil {
			return nil, err
		}
		return lessonsFromCases(loaded), nil
	}

	record, err := flags.record(cmd)
	if err != nil {
		return nil, err
	}

	return []domain.Lesson{{ID: "cli", Name: "command line", Record: record}}, nil
}

// lessonsFromCases numbers unnamed cases from 1, in file order.
func lessonsFromCases(loaded []casesadapter.Case) []domain.Lesson {
	lessons := make([]domain.Lesson, 0, len(loaded))
	for i, c := range loaded {
		id := c.ID
		if id == "" {
			id = fmt.Sprintf("case-%d", i+1)
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case %d", i+1)
		}

		lessons = append(lessons, domain.Lesson{
			ID:       domain.LessonID(id),
			Name:     name,
			Record:   c.Record,
			Expected: c.Answer,
		})
	}

	return lessons
}
