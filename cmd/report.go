package cmd

import (
	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *app) *cobra.Command {
	var (
		lessonID string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Report attendance for stored lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reports, err := loadReports(cmd, app.service, lessonID)
			if err != nil {
				return err
			}

			return writeReportsOutput(cmd, app, reports, asJSON)
		},
	}

	cmd.Flags().StringVar(&lessonID, "lesson", "", "Lesson ID (default: all lessons)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func loadReports(cmd *cobra.Command, svc *application.Service, lessonID string) ([]application.Report, error) {
	if lessonID == "" {
		return svc.GetReportAll(cmd.Context())
	}

	report, err := svc.GetReport(cmd.Context(), domain.LessonID(lessonID))
	if err != nil {
		return nil, err
	}

	return []application.Report{report}, nil
}
