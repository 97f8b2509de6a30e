package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/spf13/cobra"
)

type reportJSON struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Overlap      int64   `json:"overlap"`
	Window       int64   `json:"window"`
	PupilPresent int64   `json:"pupil_present"`
	TutorPresent int64   `json:"tutor_present"`
	Attendance   float64 `json:"attendance"`
	Expected     *int64  `json:"expected,omitempty"`
	Matches      bool    `json:"matches"`
}

func toReportJSON(report application.Report) reportJSON {
	return reportJSON{
		ID:           string(report.Lesson.ID),
		Name:         report.Lesson.Name,
		Overlap:      report.Overlap,
		Window:       report.WindowLength,
		PupilPresent: report.PupilPresent,
		TutorPresent: report.TutorPresent,
		Attendance:   report.Attendance(),
		Expected:     report.Lesson.Expected,
		Matches:      report.Matches(),
	}
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

func writeReportsJSON(w io.Writer, reports []application.Report) error {
	out := make([]reportJSON, 0, len(reports))
	for _, report := range reports {
		out = append(out, toReportJSON(report))
	}

	return writeJSON(w, out)
}

func writeReportsOutput(cmd *cobra.Command, app *app, reports []application.Report, asJSON bool) error {
	if asJSON {
		return writeReportsJSON(cmd.OutOrStdout(), reports)
	}

	rendered, err := app.reportRenderer(reports, app.renderOptions())
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
