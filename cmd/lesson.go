package cmd

import (
	"fmt"
	"time"

	casesadapter "github.com/bnema/lesson-appearance/internal/adapters/cases"
	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/spf13/cobra"
)

func newLessonCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Manage stored lessons",
	}

	cmd.AddCommand(
		newLessonAddCmd(app),
		newLessonListCmd(app),
		newLessonRemoveCmd(app),
		newLessonImportCmd(app),
	)

	return cmd
}

func newLessonAddCmd(app *app) *cobra.Command {
	var (
		flags    recordFlags
		id       string
		name     string
		expected int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a lesson with its presence logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := flags.record(cmd)
			if err != nil {
				return err
			}

			command := application.AddLessonCommand{
				ID:     domain.LessonID(id),
				Name:   name,
				Record: record,
			}
			if cmd.Flags().Changed("expected") {
				command.Expected = &expected
			}

			lesson, err := app.service.AddLesson(cmd.Context(), command)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "added lesson %s (%s)\n", lesson.ID, lesson.Name)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&id, "id", "", "Lesson ID (default: generated)")
	cmd.Flags().StringVar(&name, "name", "", "Lesson name (default: \"Lesson <id>\")")
	cmd.Flags().Int64Var(&expected, "expected", 0, "Expected overlap, checked by verify and report")

	return cmd
}

func newLessonListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lessons, err := app.service.ListLessons(cmd.Context())
			if err != nil {
				return err
			}

			for _, lesson := range lessons {
				created := "-"
				if !lesson.CreatedAt.IsZero() {
					created = lesson.CreatedAt.Format(time.RFC3339)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", lesson.ID, lesson.Name, created)
			}

			return nil
		},
	}
}

func newLessonRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a stored lesson",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.service.RemoveLesson(cmd.Context(), application.RemoveLessonCommand{ID: domain.LessonID(args[0])}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed lesson %s\n", args[0])
			return err
		},
	}
}

func newLessonImportCmd(app *app) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import lessons from a case file (.json, .yaml, .toml)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := casesadapter.Load(file)
			if err != nil {
				return err
			}

			commands := make([]application.AddLessonCommand, 0, len(loaded))
			for _, c := range loaded {
				commands = append(commands, application.AddLessonCommand{
					ID:       domain.LessonID(c.ID),
					Name:     c.Name,
					Record:   c.Record,
					Expected: c.Answer,
				})
			}

			count, err := app.service.ImportLessons(cmd.Context(), commands)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d lessons\n", count)
			return err
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Case file to import")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
