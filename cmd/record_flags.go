package cmd

import (
	"fmt"

	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/spf13/cobra"
)

type recordFlags struct {
	lesson []int64
	pupil  []int64
	tutor  []int64
}

func (f *recordFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int64SliceVar(&f.lesson, "lesson", nil, "Lesson window as start,end")
	cmd.Flags().Int64SliceVar(&f.pupil, "pupil", nil, "Pupil enter/leave timestamps (comma separated, even count)")
	cmd.Flags().Int64SliceVar(&f.tutor, "tutor", nil, "Tutor enter/leave timestamps (comma separated, even count)")
}

// record builds the domain record, treating every log flag as required.
func (f *recordFlags) record(cmd *cobra.Command) (domain.Record, error) {
	for _, name := range []string{"lesson", "pupil", "tutor"} {
		if !cmd.Flags().Changed(name) {
			return domain.Record{}, fmt.Errorf("%w: missing --%s", domain.ErrInvalidInput, name)
		}
	}

	return domain.Record{
		Lesson: f.lesson,
		Pupil:  f.pupil,
		Tutor:  f.tutor,
	}, nil
}
