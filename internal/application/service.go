package application

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/bnema/lesson-appearance/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

var ErrVerificationFailed = errors.New("verification failed")

type Service struct {
	repo   ports.LessonRepository
	clock  ports.Clock
	logger zerolog.Logger
}

func NewService(repo ports.LessonRepository, clock ports.Clock, logger zerolog.Logger) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:   repo,
		clock:  clock,
		logger: logger,
	}
}

func (s *Service) Evaluate(ctx context.Context, lesson domain.Lesson) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	presence, err := lesson.Record.Resolve()
	if err != nil {
		return Report{}, fmt.Errorf("evaluate lesson %s: %w", lesson.ID, err)
	}

	report := Report{
		Lesson:       lesson,
		Overlap:      presence.Overlap(),
		WindowLength: presence.Window.Len(),
		PupilPresent: presence.Pupil.TotalLength(),
		TutorPresent: presence.Tutor.TotalLength(),
	}

	s.logger.Debug().
		Str("lesson", string(lesson.ID)).
		Int64("overlap", report.Overlap).
		Int("pupil_intervals", len(presence.Pupil)).
		Int("tutor_intervals", len(presence.Tutor)).
		Msg("lesson evaluated")

	return report, nil
}

// EvaluateAll evaluates lessons concurrently. Reports keep the input order;
// the first failure cancels the rest.
func (s *Service) EvaluateAll(ctx context.Context, lessons []domain.Lesson) ([]Report, error) {
	reports := make([]Report, len(lessons))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, lesson := range lessons {
		g.Go(func() error {
			report, err := s.Evaluate(gctx, lesson)
			if err != nil {
				return err
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

func (s *Service) AddLesson(ctx context.Context, cmd AddLessonCommand) (domain.Lesson, error) {
	lesson := s.newLesson(cmd)
	if err := lesson.Validate(); err != nil {
		return domain.Lesson{}, err
	}

	if err := s.repo.Save(ctx, lesson); err != nil {
		return domain.Lesson{}, fmt.Errorf("save lesson: %w", err)
	}

	s.logger.Debug().Str("lesson", string(lesson.ID)).Msg("lesson saved")

	return lesson, nil
}

// ImportLessons validates every command before saving any of them, so an
// invalid entry leaves the store untouched.
func (s *Service) ImportLessons(ctx context.Context, cmds []AddLessonCommand) (int, error) {
	lessons := make([]domain.Lesson, 0, len(cmds))
	for i, cmd := range cmds {
		lesson := s.newLesson(cmd)
		if err := lesson.Validate(); err != nil {
			return 0, fmt.Errorf("entry %d: %w", i, err)
		}
		lessons = append(lessons, lesson)
	}

	for i, lesson := range lessons {
		if err := s.repo.Save(ctx, lesson); err != nil {
			return i, fmt.Errorf("save lesson %s: %w", lesson.ID, err)
		}
	}

	s.logger.Debug().Int("count", len(lessons)).Msg("lessons imported")

	return len(lessons), nil
}

func (s *Service) RemoveLesson(ctx context.Context, cmd RemoveLessonCommand) error {
	if err := s.repo.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("delete lesson %s: %w", cmd.ID, err)
	}

	return nil
}

func (s *Service) ListLessons(ctx context.Context) ([]domain.Lesson, error) {
	lessons, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	return lessons, nil
}

func (s *Service) GetReport(ctx context.Context, id domain.LessonID) (Report, error) {
	lesson, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Report{}, fmt.Errorf("get lesson by id: %w", err)
	}

	return s.Evaluate(ctx, lesson)
}

func (s *Service) GetReportAll(ctx context.Context) ([]Report, error) {
	lessons, err := s.ListLessons(ctx)
	if err != nil {
		return nil, err
	}

	return s.EvaluateAll(ctx, lessons)
}

// Verify evaluates lessons and compares each overlap with its expected
// answer. The result is returned alongside ErrVerificationFailed so callers
// can still render it.
func (s *Service) Verify(ctx context.Context, lessons []domain.Lesson) (VerifyResult, error) {
	reports, err := s.EvaluateAll(ctx, lessons)
	if err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{Reports: reports}
	for _, report := range reports {
		if report.Matches() {
			result.Passed++
			continue
		}
		result.Mismatches = append(result.Mismatches, Mismatch{
			LessonID: report.Lesson.ID,
			Name:     report.Lesson.Name,
			Expected: *report.Lesson.Expected,
			Got:      report.Overlap,
		})
	}

	s.logger.Debug().
		Int("passed", result.Passed).
		Int("mismatched", len(result.Mismatches)).
		Msg("verification finished")

	if len(result.Mismatches) > 0 {
		return result, fmt.Errorf("%w: %d of %d lessons differ from their expected overlap", ErrVerificationFailed, len(result.Mismatches), len(reports))
	}

	return result, nil
}

func (s *Service) newLesson(cmd AddLessonCommand) domain.Lesson {
	id := domain.LessonID(strings.TrimSpace(string(cmd.ID)))
	if id == "" {
		id = domain.LessonID(uuid.NewString())
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		name = fmt.Sprintf("Lesson %s", id)
	}

	return domain.Lesson{
		ID:        id,
		Name:      name,
		Record:    cmd.Record,
		Expected:  cmd.Expected,
		CreatedAt: s.clock.Now(),
	}
}
