package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const defaultBarWidth = 24

type RenderOptions struct {
	// Seconds renders durations as h/m/s next to the raw values, for logs
	// recorded in epoch seconds.
	Seconds  bool
	BarWidth int
}

func renderView(reports []application.Report, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Lesson Appearance"),
		s.header.Render(fmt.Sprintf("lessons: %d", len(reports))),
	}

	if len(reports) == 0 {
		lines = append(lines, s.empty.Render("No lessons available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, report := range reports {
		lines = append(lines, s.section.Render(renderLesson(report, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLesson(report application.Report, opts RenderOptions, s styles) string {
	title := s.lesson.Render(lessonTitle(report))
	if !report.Matches() {
		title += " " + s.warning.Render(fmt.Sprintf("[mismatch: expected %d]", *report.Lesson.Expected))
	}

	parts := []string{
		title,
		attendanceLine(report, opts, s),
		s.detail.Render(fmt.Sprintf("together: %s of %s", formatAmount(report.Overlap, opts), formatAmount(report.WindowLength, opts))),
		s.barTextFaint.Render(fmt.Sprintf("pupil: %s  tutor: %s", formatAmount(report.PupilPresent, opts), formatAmount(report.TutorPresent, opts))),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func lessonTitle(report application.Report) string {
	name := strings.TrimSpace(report.Lesson.Name)
	if name == "" {
		return string(report.Lesson.ID)
	}

	return fmt.Sprintf("%s (%s)", name, report.Lesson.ID)
}

func attendanceLine(report application.Report, opts RenderOptions, s styles) string {
	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	percent := clampPercent(report.Attendance() * 100)
	percentStyle := lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.metricKey.Render("attendance:"),
		" ",
		renderProgressBar(percent, width, s),
		" ",
		percentStyle.Render(fmt.Sprintf("%3.0f%%", percent)),
	)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatAmount(value int64, opts RenderOptions) string {
	if !opts.Seconds {
		return fmt.Sprintf("%d", value)
	}

	return fmt.Sprintf("%s (%ds)", formatSeconds(value), value)
}

func formatSeconds(value int64) string {
	d := time.Duration(value) * time.Second
	hours := int64(d / time.Hour)
	minutes := int64(d%time.Hour) / int64(time.Minute)
	seconds := int64(d%time.Minute) / int64(time.Second)

	return fmt.Sprintf("%dh%02dm%02ds", hours, minutes, seconds)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp, faded at min and bright at max.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
