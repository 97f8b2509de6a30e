package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/lesson-appearance/internal/application"
	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shortGapsArgs = []string{
	"--lesson", "1594663200,1594666800",
	"--pupil", "1594663340,1594663389,1594663390,1594663395,1594663396,1594666472",
	"--tutor", "1594663290,1594663430,1594663443,1594666473",
}

const casesJSON = `[
  {
    "id": "short-gaps",
    "name": "Short gaps",
    "intervals": {
      "lesson": [1594663200, 1594666800],
      "pupil": [1594663340, 1594663389, 1594663390, 1594663395, 1594663396, 1594666472],
      "tutor": [1594663290, 1594663430, 1594663443, 1594666473]
    },
    "answer": 3117
  },
  {
    "name": "Beyond end",
    "intervals": {
      "lesson": [1594692000, 1594695600],
      "pupil": [1594692033, 1594696347],
      "tutor": [1594692017, 1594692066, 1594692068, 1594696341]
    },
    "answer": 3565
  }
]
`

func TestComputeFromFlags(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, append([]string{"compute"}, shortGapsArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "3117\n", stdout)
}

func TestComputeJSONOutput(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, append([]string{"compute", "--json"}, shortGapsArgs...)...)
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))

	var reports []reportJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, "cli", reports[0].ID)
	assert.Equal(t, int64(3117), reports[0].Overlap)
	assert.Equal(t, int64(3600), reports[0].Window)
	assert.True(t, reports[0].Matches)
}

func TestComputeFromCaseFile(t *testing.T) {
	home := t.TempDir()
	path := writeCaseFile(t, home, "cases.json", casesJSON)

	stdout, _, err := executeCLI(t, home, "compute", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "3117\n3565\n", stdout)
}

func TestComputeRequiresEveryLog(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "compute", "--lesson", "0,10", "--pupil", "1,2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
	assert.Contains(t, err.Error(), "missing --tutor")
}

func TestComputeRejectsOddLog(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "compute", "--lesson", "0,10", "--pupil", "1,2,3", "--tutor", "1,2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestComputeRejectsMalformedPair(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "compute", "--lesson", "0,10", "--pupil", "5,2", "--tutor", "1,2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedInterval))
}

func TestComputeFileExcludesLogFlags(t *testing.T) {
	home := t.TempDir()
	path := writeCaseFile(t, home, "cases.json", casesJSON)

	_, _, err := executeCLI(t, home, "compute", "--file", path, "--lesson", "0,10")
	require.Error(t, err)
}

func TestLessonAddListRemove(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, append([]string{"lesson", "add", "--id", "l-1", "--name", "Algebra", "--expected", "3117"}, shortGapsArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "added lesson l-1 (Algebra)")

	stdout, _, err = executeCLI(t, home, "lesson", "list")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "l-1\tAlgebra\t"))

	_, err = os.Stat(filepath.Join(home, ".appearance", "lessons.toml"))
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "lesson", "remove", "l-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "removed lesson l-1")

	stdout, _, err = executeCLI(t, home, "lesson", "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
}

func TestLessonAddGeneratesIDAndName(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, append([]string{"lesson", "add"}, shortGapsArgs...)...)
	require.NoError(t, err)
	assert.Contains(t, stdout, "added lesson ")
	assert.Contains(t, stdout, "(Lesson ")
}

func TestLessonRemoveUnknown(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "lesson", "remove", "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLessonNotFound))
}

func TestLessonImportThenReport(t *testing.T) {
	home := t.TempDir()
	path := writeCaseFile(t, home, "cases.yaml", `
- id: short-gaps
  name: Short gaps
  intervals:
    lesson: [1594663200, 1594666800]
    pupil: [1594663340, 1594663389, 1594663390, 1594663395, 1594663396, 1594666472]
    tutor: [1594663290, 1594663430, 1594663443, 1594666473]
  answer: 3000
`)

	stdout, _, err := executeCLI(t, home, "lesson", "import", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "imported 1 lessons")

	stdout, _, err = executeCLI(t, home, "report")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lessons: 1")
	assert.Contains(t, stdout, "Short gaps (short-gaps)")
	assert.Contains(t, stdout, "[mismatch: expected 3000]")
	assert.Contains(t, stdout, "(3117s)")

	stdout, _, err = executeCLI(t, home, "report", "--lesson", "short-gaps", "--json")
	require.NoError(t, err)

	var reports []reportJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 1)
	assert.Equal(t, int64(3117), reports[0].Overlap)
	assert.False(t, reports[0].Matches)
}

func TestLessonImportRequiresFile(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "lesson", "import")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag(s) \"file\" not set")
}

func TestReportWithoutLessons(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "report")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No lessons available.")
}

func TestReportRawAmountsFromConfig(t *testing.T) {
	home := t.TempDir()
	configDir := filepath.Join(home, ".appearance")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("[report]\nseconds = false\n"), 0o600))

	_, _, err := executeCLI(t, home, append([]string{"lesson", "add", "--id", "l-1"}, shortGapsArgs...)...)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "report")
	require.NoError(t, err)
	assert.Contains(t, stdout, "together: 3117 of 3600")
}

func TestVerifyPasses(t *testing.T) {
	home := t.TempDir()
	path := writeCaseFile(t, home, "cases.json", casesJSON)

	stdout, _, err := executeCLI(t, home, "verify", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "passed: 2/2")
	assert.Contains(t, stdout, "Short gaps (short-gaps)")
	assert.Contains(t, stdout, "Beyond end (case-2)")
}

func TestVerifyReportsMismatch(t *testing.T) {
	home := t.TempDir()
	path := writeCaseFile(t, home, "cases.toml", `
[[cases]]
id = "short-gaps"
answer = 1

[cases.intervals]
lesson = [1594663200, 1594666800]
pupil = [1594663340, 1594663389, 1594663390, 1594663395, 1594663396, 1594666472]
tutor = [1594663290, 1594663430, 1594663443, 1594666473]
`)

	stdout, _, err := executeCLI(t, home, "verify", "--file", path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, application.ErrVerificationFailed))
	assert.Contains(t, stdout, "mismatch case 1 (short-gaps): expected 1, got 3117")
	assert.Contains(t, stdout, "passed: 0/1")
}

func TestVerifyJSONOutput(t *testing.T) {
	home := t.TempDir()
	path := writeCaseFile(t, home, "cases.json", casesJSON)

	stdout, _, err := executeCLI(t, home, "verify", "--file", path, "--json")
	require.NoError(t, err)

	var out verifyJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 2, out.Passed)
	assert.Equal(t, 2, out.Total)
	assert.Empty(t, out.Mismatches)
}

func TestInvalidLogLevel(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "--log-level", "loud", "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")
}

func TestVersion(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCaseFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
