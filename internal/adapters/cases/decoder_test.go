package cases

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONList(t *testing.T) {
	t.Parallel()

	data := []byte(`[
  {"intervals": {"lesson": [1594692000, 1594695600], "pupil": [1594692033, 1594696347], "tutor": [1594692017, 1594692066, 1594692068, 1594696341]}, "answer": 3565},
  {"name": "empty pupil", "intervals": {"lesson": [0, 10], "pupil": [], "tutor": [0, 10]}}
]`)

	got, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].Answer)
	assert.Equal(t, int64(3565), *got[0].Answer)
	assert.Equal(t, []domain.Timestamp{1594692000, 1594695600}, got[0].Record.Lesson)
	assert.Equal(t, domain.RawLog{1594692017, 1594692066, 1594692068, 1594696341}, got[0].Record.Tutor)

	assert.Equal(t, "empty pupil", got[1].Name)
	assert.Nil(t, got[1].Answer)
	assert.Empty(t, got[1].Record.Pupil)
}

func TestDecodeJSONSingle(t *testing.T) {
	t.Parallel()

	got, err := Decode([]byte(`{"id": " c-1 ", "intervals": {"lesson": [0, 10], "pupil": [1, 2], "tutor": [0, 5]}}`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c-1", got[0].ID)
}

func TestDecodeYAML(t *testing.T) {
	t.Parallel()

	list := []byte(`
- name: first
  intervals:
    lesson: [0, 100]
    pupil: [10, 20]
    tutor: [0, 100]
  answer: 10
- name: second
  intervals:
    lesson: [0, 100]
    pupil: []
    tutor: []
`)
	got, err := Decode(list, FormatYAML)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	require.NotNil(t, got[0].Answer)
	assert.Equal(t, int64(10), *got[0].Answer)
	assert.Equal(t, "second", got[1].Name)

	single := []byte("intervals:\n  lesson: [0, 1]\n  pupil: [0, 1]\n  tutor: [0, 1]\n")
	got, err = Decode(single, FormatYAML)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.RawLog{0, 1}, got[0].Record.Pupil)
}

func TestDecodeTOML(t *testing.T) {
	t.Parallel()

	list := []byte(`
[[cases]]
name = "first"
answer = 5

[cases.intervals]
lesson = [0, 10]
pupil = [0, 5]
tutor = [0, 10]

[[cases]]
name = "second"

[cases.intervals]
lesson = [0, 10]
pupil = []
tutor = []
`)
	got, err := Decode(list, FormatTOML)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Name)
	require.NotNil(t, got[0].Answer)
	assert.Equal(t, int64(5), *got[0].Answer)

	single := []byte("name = \"solo\"\n\n[intervals]\nlesson = [0, 10]\npupil = [0, 5]\ntutor = [5, 10]\n")
	got, err = Decode(single, FormatTOML)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "solo", got[0].Name)
}

func TestDecodeRejectsMissingFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		wantMsg string
	}{
		{name: "no intervals", data: `[{"answer": 1}]`, wantMsg: `case 1: invalid input: missing "intervals"`},
		{name: "no tutor", data: `[{"intervals": {"lesson": [0, 1], "pupil": []}}]`, wantMsg: `missing "tutor"`},
		{name: "no lesson", data: `{"intervals": {"pupil": [], "tutor": []}}`, wantMsg: `missing "lesson"`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Decode([]byte(tc.data), FormatJSON)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{path: "cases.json", want: FormatJSON},
		{path: "cases.YAML", want: FormatYAML},
		{path: "cases.yml", want: FormatYAML},
		{path: "dir/cases.toml", want: FormatTOML},
		{path: "cases.csv", wantErr: true},
		{path: "cases", wantErr: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()
			got, err := FormatFromPath(tc.path)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoadReadsFileByExtension(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- intervals: {lesson: [0, 4], pupil: [0, 4], tutor: [2, 4]}\n  answer: 2\n"), 0o600))

	got, err := Load(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Answer)
	assert.Equal(t, int64(2), *got[0].Answer)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "read case file")
}
