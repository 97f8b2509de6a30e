// Package cases reads lesson case files: lists of
// {name, intervals: {lesson, pupil, tutor}, answer} entries, the shape used to
// record reference lessons together with their expected overlap.
package cases

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/lesson-appearance/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnsupportedFormat = errors.New("unsupported case file format")

var requiredKeys = []string{"lesson", "pupil", "tutor"}

type Case struct {
	ID     string
	Name   string
	Record domain.Record
	Answer *int64
}

type caseSchema struct {
	ID        string             `json:"id" yaml:"id" toml:"id"`
	Name      string             `json:"name" yaml:"name" toml:"name"`
	Intervals map[string][]int64 `json:"intervals" yaml:"intervals" toml:"intervals"`
	Answer    *int64             `json:"answer" yaml:"answer" toml:"answer"`
}

type tomlFileSchema struct {
	Cases []caseSchema `toml:"cases"`
}

func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func Load(path string) ([]Case, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read case file: %w", err)
	}

	return Decode(data, format)
}

// Decode accepts either a single case or a list of cases. TOML files hold
// a list as [[cases]] tables.
func Decode(data []byte, format Format) ([]Case, error) {
	entries, err := decodeEntries(data, format)
	if err != nil {
		return nil, err
	}

	out := make([]Case, 0, len(entries))
	for i, entry := range entries {
		c, err := entry.toCase()
		if err != nil {
			return nil, fmt.Errorf("case %d: %w", i+1, err)
		}
		out = append(out, c)
	}

	return out, nil
}

func decodeEntries(data []byte, format Format) ([]caseSchema, error) {
	switch format {
	case FormatJSON:
		if bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
			var entries []caseSchema
			if err := json.Unmarshal(data, &entries); err != nil {
				return nil, fmt.Errorf("decode json cases: %w", err)
			}
			return entries, nil
		}
		var entry caseSchema
		if err := json.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("decode json case: %w", err)
		}
		return []caseSchema{entry}, nil
	case FormatYAML:
		var root yaml.Node
		if err := yaml.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("decode yaml cases: %w", err)
		}
		if len(root.Content) == 0 {
			return nil, nil
		}
		if root.Content[0].Kind == yaml.SequenceNode {
			var entries []caseSchema
			if err := root.Content[0].Decode(&entries); err != nil {
				return nil, fmt.Errorf("decode yaml cases: %w", err)
			}
			return entries, nil
		}
		var entry caseSchema
		if err := root.Content[0].Decode(&entry); err != nil {
			return nil, fmt.Errorf("decode yaml case: %w", err)
		}
		return []caseSchema{entry}, nil
	case FormatTOML:
		var file tomlFileSchema
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("decode toml cases: %w", err)
		}
		if len(file.Cases) > 0 {
			return file.Cases, nil
		}
		var entry caseSchema
		if err := toml.Unmarshal(data, &entry); err != nil {
			return nil, fmt.Errorf("decode toml case: %w", err)
		}
		return []caseSchema{entry}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (s caseSchema) toCase() (Case, error) {
	if s.Intervals == nil {
		return Case{}, fmt.Errorf("%w: missing \"intervals\"", domain.ErrInvalidInput)
	}
	for _, key := range requiredKeys {
		if _, ok := s.Intervals[key]; !ok {
			return Case{}, fmt.Errorf("%w: missing %q", domain.ErrInvalidInput, key)
		}
	}

	return Case{
		ID:   strings.TrimSpace(s.ID),
		Name: strings.TrimSpace(s.Name),
		Record: domain.Record{
			Lesson: s.Intervals["lesson"],
			Pupil:  s.Intervals["pupil"],
			Tutor:  s.Intervals["tutor"],
		},
		Answer: s.Answer,
	}, nil
}
