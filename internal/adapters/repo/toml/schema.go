package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Lessons []lessonSchema `toml:"lessons"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported lessons schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type lessonSchema struct {
	ID        string  `toml:"id"`
	Name      string  `toml:"name"`
	Lesson    []int64 `toml:"lesson"`
	Pupil     []int64 `toml:"pupil"`
	Tutor     []int64 `toml:"tutor"`
	Expected  *int64  `toml:"expected,omitempty"`
	CreatedAt string  `toml:"created_at,omitempty"`
}
