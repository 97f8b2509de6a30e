package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/bnema/lesson-appearance/internal/domain"
	"github.com/bnema/lesson-appearance/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configName        = "config"
	configType        = "toml"
	lessonsPathKey    = "lessons.path"
	lessonsFileMode   = 0o600
	lessonsDirMode    = 0o700
	lessonsConfigDir  = ".appearance"
	lessonsConfigFile = "lessons.toml"
	tempFilePattern   = ".lessons-*.toml.tmp"
)

type Repository struct {
	lessonsPath string
	mu          *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.LessonRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	defaultPath := filepath.Join(homeDir, lessonsConfigDir, lessonsConfigFile)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, lessonsConfigDir))
	cfg.SetDefault(lessonsPathKey, defaultPath)

	err = cfg.ReadInConfig()
	if err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	lessonsPath := cfg.GetString(lessonsPathKey)
	if lessonsPath == "" {
		return nil, errors.New("lessons path is empty")
	}
	lessonsPath, err = normalizeLessonsPath(lessonsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{lessonsPath: lessonsPath, mu: lockForPath(lessonsPath)}, nil
}

func (r *Repository) Save(ctx context.Context, lesson domain.Lesson) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(lesson)
	updated := false
	for i := range file.Lessons {
		if file.Lessons[i].ID == encoded.ID {
			file.Lessons[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Lessons = append(file.Lessons, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.LessonID) (domain.Lesson, error) {
	if err := ctx.Err(); err != nil {
		return domain.Lesson{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Lesson{}, err
	}

	for _, entry := range file.Lessons {
		if entry.ID == string(id) {
			return fromSchema(entry), nil
		}
	}

	return domain.Lesson{}, domain.ErrLessonNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.Lesson, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	lessons := make([]domain.Lesson, 0, len(file.Lessons))
	for _, entry := range file.Lessons {
		lessons = append(lessons, fromSchema(entry))
	}

	return lessons, nil
}

func (r *Repository) Delete(ctx context.Context, id domain.LessonID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	before := len(file.Lessons)
	file.Lessons = slices.DeleteFunc(file.Lessons, func(entry lessonSchema) bool {
		return entry.ID == string(id)
	})
	if len(file.Lessons) == before {
		return domain.ErrLessonNotFound
	}

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.lessonsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read lessons file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode lessons file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeLessonsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve lessons path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.lessonsPath), lessonsDirMode); err != nil {
		return fmt.Errorf("create lessons directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode lessons file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.lessonsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp lessons file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp lessons file: %w", err)
	}

	if err := tempFile.Chmod(lessonsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp lessons file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp lessons file: %w", err)
	}

	if err := os.Rename(tempName, r.lessonsPath); err != nil {
		return fmt.Errorf("replace lessons file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(lesson domain.Lesson) lessonSchema {
	return lessonSchema{
		ID:        string(lesson.ID),
		Name:      lesson.Name,
		Lesson:    timestampsOrEmpty(lesson.Record.Lesson),
		Pupil:     timestampsOrEmpty(lesson.Record.Pupil),
		Tutor:     timestampsOrEmpty(lesson.Record.Tutor),
		Expected:  lesson.Expected,
		CreatedAt: formatTime(lesson.CreatedAt),
	}
}

func fromSchema(lesson lessonSchema) domain.Lesson {
	return domain.Lesson{
		ID:   domain.LessonID(lesson.ID),
		Name: lesson.Name,
		Record: domain.Record{
			Lesson: timestampsOrEmpty(lesson.Lesson),
			Pupil:  timestampsOrEmpty(lesson.Pupil),
			Tutor:  timestampsOrEmpty(lesson.Tutor),
		},
		Expected:  lesson.Expected,
		CreatedAt: parseTime(lesson.CreatedAt),
	}
}

func timestampsOrEmpty(values []int64) []int64 {
	if values == nil {
		return []int64{}
	}

	return values
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
