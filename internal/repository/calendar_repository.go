package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Freeeeeet/schedule_cli/internal/model"
)

// DefaultScheduleFile имя файла хранилища по умолчанию
const DefaultScheduleFile = "schedules.json"

// CalendarRepository хранит весь календарь в одном JSON-документе
type CalendarRepository struct {
	path string
}

// NewCalendarRepository создаёт репозиторий поверх файла по указанному пути
func NewCalendarRepository(path string) *CalendarRepository {
	if path == "" {
		path = DefaultScheduleFile
	}
	return &CalendarRepository{path: path}
}

// Path возвращает путь к файлу хранилища
func (r *CalendarRepository) Path() string {
	return r.path
}

// Load читает документ календаря целиком
func (r *CalendarRepository) Load() (*model.Calendar, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("open schedule file: %w", err)
	}

	var calendar model.Calendar
	if err := json.Unmarshal(data, &calendar); err != nil {
		return nil, fmt.Errorf("decode schedule file: %w", err)
	}

	return &calendar, nil
}

// Save полностью заменяет документ календаря.
// Запись идёт во временный файл в том же каталоге с последующим rename,
// чтобы частично записанный документ никогда не оказался на месте хранилища.
func (r *CalendarRepository) Save(calendar *model.Calendar) error {
	data, err := json.Marshal(calendar)
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace schedule file: %w", err)
	}

	return nil
}

// Create создаёт пустой документ календаря.
// Существующий файл не перезаписывается.
func (r *CalendarRepository) Create() error {
	if _, err := os.Stat(r.path); err == nil {
		return fmt.Errorf("schedule file %s already exists", r.path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat schedule file: %w", err)
	}

	return r.Save(&model.Calendar{Schedules: []model.Schedule{}})
}
