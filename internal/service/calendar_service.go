package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/schedule_cli/internal/model"
	"github.com/Freeeeeet/schedule_cli/internal/repository"
	"go.uber.org/zap"
)

// CalendarService операции над календарём поверх файлового хранилища
type CalendarService struct {
	repo   *repository.CalendarRepository
	logger *zap.Logger
}

func NewCalendarService(repo *repository.CalendarRepository, logger *zap.Logger) *CalendarService {
	return &CalendarService{
		repo:   repo,
		logger: logger,
	}
}

// ListSchedules возвращает занятия в порядке хранения
func (s *CalendarService) ListSchedules(ctx context.Context) ([]model.Schedule, error) {
	calendar, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}

	return calendar.Schedules, nil
}

// AddSchedule добавляет занятие с проверкой конфликтов и сохраняет календарь.
// При конфликте хранилище остаётся нетронутым.
func (s *CalendarService) AddSchedule(ctx context.Context, subject string, start, end model.DateTime) (*model.Schedule, error) {
	calendar, err := s.repo.Load()
	if err != nil {
		return nil, fmt.Errorf("load calendar: %w", err)
	}

	schedule, err := calendar.AddSchedule(subject, start, end)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(calendar); err != nil {
		return nil, fmt.Errorf("save calendar: %w", err)
	}

	s.logger.Info("Schedule added",
		zap.Uint64("schedule_id", schedule.ID),
		zap.String("subject", schedule.Subject),
		zap.Time("start", schedule.Start.Time),
		zap.Time("end", schedule.End.Time),
	)

	return schedule, nil
}
