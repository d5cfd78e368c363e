package model

import (
	"errors"
	"fmt"
)

// ErrScheduleConflict кандидат пересекается с существующим занятием
var ErrScheduleConflict = errors.New("schedule conflict")

// IsConflict проверяет является ли ошибка конфликтом расписания
func IsConflict(err error) bool {
	return errors.Is(err, ErrScheduleConflict)
}

// Calendar упорядоченный список всех занятий
type Calendar struct {
	Schedules []Schedule `json:"schedules"`
}

// NextID возвращает id для следующего занятия.
// ID позиционные: удаления нет, поэтому нумерация остаётся плотной от нуля.
func (c *Calendar) NextID() uint64 {
	return uint64(len(c.Schedules))
}

// AddSchedule добавляет занятие если оно не пересекается ни с одним существующим.
// Проверка всё-или-ничего: первый найденный конфликт отменяет добавление,
// календарь при этом не меняется.
func (c *Calendar) AddSchedule(subject string, start, end DateTime) (*Schedule, error) {
	candidate := Schedule{
		ID:      c.NextID(),
		Subject: subject,
		Start:   start,
		End:     end,
	}

	for i := range c.Schedules {
		existing := &c.Schedules[i]
		if existing.Intersects(&candidate) {
			return nil, fmt.Errorf("%w: schedule %d (%s - %s) is in the way",
				ErrScheduleConflict, existing.ID, existing.Start, existing.End)
		}
	}

	c.Schedules = append(c.Schedules, candidate)
	return &c.Schedules[len(c.Schedules)-1], nil
}
