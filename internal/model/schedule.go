package model

import (
	"fmt"
	"strings"
	"time"
)

// DateTimeLayout формат даты и времени в хранилище и в аргументах команд
const DateTimeLayout = "2006-01-02T15:04:05"

// DateTime локальные дата и время без часового пояса
type DateTime struct {
	time.Time
}

// ParseDateTime разбирает дату и время из текстового вида
func ParseDateTime(s string) (DateTime, error) {
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return DateTime{}, fmt.Errorf("parse datetime %q: %w", s, err)
	}
	return DateTime{t}, nil
}

func (d DateTime) String() string {
	return d.Format(DateTimeLayout)
}

// MarshalJSON сериализует дату без часового пояса
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateTimeLayout) + `"`), nil
}

// UnmarshalJSON разбирает дату без часового пояса
func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.ParseInLocation(DateTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse datetime %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Schedule одно запланированное занятие
type Schedule struct {
	ID      uint64   `json:"id"`
	Subject string   `json:"subject"`
	Start   DateTime `json:"start"`
	End     DateTime `json:"end"`
}

// Intersects проверяет пересечение занятий по времени.
// Интервалы полуоткрытые [start, end): совпадение границы пересечением не считается.
func (s *Schedule) Intersects(other *Schedule) bool {
	return s.Start.Before(other.End.Time) && other.Start.Before(s.End.Time)
}
