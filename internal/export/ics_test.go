package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Freeeeeet/schedule_cli/internal/model"
)

func TestICS_EmptyCalendar(t *testing.T) {
	serialized := ICS(nil)

	assert.Contains(t, serialized, "BEGIN:VCALENDAR")
	assert.Contains(t, serialized, "END:VCALENDAR")
	assert.NotContains(t, serialized, "BEGIN:VEVENT")
}

func TestICS_OneEventPerSchedule(t *testing.T) {
	schedules := []model.Schedule{
		{
			ID:      0,
			Subject: "Standup",
			Start:   model.DateTime{Time: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)},
			End:     model.DateTime{Time: time.Date(2024, time.January, 1, 9, 30, 0, 0, time.Local)},
		},
		{
			ID:      1,
			Subject: "Retro",
			Start:   model.DateTime{Time: time.Date(2024, time.January, 2, 15, 0, 0, 0, time.Local)},
			End:     model.DateTime{Time: time.Date(2024, time.January, 2, 16, 0, 0, 0, time.Local)},
		},
	}

	serialized := ICS(schedules)

	assert.Equal(t, 2, strings.Count(serialized, "BEGIN:VEVENT"))
	assert.Contains(t, serialized, "SUMMARY:Standup")
	assert.Contains(t, serialized, "SUMMARY:Retro")

	// Плавающее локальное время, без перевода в UTC
	assert.Contains(t, serialized, "DTSTART:20240101T090000")
	assert.Contains(t, serialized, "DTEND:20240101T093000")
	assert.Contains(t, serialized, "DTSTART:20240102T150000")
	assert.NotContains(t, serialized, "DTSTART:20240101T090000Z")
}
