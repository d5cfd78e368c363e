package export

import (
	"fmt"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/Freeeeeet/schedule_cli/internal/model"
)

// icsDateTimeLayout формат "плавающего" локального времени в iCalendar,
// без перевода в UTC: занятия хранятся без часового пояса
const icsDateTimeLayout = "20060102T150405"

// ICS сериализует занятия в документ iCalendar, по одному VEVENT на занятие
func ICS(schedules []model.Schedule) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//schedule_cli//RU")

	for _, schedule := range schedules {
		uid := fmt.Sprintf("%d-%s@schedule_cli", schedule.ID, uuid.New())

		event := cal.AddEvent(uid)
		event.SetProperty(ical.ComponentPropertyDtStart, schedule.Start.Format(icsDateTimeLayout))
		event.SetProperty(ical.ComponentPropertyDtEnd, schedule.End.Format(icsDateTimeLayout))
		event.SetSummary(schedule.Subject)
	}

	return cal.Serialize()
}
