package render

import (
	"bytes"
	"fmt"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Freeeeeet/schedule_cli/internal/controller/formatting"
	"github.com/Freeeeeet/schedule_cli/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth       = 1200
	imageHeight      = 800
	headerHeight     = 80
	leftLabelsWidth  = 70
	dayPaddingX      = 6
	minSlotHeight    = 8.0
	slotBorderRadius = 5.0
	shadowOffset     = 3.0
	totalDaysInWeek  = 7
	hourPaddingTop   = 1
	hourPaddingBot   = 1
	defaultMinHour   = 8
	defaultMaxHour   = 20
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	textColor       = color.RGBA{80, 85, 90, 220}
	hourLabelColor  = color.RGBA{110, 115, 120, 200}
	hourLineColor   = color.NRGBA{150, 150, 150, 255}
	todayBgColor    = color.NRGBA{255, 99, 71, 125}
	evenDayColor    = color.NRGBA{240, 240, 240, 255}
	oddDayColor     = color.NRGBA{220, 220, 220, 255}
	slotColor       = color.RGBA{133, 193, 85, 220}
	slotTextColor   = color.RGBA{20, 24, 28, 230}
	slotShadowColor = color.RGBA{0, 0, 0, 20}
)

// weekBounds содержит границы недели
type weekBounds struct {
	start time.Time
	end   time.Time
}

// hourRange содержит диапазон часов для отображения
type hourRange struct {
	start int
	end   int
	total int
}

// RenderWeek генерирует изображение недели, в которую попадает date,
// с занятиями календаря в виде сетки Пн-Вс
func RenderWeek(schedules []model.Schedule, date time.Time) ([]byte, error) {
	week := normalizeToWeekBounds(date)
	today := normalizeToDay(time.Now())
	highlightToday := isDayInWeek(today, week)

	byDay := groupSchedulesByDay(schedules, week)
	hours := calculateHourRange(byDay)

	dc := createCanvas()
	dayWidth := (imageWidth - leftLabelsWidth) / totalDaysInWeek
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, week)
	drawHourLabels(dc, hours, cellHeight)

	currentDate := week.start
	for dayIndex := 0; dayIndex < totalDaysInWeek; dayIndex++ {
		x := float64(leftLabelsWidth + dayIndex*dayWidth)
		y := float64(headerHeight)

		isToday := highlightToday && isSameDay(currentDate, today)

		drawDayBackground(dc, x, y, dayWidth, dayHeight, dayIndex, isToday)
		drawDayHeader(dc, currentDate, x, y, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)

		for _, schedule := range byDay[dayKey(currentDate)] {
			drawSchedule(dc, schedule, x, y, dayWidth, hours, cellHeight)
		}

		currentDate = currentDate.AddDate(0, 0, 1)
	}

	return encodeImage(dc)
}

// normalizeToWeekBounds нормализует дату к границам недели (Пн-Вс)
func normalizeToWeekBounds(date time.Time) weekBounds {
	normalized := normalizeToDay(date)

	daysSinceMonday := int(normalized.Weekday()) - 1
	if normalized.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}

	start := normalized.AddDate(0, 0, -daysSinceMonday)
	end := start.AddDate(0, 0, 6)

	return weekBounds{start: start, end: end}
}

// normalizeToDay нормализует время к началу дня
func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// isDayInWeek проверяет, попадает ли день в отображаемую неделю
func isDayInWeek(day time.Time, week weekBounds) bool {
	return !day.Before(week.start) && !day.After(week.end)
}

// isSameDay проверяет, являются ли две даты одним днём
func isSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// groupSchedulesByDay группирует занятия недели по дням
func groupSchedulesByDay(schedules []model.Schedule, week weekBounds) map[string][]model.Schedule {
	byDay := make(map[string][]model.Schedule)
	for _, schedule := range schedules {
		day := normalizeToDay(schedule.Start.Time)
		if !isDayInWeek(day, week) {
			continue
		}
		byDay[dayKey(day)] = append(byDay[dayKey(day)], schedule)
	}
	return byDay
}

// calculateHourRange определяет диапазон часов для отображения
func calculateHourRange(byDay map[string][]model.Schedule) hourRange {
	minHour := 24
	maxHour := 0

	for _, daySchedules := range byDay {
		for _, schedule := range daySchedules {
			startH := schedule.Start.Hour()
			endH := schedule.End.Hour()
			if schedule.End.Minute() > 0 {
				endH++
			}
			if startH < minHour {
				minHour = startH
			}
			if endH > maxHour {
				maxHour = endH
			}
		}
	}

	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 23 {
		endHour = 23
	}

	return hourRange{
		start: startHour,
		end:   endHour,
		total: endHour - startHour + 1,
	}
}

// createCanvas создаёт новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок с датами недели
func drawHeader(dc *gg.Context, week weekBounds) {
	title := fmt.Sprintf("%s - %s",
		formatting.FormatDate(week.start),
		formatting.FormatDate(week.end),
	)

	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, imageWidth/2, float64(headerHeight)/4, 0.5, 0.5)
}

// drawHourLabels рисует колонку с часами слева
func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)

	for hIdx := 0; hIdx < hours.total; hIdx++ {
		actualHour := hours.start + hIdx
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := fmt.Sprintf("%02d:00", actualHour)
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

// drawDayBackground рисует фон дня
func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	if isToday {
		dc.SetColor(todayBgColor)
	} else if dayIndex%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

// drawDayHeader рисует дату и день недели над колонкой
func drawDayHeader(dc *gg.Context, date time.Time, x, y float64, dayWidth int) {
	dc.SetColor(textColor)
	dc.DrawStringAnchored(formatting.FormatDayHeader(date), x+float64(dayWidth)/2, y, 0.5, -1)
}

// drawHourLines рисует горизонтальные линии часов
func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)

	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		hy := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

// drawSchedule рисует одно занятие
func drawSchedule(dc *gg.Context, schedule model.Schedule, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	startHour := float64(schedule.Start.Hour()) + float64(schedule.Start.Minute())/60.0
	endHour := float64(schedule.End.Hour()) + float64(schedule.End.Minute())/60.0

	slotY := y + (startHour-float64(hours.start))*cellHeight
	slotHeight := (endHour - startHour) * cellHeight
	if slotHeight < minSlotHeight {
		slotHeight = minSlotHeight
	}

	slotX := x + dayPaddingX
	slotWidth := float64(dayWidth) - float64(dayPaddingX*2)

	// Тень под плашкой занятия
	dc.SetColor(slotShadowColor)
	dc.DrawRoundedRectangle(slotX+shadowOffset, slotY+shadowOffset, slotWidth, slotHeight, slotBorderRadius)
	dc.Fill()

	dc.SetColor(slotColor)
	dc.DrawRoundedRectangle(slotX, slotY, slotWidth, slotHeight, slotBorderRadius)
	dc.Fill()

	dc.SetColor(slotTextColor)
	label := formatting.FormatTimeRange(schedule.Start.Time, schedule.End.Time)
	dc.DrawStringAnchored(label, slotX+slotWidth/2, slotY+slotHeight/2, 0.5, 0.5)
}

// encodeImage кодирует контекст в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode week image: %w", err)
	}
	return buf.Bytes(), nil
}
