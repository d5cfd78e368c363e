package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateTime(year int, month time.Month, day, hour, minute, second int) DateTime {
	return DateTime{time.Date(year, month, day, hour, minute, second, 0, time.Local)}
}

func TestScheduleIntersects(t *testing.T) {
	// Кандидат [19:00, 20:00) на 2024-01-01
	candidate := Schedule{
		ID:      999,
		Subject: "новое занятие",
		Start:   dateTime(2024, time.January, 1, 19, 0, 0),
		End:     dateTime(2024, time.January, 1, 20, 0, 0),
	}

	tests := []struct {
		name       string
		start, end DateTime
		want       bool
	}{
		{"заканчивается до кандидата", dateTime(2024, time.January, 1, 18, 15, 0), dateTime(2024, time.January, 1, 18, 45, 0), false},
		{"задевает начало кандидата", dateTime(2024, time.January, 1, 18, 15, 0), dateTime(2024, time.January, 1, 19, 15, 0), true},
		{"перекрывает начало кандидата", dateTime(2024, time.January, 1, 18, 15, 0), dateTime(2024, time.January, 1, 19, 45, 0), true},
		{"полностью содержит кандидата", dateTime(2024, time.January, 1, 18, 15, 0), dateTime(2024, time.January, 1, 20, 45, 0), true},
		{"внутри кандидата", dateTime(2024, time.January, 1, 19, 15, 0), dateTime(2024, time.January, 1, 19, 45, 0), true},
		{"перекрывает конец кандидата", dateTime(2024, time.January, 1, 19, 15, 0), dateTime(2024, time.January, 1, 20, 45, 0), true},
		{"начинается после кандидата", dateTime(2024, time.January, 1, 20, 15, 0), dateTime(2024, time.January, 1, 20, 45, 0), false},
		{"граница в границу сзади", dateTime(2024, time.January, 1, 18, 0, 0), dateTime(2024, time.January, 1, 19, 0, 0), false},
		{"граница в границу спереди", dateTime(2024, time.January, 1, 20, 0, 0), dateTime(2024, time.January, 1, 21, 0, 0), false},
		{"идентичный интервал", dateTime(2024, time.January, 1, 19, 0, 0), dateTime(2024, time.January, 1, 20, 0, 0), true},
		{"тот же час в другой день", dateTime(2024, time.January, 8, 19, 0, 0), dateTime(2024, time.January, 8, 20, 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := Schedule{ID: 1, Subject: "существующее занятие", Start: tt.start, End: tt.end}

			assert.Equal(t, tt.want, existing.Intersects(&candidate))
			// Пересечение симметрично
			assert.Equal(t, existing.Intersects(&candidate), candidate.Intersects(&existing))
		})
	}
}

func TestParseDateTime_Valid(t *testing.T) {
	parsed, err := ParseDateTime("2024-01-01T09:00:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(dateTime(2024, time.January, 1, 9, 0, 0).Time))
}

func TestParseDateTime_Invalid(t *testing.T) {
	_, err := ParseDateTime("01.01.2024 09:00")
	assert.Error(t, err)
}

func TestDateTime_JSONRoundTrip(t *testing.T) {
	original := dateTime(2024, time.November, 19, 11, 22, 33)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, `"2024-11-19T11:22:33"`, string(data))

	var decoded DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, original.Equal(decoded.Time))
}

func TestDateTime_UnmarshalInvalid(t *testing.T) {
	var decoded DateTime
	err := json.Unmarshal([]byte(`"not-a-datetime"`), &decoded)
	assert.Error(t, err)
}
