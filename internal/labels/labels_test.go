package labels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		locale string
		title  string
	}{
		{"en", "Monthly Calendar"},
		{"en-GB", "Monthly Calendar"},
		{"es", "Calendario Mensual"},
		{"es-AR", "Calendario Mensual"},
		{"ja", "Monthly Calendar"},
		{"not a tag!", "Monthly Calendar"},
		{"", "Monthly Calendar"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.title, For(tt.locale).Title)
		})
	}
}

func TestMonthTitleAndWeekday(t *testing.T) {
	assert.Equal(t, "March 2024", Default().MonthTitle(2024, time.March))
	assert.Equal(t, "Diciembre 1999", For("es").MonthTitle(1999, time.December))
	assert.Equal(t, "Mon", Default().Weekday(time.Monday))
	assert.Equal(t, "Dom", For("es").Weekday(time.Sunday))
}
