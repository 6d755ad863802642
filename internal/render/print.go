// Package render prints a month grid as plain text for non-interactive use,
// in the spirit of cal(1).
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"deskcal/internal/labels"
	"deskcal/internal/model"
)

const cellWidth = 4

// PrintMonth writes g to w: a centred month title, the weekday header row,
// then one line per week. Days with events are highlighted and today is
// bold. Colour is emitted only when fatih/color decides the output supports it.
func PrintMonth(w io.Writer, g model.Grid, lbl labels.Set, today model.Date) error {
	headerColor := color.New(color.FgCyan, color.Bold).SprintFunc()
	subtle := color.New(color.FgHiBlack).SprintFunc()
	eventColor := color.New(color.FgBlack, color.BgCyan).SprintFunc()
	todayColor := color.New(color.FgYellow, color.Bold).SprintFunc()

	title := lbl.MonthTitle(g.Year, g.Month)
	pad := (7*cellWidth - len([]rune(title))) / 2
	if pad < 0 {
		pad = 0
	}

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(headerColor(title))
	b.WriteString("\n")

	columns := model.Weekdays(g.WeekStart)
	for _, row := range g.Rows() {
		for col, c := range row {
			switch c.Kind {
			case model.CellHeader:
				b.WriteString(subtle(fit(lbl.Weekday(columns[col]))))
			case model.CellBlank:
				b.WriteString(fit(""))
			case model.CellDay:
				text := fit(c.Label)
				switch {
				case c.HasEvents:
					text = eventColor(text)
				case c.Date == today:
					text = todayColor(text)
				}
				b.WriteString(text)
			}
		}
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write month: %w", err)
	}
	return nil
}

// fit right-aligns s in a cell, truncating long labels.
func fit(s string) string {
	r := []rune(s)
	if len(r) > cellWidth-1 {
		r = r[:cellWidth-1]
	}
	return strings.Repeat(" ", cellWidth-len(r)) + string(r)
}
