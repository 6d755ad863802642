package model

import (
	"strconv"
	"time"
)

// CellKind tells the view how to draw a grid cell.
type CellKind int

const (
	CellHeader CellKind = iota
	CellBlank
	CellDay
)

// Cell is one position of the 7-column month grid.
type Cell struct {
	Kind  CellKind
	Label string

	// Date and HasEvents are set for CellDay only.
	Date      Date
	HasEvents bool
}

// Grid is the ordered cell sequence for one month: seven headers, the
// leading blanks, then one cell per day.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Cells     []Cell
}

var weekdayAbbrev = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Weekdays returns the seven weekdays in column order for weekStart.
func Weekdays(weekStart time.Weekday) [7]time.Weekday {
	var out [7]time.Weekday
	for i := range out {
		out[i] = (weekStart + time.Weekday(i)) % 7
	}
	return out
}

// ComputeMonthGrid lays out year/month for a grid whose first column is
// weekStart. HasEvents reflects store at the time of the call; a nil store
// is treated as empty.
func ComputeMonthGrid(year int, month time.Month, store *Store, weekStart time.Weekday) Grid {
	first := Date{Year: year, Month: month, Day: 1}
	days := DaysIn(year, month)
	blanks := leadingBlanks(first.Weekday(), weekStart)

	cells := make([]Cell, 0, 7+blanks+days)
	for _, wd := range Weekdays(weekStart) {
		cells = append(cells, Cell{Kind: CellHeader, Label: weekdayAbbrev[wd]})
	}
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{Kind: CellBlank})
	}
	for day := 1; day <= days; day++ {
		d := Date{Year: year, Month: month, Day: day}
		cells = append(cells, Cell{
			Kind:      CellDay,
			Label:     strconv.Itoa(day),
			Date:      d,
			HasEvents: store != nil && store.Has(d),
		})
	}

	return Grid{Year: year, Month: month, WeekStart: weekStart, Cells: cells}
}

// leadingBlanks is the column index of day 1. With a Monday start this is
// the ISO weekday of day 1 minus one.
func leadingBlanks(firstDay, weekStart time.Weekday) int {
	return (int(firstDay) - int(weekStart) + 7) % 7
}

// LeadingBlanks returns the number of blank cells before day 1.
func (g Grid) LeadingBlanks() int {
	n := 0
	for _, c := range g.Cells {
		if c.Kind == CellBlank {
			n++
		}
	}
	return n
}

// Days returns only the day cells, in order.
func (g Grid) Days() []Cell {
	out := make([]Cell, 0, 31)
	for _, c := range g.Cells {
		if c.Kind == CellDay {
			out = append(out, c)
		}
	}
	return out
}

// Rows splits the cells into rows of seven. The first row holds the headers;
// the last row may be short.
func (g Grid) Rows() [][]Cell {
	rows := make([][]Cell, 0, 7)
	for i := 0; i < len(g.Cells); i += 7 {
		end := i + 7
		if end > len(g.Cells) {
			end = len(g.Cells)
		}
		rows = append(rows, g.Cells[i:end])
	}
	return rows
}

// Position returns the row (0 is the header row) and column of day in the
// grid.
func (g Grid) Position(day int) (row, col int) {
	idx := 7 + g.LeadingBlanks() + day - 1
	return idx / 7, idx % 7
}

// DayAt is the inverse of Position. It reports false for header, blank and
// out-of-range positions.
func (g Grid) DayAt(row, col int) (Date, bool) {
	if row < 1 || col < 0 || col > 6 {
		return Date{}, false
	}
	idx := row*7 + col
	if idx >= len(g.Cells) || g.Cells[idx].Kind != CellDay {
		return Date{}, false
	}
	return g.Cells[idx].Date, true
}
