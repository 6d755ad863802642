package tui

import (
	"strconv"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskcal/internal/model"
)

func click(a *App, x, y int, button tea.MouseButton) {
	a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button})
}

// dayCoords returns a window position inside day's cell.
func dayCoords(a *App, day int) (x, y int) {
	row, col := a.Grid().Position(day)
	return marginX + col*cellWidth + cellWidth/2, marginY + gridRow + row
}

func TestViewLayoutMatchesHitTest(t *testing.T) {
	a := newTestApp(t)
	lines := strings.Split(a.View(), "\n")

	nav := lines[marginY+navRow]
	assert.True(t, strings.HasPrefix(nav[marginX:], "[<]"))
	assert.Contains(t, nav, "March 2024")
	assert.Equal(t, "[>]", nav[marginX+7*cellWidth-navButton:marginX+7*cellWidth])

	header := lines[marginY+gridRow]
	assert.Equal(t, "Mon", strings.TrimSpace(header[marginX:marginX+cellWidth]))
	assert.Equal(t, "Sun", strings.TrimSpace(header[marginX+6*cellWidth:marginX+7*cellWidth]))

	for _, day := range []int{1, 15, 31} {
		x, y := dayCoords(a, day)
		col := (x - marginX) / cellWidth
		cell := lines[y][marginX+col*cellWidth : marginX+(col+1)*cellWidth]
		assert.Equal(t, strconv.Itoa(day), strings.TrimSpace(cell))

		h := a.hitTest(x, y)
		assert.Equal(t, hitDay, h.kind)
		assert.Equal(t, day, h.date.Day)
	}
}

func TestHitTestMisses(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, hitNone, a.hitTest(0, 0).kind)
	assert.Equal(t, hitNone, a.hitTest(marginX+10, marginY+navRow).kind, "month title")
	assert.Equal(t, hitNone, a.hitTest(marginX+1, marginY+gridRow).kind, "weekday header")
	assert.Equal(t, hitNone, a.hitTest(marginX+1, marginY+gridRow+1).kind, "leading blank")
	assert.Equal(t, hitNone, a.hitTest(marginX+7*cellWidth+1, marginY+gridRow+2).kind, "right of grid")
	assert.Equal(t, hitNone, a.hitTest(marginX+1, marginY+gridRow+7).kind, "below grid")
}

func TestMouse(t *testing.T) {
	a := newTestApp(t)

	x, y := dayCoords(a, 20)
	click(a, x, y, tea.MouseButtonLeft)
	require.Equal(t, ModeAdd, a.Mode())
	assert.Equal(t, model.NewDate(2024, time.March, 20), a.target)
	typeText(a, "Clicked")
	press(a, "enter")
	assert.Equal(t, model.EventList{"Clicked"}, a.Store().List(model.NewDate(2024, time.March, 20)))

	x, y = dayCoords(a, 3)
	click(a, x, y, tea.MouseButtonRight)
	require.Equal(t, ModeMenu, a.Mode())
	assert.Equal(t, model.NewDate(2024, time.March, 3), a.target)

	// Clicks are ignored while a modal is open.
	click(a, marginX, marginY+navRow, tea.MouseButtonLeft)
	assert.Equal(t, time.March, a.CurrentMonth().Month)
	press(a, "esc")

	click(a, marginX, marginY+navRow, tea.MouseButtonLeft)
	assert.Equal(t, time.February, a.CurrentMonth().Month)
	click(a, marginX+7*cellWidth-1, marginY+navRow, tea.MouseButtonLeft)
	click(a, marginX+7*cellWidth-1, marginY+navRow, tea.MouseButtonLeft)
	assert.Equal(t, time.April, a.CurrentMonth().Month)

	// Releases and wheel events do nothing.
	a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	a.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, ModeGrid, a.Mode())
}

func TestViewShowsModals(t *testing.T) {
	a := newTestApp(t)

	press(a, "enter")
	assert.Contains(t, a.View(), "Add event for 2024-03-15:")
	typeText(a, "Dentist")
	press(a, "enter")

	press(a, "m")
	view := a.View()
	assert.Contains(t, view, "View events")
	assert.Contains(t, view, "Edit event")
	assert.Contains(t, view, "Delete event")
	press(a, "esc")

	press(a, "e")
	assert.Contains(t, a.View(), "Edit event:")
	press(a, "esc")

	press(a, "d")
	view = a.View()
	assert.Contains(t, view, "Confirm deletion")
	assert.Contains(t, view, "Delete the first event for 2024-03-15?")
	press(a, "esc")

	press(a, "v")
	view = a.View()
	assert.Contains(t, view, "Events for 2024-03-15:")
	assert.Contains(t, view, "Dentist")
	press(a, "x")

	assert.Contains(t, a.View(), "q quit")
}

func TestWindowSize(t *testing.T) {
	a := newTestApp(t)
	a.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, a.width)
	assert.Equal(t, 24, a.height)
}
