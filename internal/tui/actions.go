package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	appLog "deskcal/internal/log"
	"deskcal/internal/model"
)

// moveCursor shifts the cursor by delta days, staying inside the displayed
// month. Crossing a month boundary is left to explicit navigation.
func (a *App) moveCursor(delta int) {
	day := a.current.Day + delta
	if day < 1 || day > model.DaysIn(a.current.Year, a.current.Month) {
		return
	}
	a.current.Day = day
}

func (a *App) navigate(delta int) {
	from := a.current
	a.current = model.AdvanceMonth(a.current, delta)
	appLog.Debug("month changed", "from", from.String(), "to", a.current.String(), "delta", delta)
}

func (a *App) goToday() {
	a.current = model.Today(a.clock)
	appLog.Debug("jumped to today", "date", a.current.String())
}

func (a *App) openAdd(date model.Date) tea.Cmd {
	a.target = date
	a.mode = ModeAdd
	a.input.Reset()
	return a.input.Focus()
}

func (a *App) submitAdd() {
	text := a.input.Value()
	err := a.store.Add(a.target, text)
	switch {
	case errors.Is(err, model.ErrEmptyText):
		appLog.Debug("add cancelled: empty text", "date", a.target.String())
	case err != nil:
		appLog.Error("add event failed", err, "date", a.target.String())
	default:
		appLog.Debug("event added", "date", a.target.String(), "count", len(a.store.List(a.target)))
	}
	a.closeModal()
}

func (a *App) openMenu(date model.Date) {
	a.target = date
	a.menuIdx = menuView
	a.mode = ModeMenu
}

func (a *App) selectMenu(idx int) tea.Cmd {
	date := a.target
	a.closeModal()
	switch idx {
	case menuView:
		a.viewEvents(date)
	case menuEdit:
		return a.openEdit(date)
	case menuDelete:
		a.openDelete(date)
	}
	return nil
}

func (a *App) viewEvents(date model.Date) {
	events := a.store.List(date)
	if len(events) == 0 {
		a.showMessage(fmt.Sprintf(a.labels.NoEvents, date))
		return
	}
	a.showMessage(fmt.Sprintf(a.labels.EventsFor, date) + "\n" + strings.Join(events, "\n"))
}

func (a *App) openEdit(date model.Date) tea.Cmd {
	first, err := a.store.First(date)
	if errors.Is(err, model.ErrNotFound) {
		a.showMessage(fmt.Sprintf(a.labels.NoEvents, date))
		return nil
	}
	a.target = date
	a.mode = ModeEdit
	a.input.Reset()
	a.input.SetValue(first)
	a.input.CursorEnd()
	return a.input.Focus()
}

func (a *App) submitEdit() {
	err := a.store.EditFirst(a.target, a.input.Value())
	switch {
	case errors.Is(err, model.ErrNotFound):
		a.showMessage(fmt.Sprintf(a.labels.NoEvents, a.target))
		return
	case errors.Is(err, model.ErrEmptyText):
		appLog.Debug("edit cancelled: empty text", "date", a.target.String())
	case err != nil:
		appLog.Error("edit event failed", err, "date", a.target.String())
	default:
		appLog.Debug("event edited", "date", a.target.String())
	}
	a.closeModal()
}

func (a *App) openDelete(date model.Date) {
	if !a.store.Has(date) {
		a.showMessage(fmt.Sprintf(a.labels.NoEvents, date))
		return
	}
	a.target = date
	a.confirmYes = true
	a.mode = ModeConfirmDelete
}

func (a *App) confirmDelete() {
	removed, err := a.store.DeleteFirst(a.target)
	if errors.Is(err, model.ErrNotFound) {
		a.showMessage(fmt.Sprintf(a.labels.NoEvents, a.target))
		return
	}
	appLog.Debug("event deleted", "date", a.target.String(), "text", removed, "remaining", len(a.store.List(a.target)))
	a.closeModal()
}

func (a *App) showMessage(text string) {
	a.message = text
	a.mode = ModeMessage
}

// cancel dismisses the open modal without touching the store.
func (a *App) cancel() {
	appLog.Debug("prompt cancelled", "mode", a.mode.String(), "date", a.target.String())
	a.closeModal()
}

func (a *App) closeModal() {
	a.mode = ModeGrid
	a.message = ""
	a.input.Blur()
}
