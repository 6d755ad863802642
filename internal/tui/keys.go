package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) handleGridKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "left", "h":
		a.moveCursor(-1)
	case "right", "l":
		a.moveCursor(1)
	case "up", "k":
		a.moveCursor(-7)
	case "down", "j":
		a.moveCursor(7)
	case "p", "pgup", "<":
		a.navigate(-1)
	case "n", "pgdown", ">":
		a.navigate(1)
	case "t":
		a.goToday()
	case "enter", " ":
		return a, a.openAdd(a.current)
	case "m":
		a.openMenu(a.current)
	case "v":
		a.viewEvents(a.current)
	case "e":
		return a, a.openEdit(a.current)
	case "d":
		a.openDelete(a.current)
	}
	return a, nil
}

func (a *App) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.cancel()
	case "up", "k", "shift+tab":
		a.menuIdx = (a.menuIdx + menuLen - 1) % menuLen
	case "down", "j", "tab":
		a.menuIdx = (a.menuIdx + 1) % menuLen
	case "enter":
		return a, a.selectMenu(a.menuIdx)
	case "v":
		return a, a.selectMenu(menuView)
	case "e":
		return a, a.selectMenu(menuEdit)
	case "d":
		return a, a.selectMenu(menuDelete)
	}
	return a, nil
}

func (a *App) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.cancel()
		return a, nil
	case tea.KeyEnter:
		if a.mode == ModeAdd {
			a.submitAdd()
		} else {
			a.submitEdit()
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right", "h", "l", "tab", "shift+tab":
		a.confirmYes = !a.confirmYes
	case "y":
		a.confirmDelete()
	case "n", "esc", "q":
		a.cancel()
	case "enter":
		if a.confirmYes {
			a.confirmDelete()
		} else {
			a.cancel()
		}
	}
	return a, nil
}

func (a *App) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if a.mode != ModeGrid || msg.Action != tea.MouseActionPress {
		return a, nil
	}
	if msg.Button != tea.MouseButtonLeft && msg.Button != tea.MouseButtonRight {
		return a, nil
	}

	switch hit := a.hitTest(msg.X, msg.Y); hit.kind {
	case hitPrev:
		if msg.Button == tea.MouseButtonLeft {
			a.navigate(-1)
		}
	case hitNext:
		if msg.Button == tea.MouseButtonLeft {
			a.navigate(1)
		}
	case hitDay:
		a.current = hit.date
		switch msg.Button {
		case tea.MouseButtonLeft:
			return a, a.openAdd(hit.date)
		case tea.MouseButtonRight:
			a.openMenu(hit.date)
		}
	}
	return a, nil
}
