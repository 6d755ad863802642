package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"deskcal/internal/model"
)

// Layout of the grid inside the window. hitTest depends on these, so the
// grid lines must stay single-height and unwrapped.
const (
	cellWidth = 6
	marginX   = 2
	marginY   = 1
	navRow    = 0 // navigation bar, relative to marginY
	gridRow   = 2 // header row, relative to marginY
	navButton = 3 // width of "[<]" and "[>]"
)

type styles struct {
	window    lipgloss.Style
	title     lipgloss.Style
	button    lipgloss.Style
	header    lipgloss.Style
	cell      lipgloss.Style
	hasEvents lipgloss.Style
	today     lipgloss.Style
	dialog    lipgloss.Style
	dialogTtl lipgloss.Style
	selected  lipgloss.Style
	muted     lipgloss.Style
}

func newStyles(highlight, today string) styles {
	if highlight == "" {
		highlight = "#00FFFF"
	}
	if today == "" {
		today = "#FFAF00"
	}
	cell := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	return styles{
		window:    lipgloss.NewStyle().Padding(marginY, marginX),
		title:     lipgloss.NewStyle().Bold(true),
		button:    lipgloss.NewStyle().Bold(true),
		header:    cell.Foreground(lipgloss.Color("245")),
		cell:      cell,
		hasEvents: cell.Background(lipgloss.Color(highlight)).Foreground(lipgloss.Color("0")),
		today:     cell.Bold(true).Foreground(lipgloss.Color(today)),
		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		dialogTtl: lipgloss.NewStyle().Bold(true),
		selected:  lipgloss.NewStyle().Reverse(true),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.renderNav())
	b.WriteString("\n\n")
	b.WriteString(a.renderGrid())
	b.WriteString("\n")

	switch a.mode {
	case ModeMenu:
		b.WriteString(a.renderMenu())
	case ModeAdd, ModeEdit:
		b.WriteString(a.renderPrompt())
	case ModeConfirmDelete:
		b.WriteString(a.renderConfirm())
	case ModeMessage:
		b.WriteString(a.renderMessage())
	default:
		b.WriteString(a.styles.muted.Render(a.labels.Help))
	}

	return a.styles.window.Render(b.String())
}

func (a *App) renderNav() string {
	width := 7 * cellWidth
	title := a.styles.title.
		Width(width - 2*navButton).
		Align(lipgloss.Center).
		Render(a.labels.MonthTitle(a.current.Year, a.current.Month))
	return a.styles.button.Render("[<]") + title + a.styles.button.Render("[>]")
}

func (a *App) renderGrid() string {
	g := a.Grid()
	today := model.Today(a.clock)
	columns := model.Weekdays(g.WeekStart)

	lines := make([]string, 0, 7)
	for _, row := range g.Rows() {
		var line strings.Builder
		for col, c := range row {
			if c.Kind == model.CellHeader {
				line.WriteString(a.styles.header.Render(a.labels.Weekday(columns[col])))
				continue
			}
			line.WriteString(a.renderCell(c, today))
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderCell(c model.Cell, today model.Date) string {
	if c.Kind != model.CellDay {
		return a.styles.cell.Render("")
	}

	style := a.styles.cell
	switch {
	case c.HasEvents:
		style = a.styles.hasEvents
	case c.Date == today:
		style = a.styles.today
	}
	if c.Date == a.current {
		style = style.Reverse(true)
	}
	return style.Render(c.Label)
}

func (a *App) renderMenu() string {
	items := [menuLen]string{a.labels.MenuView, a.labels.MenuEdit, a.labels.MenuDelete}

	var b strings.Builder
	b.WriteString(a.styles.dialogTtl.Render(fmt.Sprintf(a.labels.MenuTitle, a.target)))
	for i, item := range items {
		b.WriteString("\n")
		if i == a.menuIdx {
			b.WriteString(a.styles.selected.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
	}
	return a.styles.dialog.Render(b.String())
}

func (a *App) renderPrompt() string {
	title := a.labels.EditPrompt
	if a.mode == ModeAdd {
		title = fmt.Sprintf(a.labels.AddPrompt, a.target)
	}
	return a.styles.dialog.Render(a.styles.dialogTtl.Render(title) + "\n" + a.input.View())
}

func (a *App) renderConfirm() string {
	yes, no := "  "+a.labels.Yes+"  ", "  "+a.labels.No+"  "
	if a.confirmYes {
		yes = a.styles.selected.Render(yes)
	} else {
		no = a.styles.selected.Render(no)
	}
	body := a.styles.dialogTtl.Render(a.labels.DeleteTitle) + "\n" +
		fmt.Sprintf(a.labels.DeletePrompt, a.target) + "\n\n" +
		yes + "  " + no
	return a.styles.dialog.Render(body)
}

func (a *App) renderMessage() string {
	return a.styles.dialog.Render(a.message + "\n\n" + a.styles.muted.Render(a.labels.Dismiss))
}

type hitKind int

const (
	hitNone hitKind = iota
	hitPrev
	hitNext
	hitDay
)

type hit struct {
	kind hitKind
	date model.Date
}

// hitTest maps a window cell to the control drawn there.
func (a *App) hitTest(x, y int) hit {
	x -= marginX
	y -= marginY
	if x < 0 || y < 0 {
		return hit{}
	}

	if y == navRow {
		switch {
		case x < navButton:
			return hit{kind: hitPrev}
		case x >= 7*cellWidth-navButton && x < 7*cellWidth:
			return hit{kind: hitNext}
		}
		return hit{}
	}

	if y < gridRow || x >= 7*cellWidth {
		return hit{}
	}
	if d, ok := a.Grid().DayAt(y-gridRow, x/cellWidth); ok {
		return hit{kind: hitDay, date: d}
	}
	return hit{}
}
