// Package tui is the interactive month view. App owns the session state (the
// event store and the displayed month) and turns key presses and mouse
// clicks into calls on the calendar model.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"deskcal/internal/clock"
	"deskcal/internal/labels"
	"deskcal/internal/model"
)

// Mode is what the window is currently waiting for. Every mode other than
// ModeGrid is modal: grid input is ignored until it is resolved.
type Mode int

const (
	ModeGrid Mode = iota
	ModeMenu
	ModeAdd
	ModeEdit
	ModeConfirmDelete
	ModeMessage
)

func (m Mode) String() string {
	switch m {
	case ModeGrid:
		return "grid"
	case ModeMenu:
		return "menu"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	case ModeConfirmDelete:
		return "confirm-delete"
	case ModeMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Menu entries, in display order.
const (
	menuView = iota
	menuEdit
	menuDelete
	menuLen
)

// Options configures a new App. Zero values get defaults.
type Options struct {
	WeekStart      time.Weekday
	Labels         labels.Set
	HighlightColor string
	TodayColor     string
	Clock          clock.Clock

	// Start is the initially displayed month. The zero Date means today.
	Start model.Date
}

// App is the bubbletea model of the calendar window.
type App struct {
	store     *model.Store
	clock     clock.Clock
	labels    labels.Set
	weekStart time.Weekday
	styles    styles

	current model.Date // displayed month; Day is the cursor
	mode    Mode

	// State of the open modal. target is the day it acts on.
	target     model.Date
	input      textinput.Model
	menuIdx    int
	confirmYes bool
	message    string

	width  int
	height int
}

// New returns an App showing opts.Start (or the current month) over store.
func New(store *model.Store, opts Options) *App {
	if store == nil {
		store = model.NewStore()
	}
	if opts.Clock == nil {
		opts.Clock = clock.System{}
	}
	if opts.Labels.Title == "" {
		opts.Labels = labels.Default()
	}

	start := opts.Start
	if start == (model.Date{}) {
		start = model.Today(opts.Clock)
	}

	input := textinput.New()
	input.CharLimit = 200
	input.Width = 40

	return &App{
		store:     store,
		clock:     opts.Clock,
		labels:    opts.Labels,
		weekStart: opts.WeekStart,
		styles:    newStyles(opts.HighlightColor, opts.TodayColor),
		current:   start,
		mode:      ModeGrid,
		input:     input,
	}
}

// Store returns the event store the App mutates.
func (a *App) Store() *model.Store { return a.store }

// CurrentMonth returns the displayed month. Its Day is the cursor position.
func (a *App) CurrentMonth() model.Date { return a.current }

// Mode returns the open modal, or ModeGrid.
func (a *App) Mode() Mode { return a.mode }

// Message returns the text of the open message box.
func (a *App) Message() string { return a.message }

// Grid computes the layout of the displayed month.
func (a *App) Grid() model.Grid {
	return model.ComputeMonthGrid(a.current.Year, a.current.Month, a.store, a.weekStart)
}

func (a *App) Init() tea.Cmd {
	return tea.SetWindowTitle(a.labels.Title)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.MouseMsg:
		return a.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.mode {
		case ModeMenu:
			return a.handleMenuKeys(msg)
		case ModeAdd, ModeEdit:
			return a.handleInputKeys(msg)
		case ModeConfirmDelete:
			return a.handleConfirmKeys(msg)
		case ModeMessage:
			a.closeModal()
			return a, nil
		default:
			return a.handleGridKeys(msg)
		}
	}

	return a, nil
}
