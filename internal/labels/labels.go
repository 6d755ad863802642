// Package labels holds the user-visible strings of the calendar for each
// supported display language.
package labels

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Set is the label table for one language. Weekdays is indexed by
// time.Weekday, Months by time.Month-1.
type Set struct {
	Tag language.Tag

	Title    string
	Weekdays [7]string
	Months   [12]string

	AddPrompt    string // %s = date
	EditPrompt   string
	DeleteTitle  string
	DeletePrompt string // %s = date
	EventsFor    string // %s = date
	NoEvents     string // %s = date

	MenuTitle  string // %s = date
	MenuView   string
	MenuEdit   string
	MenuDelete string

	Yes     string
	No      string
	Dismiss string
	Help    string
}

var english = Set{
	Tag:      language.English,
	Title:    "Monthly Calendar",
	Weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
	Months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	AddPrompt:    "Add event for %s:",
	EditPrompt:   "Edit event:",
	DeleteTitle:  "Confirm deletion",
	DeletePrompt: "Delete the first event for %s?",
	EventsFor:    "Events for %s:",
	NoEvents:     "No events for %s",
	MenuTitle:    "%s",
	MenuView:     "View events",
	MenuEdit:     "Edit event",
	MenuDelete:   "Delete event",
	Yes:          "Yes",
	No:           "No",
	Dismiss:      "press any key",
	Help:         "←↑↓→ move • enter add • m menu • p/n month • t today • q quit",
}

var spanish = Set{
	Tag:      language.Spanish,
	Title:    "Calendario Mensual",
	Weekdays: [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"},
	Months: [12]string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
	AddPrompt:    "Agregar evento para %s:",
	EditPrompt:   "Editar evento:",
	DeleteTitle:  "Confirmar eliminación",
	DeletePrompt: "¿Eliminar el primer evento para %s?",
	EventsFor:    "Eventos para %s:",
	NoEvents:     "No hay eventos para %s",
	MenuTitle:    "%s",
	MenuView:     "Ver eventos",
	MenuEdit:     "Editar evento",
	MenuDelete:   "Eliminar evento",
	Yes:          "Sí",
	No:           "No",
	Dismiss:      "pulse una tecla",
	Help:         "←↑↓→ mover • enter agregar • m menú • p/n mes • t hoy • q salir",
}

// supported is ordered by preference; the first entry is the fallback.
var supported = []Set{english, spanish}

var matcher = language.NewMatcher([]language.Tag{english.Tag, spanish.Tag})

// For returns the label set that best matches locale, a BCP 47 tag such as
// "es-AR". Unknown or malformed tags get English.
func For(locale string) Set {
	tag, err := language.Parse(locale)
	if err != nil {
		return english
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return english
	}
	return supported[idx]
}

// Default returns the English label set.
func Default() Set {
	return english
}

// MonthTitle returns the navigation bar label, e.g. "March 2024".
func (s Set) MonthTitle(year int, month time.Month) string {
	return fmt.Sprintf("%s %d", s.Months[month-1], year)
}

// Weekday returns the short header label for wd.
func (s Set) Weekday(wd time.Weekday) string {
	return s.Weekdays[wd]
}
