package ics

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	appLog "deskcal/internal/log"
	"deskcal/internal/model"
)

const productID = "-//deskcal//Monthly Calendar//EN"

// uidNamespace seeds the name-based UUIDs so the same event text on the same
// day and position always exports with the same UID.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("deskcal"))

// BuildCalendar converts every event in store into an all-day VEVENT.
// Dates are visited in ascending order and events in list order. stamp is
// used for DTSTAMP.
func BuildCalendar(store *model.Store, stamp time.Time) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetProductId(productID)
	cal.SetMethod(ical.MethodPublish)

	count := 0
	for _, date := range store.Dates() {
		for i, text := range store.List(date) {
			ev := cal.AddEvent(EventUID(date, i, text))
			ev.SetDtStampTime(stamp.UTC())
			ev.SetSummary(text)
			ev.SetAllDayStartAt(date.Time())
			ev.SetAllDayEndAt(date.Time().AddDate(0, 0, 1))
			count++
		}
	}

	appLog.Debug("ics calendar built", "dates", store.Len(), "event_count", count)
	return cal
}

// Export writes store as an iCalendar document to w.
func Export(w io.Writer, store *model.Store, stamp time.Time) error {
	cal := BuildCalendar(store, stamp)
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		appLog.Error("ics export failed", err)
		return fmt.Errorf("write ics: %w", err)
	}
	return nil
}

// EventUID returns a stable UID for the index-th event of date.
func EventUID(date model.Date, index int, text string) string {
	name := fmt.Sprintf("%s/%d/%s", date, index, text)
	return uuid.NewSHA1(uidNamespace, []byte(name)).String() + "@deskcal"
}
