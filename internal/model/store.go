package model

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when a date has no events to edit or delete.
	ErrNotFound = errors.New("no events for date")
	// ErrEmptyText is returned for empty or whitespace-only event text.
	ErrEmptyText = errors.New("event text is empty")
)

// EventList is the ordered event text for one date. Insertion order is
// display order, and index 0 is the event that edit and delete act on.
type EventList []string

// Store maps dates to their events. A date present in the map always has at
// least one event; removing the last event removes the date.
//
// Store is not safe for concurrent use. The UI drives it from a single
// goroutine.
type Store struct {
	events map[Date]EventList
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{events: make(map[Date]EventList)}
}

// Add appends text to date's events, creating the list if needed.
func (s *Store) Add(date Date, text string) error {
	if isBlank(text) {
		return ErrEmptyText
	}
	s.events[date] = append(s.events[date], text)
	return nil
}

// EditFirst replaces the first event of date with text. The other events keep
// their order.
func (s *Store) EditFirst(date Date, text string) error {
	list, ok := s.events[date]
	if !ok || len(list) == 0 {
		return ErrNotFound
	}
	if isBlank(text) {
		return ErrEmptyText
	}
	list[0] = text
	return nil
}

// DeleteFirst removes the first event of date and returns it.
func (s *Store) DeleteFirst(date Date) (string, error) {
	list, ok := s.events[date]
	if !ok || len(list) == 0 {
		return "", ErrNotFound
	}
	removed := list[0]
	if len(list) == 1 {
		delete(s.events, date)
		return removed, nil
	}
	s.events[date] = append(EventList(nil), list[1:]...)
	return removed, nil
}

// List returns a copy of date's events, or an empty list if there are none.
func (s *Store) List(date Date) EventList {
	list := s.events[date]
	out := make(EventList, len(list))
	copy(out, list)
	return out
}

// First returns the event that EditFirst and DeleteFirst would act on.
func (s *Store) First(date Date) (string, error) {
	list, ok := s.events[date]
	if !ok || len(list) == 0 {
		return "", ErrNotFound
	}
	return list[0], nil
}

// Has reports whether date has at least one event.
func (s *Store) Has(date Date) bool {
	_, ok := s.events[date]
	return ok
}

// Len returns the number of dates with events.
func (s *Store) Len() int {
	return len(s.events)
}

// Dates returns every date with events in ascending order.
func (s *Store) Dates() []Date {
	out := make([]Date, 0, len(s.events))
	for d := range s.events {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
