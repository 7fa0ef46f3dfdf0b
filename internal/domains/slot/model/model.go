package model

import (
	"scoop/shared/constant"
	"scoop/shared/model"
	"slices"
	"strings"
	"time"
)

const (
	TableName  = "slots"
	EntityName = "slot"

	FieldID          = "id"
	FieldIsRecurring = "is_recurring"
	FieldDayOfWeek   = "day_of_week"
	FieldDate        = "date"
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"
	FieldCapacity    = "capacity"
	FieldBookedCount = "booked_count"
	FieldStatus      = "status"
	FieldZip         = "zip"
)

const (
	StatusOpen    = "open"
	StatusBlocked = "blocked"
	StatusHeld    = "held"
	StatusBooked  = "booked"
)

var Statuses = []string{StatusOpen, StatusBlocked, StatusHeld, StatusBooked}

// Slot is a bookable window. Recurring slots carry DayOfWeek (0 = Sunday),
// one-time slots carry Date. BookedCount counts subscribers for recurring
// slots and visits for one-time slots.
type Slot struct {
	ID          string     `db:"id"`
	IsRecurring bool       `db:"is_recurring"`
	DayOfWeek   *int       `db:"day_of_week"`
	Date        *time.Time `db:"date"`
	WindowStart string     `db:"window_start"`
	WindowEnd   string     `db:"window_end"`
	Capacity    int        `db:"capacity"`
	BookedCount int        `db:"booked_count"`
	Status      string     `db:"status"`
	Zip         string     `db:"zip"`
	model.Metadata
}

func (s Slot) HasCapacity() bool {
	return s.BookedCount < s.Capacity
}

func (s Slot) IsOpen() bool {
	return s.Status == StatusOpen
}

func (s Slot) Available() int {
	return max(s.Capacity-s.BookedCount, 0)
}

// Weekday returns false for one-time slots or a day outside 0..6.
func (s Slot) Weekday() (time.Weekday, bool) {
	if !s.IsRecurring || s.DayOfWeek == nil || *s.DayOfWeek < 0 || *s.DayOfWeek > 6 {
		return 0, false
	}

	return time.Weekday(*s.DayOfWeek), true
}

// Day returns the one-time date formatted as 2006-01-02.
func (s Slot) Day() (string, bool) {
	if s.IsRecurring || s.Date == nil {
		return "", false
	}

	return s.Date.Format(constant.DayFormat), true
}

// Listable reports whether the slot belongs in the open listing. today is a
// 2006-01-02 day in the application timezone; one-time slots must fall
// strictly after it.
func (s Slot) Listable(today string) bool {
	if !s.IsOpen() || !s.HasCapacity() {
		return false
	}

	if s.IsRecurring {
		return true
	}

	day, ok := s.Day()

	return ok && day > today
}

// FilterListable keeps the slots that may be offered to customers.
func FilterListable(slots []Slot, today string) []Slot {
	res := make([]Slot, 0, len(slots))

	for _, slot := range slots {
		if slot.Listable(today) {
			res = append(res, slot)
		}
	}

	return res
}

// SortListing orders recurring slots before one-time slots, recurring by day of
// week and one-time by date. Ties fall back to window start, then id.
func SortListing(slots []Slot) {
	slices.SortStableFunc(slots, func(a, b Slot) int {
		if a.IsRecurring != b.IsRecurring {
			if a.IsRecurring {
				return -1
			}

			return 1
		}

		var primary int
		if a.IsRecurring {
			primary = intValue(a.DayOfWeek) - intValue(b.DayOfWeek)
		} else {
			dayA, _ := a.Day()
			dayB, _ := b.Day()
			primary = strings.Compare(dayA, dayB)
		}

		if primary != 0 {
			return primary
		}

		if c := strings.Compare(a.WindowStart, b.WindowStart); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}

	return *v
}
