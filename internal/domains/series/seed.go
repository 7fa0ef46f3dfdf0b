package series

import (
	slotModel "scoop/internal/domains/slot/model"
	visitModel "scoop/internal/domains/visit/model"
	"time"
)

// Seed is what every visit of a recurring group shares: the subscriber, the
// anchor slot and the weekly cadence.
type Seed struct {
	CustomerUID string
	SlotID      string
	DayOfWeek   time.Weekday
	WindowStart string
	WindowEnd   string
}

// SeedFromSlot builds the seed for a new subscription to a recurring slot.
func SeedFromSlot(customerUID string, slot slotModel.Slot) (Seed, bool) {
	weekday, ok := slot.Weekday()
	if !ok {
		return Seed{}, false
	}

	return Seed{
		CustomerUID: customerUID,
		SlotID:      slot.ID,
		DayOfWeek:   weekday,
		WindowStart: slot.WindowStart,
		WindowEnd:   slot.WindowEnd,
	}, true
}

// SeedFromVisit recovers the seed of the group a recurring visit belongs to.
func SeedFromVisit(visit visitModel.Visit) (string, Seed, bool) {
	cadence, ok := visit.Series()
	if !ok {
		return "", Seed{}, false
	}

	return cadence.GroupID, Seed{
		CustomerUID: visit.CustomerUID,
		SlotID:      visit.SlotID,
		DayOfWeek:   cadence.DayOfWeek,
		WindowStart: cadence.WindowStart,
		WindowEnd:   cadence.WindowEnd,
	}, true
}

func (s Seed) Series(groupID string) visitModel.Series {
	return visitModel.Series{
		GroupID:     groupID,
		DayOfWeek:   s.DayOfWeek,
		WindowStart: s.WindowStart,
		WindowEnd:   s.WindowEnd,
	}
}
