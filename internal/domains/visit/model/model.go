package model

import (
	"scoop/shared/model"
	"scoop/shared/timezone"
	"time"

	"github.com/google/uuid"
)

const (
	TableName  = "visits"
	EntityName = "visit"

	FieldID                   = "id"
	FieldCustomerUID          = "customer_uid"
	FieldSlotID               = "slot_id"
	FieldScheduledFor         = "scheduled_for"
	FieldStatus               = "status"
	FieldIsRecurring          = "is_recurring"
	FieldRecurringGroupID     = "recurring_group_id"
	FieldRecurringDayOfWeek   = "recurring_day_of_week"
	FieldRecurringWindowStart = "recurring_window_start"
	FieldRecurringWindowEnd   = "recurring_window_end"
	FieldNotes                = "notes"
	FieldTechnicianUID        = "technician_uid"
)

const (
	StatusScheduled   = "scheduled"
	StatusCompleted   = "completed"
	StatusCanceled    = "canceled"
	StatusNotComplete = "not_complete"
	StatusSkipped     = "skipped"
)

var Statuses = []string{StatusScheduled, StatusCompleted, StatusCanceled, StatusNotComplete, StatusSkipped}

// Series is the weekly cadence a recurring visit belongs to.
type Series struct {
	GroupID     string
	DayOfWeek   time.Weekday
	WindowStart string
	WindowEnd   string
}

// Visit mirrors the visits table. The recurring_* columns are either all set
// or all NULL; build visits with NewOneTimeVisit or NewRecurringVisit and read
// the cadence through Series.
type Visit struct {
	ID                   string    `db:"id"`
	CustomerUID          string    `db:"customer_uid"`
	SlotID               string    `db:"slot_id"`
	ScheduledFor         time.Time `db:"scheduled_for"`
	Status               string    `db:"status"`
	IsRecurring          bool      `db:"is_recurring"`
	RecurringGroupID     *string   `db:"recurring_group_id"`
	RecurringDayOfWeek   *int      `db:"recurring_day_of_week"`
	RecurringWindowStart *string   `db:"recurring_window_start"`
	RecurringWindowEnd   *string   `db:"recurring_window_end"`
	Notes                *string   `db:"notes"`
	TechnicianUID        *string   `db:"technician_uid"`
	model.Metadata
}

func NewOneTimeVisit(customerUID, slotID string, scheduledFor time.Time, actor string) Visit {
	return Visit{
		ID:           uuid.NewString(),
		CustomerUID:  customerUID,
		SlotID:       slotID,
		ScheduledFor: scheduledFor,
		Status:       StatusScheduled,
		Metadata:     model.NewMetadata(actor, timezone.Now()),
	}
}

func NewRecurringVisit(customerUID, slotID string, scheduledFor time.Time, series Series, actor string) Visit {
	visit := NewOneTimeVisit(customerUID, slotID, scheduledFor, actor)
	visit.attach(series)

	return visit
}

// Series returns the cadence of a recurring visit. ok is false for one-time
// visits and for rows whose recurring columns are incomplete.
func (v Visit) Series() (Series, bool) {
	if !v.IsRecurring || v.RecurringGroupID == nil || v.RecurringDayOfWeek == nil ||
		v.RecurringWindowStart == nil || v.RecurringWindowEnd == nil {
		return Series{}, false
	}

	return Series{
		GroupID:     *v.RecurringGroupID,
		DayOfWeek:   time.Weekday(*v.RecurringDayOfWeek),
		WindowStart: *v.RecurringWindowStart,
		WindowEnd:   *v.RecurringWindowEnd,
	}, true
}

// Demote turns the visit into a standalone one-time occurrence.
func (v *Visit) Demote() {
	v.IsRecurring = false
	v.RecurringGroupID = nil
	v.RecurringDayOfWeek = nil
	v.RecurringWindowStart = nil
	v.RecurringWindowEnd = nil
}

func (v *Visit) attach(series Series) {
	groupID := series.GroupID
	dow := int(series.DayOfWeek)
	start := series.WindowStart
	end := series.WindowEnd

	v.IsRecurring = true
	v.RecurringGroupID = &groupID
	v.RecurringDayOfWeek = &dow
	v.RecurringWindowStart = &start
	v.RecurringWindowEnd = &end
}

// Criteria narrows ledger queries. Zero fields are ignored.
type Criteria struct {
	CustomerUID   string
	TechnicianUID string
	GroupID       string
	Status        string
	From          *time.Time
	To            *time.Time
}
