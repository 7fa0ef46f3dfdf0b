package model

import (
	"scoop/infras/kafka"
	"scoop/shared/timezone"
	"time"
)

const (
	EventBooked             = "visit.booked"
	EventCanceled           = "visit.canceled"
	EventRescheduled        = "visit.rescheduled"
	EventCompleted          = "visit.completed"
	EventNotCompleted       = "visit.not_completed"
	EventSeriesReplenished  = "series.replenished"
	EventTechnicianAssigned = "visit.technician_assigned"
)

// Event is published after the transaction that produced it commits.
type Event struct {
	Type         string    `json:"type"`
	VisitID      string    `json:"visit_id,omitempty"`
	CustomerUID  string    `json:"customer_uid"`
	SlotID       string    `json:"slot_id"`
	GroupID      string    `json:"group_id,omitempty"`
	Status       string    `json:"status,omitempty"`
	Technician   string    `json:"technician_uid,omitempty"`
	ScheduledFor time.Time `json:"scheduled_for"`
	Count        int       `json:"count,omitempty"`
	Actor        string    `json:"actor"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, visit Visit, actor string) Event {
	event := Event{
		Type:         eventType,
		VisitID:      visit.ID,
		CustomerUID:  visit.CustomerUID,
		SlotID:       visit.SlotID,
		Status:       visit.Status,
		ScheduledFor: visit.ScheduledFor,
		Actor:        actor,
		OccurredAt:   timezone.Now(),
	}

	if visit.RecurringGroupID != nil {
		event.GroupID = *visit.RecurringGroupID
	}

	if visit.TechnicianUID != nil {
		event.Technician = *visit.TechnicianUID
	}

	return event
}

// Message keys events by group when there is one so a series stays ordered.
func (e Event) Message() kafka.Message {
	key := e.VisitID
	if e.GroupID != "" {
		key = e.GroupID
	}

	return kafka.Message{Key: key, Value: e}
}

func Messages(events ...Event) []kafka.Message {
	messages := make([]kafka.Message, 0, len(events))
	for _, event := range events {
		messages = append(messages, event.Message())
	}

	return messages
}
