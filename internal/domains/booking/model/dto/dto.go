package dto

import (
	"scoop/internal/domains/booking/model"
	visitDto "scoop/internal/domains/visit/model/dto"
)

type CreateBookingRequest struct {
	SlotID       string `json:"slot_id"       validate:"required,notblank,max=64"`
	PaymentToken string `json:"payment_token" validate:"omitempty,max=4096"`
}

type BookingResponse struct {
	Visits       []visitDto.VisitResponse `json:"visits"`
	GroupID      *string                  `json:"group_id,omitempty"`
	WeeksCovered int                      `json:"weeks_covered,omitempty"`
}

func (r *BookingResponse) FromModel(result model.Result, weeksCovered int) {
	r.Visits = visitDto.FromModels(result.Visits)
	r.GroupID = result.GroupID

	if result.IsRecurring() {
		r.WeeksCovered = weeksCovered
	}
}
