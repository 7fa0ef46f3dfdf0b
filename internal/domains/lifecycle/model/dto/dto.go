package dto

import visitDto "scoop/internal/domains/visit/model/dto"

type RescheduleRequest struct {
	SlotID string `json:"slot_id" validate:"required,notblank,max=64"`
}

type CompleteRequest struct {
	Notes *string `json:"notes" validate:"omitempty,max=2000"`
}

type NotCompleteRequest struct {
	Reason string `json:"reason" validate:"required,notblank,max=2000"`
}

type RescheduleResponse struct {
	Visit       visitDto.VisitResponse  `json:"visit"`
	Replacement *visitDto.VisitResponse `json:"replacement,omitempty"`
}

type CompleteResponse struct {
	Visit       visitDto.VisitResponse `json:"visit"`
	Replenished int                    `json:"replenished"`
}
