package dto

import (
	"errors"
	"scoop/internal/domains/slot/model"
	"scoop/shared/constant"
	gDto "scoop/shared/dto"
	gModel "scoop/shared/model"
	"scoop/shared/timezone"
	"time"

	"github.com/google/uuid"
)

var (
	errWindowOrder = errors.New("window_end must be after window_start")
	errDayOfWeek   = errors.New("day_of_week is required for a recurring slot")
	errDate        = errors.New("date is required for a one-time slot")
)

type CreateSlotRequest struct {
	IsRecurring bool   `json:"is_recurring"`
	DayOfWeek   *int   `json:"day_of_week"  validate:"omitempty,min=0,max=6"`
	Date        string `json:"date"         validate:"omitempty,day"`
	WindowStart string `json:"window_start" validate:"required,hhmm"`
	WindowEnd   string `json:"window_end"   validate:"required,hhmm"`
	Capacity    int    `json:"capacity"     validate:"required,min=1"`
	Status      string `json:"status"       validate:"omitempty,oneof=open blocked held booked"`
	Zip         string `json:"zip"          validate:"required,max=10"`
}

// ToModel builds a slot with zero bookings. Fields that do not apply to the
// slot kind are dropped.
func (c *CreateSlotRequest) ToModel(user string) (model.Slot, error) {
	if c.WindowEnd <= c.WindowStart {
		return model.Slot{}, errWindowOrder
	}

	slot := model.Slot{
		ID:          uuid.NewString(),
		IsRecurring: c.IsRecurring,
		WindowStart: c.WindowStart,
		WindowEnd:   c.WindowEnd,
		Capacity:    c.Capacity,
		Status:      model.StatusOpen,
		Zip:         c.Zip,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}

	if c.Status != "" {
		slot.Status = c.Status
	}

	if c.IsRecurring {
		if c.DayOfWeek == nil {
			return model.Slot{}, errDayOfWeek
		}

		dow := *c.DayOfWeek
		slot.DayOfWeek = &dow

		return slot, nil
	}

	if c.Date == "" {
		return model.Slot{}, errDate
	}

	date, err := time.Parse(constant.DayFormat, c.Date)
	if err != nil {
		return model.Slot{}, err
	}

	slot.Date = &date

	return slot, nil
}

type UpdateSlotStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open blocked held booked"`
}

type SlotResponse struct {
	ID          string `json:"id"`
	IsRecurring bool   `json:"is_recurring"`
	DayOfWeek   *int   `json:"day_of_week,omitempty"`
	Date        string `json:"date,omitempty"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"booked_count"`
	Available   int    `json:"available"`
	Status      string `json:"status"`
	Zip         string `json:"zip"`
	gDto.Metadata
}

func (r *SlotResponse) FromModel(model model.Slot) {
	r.ID = model.ID
	r.IsRecurring = model.IsRecurring
	r.DayOfWeek = model.DayOfWeek
	r.Date, _ = model.Day()
	r.WindowStart = model.WindowStart
	r.WindowEnd = model.WindowEnd
	r.Capacity = model.Capacity
	r.BookedCount = model.BookedCount
	r.Available = model.Available()
	r.Status = model.Status
	r.Zip = model.Zip
	r.Metadata.FromModel(model.Metadata)
}

type ListSlotsResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func (r *ListSlotsResponse) FromModels(models []model.Slot) {
	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)
	}
}
