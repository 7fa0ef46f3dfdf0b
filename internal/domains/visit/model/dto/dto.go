package dto

import (
	"errors"
	"scoop/internal/domains/visit/model"
	"scoop/shared"
	"scoop/shared/constant"
	gDto "scoop/shared/dto"
	"scoop/shared/timezone"
	"time"
)

var errRangeOrder = errors.New("from must not be after to")

type SeriesResponse struct {
	GroupID     string `json:"group_id"`
	DayOfWeek   int    `json:"day_of_week"`
	WindowStart string `json:"window_start"`
	WindowEnd   string `json:"window_end"`
}

type VisitResponse struct {
	ID            string          `json:"id"`
	CustomerUID   string          `json:"customer_uid"`
	SlotID        string          `json:"slot_id"`
	ScheduledFor  string          `json:"scheduled_for"`
	Status        string          `json:"status"`
	IsRecurring   bool            `json:"is_recurring"`
	Series        *SeriesResponse `json:"series,omitempty"`
	Notes         *string         `json:"notes,omitempty"`
	TechnicianUID *string         `json:"technician_uid,omitempty"`
	gDto.Metadata
}

func (r *VisitResponse) FromModel(model model.Visit) {
	r.ID = model.ID
	r.CustomerUID = model.CustomerUID
	r.SlotID = model.SlotID
	r.ScheduledFor = timezone.Format(model.ScheduledFor, constant.DateFormat)
	r.Status = model.Status
	r.IsRecurring = model.IsRecurring
	r.Notes = model.Notes
	r.TechnicianUID = model.TechnicianUID
	r.Series = nil

	if series, ok := model.Series(); ok {
		r.Series = &SeriesResponse{
			GroupID:     series.GroupID,
			DayOfWeek:   int(series.DayOfWeek),
			WindowStart: series.WindowStart,
			WindowEnd:   series.WindowEnd,
		}
	}

	r.Metadata.FromModel(model.Metadata)
}

func FromModels(models []model.Visit) []VisitResponse {
	res := make([]VisitResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetVisitsResponse struct {
	Visits    []VisitResponse `json:"visits"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVisitsResponse) FromModels(models []model.Visit, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Visits = FromModels(models)
}

// VisitQuery is the status board filter. From and To are inclusive days.
type VisitQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=scheduled completed canceled not_complete skipped"`
	From   string `json:"from"   validate:"omitempty,day"`
	To     string `json:"to"     validate:"omitempty,day"`
}

func (q *VisitQuery) ToCriteria() (model.Criteria, error) {
	criteria := model.Criteria{Status: q.Status}

	if q.From != constant.Empty {
		from, err := timezone.Parse(constant.DayFormat, q.From)
		if err != nil {
			return criteria, err
		}

		criteria.From = &from
	}

	if q.To != constant.Empty {
		to, err := timezone.Parse(constant.DayFormat, q.To)
		if err != nil {
			return criteria, err
		}

		end := to.AddDate(0, 0, 1)
		criteria.To = &end
	}

	if criteria.From != nil && criteria.To != nil && !criteria.From.Before(*criteria.To) {
		return criteria, errRangeOrder
	}

	return criteria, nil
}

// DayRange returns [start of day, start of next day) for a technician day sheet.
func DayRange(day time.Time) (time.Time, time.Time) {
	start := timezone.StartOfDay(day)

	return start, start.AddDate(0, 0, 1)
}

type AssignTechnicianRequest struct {
	TechnicianUID string `json:"technician_uid" validate:"required,notblank,max=128"`
}
