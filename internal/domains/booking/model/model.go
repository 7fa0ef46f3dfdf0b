package model

import visitModel "scoop/internal/domains/visit/model"

// Result is what a successful booking produced. GroupID is set only for
// recurring subscriptions.
type Result struct {
	Visits  []visitModel.Visit
	GroupID *string
}

func (r Result) IsRecurring() bool {
	return r.GroupID != nil
}
