package dto_test

import (
	"scoop/internal/domains/visit/model"
	"scoop/internal/domains/visit/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitQueryToCriteria(t *testing.T) {
	tests := []struct {
		name    string
		query   dto.VisitQuery
		wantErr bool
		check   func(t *testing.T, c model.Criteria)
	}{
		{
			name:  "status only",
			query: dto.VisitQuery{Status: model.StatusScheduled},
			check: func(t *testing.T, c model.Criteria) {
				assert.Equal(t, model.StatusScheduled, c.Status)
				assert.Nil(t, c.From)
				assert.Nil(t, c.To)
			},
		},
		{
			name:  "same day range covers the whole day",
			query: dto.VisitQuery{From: "2025-06-10", To: "2025-06-10"},
			check: func(t *testing.T, c model.Criteria) {
				require.NotNil(t, c.From)
				require.NotNil(t, c.To)
				assert.Equal(t, 24*time.Hour, c.To.Sub(*c.From))
			},
		},
		{
			name:    "inverted range",
			query:   dto.VisitQuery{From: "2025-06-11", To: "2025-06-10"},
			wantErr: true,
		},
		{
			name:    "malformed day",
			query:   dto.VisitQuery{From: "06/10/2025"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			criteria, err := tt.query.ToCriteria()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			tt.check(t, criteria)
		})
	}
}

func TestVisitResponseFromModel(t *testing.T) {
	at := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	series := model.Series{GroupID: "g1", DayOfWeek: time.Tuesday, WindowStart: "09:00", WindowEnd: "10:00"}

	var res dto.VisitResponse
	res.FromModel(model.NewRecurringVisit("c1", "s1", at, series, "c1"))

	require.NotNil(t, res.Series)
	assert.Equal(t, "g1", res.Series.GroupID)
	assert.Equal(t, 2, res.Series.DayOfWeek)

	res.FromModel(model.NewOneTimeVisit("c1", "s1", at, "c1"))
	assert.Nil(t, res.Series)
}
