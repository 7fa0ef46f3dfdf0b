package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scoop/config"
	"scoop/infras/otel/mocks"
	"scoop/internal/domains/series"
	"scoop/internal/domains/series/service"
	visitMocks "scoop/internal/domains/visit/mocks"
	visitModel "scoop/internal/domains/visit/model"
	"scoop/shared/failure"
	"scoop/shared/timezone"
)

// Wednesday 2025-06-04 12:00 UTC.
var now = time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

var seed = series.Seed{
	CustomerUID: "cust-1",
	SlotID:      "slot-fri",
	DayOfWeek:   time.Friday,
	WindowStart: "09:00",
	WindowEnd:   "11:00",
}

func newService(t *testing.T, bufferSize int) (*visitMocks.MockVisit, service.Series) {
	ctrl := gomock.NewController(t)
	repo := visitMocks.NewMockVisit(ctrl)

	cfg := &config.Config{}
	cfg.Scheduling.BufferSize = bufferSize

	return repo, service.New(repo, cfg, mocks.NewOtel())
}

func weeklyVisits(first time.Time, count int) []visitModel.Visit {
	visits := make([]visitModel.Visit, 0, count)
	for _, at := range series.Weekly(first, 0, count) {
		visits = append(visits, visitModel.NewRecurringVisit(seed.CustomerUID, seed.SlotID, at, seed.Series("g1"), seed.CustomerUID))
	}

	return visits
}

func TestSeriesService_SeedInitial(t *testing.T) {
	_, svc := newService(t, 8)

	start := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)
	visits := svc.SeedInitial("g1", seed, start)

	require.Len(t, visits, 8)

	for i, visit := range visits {
		assert.Equal(t, start.AddDate(0, 0, 7*i), visit.ScheduledFor)
		assert.Equal(t, visitModel.StatusScheduled, visit.Status)
		assert.True(t, visit.IsRecurring)

		cadence, ok := visit.Series()
		require.True(t, ok)
		assert.Equal(t, "g1", cadence.GroupID)
		assert.Equal(t, time.Friday, cadence.DayOfWeek)
	}
}

func TestSeriesService_ReplenishTx(t *testing.T) {
	defer timezone.Freeze(now)()

	firstFriday := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)
	fallback := time.Date(2025, 6, 4, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		bufferSize  int
		fallback    *time.Time
		setupMock   func(repo *visitMocks.MockVisit)
		wantCreated int
		wantDates   []time.Time
		wantErr     bool
	}{
		{
			name:       "one completed visit adds one at latest plus a week",
			bufferSize: 8,
			setupMock: func(repo *visitMocks.MockVisit) {
				repo.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(nil)
				repo.EXPECT().QueryByRecurringGroupTx(gomock.Any(), gomock.Any(), "g1", visitModel.StatusScheduled, now).
					Return(weeklyVisits(firstFriday.AddDate(0, 0, 7), 7), nil)
			},
			wantCreated: 1,
			wantDates:   []time.Time{firstFriday.AddDate(0, 0, 56)},
		},
		{
			name:       "full buffer creates nothing",
			bufferSize: 8,
			setupMock: func(repo *visitMocks.MockVisit) {
				repo.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(nil)
				repo.EXPECT().QueryByRecurringGroupTx(gomock.Any(), gomock.Any(), "g1", visitModel.StatusScheduled, now).
					Return(weeklyVisits(firstFriday, 8), nil)
			},
		},
		{
			name:       "empty group anchors on fallback",
			bufferSize: 2,
			fallback:   &fallback,
			setupMock: func(repo *visitMocks.MockVisit) {
				repo.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(nil)
				repo.EXPECT().QueryByRecurringGroupTx(gomock.Any(), gomock.Any(), "g1", visitModel.StatusScheduled, now).Return(nil, nil)
			},
			wantCreated: 2,
			wantDates: []time.Time{
				time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
				time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC),
			},
		},
		{
			name:       "empty group without fallback anchors on now",
			bufferSize: 1,
			setupMock: func(repo *visitMocks.MockVisit) {
				repo.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(nil)
				repo.EXPECT().QueryByRecurringGroupTx(gomock.Any(), gomock.Any(), "g1", visitModel.StatusScheduled, now).Return(nil, nil)
			},
			wantCreated: 1,
			wantDates:   []time.Time{time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)},
		},
		{
			name:       "lock failure",
			bufferSize: 8,
			setupMock: func(repo *visitMocks.MockVisit) {
				repo.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(errors.New("lock timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newService(t, tt.bufferSize)
			tt.setupMock(repo)

			var inserted []visitModel.Visit
			if tt.wantCreated > 0 {
				repo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, visits []visitModel.Visit) error {
						inserted = visits

						return nil
					})
			}

			created, err := svc.ReplenishTx(context.Background(), nil, "g1", seed, tt.fallback)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCreated, created)
			require.Len(t, inserted, len(tt.wantDates))

			for i, visit := range inserted {
				assert.True(t, tt.wantDates[i].Equal(visit.ScheduledFor), "got %s", visit.ScheduledFor)
				assert.Equal(t, seed.SlotID, visit.SlotID)

				cadence, ok := visit.Series()
				require.True(t, ok)
				assert.Equal(t, "g1", cadence.GroupID)
			}
		})
	}
}

func TestSeriesService_ReplenishTxInvalidWindow(t *testing.T) {
	_, svc := newService(t, 8)

	broken := seed
	broken.WindowStart = "9am"

	_, err := svc.ReplenishTx(context.Background(), nil, "g1", broken, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, failure.ErrValidation)
}

func TestSeriesService_NextReplacementDate(t *testing.T) {
	defer timezone.Freeze(now)()

	firstFriday := time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)

	t.Run("after the latest future visit", func(t *testing.T) {
		repo, svc := newService(t, 8)
		repo.EXPECT().QueryByRecurringGroup(gomock.Any(), "g1", visitModel.StatusScheduled, now).
			Return(weeklyVisits(firstFriday, 7), nil)

		next, err := svc.NextReplacementDate(context.Background(), "g1", seed)
		require.NoError(t, err)
		assert.True(t, firstFriday.AddDate(0, 0, 49).Equal(next), "got %s", next)
	})

	t.Run("next occurrence when the group is empty", func(t *testing.T) {
		repo, svc := newService(t, 8)
		repo.EXPECT().QueryByRecurringGroup(gomock.Any(), "g1", visitModel.StatusScheduled, now).Return(nil, nil)

		next, err := svc.NextReplacementDate(context.Background(), "g1", seed)
		require.NoError(t, err)
		assert.True(t, firstFriday.Equal(next), "got %s", next)
	})
}
