package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"scoop/config"
	kafkaMocks "scoop/infras/kafka/mocks"
	"scoop/infras/otel/mocks"
	"scoop/infras/postgres"
	pgMocks "scoop/infras/postgres/mocks"
	"scoop/internal/domains/lifecycle/model/dto"
	"scoop/internal/domains/lifecycle/service"
	"scoop/internal/domains/series"
	seriesService "scoop/internal/domains/series/service"
	slotModel "scoop/internal/domains/slot/model"
	slotMocks "scoop/internal/domains/slot/service/mocks"
	visitMocks "scoop/internal/domains/visit/mocks"
	visitModel "scoop/internal/domains/visit/model"
	"scoop/shared"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"scoop/shared/timezone"
)

// Wednesday 2025-06-04 12:00 UTC.
var now = time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

var firstFriday = time.Date(2025, 6, 6, 9, 0, 0, 0, time.UTC)

var cadence = visitModel.Series{GroupID: "g1", DayOfWeek: time.Friday, WindowStart: "09:00", WindowEnd: "11:00"}

func runTx(ctx context.Context, fn postgres.TxFunc) error {
	return fn(ctx, nil)
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

type fixture struct {
	transactor *pgMocks.MockTransactor
	visits     *visitMocks.MockVisit
	slots      *slotMocks.MockSlot
	publisher  *kafkaMocks.MockClient
	svc        service.Lifecycle
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		transactor: pgMocks.NewMockTransactor(ctrl),
		visits:     visitMocks.NewMockVisit(ctrl),
		slots:      slotMocks.NewMockSlot(ctrl),
		publisher:  kafkaMocks.NewMockClient(ctrl),
	}

	cfg := &config.Config{}
	cfg.Scheduling.BufferSize = 8

	otel := mocks.NewOtel()
	f.svc = service.New(f.transactor, f.visits, f.slots, seriesService.New(f.visits, cfg, otel), f.publisher, otel)

	return f
}

func customerCtx(userID string) context.Context {
	return shared.WithCaller(context.Background(), userID, constant.RoleCustomer)
}

func weeklyGroup(first time.Time, count int) []visitModel.Visit {
	visits := make([]visitModel.Visit, 0, count)
	for _, at := range series.Weekly(first, 0, count) {
		visits = append(visits, visitModel.NewRecurringVisit("cust-1", "slot-fri", at, cadence, "cust-1"))
	}

	return visits
}

func oneTimeVisit(status string) visitModel.Visit {
	visit := visitModel.NewOneTimeVisit("cust-1", "slot-once", time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC), "cust-1")
	visit.ID = "v1"
	visit.Status = status

	return visit
}

func onceSlot() slotModel.Slot {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	return slotModel.Slot{ID: "slot-once", Date: &date, WindowStart: "13:30", WindowEnd: "15:00", Capacity: 5, BookedCount: 3, Status: slotModel.StatusOpen}
}

func fridaySlot(booked int) slotModel.Slot {
	return slotModel.Slot{
		ID: "slot-fri", IsRecurring: true, DayOfWeek: intPtr(int(time.Friday)), WindowStart: "09:00", WindowEnd: "11:00",
		Capacity: 2, BookedCount: booked, Status: slotModel.StatusOpen,
	}
}

// movedOntoFriday is a one-time visit that an earlier reschedule put on the recurring slot.
func movedOntoFriday() visitModel.Visit {
	visit := oneTimeVisit(visitModel.StatusScheduled)
	visit.SlotID = "slot-fri"
	visit.ScheduledFor = firstFriday

	return visit
}

func TestLifecycleService_Cancel(t *testing.T) {
	defer timezone.Freeze(now)()

	subscription := weeklyGroup(firstFriday, 1)[0]
	subscription.ID = "v1"

	tests := []struct {
		name      string
		ctx       context.Context
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "one-time visit releases its slot",
			ctx:  customerCtx("cust-1"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusCanceled, nil, "cust-1").Return(nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(onceSlot(), nil)
				f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), "slot-once").Return(nil).Times(1)
				f.slots.EXPECT().InvalidateOpen(gomock.Any())
				f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "subscription occurrence releases the recurring slot",
			ctx:  customerCtx("cust-1"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(subscription, nil)
				f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusCanceled, nil, "cust-1").Return(nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-fri").Return(fridaySlot(2), nil)
				f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), "slot-fri").Return(nil).Times(1)
				f.slots.EXPECT().InvalidateOpen(gomock.Any())
				f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "moved one-time visit leaves the recurring counter alone",
			ctx:  customerCtx("cust-1"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(movedOntoFriday(), nil)
				f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusCanceled, nil, "cust-1").Return(nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-fri").Return(fridaySlot(2), nil)
				f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				f.slots.EXPECT().InvalidateOpen(gomock.Any())
				f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "slot already deleted",
			ctx:  customerCtx("cust-1"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusCanceled, nil, "cust-1").Return(nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(slotModel.Slot{}, failure.NotFound(slotModel.EntityName))
				f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
				f.slots.EXPECT().InvalidateOpen(gomock.Any())
				f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "admin cancels any visit",
			ctx:  shared.WithCaller(context.Background(), "admin-1", constant.RoleAdmin),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusCanceled, nil, "admin-1").Return(nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(onceSlot(), nil)
				f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), "slot-once").Return(nil)
				f.slots.EXPECT().InvalidateOpen(gomock.Any())
				f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "already canceled",
			ctx:  customerCtx("cust-1"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusCanceled), nil)
			},
			wantErr: failure.ErrInvalidTransition,
		},
		{
			name: "foreign visit",
			ctx:  customerCtx("cust-2"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
			},
			wantErr: failure.ForbiddenError,
		},
		{
			name: "missing visit",
			ctx:  customerCtx("cust-1"),
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(visitModel.Visit{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
			tt.setupMock(f)

			res, err := f.svc.Cancel(tt.ctx, "v1")
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, visitModel.StatusCanceled, res.Status)
		})
	}
}

func TestLifecycleService_RescheduleRecurringToOneTime(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t)
	ctx := customerCtx("cust-1")

	group := weeklyGroup(firstFriday, 8)
	target := group[2]

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	newSlot := slotModel.Slot{ID: "slot-once", Date: &date, WindowStart: "13:30", WindowEnd: "15:00", Capacity: 2, BookedCount: 1, Status: slotModel.StatusOpen}
	oldSlot := slotModel.Slot{ID: "slot-fri", IsRecurring: true, DayOfWeek: intPtr(int(time.Friday)), WindowStart: "09:00", WindowEnd: "11:00", Capacity: 3, BookedCount: 1, Status: slotModel.StatusOpen}

	var injected visitModel.Visit

	f.visits.EXPECT().FindByID(gomock.Any(), target.ID).Return(target, nil)
	f.visits.EXPECT().QueryByRecurringGroup(gomock.Any(), "g1", visitModel.StatusScheduled, now).Return(group, nil)
	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), target.ID).Return(target, nil)
	gomock.InOrder(
		f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-fri").Return(oldSlot, nil),
		f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(newSlot, nil),
	)
	f.visits.EXPECT().ReanchorTx(gomock.Any(), gomock.Any(), target.ID, "slot-once", time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC), true, "cust-1").Return(nil)
	f.visits.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(nil)
	f.visits.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, visit visitModel.Visit) error {
			injected = visit

			return nil
		})
	f.slots.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), newSlot).Return(nil).Times(1)
	f.slots.EXPECT().InvalidateOpen(gomock.Any())
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Reschedule(ctx, target.ID, dto.RescheduleRequest{SlotID: "slot-once"})
	require.NoError(t, err)

	assert.Equal(t, "slot-once", res.Visit.SlotID)
	assert.False(t, res.Visit.IsRecurring)
	assert.Nil(t, res.Visit.Series)

	require.NotNil(t, res.Replacement)
	assert.Equal(t, "slot-fri", injected.SlotID)
	assert.True(t, firstFriday.AddDate(0, 0, 56).Equal(injected.ScheduledFor), "got %s", injected.ScheduledFor)

	replacementSeries, ok := injected.Series()
	require.True(t, ok)
	assert.Equal(t, cadence, replacementSeries)

	// The moved occurrence left the group and exactly one new one joined it.
	assert.NotEqual(t, target.ID, injected.ID)
	assert.Equal(t, visitModel.StatusScheduled, injected.Status)
	assert.Equal(t, injected.ID, res.Replacement.ID)
	require.NotNil(t, res.Replacement.Series)
	assert.Equal(t, "g1", res.Replacement.Series.GroupID)
}

func TestLifecycleService_RescheduleOffRecurringSlot(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t)
	ctx := customerCtx("cust-1")

	visit := movedOntoFriday()
	newSlot := onceSlot()

	f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(visit, nil)
	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(visit, nil)
	f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-fri").Return(fridaySlot(2), nil)
	f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(newSlot, nil)
	f.visits.EXPECT().ReanchorTx(gomock.Any(), gomock.Any(), "v1", "slot-once", time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC), true, "cust-1").Return(nil)
	f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.slots.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), newSlot).Return(nil).Times(1)
	f.slots.EXPECT().InvalidateOpen(gomock.Any())
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Reschedule(ctx, "v1", dto.RescheduleRequest{SlotID: "slot-once"})
	require.NoError(t, err)
	assert.Equal(t, "slot-once", res.Visit.SlotID)
	assert.Nil(t, res.Replacement)
}

func TestLifecycleService_RescheduleOneTimeToRecurring(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t)
	ctx := customerCtx("cust-1")

	visit := oneTimeVisit(visitModel.StatusScheduled)
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	oldSlot := slotModel.Slot{ID: "slot-once", Date: &date, WindowStart: "13:30", Capacity: 1, BookedCount: 1, Status: slotModel.StatusOpen}
	newSlot := slotModel.Slot{ID: "slot-fri", IsRecurring: true, DayOfWeek: intPtr(int(time.Friday)), WindowStart: "09:00", Capacity: 3, Status: slotModel.StatusOpen}

	f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(visit, nil)
	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(visit, nil)
	f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-fri").Return(newSlot, nil)
	f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(oldSlot, nil)
	f.visits.EXPECT().ReanchorTx(gomock.Any(), gomock.Any(), "v1", "slot-fri", firstFriday, true, "cust-1").Return(nil)
	f.slots.EXPECT().DecrementBookedTx(gomock.Any(), gomock.Any(), "slot-once").Return(nil).Times(1)
	f.slots.EXPECT().InvalidateOpen(gomock.Any())
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Reschedule(ctx, "v1", dto.RescheduleRequest{SlotID: "slot-fri"})
	require.NoError(t, err)
	assert.Nil(t, res.Replacement)
	assert.Equal(t, "slot-fri", res.Visit.SlotID)
}

func TestLifecycleService_RescheduleRejected(t *testing.T) {
	defer timezone.Freeze(now)()

	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	fullSlot := slotModel.Slot{ID: "slot-full", Date: &date, WindowStart: "13:30", Capacity: 1, BookedCount: 1, Status: slotModel.StatusOpen}
	oldSlot := slotModel.Slot{ID: "slot-once", Date: &date, WindowStart: "13:30", Capacity: 1, BookedCount: 1, Status: slotModel.StatusOpen}

	tests := []struct {
		name      string
		ctx       context.Context
		slotID    string
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name:   "same slot",
			ctx:    customerCtx("cust-1"),
			slotID: "slot-once",
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
			},
			wantErr: failure.ErrSameSlot,
		},
		{
			name:   "foreign visit",
			ctx:    customerCtx("cust-2"),
			slotID: "slot-full",
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
			},
			wantErr: failure.ForbiddenError,
		},
		{
			name:   "missing visit",
			ctx:    customerCtx("cust-1"),
			slotID: "slot-full",
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(visitModel.Visit{}, nil)
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name:   "target slot full",
			ctx:    customerCtx("cust-1"),
			slotID: "slot-full",
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-full").Return(fullSlot, nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(oldSlot, nil)
			},
			wantErr: failure.ErrSlotFull,
		},
		{
			name:   "target slot vanished",
			ctx:    customerCtx("cust-1"),
			slotID: "slot-gone",
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-gone").Return(slotModel.Slot{}, failure.NotFound(slotModel.EntityName))
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name:   "completed visit",
			ctx:    customerCtx("cust-1"),
			slotID: "slot-full",
			setupMock: func(f fixture) {
				f.visits.EXPECT().FindByID(gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusCompleted), nil)
				f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
				f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusCompleted), nil)
			},
			wantErr: failure.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Reschedule(tt.ctx, "v1", dto.RescheduleRequest{SlotID: tt.slotID})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestLifecycleService_CompleteReplenishes(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t)
	ctx := shared.WithCaller(context.Background(), "tech-1", constant.RoleTechnician)

	group := weeklyGroup(firstFriday, 8)
	earliest := group[0]
	notes := strPtr("gate code 1234")

	var inserted []visitModel.Visit

	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), earliest.ID).Return(earliest, nil)
	f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), earliest.ID, visitModel.StatusCompleted, notes, "tech-1").Return(nil)
	f.visits.EXPECT().LockGroupTx(gomock.Any(), gomock.Any(), "g1").Return(nil)
	f.visits.EXPECT().QueryByRecurringGroupTx(gomock.Any(), gomock.Any(), "g1", visitModel.StatusScheduled, now).Return(group[1:], nil)
	f.visits.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, visits []visitModel.Visit) error {
			inserted = visits

			return nil
		})
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Complete(ctx, earliest.ID, dto.CompleteRequest{Notes: notes})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Replenished)
	assert.Equal(t, visitModel.StatusCompleted, res.Visit.Status)

	require.Len(t, inserted, 1)
	assert.True(t, group[7].ScheduledFor.AddDate(0, 0, 7).Equal(inserted[0].ScheduledFor))
	assert.Equal(t, "slot-fri", inserted[0].SlotID)
}

func TestLifecycleService_CompleteOneTime(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t)

	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
	f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusCompleted, nil, constant.SystemUser).Return(nil)
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Complete(context.Background(), "v1", dto.CompleteRequest{})
	require.NoError(t, err)
	assert.Zero(t, res.Replenished)
}

func TestLifecycleService_MarkNotComplete(t *testing.T) {
	defer timezone.Freeze(now)()

	t.Run("blank reason", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.MarkNotComplete(context.Background(), "v1", dto.NotCompleteRequest{Reason: "   "})
		require.Error(t, err)
		assert.ErrorIs(t, err, failure.ErrValidation)
	})

	t.Run("records the reason", func(t *testing.T) {
		f := newFixture(t)
		ctx := shared.WithCaller(context.Background(), "tech-1", constant.RoleTechnician)

		f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		f.visits.EXPECT().FindByIDForUpdateTx(gomock.Any(), gomock.Any(), "v1").Return(oneTimeVisit(visitModel.StatusScheduled), nil)
		f.visits.EXPECT().UpdateStatusTx(gomock.Any(), gomock.Any(), "v1", visitModel.StatusNotComplete, strPtr("dog loose in yard"), "tech-1").Return(nil)
		f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.MarkNotComplete(ctx, "v1", dto.NotCompleteRequest{Reason: " dog loose in yard "})
		require.NoError(t, err)
		assert.Equal(t, visitModel.StatusNotComplete, res.Status)
		require.NotNil(t, res.Notes)
		assert.Equal(t, "dog loose in yard", *res.Notes)
	})
}
