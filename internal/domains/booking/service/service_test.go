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
	kafkaMocks "scoop/infras/kafka/mocks"
	"scoop/infras/otel/mocks"
	"scoop/infras/payment"
	paymentMocks "scoop/infras/payment/mocks"
	"scoop/infras/postgres"
	pgMocks "scoop/infras/postgres/mocks"
	"scoop/internal/domains/booking/model/dto"
	"scoop/internal/domains/booking/service"
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

func runTx(ctx context.Context, fn postgres.TxFunc) error {
	return fn(ctx, nil)
}

func intPtr(v int) *int { return &v }

type fixture struct {
	transactor *pgMocks.MockTransactor
	slots      *slotMocks.MockSlot
	visits     *visitMocks.MockVisit
	payment    *paymentMocks.MockVerifier
	publisher  *kafkaMocks.MockClient
	cfg        *config.Config
	svc        service.Booking
}

func newFixture(t *testing.T, paymentRequired bool) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		transactor: pgMocks.NewMockTransactor(ctrl),
		slots:      slotMocks.NewMockSlot(ctrl),
		visits:     visitMocks.NewMockVisit(ctrl),
		payment:    paymentMocks.NewMockVerifier(ctrl),
		publisher:  kafkaMocks.NewMockClient(ctrl),
		cfg:        &config.Config{},
	}

	f.cfg.Scheduling.BufferSize = 8
	f.cfg.App.PaymentRequired = paymentRequired

	otel := mocks.NewOtel()
	series := seriesService.New(f.visits, f.cfg, otel)
	f.svc = service.New(f.transactor, f.slots, series, f.visits, f.payment, f.publisher, f.cfg, otel)

	return f
}

func recurringSlot() slotModel.Slot {
	return slotModel.Slot{
		ID:          "slot-tue",
		IsRecurring: true,
		DayOfWeek:   intPtr(int(time.Tuesday)),
		WindowStart: "09:00",
		WindowEnd:   "11:00",
		Capacity:    3,
		Status:      slotModel.StatusOpen,
	}
}

func oneTimeSlot(booked int) slotModel.Slot {
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	return slotModel.Slot{
		ID:          "slot-once",
		Date:        &date,
		WindowStart: "13:30",
		WindowEnd:   "15:00",
		Capacity:    1,
		BookedCount: booked,
		Status:      slotModel.StatusOpen,
	}
}

func TestBookingService_BookRecurring(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t, false)

	var inserted []visitModel.Visit

	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-tue").Return(recurringSlot(), nil)
	f.visits.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, visits []visitModel.Visit) error {
			inserted = visits

			return nil
		})
	f.slots.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	f.slots.EXPECT().InvalidateOpen(gomock.Any())
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Book(context.Background(), "cust-1", "slot-tue")
	require.NoError(t, err)
	require.NotNil(t, res.GroupID)
	require.Len(t, res.Visits, 8)
	assert.Equal(t, inserted, res.Visits)

	nextTuesday := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	for i, visit := range res.Visits {
		assert.True(t, nextTuesday.AddDate(0, 0, 7*i).Equal(visit.ScheduledFor), "visit %d at %s", i, visit.ScheduledFor)
		assert.Equal(t, visitModel.StatusScheduled, visit.Status)
		assert.Equal(t, "cust-1", visit.CustomerUID)

		cadence, ok := visit.Series()
		require.True(t, ok)
		assert.Equal(t, *res.GroupID, cadence.GroupID)
	}
}

func TestBookingService_BookOneTime(t *testing.T) {
	defer timezone.Freeze(now)()

	f := newFixture(t, false)

	f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
	f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-once").Return(oneTimeSlot(0), nil)
	f.visits.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.slots.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.slots.EXPECT().InvalidateOpen(gomock.Any())
	f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	res, err := f.svc.Book(context.Background(), "cust-1", "slot-once")
	require.NoError(t, err)
	assert.Nil(t, res.GroupID)
	require.Len(t, res.Visits, 1)
	assert.True(t, time.Date(2025, 6, 10, 13, 30, 0, 0, time.UTC).Equal(res.Visits[0].ScheduledFor))
	assert.False(t, res.Visits[0].IsRecurring)
}

func TestBookingService_BookRejected(t *testing.T) {
	defer timezone.Freeze(now)()

	blocked := recurringSlot()
	blocked.Status = slotModel.StatusBlocked

	broken := oneTimeSlot(0)
	broken.WindowStart = "1:30pm"

	undated := oneTimeSlot(0)
	undated.Date = nil

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantErr   error
	}{
		{
			name: "full one-time slot",
			setupMock: func(f fixture) {
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(oneTimeSlot(1), nil)
			},
			wantErr: failure.ErrSlotFull,
		},
		{
			name: "slot not open",
			setupMock: func(f fixture) {
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(blocked, nil)
			},
			wantErr: failure.ErrSlotFull,
		},
		{
			name: "slot vanished",
			setupMock: func(f fixture) {
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(slotModel.Slot{}, failure.NotFound(slotModel.EntityName))
			},
			wantErr: failure.ErrNotFound,
		},
		{
			name: "malformed window",
			setupMock: func(f fixture) {
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(broken, nil)
			},
			wantErr: failure.ErrValidation,
		},
		{
			name: "one-time slot without date",
			setupMock: func(f fixture) {
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(undated, nil)
			},
			wantErr: failure.ErrValidation,
		},
		{
			name: "lost the capacity race",
			setupMock: func(f fixture) {
				f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(oneTimeSlot(0), nil)
				f.visits.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.slots.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.SlotFull("slot is full"))
			},
			wantErr: failure.ErrSlotFull,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
			tt.setupMock(f)

			res, err := f.svc.Book(context.Background(), "cust-1", "slot")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, res.Visits)
		})
	}
}

func TestBookingService_Create(t *testing.T) {
	defer timezone.Freeze(now)()

	ctx := shared.WithCaller(context.Background(), "cust-1", constant.RoleCustomer)

	t.Run("payment rejected", func(t *testing.T) {
		f := newFixture(t, true)
		f.payment.EXPECT().Verify("bad", "cust-1", "slot-tue").Return(nil, payment.ErrMismatch)

		_, err := f.svc.Create(ctx, dto.CreateBookingRequest{SlotID: "slot-tue", PaymentToken: "bad"})
		require.Error(t, err)
		assert.ErrorIs(t, err, failure.ErrPaymentRequired)
	})

	t.Run("anonymous caller", func(t *testing.T) {
		f := newFixture(t, false)

		_, err := f.svc.Create(context.Background(), dto.CreateBookingRequest{SlotID: "slot-tue"})
		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})

	t.Run("paid recurring booking reports weeks covered", func(t *testing.T) {
		f := newFixture(t, true)
		f.payment.EXPECT().Verify("ok", "cust-1", "slot-tue").Return(&payment.Confirmation{AmountCents: 2500}, nil)
		f.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(runTx)
		f.slots.EXPECT().LockTx(gomock.Any(), gomock.Any(), "slot-tue").Return(recurringSlot(), nil)
		f.visits.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slots.EXPECT().IncrementBookedTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.slots.EXPECT().InvalidateOpen(gomock.Any())
		f.publisher.EXPECT().SendMessages(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(ctx, dto.CreateBookingRequest{SlotID: "slot-tue", PaymentToken: "ok"})
		require.NoError(t, err)
		assert.Len(t, res.Visits, 8)
		assert.Equal(t, 8, res.WeeksCovered)
		assert.NotNil(t, res.GroupID)
	})
}
