package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"scoop/config"
	"scoop/infras/kafka"
	"scoop/infras/otel"
	"scoop/infras/payment"
	"scoop/infras/postgres"
	"scoop/internal/domains/booking/model"
	"scoop/internal/domains/booking/model/dto"
	"scoop/internal/domains/series"
	seriesService "scoop/internal/domains/series/service"
	slotModel "scoop/internal/domains/slot/model"
	slotService "scoop/internal/domains/slot/service"
	visitModel "scoop/internal/domains/visit/model"
	visitRepo "scoop/internal/domains/visit/repository"
	"scoop/shared"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"scoop/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	// Create books req.SlotID for the caller, verifying payment first when required.
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	// Book atomically reserves slotID for customerUID. A recurring slot yields a
	// full buffer of weekly visits in a new group, a one-time slot a single visit.
	Book(ctx context.Context, customerUID, slotID string) (model.Result, error)
}

type serviceImpl struct {
	transactor postgres.Transactor
	slots      slotService.Slot
	series     seriesService.Series
	visitRepo  visitRepo.Visit
	payment    payment.Verifier
	publisher  kafka.Client
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	transactor postgres.Transactor,
	slots slotService.Slot,
	series seriesService.Series,
	visitRepo visitRepo.Visit,
	payment payment.Verifier,
	publisher kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		transactor: transactor,
		slots:      slots,
		series:     series,
		visitRepo:  visitRepo,
		payment:    payment,
		publisher:  publisher,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerUID, _ := shared.Caller(ctx)
	if customerUID == constant.Empty {
		return res, failure.Unauthorized("missing caller identity") //nolint:wrapcheck
	}

	if s.cfg.App.PaymentRequired {
		if _, err = s.payment.Verify(req.PaymentToken, customerUID, req.SlotID); err != nil {
			log.Warn().Err(err).Str("customerUID", customerUID).Str("slotID", req.SlotID).Msg("payment confirmation rejected")

			return res, failure.PaymentRequired(err.Error()) //nolint:wrapcheck
		}
	}

	result, err := s.Book(ctx, customerUID, req.SlotID)
	if err != nil {
		return res, err
	}

	res.FromModel(result, s.cfg.WeeksCovered())

	return res, nil
}

func (s *serviceImpl) Book(ctx context.Context, customerUID, slotID string) (res model.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Book")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("slot.id", slotID)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		slot, err := s.slots.LockTx(ctx, tx, slotID)
		if err != nil {
			return err
		}

		if !slot.IsOpen() {
			return failure.SlotFull(fmt.Sprintf("slot is %s", slot.Status)) //nolint:wrapcheck
		}

		if !slot.HasCapacity() {
			return failure.SlotFull("slot is full") //nolint:wrapcheck
		}

		if slot.IsRecurring {
			res, err = s.subscribeTx(ctx, tx, customerUID, slot)
		} else {
			res, err = s.reserveTx(ctx, tx, customerUID, slot)
		}

		if err != nil {
			return err
		}

		return s.slots.IncrementBookedTx(ctx, tx, slot)
	})
	if err != nil {
		var fail *failure.Failure
		if !errors.As(err, &fail) {
			log.Error().Err(err).Str("slotID", slotID).Str("customerUID", customerUID).Msg("failed to book slot")
		}

		return model.Result{}, err //nolint:wrapcheck
	}

	s.slots.InvalidateOpen(ctx)
	s.publish(ctx, res)

	log.Info().Str("slotID", slotID).Str("customerUID", customerUID).Int("visits", len(res.Visits)).Msg("Slot booked")

	return res, nil
}

func (s *serviceImpl) subscribeTx(ctx context.Context, tx *sqlx.Tx, customerUID string, slot slotModel.Slot) (model.Result, error) {
	seed, ok := series.SeedFromSlot(customerUID, slot)
	if !ok {
		return model.Result{}, failure.Validation("recurring slot has no day of week") //nolint:wrapcheck
	}

	window, err := series.ParseWindow(slot.WindowStart)
	if err != nil {
		return model.Result{}, failure.Validation(fmt.Sprintf("invalid slot window: %v", err)) //nolint:wrapcheck
	}

	groupID := uuid.NewString()
	start := series.NextOccurrence(timezone.Now(), seed.DayOfWeek, window)
	visits := s.series.SeedInitial(groupID, seed, start)

	if err = s.visitRepo.InsertBulkTx(ctx, tx, visits); err != nil {
		return model.Result{}, fmt.Errorf("failed to insert recurring visits: %w", err)
	}

	return model.Result{Visits: visits, GroupID: &groupID}, nil
}

func (s *serviceImpl) reserveTx(ctx context.Context, tx *sqlx.Tx, customerUID string, slot slotModel.Slot) (model.Result, error) {
	if slot.Date == nil {
		return model.Result{}, failure.Validation("one-time slot has no date") //nolint:wrapcheck
	}

	window, err := series.ParseWindow(slot.WindowStart)
	if err != nil {
		return model.Result{}, failure.Validation(fmt.Sprintf("invalid slot window: %v", err)) //nolint:wrapcheck
	}

	at := series.OnDay(*slot.Date, window, timezone.GetLocation())
	visit := visitModel.NewOneTimeVisit(customerUID, slot.ID, at, shared.Actor(ctx))

	if err = s.visitRepo.InsertTx(ctx, tx, visit); err != nil {
		return model.Result{}, fmt.Errorf("failed to insert visit: %w", err)
	}

	return model.Result{Visits: []visitModel.Visit{visit}}, nil
}

func (s *serviceImpl) publish(ctx context.Context, res model.Result) {
	actor := shared.Actor(ctx)
	events := make([]visitModel.Event, 0, len(res.Visits))

	for _, visit := range res.Visits {
		events = append(events, visitModel.NewEvent(visitModel.EventBooked, visit, actor))
	}

	if err := s.publisher.SendMessages(ctx, visitModel.Messages(events...)...); err != nil {
		log.Error().Err(err).Msg("failed to publish booking events")
	}
}
