package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"scoop/infras/kafka"
	"scoop/infras/otel"
	"scoop/infras/postgres"
	"scoop/internal/domains/lifecycle/model/dto"
	"scoop/internal/domains/series"
	seriesService "scoop/internal/domains/series/service"
	slotModel "scoop/internal/domains/slot/model"
	slotService "scoop/internal/domains/slot/service"
	visitModel "scoop/internal/domains/visit/model"
	visitDto "scoop/internal/domains/visit/model/dto"
	visitRepo "scoop/internal/domains/visit/repository"
	"scoop/shared"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"scoop/shared/timezone"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Lifecycle moves visits out of scheduled. Every operation locks rows in the
// same order: visit, then slots by id, then the recurring group.
type Lifecycle interface {
	Cancel(ctx context.Context, visitID string) (visitDto.VisitResponse, error)
	Reschedule(ctx context.Context, visitID string, req dto.RescheduleRequest) (dto.RescheduleResponse, error)
	Complete(ctx context.Context, visitID string, req dto.CompleteRequest) (dto.CompleteResponse, error)
	MarkNotComplete(ctx context.Context, visitID string, req dto.NotCompleteRequest) (visitDto.VisitResponse, error)
}

type serviceImpl struct {
	transactor postgres.Transactor
	visitRepo  visitRepo.Visit
	slots      slotService.Slot
	series     seriesService.Series
	publisher  kafka.Client
	otel       otel.Otel
}

func New(
	transactor postgres.Transactor,
	visitRepo visitRepo.Visit,
	slots slotService.Slot,
	series seriesService.Series,
	publisher kafka.Client,
	otel otel.Otel,
) Lifecycle {
	return &serviceImpl{
		transactor: transactor,
		visitRepo:  visitRepo,
		slots:      slots,
		series:     series,
		publisher:  publisher,
		otel:       otel,
	}
}

// canMutate lets admins act on any visit and customers only on their own.
func canMutate(ctx context.Context, customerUID string) bool {
	userID, role := shared.Caller(ctx)
	if role == constant.RoleAdmin {
		return true
	}

	return userID != constant.Empty && userID == customerUID
}

// lockVisitTx locks the visit row and checks that action is allowed from its status.
func (s *serviceImpl) lockVisitTx(ctx context.Context, tx *sqlx.Tx, visitID, action string) (visitModel.Visit, error) {
	visit, err := s.visitRepo.FindByIDForUpdateTx(ctx, tx, visitID)
	if err != nil {
		return visit, fmt.Errorf("failed to lock visit: %w", err)
	}

	if visit.ID == constant.Empty {
		return visit, failure.NotFound(visitModel.EntityName) //nolint:wrapcheck
	}

	if !visitModel.ValidTransition(action, visit.Status) {
		return visit, failure.InvalidTransition(fmt.Sprintf("cannot %s a %s visit", action, visit.Status)) //nolint:wrapcheck
	}

	return visit, nil
}

// holdsSeat reports whether visit was counted in slot's booked_count. A
// one-time visit on a recurring slot got there by reschedule, which never
// increments a recurring slot, so releasing it must not decrement either.
func holdsSeat(visit visitModel.Visit, slot slotModel.Slot) bool {
	return visit.IsRecurring || !slot.IsRecurring
}

func logUnexpected(err error, visitID, msg string) {
	var fail *failure.Failure
	if !errors.As(err, &fail) {
		log.Error().Err(err).Str("visitID", visitID).Msg(msg)
	}
}

func (s *serviceImpl) Cancel(ctx context.Context, visitID string) (res visitDto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lifecycle.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	var canceled visitModel.Visit

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		visit, err := s.visitRepo.FindByIDForUpdateTx(ctx, tx, visitID)
		if err != nil {
			return fmt.Errorf("failed to lock visit: %w", err)
		}

		if visit.ID == constant.Empty {
			return failure.NotFound(visitModel.EntityName) //nolint:wrapcheck
		}

		if !canMutate(ctx, visit.CustomerUID) {
			return failure.Forbidden("visit belongs to another customer") //nolint:wrapcheck
		}

		if !visitModel.ValidTransition(visitModel.ActionCancel, visit.Status) {
			return failure.InvalidTransition(fmt.Sprintf("cannot cancel a %s visit", visit.Status)) //nolint:wrapcheck
		}

		if err = s.visitRepo.UpdateStatusTx(ctx, tx, visit.ID, visitModel.StatusCanceled, nil, actor); err != nil {
			return fmt.Errorf("failed to cancel visit: %w", err)
		}

		slot, err := s.slots.LockTx(ctx, tx, visit.SlotID)

		switch {
		case errors.Is(err, failure.ErrNotFound):
			// A deleted slot has no seat left to release.
		case err != nil:
			return err
		case holdsSeat(visit, slot):
			if err = s.slots.DecrementBookedTx(ctx, tx, slot.ID); err != nil {
				return err
			}
		}

		visit.Status = visitModel.StatusCanceled
		canceled = visit

		return nil
	})
	if err != nil {
		logUnexpected(err, visitID, "failed to cancel visit")

		return res, err //nolint:wrapcheck
	}

	s.slots.InvalidateOpen(ctx)
	s.publish(ctx, visitModel.NewEvent(visitModel.EventCanceled, canceled, actor))

	res.FromModel(canceled)

	return res, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, visitID string, req dto.RescheduleRequest) (res dto.RescheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lifecycle.Reschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"visit.id": visitID, "slot.id": req.SlotID})

	current, err := s.visitRepo.FindByID(ctx, visitID)
	if err != nil {
		log.Error().Err(err).Str("visitID", visitID).Msg("failed to get visit")

		return res, fmt.Errorf("failed to get visit: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound(visitModel.EntityName) //nolint:wrapcheck
	}

	if !canMutate(ctx, current.CustomerUID) {
		return res, failure.Forbidden("visit belongs to another customer") //nolint:wrapcheck
	}

	if current.SlotID == req.SlotID {
		return res, failure.SameSlot("visit is already on this slot") //nolint:wrapcheck
	}

	// Read outside the transaction. A concurrent replenish may pick the same
	// date; the buffer count stays right either way.
	var replacementAt *time.Time

	if groupID, seed, ok := series.SeedFromVisit(current); ok {
		at, err := s.series.NextReplacementDate(ctx, groupID, seed)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		replacementAt = &at
	}

	actor := shared.Actor(ctx)

	var (
		moved       visitModel.Visit
		replacement *visitModel.Visit
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		replacement = nil

		original, err := s.lockVisitTx(ctx, tx, visitID, visitModel.ActionReschedule)
		if err != nil {
			return err
		}

		if original.SlotID == req.SlotID {
			return failure.SameSlot("visit is already on this slot") //nolint:wrapcheck
		}

		oldSlot, newSlot, err := s.lockSlotPairTx(ctx, tx, original.SlotID, req.SlotID)
		if err != nil {
			return err
		}

		if !newSlot.IsOpen() || !newSlot.HasCapacity() {
			return failure.SlotFull("target slot is not available") //nolint:wrapcheck
		}

		scheduledFor, err := occurrenceOf(newSlot)
		if err != nil {
			return err
		}

		if err = s.visitRepo.ReanchorTx(ctx, tx, original.ID, newSlot.ID, scheduledFor, true, actor); err != nil {
			return fmt.Errorf("failed to move visit: %w", err)
		}

		moved = original
		moved.SlotID = newSlot.ID
		moved.ScheduledFor = scheduledFor
		moved.Demote()

		if cadence, ok := original.Series(); ok {
			if err = s.visitRepo.LockGroupTx(ctx, tx, cadence.GroupID); err != nil {
				return fmt.Errorf("failed to lock group: %w", err)
			}

			at := original.ScheduledFor.AddDate(0, 0, constant.DaysPerWeek*s.series.BufferSize())
			if replacementAt != nil {
				at = *replacementAt
			}

			injected := visitModel.NewRecurringVisit(original.CustomerUID, original.SlotID, at, cadence, actor)
			if err = s.visitRepo.InsertTx(ctx, tx, injected); err != nil {
				return fmt.Errorf("failed to insert replacement visit: %w", err)
			}

			replacement = &injected
		}

		if !original.IsRecurring && holdsSeat(original, oldSlot) {
			if err = s.slots.DecrementBookedTx(ctx, tx, oldSlot.ID); err != nil {
				return err
			}
		}

		if !newSlot.IsRecurring {
			return s.slots.IncrementBookedTx(ctx, tx, newSlot)
		}

		return nil
	})
	if err != nil {
		logUnexpected(err, visitID, "failed to reschedule visit")

		return res, err //nolint:wrapcheck
	}

	s.slots.InvalidateOpen(ctx)

	events := []visitModel.Event{visitModel.NewEvent(visitModel.EventRescheduled, moved, actor)}

	res.Visit.FromModel(moved)

	if replacement != nil {
		event := visitModel.NewEvent(visitModel.EventSeriesReplenished, *replacement, actor)
		event.Count = 1
		events = append(events, event)

		res.Replacement = &visitDto.VisitResponse{}
		res.Replacement.FromModel(*replacement)
	}

	s.publish(ctx, events...)

	return res, nil
}

// lockSlotPairTx locks both slots in id order so two opposite reschedules cannot deadlock.
func (s *serviceImpl) lockSlotPairTx(ctx context.Context, tx *sqlx.Tx, oldID, newID string) (oldSlot, newSlot slotModel.Slot, err error) {
	ids := []string{oldID, newID}
	slices.Sort(ids)

	locked := make(map[string]slotModel.Slot, len(ids))

	for _, id := range ids {
		slot, err := s.slots.LockTx(ctx, tx, id)
		if err != nil {
			return oldSlot, newSlot, err
		}

		locked[id] = slot
	}

	return locked[oldID], locked[newID], nil
}

// occurrenceOf is when a visit moved onto slot takes place.
func occurrenceOf(slot slotModel.Slot) (time.Time, error) {
	window, err := series.ParseWindow(slot.WindowStart)
	if err != nil {
		return time.Time{}, failure.Validation(fmt.Sprintf("invalid slot window: %v", err)) //nolint:wrapcheck
	}

	if slot.IsRecurring {
		weekday, ok := slot.Weekday()
		if !ok {
			return time.Time{}, failure.Validation("recurring slot has no day of week") //nolint:wrapcheck
		}

		return series.NextOccurrence(timezone.Now(), weekday, window), nil
	}

	if slot.Date == nil {
		return time.Time{}, failure.Validation("one-time slot has no date") //nolint:wrapcheck
	}

	return series.OnDay(*slot.Date, window, timezone.GetLocation()), nil
}

func (s *serviceImpl) Complete(ctx context.Context, visitID string, req dto.CompleteRequest) (res dto.CompleteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lifecycle.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	var (
		completed visitModel.Visit
		created   int
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		created = 0

		visit, err := s.lockVisitTx(ctx, tx, visitID, visitModel.ActionComplete)
		if err != nil {
			return err
		}

		if err = s.visitRepo.UpdateStatusTx(ctx, tx, visit.ID, visitModel.StatusCompleted, req.Notes, actor); err != nil {
			return fmt.Errorf("failed to complete visit: %w", err)
		}

		visit.Status = visitModel.StatusCompleted
		if req.Notes != nil {
			visit.Notes = req.Notes
		}

		completed = visit

		groupID, seed, ok := series.SeedFromVisit(visit)
		if !ok {
			return nil
		}

		anchor := visit.ScheduledFor

		created, err = s.series.ReplenishTx(ctx, tx, groupID, seed, &anchor)

		return err
	})
	if err != nil {
		logUnexpected(err, visitID, "failed to complete visit")

		return res, err //nolint:wrapcheck
	}

	events := []visitModel.Event{visitModel.NewEvent(visitModel.EventCompleted, completed, actor)}

	if created > 0 {
		event := visitModel.NewEvent(visitModel.EventSeriesReplenished, completed, actor)
		event.VisitID = constant.Empty
		event.Count = created
		events = append(events, event)
	}

	s.publish(ctx, events...)

	res.Visit.FromModel(completed)
	res.Replenished = created

	return res, nil
}

func (s *serviceImpl) MarkNotComplete(ctx context.Context, visitID string, req dto.NotCompleteRequest) (res visitDto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".lifecycle.MarkNotComplete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	reason := strings.TrimSpace(req.Reason)
	if reason == constant.Empty {
		return res, failure.Validation("reason is required") //nolint:wrapcheck
	}

	actor := shared.Actor(ctx)

	var marked visitModel.Visit

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		visit, err := s.lockVisitTx(ctx, tx, visitID, visitModel.ActionNotComplete)
		if err != nil {
			return err
		}

		if err = s.visitRepo.UpdateStatusTx(ctx, tx, visit.ID, visitModel.StatusNotComplete, &reason, actor); err != nil {
			return fmt.Errorf("failed to mark visit not complete: %w", err)
		}

		visit.Status = visitModel.StatusNotComplete
		visit.Notes = &reason
		marked = visit

		return nil
	})
	if err != nil {
		logUnexpected(err, visitID, "failed to mark visit not complete")

		return res, err //nolint:wrapcheck
	}

	s.publish(ctx, visitModel.NewEvent(visitModel.EventNotCompleted, marked, actor))

	res.FromModel(marked)

	return res, nil
}

func (s *serviceImpl) publish(ctx context.Context, events ...visitModel.Event) {
	if err := s.publisher.SendMessages(ctx, visitModel.Messages(events...)...); err != nil {
		log.Error().Err(err).Msg("failed to publish visit events")
	}
}
