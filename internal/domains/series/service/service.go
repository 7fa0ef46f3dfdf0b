package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scoop/config"
	"scoop/infras/otel"
	"scoop/internal/domains/series"
	visitModel "scoop/internal/domains/visit/model"
	visitRepo "scoop/internal/domains/visit/repository"
	"scoop/shared"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"scoop/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Series keeps every recurring group at exactly BufferSize future scheduled visits.
type Series interface {
	BufferSize() int
	// SeedInitial builds the first BufferSize visits at start + 7·i.
	SeedInitial(groupID string, seed series.Seed, start time.Time) []visitModel.Visit
	// ReplenishTx tops the group back up to BufferSize inside sqltx and returns
	// how many visits it created. It takes the group lock itself.
	ReplenishTx(ctx context.Context, sqltx *sqlx.Tx, groupID string, seed series.Seed, fallbackAnchor *time.Time) (int, error)
	// NextReplacementDate is read outside any transaction; see Reschedule.
	NextReplacementDate(ctx context.Context, groupID string, seed series.Seed) (time.Time, error)
}

type serviceImpl struct {
	visitRepo  visitRepo.Visit
	bufferSize int
	otel       otel.Otel
}

func New(visitRepo visitRepo.Visit, cfg *config.Config, otel otel.Otel) Series {
	return &serviceImpl{
		visitRepo:  visitRepo,
		bufferSize: cfg.BufferSize(),
		otel:       otel,
	}
}

func (s *serviceImpl) BufferSize() int {
	return s.bufferSize
}

func (s *serviceImpl) SeedInitial(groupID string, seed series.Seed, start time.Time) []visitModel.Visit {
	cadence := seed.Series(groupID)
	visits := make([]visitModel.Visit, 0, s.bufferSize)

	for _, at := range series.Weekly(start, 0, s.bufferSize) {
		visits = append(visits, visitModel.NewRecurringVisit(seed.CustomerUID, seed.SlotID, at, cadence, seed.CustomerUID))
	}

	return visits
}

func (s *serviceImpl) ReplenishTx(ctx context.Context, sqltx *sqlx.Tx, groupID string, seed series.Seed, fallbackAnchor *time.Time) (created int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".series.ReplenishTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := series.ParseWindow(seed.WindowStart)
	if err != nil {
		return 0, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	if err = s.visitRepo.LockGroupTx(ctx, sqltx, groupID); err != nil {
		return 0, fmt.Errorf("failed to lock group: %w", err)
	}

	now := timezone.Now()

	future, err := s.visitRepo.QueryByRecurringGroupTx(ctx, sqltx, groupID, visitModel.StatusScheduled, now)
	if err != nil {
		return 0, fmt.Errorf("failed to count future visits: %w", err)
	}

	deficit := s.bufferSize - len(future)
	if deficit <= 0 {
		return 0, nil
	}

	anchor := now
	if latest, ok := latestScheduled(future); ok {
		anchor = latest
	} else if fallbackAnchor != nil {
		anchor = *fallbackAnchor
	}

	loc := timezone.GetLocation()
	cadence := seed.Series(groupID)
	actor := shared.Actor(ctx)
	visits := make([]visitModel.Visit, 0, deficit)

	for _, at := range series.Weekly(timezone.ToAppTime(anchor), 1, deficit) {
		visits = append(visits, visitModel.NewRecurringVisit(seed.CustomerUID, seed.SlotID, series.AtWindow(at, window, loc), cadence, actor))
	}

	if err = s.visitRepo.InsertBulkTx(ctx, sqltx, visits); err != nil {
		return 0, fmt.Errorf("failed to insert replenished visits: %w", err)
	}

	log.Info().Str("groupID", groupID).Int("created", len(visits)).Msg("Replenished recurring group")

	return len(visits), nil
}

func (s *serviceImpl) NextReplacementDate(ctx context.Context, groupID string, seed series.Seed) (res time.Time, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".series.NextReplacementDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	window, err := series.ParseWindow(seed.WindowStart)
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	now := timezone.Now()

	future, err := s.visitRepo.QueryByRecurringGroup(ctx, groupID, visitModel.StatusScheduled, now)
	if err != nil {
		log.Error().Err(err).Str("groupID", groupID).Msg("failed to read group visits")

		return res, fmt.Errorf("failed to read group visits: %w", err)
	}

	latest, ok := latestScheduled(future)
	if !ok {
		return series.NextOccurrence(now, seed.DayOfWeek, window), nil
	}

	next := timezone.ToAppTime(latest).AddDate(0, 0, constant.DaysPerWeek)

	return series.AtWindow(next, window, timezone.GetLocation()), nil
}

func latestScheduled(visits []visitModel.Visit) (time.Time, bool) {
	var latest time.Time

	for _, visit := range visits {
		if visit.ScheduledFor.After(latest) {
			latest = visit.ScheduledFor
		}
	}

	return latest, len(visits) > 0
}
