package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scoop/config"
	"scoop/infras/otel"
	"scoop/infras/postgres"
	"scoop/internal/domains/slot/model"
	"scoop/internal/domains/slot/model/dto"
	"scoop/internal/domains/slot/repository"
	"scoop/shared"
	"scoop/shared/cache"
	"scoop/shared/constant"
	"scoop/shared/failure"
	"scoop/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheOpenSlots = "slots:open"
	// cacheOpenGeneration is bumped on every invalidation and is part of each
	// listing key, so a listing read before a write can only land under a
	// generation nobody reads anymore.
	cacheOpenGeneration = "slots:generation"
	generationWindow    = 24 * 60 * 60
)

type Slot interface {
	ListOpen(ctx context.Context, zip string) (dto.ListSlotsResponse, error)
	Get(ctx context.Context, id string) (dto.SlotResponse, error)
	Create(ctx context.Context, req dto.CreateSlotRequest) (dto.SlotResponse, error)
	SetStatus(ctx context.Context, id string, req dto.UpdateSlotStatusRequest) error
	Delete(ctx context.Context, id string) error

	// LockTx reads the slot with a row lock held until the transaction ends.
	LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Slot, error)
	// IncrementBookedTx takes one unit of capacity from a slot locked by LockTx.
	IncrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, slot model.Slot) error
	DecrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, id string) error
	// InvalidateOpen drops cached listings. Call it after the transaction commits.
	InvalidateOpen(ctx context.Context)
}

type serviceImpl struct {
	repo       repository.Slot
	transactor postgres.Transactor
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Slot, transactor postgres.Transactor, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Slot {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) ListOpen(ctx context.Context, zip string) (res dto.ListSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.ListOpen")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	today := timezone.Format(timezone.Now(), constant.DayFormat)
	cacheKey := shared.BuildCacheKey(cacheOpenSlots, s.openGeneration(ctx), zip, today)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for open slots")

		return res, nil
	}

	slots, err := s.repo.ListOpenByZip(ctx, zip)
	if err != nil {
		log.Error().Err(err).Str("zip", zip).Msg("failed to list open slots")

		return res, fmt.Errorf("failed to list open slots: %w", err)
	}

	slots = model.FilterListable(slots, today)
	model.SortListing(slots)

	res.FromModels(slots)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.CacheTTL()); err != nil {
			log.Error().Err(err).Msg("failed to save open slots to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("slotID", id).Msg("failed to get slot")

		return res, fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return res, failure.NotFound("slot not found") //nolint:wrapcheck
	}

	res.FromModel(slot)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSlotRequest) (res dto.SlotResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slot, err := req.ToModel(shared.Actor(ctx))
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	if err = s.repo.Create(ctx, slot); err != nil {
		log.Error().Err(err).Msg("failed to create slot")

		return res, fmt.Errorf("failed to create slot: %w", err)
	}

	s.InvalidateOpen(ctx)

	res.FromModel(slot)

	return res, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, id string, req dto.UpdateSlotStatusRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.SetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	slot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("slotID", id).Msg("failed to get slot")

		return fmt.Errorf("failed to get slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return failure.NotFound("slot not found") //nolint:wrapcheck
	}

	if err = s.repo.UpdateStatus(ctx, id, req.Status, shared.Actor(ctx)); err != nil {
		log.Error().Err(err).Str("slotID", id).Msg("failed to update slot status")

		return fmt.Errorf("failed to update slot status: %w", err)
	}

	s.InvalidateOpen(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".slot.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		slot, err := s.LockTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if slot.BookedCount > 0 {
			return failure.SlotHasBookings(fmt.Sprintf("slot has %d active bookings", slot.BookedCount)) //nolint:wrapcheck
		}

		return s.repo.RemoveTx(ctx, tx, id) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("slotID", id).Msg("failed to delete slot")

		return fmt.Errorf("failed to delete slot: %w", err)
	}

	s.InvalidateOpen(ctx)

	return nil
}

func (s *serviceImpl) LockTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Slot, error) {
	slot, err := s.repo.FindByIDForUpdateTx(ctx, sqltx, id)
	if err != nil {
		return slot, fmt.Errorf("failed to lock slot: %w", err)
	}

	if slot.ID == constant.Empty {
		return slot, failure.NotFound("slot not found") //nolint:wrapcheck
	}

	return slot, nil
}

func (s *serviceImpl) IncrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, slot model.Slot) error {
	if !slot.HasCapacity() {
		return failure.SlotFull("slot is full") //nolint:wrapcheck
	}

	ok, err := s.repo.IncrementBookedTx(ctx, sqltx, slot.ID, shared.Actor(ctx))
	if err != nil {
		return fmt.Errorf("failed to reserve slot capacity: %w", err)
	}

	if !ok {
		return failure.SlotFull("slot is full") //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) DecrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, id string) error {
	if err := s.repo.DecrementBookedTx(ctx, sqltx, id, shared.Actor(ctx)); err != nil {
		return fmt.Errorf("failed to release slot capacity: %w", err)
	}

	return nil
}

func (s *serviceImpl) InvalidateOpen(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	if _, err := s.cache.Increment(ctx, cacheOpenGeneration, generationWindow); err != nil {
		log.Error().Err(err).Msg("failed to bump open slots generation")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheOpenSlots)
}

func (s *serviceImpl) openGeneration(ctx context.Context) string {
	generation := "0"

	if err := s.cache.Get(ctx, cacheOpenGeneration, &generation); err != nil {
		return "0"
	}

	return generation
}
