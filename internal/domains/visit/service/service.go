package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"scoop/infras/kafka"
	"scoop/infras/otel"
	"scoop/infras/postgres"
	"scoop/internal/domains/visit/model"
	"scoop/internal/domains/visit/model/dto"
	"scoop/internal/domains/visit/repository"
	"scoop/shared"
	"scoop/shared/constant"
	gDto "scoop/shared/dto"
	"scoop/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Visit is the read side of the ledger plus technician assignment.
type Visit interface {
	Get(ctx context.Context, id string) (dto.VisitResponse, error)
	ListMine(ctx context.Context, params gDto.QueryParams) (dto.GetVisitsResponse, error)
	List(ctx context.Context, query dto.VisitQuery, params gDto.QueryParams) (dto.GetVisitsResponse, error)
	ListSeries(ctx context.Context, groupID string) ([]dto.VisitResponse, error)
	AssignTechnician(ctx context.Context, id string, req dto.AssignTechnicianRequest) error
}

type serviceImpl struct {
	transactor postgres.Transactor
	repo       repository.Visit
	publisher  kafka.Client
	otel       otel.Otel
}

func New(transactor postgres.Transactor, repo repository.Visit, publisher kafka.Client, otel otel.Otel) Visit {
	return &serviceImpl{
		transactor: transactor,
		repo:       repo,
		publisher:  publisher,
		otel:       otel,
	}
}

// canRead lets staff see every visit and customers only their own.
func canRead(ctx context.Context, customerUID string) bool {
	userID, role := shared.Caller(ctx)

	switch role {
	case constant.RoleAdmin, constant.RoleTechnician:
		return true
	default:
		return userID != constant.Empty && userID == customerUID
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visit.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	visit, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("visitID", id).Msg("failed to get visit")

		return res, fmt.Errorf("failed to get visit: %w", err)
	}

	// A foreign visit reads as missing so ids cannot be enumerated.
	if visit.ID == constant.Empty || !canRead(ctx, visit.CustomerUID) {
		return res, failure.NotFound("visit not found") //nolint:wrapcheck
	}

	res.FromModel(visit)

	return res, nil
}

func (s *serviceImpl) ListMine(ctx context.Context, params gDto.QueryParams) (res dto.GetVisitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visit.ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	userID, _ := shared.Caller(ctx)
	if userID == constant.Empty {
		return res, failure.Unauthorized("missing caller identity") //nolint:wrapcheck
	}

	total, err := s.repo.CountMatching(ctx, model.Criteria{CustomerUID: userID})
	if err != nil {
		log.Error().Err(err).Msg("failed to count customer visits")

		return res, fmt.Errorf("failed to count visits: %w", err)
	}

	visits, err := s.repo.QueryByCustomer(ctx, userID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer visits")

		return res, fmt.Errorf("failed to get visits: %w", err)
	}

	res.FromModels(visits, total, params.Limit)

	return res, nil
}

// List backs the admin status board. Technicians only see visits assigned to them.
func (s *serviceImpl) List(ctx context.Context, query dto.VisitQuery, params gDto.QueryParams) (res dto.GetVisitsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visit.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	criteria, err := query.ToCriteria()
	if err != nil {
		return res, failure.Validation(err.Error()) //nolint:wrapcheck
	}

	if userID, role := shared.Caller(ctx); role == constant.RoleTechnician {
		criteria.TechnicianUID = userID
	}

	total, err := s.repo.CountMatching(ctx, criteria)
	if err != nil {
		log.Error().Err(err).Msg("failed to count visits")

		return res, fmt.Errorf("failed to count visits: %w", err)
	}

	visits, err := s.find(ctx, criteria, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list visits")

		return res, fmt.Errorf("failed to list visits: %w", err)
	}

	res.FromModels(visits, total, params.Limit)

	return res, nil
}

// find uses the ledger's single-criterion queries when only one criterion is
// set and the combined filter otherwise.
func (s *serviceImpl) find(ctx context.Context, criteria model.Criteria, params gDto.QueryParams) ([]model.Visit, error) {
	hasStatus := criteria.Status != constant.Empty
	hasFullRange := criteria.From != nil && criteria.To != nil
	hasOpenRange := (criteria.From == nil) != (criteria.To == nil)
	narrowed := criteria.CustomerUID != constant.Empty || criteria.TechnicianUID != constant.Empty || criteria.GroupID != constant.Empty

	switch {
	case narrowed || hasOpenRange:
	case hasFullRange && !hasStatus:
		return s.repo.QueryByDateRange(ctx, *criteria.From, *criteria.To, params) //nolint:wrapcheck
	case hasStatus && !hasFullRange:
		return s.repo.QueryByStatus(ctx, criteria.Status, params) //nolint:wrapcheck
	}

	return s.repo.Find(ctx, criteria, params) //nolint:wrapcheck
}

func (s *serviceImpl) ListSeries(ctx context.Context, groupID string) (res []dto.VisitResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visit.ListSeries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	visits, err := s.repo.Find(ctx, model.Criteria{GroupID: groupID}, gDto.QueryParams{})
	if err != nil {
		log.Error().Err(err).Str("groupID", groupID).Msg("failed to list series visits")

		return res, fmt.Errorf("failed to list series visits: %w", err)
	}

	if len(visits) == 0 || !canRead(ctx, visits[0].CustomerUID) {
		return res, failure.NotFound("series not found") //nolint:wrapcheck
	}

	return dto.FromModels(visits), nil
}

func (s *serviceImpl) AssignTechnician(ctx context.Context, id string, req dto.AssignTechnicianRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".visit.AssignTechnician")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	var assigned model.Visit

	// The row lock keeps a concurrent complete or cancel from closing the
	// visit between the status check and the write.
	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		visit, err := s.repo.FindByIDForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to lock visit: %w", err)
		}

		if visit.ID == constant.Empty {
			return failure.NotFound("visit not found") //nolint:wrapcheck
		}

		if !model.ValidTransition(model.ActionAssign, visit.Status) {
			return failure.InvalidTransition(fmt.Sprintf("cannot assign a technician to a %s visit", visit.Status)) //nolint:wrapcheck
		}

		if err = s.repo.AssignTechnicianTx(ctx, tx, id, req.TechnicianUID, actor); err != nil {
			return fmt.Errorf("failed to assign technician: %w", err)
		}

		technicianUID := req.TechnicianUID
		visit.TechnicianUID = &technicianUID
		assigned = visit

		return nil
	})
	if err != nil {
		var fail *failure.Failure
		if !errors.As(err, &fail) {
			log.Error().Err(err).Str("visitID", id).Msg("failed to assign technician")
		}

		return err //nolint:wrapcheck
	}

	event := model.NewEvent(model.EventTechnicianAssigned, assigned, actor)
	if err := s.publisher.SendMessages(ctx, model.Messages(event)...); err != nil {
		log.Error().Err(err).Str("visitID", id).Msg("failed to publish technician assignment")
	}

	return nil
}
