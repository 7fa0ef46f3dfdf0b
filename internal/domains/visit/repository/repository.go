package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scoop/infras/otel"
	"scoop/infras/postgres"
	"scoop/internal/domains/visit/model"
	"scoop/shared"
	"scoop/shared/constant"
	gDto "scoop/shared/dto"
	"scoop/shared/logger"
	gRepo "scoop/shared/repository"
	"scoop/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
)

const lockGroupQuery = `SELECT pg_advisory_xact_lock(hashtext($1))`

type Visit interface {
	Create(ctx context.Context, visit model.Visit) error
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, visit model.Visit) error
	InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, visits []model.Visit) error
	FindByID(ctx context.Context, id string) (model.Visit, error)
	// FindByIDForUpdateTx locks the row until the transaction ends.
	FindByIDForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Visit, error)
	Find(ctx context.Context, criteria model.Criteria, params gDto.QueryParams) ([]model.Visit, error)
	CountMatching(ctx context.Context, criteria model.Criteria) (int, error)
	QueryByCustomer(ctx context.Context, customerUID string, params gDto.QueryParams) ([]model.Visit, error)
	QueryByDateRange(ctx context.Context, start, end time.Time, params gDto.QueryParams) ([]model.Visit, error)
	QueryByStatus(ctx context.Context, status string, params gDto.QueryParams) ([]model.Visit, error)
	QueryByRecurringGroup(ctx context.Context, groupID, status string, minScheduledFor time.Time) ([]model.Visit, error)
	QueryByRecurringGroupTx(ctx context.Context, sqltx *sqlx.Tx, groupID, status string, minScheduledFor time.Time) ([]model.Visit, error)
	UpdateStatusTx(ctx context.Context, sqltx *sqlx.Tx, id, status string, notes *string, actor string) error
	ReanchorTx(ctx context.Context, sqltx *sqlx.Tx, id, slotID string, scheduledFor time.Time, clearRecurring bool, actor string) error
	AssignTechnicianTx(ctx context.Context, sqltx *sqlx.Tx, id, technicianUID, actor string) error
	// LockGroupTx serializes work on one recurring group until the transaction ends.
	LockGroupTx(ctx context.Context, sqltx *sqlx.Tx, groupID string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Visit]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Visit {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Visit](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func byScheduledFor(params gDto.QueryParams) gDto.QueryParams {
	params.SortBy = model.TableName + "." + model.FieldScheduledFor
	if params.SortDir == constant.Empty {
		params.SortDir = gDto.SortDirAsc
	}

	return params
}

func buildFilter(criteria model.Criteria) gDto.FilterGroup {
	filters := []any{}

	eq := func(field string, value string) {
		if value == constant.Empty {
			return
		}

		filters = append(filters, gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	eq(model.FieldCustomerUID, criteria.CustomerUID)
	eq(model.FieldTechnicianUID, criteria.TechnicianUID)
	eq(model.FieldRecurringGroupID, criteria.GroupID)
	eq(model.FieldStatus, criteria.Status)

	if criteria.From != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "scheduled_from",
			Field:    model.FieldScheduledFor,
			Value:    *criteria.From,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	if criteria.To != nil {
		filters = append(filters, gDto.Filter{
			ArgName:  "scheduled_to",
			Field:    model.FieldScheduledFor,
			Value:    *criteria.To,
			Operator: gDto.FilterOperatorLess,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func (r *repositoryImpl) Create(ctx context.Context, visit model.Visit) error {
	return r.Insert(ctx, visit) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.Visit, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByIDForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Visit, error) {
	return r.GetTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName), true) //nolint:wrapcheck
}

func (r *repositoryImpl) Find(ctx context.Context, criteria model.Criteria, params gDto.QueryParams) ([]model.Visit, error) {
	return r.GetAll(ctx, byScheduledFor(params), buildFilter(criteria)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountMatching(ctx context.Context, criteria model.Criteria) (int, error) {
	return r.Count(ctx, buildFilter(criteria)) //nolint:wrapcheck
}

func (r *repositoryImpl) QueryByCustomer(ctx context.Context, customerUID string, params gDto.QueryParams) ([]model.Visit, error) {
	return r.Find(ctx, model.Criteria{CustomerUID: customerUID}, params)
}

func (r *repositoryImpl) QueryByDateRange(ctx context.Context, start, end time.Time, params gDto.QueryParams) ([]model.Visit, error) {
	return r.Find(ctx, model.Criteria{From: &start, To: &end}, params)
}

func (r *repositoryImpl) QueryByStatus(ctx context.Context, status string, params gDto.QueryParams) ([]model.Visit, error) {
	return r.Find(ctx, model.Criteria{Status: status}, params)
}

func (r *repositoryImpl) QueryByRecurringGroup(ctx context.Context, groupID, status string, minScheduledFor time.Time) ([]model.Visit, error) {
	criteria := model.Criteria{GroupID: groupID, Status: status, From: &minScheduledFor}

	return r.GetAll(ctx, byScheduledFor(gDto.QueryParams{}), buildFilter(criteria)) //nolint:wrapcheck
}

func (r *repositoryImpl) QueryByRecurringGroupTx(ctx context.Context, sqltx *sqlx.Tx, groupID, status string, minScheduledFor time.Time) ([]model.Visit, error) {
	criteria := model.Criteria{GroupID: groupID, Status: status, From: &minScheduledFor}

	return r.GetAllTx(ctx, sqltx, byScheduledFor(gDto.QueryParams{}), buildFilter(criteria)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, sqltx *sqlx.Tx, id, status string, notes *string, actor string) error {
	mod := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if notes != nil {
		mod[model.FieldNotes] = *notes
	}

	return r.UpdateTx(ctx, sqltx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) ReanchorTx(ctx context.Context, sqltx *sqlx.Tx, id, slotID string, scheduledFor time.Time, clearRecurring bool, actor string) error {
	mod := map[string]any{
		model.FieldSlotID:        slotID,
		model.FieldScheduledFor:  scheduledFor,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if clearRecurring {
		mod[model.FieldIsRecurring] = false
		mod[model.FieldRecurringGroupID] = nil
		mod[model.FieldRecurringDayOfWeek] = nil
		mod[model.FieldRecurringWindowStart] = nil
		mod[model.FieldRecurringWindowEnd] = nil
	}

	return r.UpdateTx(ctx, sqltx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) AssignTechnicianTx(ctx context.Context, sqltx *sqlx.Tx, id, technicianUID, actor string) error {
	mod := map[string]any{
		model.FieldTechnicianUID: technicianUID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	return r.UpdateTx(ctx, sqltx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) LockGroupTx(ctx context.Context, sqltx *sqlx.Tx, groupID string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".visit.LockGroupTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, lockGroupQuery)

	if _, err := sqltx.ExecContext(ctx, lockGroupQuery, groupID); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to lock recurring group (%s): %w", groupID, err)
	}

	return nil
}
