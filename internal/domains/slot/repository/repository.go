package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"scoop/infras/otel"
	"scoop/infras/postgres"
	"scoop/internal/domains/slot/model"
	"scoop/shared"
	"scoop/shared/constant"
	gDto "scoop/shared/dto"
	"scoop/shared/logger"
	gRepo "scoop/shared/repository"
	"scoop/shared/timezone"

	"github.com/jmoiron/sqlx"
)

const (
	incrementBookedQuery = `UPDATE slots
		SET booked_count = booked_count + 1, modified_at = $1, modified_by = $2
		WHERE id = $3 AND booked_count < capacity`

	decrementBookedQuery = `UPDATE slots
		SET booked_count = GREATEST(booked_count - 1, 0), modified_at = $1, modified_by = $2
		WHERE id = $3`
)

type Slot interface {
	Create(ctx context.Context, slot model.Slot) error
	FindByID(ctx context.Context, id string) (model.Slot, error)
	// FindByIDForUpdateTx locks the row until the transaction ends.
	FindByIDForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Slot, error)
	ListOpenByZip(ctx context.Context, zip string) ([]model.Slot, error)
	UpdateStatus(ctx context.Context, id, status, actor string) error
	RemoveTx(ctx context.Context, sqltx *sqlx.Tx, id string) error
	// IncrementBookedTx reports false when the slot was already at capacity.
	IncrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, id, actor string) (bool, error)
	DecrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, id, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Slot]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Slot {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Slot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, slot model.Slot) error {
	return r.Insert(ctx, slot) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByID(ctx context.Context, id string) (model.Slot, error) {
	return r.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) FindByIDForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, id string) (model.Slot, error) {
	return r.GetTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName), true) //nolint:wrapcheck
}

func (r *repositoryImpl) ListOpenByZip(ctx context.Context, zip string) ([]model.Slot, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusOpen, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldZip, Value: zip, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Value: "slots.booked_count < slots.capacity", Operator: gDto.FilterPlainQuery},
		},
	}

	return r.GetAll(ctx, gDto.QueryParams{}, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, id, status, actor string) error {
	mod := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	return r.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) RemoveTx(ctx context.Context, sqltx *sqlx.Tx, id string) error {
	return r.DeleteTx(ctx, sqltx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) IncrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, id, actor string) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.IncrementBookedTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, incrementBookedQuery)

	result, err := sqltx.ExecContext(ctx, incrementBookedQuery, timezone.Now(), actor, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to increment booked count (%s): %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected == 1, nil
}

func (r *repositoryImpl) DecrementBookedTx(ctx context.Context, sqltx *sqlx.Tx, id, actor string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".slot.DecrementBookedTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, decrementBookedQuery)

	_, err := sqltx.ExecContext(ctx, decrementBookedQuery, timezone.Now(), actor, id)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to decrement booked count (%s): %w", id, err)
	}

	return nil
}
