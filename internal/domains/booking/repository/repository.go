package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luna/infras/otel"
	"luna/infras/postgres"
	"luna/internal/domains/booking/model"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/logger"
	gRepo "luna/shared/repository"
	"luna/shared/timezone"
)

type Booking interface {
	Insert(ctx context.Context, model model.BookingRequest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingRequest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingRequest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	TransitionStatus(ctx context.Context, id, from, to, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingRequest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingRequest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const transitionStatusQuery = `UPDATE booking_requests
	SET status = :to, modified_at = :modified_at, modified_by = :modified_by
	WHERE id = :id AND status = :from`

// TransitionStatus moves a booking from one status to another. It reports false
// when the booking was no longer in status from.
func (repo *repositoryImpl) TransitionStatus(ctx context.Context, id, from, to, user string) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.TransitionStatus")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, transitionStatusQuery)

	result, err := repo.db.Write.NamedExecContext(ctx, transitionStatusQuery, map[string]any{
		"id":          id,
		"from":        from,
		"to":          to,
		"modified_at": timezone.Now(),
		"modified_by": user,
	})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to update status (%s): %w", model.EntityName, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to read affected rows (%s): %w", model.EntityName, err)
	}

	return affected > 0, nil
}
