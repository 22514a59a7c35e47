package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"luna/infras/otel"
	"luna/infras/postgres"
	"luna/internal/domains/property/model"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/logger"
	gRepo "luna/shared/repository"
	"luna/shared/timezone"

	"github.com/lib/pq"
)

type Property interface {
	Insert(ctx context.Context, model model.Property) error
	InsertBulk(ctx context.Context, models []model.Property) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Property, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Property, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	AppendImages(ctx context.Context, id, user string, urls []string) ([]string, error)
	RemoveImages(ctx context.Context, id, user string, urls []string) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Property]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Property {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Property](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

const (
	appendImagesQuery = `UPDATE properties
		SET images = images || :urls, modified_at = :modified_at, modified_by = :modified_by
		WHERE id = :id
		RETURNING images`

	removeImagesQuery = `UPDATE properties
		SET images = ARRAY(
				SELECT elem FROM unnest(images) WITH ORDINALITY AS t(elem, idx)
				WHERE elem <> ALL(:urls)
				ORDER BY idx
			)::text[],
			modified_at = :modified_at,
			modified_by = :modified_by
		WHERE id = :id
		RETURNING images`
)

// AppendImages adds urls to the end of the gallery and returns the new gallery.
func (repo *repositoryImpl) AppendImages(ctx context.Context, id, user string, urls []string) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.AppendImages")
	defer scope.End()

	return repo.updateImages(ctx, appendImagesQuery, id, user, urls)
}

// RemoveImages drops urls from the gallery keeping the order of the rest.
func (repo *repositoryImpl) RemoveImages(ctx context.Context, id, user string, urls []string) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.RemoveImages")
	defer scope.End()

	return repo.updateImages(ctx, removeImagesQuery, id, user, urls)
}

func (repo *repositoryImpl) updateImages(ctx context.Context, query, id, user string, urls []string) ([]string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".property.updateImages")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          id,
		"urls":        pq.StringArray(urls),
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	prepare, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	var images pq.StringArray

	if err = prepare.GetContext(ctx, &images, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to update images (%s): %w", model.EntityName, err)
	}

	return images, nil
}
