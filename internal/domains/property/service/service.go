package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Property=MockPropertyService

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"luna/config"
	"luna/infras/otel"
	"luna/infras/s3"
	"luna/internal/domains/property/model"
	"luna/internal/domains/property/model/dto"
	"luna/internal/domains/property/repository"
	"luna/shared"
	"luna/shared/cache"
	"luna/shared/constant"
	gDto "luna/shared/dto"
	"luna/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetProperty      = "property:get"
	cacheGetAllProperty   = "property:gets"
	cacheCountProperty    = "property:count"
	cacheFeaturedProperty = "property:featured"
)

var (
	ErrDeleteImagesFromS3 = errors.New("failed to delete images from S3")
)

type Property interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) (dto.PropertyResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Featured(ctx context.Context) ([]dto.PropertyResponse, error)
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) error
	Delete(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.UploadImageResponse, error)
	DeleteImages(ctx context.Context, id string, req dto.DeleteImagesRequest) ([]string, error)
}

type serviceImpl struct {
	repo  repository.Property
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Property {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	if id != constant.Empty {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllProperty)
	shared.InvalidateCaches(ctx, s.cache, cacheCountProperty)
	shared.InvalidateCaches(ctx, s.cache, cacheFeaturedProperty)
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	property := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, property); err != nil {
		log.Error().Err(err).Msg("failed to create property")

		return res, fmt.Errorf("failed to create property: %w", err)
	}

	res.FromModel(property)

	go s.invalidate(context.WithoutCancel(ctx), constant.Empty)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

// Featured returns the oldest listings, capped by the configured carousel size.
func (s *serviceImpl) Featured(ctx context.Context) (res []dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Featured")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheFeaturedProperty, "all")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for featured properties")

		return res, nil
	}

	params := gDto.QueryParams{
		Limit:   s.cfg.Checkout.FeaturedLimit,
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get featured properties")

		return res, fmt.Errorf("failed to get featured properties: %w", err)
	}

	res = make([]dto.PropertyResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save featured properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	res.FromModel(property)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		log.Error().Str("id", id).Msg("property not found")

		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, req.UpdatedFields(shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	go s.invalidate(context.WithoutCancel(ctx), id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	property, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for deletion")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		log.Error().Str("id", id).Msg("property not found")

		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if len(property.Images) > 0 {
			if err := s.deleteObjects(c, property.Images); err != nil {
				log.Error().Err(err).Msg("failed to delete property images from S3")
			}
		}
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.UploadImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return res, fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	directory := filepath.Join(model.EntityName, id)
	fileName := uuid.NewString() + filepath.Ext(req.Image.Filename)

	url, err := s.s3.UploadFile(ctx, bucketName, directory, req.ImageFile, req.Image, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	images, err := s.repo.AppendImages(ctx, id, shared.Actor(ctx), []string{url})
	if err != nil {
		log.Error().Err(err).Msg("failed to append property image")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), bucketName, directory, fileName); delErr != nil {
			log.Error().Err(delErr).Str("fileName", fileName).Msg("failed to roll back uploaded image")
		}

		return res, fmt.Errorf("failed to append property image: %w", err)
	}

	res.URL = url
	res.FileName = fileName
	res.Images = images

	go s.invalidate(context.WithoutCancel(ctx), id)

	return res, nil
}

func (s *serviceImpl) DeleteImages(ctx context.Context, id string, req dto.DeleteImagesRequest) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteImages")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if property exists")

		return res, fmt.Errorf("failed to check if property exists: %w", err)
	}

	if !exist {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	res, err = s.repo.RemoveImages(ctx, id, shared.Actor(ctx), req.ImageURLs)
	if err != nil {
		log.Error().Err(err).Msg("failed to remove property images")

		return res, fmt.Errorf("failed to remove property images: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidate(c, id)

		if err := s.deleteObjects(c, req.ImageURLs); err != nil {
			log.Error().Err(err).Msg("failed to delete property images from S3")
		}
	}()

	return res, nil
}

// deleteObjects removes stored objects; URLs outside the bucket are skipped.
func (s *serviceImpl) deleteObjects(ctx context.Context, urls []string) error {
	bucketName := s.cfg.External.S3.BucketName

	var deleteErrors []error

	for _, imageURL := range urls {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName == constant.Empty {
			log.Warn().Str("url", imageURL).Msg("failed to extract object name from URL")

			continue
		}

		if err := s.s3.DeleteFile(ctx, bucketName, constant.Empty, objectName); err != nil {
			log.Error().Err(err).Str("objectName", objectName).Msg("failed to delete file from S3")
			deleteErrors = append(deleteErrors, err)
		}
	}

	if len(deleteErrors) > 0 {
		return fmt.Errorf("%w: %d images", ErrDeleteImagesFromS3, len(deleteErrors))
	}

	return nil
}
