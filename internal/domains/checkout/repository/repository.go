package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"luna/infras/otel"
	"luna/internal/domains/checkout/model"
	"luna/shared"
	"luna/shared/cache"
	"luna/shared/constant"
)

// Pending stores pending bookings by draft id. Get and Claim report
// found=false when the draft is absent or expired.
type Pending interface {
	Save(ctx context.Context, pending model.PendingBooking, ttlSeconds int) error
	Get(ctx context.Context, draftID string) (pending model.PendingBooking, found bool, err error)
	Claim(ctx context.Context, draftID string) (pending model.PendingBooking, found bool, err error)
	Delete(ctx context.Context, draftID string) error
}

type pendingImpl struct {
	cache cache.RedisCache
	otel  otel.Otel
}

func New(cache cache.RedisCache, otel otel.Otel) Pending {
	return &pendingImpl{
		cache: cache,
		otel:  otel,
	}
}

func key(draftID string) string {
	return shared.BuildCacheKey(model.PendingKeyPrefix, draftID)
}

func (repo *pendingImpl) Save(ctx context.Context, pending model.PendingBooking, ttlSeconds int) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pendingBooking.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = repo.cache.Save(ctx, key(pending.DraftID), pending, ttlSeconds); err != nil {
		return fmt.Errorf("failed to save data (%s): %w", model.EntityName, err)
	}

	return nil
}

func (repo *pendingImpl) Get(ctx context.Context, draftID string) (pending model.PendingBooking, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pendingBooking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = repo.cache.Get(ctx, key(draftID), &pending)
	if errors.Is(err, cache.Nil) {
		return pending, false, nil
	}

	if err != nil {
		return pending, false, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return pending, true, nil
}

// Claim reads and removes the draft atomically. Only one of several
// concurrent callers finds it.
func (repo *pendingImpl) Claim(ctx context.Context, draftID string) (pending model.PendingBooking, found bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pendingBooking.Claim")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = repo.cache.Take(ctx, key(draftID), &pending)
	if errors.Is(err, cache.Nil) {
		return pending, false, nil
	}

	if err != nil {
		return pending, false, fmt.Errorf("failed to claim data (%s): %w", model.EntityName, err)
	}

	return pending, true, nil
}

func (repo *pendingImpl) Delete(ctx context.Context, draftID string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".pendingBooking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = repo.cache.Delete(ctx, key(draftID)); err != nil {
		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}
