package shared

import (
	"context"
	"fmt"
	"reflect"

	"luna/shared/cache"
	"luna/shared/constant"
	"luna/shared/dto"
	"luna/shared/timezone"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

// CalculateTotalPage returns how many pages of limit rows hold total rows.
// An empty result still has one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

// Actor names who is acting on the request for audit columns.
func Actor(ctx context.Context) string {
	if actor, ok := ctx.Value(constant.ContextKeyActor).(string); ok && actor != constant.Empty {
		return actor
	}

	return constant.ContextGuest
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// BuildCacheKey joins a cache prefix with the identifier of a single entity.
func BuildCacheKey(prefix, id string) string {
	return fmt.Sprintf("%s:%s", prefix, id)
}

// BuildCacheKeyWithQuery derives a stable cache key from list parameters and filters.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	digest := xxhash.Sum64String(fmt.Sprintf("%+v|%+v", params, filter))

	return fmt.Sprintf("%s:%d:%d:%x", prefix, params.Page, params.Limit, digest)
}

// InvalidateCaches removes every key stored under prefix. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
