package dto

import (
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"luna/shared/constant"
	"luna/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams holds the paging and sorting of a list request.
type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty,max=100"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positiveInt(query url.Values, key string) int {
	value, err := strconv.Atoi(query.Get(key))
	if err != nil || value < 1 {
		return 0
	}

	return value
}

// FromRequest reads page, limit, sort_by and sort_dir from the query string.
// Malformed or non-positive numbers are ignored and an unknown direction is
// dropped. With withDefaults, a missing page or limit falls back to the
// defaults. The limit is capped at MaxValueLimit either way.
func (q *QueryParams) FromRequest(r *http.Request, withDefaults bool) {
	query := r.URL.Query()

	q.Page = positiveInt(query, constant.RequestParamPage)
	q.Limit = min(positiveInt(query, constant.RequestParamLimit), constant.MaxValueLimit)
	q.SortBy = strings.TrimSpace(query.Get(constant.RequestParamSortBy))

	switch dir := strings.ToUpper(strings.TrimSpace(query.Get(constant.RequestParamSortDir))); dir {
	case SortDirAsc, SortDirDesc:
		q.SortDir = dir
	default:
		q.SortDir = constant.Empty
	}

	if !withDefaults {
		return
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = constant.DefaultValueLimit
	}
}

// Restrict rejects a sort_by outside fields, since it is written into the
// ORDER BY clause as is. A sort_by without a direction sorts descending.
func (q *QueryParams) Restrict(fields []string) error {
	if q.SortBy == constant.Empty {
		return nil
	}

	if !slices.Contains(fields, q.SortBy) {
		return failure.FieldError(constant.RequestParamSortBy, "sort_by must be one of "+strings.Join(fields, ", ")) //nolint:wrapcheck
	}

	if q.SortDir == constant.Empty {
		q.SortDir = constant.DefaultValueSortDir
	}

	return nil
}
