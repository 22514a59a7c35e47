package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luna/infras/otel/mocks"
	"luna/shared/dto"
	"luna/shared/model"
)

type listing struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Skipped string
	Ignored string `db:"-"`
	model.Metadata
}

func newListingRepository() Repository[listing] {
	return NewRepository[listing]("listing", "listings", "id", nil, mocks.NewOtel())
}

func TestColumnsOf(t *testing.T) {
	repo := newListingRepository()

	assert.Equal(t, []string{"id", "name", "created_at", "modified_at", "created_by", "modified_by"}, repo.columns)
}

func TestRepository_SelectList(t *testing.T) {
	repo := newListingRepository()

	assert.Equal(t, "listings.id, listings.name", repo.selectList([]string{"name", "id"}))
	assert.Contains(t, repo.selectList(nil), "listings.modified_by")
}

func TestRepository_InsertStatement(t *testing.T) {
	repo := newListingRepository()

	assert.Equal(t,
		"INSERT INTO listings (id, name, created_at, modified_at, created_by, modified_by) VALUES (:id, :name, :created_at, :modified_at, :created_by, :modified_by)",
		repo.insertStatement())
}

func TestRepository_OrderBy(t *testing.T) {
	repo := newListingRepository()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{name: "known column", params: dto.QueryParams{SortBy: "name", SortDir: "asc"}, want: " ORDER BY listings.name ASC, listings.id"},
		{name: "defaults to descending", params: dto.QueryParams{SortBy: "created_at"}, want: " ORDER BY listings.created_at DESC, listings.id"},
		{name: "unknown column", params: dto.QueryParams{SortBy: "name; DROP TABLE listings"}, want: ""},
		{name: "no sort", params: dto.QueryParams{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.orderBy(tt.params))
		})
	}
}

func TestPaginate(t *testing.T) {
	args := map[string]any{}
	assert.Equal(t, " LIMIT :limit OFFSET :offset", paginate(dto.QueryParams{Page: 3, Limit: 10}, args))
	assert.Equal(t, map[string]any{"limit": 10, "offset": 20}, args)

	args = map[string]any{}
	assert.Equal(t, " LIMIT :limit", paginate(dto.QueryParams{Limit: 5}, args))

	assert.Empty(t, paginate(dto.QueryParams{Page: 1}, map[string]any{}))
}

func TestWhere(t *testing.T) {
	clause, args := where(dto.FilterGroup{})
	assert.Empty(t, clause)
	assert.Empty(t, args)

	clause, args = where(dto.FilterGroup{
		Filters:  []any{dto.Filter{Field: "id", Value: "p1", Operator: dto.FilterOperatorEq, Table: "listings"}},
		Operator: dto.FilterGroupOperatorAnd,
	})
	assert.Contains(t, clause, " WHERE ")
	assert.Contains(t, clause, "listings.id")
	assert.Equal(t, "p1", args["id"])
}
