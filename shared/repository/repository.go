// Package repository implements the named-parameter queries every table-backed
// entity shares. Entity repositories embed Repository and add their own
// statements next to it.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"luna/infras/otel"
	"luna/infras/postgres"
	"luna/shared/constant"
	"luna/shared/dto"
	"luna/shared/logger"
)

var ErrMissingFilter = errors.New("refusing to run without a filter")

const (
	sortAsc  = "ASC"
	sortDesc = "DESC"
)

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

type Repository[T any] struct {
	db      *postgres.Connection
	otel    otel.Otel
	entity  string
	table   string
	key     string
	columns []string
}

func NewRepository[T any](entity, table, key string, db *postgres.Connection, ot otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:      db,
		otel:    ot,
		entity:  entity,
		table:   table,
		key:     key,
		columns: columnsOf(reflect.TypeOf(zero)),
	}
}

// columnsOf lists the db tags of a struct in field order, descending into
// embedded structs such as the audit metadata.
func columnsOf(t reflect.Type) []string {
	columns := []string{}

	for i := range t.NumField() {
		field := t.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}

func (repo *Repository[T]) scope(ctx context.Context, operation string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, operation))
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

// selectList qualifies the requested columns with the table name. No request
// means every column.
func (repo *Repository[T]) selectList(requested []string) string {
	list := []string{}

	for _, col := range repo.columns {
		if len(requested) > 0 && !slices.Contains(requested, col) {
			continue
		}

		list = append(list, repo.table+"."+col)
	}

	return strings.Join(list, ", ")
}

// orderBy only sorts on columns the entity has. Anything else leaves the
// result unordered rather than reaching the query text.
func (repo *Repository[T]) orderBy(params dto.QueryParams) string {
	if !slices.Contains(repo.columns, params.SortBy) {
		return ""
	}

	dir := sortDesc
	if strings.EqualFold(params.SortDir, sortAsc) {
		dir = sortAsc
	}

	return fmt.Sprintf(" ORDER BY %s.%s %s, %s.%s", repo.table, params.SortBy, dir, repo.table, repo.key)
}

func paginate(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return " LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return " LIMIT :limit OFFSET :offset"
}

func where(filter dto.FilterGroup) (string, map[string]any) {
	clause, args := filter.GetWhereClause()
	if clause == "" {
		return "", map[string]any{}
	}

	return " WHERE " + clause, args
}

func (repo *Repository[T]) insertStatement() string {
	placeholders := make([]string, len(repo.columns))
	for i, col := range repo.columns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) exec(ctx context.Context, scope otel.Scope, db execer, action, query string, arg any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := db.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) get(ctx context.Context, scope otel.Scope, action, query string, dest any, args map[string]any) error {
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, dest, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return err //nolint:wrapcheck
		}

		return repo.fail(scope, action, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.scope(ctx, "Insert")
	defer scope.End()

	return repo.exec(ctx, scope, repo.db.Write, "insert", repo.insertStatement(), model)
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	ctx, scope := repo.scope(ctx, "InsertBulk")
	defer scope.End()

	if len(models) == 0 {
		return nil
	}

	return repo.exec(ctx, scope, repo.db.Write, "bulk insert", repo.insertStatement(), models)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.scope(ctx, "Exist")
	defer scope.End()

	clause, args := where(filter)
	if clause == "" {
		return false, ErrMissingFilter
	}

	var exist bool

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s%s)", repo.table, clause)
	if err := repo.get(ctx, scope, "check existence", query, &exist, args); err != nil {
		return false, err
	}

	return exist, nil
}

// Get returns the zero value of T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	var model T

	clause, args := where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s LIMIT 1", repo.selectList(columns), repo.table, clause)

	err := repo.get(ctx, scope, "get", query, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	return model, err
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	clause, args := where(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s%s%s",
		repo.selectList(columns), repo.table, clause, repo.orderBy(params), paginate(params, args))

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "list", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	var count int

	clause, args := where(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.key, repo.table, clause)

	if err := repo.get(ctx, scope, "count", query, &count, args); err != nil {
		return 0, err
	}

	return count, nil
}

// Update sets the given columns on every matching row. Column names come from
// the caller's allow list, never from request input.
func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Update")
	defer scope.End()

	clause, args := where(filter)
	if clause == "" {
		return ErrMissingFilter
	}

	assignments := []string{}
	for _, col := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	maps.Copy(args, fields)

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), clause)

	return repo.exec(ctx, scope, repo.db.Write, "update", query, args)
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	ctx, scope := repo.scope(ctx, "Delete")
	defer scope.End()

	clause, args := where(filter)
	if clause == "" {
		return ErrMissingFilter
	}

	return repo.exec(ctx, scope, repo.db.Write, "delete", fmt.Sprintf("DELETE FROM %s%s", repo.table, clause), args)
}
