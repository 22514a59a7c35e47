package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	// FilterArrayContainsFold matches rows whose text[] column holds Value, ignoring case.
	FilterArrayContainsFold = "array_contains_fold"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "<>",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Filter is one condition on a column. ArgName defaults to Field and must be
// unique within a group when the same column is filtered twice.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) arg() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

// GetWhereClause renders the condition with named parameters. An unknown
// operator renders nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	column, arg := f.column(), f.arg()

	if symbol, ok := comparisons[f.Operator]; ok {
		args[arg] = f.Value

		return fmt.Sprintf("%s %s :%s", column, symbol, arg), args
	}

	switch f.Operator {
	case FilterOperatorLike:
		args[arg] = "%" + likeEscaper.Replace(fmt.Sprint(f.Value)) + "%"

		return fmt.Sprintf("LOWER(%s) LIKE LOWER(:%s)", column, arg), args
	case FilterOperatorIn:
		values := reflect.ValueOf(f.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array || values.Len() == 0 {
			return "", args
		}

		names := make([]string, values.Len())
		for i := range values.Len() {
			name := fmt.Sprintf("%s_%d", arg, i)
			args[name] = values.Index(i).Interface()
			names[i] = ":" + name
		}

		return fmt.Sprintf("%s IN (%s)", column, strings.Join(names, ", ")), args
	case FilterArrayContainsFold:
		args[arg] = f.Value

		return fmt.Sprintf("EXISTS (SELECT 1 FROM unnest(%s) AS elem WHERE LOWER(elem) = LOWER(:%s))", column, arg), args
	}

	return "", args
}

// FilterGroup joins filters and nested groups with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	clauses := []string{}

	for _, item := range f.Filters {
		var (
			clause string
			arg    map[string]any
		)

		switch filter := item.(type) {
		case Filter:
			clause, arg = filter.GetWhereClause()
		case FilterGroup:
			clause, arg = filter.GetWhereClause()
		default:
			continue
		}

		if clause == "" {
			continue
		}

		clauses = append(clauses, clause)
		maps.Copy(args, arg)
	}

	if len(clauses) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(clauses, " "+operator+" ") + ")", args
}
