// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package sqlutil

import (
	"fmt"
	"strings"
)

// Predicate is a SQL predicate prefix that already embeds the quoted column
// and the comparison operator, e.g. `"salary" >`. The builder appends the
// placeholder.
type Predicate struct {
	Prefix string
	// Wildcard wraps string values as %value% for pattern-match operators.
	Wildcard bool
	// NoArg marks a complete expression such as `"equity" > 0`. It is emitted
	// only when the filter value is true and never takes a placeholder.
	NoArg bool
}

// PredicateMapping maps filter names to predicates.
type PredicateMapping map[string]Predicate

// Compare returns a plain comparison predicate.
func Compare(prefix string) Predicate {
	return Predicate{Prefix: prefix}
}

// Like returns a pattern-match predicate whose string values get wildcarded.
func Like(prefix string) Predicate {
	return Predicate{Prefix: prefix, Wildcard: true}
}

// Flag returns a predicate that is switched on by a true boolean value.
func Flag(expr string) Predicate {
	return Predicate{Prefix: expr, NoArg: true}
}

// PartialUpdate builds the assignment list of an UPDATE ... SET statement.
//
//	PartialUpdate({firstName: "Al", age: 32}, {firstName: "first_name"})
//	  => `"first_name"=$1, "age"=$2`, ["Al", 32]
func PartialUpdate(fields FieldSet, columns ColumnMapping) (Fragment, error) {
	if fields.Len() == 0 {
		return Fragment{}, ErrNoData
	}

	assignments := make([]string, 0, fields.Len())
	values := make([]interface{}, 0, fields.Len())
	for i, f := range fields.fields {
		assignments = append(assignments, fmt.Sprintf(`"%s"=$%d`, columns.Column(f.Key), i+1))
		values = append(values, f.Value)
	}

	return Fragment{
		SQL:    strings.Join(assignments, ", "),
		Values: values,
	}, nil
}

// Filters builds a WHERE clause from filters. An empty filter set, or one made
// only of switched-off flags, yields an empty fragment and callers must not
// emit a WHERE keyword.
//
//	Filters({minEmployees: 1, nameLike: "acme"}, mapping)
//	  => `WHERE "num_employees" >= $1 and "name" ILIKE $2`, [1, "%acme%"]
func Filters(filters FieldSet, predicates PredicateMapping) (Fragment, error) {
	clauses := make([]string, 0, filters.Len())
	values := make([]interface{}, 0, filters.Len())

	for _, f := range filters.fields {
		p, ok := predicates[f.Key]
		if !ok {
			return Fragment{}, fmt.Errorf("%w: %s", ErrUnknownFilter, f.Key)
		}

		if p.NoArg {
			if on, _ := f.Value.(bool); on {
				clauses = append(clauses, p.Prefix)
			}
			continue
		}

		value := f.Value
		if s, isString := value.(string); isString && p.Wildcard {
			value = "%" + s + "%"
		}
		values = append(values, value)
		clauses = append(clauses, fmt.Sprintf("%s $%d", p.Prefix, len(values)))
	}

	if len(clauses) == 0 {
		return Fragment{}, nil
	}

	return Fragment{
		SQL:    "WHERE " + strings.Join(clauses, " and "),
		Values: values,
	}, nil
}
