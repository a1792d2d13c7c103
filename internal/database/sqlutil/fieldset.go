// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package sqlutil turns sparse semantic objects into parameterized SQL
// fragments (SET assignments and WHERE predicates) with $n placeholders.
package sqlutil

import "errors"

var (
	// ErrNoData is returned when a partial update carries no fields.
	ErrNoData = errors.New("no data")

	// ErrUnknownFilter is returned when a filter key has no predicate mapping.
	ErrUnknownFilter = errors.New("unknown filter")
)

// Field is a single semantic key with its scalar value.
type Field struct {
	Key   string
	Value interface{}
}

// FieldSet is an ordered set of fields. Order drives placeholder numbering.
type FieldSet struct {
	fields []Field
}

// NewFieldSet builds a FieldSet from fields in the given order.
func NewFieldSet(fields ...Field) FieldSet {
	var fs FieldSet
	for _, f := range fields {
		fs.Set(f.Key, f.Value)
	}
	return fs
}

// Set adds key or replaces its value in place.
func (fs *FieldSet) Set(key string, value interface{}) {
	for i := range fs.fields {
		if fs.fields[i].Key == key {
			fs.fields[i].Value = value
			return
		}
	}
	fs.fields = append(fs.fields, Field{Key: key, Value: value})
}

// Len reports how many fields are set.
func (fs FieldSet) Len() int {
	return len(fs.fields)
}

// ColumnMapping maps semantic field names to physical column names.
type ColumnMapping map[string]string

// Column returns the mapped column, or key itself when unmapped.
func (m ColumnMapping) Column(key string) string {
	if col, ok := m[key]; ok && col != "" {
		return col
	}
	return key
}

// Fragment is a piece of SQL text and the positional values for its
// placeholders. Placeholders run $1..$N in the order of Values.
type Fragment struct {
	SQL    string
	Values []interface{}
}

// Next returns the index of the first placeholder not used by the fragment.
func (f Fragment) Next() int {
	return len(f.Values) + 1
}

// Empty reports whether the fragment produced no SQL.
func (f Fragment) Empty() bool {
	return f.SQL == ""
}
