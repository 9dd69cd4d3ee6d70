// Package query provides SQL query construction utilities with view-to-column
// projection mapping, fluent condition building, and sort parsing.
package query

import "strings"

// ProjectionMap maps view-level field names to aliased table columns.
type ProjectionMap struct {
	schema string
	table  string
	alias  string
	order  []string
	fields map[string]string
}

// NewProjectionMap creates a ProjectionMap for the given schema, table, and alias.
func NewProjectionMap(schema, table, alias string) *ProjectionMap {
	return &ProjectionMap{
		schema: schema,
		table:  table,
		alias:  alias,
		fields: make(map[string]string),
	}
}

// Project registers a column-to-field mapping and returns the map for chaining.
func (p *ProjectionMap) Project(column, field string) *ProjectionMap {
	p.fields[field] = p.alias + "." + column
	p.order = append(p.order, field)
	return p
}

// Alias returns the table alias.
func (p *ProjectionMap) Alias() string {
	return p.alias
}

// Table returns the fully qualified table reference including its alias.
func (p *ProjectionMap) Table() string {
	return p.schema + "." + p.table + " " + p.alias
}

// Column returns the aliased column for a view field.
// Unknown fields are returned unchanged.
func (p *ProjectionMap) Column(field string) string {
	if col, ok := p.fields[field]; ok {
		return col
	}
	return field
}

// Columns returns all projected columns as a comma-separated list
// in registration order.
func (p *ProjectionMap) Columns() string {
	return strings.Join(p.ColumnList(), ", ")
}

// ColumnList returns all projected columns in registration order.
func (p *ProjectionMap) ColumnList() []string {
	list := make([]string, 0, len(p.order))
	for _, field := range p.order {
		list = append(list, p.fields[field])
	}
	return list
}

// SortField represents a single sort criterion.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending,omitempty"`
}

// ParseSortFields parses a comma-separated sort expression where a "-" prefix
// indicates descending order, e.g. "-created_at,name".
func ParseSortFields(expr string) []SortField {
	if expr == "" {
		return nil
	}

	parts := strings.Split(expr, ",")
	fields := make([]SortField, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if strings.HasPrefix(part, "-") {
			fields = append(fields, SortField{Field: part[1:], Descending: true})
		} else {
			fields = append(fields, SortField{Field: part})
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
