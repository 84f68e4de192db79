package rowparser

import "strings"

// RawRow is one record of a vendor export: an ordered mapping from
// vendor-defined column names to string values. Column order is preserved so
// full-row fallback scans are deterministic.
type RawRow struct {
	columns []string
	fields  map[string]string
}

// NewRawRow pairs a header with one record's values. Surplus values are
// dropped; missing trailing values read as empty.
func NewRawRow(header, values []string) RawRow {
	row := RawRow{
		columns: make([]string, 0, len(header)),
		fields:  make(map[string]string, len(header)),
	}
	for i, rawName := range header {
		name := normalizeColumnName(rawName)
		if name == "" {
			continue
		}
		value := ""
		if i < len(values) {
			value = strings.TrimSpace(values[i])
		}
		if _, exists := row.fields[name]; !exists {
			row.columns = append(row.columns, name)
		}
		row.fields[name] = value
	}
	return row
}

// Get returns the trimmed value of a column, or "" when absent.
func (r RawRow) Get(column string) string {
	return r.fields[normalizeColumnName(column)]
}

// First returns the first non-empty value among candidate columns.
func (r RawRow) First(columns ...string) string {
	for _, column := range columns {
		if value := r.Get(column); value != "" {
			return value
		}
	}
	return ""
}

// Values returns every field value in column order, for fallback scans.
func (r RawRow) Values() []string {
	values := make([]string, 0, len(r.columns))
	for _, column := range r.columns {
		values = append(values, r.fields[column])
	}
	return values
}

func normalizeColumnName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
