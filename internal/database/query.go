package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Dialect selects the SQL flavour for statements that differ between drivers.
type Dialect int

const (
	DialectMySQL Dialect = iota
	DialectSQLite
)

// DialectOf returns the dialect matching the driver db was opened with.
func DialectOf(db *sqlx.DB) Dialect {
	if db.DriverName() == DriverSQLite {
		return DialectSQLite
	}
	return DialectMySQL
}

// BuildMultiRowInsert returns an INSERT statement with rows groups of placeholders.
func BuildMultiRowInsert(table string, columns []string, rows int) string {
	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ") + ")"
	values := make([]string, rows)
	for i := range values {
		values[i] = placeholder
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES %s",
		table, strings.Join(columns, ", "), strings.Join(values, ", "))
}

// BuildUpsert extends BuildMultiRowInsert so that rows colliding on keyColumns
// overwrite every other column.
func BuildUpsert(dialect Dialect, table string, columns, keyColumns []string, rows int) string {
	isKey := make(map[string]bool, len(keyColumns))
	for _, c := range keyColumns {
		isKey[c] = true
	}

	var updates []string
	for _, c := range columns {
		if isKey[c] {
			continue
		}
		switch dialect {
		case DialectSQLite:
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
		default:
			updates = append(updates, fmt.Sprintf("%s = VALUES(%s)", c, c))
		}
	}

	insert := BuildMultiRowInsert(table, columns, rows)
	if dialect == DialectSQLite {
		return fmt.Sprintf("%s ON CONFLICT (%s) DO UPDATE SET %s",
			insert, strings.Join(keyColumns, ", "), strings.Join(updates, ", "))
	}
	return fmt.Sprintf("%s ON DUPLICATE KEY UPDATE %s", insert, strings.Join(updates, ", "))
}
