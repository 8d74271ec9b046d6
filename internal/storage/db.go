package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"tablex/internal"
)

// DB mirrors the extracted data into SQLite. Every Replace* call swaps the
// whole table, so the file always reflects the latest run only.
type DB struct {
	conn *sql.DB
}

var tables = map[string]bool{
	"profit_analysis": true,
	"product_catalog": true,
	"quote_queue":     true,
	"staff":           true,
	"dealers":         true,
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS profit_analysis (
  position INTEGER PRIMARY KEY,
  sku TEXT NOT NULL,
  series TEXT NOT NULL,
  tag TEXT,
  listPrice REAL,
  netPrice REAL,
  totalCost REAL,
  raw_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_profit_sku ON profit_analysis(sku);

CREATE TABLE IF NOT EXISTS product_catalog (
  position INTEGER PRIMARY KEY,
  sku TEXT NOT NULL,
  series TEXT NOT NULL,
  shape TEXT,
  shapeName TEXT,
  size TEXT,
  baseType TEXT,
  listPrice REAL,
  raw_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_catalog_sku ON product_catalog(sku);

CREATE TABLE IF NOT EXISTS quote_queue (
  rowNum INTEGER PRIMARY KEY,
  year INTEGER NOT NULL,
  quoteNumber TEXT,
  dealerProject TEXT,
  staff TEXT,
  dateNormalized TEXT,
  status TEXT,
  raw_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_queue_year ON quote_queue(year);

CREATE TABLE IF NOT EXISTS staff (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  email TEXT NOT NULL,
  initials TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS dealers (
  position INTEGER PRIMARY KEY,
  name TEXT NOT NULL
);
`

	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) ReplaceProfit(records []internal.ProfitRecord) error {
	rows := make([][]any, 0, len(records))
	for i, r := range records {
		rows = append(rows, []any{i + 1, r.SKU, r.Series, r.Tag, r.ListPrice, r.NetPrice, r.TotalCost, rawJSON(r)})
	}
	return d.replace("profit_analysis", []string{"position", "sku", "series", "tag", "listPrice", "netPrice", "totalCost", "raw_json"}, rows)
}

func (d *DB) ReplaceCatalog(records []internal.CatalogRecord) error {
	rows := make([][]any, 0, len(records))
	for i, r := range records {
		rows = append(rows, []any{i + 1, r.SKU, r.Series, r.Shape, r.ShapeName, r.Size, r.BaseType, r.ListPrice, rawJSON(r)})
	}
	return d.replace("product_catalog", []string{"position", "sku", "series", "shape", "shapeName", "size", "baseType", "listPrice", "raw_json"}, rows)
}

func (d *DB) ReplaceQueue(entries []internal.QueueEntry) error {
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{e.RowNum, e.Year, e.QuoteNumber, e.DealerProject, e.Staff, e.DateNormalized, e.Status, rawJSON(e)})
	}
	return d.replace("quote_queue", []string{"rowNum", "year", "quoteNumber", "dealerProject", "staff", "dateNormalized", "status", "raw_json"}, rows)
}

func (d *DB) ReplaceStaff(entries []internal.StaffEntry) error {
	rows := make([][]any, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []any{i + 1, e.Name, e.Email, e.Initials})
	}
	return d.replace("staff", []string{"position", "name", "email", "initials"}, rows)
}

func (d *DB) ReplaceDealers(entries []internal.DealerEntry) error {
	rows := make([][]any, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, []any{i + 1, e.Name})
	}
	return d.replace("dealers", []string{"position", "name"}, rows)
}

// Count returns the number of rows in one of the mirror tables.
func (d *DB) Count(table string) (int, error) {
	if !tables[table] {
		return 0, fmt.Errorf("unknown table: %s", table)
	}
	var n int
	err := d.conn.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)
	return n, err
}

// QueueYears returns how many queue rows fall in each year.
func (d *DB) QueueYears() (map[int]int, error) {
	rows, err := d.conn.Query(`SELECT year, COUNT(*) FROM quote_queue GROUP BY year ORDER BY year`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int]int{}
	for rows.Next() {
		var year, n int
		if err := rows.Scan(&year, &n); err != nil {
			return nil, err
		}
		out[year] = n
	}
	return out, rows.Err()
}

func (d *DB) replace(table string, columns []string, rows [][]any) error {
	if !tables[table] {
		return fmt.Errorf("unknown table: %s", table)
	}

	tx, err := d.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		return err
	}

	stmt, err := tx.Prepare(insertSQL(table, columns))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.Exec(row...); err != nil {
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}

	return tx.Commit()
}

func insertSQL(table string, columns []string) string {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
}

func rawJSON(v any) string {
	blob, _ := json.Marshal(v)
	return string(blob)
}
