package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablex/internal"
)

func fp(v float64) *float64 { return &v }

func TestReplaceTables(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "nested", "mirror.db"))
	require.NoError(t, err)
	defer db.Close()

	profit := []internal.ProfitRecord{
		{SKU: "99SQ3030QD16", Series: "99", CostFields: internal.CostFields{ListPrice: fp(100)}},
		{SKU: "01TC3048T", Series: "01"},
	}
	require.NoError(t, db.ReplaceProfit(profit))
	require.NoError(t, db.ReplaceCatalog([]internal.CatalogRecord{{SKU: "99SQ3030QD16", Series: "99", Shape: "SQ"}}))
	require.NoError(t, db.ReplaceQueue([]internal.QueueEntry{
		{RowNum: 5, Year: 2023, QuoteNumber: "23.MAF.1"},
		{RowNum: 6, Year: 2024},
		{RowNum: 9, Year: 2024},
	}))
	require.NoError(t, db.ReplaceStaff([]internal.StaffEntry{{Name: "Mark Fleck", Email: "mark@example.com", Initials: "MAF"}}))
	require.NoError(t, db.ReplaceDealers([]internal.DealerEntry{{Name: "Acme Co"}, {Name: "CRG"}}))

	want := map[string]int{"profit_analysis": 2, "product_catalog": 1, "quote_queue": 3, "staff": 1, "dealers": 2}
	for table, n := range want {
		got, err := db.Count(table)
		require.NoError(t, err)
		assert.Equal(t, n, got, table)
	}

	years, err := db.QueueYears()
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2023: 1, 2024: 2}, years)

	// A second run replaces rather than appends.
	require.NoError(t, db.ReplaceProfit(profit[:1]))
	got, err := db.Count("profit_analysis")
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestCountUnknownTable(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "mirror.db"))
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Count("sqlite_master; DROP TABLE staff")
	assert.Error(t, err)
}
