package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablex/internal"
	"tablex/internal/sheet"
	"tablex/internal/util"
	"tablex/internal/xlsxtest"
)

func openFixture(t *testing.T, path string) sheet.Workbook {
	t.Helper()
	wb, err := sheet.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = wb.Close() })
	return wb
}

func TestExtractProfit(t *testing.T) {
	records, err := ExtractProfit(openFixture(t, quoteTableFixture(t)))
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "T1", first.Tag)
	assert.Equal(t, util.FloatPtr(2), first.Qty)
	assert.Equal(t, "99SQ3030QD16", first.SKU)
	assert.Equal(t, "99", first.Series)
	assert.Equal(t, util.FloatPtr(120.5), first.TopCost)
	assert.Equal(t, util.FloatPtr(410.25), first.TotalCost)
	assert.Equal(t, util.FloatPtr(0.35), first.GPM)
	assert.Equal(t, util.FloatPtr(1234.56), first.ListPrice)
	assert.Equal(t, util.FloatPtr(493.82), first.NetPrice)
	assert.Nil(t, first.RouteCost)
	assert.Equal(t, "rush", first.Notes)
	assert.Equal(t, util.FloatPtr(493.82), first.Price5020)

	second := records[1]
	assert.Equal(t, "01TC3048T", second.SKU)
	assert.Equal(t, "01", second.Series)
	assert.Nil(t, second.Qty)
	assert.Nil(t, second.ListPrice, "non-numeric list price")
	assert.Nil(t, second.FreightInCost)
	assert.Nil(t, second.FreightOutPct)
	assert.Equal(t, internal.DiscountTiers{}, second.DiscountTiers)
}

func TestExtractCatalog(t *testing.T) {
	records, err := ExtractCatalog(openFixture(t, quoteTableFixture(t)))
	require.NoError(t, err)
	require.Len(t, records, 4)

	sp := records[0]
	assert.Equal(t, "SP-99SQ3030QD16-3P-LC", sp.SKU)
	assert.Equal(t, "99", sp.Series)
	assert.Equal(t, "SQ", sp.Shape)
	assert.Equal(t, "Square", sp.ShapeName)
	assert.Equal(t, `30"x30"`, sp.Size)
	assert.Equal(t, "QD16", sp.BaseType)
	assert.True(t, sp.Special)
	require.NotNil(t, sp.PostConfig)
	assert.Equal(t, 3, *sp.PostConfig)
	assert.Equal(t, []string{"LC"}, sp.Options)
	assert.Equal(t, util.FloatPtr(80), sp.TopCost)
	assert.Equal(t, util.FloatPtr(12.75), sp.EdgeCost)
	assert.Equal(t, util.FloatPtr(1000), sp.ListPrice)
	assert.Equal(t, util.FloatPtr(400), sp.Price5020)
	assert.Equal(t, util.FloatPtr(320), sp.Price502020)
	assert.Equal(t, "special order", sp.Notes)

	rt := records[1]
	assert.Equal(t, "05RT48180U40", rt.SKU)
	assert.Equal(t, "Racetrack", rt.ShapeName)
	assert.Equal(t, util.FloatPtr(0), rt.ListPrice)
	assert.Equal(t, internal.DiscountTiers{}, rt.DiscountTiers, "zero list price has no tiers")

	for _, rec := range records[2:] {
		assert.Empty(t, rec.Shape, rec.SKU)
		assert.Empty(t, rec.ShapeName, rec.SKU)
		assert.Empty(t, rec.Size, rec.SKU)
		assert.Empty(t, rec.BaseType, rec.SKU)
		assert.False(t, rec.Special, rec.SKU)
		assert.Nil(t, rec.PostConfig, rec.SKU)
		assert.Nil(t, rec.Options, rec.SKU)
	}

	plain := records[2]
	assert.Equal(t, "ABC1234X", plain.SKU)
	assert.Equal(t, "", plain.Series)
	assert.Equal(t, util.FloatPtr(50), plain.ListPrice)
	assert.Equal(t, util.FloatPtr(20), plain.Price5020)

	series := records[3]
	assert.Equal(t, "12X-3456", series.SKU)
	assert.Equal(t, "12", series.Series)
	assert.Equal(t, "legacy", series.Notes)
}

func TestExtractMissingSheet(t *testing.T) {
	wb := openFixture(t, quoteTemplateFixture(t))

	_, err := ExtractProfit(wb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profit analysis")

	_, err = ExtractCatalog(wb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "product catalog")
}

func TestExtractQueue(t *testing.T) {
	entries, err := ExtractQueue(openFixture(t, quoteQueueFixture(t)), 2023)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	rows := make([]int, 0, len(entries))
	years := make([]int, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.RowNum)
		years = append(years, e.Year)
	}
	assert.Equal(t, []int{3, 5, 7, 9}, rows)
	// 26.* and 23.* quote numbers override the section year.
	assert.Equal(t, []int{2026, 2023, 2024, 2025}, years)

	acme := entries[0]
	assert.Equal(t, "dealer@acme.com", acme.EmailFrom)
	assert.Equal(t, "Feb 10 / 8:48pm", acme.DateTime)
	assert.Equal(t, "02-10T20:48", acme.DateNormalized)
	assert.Equal(t, "26.MAF.12", acme.QuoteNumber)
	assert.Equal(t, "Acme Co / Lobby", acme.DealerProject)
	require.NotNil(t, acme.Special)
	assert.False(t, *acme.Special)
	assert.Equal(t, "MAF", acme.Staff)
	assert.Equal(t, "Feb 12 / 9am", acme.Status)
	assert.Equal(t, "02-12T09:00", acme.StatusNormalized)

	crg := entries[1]
	assert.Equal(t, "45037", crg.DateTime)
	assert.Equal(t, "04-21T00:00", crg.DateNormalized)
	require.NotNil(t, crg.Special)
	assert.True(t, *crg.Special)
	assert.Equal(t, "SENT", crg.StatusNormalized)

	walkIn := entries[2]
	assert.Nil(t, walkIn.Special)
	assert.Equal(t, "07-11T10:04", walkIn.DateNormalized)
	assert.Equal(t, "", walkIn.Status)

	projectOnly := entries[3]
	assert.Equal(t, "", projectOnly.EmailFrom)
	assert.Equal(t, "Project only", projectOnly.DealerProject)
	assert.Equal(t, "", projectOnly.DateNormalized)
}

func TestExtractQueueDefaultYear(t *testing.T) {
	path := xlsxtest.Write(t, "queue.xlsx", xlsxtest.Sheet{Name: "Queue", Rows: [][]any{
		{"QUOTE QUEUE"},
		{"EMAIL FROM"},
		{"a@b.com", nil, "Q-1", "Acme"},
		{"c@d.com", nil, "25.BC.7", "CRG"},
	}})

	entries, err := ExtractQueue(openFixture(t, path), 2022)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 2022, entries[0].Year)
	assert.Equal(t, 2025, entries[1].Year)
}

func TestBackfillYearsCopies(t *testing.T) {
	in := []internal.QueueEntry{{QuoteNumber: "24.BC.3", Year: 2023}, {QuoteNumber: "22.BC.3", Year: 2023}}
	out := backfillYears(in)
	assert.Equal(t, 2024, out[0].Year)
	assert.Equal(t, 2023, out[1].Year, "22 is outside the recognised range")
	assert.Equal(t, 2023, in[0].Year)
}

func TestParseSpecial(t *testing.T) {
	for _, v := range []string{"YES", "yes", "Y", " y "} {
		require.NotNil(t, parseSpecial(v), v)
		assert.True(t, *parseSpecial(v), v)
	}
	for _, v := range []string{"NO", "n", "-"} {
		require.NotNil(t, parseSpecial(v), v)
		assert.False(t, *parseSpecial(v), v)
	}
	assert.Nil(t, parseSpecial(""))
	assert.Nil(t, parseSpecial("maybe"))
}

func TestExtractDropdowns(t *testing.T) {
	lists, err := ExtractDropdowns(openFixture(t, quoteTemplateFixture(t)))
	require.NoError(t, err)

	assert.Equal(t, []internal.StaffEntry{
		{Name: "Mark Fleck", Email: "mark@tablex.com", Initials: "MAF"},
		{Name: "Jane Doe", Email: "jane@tablex.com", Initials: "JD"},
		{Name: "Samatha Sander", Email: "ss@tablex.com", Initials: "SS"},
	}, lists.Staff)
	assert.Equal(t, []internal.DealerEntry{{Name: "Acme Co"}, {Name: "CRG"}}, lists.Dealers)
}
