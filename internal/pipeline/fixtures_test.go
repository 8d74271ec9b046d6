package pipeline

import (
	"testing"

	"tablex/internal/xlsxtest"
)

func quoteTableFixture(t *testing.T) string {
	t.Helper()

	profit := [][]any{
		xlsxtest.Pad(26, map[int]any{1: "TAG", 2: "QTY", 3: "SKU", 22: "LIST"}),
		xlsxtest.Pad(26, map[int]any{
			1: "T1", 2: 2, 3: "99SQ3030QD16",
			4: 120.5, 15: 410.25, 18: 0.35, 22: 1234.56, 24: 493.82, 26: "rush",
		}),
		// Formula residue below the priced rows: costs but no SKU.
		xlsxtest.Pad(26, map[int]any{4: 0, 15: 0, 22: 0}),
		xlsxtest.Pad(26, map[int]any{3: "01TC3048T", 12: 999, 17: 999, 22: "n/a"}),
	}

	catalog := [][]any{
		xlsxtest.Pad(31, map[int]any{4: "SKU", 23: "LIST"}),
		xlsxtest.Pad(31, map[int]any{4: "5% price increase + 7% premium laminate"}),
		xlsxtest.Pad(31, map[int]any{4: "SP-99SQ3030QD16-3P-LC", 5: 80, 13: 12.75, 23: 1000, 30: "special order"}),
		xlsxtest.Pad(31, map[int]any{4: "SQ30"}),
		xlsxtest.Pad(31, map[int]any{4: "PRICE LIST 2024"}),
		xlsxtest.Pad(31, map[int]any{4: "05RT48180U40", 23: 0}),
		// Admitted codes outside the shape/size grammar.
		xlsxtest.Pad(31, map[int]any{4: "ABC1234X", 23: 50}),
		xlsxtest.Pad(31, map[int]any{4: "12X-3456", 30: "legacy"}),
	}

	return xlsxtest.Write(t, "quote-table.xlsx",
		xlsxtest.Sheet{Name: "ProfitAnalysis", Rows: profit},
		xlsxtest.Sheet{Name: "TableX", Rows: catalog},
	)
}

func quoteQueueFixture(t *testing.T) string {
	t.Helper()

	return xlsxtest.Write(t, "quote-queue.xlsx", xlsxtest.Sheet{Name: "2026 QUEUE", Rows: [][]any{
		{"2026 QUOTE QUEUE"},
		{"EMAIL FROM", "RECEIVED", "QUOTE #", "DEALER / PROJECT", "SPECIAL?", "STAFF", "STATUS"},
		{"dealer@acme.com", "Feb 10 / 8:48pm", "26.MAF.12", "Acme Co / Lobby", "NO", "MAF", "Feb 12 / 9am"},
		{"COMPLETED ALL 2024"},
		{"buyer@crg.com", 45037, "23.MAF.1", "CRG / Office", "YES", "BC", "SENT"},
		{nil, nil, nil, nil, "Y"},
		{"walk-in", "July 11 / 10:04am", "Q-77", "Walk-in", "maybe", "SS"},
		{"QUEUE 2025"},
		{nil, nil, nil, "Project only"},
	}})
}

func quoteTemplateFixture(t *testing.T) string {
	t.Helper()

	return xlsxtest.Write(t, "quote-template.xlsx",
		xlsxtest.Sheet{Name: "Quote", Rows: [][]any{{"QUOTE"}}},
		xlsxtest.Sheet{Name: "Dropdown Menus", Rows: [][]any{
			{"Mark Fleck", "mark@tablex.com"},
			{"Jane Doe", "jane@tablex.com"},
			{"Acme Co"},
			{nil, "orphan"},
			{"CRG", "Data Validation"},
			{"Samatha Sander", "ss@tablex.com"},
		}},
	)
}
