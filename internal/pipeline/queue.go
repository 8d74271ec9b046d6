package pipeline

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tablex/internal"
	"tablex/internal/decode"
	"tablex/internal/sheet"
	"tablex/internal/util"
)

// Quote numbers like "23.MAF.104" carry their year.
var quoteYear = regexp.MustCompile(`^(2[3-9])\.`)

// ExtractQueue reads the first sheet of the quote queue workbook. Section
// dividers set the year for the rows below them; a year embedded in the
// quote number then overrides it.
func ExtractQueue(wb sheet.Workbook, defaultYear int) ([]internal.QueueEntry, error) {
	spec := sheetSpec{Bounds: queueBounds}
	name, err := sheet.FirstSheet(wb)
	if err != nil {
		return nil, fmt.Errorf("quote queue: %w", err)
	}
	spec.Name = name
	if err := validateColumns(spec, queueColumns.columns()); err != nil {
		return nil, err
	}

	entries, err := scanQueue(wb, spec, defaultYear)
	if err != nil {
		return nil, fmt.Errorf("quote queue: %w", err)
	}
	return backfillYears(entries), nil
}

func scanQueue(wb sheet.Workbook, spec sheetSpec, defaultYear int) ([]internal.QueueEntry, error) {
	entries := []internal.QueueEntry{}
	year := defaultYear
	err := wb.EachRow(spec.Name, spec.Bounds, func(row sheet.Row) error {
		var kind queueRowKind
		kind, year = classifyQueueRow(row, year)
		if kind == queueData {
			entries = append(entries, queueEntry(row, year))
		}
		return nil
	})
	return entries, err
}

func queueEntry(row sheet.Row, year int) internal.QueueEntry {
	received := util.CoerceString(row.Cell(queueColumns.DateTime))
	status := util.CoerceString(row.Cell(queueColumns.Status))
	return internal.QueueEntry{
		RowNum:           row.Number,
		EmailFrom:        util.CoerceString(row.Cell(queueColumns.EmailFrom)),
		DateTime:         received,
		DateNormalized:   decode.NormalizeDate(received),
		Year:             year,
		QuoteNumber:      util.CoerceString(row.Cell(queueColumns.QuoteNumber)),
		DealerProject:    util.CoerceString(row.Cell(queueColumns.DealerProject)),
		Special:          parseSpecial(util.CoerceString(row.Cell(queueColumns.Special))),
		Staff:            util.CoerceString(row.Cell(queueColumns.Staff)),
		Status:           status,
		StatusNormalized: decode.NormalizeDate(status),
	}
}

// parseSpecial maps the "SPECIAL?" column to true, false or unknown (nil).
func parseSpecial(v string) *bool {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case "YES", "Y":
		return util.BoolPtr(true)
	case "NO", "N", "-":
		return util.BoolPtr(false)
	default:
		return nil
	}
}

// backfillYears returns a copy of entries with the year taken from the quote
// number wherever it has one.
func backfillYears(entries []internal.QueueEntry) []internal.QueueEntry {
	out := make([]internal.QueueEntry, len(entries))
	for i, e := range entries {
		if y, ok := yearFromQuoteNumber(e.QuoteNumber); ok {
			e.Year = y
		}
		out[i] = e
	}
	return out
}

func yearFromQuoteNumber(qn string) (int, bool) {
	m := quoteYear.FindStringSubmatch(qn)
	if m == nil {
		return 0, false
	}
	yy, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return 2000 + yy, true
}
