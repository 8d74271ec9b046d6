package pipeline

import (
	"regexp"
	"strconv"
	"strings"

	"tablex/internal/sheet"
	"tablex/internal/util"
)

const catalogMinSKULen = 6

// Annotation rows in the catalog's code column, e.g. "5% price increase + 7% premium laminate".
var catalogNotePrefixes = []string{"5%", "10%"}

// isProfitRow admits rows whose SKU column holds something with a digit.
// Trailing formula residue rows have an empty SKU.
func isProfitRow(sku string) bool {
	return util.LooksLikeCode(sku, 1)
}

func isCatalogRow(sku string) bool {
	if !util.LooksLikeCode(sku, catalogMinSKULen) {
		return false
	}
	if util.HasAnyPrefix(sku, catalogNotePrefixes...) || util.ContainsFold(sku, "price") {
		return false
	}
	return true
}

type queueRowKind int

const (
	queueSkip queueRowKind = iota
	queueDivider
	queueData
)

const queueHeaderRows = 2

var (
	dividerMarkers = []string{"COMPLETED", "QUEUE"}
	dividerYear    = regexp.MustCompile(`20(2[3-9])`)
)

// classifyQueueRow decides what a quote queue row is and returns the year in
// effect after it. Only divider rows change the year.
func classifyQueueRow(row sheet.Row, year int) (queueRowKind, int) {
	if row.Number <= queueHeaderRows {
		return queueSkip, year
	}

	sender := util.CoerceString(row.Cell(queueColumns.EmailFrom))
	if isDivider(sender) {
		if m := dividerYear.FindStringSubmatch(sender); m != nil {
			if y, err := strconv.Atoi("20" + m[1]); err == nil {
				year = y
			}
		}
		return queueDivider, year
	}

	dealer := util.CoerceString(row.Cell(queueColumns.DealerProject))
	if sender == "" && dealer == "" {
		return queueSkip, year
	}
	return queueData, year
}

func isDivider(text string) bool {
	if text == "" {
		return false
	}
	upper := strings.ToUpper(text)
	for _, marker := range dividerMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

type dropdownRowKind int

const (
	dropdownSkip dropdownRowKind = iota
	dropdownStaff
	dropdownDealer
)

// classifyDropdownRow: staff rows carry an email in the second column; any
// other named row is a dealer.
func classifyDropdownRow(name, email string) dropdownRowKind {
	if name == "" {
		return dropdownSkip
	}
	if strings.Contains(email, "@") {
		return dropdownStaff
	}
	return dropdownDealer
}
