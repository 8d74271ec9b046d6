package pipeline

import (
	"fmt"

	"tablex/internal"
	"tablex/internal/sheet"
	"tablex/internal/util"
)

// sheetSpec names a worksheet and the extent it is read within.
type sheetSpec struct {
	Name   string
	Bounds sheet.Bounds
}

var (
	profitSheet   = sheetSpec{Name: "ProfitAnalysis", Bounds: sheet.Bounds{FirstRow: 2, LastRow: 1029, MaxCol: 26}}
	catalogSheet  = sheetSpec{Name: "TableX", Bounds: sheet.Bounds{FirstRow: 2, LastRow: 9068, MaxCol: 31}}
	dropdownSheet = sheetSpec{Name: "Dropdown Menus", Bounds: sheet.Bounds{FirstRow: 1, LastRow: 50, MaxCol: 3}}
	// The queue workbook has a single sheet; its name is taken from the file.
	queueBounds = sheet.Bounds{FirstRow: 1, MaxCol: 7}
)

type column struct {
	field string
	index int
}

// validateColumns checks that every column lies inside the sheet and that no
// two fields share one.
func validateColumns(spec sheetSpec, cols []column) error {
	seen := map[int]string{}
	for _, c := range cols {
		if c.index < 1 || (spec.Bounds.MaxCol > 0 && c.index > spec.Bounds.MaxCol) {
			return fmt.Errorf("%s: column %d for %s outside 1..%d", spec.Name, c.index, c.field, spec.Bounds.MaxCol)
		}
		if other, ok := seen[c.index]; ok {
			return fmt.Errorf("%s: column %d mapped to both %s and %s", spec.Name, c.index, other, c.field)
		}
		seen[c.index] = c.field
	}
	return nil
}

// 1-based column positions of the shared cost fields.
type costColumns struct {
	TopCost, RouteCost, BaseCost, NestFoldCost int
	AsbGnLcCost1, AsbGnLcCost2, AssemblyCost   int
	LFCost, FreightInCost, PackagingCost       int
	TotalCost, FreightOutPct, GPM, Commission  int
	StandardPrice, NetProfit, ListPrice        int
	DiscountFactor, NetPrice, NewNetProfit     int
}

func (c costColumns) columns() []column {
	return []column{
		{"topCost", c.TopCost}, {"routeCost", c.RouteCost}, {"baseCost", c.BaseCost},
		{"nestFoldCost", c.NestFoldCost}, {"asbGnLcCost1", c.AsbGnLcCost1}, {"asbGnLcCost2", c.AsbGnLcCost2},
		{"assemblyCost", c.AssemblyCost}, {"lfCost", c.LFCost}, {"freightInCost", c.FreightInCost},
		{"packagingCost", c.PackagingCost}, {"totalCost", c.TotalCost}, {"freightOutPct", c.FreightOutPct},
		{"gpm", c.GPM}, {"commission", c.Commission}, {"standardPrice", c.StandardPrice},
		{"netProfit", c.NetProfit}, {"listPrice", c.ListPrice}, {"discountFactor", c.DiscountFactor},
		{"netPrice", c.NetPrice}, {"newNetProfit", c.NewNetProfit},
	}
}

func (c costColumns) read(row sheet.Row) internal.CostFields {
	num := func(col int) *float64 { return util.CoerceNumber(row.Cell(col), nil) }
	return internal.CostFields{
		TopCost:        num(c.TopCost),
		RouteCost:      num(c.RouteCost),
		BaseCost:       num(c.BaseCost),
		NestFoldCost:   num(c.NestFoldCost),
		AsbGnLcCost1:   num(c.AsbGnLcCost1),
		AsbGnLcCost2:   num(c.AsbGnLcCost2),
		AssemblyCost:   num(c.AssemblyCost),
		LFCost:         num(c.LFCost),
		FreightInCost:  num(c.FreightInCost),
		PackagingCost:  num(c.PackagingCost),
		TotalCost:      num(c.TotalCost),
		FreightOutPct:  num(c.FreightOutPct),
		GPM:            num(c.GPM),
		Commission:     num(c.Commission),
		StandardPrice:  num(c.StandardPrice),
		NetProfit:      num(c.NetProfit),
		ListPrice:      num(c.ListPrice),
		DiscountFactor: num(c.DiscountFactor),
		NetPrice:       num(c.NetPrice),
		NewNetProfit:   num(c.NewNetProfit),
	}
}

// ProfitAnalysis: A tag, B qty, C SKU, D..Y costs (L and Q are unused), Z notes.
type profitLayout struct {
	Tag, Qty, SKU, Notes int
	Cost                 costColumns
}

var profitColumns = profitLayout{
	Tag: 1, Qty: 2, SKU: 3, Notes: 26,
	Cost: costColumns{
		TopCost: 4, RouteCost: 5, BaseCost: 6, NestFoldCost: 7,
		AsbGnLcCost1: 8, AsbGnLcCost2: 9, AssemblyCost: 10,
		LFCost: 11, FreightInCost: 13, PackagingCost: 14,
		TotalCost: 15, FreightOutPct: 16, GPM: 18, Commission: 19,
		StandardPrice: 20, NetProfit: 21, ListPrice: 22,
		DiscountFactor: 23, NetPrice: 24, NewNetProfit: 25,
	},
}

func (l profitLayout) columns() []column {
	return append([]column{{"tag", l.Tag}, {"qty", l.Qty}, {"sku", l.SKU}, {"notes", l.Notes}}, l.Cost.columns()...)
}

// TableX: D SKU, E..Z costs with M edge (R is unused), AD notes.
type catalogLayout struct {
	SKU, EdgeCost, Notes int
	Cost                 costColumns
}

var catalogColumns = catalogLayout{
	SKU: 4, EdgeCost: 13, Notes: 30,
	Cost: costColumns{
		TopCost: 5, RouteCost: 6, BaseCost: 7, NestFoldCost: 8,
		AsbGnLcCost1: 9, AsbGnLcCost2: 10, AssemblyCost: 11,
		LFCost: 12, FreightInCost: 14, PackagingCost: 15,
		TotalCost: 16, FreightOutPct: 17, GPM: 19, Commission: 20,
		StandardPrice: 21, NetProfit: 22, ListPrice: 23,
		DiscountFactor: 24, NetPrice: 25, NewNetProfit: 26,
	},
}

func (l catalogLayout) columns() []column {
	return append([]column{{"sku", l.SKU}, {"edgeCost", l.EdgeCost}, {"notes", l.Notes}}, l.Cost.columns()...)
}

// Quote queue: A email from, B received, C quote #, D dealer/project,
// E special?, F staff, G status.
type queueLayout struct {
	EmailFrom, DateTime, QuoteNumber, DealerProject, Special, Staff, Status int
}

var queueColumns = queueLayout{
	EmailFrom: 1, DateTime: 2, QuoteNumber: 3, DealerProject: 4, Special: 5, Staff: 6, Status: 7,
}

func (l queueLayout) columns() []column {
	return []column{
		{"emailFrom", l.EmailFrom}, {"dateTime", l.DateTime}, {"quoteNumber", l.QuoteNumber},
		{"dealerProject", l.DealerProject}, {"special", l.Special}, {"staff", l.Staff}, {"status", l.Status},
	}
}

// Dropdown Menus: A name, B email (staff) or blank/label (dealers).
type dropdownLayout struct {
	Name, Email int
}

var dropdownColumns = dropdownLayout{Name: 1, Email: 2}

func (l dropdownLayout) columns() []column {
	return []column{{"name", l.Name}, {"email", l.Email}}
}
