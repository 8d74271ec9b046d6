package pipeline

import (
	"fmt"

	"tablex/internal"
	"tablex/internal/decode"
	"tablex/internal/sheet"
	"tablex/internal/util"
)

// ExtractProfit reads the ProfitAnalysis sheet of the quote table.
func ExtractProfit(wb sheet.Workbook) ([]internal.ProfitRecord, error) {
	if err := validateColumns(profitSheet, profitColumns.columns()); err != nil {
		return nil, err
	}

	records := []internal.ProfitRecord{}
	err := wb.EachRow(profitSheet.Name, profitSheet.Bounds, func(row sheet.Row) error {
		sku := util.CoerceString(row.Cell(profitColumns.SKU))
		if !isProfitRow(sku) {
			return nil
		}
		cost := profitColumns.Cost.read(row)
		records = append(records, internal.ProfitRecord{
			Tag:           util.CoerceString(row.Cell(profitColumns.Tag)),
			Qty:           util.CoerceNumber(row.Cell(profitColumns.Qty), nil),
			SKU:           sku,
			Series:        decode.Series(sku),
			CostFields:    cost,
			Notes:         util.CoerceString(row.Cell(profitColumns.Notes)),
			DiscountTiers: discountTiers(cost.ListPrice),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("profit analysis: %w", err)
	}
	return records, nil
}

// ExtractCatalog reads the TableX product catalog sheet of the quote table.
func ExtractCatalog(wb sheet.Workbook) ([]internal.CatalogRecord, error) {
	if err := validateColumns(catalogSheet, catalogColumns.columns()); err != nil {
		return nil, err
	}

	records := []internal.CatalogRecord{}
	err := wb.EachRow(catalogSheet.Name, catalogSheet.Bounds, func(row sheet.Row) error {
		sku := util.CoerceString(row.Cell(catalogColumns.SKU))
		if !isCatalogRow(sku) {
			return nil
		}
		parts := decode.DecodeSKU(sku)
		cost := catalogColumns.Cost.read(row)
		records = append(records, internal.CatalogRecord{
			SKU:           sku,
			Series:        decode.Series(sku),
			Shape:         parts.Shape,
			ShapeName:     parts.ShapeName,
			Size:          parts.Size,
			BaseType:      parts.BaseType,
			Special:       parts.Special,
			PostConfig:    parts.PostConfig,
			Options:       parts.Options,
			CostFields:    cost,
			EdgeCost:      util.CoerceNumber(row.Cell(catalogColumns.EdgeCost), nil),
			DiscountTiers: discountTiers(cost.ListPrice),
			Notes:         util.CoerceString(row.Cell(catalogColumns.Notes)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("product catalog: %w", err)
	}
	return records, nil
}
