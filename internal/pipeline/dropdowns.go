package pipeline

import (
	"fmt"

	"tablex/internal"
	"tablex/internal/decode"
	"tablex/internal/sheet"
	"tablex/internal/util"
)

type Dropdowns struct {
	Staff   []internal.StaffEntry
	Dealers []internal.DealerEntry
}

// ExtractDropdowns splits the template's "Dropdown Menus" sheet into the
// staff list and the dealer list. A dealer row may carry a non-email label
// in the email column ("Data Validation"); the dealer is kept and the label
// is not emitted.
func ExtractDropdowns(wb sheet.Workbook) (Dropdowns, error) {
	if err := validateColumns(dropdownSheet, dropdownColumns.columns()); err != nil {
		return Dropdowns{}, err
	}

	out := Dropdowns{Staff: []internal.StaffEntry{}, Dealers: []internal.DealerEntry{}}
	err := wb.EachRow(dropdownSheet.Name, dropdownSheet.Bounds, func(row sheet.Row) error {
		name := util.CoerceString(row.Cell(dropdownColumns.Name))
		email := util.CoerceString(row.Cell(dropdownColumns.Email))
		switch classifyDropdownRow(name, email) {
		case dropdownStaff:
			out.Staff = append(out.Staff, internal.StaffEntry{
				Name:     name,
				Email:    email,
				Initials: decode.StaffInitials(name),
			})
		case dropdownDealer:
			out.Dealers = append(out.Dealers, internal.DealerEntry{Name: name})
		}
		return nil
	})
	if err != nil {
		return Dropdowns{}, fmt.Errorf("dropdown menus: %w", err)
	}
	return out, nil
}
