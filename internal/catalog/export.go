package catalog

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	medicineSheet = "Medicines"
	hospitalSheet = "Hospitals 2025"
)

// ExportXLSX writes the medicine table and hospital list as a workbook,
// one row per medicine with its category and brand examples.
func ExportXLSX() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", medicineSheet)
	if err := f.SetSheetRow(medicineSheet, "A1", &[]string{"Medicine", "Category", "Brand examples"}); err != nil {
		return nil, err
	}
	row := 2
	for _, category := range Categories() {
		for _, med := range Medicines[category] {
			brand := Brands[med]
			if brand == "" {
				brand = "—"
			}
			cell := fmt.Sprintf("A%d", row)
			if err := f.SetSheetRow(medicineSheet, cell, &[]string{med, category, brand}); err != nil {
				return nil, err
			}
			row++
		}
	}

	if _, err := f.NewSheet(hospitalSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(hospitalSheet, "A1", &[]string{"Hospital", "City"}); err != nil {
		return nil, err
	}
	for i, h := range Hospitals2025 {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(hospitalSheet, cell, &[]string{h.Name, h.City}); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
