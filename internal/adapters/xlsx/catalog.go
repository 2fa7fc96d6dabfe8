// Package xlsx renders the catalog as a spreadsheet for offline review, a
// sibling of the JSON backup that non-technical staff can open directly.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/krisArias1990/FloristeriaSantaBarbara/internal/domain"
)

// BuildCatalog writes products and categories to a workbook with one sheet
// per collection. Images are left out on purpose: data URIs do not belong in
// cells.
func BuildCatalog(products []domain.Product, categories []domain.Category) (*excelize.File, error) {
	f := excelize.NewFile()

	const prodSheet = "Productos"
	if err := f.SetSheetName("Sheet1", prodSheet); err != nil {
		return nil, err
	}
	headers := []string{"ID", "Nombre", "Categoría", "Descripción", "Precio", "Precio temporada", "Precio vigente", "Activo"}
	for i, hname := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(prodSheet, cell, hname); err != nil {
			return nil, err
		}
	}
	names := map[string]string{}
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	for row, p := range products {
		catName := p.Category
		if n, ok := names[p.Category]; ok {
			catName = n
		}
		values := []interface{}{
			p.ID, p.Name, catName, p.Description,
			p.Price, p.SeasonalPrice, p.EffectivePrice(), p.IsActive,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(prodSheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	const catSheet = "Categorías"
	if _, err := f.NewSheet(catSheet); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(catSheet, "A1", "ID"); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(catSheet, "B1", "Nombre"); err != nil {
		return nil, err
	}
	for row, c := range categories {
		if err := f.SetCellValue(catSheet, fmt.Sprintf("A%d", row+2), c.ID); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(catSheet, fmt.Sprintf("B%d", row+2), c.Name); err != nil {
			return nil, err
		}
	}
	return f, nil
}
