package importer

import (
	"context"
	"strings"
)

// processToppingSection imports the topping rows of one sheet. Toppings are
// company-level entities shared across categories; the category junction row
// owns the prices, one per detected column. A flat "Charges" column yields a
// single price with no size.
func processToppingSection(ctx context.Context, run *sheetRun) error {
	sec := run.analysis.Topping
	cols := sortedColumns(sec.SizeColumns)

	colSizes := make(map[int]*uint)
	for order, col := range cols {
		label := sec.SizeColumns[col]
		if label == SingleColumn {
			colSizes[col] = nil
			continue
		}
		sizeID, err := run.sizes.Resolve(ctx, label)
		if err != nil {
			return err
		}
		if sizeID == nil {
			continue
		}
		if err := run.store.LinkSizeToCategory(ctx, run.companyID, run.categoryID, *sizeID, order); err != nil {
			return err
		}
		colSizes[col] = sizeID
	}

	displayOrder := 0
	for row := sec.HeaderRow + 1; row <= sec.EndRow && row < len(run.sheet.Rows); row++ {
		name := run.sheet.cellAt(row, 0).Text()
		if name == "" || strings.ToLower(name) == "items" {
			continue
		}

		var toppingID uint
		err := func() error {
			id, err := run.store.EnsureTopping(ctx, run.companyID, name)
			if err != nil {
				return err
			}
			toppingID = id
			junctionID, err := run.store.LinkToppingToCategory(ctx, run.companyID, run.categoryID, toppingID, displayOrder)
			if err != nil {
				return err
			}
			for _, col := range cols {
				sizeID, ok := colSizes[col]
				if !ok {
					continue
				}
				price, numeric := run.sheet.cellAt(row, col).Number()
				if !numeric {
					continue
				}
				if err := run.store.UpsertCategoryToppingPrice(ctx, run.companyID, junctionID, sizeID, price); err != nil {
					return err
				}
			}
			return nil
		}()

		if err != nil {
			run.failure(row, "topping", name, err)
		} else {
			run.success(row, "topping", name)
			run.entity("topping", toppingID, name)
		}
		displayOrder++
	}
	return nil
}
