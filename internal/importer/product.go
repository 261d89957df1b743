package importer

import (
	"context"
	"sort"
	"strings"
)

// productFormat is the resolved layout of a product section: either one
// price column per size, or a single flat price column.
type productFormat struct {
	sized        bool
	sizeColumns  map[int]string
	priceCol     int
	dataStartRow int
}

// detectProductFormat inspects the section header. A "Sizes & Charges"
// header at column 2 means the size labels live on the next row and data
// starts one row later; anything else is the flat layout with a single
// price column (the first "Charges"/"Price" column, column 2 by default).
func detectProductFormat(sheet Sheet, sec Section) productFormat {
	marker := strings.ToLower(sheet.cellAt(sec.HeaderRow, 2).Text())
	if marker == "sizes & charges" {
		f := productFormat{
			sized:        true,
			sizeColumns:  make(map[int]string),
			dataStartRow: sec.HeaderRow + 2,
		}
		labelRow := sec.HeaderRow + 1
		if labelRow < len(sheet.Rows) {
			for col := range sheet.Rows[labelRow] {
				raw := sheet.cellAt(labelRow, col).Text()
				switch strings.ToLower(raw) {
				case "", "items", "description", "charges", "sizes & charges":
					continue
				}
				f.sizeColumns[col] = raw
			}
		}
		return f
	}

	f := productFormat{priceCol: 2, dataStartRow: sec.HeaderRow + 1}
	if sec.HeaderRow >= 0 && sec.HeaderRow < len(sheet.Rows) {
		for col := range sheet.Rows[sec.HeaderRow] {
			lower := strings.ToLower(sheet.cellAt(sec.HeaderRow, col).Text())
			if lower == "charges" || lower == "price" {
				f.priceCol = col
				break
			}
		}
	}
	return f
}

// sortedColumns returns the size column indexes in sheet order.
func sortedColumns(cols map[int]string) []int {
	out := make([]int, 0, len(cols))
	for col := range cols {
		out = append(out, col)
	}
	sort.Ints(out)
	return out
}

// processProductSection imports the product rows of one sheet. Sized
// sections first register every size column against the category; each data
// row then becomes one product with either per-size prices or a base price.
// A bad row is recorded and skipped, never fatal.
func processProductSection(ctx context.Context, run *sheetRun) error {
	sec := run.analysis.Product
	format := detectProductFormat(run.sheet, sec)

	colSizes := make(map[int]uint)
	if format.sized {
		cols := sortedColumns(format.sizeColumns)
		for order, col := range cols {
			sizeID, err := run.sizes.Resolve(ctx, format.sizeColumns[col])
			if err != nil {
				return err
			}
			if sizeID == nil {
				continue
			}
			if err := run.store.LinkSizeToCategory(ctx, run.companyID, run.categoryID, *sizeID, order); err != nil {
				return err
			}
			colSizes[col] = *sizeID
		}
	}

	// Column 1 carries the free-text description unless the layout uses it
	// for a price.
	descCol := 1
	if format.sized {
		if _, ok := format.sizeColumns[1]; ok {
			descCol = -1
		}
	} else if format.priceCol == 1 {
		descCol = -1
	}

	displayOrder := 0
	for row := format.dataStartRow; row <= sec.EndRow && row < len(run.sheet.Rows); row++ {
		name := run.sheet.cellAt(row, 0).Text()
		if name == "" || strings.ToLower(name) == "items" {
			continue
		}
		description := optionalText(run.sheet.cellAt(row, descCol))

		var productID uint
		err := func() error {
			id, err := run.store.UpsertProduct(ctx, run.companyID, run.categoryID, name, description, displayOrder)
			if err != nil {
				return err
			}
			productID = id
			if format.sized {
				for _, col := range sortedColumns(format.sizeColumns) {
					sizeID, ok := colSizes[col]
					if !ok {
						continue
					}
					price, ok := run.sheet.cellAt(row, col).Number()
					if !ok {
						continue
					}
					if err := run.store.UpsertProductPrice(ctx, run.companyID, productID, sizeID, price); err != nil {
						return err
					}
				}
				return nil
			}
			if price, ok := run.sheet.cellAt(row, format.priceCol).Number(); ok {
				return run.store.SetProductBasePrice(ctx, productID, price)
			}
			return nil
		}()

		if err != nil {
			run.failure(row, "product", name, err)
		} else {
			run.success(row, "product", name)
			run.entity("product", productID, name)
		}
		displayOrder++
	}
	return nil
}
