package importer

import (
	"context"
	"strings"
)

var flavourHeaderSkipWords = map[string]bool{
	"":                true,
	"items":           true,
	"charges":         true,
	"price":           true,
	"sizes & charges": true,
	"sizes":           true,
	"description":     true,
}

// flavourLayout is the resolved shape of a flavour section.
type flavourLayout struct {
	productFlavours bool
	sized           bool
	sizeColumns     map[int]string
	dataStartRow    int
}

// detectFlavourLayout reads the size labels from the row after the section
// header, starting at column 1. A "Product Flavours" marker title switches
// the section into per-product flavour pairing.
func detectFlavourLayout(sheet Sheet, sec Section) flavourLayout {
	layout := flavourLayout{
		productFlavours: strings.ToLower(strings.TrimSpace(sec.Title)) == "product flavours",
		sizeColumns:     make(map[int]string),
	}

	labelRow := sec.HeaderRow + 1
	if labelRow < len(sheet.Rows) {
		for col := 1; col < len(sheet.Rows[labelRow]); col++ {
			raw := sheet.cellAt(labelRow, col).Text()
			if flavourHeaderSkipWords[strings.ToLower(raw)] {
				continue
			}
			layout.sizeColumns[col] = raw
		}
	}

	layout.sized = len(layout.sizeColumns) > 0
	if layout.sized {
		layout.dataStartRow = sec.HeaderRow + 2
	} else {
		layout.dataStartRow = sec.HeaderRow + 1
	}
	return layout
}

// processFlavourSection imports a flavour section in one of two modes. The
// default treats each row as a category-level flavour with sized or flat
// prices. A "Product Flavours" section instead creates one product and pairs
// the company's existing flavours against the price rows by position.
func processFlavourSection(ctx context.Context, run *sheetRun) error {
	sec := run.analysis.Flavour
	layout := detectFlavourLayout(run.sheet, sec)

	colSizes := make(map[int]uint)
	if layout.sized {
		cols := sortedColumns(layout.sizeColumns)
		for order, col := range cols {
			sizeID, err := run.sizes.Resolve(ctx, layout.sizeColumns[col])
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

	if layout.productFlavours && layout.sized {
		return processProductFlavours(ctx, run, sec, layout, colSizes)
	}

	displayOrder := 0
	for row := layout.dataStartRow; row <= sec.EndRow && row < len(run.sheet.Rows); row++ {
		name := run.sheet.cellAt(row, 0).Text()
		if name == "" || strings.ToLower(name) == "items" {
			continue
		}

		flatPrice, _ := run.sheet.cellAt(row, 1).Number()

		var flavourID uint
		err := func() error {
			defaultPrice := 0.0
			if !layout.sized {
				defaultPrice = flatPrice
			}
			id, err := run.store.EnsureFlavour(ctx, run.companyID, name, defaultPrice)
			if err != nil {
				return err
			}
			flavourID = id
			junctionID, err := run.store.LinkFlavourToCategory(ctx, run.companyID, run.categoryID, flavourID, displayOrder)
			if err != nil {
				return err
			}
			if !layout.sized {
				return run.store.UpsertCategoryFlavourPrice(ctx, run.companyID, junctionID, nil, flatPrice)
			}
			for _, col := range sortedColumns(layout.sizeColumns) {
				sizeID, ok := colSizes[col]
				if !ok {
					continue
				}
				cell := run.sheet.cellAt(row, col)
				if cell.IsEmpty() {
					continue
				}
				price, _ := cell.Number()
				sid := sizeID
				if err := run.store.UpsertCategoryFlavourPrice(ctx, run.companyID, junctionID, &sid, price); err != nil {
					return err
				}
			}
			return nil
		}()

		if err != nil {
			run.failure(row, "flavour", name, err)
		} else {
			run.success(row, "flavour", name)
			run.entity("flavour", flavourID, name)
		}
		displayOrder++
	}
	return nil
}

// processProductFlavours handles the per-product pairing mode: rows that
// carry at least one size price are matched positionally against the
// company's existing flavours, extras on either side dropped. The whole
// section yields a single product record.
func processProductFlavours(ctx context.Context, run *sheetRun, sec Section, layout flavourLayout, colSizes map[int]uint) error {
	cols := sortedColumns(layout.sizeColumns)

	var priceRows []int
	productName := ""
	for row := layout.dataStartRow; row <= sec.EndRow && row < len(run.sheet.Rows); row++ {
		hasPrice := false
		for _, col := range cols {
			if !run.sheet.cellAt(row, col).IsEmpty() {
				hasPrice = true
				break
			}
		}
		if !hasPrice {
			continue
		}
		priceRows = append(priceRows, row)
		if productName == "" {
			productName = run.sheet.cellAt(row, 0).Text()
		}
	}
	if len(priceRows) == 0 || productName == "" {
		return nil
	}

	productID, err := run.store.UpsertProduct(ctx, run.companyID, run.categoryID, productName, nil, 0)
	if err != nil {
		run.failure(priceRows[0], "product", productName, err)
		return nil
	}

	pairErr := func() error {
		if err := run.store.MarkProductCustomFlavours(ctx, productID); err != nil {
			return err
		}
		flavours, err := run.store.ListFlavours(ctx, run.companyID)
		if err != nil {
			return err
		}
		pairs := len(priceRows)
		if len(flavours) < pairs {
			pairs = len(flavours)
		}
		for idx := 0; idx < pairs; idx++ {
			row := priceRows[idx]
			productFlavourID, err := run.store.LinkFlavourToProduct(ctx, run.companyID, productID, flavours[idx].ID, idx)
			if err != nil {
				return err
			}
			for _, col := range cols {
				sizeID, ok := colSizes[col]
				if !ok {
					continue
				}
				price, _ := run.sheet.cellAt(row, col).Number()
				if err := run.store.UpsertProductFlavourPrice(ctx, run.companyID, productFlavourID, sizeID, price); err != nil {
					return err
				}
			}
		}
		return nil
	}()

	if pairErr != nil {
		run.failure(priceRows[0], "product", productName, pairErr)
	} else {
		run.success(priceRows[0], "product", productName)
		run.entity("product", productID, productName)
	}
	return nil
}
