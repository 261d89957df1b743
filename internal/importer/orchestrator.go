package importer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Importer drives a whole workbook import: wipe the company's catalog,
// then rebuild it sheet by sheet. Every non-auxiliary sheet becomes one
// category.
type Importer struct {
	store Store
	log   *logrus.Entry
}

func NewImporter(store Store, log *logrus.Entry) *Importer {
	return &Importer{store: store, log: log}
}

// Import runs the full pipeline. Only workbook-level problems (the wipe
// failing) return an error; sheet and record failures are recorded in the
// result and the run continues.
func (im *Importer) Import(ctx context.Context, companyID uint, wb *Workbook) (*ImportResult, error) {
	result := &ImportResult{
		ImportID:  uuid.NewString(),
		CompanyID: companyID,
	}

	if err := im.store.WipeCompany(ctx, companyID); err != nil {
		return nil, fmt.Errorf("failed to wipe existing catalog: %w", err)
	}

	sizes := NewSizeRegistry(im.store, companyID)
	categoryOrder := 0

	for _, sheet := range wb.Sheets {
		summary := SheetSummary{Name: sheet.Name}

		// A sheet needs at least a marker or header row plus one data row
		// to mean anything.
		if len(sheet.Rows) < 2 {
			summary.Kind = "empty"
			result.Sheets = append(result.Sheets, summary)
			continue
		}

		auxKind := ClassifyAuxSheet(sheet.Name)
		if auxKind != AuxNone {
			im.importAuxSheet(ctx, auxKind, &sheetRun{
				store:     im.store,
				sizes:     sizes,
				companyID: companyID,
				sheet:     sheet,
				result:    result,
				summary:   &summary,
				log:       im.log,
			}, &summary)
			result.Sheets = append(result.Sheets, summary)
			continue
		}

		summary.Kind = "category"
		summary.Category = sheet.Name
		im.importCategorySheet(ctx, companyID, sheet, sizes, result, &summary, &categoryOrder)
		result.Sheets = append(result.Sheets, summary)
	}

	result.Sizes = sizes.Resolved()
	return result, nil
}

func (im *Importer) importAuxSheet(ctx context.Context, kind AuxSheetKind, run *sheetRun, summary *SheetSummary) {
	var err error
	switch kind {
	case AuxBusinessHours:
		summary.Kind = "business_hours"
		err = processBusinessHours(ctx, run)
	case AuxSpecialComments:
		summary.Kind = "special_comments"
		err = processSpecialComments(ctx, run)
	case AuxDeliveryCharges:
		summary.Kind = "delivery_charges"
		err = processDeliveryCharges(ctx, run)
	}
	if err != nil {
		im.recordSheetError(run.result, summary, err)
	}
}

func (im *Importer) importCategorySheet(ctx context.Context, companyID uint, sheet Sheet, sizes *SizeRegistry, result *ImportResult, summary *SheetSummary, categoryOrder *int) {
	analysis := Analyze(sheet.Rows)

	categoryID, err := im.store.CreateCategory(ctx, companyID, sheet.Name, *categoryOrder, CategoryFlags{
		HasSizes:       analysis.HasSizes,
		HasToppings:    analysis.HasToppings,
		HasAddons:      analysis.HasAddons,
		HasFlavours:    analysis.HasFlavours,
		HasChoices:     analysis.HasChoices,
		HasHalfAndHalf: analysis.HasHalfAndHalf,
	})
	if err != nil {
		im.recordSheetError(result, summary, fmt.Errorf("failed to create category: %w", err))
		return
	}
	*categoryOrder++
	result.Categories = append(result.Categories, ImportRecord{ID: categoryID, Name: sheet.Name})

	run := &sheetRun{
		store:      im.store,
		sizes:      sizes,
		companyID:  companyID,
		categoryID: categoryID,
		sheet:      sheet,
		analysis:   analysis,
		result:     result,
		summary:    summary,
		log:        im.log,
	}

	steps := []func() error{
		func() error { return processProductSection(ctx, run) },
	}
	if analysis.Topping.Found {
		steps = append(steps, func() error { return processToppingSection(ctx, run) })
	}
	if analysis.Addon.Found {
		steps = append(steps, func() error { return processGroupSection(ctx, run, analysis.Addon, addonOps(im.store)) })
	}
	if analysis.Flavour.Found {
		steps = append(steps, func() error { return processFlavourSection(ctx, run) })
	}
	if analysis.Choice.Found {
		steps = append(steps, func() error { return processGroupSection(ctx, run, analysis.Choice, choiceOps(im.store)) })
	}

	for _, step := range steps {
		if err := step(); err != nil {
			im.recordSheetError(result, summary, err)
			return
		}
	}
}

// recordSheetError notes a sheet-level failure and lets the run move on to
// the next sheet.
func (im *Importer) recordSheetError(result *ImportResult, summary *SheetSummary, err error) {
	summary.Failed++
	result.Errors = append(result.Errors, ImportEntry{
		Sheet: summary.Name,
		Row:   -1,
		Type:  "sheet",
		Name:  summary.Name,
		Error: err.Error(),
	})
	im.log.WithField("sheet", summary.Name).WithError(err).Error("sheet import failed, skipping remainder")
}
