package importer

import (
	"context"
	"strings"

	"menu-service/internal/models"
)

// AuxSheetKind classifies workbook sheets that carry company data instead of
// a menu category.
type AuxSheetKind int

const (
	AuxNone AuxSheetKind = iota
	AuxBusinessHours
	AuxSpecialComments
	AuxDeliveryCharges
)

var auxSheetKeywords = map[AuxSheetKind][]string{
	AuxBusinessHours:   {"business hours", "business hour", "opening hours", "opening time"},
	AuxSpecialComments: {"special comment", "special comments", "comments", "notes"},
	AuxDeliveryCharges: {"delivery charge", "delivery charges", "delivery", "delivery zone", "delivery zones"},
}

// ClassifyAuxSheet matches a sheet name against the auxiliary keywords,
// by equality or substring, case-insensitively.
func ClassifyAuxSheet(name string) AuxSheetKind {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, kind := range []AuxSheetKind{AuxBusinessHours, AuxSpecialComments, AuxDeliveryCharges} {
		for _, kw := range auxSheetKeywords[kind] {
			if lower == kw || strings.Contains(lower, kw) {
				return kind
			}
		}
	}
	return AuxNone
}

// Auxiliary sheets use fixed columns with a header on row 0 and data from
// row 1.

func processBusinessHours(ctx context.Context, run *sheetRun) error {
	for row := 1; row < len(run.sheet.Rows); row++ {
		day := run.sheet.cellAt(row, 0).Text()
		if day == "" {
			continue
		}
		service := run.sheet.cellAt(row, 1).Text()
		openTime := run.sheet.cellAt(row, 2).Text()
		deliveryTime := run.sheet.cellAt(row, 3).Text()

		if err := run.store.UpsertBusinessHour(ctx, run.companyID, day, service, openTime, deliveryTime); err != nil {
			run.failure(row, "business_hour", day, err)
		} else {
			run.success(row, "business_hour", day)
			run.entity("business_hour", 0, day)
		}
	}
	return nil
}

func processSpecialComments(ctx context.Context, run *sheetRun) error {
	for row := 1; row < len(run.sheet.Rows); row++ {
		title := run.sheet.cellAt(row, 0).Text()
		if title == "" {
			continue
		}
		description := run.sheet.cellAt(row, 1).Text()

		if err := run.store.UpsertSpecialComment(ctx, run.companyID, title, description); err != nil {
			run.failure(row, "special_comment", title, err)
		} else {
			run.success(row, "special_comment", title)
			run.entity("special_comment", 0, title)
		}
	}
	return nil
}

func processDeliveryCharges(ctx context.Context, run *sheetRun) error {
	for row := 1; row < len(run.sheet.Rows); row++ {
		postcode := run.sheet.cellAt(row, 0).Text()
		if postcode == "" {
			continue
		}

		status := strings.ToLower(run.sheet.cellAt(row, 1).Text())
		if status == "" {
			status = "include"
		}
		charge := models.DeliveryCharge{
			CompanyID: run.companyID,
			Postcode:  postcode,
			Status:    status,
		}
		// Excluded postcodes are outside the delivery area; their charge
		// columns are meaningless and stay null.
		if status != "exclude" {
			charge.MinimumOrder = optionalText(run.sheet.cellAt(row, 2))
			charge.Charge = optionalText(run.sheet.cellAt(row, 3))
			charge.DriverFee = optionalText(run.sheet.cellAt(row, 4))
			charge.FreeDeliveryAbove = optionalText(run.sheet.cellAt(row, 5))
			switch strings.ToLower(run.sheet.cellAt(row, 6).Text()) {
			case "yes", "1", "true":
				charge.DistanceLimit = 1
			}
		}

		if err := run.store.UpsertDeliveryCharge(ctx, run.companyID, charge); err != nil {
			run.failure(row, "delivery_charge", postcode, err)
		} else {
			run.success(row, "delivery_charge", postcode)
			run.entity("delivery_charge", 0, postcode)
		}
	}
	return nil
}

func optionalText(c Cell) *string {
	s := c.Text()
	if s == "" {
		return nil
	}
	return &s
}
