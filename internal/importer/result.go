package importer

import (
	"github.com/sirupsen/logrus"
)

// ImportEntry is one record-level outcome, success or failure.
type ImportEntry struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Type  string `json:"type"`
	Name  string `json:"name"`
	Error string `json:"error,omitempty"`
}

// ImportRecord echoes one created entity back to the caller.
type ImportRecord struct {
	ID   uint   `json:"id,omitempty"`
	Name string `json:"name"`
}

// SheetSummary reports how one sheet was classified and its record counts.
type SheetSummary struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
	Total    int    `json:"total"`
	Success  int    `json:"success"`
	Failed   int    `json:"failed"`
}

// ImportResult aggregates the whole workbook run. A failed record never
// aborts the run; it lands in Errors and processing continues. Created
// entities are echoed per kind for UI display.
type ImportResult struct {
	ImportID     string         `json:"importId"`
	CompanyID    uint           `json:"companyId"`
	TotalRecords int            `json:"totalRecords"`
	SuccessCount int            `json:"successCount"`
	FailedCount  int            `json:"failedCount"`
	Sheets       []SheetSummary `json:"sheets"`

	Categories      []ImportRecord `json:"categories"`
	Products        []ImportRecord `json:"products"`
	Sizes           []ImportRecord `json:"sizes"`
	Toppings        []ImportRecord `json:"toppings"`
	Addons          []ImportRecord `json:"addons"`
	Flavours        []ImportRecord `json:"flavours"`
	Choices         []ImportRecord `json:"choices"`
	BusinessHours   []ImportRecord `json:"businessHours"`
	SpecialComments []ImportRecord `json:"specialComments"`
	DeliveryCharges []ImportRecord `json:"deliveryCharges"`

	Success []ImportEntry `json:"success"`
	Errors  []ImportEntry `json:"errors"`
}

// sheetRun bundles everything a section processor needs for one sheet:
// the storage handle, the per-run size registry, the owning category, and
// the accumulating result.
type sheetRun struct {
	store      Store
	sizes      *SizeRegistry
	companyID  uint
	categoryID uint
	sheet      Sheet
	analysis   Analysis
	result     *ImportResult
	summary    *SheetSummary
	log        *logrus.Entry
}

func (r *sheetRun) success(row int, kind, name string) {
	r.result.TotalRecords++
	r.result.SuccessCount++
	r.summary.Total++
	r.summary.Success++
	r.result.Success = append(r.result.Success, ImportEntry{
		Sheet: r.sheet.Name,
		Row:   row,
		Type:  kind,
		Name:  name,
	})
}

func (r *sheetRun) failure(row int, kind, name string, err error) {
	r.result.TotalRecords++
	r.result.FailedCount++
	r.summary.Total++
	r.summary.Failed++
	r.result.Errors = append(r.result.Errors, ImportEntry{
		Sheet: r.sheet.Name,
		Row:   row,
		Type:  kind,
		Name:  name,
		Error: err.Error(),
	})
	r.log.WithFields(logrus.Fields{
		"sheet": r.sheet.Name,
		"row":   row,
		"type":  kind,
		"name":  name,
	}).WithError(err).Warn("record failed, continuing")
}

// entity echoes a created record into the result's per-kind list.
func (r *sheetRun) entity(kind string, id uint, name string) {
	rec := ImportRecord{ID: id, Name: name}
	switch kind {
	case "product":
		r.result.Products = append(r.result.Products, rec)
	case "topping":
		r.result.Toppings = append(r.result.Toppings, rec)
	case "addon":
		r.result.Addons = append(r.result.Addons, rec)
	case "choice":
		r.result.Choices = append(r.result.Choices, rec)
	case "flavour":
		r.result.Flavours = append(r.result.Flavours, rec)
	case "business_hour":
		r.result.BusinessHours = append(r.result.BusinessHours, rec)
	case "special_comment":
		r.result.SpecialComments = append(r.result.SpecialComments, rec)
	case "delivery_charge":
		r.result.DeliveryCharges = append(r.result.DeliveryCharges, rec)
	}
}
