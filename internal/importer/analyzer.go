package importer

import (
	"sort"
	"strings"
)

// SingleColumn marks a detected flat-price column (a "Charges"/"Price"
// header) as opposed to a size-labelled column.
const SingleColumn = "SINGLE"

// Section keywords are matched case-insensitively against the first cell of
// each row, exact phrase only.
var sectionKeywords = map[SectionKind][]string{
	SectionProduct: {"product", "products"},
	SectionTopping: {"topping", "toppings", "extra toppings", "extra topping"},
	SectionAddon:   {"add ons", "add-ons", "addons", "addon", "add on"},
	SectionFlavour: {"flavour", "flavours", "flavor", "flavors", "flavour choice", "flavor choice", "product flavours"},
	SectionChoice:  {"choice", "choices"},
}

// SectionKind identifies what a contiguous row range of a sheet describes.
type SectionKind int

const (
	SectionProduct SectionKind = iota
	SectionTopping
	SectionAddon
	SectionFlavour
	SectionChoice
)

func (k SectionKind) String() string {
	switch k {
	case SectionProduct:
		return "product"
	case SectionTopping:
		return "topping"
	case SectionAddon:
		return "addon"
	case SectionFlavour:
		return "flavour"
	case SectionChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// Section is one detected row range. HeaderRow is the row after the marker;
// SizeColumns maps column index to the verbatim size label (or SingleColumn).
type Section struct {
	Found       bool
	StartRow    int
	EndRow      int
	HeaderRow   int
	Title       string
	SizeColumns map[int]string
}

// Analysis is the full layout inference for one sheet. ImplicitProduct is
// set when no product marker row exists and products are assumed to occupy
// the sheet from row 0 (header at row 1).
type Analysis struct {
	HasSizes        bool
	HasToppings     bool
	HasAddons       bool
	HasFlavours     bool
	HasChoices      bool
	HasHalfAndHalf  bool
	ImplicitProduct bool

	Product Section
	Topping Section
	Addon   Section
	Flavour Section
	Choice  Section
}

func (a *Analysis) section(kind SectionKind) *Section {
	switch kind {
	case SectionProduct:
		return &a.Product
	case SectionTopping:
		return &a.Topping
	case SectionAddon:
		return &a.Addon
	case SectionFlavour:
		return &a.Flavour
	default:
		return &a.Choice
	}
}

// stripQuotes removes the quote characters used for inch marks in size
// labels (10" and 12'' both clean to 10 and 12).
func stripQuotes(s string) string {
	s = strings.ReplaceAll(s, `"`, "")
	s = strings.ReplaceAll(s, "'", "")
	return strings.TrimSpace(s)
}

// detectSizeColumns classifies a header row's cells: price-word headers
// become the SingleColumn tag, known non-size words are skipped, and
// everything else is a size label kept verbatim (minus quote characters).
func detectSizeColumns(row []Cell) map[int]string {
	cols := make(map[int]string)
	for i, cell := range row {
		raw := cell.Text()
		if raw == "" {
			continue
		}
		lower := strings.ToLower(stripQuotes(raw))
		switch lower {
		case "charges", "price", "amount", "cost":
			cols[i] = SingleColumn
			continue
		case "items", "description", "":
			continue
		}
		cols[i] = stripQuotes(raw)
	}
	return cols
}

// hasSizeLabels reports whether the detected columns include at least one
// real size label (the SingleColumn tag does not count).
func hasSizeLabels(cols map[int]string) bool {
	for _, label := range cols {
		if label != SingleColumn {
			return true
		}
	}
	return false
}

// Analyze scans a sheet for section marker rows and infers section
// boundaries, per-section size columns, and category capability flags. It is
// pure: it touches no storage and the same grid always yields the same
// result.
func Analyze(rows [][]Cell) Analysis {
	a := Analysis{
		Product: Section{StartRow: -1, EndRow: -1, HeaderRow: -1},
		Topping: Section{StartRow: -1, EndRow: -1, HeaderRow: -1},
		Addon:   Section{StartRow: -1, EndRow: -1, HeaderRow: -1},
		Flavour: Section{StartRow: -1, EndRow: -1, HeaderRow: -1},
		Choice:  Section{StartRow: -1, EndRow: -1, HeaderRow: -1},
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		first := row[0].Text()
		lower := strings.ToLower(first)

		for kind, keywords := range sectionKeywords {
			matched := false
			for _, kw := range keywords {
				if lower == kw {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
			sec := a.section(kind)
			sec.Found = true
			sec.StartRow = i
			sec.HeaderRow = i + 1
			sec.Title = first

			switch kind {
			case SectionTopping:
				a.HasToppings = true
			case SectionAddon:
				a.HasAddons = true
			case SectionFlavour:
				a.HasFlavours = true
			case SectionChoice:
				a.HasChoices = true
			}
			break
		}

		if strings.Count(lower, "half") >= 2 {
			a.HasHalfAndHalf = true
		}
	}

	// No product marker: products are assumed to fill the sheet from the
	// top, with the column header on row 1.
	if !a.Product.Found {
		a.Product.Found = true
		a.ImplicitProduct = true
		a.Product.StartRow = 0
		a.Product.HeaderRow = 1
	}

	// Each section ends one row before the next section starts; the last
	// one runs to the end of the sheet.
	kinds := []SectionKind{SectionProduct, SectionTopping, SectionAddon, SectionFlavour, SectionChoice}
	var order []*Section
	for _, kind := range kinds {
		sec := a.section(kind)
		if sec.Found {
			order = append(order, sec)
		}
	}
	sort.Slice(order, func(i, j int) bool { return order[i].StartRow < order[j].StartRow })
	for i, sec := range order {
		if i+1 < len(order) {
			sec.EndRow = order[i+1].StartRow - 1
		} else {
			sec.EndRow = len(rows) - 1
		}
	}

	if a.Product.HeaderRow >= 0 && a.Product.HeaderRow < len(rows) {
		a.Product.SizeColumns = detectSizeColumns(rows[a.Product.HeaderRow])
		if hasSizeLabels(a.Product.SizeColumns) {
			a.HasSizes = true
		}
	}

	// Toppings may use a different size vocabulary than products, so their
	// header row is classified independently.
	if a.Topping.Found && a.Topping.HeaderRow < len(rows) {
		a.Topping.SizeColumns = detectSizeColumns(rows[a.Topping.HeaderRow])
	}

	return a
}
