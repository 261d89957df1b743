package importer

import (
	"context"
	"strings"
)

// Addon and choice sections share a column-pair layout: group names on the
// row after the marker at even columns, then member rows where column 2k is
// the member name and column 2k+1 its price. groupOps abstracts which family
// of store methods a section writes through.
type groupOps struct {
	kind        string
	skipWords   map[string]bool
	ensureGroup func(ctx context.Context, companyID uint, name, code string) (uint, error)
	linkGroup   func(ctx context.Context, companyID, categoryID, groupID uint, displayOrder int) (uint, error)
	upsertItem  func(ctx context.Context, companyID, groupID uint, name string, displayOrder int, defaultPrice float64) (uint, error)
	upsertPrice func(ctx context.Context, companyID, categoryGroupID, itemID uint, sizeID *uint, price float64) error
}

func addonOps(s Store) groupOps {
	return groupOps{
		kind:        "addon",
		skipWords:   map[string]bool{"items": true},
		ensureGroup: s.EnsureAddonGroup,
		linkGroup:   s.LinkAddonGroupToCategory,
		upsertItem:  s.UpsertAddon,
		upsertPrice: s.UpsertCategoryAddonPrice,
	}
}

func choiceOps(s Store) groupOps {
	return groupOps{
		kind:        "choice",
		skipWords:   map[string]bool{"items": true, "charges": true},
		ensureGroup: s.EnsureChoiceGroup,
		linkGroup:   s.LinkChoiceGroupToCategory,
		upsertItem:  s.UpsertChoice,
		upsertPrice: s.UpsertCategoryChoicePrice,
	}
}

// groupCode derives a stable code from a group name: uppercased, spaces
// collapsed to underscores, everything else non-alphanumeric dropped.
func groupCode(name string) string {
	upper := strings.ToUpper(strings.TrimSpace(name))
	var b strings.Builder
	for _, r := range upper {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		case r == ' ' || r == '\t':
			b.WriteRune('_')
		}
	}
	return b.String()
}

// boundGroup is one detected group column pair, ready to receive members.
type boundGroup struct {
	col             int
	groupID         uint
	categoryGroupID uint
	memberOrder     int
}

// processGroupSection imports one addon or choice section. Group headers sit
// at even columns; a blank member name skips that column for the row, not
// the whole row, since groups have independent lengths.
func processGroupSection(ctx context.Context, run *sheetRun, sec Section, ops groupOps) error {
	// A marker immediately followed by another section (or the sheet end)
	// has no header row, so there are no groups to create.
	groupHeaderRow := sec.StartRow + 1
	if groupHeaderRow > sec.EndRow || groupHeaderRow >= len(run.sheet.Rows) {
		return nil
	}

	var groups []*boundGroup
	headerLen := len(run.sheet.Rows[groupHeaderRow])
	for col := 0; col < headerLen; col += 2 {
		name := run.sheet.cellAt(groupHeaderRow, col).Text()
		if name == "" || ops.skipWords[strings.ToLower(name)] {
			continue
		}
		groupID, err := ops.ensureGroup(ctx, run.companyID, name, groupCode(name))
		if err != nil {
			return err
		}
		categoryGroupID, err := ops.linkGroup(ctx, run.companyID, run.categoryID, groupID, len(groups))
		if err != nil {
			return err
		}
		groups = append(groups, &boundGroup{col: col, groupID: groupID, categoryGroupID: categoryGroupID})
	}
	if len(groups) == 0 {
		return nil
	}

	for row := groupHeaderRow + 1; row <= sec.EndRow && row < len(run.sheet.Rows); row++ {
		for _, g := range groups {
			name := run.sheet.cellAt(row, g.col).Text()
			if name == "" {
				continue
			}
			price, _ := run.sheet.cellAt(row, g.col+1).Number()

			var itemID uint
			err := func() error {
				id, err := ops.upsertItem(ctx, run.companyID, g.groupID, name, g.memberOrder, price)
				if err != nil {
					return err
				}
				itemID = id
				return ops.upsertPrice(ctx, run.companyID, g.categoryGroupID, itemID, nil, price)
			}()

			if err != nil {
				run.failure(row, ops.kind, name, err)
			} else {
				run.success(row, ops.kind, name)
				run.entity(ops.kind, itemID, name)
			}
			g.memberOrder++
		}
	}
	return nil
}
