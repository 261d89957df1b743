package catalog

import (
	"fmt"

	"menu-service/internal/models"
)

// Input is everything the storefront document is built from: the company
// row plus the flat join rows the repository reads per concern. Row order is
// preserved, so the repository's display_order sorting carries through.
type Input struct {
	Company         models.Company
	Categories      []models.Category
	Sizes           []models.CategorySizeRow
	Toppings        []models.CategoryToppingRow
	Addons          []models.CategoryAddonRow
	Choices         []models.CategoryChoiceRow
	Flavours        []models.CategoryFlavourRow
	Products        []models.Product
	ProductPrices   []models.ProductPriceRow
	ProductFlavours []models.ProductFlavourRow
	BusinessHours   []models.BusinessHour
	SpecialComments []models.SpecialComment
	DeliveryCharges []models.DeliveryCharge
}

// Build folds the flat rows into the nested storefront document. It is pure
// and touches no storage; callers cache its output as a whole.
func Build(in Input) models.CatalogDocument {
	doc := models.CatalogDocument{
		CompanyInfo: models.CatalogCompanyInfo{
			CompanyID:   in.Company.ID,
			CompanyName: in.Company.Name,
			CompanyCode: in.Company.Code,
			LogoURL:     in.Company.LogoURL,
			Email:       in.Company.Email,
			Phone:       in.Company.Phone,
			Address:     in.Company.Address,
			Currency: models.CatalogCurrency{
				Code:   in.Company.CurrencyCode,
				Symbol: in.Company.CurrencySymbol,
			},
			TaxPercentage:   in.Company.TaxPercentage,
			BusinessHours:   in.BusinessHours,
			SpecialComments: in.SpecialComments,
			DeliveryCharges: in.DeliveryCharges,
		},
		Categories: []models.CatalogCategory{},
	}

	sizesByCategory := groupSizes(in.Sizes)
	toppingsByCategory := groupToppings(in.Toppings)
	addonsByCategory := groupAddonGroups(in.Addons)
	choicesByCategory := groupChoiceGroups(in.Choices)
	flavoursByCategory := groupCategoryFlavours(in.Flavours)
	productsByCategory := groupProducts(in)

	for _, cat := range in.Categories {
		settings := models.CategorySettings{
			HasSizes:       cat.HasSizes == 1,
			HasToppings:    cat.HasToppings == 1,
			HasAddons:      cat.HasAddons == 1,
			HasFlavours:    cat.HasFlavours == 1,
			HasChoices:     cat.HasChoices == 1,
			HasHalfAndHalf: cat.HasHalfAndHalf == 1,
		}
		out := models.CatalogCategory{
			CategoryID:   cat.ID,
			CategoryName: cat.Name,
			DisplayOrder: cat.DisplayOrder,
			Settings:     settings,
			Products:     productsByCategory[cat.ID],
		}
		if out.Products == nil {
			out.Products = []models.CatalogProduct{}
		}
		if settings.HasSizes {
			out.Sizes = sizesByCategory[cat.ID]
		}
		if settings.HasToppings {
			out.Toppings = toppingsByCategory[cat.ID]
		}
		if settings.HasAddons {
			out.AddonGroups = addonsByCategory[cat.ID]
		}
		if settings.HasChoices {
			out.ChoiceGroups = choicesByCategory[cat.ID]
		}
		if settings.HasFlavours {
			out.Flavours = flavoursByCategory[cat.ID]
		}
		doc.Categories = append(doc.Categories, out)
	}
	return doc
}

// priceFromRow builds a price entry from a join row; a row carrying neither
// a size nor a price is a bare junction with nothing to show.
func priceFromRow(sizeID *uint, sizeName, sizeCode *string, price *float64) (models.CatalogPrice, bool) {
	if sizeID == nil && price == nil {
		return models.CatalogPrice{}, false
	}
	p := models.CatalogPrice{SizeID: sizeID, SizeName: sizeName, SizeCode: sizeCode}
	if price != nil {
		p.Price = *price
	}
	return p, true
}

func groupSizes(rows []models.CategorySizeRow) map[uint][]models.CatalogSize {
	out := make(map[uint][]models.CatalogSize)
	seen := make(map[uint]bool)
	for _, r := range rows {
		if seen[r.CategorySizeID] {
			continue
		}
		seen[r.CategorySizeID] = true
		out[r.CategoryID] = append(out[r.CategoryID], models.CatalogSize{
			SizeID:       r.SizeID,
			SizeName:     r.SizeName,
			SizeCode:     r.SizeCode,
			DisplayOrder: r.DisplayOrder,
		})
	}
	return out
}

func groupToppings(rows []models.CategoryToppingRow) map[uint][]models.CatalogTopping {
	order := make(map[uint][]uint)
	byID := make(map[uint]*models.CatalogTopping)
	for _, r := range rows {
		t, ok := byID[r.CategoryToppingID]
		if !ok {
			t = &models.CatalogTopping{
				ToppingID:    r.ToppingID,
				ToppingName:  r.ToppingName,
				IsDefault:    r.IsDefault == 1,
				DisplayOrder: r.DisplayOrder,
				Prices:       []models.CatalogPrice{},
			}
			byID[r.CategoryToppingID] = t
			order[r.CategoryID] = append(order[r.CategoryID], r.CategoryToppingID)
		}
		if p, ok := priceFromRow(r.SizeID, r.SizeName, r.SizeCode, r.Price); ok {
			t.Prices = append(t.Prices, p)
		}
	}
	out := make(map[uint][]models.CatalogTopping)
	for catID, ids := range order {
		for _, id := range ids {
			out[catID] = append(out[catID], *byID[id])
		}
	}
	return out
}

func groupCategoryFlavours(rows []models.CategoryFlavourRow) map[uint][]models.CatalogFlavour {
	order := make(map[uint][]uint)
	byID := make(map[uint]*models.CatalogFlavour)
	for _, r := range rows {
		f, ok := byID[r.CategoryFlavourID]
		if !ok {
			f = &models.CatalogFlavour{
				FlavourID:    r.FlavourID,
				FlavourName:  r.FlavourName,
				IsDefault:    r.IsDefault == 1,
				DisplayOrder: r.DisplayOrder,
				Prices:       []models.CatalogPrice{},
			}
			byID[r.CategoryFlavourID] = f
			order[r.CategoryID] = append(order[r.CategoryID], r.CategoryFlavourID)
		}
		if p, ok := priceFromRow(r.SizeID, r.SizeName, r.SizeCode, r.Price); ok {
			f.Prices = append(f.Prices, p)
		}
	}
	out := make(map[uint][]models.CatalogFlavour)
	for catID, ids := range order {
		for _, id := range ids {
			out[catID] = append(out[catID], *byID[id])
		}
	}
	return out
}

func groupAddonGroups(rows []models.CategoryAddonRow) map[uint][]models.CatalogAddonGroup {
	groupOrder := make(map[uint][]uint)
	groups := make(map[uint]*models.CatalogAddonGroup)
	memberOrder := make(map[uint][]string)
	members := make(map[string]*models.CatalogAddon)
	for _, r := range rows {
		g, ok := groups[r.CategoryAddonGroupID]
		if !ok {
			g = &models.CatalogAddonGroup{
				AddonGroupID: r.AddonGroupID,
				GroupName:    r.GroupName,
				GroupCode:    r.GroupCode,
				DisplayOrder: r.DisplayOrder,
			}
			groups[r.CategoryAddonGroupID] = g
			groupOrder[r.CategoryID] = append(groupOrder[r.CategoryID], r.CategoryAddonGroupID)
		}
		key := fmt.Sprintf("%d_%d", r.CategoryAddonGroupID, r.AddonID)
		m, ok := members[key]
		if !ok {
			m = &models.CatalogAddon{
				AddonID:      r.AddonID,
				AddonName:    r.AddonName,
				DisplayOrder: r.AddonDisplayOrder,
				Prices:       []models.CatalogPrice{},
			}
			members[key] = m
			memberOrder[r.CategoryAddonGroupID] = append(memberOrder[r.CategoryAddonGroupID], key)
		}
		if p, ok := priceFromRow(r.SizeID, r.SizeName, r.SizeCode, r.Price); ok {
			m.Prices = append(m.Prices, p)
		}
	}
	out := make(map[uint][]models.CatalogAddonGroup)
	for catID, groupIDs := range groupOrder {
		for _, gid := range groupIDs {
			g := *groups[gid]
			for _, key := range memberOrder[gid] {
				g.Addons = append(g.Addons, *members[key])
			}
			out[catID] = append(out[catID], g)
		}
	}
	return out
}

func groupChoiceGroups(rows []models.CategoryChoiceRow) map[uint][]models.CatalogChoiceGroup {
	groupOrder := make(map[uint][]uint)
	groups := make(map[uint]*models.CatalogChoiceGroup)
	memberOrder := make(map[uint][]string)
	members := make(map[string]*models.CatalogChoice)
	for _, r := range rows {
		g, ok := groups[r.CategoryChoiceGroupID]
		if !ok {
			g = &models.CatalogChoiceGroup{
				ChoiceGroupID: r.ChoiceGroupID,
				GroupName:     r.GroupName,
				GroupCode:     r.GroupCode,
				DisplayOrder:  r.DisplayOrder,
			}
			groups[r.CategoryChoiceGroupID] = g
			groupOrder[r.CategoryID] = append(groupOrder[r.CategoryID], r.CategoryChoiceGroupID)
		}
		key := fmt.Sprintf("%d_%d", r.CategoryChoiceGroupID, r.ChoiceID)
		m, ok := members[key]
		if !ok {
			m = &models.CatalogChoice{
				ChoiceID:     r.ChoiceID,
				ChoiceName:   r.ChoiceName,
				DisplayOrder: r.ChoiceDisplayOrder,
				Prices:       []models.CatalogPrice{},
			}
			members[key] = m
			memberOrder[r.CategoryChoiceGroupID] = append(memberOrder[r.CategoryChoiceGroupID], key)
		}
		if p, ok := priceFromRow(r.SizeID, r.SizeName, r.SizeCode, r.Price); ok {
			m.Prices = append(m.Prices, p)
		}
	}
	out := make(map[uint][]models.CatalogChoiceGroup)
	for catID, groupIDs := range groupOrder {
		for _, gid := range groupIDs {
			g := *groups[gid]
			for _, key := range memberOrder[gid] {
				g.Choices = append(g.Choices, *members[key])
			}
			out[catID] = append(out[catID], g)
		}
	}
	return out
}

func groupProducts(in Input) map[uint][]models.CatalogProduct {
	pricesByProduct := make(map[uint][]models.CatalogPrice)
	for _, r := range in.ProductPrices {
		sizeID := r.SizeID
		sizeName := r.SizeName
		sizeCode := r.SizeCode
		pricesByProduct[r.ProductID] = append(pricesByProduct[r.ProductID], models.CatalogPrice{
			SizeID:   &sizeID,
			SizeName: &sizeName,
			SizeCode: &sizeCode,
			Price:    r.Price,
		})
	}

	flavourOrder := make(map[uint][]uint)
	flavours := make(map[uint]*models.CatalogFlavour)
	for _, r := range in.ProductFlavours {
		f, ok := flavours[r.ProductFlavourID]
		if !ok {
			f = &models.CatalogFlavour{
				FlavourID:    r.FlavourID,
				FlavourName:  r.FlavourName,
				IsDefault:    r.IsDefault == 1,
				DisplayOrder: r.DisplayOrder,
				Prices:       []models.CatalogPrice{},
			}
			flavours[r.ProductFlavourID] = f
			flavourOrder[r.ProductID] = append(flavourOrder[r.ProductID], r.ProductFlavourID)
		}
		if p, ok := priceFromRow(r.SizeID, r.SizeName, r.SizeCode, r.Price); ok {
			f.Prices = append(f.Prices, p)
		}
	}

	out := make(map[uint][]models.CatalogProduct)
	for _, p := range in.Products {
		product := models.CatalogProduct{
			ProductID:    p.ID,
			ProductName:  p.Name,
			Description:  p.Description,
			BasePrice:    p.BasePrice,
			DisplayOrder: p.DisplayOrder,
			Settings:     models.ProductSettings{HasCustomFlavours: p.HasCustomFlavours == 1},
			Prices:       pricesByProduct[p.ID],
		}
		if product.Prices == nil {
			product.Prices = []models.CatalogPrice{}
		}
		if p.HasCustomFlavours == 1 {
			for _, fid := range flavourOrder[p.ID] {
				product.Flavours = append(product.Flavours, *flavours[fid])
			}
		}
		out[p.CategoryID] = append(out[p.CategoryID], product)
	}
	return out
}
