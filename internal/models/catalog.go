package models

// Flat row shapes produced by the repository's catalog queries. Each join row
// repeats the owning entity once per price/size combination; the assembler
// folds them back into nested documents.

type CategorySizeRow struct {
	CategorySizeID uint   `json:"categorySizeId"`
	CategoryID     uint   `json:"categoryId"`
	SizeID         uint   `json:"sizeId"`
	SizeName       string `json:"sizeName"`
	SizeCode       string `json:"sizeCode"`
	DisplayOrder   int    `json:"displayOrder"`
}

type CategoryToppingRow struct {
	CategoryToppingID uint     `json:"categoryToppingId"`
	CategoryID        uint     `json:"categoryId"`
	ToppingID         uint     `json:"toppingId"`
	ToppingName       string   `json:"toppingName"`
	IsDefault         int      `json:"isDefault"`
	DisplayOrder      int      `json:"displayOrder"`
	SizeID            *uint    `json:"sizeId"`
	SizeName          *string  `json:"sizeName"`
	SizeCode          *string  `json:"sizeCode"`
	Price             *float64 `json:"price"`
}

type CategoryAddonRow struct {
	CategoryAddonGroupID uint     `json:"categoryAddonGroupId"`
	CategoryID           uint     `json:"categoryId"`
	AddonGroupID         uint     `json:"addonGroupId"`
	GroupName            string   `json:"groupName"`
	GroupCode            string   `json:"groupCode"`
	DisplayOrder         int      `json:"displayOrder"`
	AddonID              uint     `json:"addonId"`
	AddonName            string   `json:"addonName"`
	AddonDisplayOrder    int      `json:"addonDisplayOrder"`
	SizeID               *uint    `json:"sizeId"`
	SizeName             *string  `json:"sizeName"`
	SizeCode             *string  `json:"sizeCode"`
	Price                *float64 `json:"price"`
}

type CategoryChoiceRow struct {
	CategoryChoiceGroupID uint     `json:"categoryChoiceGroupId"`
	CategoryID            uint     `json:"categoryId"`
	ChoiceGroupID         uint     `json:"choiceGroupId"`
	GroupName             string   `json:"groupName"`
	GroupCode             string   `json:"groupCode"`
	DisplayOrder          int      `json:"displayOrder"`
	ChoiceID              uint     `json:"choiceId"`
	ChoiceName            string   `json:"choiceName"`
	ChoiceDisplayOrder    int      `json:"choiceDisplayOrder"`
	SizeID                *uint    `json:"sizeId"`
	SizeName              *string  `json:"sizeName"`
	SizeCode              *string  `json:"sizeCode"`
	Price                 *float64 `json:"price"`
}

type CategoryFlavourRow struct {
	CategoryFlavourID uint     `json:"categoryFlavourId"`
	CategoryID        uint     `json:"categoryId"`
	FlavourID         uint     `json:"flavourId"`
	FlavourName       string   `json:"flavourName"`
	IsDefault         int      `json:"isDefault"`
	DisplayOrder      int      `json:"displayOrder"`
	SizeID            *uint    `json:"sizeId"`
	SizeName          *string  `json:"sizeName"`
	SizeCode          *string  `json:"sizeCode"`
	Price             *float64 `json:"price"`
}

type ProductPriceRow struct {
	ProductPriceID uint    `json:"productPriceId"`
	ProductID      uint    `json:"productId"`
	SizeID         uint    `json:"sizeId"`
	SizeName       string  `json:"sizeName"`
	SizeCode       string  `json:"sizeCode"`
	Price          float64 `json:"price"`
}

type ProductFlavourRow struct {
	ProductFlavourID uint     `json:"productFlavourId"`
	ProductID        uint     `json:"productId"`
	FlavourID        uint     `json:"flavourId"`
	FlavourName      string   `json:"flavourName"`
	IsDefault        int      `json:"isDefault"`
	DisplayOrder     int      `json:"displayOrder"`
	SizeID           *uint    `json:"sizeId"`
	SizeName         *string  `json:"sizeName"`
	SizeCode         *string  `json:"sizeCode"`
	Price            *float64 `json:"price"`
}

// Nested catalog document served to storefront clients. Capability-gated
// slices are omitted, not empty, when the category lacks that capability.

type CatalogDocument struct {
	CompanyInfo CatalogCompanyInfo `json:"company_info"`
	Categories  []CatalogCategory  `json:"categories"`
}

type CatalogCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

type CatalogCompanyInfo struct {
	CompanyID       uint             `json:"company_id"`
	CompanyName     string           `json:"company_name"`
	CompanyCode     string           `json:"company_code"`
	LogoURL         *string          `json:"logo_url"`
	Email           *string          `json:"email"`
	Phone           *string          `json:"phone"`
	Address         *string          `json:"address"`
	Currency        CatalogCurrency  `json:"currency"`
	TaxPercentage   float64          `json:"tax_percentage"`
	BusinessHours   []BusinessHour   `json:"business_hours"`
	SpecialComments []SpecialComment `json:"special_comments"`
	DeliveryCharges []DeliveryCharge `json:"delivery_charges"`
}

type CategorySettings struct {
	HasSizes       bool `json:"has_sizes"`
	HasToppings    bool `json:"has_toppings"`
	HasAddons      bool `json:"has_addons"`
	HasFlavours    bool `json:"has_flavours"`
	HasChoices     bool `json:"has_choices"`
	HasHalfAndHalf bool `json:"has_half_and_half"`
}

type CatalogCategory struct {
	CategoryID   uint                 `json:"category_id"`
	CategoryName string               `json:"category_name"`
	DisplayOrder int                  `json:"display_order"`
	Settings     CategorySettings     `json:"settings"`
	Sizes        []CatalogSize        `json:"sizes,omitempty"`
	Toppings     []CatalogTopping     `json:"toppings,omitempty"`
	AddonGroups  []CatalogAddonGroup  `json:"addon_groups,omitempty"`
	ChoiceGroups []CatalogChoiceGroup `json:"choice_groups,omitempty"`
	Flavours     []CatalogFlavour     `json:"flavours,omitempty"`
	Products     []CatalogProduct     `json:"products"`
}

type CatalogSize struct {
	SizeID       uint   `json:"size_id"`
	SizeName     string `json:"size_name"`
	SizeCode     string `json:"size_code"`
	DisplayOrder int    `json:"display_order"`
}

// CatalogPrice with a nil size is a flat (non-sized) price.
type CatalogPrice struct {
	SizeID   *uint   `json:"size_id"`
	SizeName *string `json:"size_name"`
	SizeCode *string `json:"size_code"`
	Price    float64 `json:"price"`
}

type CatalogTopping struct {
	ToppingID    uint           `json:"topping_id"`
	ToppingName  string         `json:"topping_name"`
	IsDefault    bool           `json:"is_default"`
	DisplayOrder int            `json:"display_order"`
	Prices       []CatalogPrice `json:"prices"`
}

type CatalogFlavour struct {
	FlavourID    uint           `json:"flavour_id"`
	FlavourName  string         `json:"flavour_name"`
	IsDefault    bool           `json:"is_default"`
	DisplayOrder int            `json:"display_order"`
	Prices       []CatalogPrice `json:"prices"`
}

type CatalogAddon struct {
	AddonID      uint           `json:"addon_id"`
	AddonName    string         `json:"addon_name"`
	DisplayOrder int            `json:"display_order"`
	Prices       []CatalogPrice `json:"prices"`
}

type CatalogAddonGroup struct {
	AddonGroupID uint           `json:"addon_group_id"`
	GroupName    string         `json:"group_name"`
	GroupCode    string         `json:"group_code"`
	DisplayOrder int            `json:"display_order"`
	Addons       []CatalogAddon `json:"addons"`
}

type CatalogChoice struct {
	ChoiceID     uint           `json:"choice_id"`
	ChoiceName   string         `json:"choice_name"`
	DisplayOrder int            `json:"display_order"`
	Prices       []CatalogPrice `json:"prices"`
}

type CatalogChoiceGroup struct {
	ChoiceGroupID uint            `json:"choice_group_id"`
	GroupName     string          `json:"group_name"`
	GroupCode     string          `json:"group_code"`
	DisplayOrder  int             `json:"display_order"`
	Choices       []CatalogChoice `json:"choices"`
}

type ProductSettings struct {
	HasCustomFlavours bool `json:"has_custom_flavours"`
}

type CatalogProduct struct {
	ProductID    uint             `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Description  *string          `json:"description"`
	BasePrice    *float64         `json:"base_price"`
	DisplayOrder int              `json:"display_order"`
	Settings     ProductSettings  `json:"settings"`
	Prices       []CatalogPrice   `json:"prices"`
	Flavours     []CatalogFlavour `json:"flavours,omitempty"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Success bool  `json:"success"`
	Error   Error `json:"error"`
}

// Error carries error details for API responses.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
