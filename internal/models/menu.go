package models

import (
	"time"

	"gorm.io/gorm"
)

// Company represents a tenant restaurant. The whole menu schema hangs off
// company_id; branches share their company's menu.
type Company struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	Name           string          `json:"name" gorm:"not null"`
	Code           string          `json:"code" gorm:"not null;uniqueIndex"`
	LogoURL        *string         `json:"logoUrl,omitempty"`
	Email          *string         `json:"email,omitempty"`
	Phone          *string         `json:"phone,omitempty"`
	Address        *string         `json:"address,omitempty"`
	CurrencyCode   string          `json:"currencyCode" gorm:"default:'GBP'"`
	CurrencySymbol string          `json:"currencySymbol" gorm:"default:'£'"`
	TaxPercentage  float64         `json:"taxPercentage" gorm:"default:0"`
	IsActive       bool            `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	DeletedAt      *gorm.DeletedAt `json:"deletedAt,omitempty" gorm:"index"`
}

// Category maps one workbook sheet. Capability flags are derived from sheet
// analysis at import time and are stored as ints (0/1) like the rest of the
// legacy schema.
type Category struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	CompanyID      uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_category_name"`
	Name           string    `json:"name" gorm:"not null;uniqueIndex:idx_company_category_name"`
	HasSizes       int       `json:"hasSizes" gorm:"not null;default:0"`
	HasToppings    int       `json:"hasToppings" gorm:"not null;default:0"`
	HasAddons      int       `json:"hasAddons" gorm:"not null;default:0"`
	HasFlavours    int       `json:"hasFlavours" gorm:"not null;default:0"`
	HasChoices     int       `json:"hasChoices" gorm:"not null;default:0"`
	HasHalfAndHalf int       `json:"hasHalfAndHalf" gorm:"not null;default:0"`
	DisplayOrder   int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive       bool      `json:"isActive" gorm:"default:true"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Size code is the verbatim sheet label with quote characters stripped.
type Size struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_size_code"`
	Name         string    `json:"name" gorm:"not null"`
	Code         string    `json:"code" gorm:"not null;uniqueIndex:idx_company_size_code"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategorySize struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;index"`
	CategoryID   uint      `json:"categoryId" gorm:"not null;uniqueIndex:idx_category_size"`
	SizeID       uint      `json:"sizeId" gorm:"not null;uniqueIndex:idx_category_size"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Product base_price is only set for single-priced sections; sized products
// carry ProductPrice rows instead.
type Product struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CompanyID         uint      `json:"companyId" gorm:"not null;index"`
	CategoryID        uint      `json:"categoryId" gorm:"not null;uniqueIndex:idx_category_product_name"`
	Name              string    `json:"name" gorm:"not null;uniqueIndex:idx_category_product_name"`
	Description       *string   `json:"description,omitempty"`
	BasePrice         *float64  `json:"basePrice,omitempty"`
	HasCustomFlavours int       `json:"hasCustomFlavours" gorm:"not null;default:0"`
	DisplayOrder      int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive          bool      `json:"isActive" gorm:"default:true"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ProductPrice struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CompanyID uint      `json:"companyId" gorm:"not null;index"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_product_size_price"`
	SizeID    uint      `json:"sizeId" gorm:"not null;uniqueIndex:idx_product_size_price"`
	Price     float64   `json:"price" gorm:"not null"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Topping is company-scoped and shared across categories via CategoryTopping.
type Topping struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_topping_name"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_company_topping_name"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategoryTopping struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;index"`
	CategoryID   uint      `json:"categoryId" gorm:"not null;uniqueIndex:idx_category_topping"`
	ToppingID    uint      `json:"toppingId" gorm:"not null;uniqueIndex:idx_category_topping"`
	IsDefault    int       `json:"isDefault" gorm:"not null;default:0"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CategoryToppingPrice with a nil SizeID is a single flat price.
type CategoryToppingPrice struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CompanyID         uint      `json:"companyId" gorm:"not null;index"`
	CategoryToppingID uint      `json:"categoryToppingId" gorm:"not null;uniqueIndex:idx_cat_topping_size"`
	SizeID            *uint     `json:"sizeId" gorm:"uniqueIndex:idx_cat_topping_size"`
	Price             float64   `json:"price" gorm:"not null"`
	IsActive          bool      `json:"isActive" gorm:"default:true"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type AddonGroup struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CompanyID uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_addon_group_code"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"not null;uniqueIndex:idx_company_addon_group_code"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Addon struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;index"`
	AddonGroupID uint      `json:"addonGroupId" gorm:"not null;uniqueIndex:idx_group_addon_name"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_group_addon_name"`
	DefaultPrice float64   `json:"defaultPrice" gorm:"not null;default:0"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategoryAddonGroup struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;index"`
	CategoryID   uint      `json:"categoryId" gorm:"not null;uniqueIndex:idx_category_addon_group"`
	AddonGroupID uint      `json:"addonGroupId" gorm:"not null;uniqueIndex:idx_category_addon_group"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CategoryAddonPrice hangs off the category junction, not the company-level
// group, so the same group can be priced differently per category.
type CategoryAddonPrice struct {
	ID                   uint      `json:"id" gorm:"primaryKey"`
	CompanyID            uint      `json:"companyId" gorm:"not null;index"`
	CategoryAddonGroupID uint      `json:"categoryAddonGroupId" gorm:"not null;uniqueIndex:idx_cat_addon_price"`
	AddonID              uint      `json:"addonId" gorm:"not null;uniqueIndex:idx_cat_addon_price"`
	SizeID               *uint     `json:"sizeId" gorm:"uniqueIndex:idx_cat_addon_price"`
	Price                float64   `json:"price" gorm:"not null"`
	IsActive             bool      `json:"isActive" gorm:"default:true"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

type ChoiceGroup struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CompanyID uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_choice_group_code"`
	Name      string    `json:"name" gorm:"not null"`
	Code      string    `json:"code" gorm:"not null;uniqueIndex:idx_company_choice_group_code"`
	IsActive  bool      `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Choice struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CompanyID     uint      `json:"companyId" gorm:"not null;index"`
	ChoiceGroupID uint      `json:"choiceGroupId" gorm:"not null;uniqueIndex:idx_group_choice_name"`
	Name          string    `json:"name" gorm:"not null;uniqueIndex:idx_group_choice_name"`
	DefaultPrice  float64   `json:"defaultPrice" gorm:"not null;default:0"`
	DisplayOrder  int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CategoryChoiceGroup struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	CompanyID     uint      `json:"companyId" gorm:"not null;index"`
	CategoryID    uint      `json:"categoryId" gorm:"not null;uniqueIndex:idx_category_choice_group"`
	ChoiceGroupID uint      `json:"choiceGroupId" gorm:"not null;uniqueIndex:idx_category_choice_group"`
	DisplayOrder  int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CategoryChoicePrice struct {
	ID                    uint      `json:"id" gorm:"primaryKey"`
	CompanyID             uint      `json:"companyId" gorm:"not null;index"`
	CategoryChoiceGroupID uint      `json:"categoryChoiceGroupId" gorm:"not null;uniqueIndex:idx_cat_choice_price"`
	ChoiceID              uint      `json:"choiceId" gorm:"not null;uniqueIndex:idx_cat_choice_price"`
	SizeID                *uint     `json:"sizeId" gorm:"uniqueIndex:idx_cat_choice_price"`
	Price                 float64   `json:"price" gorm:"not null"`
	IsActive              bool      `json:"isActive" gorm:"default:true"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

type Flavour struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_flavour_name"`
	Name         string    `json:"name" gorm:"not null;uniqueIndex:idx_company_flavour_name"`
	DefaultPrice float64   `json:"defaultPrice" gorm:"not null;default:0"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type CategoryFlavour struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;index"`
	CategoryID   uint      `json:"categoryId" gorm:"not null;uniqueIndex:idx_category_flavour"`
	FlavourID    uint      `json:"flavourId" gorm:"not null;uniqueIndex:idx_category_flavour"`
	IsDefault    int       `json:"isDefault" gorm:"not null;default:0"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CategoryFlavourPrice struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CompanyID         uint      `json:"companyId" gorm:"not null;index"`
	CategoryFlavourID uint      `json:"categoryFlavourId" gorm:"not null;uniqueIndex:idx_cat_flavour_size"`
	SizeID            *uint     `json:"sizeId" gorm:"uniqueIndex:idx_cat_flavour_size"`
	Price             float64   `json:"price" gorm:"not null"`
	IsActive          bool      `json:"isActive" gorm:"default:true"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type ProductFlavour struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;index"`
	ProductID    uint      `json:"productId" gorm:"not null;uniqueIndex:idx_product_flavour"`
	FlavourID    uint      `json:"flavourId" gorm:"not null;uniqueIndex:idx_product_flavour"`
	IsDefault    int       `json:"isDefault" gorm:"not null;default:0"`
	DisplayOrder int       `json:"displayOrder" gorm:"not null;default:0"`
	IsActive     bool      `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ProductFlavourPrice struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	CompanyID        uint      `json:"companyId" gorm:"not null;index"`
	ProductFlavourID uint      `json:"productFlavourId" gorm:"not null;uniqueIndex:idx_product_flavour_size"`
	SizeID           uint      `json:"sizeId" gorm:"not null;uniqueIndex:idx_product_flavour_size"`
	Price            float64   `json:"price" gorm:"not null"`
	IsActive         bool      `json:"isActive" gorm:"default:true"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type BusinessHour struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_day_service"`
	Day          string    `json:"day" gorm:"not null;uniqueIndex:idx_company_day_service"`
	Service      string    `json:"service" gorm:"not null;uniqueIndex:idx_company_day_service"`
	Time         string    `json:"time"`
	DeliveryTime string    `json:"deliveryTime"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type SpecialComment struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompanyID   uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_comment_title"`
	Title       string    `json:"title" gorm:"not null;uniqueIndex:idx_company_comment_title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeliveryCharge rows with Status "exclude" carry no charge data; the
// postcode is simply outside the delivery area.
type DeliveryCharge struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	CompanyID         uint      `json:"companyId" gorm:"not null;uniqueIndex:idx_company_postcode"`
	Postcode          string    `json:"postcode" gorm:"not null;uniqueIndex:idx_company_postcode"`
	Status            string    `json:"status" gorm:"not null;default:'include'"`
	MinimumOrder      *string   `json:"minimumOrder,omitempty"`
	Charge            *string   `json:"charge,omitempty"`
	DriverFee         *string   `json:"driverFee,omitempty"`
	FreeDeliveryAbove *string   `json:"freeDeliveryAbove,omitempty"`
	DistanceLimit     int       `json:"distanceLimit" gorm:"not null;default:0"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (Company) TableName() string              { return "companies" }
func (Category) TableName() string             { return "categories" }
func (Size) TableName() string                 { return "sizes" }
func (CategorySize) TableName() string         { return "category_sizes" }
func (Product) TableName() string              { return "products" }
func (ProductPrice) TableName() string         { return "product_prices" }
func (Topping) TableName() string              { return "toppings" }
func (CategoryTopping) TableName() string      { return "category_toppings" }
func (CategoryToppingPrice) TableName() string { return "category_topping_prices" }
func (AddonGroup) TableName() string           { return "addon_groups" }
func (Addon) TableName() string                { return "addons" }
func (CategoryAddonGroup) TableName() string   { return "category_addon_groups" }
func (CategoryAddonPrice) TableName() string   { return "category_addon_prices" }
func (ChoiceGroup) TableName() string          { return "choice_groups" }
func (Choice) TableName() string               { return "choices" }
func (CategoryChoiceGroup) TableName() string  { return "category_choice_groups" }
func (CategoryChoicePrice) TableName() string  { return "category_choice_prices" }
func (Flavour) TableName() string              { return "flavours" }
func (CategoryFlavour) TableName() string      { return "category_flavours" }
func (CategoryFlavourPrice) TableName() string { return "category_flavour_prices" }
func (ProductFlavour) TableName() string       { return "product_flavours" }
func (ProductFlavourPrice) TableName() string  { return "product_flavour_prices" }
func (BusinessHour) TableName() string         { return "business_hours" }
func (SpecialComment) TableName() string       { return "special_comments" }
func (DeliveryCharge) TableName() string       { return "delivery_charges" }
