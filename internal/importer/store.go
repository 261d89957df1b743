package importer

import (
	"context"

	"menu-service/internal/models"
)

// CategoryFlags carries the capabilities inferred for one sheet into the
// created category row.
type CategoryFlags struct {
	HasSizes       bool
	HasToppings    bool
	HasAddons      bool
	HasFlavours    bool
	HasChoices     bool
	HasHalfAndHalf bool
}

// Store is the persistence surface the import pipeline writes through.
// Ensure* methods are idempotent lookups that create on miss and return the
// row ID; Link* methods return the junction row ID where prices hang off it.
type Store interface {
	// WipeCompany deletes the company's whole catalog, children before
	// parents, so a re-import starts clean.
	WipeCompany(ctx context.Context, companyID uint) error

	CreateCategory(ctx context.Context, companyID uint, name string, displayOrder int, flags CategoryFlags) (uint, error)

	EnsureSize(ctx context.Context, companyID uint, name, code string) (uint, error)
	LinkSizeToCategory(ctx context.Context, companyID, categoryID, sizeID uint, displayOrder int) error

	UpsertProduct(ctx context.Context, companyID, categoryID uint, name string, description *string, displayOrder int) (uint, error)
	SetProductBasePrice(ctx context.Context, productID uint, price float64) error
	UpsertProductPrice(ctx context.Context, companyID, productID, sizeID uint, price float64) error
	MarkProductCustomFlavours(ctx context.Context, productID uint) error

	EnsureTopping(ctx context.Context, companyID uint, name string) (uint, error)
	LinkToppingToCategory(ctx context.Context, companyID, categoryID, toppingID uint, displayOrder int) (uint, error)
	UpsertCategoryToppingPrice(ctx context.Context, companyID, categoryToppingID uint, sizeID *uint, price float64) error

	EnsureAddonGroup(ctx context.Context, companyID uint, name, code string) (uint, error)
	LinkAddonGroupToCategory(ctx context.Context, companyID, categoryID, addonGroupID uint, displayOrder int) (uint, error)
	UpsertAddon(ctx context.Context, companyID, addonGroupID uint, name string, displayOrder int, defaultPrice float64) (uint, error)
	UpsertCategoryAddonPrice(ctx context.Context, companyID, categoryAddonGroupID, addonID uint, sizeID *uint, price float64) error

	EnsureChoiceGroup(ctx context.Context, companyID uint, name, code string) (uint, error)
	LinkChoiceGroupToCategory(ctx context.Context, companyID, categoryID, choiceGroupID uint, displayOrder int) (uint, error)
	UpsertChoice(ctx context.Context, companyID, choiceGroupID uint, name string, displayOrder int, defaultPrice float64) (uint, error)
	UpsertCategoryChoicePrice(ctx context.Context, companyID, categoryChoiceGroupID, choiceID uint, sizeID *uint, price float64) error

	EnsureFlavour(ctx context.Context, companyID uint, name string, defaultPrice float64) (uint, error)
	LinkFlavourToCategory(ctx context.Context, companyID, categoryID, flavourID uint, displayOrder int) (uint, error)
	UpsertCategoryFlavourPrice(ctx context.Context, companyID, categoryFlavourID uint, sizeID *uint, price float64) error
	ListFlavours(ctx context.Context, companyID uint) ([]models.Flavour, error)
	LinkFlavourToProduct(ctx context.Context, companyID, productID, flavourID uint, displayOrder int) (uint, error)
	UpsertProductFlavourPrice(ctx context.Context, companyID, productFlavourID, sizeID uint, price float64) error

	UpsertBusinessHour(ctx context.Context, companyID uint, day, service, openTime, deliveryTime string) error
	UpsertSpecialComment(ctx context.Context, companyID uint, title, description string) error
	UpsertDeliveryCharge(ctx context.Context, companyID uint, charge models.DeliveryCharge) error
}
