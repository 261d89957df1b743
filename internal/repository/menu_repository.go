package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"menu-service/internal/catalog"
	"menu-service/internal/importer"
	"menu-service/internal/models"
)

// Cache TTL constants
const (
	CatalogCacheTTL = 10 * time.Minute // Rebuilt on every import anyway
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

// wipeOrder lists catalog tables children-first so a company wipe never
// trips a foreign key.
var wipeOrder = []interface{}{
	&models.ProductFlavourPrice{},
	&models.ProductFlavour{},
	&models.CategoryChoicePrice{},
	&models.CategoryAddonPrice{},
	&models.Choice{},
	&models.CategoryChoiceGroup{},
	&models.ChoiceGroup{},
	&models.CategoryFlavourPrice{},
	&models.CategoryFlavour{},
	&models.Flavour{},
	&models.Addon{},
	&models.CategoryAddonGroup{},
	&models.AddonGroup{},
	&models.CategoryToppingPrice{},
	&models.CategoryTopping{},
	&models.Topping{},
	&models.ProductPrice{},
	&models.Product{},
	&models.CategorySize{},
	&models.Size{},
	&models.Category{},
	&models.BusinessHour{},
	&models.SpecialComment{},
	&models.DeliveryCharge{},
}

// MenuRepository persists the imported catalog and serves the storefront
// read side with a Redis cache in front of the assembled document.
type MenuRepository struct {
	db    *gorm.DB
	redis *redis.Client
}

var _ importer.Store = (*MenuRepository)(nil)

func NewMenuRepository(db *gorm.DB, redis *redis.Client) *MenuRepository {
	return &MenuRepository{
		db:    db,
		redis: redis,
	}
}

func catalogCacheKey(companyCode string) string {
	return fmt.Sprintf("menu:catalog:%s", companyCode)
}

// InvalidateCatalog drops the cached storefront document for a company.
func (r *MenuRepository) InvalidateCatalog(ctx context.Context, companyCode string) {
	if r.redis == nil {
		return
	}
	r.redis.Del(ctx, catalogCacheKey(companyCode))
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// ============================================================================
// Companies
// ============================================================================

func (r *MenuRepository) GetCompanyByID(ctx context.Context, id uint) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *MenuRepository) GetCompanyByCode(ctx context.Context, code string) (*models.Company, error) {
	var company models.Company
	err := r.db.WithContext(ctx).Where("code = ? AND is_active = ?", code, true).First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return &company, nil
}

// ============================================================================
// Import write side (importer.Store)
// ============================================================================

// WipeCompany deletes everything the company's catalog owns, in one
// transaction, children before parents.
func (r *MenuRepository) WipeCompany(ctx context.Context, companyID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range wipeOrder {
			if err := tx.Where("company_id = ?", companyID).Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *MenuRepository) CreateCategory(ctx context.Context, companyID uint, name string, displayOrder int, flags importer.CategoryFlags) (uint, error) {
	category := models.Category{
		CompanyID:      companyID,
		Name:           name,
		HasSizes:       boolToInt(flags.HasSizes),
		HasToppings:    boolToInt(flags.HasToppings),
		HasAddons:      boolToInt(flags.HasAddons),
		HasFlavours:    boolToInt(flags.HasFlavours),
		HasChoices:     boolToInt(flags.HasChoices),
		HasHalfAndHalf: boolToInt(flags.HasHalfAndHalf),
		DisplayOrder:   displayOrder,
		IsActive:       true,
	}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return 0, err
	}
	return category.ID, nil
}

func (r *MenuRepository) EnsureSize(ctx context.Context, companyID uint, name, code string) (uint, error) {
	var size models.Size
	err := r.db.WithContext(ctx).Where("company_id = ? AND code = ?", companyID, code).First(&size).Error
	if err == nil {
		return size.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	size = models.Size{CompanyID: companyID, Name: name, Code: code, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&size).Error; err != nil {
		return 0, err
	}
	return size.ID, nil
}

func (r *MenuRepository) LinkSizeToCategory(ctx context.Context, companyID, categoryID, sizeID uint, displayOrder int) error {
	var link models.CategorySize
	err := r.db.WithContext(ctx).Where("category_id = ? AND size_id = ?", categoryID, sizeID).First(&link).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	link = models.CategorySize{
		CompanyID:    companyID,
		CategoryID:   categoryID,
		SizeID:       sizeID,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	return r.db.WithContext(ctx).Create(&link).Error
}

func (r *MenuRepository) UpsertProduct(ctx context.Context, companyID, categoryID uint, name string, description *string, displayOrder int) (uint, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("category_id = ? AND name = ?", categoryID, name).First(&product).Error
	if err == nil {
		return product.ID, r.db.WithContext(ctx).Model(&product).Update("description", description).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	product = models.Product{
		CompanyID:    companyID,
		CategoryID:   categoryID,
		Name:         name,
		Description:  description,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&product).Error; err != nil {
		return 0, err
	}
	return product.ID, nil
}

func (r *MenuRepository) SetProductBasePrice(ctx context.Context, productID uint, price float64) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("base_price", price).Error
}

func (r *MenuRepository) UpsertProductPrice(ctx context.Context, companyID, productID, sizeID uint, price float64) error {
	var existing models.ProductPrice
	err := r.db.WithContext(ctx).Where("product_id = ? AND size_id = ?", productID, sizeID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("price", price).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.ProductPrice{
		CompanyID: companyID,
		ProductID: productID,
		SizeID:    sizeID,
		Price:     price,
		IsActive:  true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) MarkProductCustomFlavours(ctx context.Context, productID uint) error {
	return r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("has_custom_flavours", 1).Error
}

func (r *MenuRepository) EnsureTopping(ctx context.Context, companyID uint, name string) (uint, error) {
	var topping models.Topping
	err := r.db.WithContext(ctx).Where("company_id = ? AND name = ?", companyID, name).First(&topping).Error
	if err == nil {
		return topping.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	topping = models.Topping{CompanyID: companyID, Name: name, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&topping).Error; err != nil {
		return 0, err
	}
	return topping.ID, nil
}

func (r *MenuRepository) LinkToppingToCategory(ctx context.Context, companyID, categoryID, toppingID uint, displayOrder int) (uint, error) {
	var link models.CategoryTopping
	err := r.db.WithContext(ctx).Where("category_id = ? AND topping_id = ?", categoryID, toppingID).First(&link).Error
	if err == nil {
		return link.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	link = models.CategoryTopping{
		CompanyID:    companyID,
		CategoryID:   categoryID,
		ToppingID:    toppingID,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return 0, err
	}
	return link.ID, nil
}

// sizeScope matches a nullable size column; NULL means the flat price row.
func sizeScope(query *gorm.DB, sizeID *uint) *gorm.DB {
	if sizeID == nil {
		return query.Where("size_id IS NULL")
	}
	return query.Where("size_id = ?", *sizeID)
}

func (r *MenuRepository) UpsertCategoryToppingPrice(ctx context.Context, companyID, categoryToppingID uint, sizeID *uint, price float64) error {
	var existing models.CategoryToppingPrice
	query := r.db.WithContext(ctx).Where("category_topping_id = ?", categoryToppingID)
	err := sizeScope(query, sizeID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("price", price).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.CategoryToppingPrice{
		CompanyID:         companyID,
		CategoryToppingID: categoryToppingID,
		SizeID:            sizeID,
		Price:             price,
		IsActive:          true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) EnsureAddonGroup(ctx context.Context, companyID uint, name, code string) (uint, error) {
	var group models.AddonGroup
	err := r.db.WithContext(ctx).Where("company_id = ? AND code = ?", companyID, code).First(&group).Error
	if err == nil {
		return group.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	group = models.AddonGroup{CompanyID: companyID, Name: name, Code: code, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&group).Error; err != nil {
		return 0, err
	}
	return group.ID, nil
}

func (r *MenuRepository) LinkAddonGroupToCategory(ctx context.Context, companyID, categoryID, addonGroupID uint, displayOrder int) (uint, error) {
	var link models.CategoryAddonGroup
	err := r.db.WithContext(ctx).Where("category_id = ? AND addon_group_id = ?", categoryID, addonGroupID).First(&link).Error
	if err == nil {
		return link.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	link = models.CategoryAddonGroup{
		CompanyID:    companyID,
		CategoryID:   categoryID,
		AddonGroupID: addonGroupID,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return 0, err
	}
	return link.ID, nil
}

func (r *MenuRepository) UpsertAddon(ctx context.Context, companyID, addonGroupID uint, name string, displayOrder int, defaultPrice float64) (uint, error) {
	var addon models.Addon
	err := r.db.WithContext(ctx).Where("addon_group_id = ? AND name = ?", addonGroupID, name).First(&addon).Error
	if err == nil {
		return addon.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	addon = models.Addon{
		CompanyID:    companyID,
		AddonGroupID: addonGroupID,
		Name:         name,
		DefaultPrice: defaultPrice,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&addon).Error; err != nil {
		return 0, err
	}
	return addon.ID, nil
}

func (r *MenuRepository) UpsertCategoryAddonPrice(ctx context.Context, companyID, categoryAddonGroupID, addonID uint, sizeID *uint, price float64) error {
	var existing models.CategoryAddonPrice
	query := r.db.WithContext(ctx).
		Where("category_addon_group_id = ? AND addon_id = ?", categoryAddonGroupID, addonID)
	err := sizeScope(query, sizeID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("price", price).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.CategoryAddonPrice{
		CompanyID:            companyID,
		CategoryAddonGroupID: categoryAddonGroupID,
		AddonID:              addonID,
		SizeID:               sizeID,
		Price:                price,
		IsActive:             true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) EnsureChoiceGroup(ctx context.Context, companyID uint, name, code string) (uint, error) {
	var group models.ChoiceGroup
	err := r.db.WithContext(ctx).Where("company_id = ? AND code = ?", companyID, code).First(&group).Error
	if err == nil {
		return group.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	group = models.ChoiceGroup{CompanyID: companyID, Name: name, Code: code, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&group).Error; err != nil {
		return 0, err
	}
	return group.ID, nil
}

func (r *MenuRepository) LinkChoiceGroupToCategory(ctx context.Context, companyID, categoryID, choiceGroupID uint, displayOrder int) (uint, error) {
	var link models.CategoryChoiceGroup
	err := r.db.WithContext(ctx).Where("category_id = ? AND choice_group_id = ?", categoryID, choiceGroupID).First(&link).Error
	if err == nil {
		return link.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	link = models.CategoryChoiceGroup{
		CompanyID:     companyID,
		CategoryID:    categoryID,
		ChoiceGroupID: choiceGroupID,
		DisplayOrder:  displayOrder,
		IsActive:      true,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return 0, err
	}
	return link.ID, nil
}

func (r *MenuRepository) UpsertChoice(ctx context.Context, companyID, choiceGroupID uint, name string, displayOrder int, defaultPrice float64) (uint, error) {
	var choice models.Choice
	err := r.db.WithContext(ctx).Where("choice_group_id = ? AND name = ?", choiceGroupID, name).First(&choice).Error
	if err == nil {
		return choice.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	choice = models.Choice{
		CompanyID:     companyID,
		ChoiceGroupID: choiceGroupID,
		Name:          name,
		DefaultPrice:  defaultPrice,
		DisplayOrder:  displayOrder,
		IsActive:      true,
	}
	if err := r.db.WithContext(ctx).Create(&choice).Error; err != nil {
		return 0, err
	}
	return choice.ID, nil
}

func (r *MenuRepository) UpsertCategoryChoicePrice(ctx context.Context, companyID, categoryChoiceGroupID, choiceID uint, sizeID *uint, price float64) error {
	var existing models.CategoryChoicePrice
	query := r.db.WithContext(ctx).
		Where("category_choice_group_id = ? AND choice_id = ?", categoryChoiceGroupID, choiceID)
	err := sizeScope(query, sizeID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("price", price).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.CategoryChoicePrice{
		CompanyID:             companyID,
		CategoryChoiceGroupID: categoryChoiceGroupID,
		ChoiceID:              choiceID,
		SizeID:                sizeID,
		Price:                 price,
		IsActive:              true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) EnsureFlavour(ctx context.Context, companyID uint, name string, defaultPrice float64) (uint, error) {
	var flavour models.Flavour
	err := r.db.WithContext(ctx).Where("company_id = ? AND name = ?", companyID, name).First(&flavour).Error
	if err == nil {
		return flavour.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	flavour = models.Flavour{CompanyID: companyID, Name: name, DefaultPrice: defaultPrice, IsActive: true}
	if err := r.db.WithContext(ctx).Create(&flavour).Error; err != nil {
		return 0, err
	}
	return flavour.ID, nil
}

func (r *MenuRepository) LinkFlavourToCategory(ctx context.Context, companyID, categoryID, flavourID uint, displayOrder int) (uint, error) {
	var link models.CategoryFlavour
	err := r.db.WithContext(ctx).Where("category_id = ? AND flavour_id = ?", categoryID, flavourID).First(&link).Error
	if err == nil {
		return link.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	link = models.CategoryFlavour{
		CompanyID:    companyID,
		CategoryID:   categoryID,
		FlavourID:    flavourID,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return 0, err
	}
	return link.ID, nil
}

func (r *MenuRepository) UpsertCategoryFlavourPrice(ctx context.Context, companyID, categoryFlavourID uint, sizeID *uint, price float64) error {
	var existing models.CategoryFlavourPrice
	query := r.db.WithContext(ctx).Where("category_flavour_id = ?", categoryFlavourID)
	err := sizeScope(query, sizeID).First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("price", price).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.CategoryFlavourPrice{
		CompanyID:         companyID,
		CategoryFlavourID: categoryFlavourID,
		SizeID:            sizeID,
		Price:             price,
		IsActive:          true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

// ListFlavours returns the company's flavours in pairing order. The order is
// load-bearing for per-product flavour sections.
func (r *MenuRepository) ListFlavours(ctx context.Context, companyID uint) ([]models.Flavour, error) {
	var flavours []models.Flavour
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("display_order, id").
		Find(&flavours).Error
	return flavours, err
}

func (r *MenuRepository) LinkFlavourToProduct(ctx context.Context, companyID, productID, flavourID uint, displayOrder int) (uint, error) {
	var link models.ProductFlavour
	err := r.db.WithContext(ctx).Where("product_id = ? AND flavour_id = ?", productID, flavourID).First(&link).Error
	if err == nil {
		return link.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}
	link = models.ProductFlavour{
		CompanyID:    companyID,
		ProductID:    productID,
		FlavourID:    flavourID,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}
	if err := r.db.WithContext(ctx).Create(&link).Error; err != nil {
		return 0, err
	}
	return link.ID, nil
}

func (r *MenuRepository) UpsertProductFlavourPrice(ctx context.Context, companyID, productFlavourID, sizeID uint, price float64) error {
	var existing models.ProductFlavourPrice
	err := r.db.WithContext(ctx).
		Where("product_flavour_id = ? AND size_id = ?", productFlavourID, sizeID).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("price", price).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.ProductFlavourPrice{
		CompanyID:        companyID,
		ProductFlavourID: productFlavourID,
		SizeID:           sizeID,
		Price:            price,
		IsActive:         true,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) UpsertBusinessHour(ctx context.Context, companyID uint, day, service, openTime, deliveryTime string) error {
	var existing models.BusinessHour
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND day = ? AND service = ?", companyID, day, service).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"time":          openTime,
			"delivery_time": deliveryTime,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.BusinessHour{
		CompanyID:    companyID,
		Day:          day,
		Service:      service,
		Time:         openTime,
		DeliveryTime: deliveryTime,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) UpsertSpecialComment(ctx context.Context, companyID uint, title, description string) error {
	var existing models.SpecialComment
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND title = ?", companyID, title).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Update("description", description).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	row := models.SpecialComment{CompanyID: companyID, Title: title, Description: description}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *MenuRepository) UpsertDeliveryCharge(ctx context.Context, companyID uint, charge models.DeliveryCharge) error {
	charge.CompanyID = companyID
	var existing models.DeliveryCharge
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND postcode = ?", companyID, charge.Postcode).
		First(&existing).Error
	if err == nil {
		return r.db.WithContext(ctx).Model(&existing).Updates(map[string]interface{}{
			"status":              charge.Status,
			"minimum_order":       charge.MinimumOrder,
			"charge":              charge.Charge,
			"driver_fee":          charge.DriverFee,
			"free_delivery_above": charge.FreeDeliveryAbove,
			"distance_limit":      charge.DistanceLimit,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.WithContext(ctx).Create(&charge).Error
}

// ============================================================================
// Storefront read side
// ============================================================================

// GetCatalog serves the assembled storefront document for a company code,
// cache first. A miss reads every catalog concern flat and folds it.
func (r *MenuRepository) GetCatalog(ctx context.Context, companyCode string) (*models.CatalogDocument, error) {
	cacheKey := catalogCacheKey(companyCode)

	if r.redis != nil {
		val, err := r.redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var doc models.CatalogDocument
			if err := json.Unmarshal([]byte(val), &doc); err == nil {
				return &doc, nil
			}
		}
	}

	company, err := r.GetCompanyByCode(ctx, companyCode)
	if err != nil {
		return nil, err
	}
	input, err := r.loadCatalogInput(ctx, *company)
	if err != nil {
		return nil, err
	}
	doc := catalog.Build(*input)

	if r.redis != nil {
		data, err := json.Marshal(doc)
		if err == nil {
			r.redis.Set(ctx, cacheKey, data, CatalogCacheTTL)
		}
	}

	return &doc, nil
}

func (r *MenuRepository) loadCatalogInput(ctx context.Context, company models.Company) (*catalog.Input, error) {
	in := catalog.Input{Company: company}
	db := r.db.WithContext(ctx)
	companyID := company.ID

	if err := db.Where("company_id = ?", companyID).
		Order("display_order, id").
		Find(&in.Categories).Error; err != nil {
		return nil, err
	}

	if err := db.Table("category_sizes cs").
		Select("cs.id AS category_size_id, cs.category_id, cs.size_id, s.name AS size_name, s.code AS size_code, cs.display_order").
		Joins("JOIN sizes s ON s.id = cs.size_id").
		Where("cs.company_id = ?", companyID).
		Order("cs.category_id, cs.display_order, cs.id").
		Scan(&in.Sizes).Error; err != nil {
		return nil, err
	}

	if err := db.Table("category_toppings ct").
		Select("ct.id AS category_topping_id, ct.category_id, ct.topping_id, t.name AS topping_name, ct.is_default, ct.display_order, p.size_id, s.name AS size_name, s.code AS size_code, p.price").
		Joins("JOIN toppings t ON t.id = ct.topping_id").
		Joins("LEFT JOIN category_topping_prices p ON p.category_topping_id = ct.id").
		Joins("LEFT JOIN sizes s ON s.id = p.size_id").
		Where("ct.company_id = ?", companyID).
		Order("ct.category_id, ct.display_order, ct.id, p.size_id").
		Scan(&in.Toppings).Error; err != nil {
		return nil, err
	}

	if err := db.Table("category_addon_groups cag").
		Select("cag.id AS category_addon_group_id, cag.category_id, cag.addon_group_id, g.name AS group_name, g.code AS group_code, cag.display_order, a.id AS addon_id, a.name AS addon_name, a.display_order AS addon_display_order, p.size_id, s.name AS size_name, s.code AS size_code, p.price").
		Joins("JOIN addon_groups g ON g.id = cag.addon_group_id").
		Joins("JOIN addons a ON a.addon_group_id = g.id").
		Joins("LEFT JOIN category_addon_prices p ON p.category_addon_group_id = cag.id AND p.addon_id = a.id").
		Joins("LEFT JOIN sizes s ON s.id = p.size_id").
		Where("cag.company_id = ?", companyID).
		Order("cag.category_id, cag.display_order, cag.id, a.display_order, a.id, p.size_id").
		Scan(&in.Addons).Error; err != nil {
		return nil, err
	}

	if err := db.Table("category_choice_groups ccg").
		Select("ccg.id AS category_choice_group_id, ccg.category_id, ccg.choice_group_id, g.name AS group_name, g.code AS group_code, ccg.display_order, c.id AS choice_id, c.name AS choice_name, c.display_order AS choice_display_order, p.size_id, s.name AS size_name, s.code AS size_code, p.price").
		Joins("JOIN choice_groups g ON g.id = ccg.choice_group_id").
		Joins("JOIN choices c ON c.choice_group_id = g.id").
		Joins("LEFT JOIN category_choice_prices p ON p.category_choice_group_id = ccg.id AND p.choice_id = c.id").
		Joins("LEFT JOIN sizes s ON s.id = p.size_id").
		Where("ccg.company_id = ?", companyID).
		Order("ccg.category_id, ccg.display_order, ccg.id, c.display_order, c.id, p.size_id").
		Scan(&in.Choices).Error; err != nil {
		return nil, err
	}

	if err := db.Table("category_flavours cf").
		Select("cf.id AS category_flavour_id, cf.category_id, cf.flavour_id, f.name AS flavour_name, cf.is_default, cf.display_order, p.size_id, s.name AS size_name, s.code AS size_code, p.price").
		Joins("JOIN flavours f ON f.id = cf.flavour_id").
		Joins("LEFT JOIN category_flavour_prices p ON p.category_flavour_id = cf.id").
		Joins("LEFT JOIN sizes s ON s.id = p.size_id").
		Where("cf.company_id = ?", companyID).
		Order("cf.category_id, cf.display_order, cf.id, p.size_id").
		Scan(&in.Flavours).Error; err != nil {
		return nil, err
	}

	if err := db.Where("company_id = ?", companyID).
		Order("category_id, display_order, id").
		Find(&in.Products).Error; err != nil {
		return nil, err
	}

	if err := db.Table("product_prices pp").
		Select("pp.id AS product_price_id, pp.product_id, pp.size_id, s.name AS size_name, s.code AS size_code, pp.price").
		Joins("JOIN sizes s ON s.id = pp.size_id").
		Where("pp.company_id = ?", companyID).
		Order("pp.product_id, s.display_order, pp.size_id").
		Scan(&in.ProductPrices).Error; err != nil {
		return nil, err
	}

	if err := db.Table("product_flavours pf").
		Select("pf.id AS product_flavour_id, pf.product_id, pf.flavour_id, f.name AS flavour_name, pf.is_default, pf.display_order, p.size_id, s.name AS size_name, s.code AS size_code, p.price").
		Joins("JOIN flavours f ON f.id = pf.flavour_id").
		Joins("LEFT JOIN product_flavour_prices p ON p.product_flavour_id = pf.id").
		Joins("LEFT JOIN sizes s ON s.id = p.size_id").
		Where("pf.company_id = ?", companyID).
		Order("pf.product_id, pf.display_order, pf.id, p.size_id").
		Scan(&in.ProductFlavours).Error; err != nil {
		return nil, err
	}

	if err := db.Where("company_id = ?", companyID).
		Order("id").
		Find(&in.BusinessHours).Error; err != nil {
		return nil, err
	}
	if err := db.Where("company_id = ?", companyID).
		Order("id").
		Find(&in.SpecialComments).Error; err != nil {
		return nil, err
	}
	if err := db.Where("company_id = ?", companyID).
		Order("id").
		Find(&in.DeliveryCharges).Error; err != nil {
		return nil, err
	}

	return &in, nil
}
