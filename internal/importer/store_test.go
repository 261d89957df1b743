package importer

import (
	"context"

	"menu-service/internal/models"
)

// fakeStore is an in-memory Store for pipeline tests. It dedupes Ensure*
// calls the way the real repository does and lets tests inject per-name
// failures.
type fakeStore struct {
	nextID uint
	wipes  []uint

	categories    []fakeCategory
	sizes         []fakeSize
	categorySizes []fakeLink

	products      []*fakeProduct
	productPrices []fakeSizedPrice

	toppings         []fakeNamed
	categoryToppings []fakeJunction
	toppingPrices    []fakeNullablePrice

	addonGroups         []fakeGroup
	categoryAddonGroups []fakeJunction
	addons              []fakeItem
	addonPrices         []fakeMemberPrice

	choiceGroups         []fakeGroup
	categoryChoiceGroups []fakeJunction
	choices              []fakeItem
	choicePrices         []fakeMemberPrice

	flavours              []models.Flavour
	categoryFlavours      []fakeJunction
	categoryFlavourPrices []fakeNullablePrice
	productFlavours       []fakeJunction
	productFlavourPrices  []fakeSizedPrice

	businessHours   []fakeBusinessHour
	specialComments []fakeComment
	deliveryCharges []models.DeliveryCharge

	productErr map[string]error
	toppingErr map[string]error
}

type fakeCategory struct {
	id    uint
	name  string
	order int
	flags CategoryFlags
}

type fakeSize struct {
	id   uint
	name string
	code string
}

type fakeLink struct {
	categoryID uint
	sizeID     uint
	order      int
}

type fakeProduct struct {
	id             uint
	categoryID     uint
	name           string
	description    *string
	order          int
	basePrice      *float64
	customFlavours bool
}

type fakeSizedPrice struct {
	ownerID uint
	sizeID  uint
	price   float64
}

type fakeNamed struct {
	id   uint
	name string
}

type fakeJunction struct {
	id      uint
	ownerID uint
	itemID  uint
	order   int
}

type fakeNullablePrice struct {
	ownerID uint
	sizeID  *uint
	price   float64
}

type fakeGroup struct {
	id   uint
	name string
	code string
}

type fakeItem struct {
	id           uint
	groupID      uint
	name         string
	order        int
	defaultPrice float64
}

type fakeMemberPrice struct {
	categoryGroupID uint
	itemID          uint
	sizeID          *uint
	price           float64
}

type fakeBusinessHour struct {
	day          string
	service      string
	time         string
	deliveryTime string
}

type fakeComment struct {
	title       string
	description string
}

var _ Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		productErr: make(map[string]error),
		toppingErr: make(map[string]error),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) WipeCompany(ctx context.Context, companyID uint) error {
	s.wipes = append(s.wipes, companyID)
	return nil
}

func (s *fakeStore) CreateCategory(ctx context.Context, companyID uint, name string, displayOrder int, flags CategoryFlags) (uint, error) {
	c := fakeCategory{id: s.id(), name: name, order: displayOrder, flags: flags}
	s.categories = append(s.categories, c)
	return c.id, nil
}

func (s *fakeStore) EnsureSize(ctx context.Context, companyID uint, name, code string) (uint, error) {
	for _, sz := range s.sizes {
		if sz.code == code {
			return sz.id, nil
		}
	}
	sz := fakeSize{id: s.id(), name: name, code: code}
	s.sizes = append(s.sizes, sz)
	return sz.id, nil
}

func (s *fakeStore) LinkSizeToCategory(ctx context.Context, companyID, categoryID, sizeID uint, displayOrder int) error {
	for _, l := range s.categorySizes {
		if l.categoryID == categoryID && l.sizeID == sizeID {
			return nil
		}
	}
	s.categorySizes = append(s.categorySizes, fakeLink{categoryID: categoryID, sizeID: sizeID, order: displayOrder})
	return nil
}

func (s *fakeStore) UpsertProduct(ctx context.Context, companyID, categoryID uint, name string, description *string, displayOrder int) (uint, error) {
	if err := s.productErr[name]; err != nil {
		return 0, err
	}
	for _, p := range s.products {
		if p.categoryID == categoryID && p.name == name {
			p.description = description
			return p.id, nil
		}
	}
	p := &fakeProduct{id: s.id(), categoryID: categoryID, name: name, description: description, order: displayOrder}
	s.products = append(s.products, p)
	return p.id, nil
}

func (s *fakeStore) SetProductBasePrice(ctx context.Context, productID uint, price float64) error {
	for _, p := range s.products {
		if p.id == productID {
			v := price
			p.basePrice = &v
			return nil
		}
	}
	return nil
}

func (s *fakeStore) UpsertProductPrice(ctx context.Context, companyID, productID, sizeID uint, price float64) error {
	s.productPrices = append(s.productPrices, fakeSizedPrice{ownerID: productID, sizeID: sizeID, price: price})
	return nil
}

func (s *fakeStore) MarkProductCustomFlavours(ctx context.Context, productID uint) error {
	for _, p := range s.products {
		if p.id == productID {
			p.customFlavours = true
		}
	}
	return nil
}

func (s *fakeStore) EnsureTopping(ctx context.Context, companyID uint, name string) (uint, error) {
	if err := s.toppingErr[name]; err != nil {
		return 0, err
	}
	for _, t := range s.toppings {
		if t.name == name {
			return t.id, nil
		}
	}
	t := fakeNamed{id: s.id(), name: name}
	s.toppings = append(s.toppings, t)
	return t.id, nil
}

func (s *fakeStore) LinkToppingToCategory(ctx context.Context, companyID, categoryID, toppingID uint, displayOrder int) (uint, error) {
	for _, j := range s.categoryToppings {
		if j.ownerID == categoryID && j.itemID == toppingID {
			return j.id, nil
		}
	}
	j := fakeJunction{id: s.id(), ownerID: categoryID, itemID: toppingID, order: displayOrder}
	s.categoryToppings = append(s.categoryToppings, j)
	return j.id, nil
}

func (s *fakeStore) UpsertCategoryToppingPrice(ctx context.Context, companyID, categoryToppingID uint, sizeID *uint, price float64) error {
	s.toppingPrices = append(s.toppingPrices, fakeNullablePrice{ownerID: categoryToppingID, sizeID: sizeID, price: price})
	return nil
}

func (s *fakeStore) EnsureAddonGroup(ctx context.Context, companyID uint, name, code string) (uint, error) {
	for _, g := range s.addonGroups {
		if g.code == code {
			return g.id, nil
		}
	}
	g := fakeGroup{id: s.id(), name: name, code: code}
	s.addonGroups = append(s.addonGroups, g)
	return g.id, nil
}

func (s *fakeStore) LinkAddonGroupToCategory(ctx context.Context, companyID, categoryID, addonGroupID uint, displayOrder int) (uint, error) {
	for _, j := range s.categoryAddonGroups {
		if j.ownerID == categoryID && j.itemID == addonGroupID {
			return j.id, nil
		}
	}
	j := fakeJunction{id: s.id(), ownerID: categoryID, itemID: addonGroupID, order: displayOrder}
	s.categoryAddonGroups = append(s.categoryAddonGroups, j)
	return j.id, nil
}

func (s *fakeStore) UpsertAddon(ctx context.Context, companyID, addonGroupID uint, name string, displayOrder int, defaultPrice float64) (uint, error) {
	for _, a := range s.addons {
		if a.groupID == addonGroupID && a.name == name {
			return a.id, nil
		}
	}
	a := fakeItem{id: s.id(), groupID: addonGroupID, name: name, order: displayOrder, defaultPrice: defaultPrice}
	s.addons = append(s.addons, a)
	return a.id, nil
}

func (s *fakeStore) UpsertCategoryAddonPrice(ctx context.Context, companyID, categoryAddonGroupID, addonID uint, sizeID *uint, price float64) error {
	s.addonPrices = append(s.addonPrices, fakeMemberPrice{categoryGroupID: categoryAddonGroupID, itemID: addonID, sizeID: sizeID, price: price})
	return nil
}

func (s *fakeStore) EnsureChoiceGroup(ctx context.Context, companyID uint, name, code string) (uint, error) {
	for _, g := range s.choiceGroups {
		if g.code == code {
			return g.id, nil
		}
	}
	g := fakeGroup{id: s.id(), name: name, code: code}
	s.choiceGroups = append(s.choiceGroups, g)
	return g.id, nil
}

func (s *fakeStore) LinkChoiceGroupToCategory(ctx context.Context, companyID, categoryID, choiceGroupID uint, displayOrder int) (uint, error) {
	for _, j := range s.categoryChoiceGroups {
		if j.ownerID == categoryID && j.itemID == choiceGroupID {
			return j.id, nil
		}
	}
	j := fakeJunction{id: s.id(), ownerID: categoryID, itemID: choiceGroupID, order: displayOrder}
	s.categoryChoiceGroups = append(s.categoryChoiceGroups, j)
	return j.id, nil
}

func (s *fakeStore) UpsertChoice(ctx context.Context, companyID, choiceGroupID uint, name string, displayOrder int, defaultPrice float64) (uint, error) {
	for _, c := range s.choices {
		if c.groupID == choiceGroupID && c.name == name {
			return c.id, nil
		}
	}
	c := fakeItem{id: s.id(), groupID: choiceGroupID, name: name, order: displayOrder, defaultPrice: defaultPrice}
	s.choices = append(s.choices, c)
	return c.id, nil
}

func (s *fakeStore) UpsertCategoryChoicePrice(ctx context.Context, companyID, categoryChoiceGroupID, choiceID uint, sizeID *uint, price float64) error {
	s.choicePrices = append(s.choicePrices, fakeMemberPrice{categoryGroupID: categoryChoiceGroupID, itemID: choiceID, sizeID: sizeID, price: price})
	return nil
}

func (s *fakeStore) EnsureFlavour(ctx context.Context, companyID uint, name string, defaultPrice float64) (uint, error) {
	for _, f := range s.flavours {
		if f.Name == name {
			return f.ID, nil
		}
	}
	f := models.Flavour{ID: s.id(), CompanyID: companyID, Name: name, DefaultPrice: defaultPrice}
	s.flavours = append(s.flavours, f)
	return f.ID, nil
}

func (s *fakeStore) LinkFlavourToCategory(ctx context.Context, companyID, categoryID, flavourID uint, displayOrder int) (uint, error) {
	for _, j := range s.categoryFlavours {
		if j.ownerID == categoryID && j.itemID == flavourID {
			return j.id, nil
		}
	}
	j := fakeJunction{id: s.id(), ownerID: categoryID, itemID: flavourID, order: displayOrder}
	s.categoryFlavours = append(s.categoryFlavours, j)
	return j.id, nil
}

func (s *fakeStore) UpsertCategoryFlavourPrice(ctx context.Context, companyID, categoryFlavourID uint, sizeID *uint, price float64) error {
	s.categoryFlavourPrices = append(s.categoryFlavourPrices, fakeNullablePrice{ownerID: categoryFlavourID, sizeID: sizeID, price: price})
	return nil
}

func (s *fakeStore) ListFlavours(ctx context.Context, companyID uint) ([]models.Flavour, error) {
	out := make([]models.Flavour, len(s.flavours))
	copy(out, s.flavours)
	return out, nil
}

func (s *fakeStore) LinkFlavourToProduct(ctx context.Context, companyID, productID, flavourID uint, displayOrder int) (uint, error) {
	j := fakeJunction{id: s.id(), ownerID: productID, itemID: flavourID, order: displayOrder}
	s.productFlavours = append(s.productFlavours, j)
	return j.id, nil
}

func (s *fakeStore) UpsertProductFlavourPrice(ctx context.Context, companyID, productFlavourID, sizeID uint, price float64) error {
	s.productFlavourPrices = append(s.productFlavourPrices, fakeSizedPrice{ownerID: productFlavourID, sizeID: sizeID, price: price})
	return nil
}

func (s *fakeStore) UpsertBusinessHour(ctx context.Context, companyID uint, day, service, openTime, deliveryTime string) error {
	s.businessHours = append(s.businessHours, fakeBusinessHour{day: day, service: service, time: openTime, deliveryTime: deliveryTime})
	return nil
}

func (s *fakeStore) UpsertSpecialComment(ctx context.Context, companyID uint, title, description string) error {
	s.specialComments = append(s.specialComments, fakeComment{title: title, description: description})
	return nil
}

func (s *fakeStore) UpsertDeliveryCharge(ctx context.Context, companyID uint, charge models.DeliveryCharge) error {
	s.deliveryCharges = append(s.deliveryCharges, charge)
	return nil
}
