package importer

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestImporter(store Store) *Importer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewImporter(store, logger.WithField("component", "importer"))
}

func sheet(name string, rows ...[]Cell) Sheet {
	return Sheet{Name: name, Rows: rows}
}

func TestImportSinglePriceProducts(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Burgers",
		row("Products"),
		row("Items", "Description", "Charges"),
		row("Cheeseburger", "Beef patty with cheddar", "5.5"),
		row("Veggie Burger", "", "6"),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, []uint{1}, store.wipes)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 0, result.FailedCount)

	require.Len(t, result.Sheets, 1)
	assert.Equal(t, 2, result.Sheets[0].Total)
	assert.Equal(t, 2, result.Sheets[0].Success)
	assert.Equal(t, 0, result.Sheets[0].Failed)

	require.Len(t, result.Categories, 1)
	assert.Equal(t, "Burgers", result.Categories[0].Name)
	require.Len(t, result.Products, 2)
	assert.Equal(t, "Cheeseburger", result.Products[0].Name)

	require.Len(t, store.categories, 1)
	cat := store.categories[0]
	assert.Equal(t, "Burgers", cat.name)
	assert.False(t, cat.flags.HasSizes)

	require.Len(t, store.products, 2)
	require.NotNil(t, store.products[0].basePrice)
	assert.Equal(t, 5.5, *store.products[0].basePrice)
	assert.Equal(t, 6.0, *store.products[1].basePrice)
	require.NotNil(t, store.products[0].description)
	assert.Equal(t, "Beef patty with cheddar", *store.products[0].description)
	assert.Nil(t, store.products[1].description)
	assert.Empty(t, store.productPrices)
}

func TestImportSizedProducts(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Pizzas",
		row("Products"),
		row("Items", "", "Sizes & Charges"),
		row("", `10"`, `12"`),
		row("Margherita", "7.5", "9.5"),
		row("Pepperoni", "8.5", ""),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, store.categories, 1)
	assert.True(t, store.categories[0].flags.HasSizes)

	assert.Len(t, store.sizes, 2)
	assert.Len(t, store.categorySizes, 2)
	require.Len(t, result.Sizes, 2)
	assert.Equal(t, "10", result.Sizes[0].Name)

	// Margherita has both sizes, Pepperoni only the first. Size columns
	// double as price columns, so nothing lands in description.
	require.Len(t, store.products, 2)
	assert.Len(t, store.productPrices, 3)
	assert.Nil(t, store.products[0].basePrice)
	assert.Nil(t, store.products[0].description)
}

func TestImportRecordsRowErrorAndContinues(t *testing.T) {
	store := newFakeStore()
	store.toppingErr["Anchovies"] = errors.New("boom")
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Pizzas",
		row("Products"),
		row("Items", "", "Charges"),
		row("Margherita", "", "7"),
		row("Toppings"),
		row("Items", `10"`),
		row("Anchovies", "1"),
		row("Olives", "1.5"),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Anchovies", result.Errors[0].Name)
	assert.Equal(t, "topping", result.Errors[0].Type)
	assert.Equal(t, 5, result.Errors[0].Row)

	require.Len(t, result.Sheets, 1)
	assert.Equal(t, 3, result.Sheets[0].Total)
	assert.Equal(t, 2, result.Sheets[0].Success)
	assert.Equal(t, 1, result.Sheets[0].Failed)

	// Only the topping that landed is echoed
	require.Len(t, result.Toppings, 1)
	assert.Equal(t, "Olives", result.Toppings[0].Name)

	// Olives still landed with its sized price
	require.Len(t, store.toppings, 1)
	assert.Equal(t, "Olives", store.toppings[0].name)
	require.Len(t, store.toppingPrices, 1)
	assert.Equal(t, 1.5, store.toppingPrices[0].price)
	require.NotNil(t, store.toppingPrices[0].sizeID)
}

func TestImportAddonGroupsPairColumns(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Kebabs",
		row("Products"),
		row("Items", "", "Charges"),
		row("Doner", "", "7"),
		row("Add Ons"),
		row("Sauces", "", "Dips", ""),
		row("Ketchup", "0.5", "Garlic", "0.75"),
		row("Mayo", "0.5", "", ""),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 4, result.SuccessCount)
	assert.True(t, store.categories[0].flags.HasAddons)

	require.Len(t, store.addonGroups, 2)
	assert.Equal(t, "SAUCES", store.addonGroups[0].code)
	assert.Equal(t, "DIPS", store.addonGroups[1].code)

	// Blank name at a column skips that column, not the whole row
	require.Len(t, store.addons, 3)
	names := []string{store.addons[0].name, store.addons[1].name, store.addons[2].name}
	assert.Contains(t, names, "Mayo")

	require.Len(t, store.addonPrices, 3)
	for _, p := range store.addonPrices {
		assert.Nil(t, p.sizeID)
	}
}

func TestImportGroupMarkerWithoutRowsCreatesNothing(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	// The addon marker is immediately followed by the choice marker, so the
	// addon section has no header row and must not swallow it as one.
	wb := &Workbook{Sheets: []Sheet{sheet("Kebabs",
		row("Products"),
		row("Items", "", "Charges"),
		row("Doner", "", "7"),
		row("Add Ons"),
		row("Choices"),
		row("Sauce Level", ""),
		row("Mild", "0"),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Empty(t, store.addonGroups)
	assert.Empty(t, store.categoryAddonGroups)
	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, store.choices, 1)
	assert.Equal(t, "Mild", store.choices[0].name)
}

func TestImportProductFlavoursPairsPositionally(t *testing.T) {
	store := newFakeStore()
	ctx := context.Background()
	for _, name := range []string{"Vanilla", "Strawberry", "Chocolate", "Banana"} {
		_, err := store.EnsureFlavour(ctx, 1, name, 0)
		require.NoError(t, err)
	}
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Milkshakes",
		row("Product Flavours"),
		row("Items", "Sizes & Charges"),
		row("", "Reg", "Large"),
		row("Milkshake", "3.5", "4.5"),
		row("", "3.5", "4.5"),
		row("", "4", "5"),
	)}}

	result, err := imp.Import(ctx, 1, wb)
	require.NoError(t, err)

	// The whole section is one product record
	assert.Equal(t, 1, result.TotalRecords)
	assert.Equal(t, 1, result.SuccessCount)

	require.Len(t, store.products, 1)
	product := store.products[0]
	assert.Equal(t, "Milkshake", product.name)
	assert.True(t, product.customFlavours)

	// Three price rows pair against the first three flavours; Banana is left out
	require.Len(t, store.productFlavours, 3)
	assert.Equal(t, 3, int(store.productFlavours[2].order)+1)
	assert.Len(t, store.productFlavourPrices, 6)
}

func TestImportFlavourChoiceSized(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Ice Cream",
		row("Flavour Choice"),
		row("Items", "Sizes & Charges"),
		row("", "Reg", "Large"),
		row("Vanilla", "1", "1.5"),
		row("Mint", "1", "2"),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	assert.True(t, store.categories[0].flags.HasFlavours)

	require.Len(t, store.flavours, 2)
	require.Len(t, store.categoryFlavours, 2)
	require.Len(t, store.categoryFlavourPrices, 4)
	for _, p := range store.categoryFlavourPrices {
		assert.NotNil(t, p.sizeID)
	}
}

func TestImportDeliveryChargesSheet(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Delivery Charges",
		row("Postcode", "Status", "Min Order", "Charge", "Driver Fee", "Free Delivery Above", "Distance Limit"),
		row("SW1", "Include", "10", "2.5", "1", "25", "yes"),
		row("SW2", "Exclude", "99", "9", "9", "9", "1"),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, result.Sheets, 1)
	assert.Equal(t, "delivery_charges", result.Sheets[0].Kind)
	assert.Empty(t, store.categories)

	require.Len(t, store.deliveryCharges, 2)

	included := store.deliveryCharges[0]
	assert.Equal(t, "SW1", included.Postcode)
	assert.Equal(t, "include", included.Status)
	require.NotNil(t, included.Charge)
	assert.Equal(t, "2.5", *included.Charge)
	assert.Equal(t, 1, included.DistanceLimit)

	// Excluded postcodes carry no charge data
	excluded := store.deliveryCharges[1]
	assert.Equal(t, "exclude", excluded.Status)
	assert.Nil(t, excluded.MinimumOrder)
	assert.Nil(t, excluded.Charge)
	assert.Equal(t, 0, excluded.DistanceLimit)
}

func TestImportBusinessHoursAndComments(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{
		sheet("Business Hours",
			row("Day", "Service", "Time", "Delivery Time"),
			row("Monday", "Collection", "11:00-22:00", "12:00-21:30"),
			row("", "Collection", "x", "y"),
			row("Tuesday", "Delivery", "11:00-22:00", "12:00-21:30"),
		),
		sheet("Special Comments",
			row("Title", "Description"),
			row("Allergens", "Ask staff for allergen information"),
			row("", "ignored"),
		),
	}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 3, result.SuccessCount)
	require.Len(t, store.businessHours, 2)
	assert.Equal(t, "Monday", store.businessHours[0].day)
	require.Len(t, store.specialComments, 1)
	assert.Equal(t, "Allergens", store.specialComments[0].title)
}

func TestImportImplicitProductSheet(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	wb := &Workbook{Sheets: []Sheet{sheet("Wraps",
		row("Wraps Menu"),
		row("Items", "", "Charges"),
		row("Chicken Wrap", "", "4.5"),
		row("Falafel Wrap", "", "4"),
	)}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	assert.Equal(t, 2, result.SuccessCount)
	require.Len(t, store.categories, 1)
	assert.Equal(t, "Wraps", store.categories[0].name)
	require.Len(t, store.products, 2)
}

func TestImportSkipsEmptySheets(t *testing.T) {
	store := newFakeStore()
	imp := newTestImporter(store)

	// A header with no data rows is as empty as no rows at all; neither
	// creates a category.
	wb := &Workbook{Sheets: []Sheet{
		{Name: "Blank"},
		sheet("Header Only", row("Items", "", "Charges")),
	}}

	result, err := imp.Import(context.Background(), 1, wb)
	require.NoError(t, err)

	require.Len(t, result.Sheets, 2)
	assert.Equal(t, "empty", result.Sheets[0].Kind)
	assert.Equal(t, "empty", result.Sheets[1].Kind)
	assert.Empty(t, store.categories)
	assert.Zero(t, result.TotalRecords)
}
