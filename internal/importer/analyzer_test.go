package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func row(cells ...string) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = parseCell(c)
	}
	return out
}

func TestAnalyzeExplicitSections(t *testing.T) {
	rows := [][]Cell{
		row("Products"),
		row("Items", `10"`, `12"`),
		row("Margherita", "7.5", "9.5"),
		row("Pepperoni", "8.5", "10.5"),
		row("Toppings"),
		row("Items", `10"`, `12"`),
		row("Mushrooms", "1", "1.5"),
	}

	a := Analyze(rows)

	assert.True(t, a.Product.Found)
	assert.False(t, a.ImplicitProduct)
	assert.Equal(t, 0, a.Product.StartRow)
	assert.Equal(t, 1, a.Product.HeaderRow)
	assert.Equal(t, 3, a.Product.EndRow)

	assert.True(t, a.Topping.Found)
	assert.Equal(t, 4, a.Topping.StartRow)
	assert.Equal(t, 5, a.Topping.HeaderRow)
	assert.Equal(t, 6, a.Topping.EndRow)

	assert.True(t, a.HasSizes)
	assert.True(t, a.HasToppings)
	assert.False(t, a.HasAddons)
	assert.Equal(t, map[int]string{1: "10", 2: "12"}, a.Product.SizeColumns)
	assert.Equal(t, map[int]string{1: "10", 2: "12"}, a.Topping.SizeColumns)
}

func TestAnalyzeImplicitProductSection(t *testing.T) {
	rows := [][]Cell{
		row("Items", "", "Charges"),
		row("Burger", "", "4.5"),
		row("Wrap", "", "5"),
		row("Add Ons"),
		row("Sauces", ""),
		row("Ketchup", "0.5"),
	}

	a := Analyze(rows)

	assert.True(t, a.Product.Found)
	assert.True(t, a.ImplicitProduct)
	assert.Equal(t, 0, a.Product.StartRow)
	assert.Equal(t, 1, a.Product.HeaderRow)
	assert.Equal(t, 2, a.Product.EndRow)

	assert.True(t, a.Addon.Found)
	assert.Equal(t, 3, a.Addon.StartRow)
	assert.Equal(t, 5, a.Addon.EndRow)
	assert.True(t, a.HasAddons)
}

func TestAnalyzeImplicitProductFillsWholeSheet(t *testing.T) {
	rows := [][]Cell{
		row("Items", "", "Charges"),
		row("Burger", "", "4.5"),
	}

	a := Analyze(rows)

	assert.True(t, a.ImplicitProduct)
	assert.Equal(t, 1, a.Product.EndRow)
}

func TestAnalyzeSectionKeywordsAreCaseInsensitive(t *testing.T) {
	rows := [][]Cell{
		row("PRODUCTS"),
		row("Items", "", "Charges"),
		row("FLAVOUR CHOICE"),
		row("Items", "Price"),
		row("CHOICES"),
		row("Items", ""),
	}

	a := Analyze(rows)

	assert.False(t, a.ImplicitProduct)
	assert.True(t, a.Flavour.Found)
	assert.Equal(t, "FLAVOUR CHOICE", a.Flavour.Title)
	assert.True(t, a.Choice.Found)
	assert.True(t, a.HasFlavours)
	assert.True(t, a.HasChoices)
}

func TestAnalyzeHalfAndHalf(t *testing.T) {
	withMarker := [][]Cell{
		row("Products"),
		row("Items", "", "Charges"),
		row("Half & Half Pizza", "", "9"),
	}
	assert.True(t, Analyze(withMarker).HasHalfAndHalf)

	withoutMarker := [][]Cell{
		row("Products"),
		row("Items", "", "Charges"),
		row("Half Chicken", "", "6"),
	}
	assert.False(t, Analyze(withoutMarker).HasHalfAndHalf)
}

func TestDetectSizeColumns(t *testing.T) {
	cols := detectSizeColumns(row("Items", `10"`, "12''", "Description", "Charges"))

	assert.Equal(t, map[int]string{
		1: "10",
		2: "12",
		4: SingleColumn,
	}, cols)
	assert.True(t, hasSizeLabels(cols))
}

func TestDetectSizeColumnsFlatOnly(t *testing.T) {
	cols := detectSizeColumns(row("Items", "", "Price"))

	assert.Equal(t, map[int]string{2: SingleColumn}, cols)
	assert.False(t, hasSizeLabels(cols))

	a := Analyze([][]Cell{
		row("Products"),
		row("Items", "", "Price"),
		row("Burger", "", "4.5"),
	})
	assert.False(t, a.HasSizes)
}
