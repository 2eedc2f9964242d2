package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMultilingualText_Resolve(t *testing.T) {
	full := MultilingualText{NL: "Hamer", FR: "Marteau", EN: "Hammer", TR: "Çekiç"}

	assert.Equal(t, "Hamer", full.Resolve("nl"))
	assert.Equal(t, "Marteau", full.Resolve("fr"))
	assert.Equal(t, "Hammer", full.Resolve("en"))
	assert.Equal(t, "Çekiç", full.Resolve("tr"))
}

func TestMultilingualText_ResolveFallbacks(t *testing.T) {
	noFrench := MultilingualText{NL: "Hamer", EN: "Hammer"}
	assert.Equal(t, "Hammer", noFrench.Resolve("fr"), "missing language falls back to English")

	dutchOnly := MultilingualText{NL: "Hamer"}
	assert.Equal(t, "Hamer", dutchOnly.Resolve("tr"), "falls back to Dutch when English is empty")
	assert.Equal(t, "Hamer", dutchOnly.Resolve("de"), "unknown language follows the same chain")

	empty := MultilingualText{}
	assert.Equal(t, "", empty.Resolve("nl"))
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, Product{Stock: 1}.InStock())
	assert.False(t, Product{Stock: 0}.InStock())
	assert.False(t, Product{Stock: -1}.InStock())
}

func TestProduct_Localize(t *testing.T) {
	p := Product{
		ID:          "p1",
		Name:        MultilingualText{NL: "Schroevendraaier", EN: "Screwdriver"},
		Description: MultilingualText{EN: "Phillips head"},
		Price:       decimal.RequireFromString("7.95"),
		Stock:       12,
		SKU:         "SD-01",
		CategoryID:  "tools",
		Brand:       "Stanley",
		Unit:        "piece",
	}

	nl := p.Localize("nl")
	assert.Equal(t, "Schroevendraaier", nl.Name)
	assert.Equal(t, "Phillips head", nl.Description, "description falls back to English")
	assert.Equal(t, "7.95", nl.Price.StringFixed(2))
	assert.Equal(t, "SD-01", nl.SKU)
	assert.Equal(t, "tools", nl.CategoryID)

	en := p.Localize("en")
	assert.Equal(t, "Screwdriver", en.Name)
}

func TestCategory_Localize(t *testing.T) {
	c := Category{
		ID:        "tools",
		Name:      MultilingualText{NL: "Gereedschap", FR: "Outils", EN: "Tools", TR: "Aletler"},
		IsActive:  true,
		SortOrder: 3,
	}

	fr := c.Localize("fr")
	assert.Equal(t, "Outils", fr.Name)
	assert.True(t, fr.IsActive)
	assert.Equal(t, 3, fr.SortOrder)
}

func TestIsValidDiscountType(t *testing.T) {
	assert.True(t, IsValidDiscountType(DiscountTypePercentage))
	assert.True(t, IsValidDiscountType(DiscountTypeFixed))
	assert.False(t, IsValidDiscountType("bogo"))
	assert.False(t, IsValidDiscountType(""))
}

func TestIsValidOrderStatus(t *testing.T) {
	for _, s := range ValidOrderStatuses() {
		assert.True(t, IsValidOrderStatus(s), s)
	}
	assert.False(t, IsValidOrderStatus("teleported"))
}
