package cart

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koraytemur/hirdavat/internal/domain"
)

// --- Test Helpers ---

func product(id string, price string) domain.Product {
	return domain.Product{
		ID:       id,
		Name:     domain.MultilingualText{NL: "Hamer", EN: "Hammer"},
		Price:    decimal.RequireFromString(price),
		Stock:    100,
		SKU:      "SKU-" + id,
		IsActive: true,
	}
}

func percentageDiscount(value string) *domain.Discount {
	return &domain.Discount{
		ID:            "disc-1",
		Code:          "SAVE",
		DiscountType:  domain.DiscountTypePercentage,
		DiscountValue: decimal.RequireFromString(value),
		IsActive:      true,
	}
}

func fixedDiscount(value string) *domain.Discount {
	return &domain.Discount{
		ID:            "disc-2",
		Code:          "FLAT",
		DiscountType:  domain.DiscountTypeFixed,
		DiscountValue: decimal.RequireFromString(value),
		IsActive:      true,
	}
}

func assertTotals(t *testing.T, c *Cart, subtotal, tax, total string) {
	t.Helper()
	got := c.Totals()
	assert.Equal(t, subtotal, got.Subtotal.StringFixed(2), "subtotal")
	assert.Equal(t, tax, got.Tax.StringFixed(2), "tax")
	assert.Equal(t, total, got.Total.StringFixed(2), "total")
}

// --- Tests ---

func TestAdd_MergesByProductID(t *testing.T) {
	c := &Cart{}

	c.Add(product("p1", "10.00"), 2)
	c.Add(product("p1", "10.00"), 3)

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.Equal(t, 5, c.ItemCount())
}

func TestAdd_PreservesInsertionOrderOnMerge(t *testing.T) {
	c := &Cart{}

	c.Add(product("p1", "1.00"), 1)
	c.Add(product("p2", "2.00"), 1)
	c.Add(product("p3", "3.00"), 1)
	c.Add(product("p1", "1.00"), 1)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "p1", lines[0].Product.ID)
	assert.Equal(t, "p2", lines[1].Product.ID)
	assert.Equal(t, "p3", lines[2].Product.ID)
	assert.Equal(t, 2, lines[0].Quantity)
}

func TestAdd_QuantityBelowOneBecomesOne(t *testing.T) {
	c := &Cart{}

	c.Add(product("p1", "5.00"), 0)
	c.Add(product("p2", "5.00"), -3)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestRemove(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "1.00"), 1)
	c.Add(product("p2", "2.00"), 1)

	c.Remove("p1")

	lines := c.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].Product.ID)

	// Removing an absent product is a no-op.
	c.Remove("missing")
	assert.Len(t, c.Lines(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "1.00"), 1)
	c.Add(product("p2", "2.00"), 1)

	c.UpdateQuantity("p1", 7)

	lines := c.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "p1", lines[0].Product.ID, "position preserved")
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		c := &Cart{}
		c.Add(product("p1", "1.00"), 5)

		c.UpdateQuantity("p1", qty)

		assert.True(t, c.IsEmpty(), "quantity %d should remove the line", qty)
	}
}

func TestUpdateQuantity_AbsentProductIsNoop(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "1.00"), 1)

	c.UpdateQuantity("missing", 5)

	require.Len(t, c.Lines(), 1)
	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestClear_DropsLinesAndDiscount(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 2)
	c.SetDiscount(percentageDiscount("10"))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Nil(t, c.Discount())
	assertTotals(t, c, "0.00", "0.00", "0.00")
}

func TestTotals_Empty(t *testing.T) {
	c := &Cart{}
	assertTotals(t, c, "0.00", "0.00", "0.00")
}

func TestTotals_NoDiscount(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 2)
	c.Add(product("p2", "5.00"), 2)

	// 30.00 subtotal, 21% VAT.
	assertTotals(t, c, "30.00", "6.30", "36.30")
}

func TestTotals_PercentageDiscount(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 3)
	c.SetDiscount(percentageDiscount("10"))

	// 30.00 * 0.9 = 27.00; tax 5.67; total 32.67.
	assertTotals(t, c, "27.00", "5.67", "32.67")
}

func TestTotals_FixedDiscount(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 3)
	c.SetDiscount(fixedDiscount("5"))

	// 30.00 - 5.00 = 25.00; tax 5.25; total 30.25.
	assertTotals(t, c, "25.00", "5.25", "30.25")
}

func TestTotals_FixedDiscountClampsAtZero(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 1)
	c.SetDiscount(fixedDiscount("50"))

	assertTotals(t, c, "0.00", "0.00", "0.00")
}

func TestTotals_PercentageAboveHundredGoesNegative(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 1)
	c.SetDiscount(percentageDiscount("150"))

	// Percentage discounts are not clamped; the backend vets their range.
	assertTotals(t, c, "-5.00", "-1.05", "-6.05")
}

func TestTotals_RoundsHalfAwayFromZero(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "0.125"), 1)

	// Subtotal 0.125 rounds to 0.13; tax 0.02625 rounds to 0.03 while the
	// total 0.15125 rounds to 0.15 from the unrounded intermediates.
	assertTotals(t, c, "0.13", "0.03", "0.15")
}

func TestTotals_EachOutputRoundedIndependently(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "9.99"), 3)
	c.SetDiscount(percentageDiscount("7"))

	// 29.97 * 0.93 = 27.8721 -> 27.87
	// tax = 27.8721 * 0.21 = 5.853141 -> 5.85
	// total = 33.725241 -> 33.73 (not 27.87 + 5.85 = 33.72)
	assertTotals(t, c, "27.87", "5.85", "33.73")
}

func TestSetDiscount_ReplaceAndRemove(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "10.00"), 1)

	c.SetDiscount(percentageDiscount("10"))
	require.NotNil(t, c.Discount())
	assert.Equal(t, "SAVE", c.Discount().Code)

	c.SetDiscount(fixedDiscount("2"))
	require.NotNil(t, c.Discount())
	assert.Equal(t, "FLAT", c.Discount().Code)

	c.SetDiscount(nil)
	assert.Nil(t, c.Discount())
	assertTotals(t, c, "10.00", "2.10", "12.10")
}

func TestLines_ReturnsCopy(t *testing.T) {
	c := &Cart{}
	c.Add(product("p1", "1.00"), 1)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Lines()[0].Quantity)
}

func TestDiscountValidity(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	d := percentageDiscount("10")
	d.ValidUntil = &past

	// Expiry is the backend's concern; the cart applies what it is given.
	c := &Cart{}
	c.Add(product("p1", "10.00"), 1)
	c.SetDiscount(d)
	assertTotals(t, c, "9.00", "1.89", "10.89")
}
