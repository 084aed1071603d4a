package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProduct() Product {
	return Product{
		ID:       1,
		Name:     "Floral Summer Dress",
		Category: "dresses",
		Price:    49.99,
		Images:   []string{"/images/products/dress-1.jpg"},
		Sizes:    []string{"S", "M", "L"},
		Colors:   []string{"Red", "Blue"},
		Rating:   4.5,
		InStock:  true,
	}
}

func TestProduct_Validate(t *testing.T) {
	p := validProduct()
	assert.NoError(t, p.Validate())
}

func TestProduct_Validate_Invalid(t *testing.T) {
	discount := 60.0

	tests := []struct {
		name   string
		mutate func(*Product)
	}{
		{"zero id", func(p *Product) { p.ID = 0 }},
		{"negative id", func(p *Product) { p.ID = -3 }},
		{"blank name", func(p *Product) { p.Name = "  " }},
		{"negative price", func(p *Product) { p.Price = -1 }},
		{"discount above price", func(p *Product) { p.DiscountPrice = &discount }},
		{"rating out of range", func(p *Product) { p.Rating = 5.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestProduct_Validate_DiscountBelowPrice(t *testing.T) {
	p := validProduct()
	discount := 39.99
	p.DiscountPrice = &discount
	assert.NoError(t, p.Validate())
}

func TestPrimaryImage(t *testing.T) {
	p := validProduct()
	assert.Equal(t, "/images/products/dress-1.jpg", p.PrimaryImage())

	p.Images = nil
	assert.Empty(t, p.PrimaryImage())
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, SortPriceLow, ParseSortKey("price-low"))
	assert.Equal(t, SortNameDesc, ParseSortKey("name-desc"))
	assert.Equal(t, SortFeatured, ParseSortKey("featured"))
	// Unknown keys fall back to the default order.
	assert.Equal(t, SortFeatured, ParseSortKey("rating"))
	assert.Equal(t, SortFeatured, ParseSortKey(""))
}

func TestProductFilter_Empty(t *testing.T) {
	p := validProduct()
	assert.True(t, ProductFilter{}.Matches(&p))
}

func TestProductFilter_Category(t *testing.T) {
	p := validProduct()

	assert.True(t, ProductFilter{Categories: []string{"dresses"}}.Matches(&p))
	assert.False(t, ProductFilter{Categories: []string{"tops"}}.Matches(&p))
	// The "all" sentinel anywhere in the set matches everything.
	assert.True(t, ProductFilter{Categories: []string{"tops", CategoryAll}}.Matches(&p))
}

func TestProductFilter_SizeOverlap(t *testing.T) {
	p := validProduct()

	assert.True(t, ProductFilter{Sizes: []string{"M", "XL"}}.Matches(&p))
	assert.False(t, ProductFilter{Sizes: []string{"XL"}}.Matches(&p))
}

func TestProductFilter_ColorOverlap(t *testing.T) {
	p := validProduct()

	assert.True(t, ProductFilter{Colors: []string{"Blue"}}.Matches(&p))
	assert.False(t, ProductFilter{Colors: []string{"Green"}}.Matches(&p))
}

func TestProductFilter_MaxPrice(t *testing.T) {
	p := validProduct()

	ceiling := 50.0
	assert.True(t, ProductFilter{MaxPrice: &ceiling}.Matches(&p))

	ceiling = 49.99 // boundary: price equal to ceiling passes
	assert.True(t, ProductFilter{MaxPrice: &ceiling}.Matches(&p))

	ceiling = 40.0
	assert.False(t, ProductFilter{MaxPrice: &ceiling}.Matches(&p))
}

func TestProductFilter_Conjunctive(t *testing.T) {
	p := validProduct()
	ceiling := 100.0

	f := ProductFilter{
		Categories: []string{"dresses"},
		Sizes:      []string{"M"},
		Colors:     []string{"Red"},
		MaxPrice:   &ceiling,
	}
	assert.True(t, f.Matches(&p))

	f.Colors = []string{"Green"}
	assert.False(t, f.Matches(&p))
}
