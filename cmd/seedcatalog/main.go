// Package main implements a standalone seed tool that writes a realistic
// product catalog and store settings document for local development. The
// server reads both files at startup, so running this once gives a working
// storefront without any hand-edited JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/TNRIN/DRESS/internal/domain"
)

var (
	sizes  = []string{"XS", "S", "M", "L", "XL"}
	colors = []string{"Black", "White", "Red", "Blue", "Beige", "Green"}

	templates = []struct {
		name     string
		category string
		minPrice float64
		maxPrice float64
	}{
		{"Silk Evening Dress", "dresses", 60, 180},
		{"Floral Summer Dress", "dresses", 30, 90},
		{"Wrap Midi Dress", "dresses", 40, 110},
		{"Linen Shirt", "tops", 20, 55},
		{"Ribbed Knit Top", "tops", 15, 45},
		{"Oversized Blouse", "tops", 25, 65},
		{"High-Waist Trousers", "bottoms", 35, 80},
		{"Pleated Skirt", "bottoms", 25, 70},
		{"Wide-Leg Jeans", "bottoms", 40, 95},
		{"Ankle Boots", "shoes", 60, 150},
		{"Strappy Sandals", "shoes", 30, 85},
		{"Leather Tote", "accessories", 45, 130},
		{"Silk Scarf", "accessories", 12, 40},
	}
)

func main() {
	var (
		count        = flag.Int("count", 36, "number of products to generate")
		productsPath = flag.String("products", "data/products.json", "products output path")
		settingsPath = flag.String("settings", "data/system.json", "settings output path")
		seed         = flag.Int64("seed", 42, "random seed")
	)
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	products := make([]domain.Product, 0, *count)
	for i := 0; i < *count; i++ {
		tpl := templates[i%len(templates)]
		price := round2(tpl.minPrice + rng.Float64()*(tpl.maxPrice-tpl.minPrice))

		p := domain.Product{
			ID:          i + 1,
			Name:        fmt.Sprintf("%s No.%d", tpl.name, i/len(templates)+1),
			Category:    tpl.category,
			Price:       price,
			Images:      []string{fmt.Sprintf("/images/products/%d-main.jpg", i+1)},
			Sizes:       pick(rng, sizes, 2+rng.Intn(3)),
			Colors:      pick(rng, colors, 1+rng.Intn(3)),
			Rating:      round2(3.0 + rng.Float64()*2.0),
			InStock:     rng.Intn(10) > 0,
			Featured:    rng.Intn(5) == 0,
			Description: fmt.Sprintf("A wardrobe staple from our %s collection.", tpl.category),
		}
		if rng.Intn(4) == 0 {
			discount := round2(price * (0.7 + rng.Float64()*0.2))
			p.DiscountPrice = &discount
		}
		if err := p.Validate(); err != nil {
			log.Fatalf("generated invalid product %d: %v", p.ID, err)
		}
		products = append(products, p)
	}

	writeJSON(*productsPath, products)
	writeJSON(*settingsPath, domain.DefaultStoreSettings())

	log.Printf("wrote %d products to %s and settings to %s", len(products), *productsPath, *settingsPath)
}

func pick(rng *rand.Rand, pool []string, n int) []string {
	idx := rng.Perm(len(pool))
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[idx[i]]
	}
	return out
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

func writeJSON(path string, v any) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Fatalf("create %s: %v", filepath.Dir(path), err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Fatalf("marshal %s: %v", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}
}
