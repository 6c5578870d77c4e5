// Command gencatalog writes a synthetic catalog document in the shape the
// server loads: {"data": [...], "pagination": {}}. Useful for generating
// large datasets when exercising pagination and search locally.
//
// Run: go run ./cmd/gencatalog -n 10000 -out assets/products_10k.json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"

	"github.com/palmnatthakarn/Admin-Dashboard/internal/domain"
)

var adjectives = []string{
	"Classic", "Premium", "Compact", "Deluxe", "Eco", "Ultra", "Mini", "Pro",
	"Smart", "Heavy Duty",
}

var nouns = []string{
	"Widget", "Gadget", "Bracket", "Fitting", "Panel", "Valve", "Cable",
	"Sensor", "Adapter", "Casing",
}

var units = []string{"pcs", "box", "set", "pack"}

type document struct {
	Data       []domain.Product `json:"data"`
	Pagination map[string]any   `json:"pagination"`
}

func main() {
	n := flag.Int("n", 10000, "number of products to generate")
	out := flag.String("out", "assets/products_10k.json", "output file path")
	seed := flag.Int64("seed", 42, "rand seed, fixed so re-runs are reproducible")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	codes := make([]string, 0, len(domain.DefaultDealerNames()))
	for code := range domain.DefaultDealerNames() {
		codes = append(codes, code)
	}
	// Map iteration order would break seed reproducibility.
	sort.Strings(codes)

	products := make([]domain.Product, *n)
	for i := range products {
		// Roughly one in twenty records has no dealer, matching real
		// exports where the field is sometimes absent.
		dealer := ""
		if rng.Intn(20) != 0 {
			dealer = codes[rng.Intn(len(codes))]
		}

		prices := domain.PriceEntry{}
		for p := 1; p <= 1+rng.Intn(3); p++ {
			prices[domain.PriceKey(p)] = float64(rng.Intn(99000)+1000) / 100
		}

		products[i] = domain.Product{
			ItemCode:   fmt.Sprintf("P%06d", i+1),
			Name:       adjectives[rng.Intn(len(adjectives))] + " " + nouns[rng.Intn(len(nouns))],
			Barcode:    fmt.Sprintf("885%010d", rng.Int63n(1e10)),
			DealerCode: dealer,
			Unit:       units[rng.Intn(len(units))],
			Prices:     []domain.PriceEntry{prices},
		}
	}

	raw, err := json.MarshalIndent(document{Data: products, Pagination: map[string]any{}}, "", "  ")
	if err != nil {
		log.Fatalf("marshal catalog: %v", err)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}

	log.Printf("wrote %d products to %s", *n, *out)
}
