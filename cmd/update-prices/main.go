package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
)

// Bulk price update from the terminal: fetches a collection's products and
// reprices every weighted variant as weight × multiplier.
func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: go run cmd/update-prices/main.go <collection-gid> <multiplier> [search]")
		os.Exit(1)
	}
	collectionID := os.Args[1]
	multiplier := os.Args[2]
	search := ""
	if len(os.Args) > 3 {
		search = os.Args[3]
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := shopify.NewClient(cfg.Shopify, cfg.Pricing.RequestTimeout, logger)
	catalog := service.NewCatalogService(client, cfg.Pricing, logger)
	pricing := service.NewPricingService(client, cfg.Pricing, logger)

	ctx := context.Background()

	fmt.Printf("🔍 Fetching products of %s...\n", collectionID)
	products, err := catalog.GetCollectionProducts(ctx, collectionID, search)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to query products: %v\n", err)
		os.Exit(1)
	}
	if len(products) == 0 {
		fmt.Println("⚠️  No products found, nothing to update.")
		os.Exit(0)
	}

	fmt.Printf("💰 Updating prices for %d product(s) with multiplier %s...\n\n", len(products), multiplier)
	summary, err := pricing.UpdatePrices(ctx, products, multiplier)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		os.Exit(1)
	}

	for _, r := range summary.Results {
		fmt.Printf("✅ %s: %d variant(s) updated\n", r.ProductTitle, r.VariantsUpdated)
	}
	for _, e := range summary.Errors {
		fmt.Printf("❌ %s\n", e)
	}
	fmt.Printf("\nDone. %d updated, %d errors.\n", len(summary.Results), len(summary.Errors))
	if len(summary.Errors) > 0 {
		os.Exit(1)
	}
}
