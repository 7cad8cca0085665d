package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: go run cmd/list-products/main.go <collection-gid> [search]")
		os.Exit(1)
	}
	collectionID := os.Args[1]
	search := ""
	if len(os.Args) > 2 {
		search = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := shopify.NewClient(cfg.Shopify, cfg.Pricing.RequestTimeout, logger)
	catalog := service.NewCatalogService(client, cfg.Pricing, logger)

	fmt.Printf("🔍 Fetching products of %s...\n\n", collectionID)

	products, err := catalog.GetCollectionProducts(context.Background(), collectionID, search)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to query products: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Found %d product(s)\n\n", len(products))
	fmt.Println(strings.Repeat("─", 80))
	for i, p := range products {
		fmt.Printf("%d. %s [%s] (%d variants)\n", i+1, p.Title, p.Status, len(p.Variants))
		for _, v := range p.Variants {
			weight := "no weight"
			if v.Weight != nil {
				weight = fmt.Sprintf("%.2f %s", v.Weight.Value, strings.ToLower(v.Weight.Unit))
			}
			fmt.Printf("   - %s: $%s (%s)\n", v.ID, v.Price, weight)
		}
		fmt.Println("")
	}
}
