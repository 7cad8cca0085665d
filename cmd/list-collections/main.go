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
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := shopify.NewClient(cfg.Shopify, cfg.Pricing.RequestTimeout, logger)
	catalog := service.NewCatalogService(client, cfg.Pricing, logger)

	fmt.Println("🔍 Fetching collections from Shopify...")
	fmt.Println("")

	collections, err := catalog.ListCollections(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to query collections: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Found %d collection(s)\n\n", len(collections))

	if len(collections) == 0 {
		fmt.Println("⚠️  No collections found in this store.")
		os.Exit(0)
	}

	fmt.Println(strings.Repeat("─", 80))
	for i, coll := range collections {
		fmt.Printf("%d. %s (%d products)\n", i+1, coll.Title, coll.ProductCount)
		fmt.Printf("   ID: %s\n\n", coll.ID)
	}

	fmt.Println("To list a collection's products, run:")
	fmt.Println("   go run cmd/list-products/main.go <collection-gid>")
}
