package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/documents"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/service"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
)

// Renders order documents to an HTML file for inspection without the admin
// iframe, e.g.:
//
//	go run cmd/print-order/main.go gid://shopify/Order/123 invoice,delivery out.html
func main() {
	if len(os.Args) < 4 {
		fmt.Fprintln(os.Stderr, "Usage: go run cmd/print-order/main.go <order-gid> <documents> <out.html>")
		os.Exit(1)
	}
	orderID := os.Args[1]
	selector := os.Args[2]
	outPath := os.Args[3]

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	kinds, err := domain.ParseDocumentKinds(selector)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	client := shopify.NewClient(cfg.Shopify, cfg.Pricing.RequestTimeout, logger)
	orders := service.NewOrderService(client, logger)

	renderer, err := documents.NewRenderer(cfg.Documents)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build renderer: %v\n", err)
		os.Exit(1)
	}

	order, err := orders.GetOrder(context.Background(), orderID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch order: %v\n", err)
		os.Exit(1)
	}

	html, err := renderer.Compose(kinds, order)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to render: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(html), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("✅ Wrote %d document page(s) for order %s to %s\n", len(kinds), order.Name, outPath)
}
