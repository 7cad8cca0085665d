package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

// CatalogService performs the two-step catalog read: collections for the
// selector, then products of the chosen collection
type CatalogService struct {
	client shopify.Executor
	cfg    config.PricingConfig
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(client shopify.Executor, cfg config.PricingConfig, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// variantEdges is the shared shape of variants(first: N) { edges { node ... } }
type variantEdges struct {
	Edges []struct {
		Node struct {
			ID            string `json:"id"`
			Price         string `json:"price"`
			InventoryItem struct {
				Measurement struct {
					Weight *struct {
						Unit  string  `json:"unit"`
						Value float64 `json:"value"`
					} `json:"weight"`
				} `json:"measurement"`
			} `json:"inventoryItem"`
		} `json:"node"`
	} `json:"edges"`
}

func (ve variantEdges) toDomain() []domain.Variant {
	variants := make([]domain.Variant, 0, len(ve.Edges))
	for _, edge := range ve.Edges {
		v := domain.Variant{
			ID:    edge.Node.ID,
			Price: edge.Node.Price,
		}
		if w := edge.Node.InventoryItem.Measurement.Weight; w != nil {
			v.Weight = &domain.Weight{Unit: w.Unit, Value: w.Value}
		}
		variants = append(variants, v)
	}
	return variants
}

// ListCollections fetches the first page of collections for the dropdown
func (s *CatalogService) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	variables := map[string]interface{}{
		"first": s.cfg.CollectionPageSize,
	}
	resp, err := s.client.Execute(ctx, shopify.CollectionsQuery, variables)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Operation: "getCollections", Err: err}
	}

	var result struct {
		Collections *struct {
			Edges []struct {
				Node struct {
					ID            string `json:"id"`
					Title         string `json:"title"`
					ProductsCount struct {
						Count int `json:"count"`
					} `json:"productsCount"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"collections"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse collections response: %w", err)
	}
	if result.Collections == nil {
		return nil, &apperrors.ErrMalformedResponse{Query: "getCollections", Detail: "missing collections object"}
	}

	collections := make([]domain.Collection, 0, len(result.Collections.Edges))
	for _, edge := range result.Collections.Edges {
		collections = append(collections, domain.Collection{
			ID:           edge.Node.ID,
			Title:        edge.Node.Title,
			ProductCount: edge.Node.ProductsCount.Count,
		})
	}
	s.logger.Info("Loaded collections", zap.Int("count", len(collections)))
	return collections, nil
}

// GetCollectionProducts fetches the collection's products with variants,
// weights and prices. searchQuery filters by title, case-insensitive.
func (s *CatalogService) GetCollectionProducts(ctx context.Context, collectionID, searchQuery string) ([]domain.Product, error) {
	if collectionID == "" {
		return nil, &apperrors.ErrValidation{Message: "Missing collectionId"}
	}

	variables := map[string]interface{}{
		"collectionId": collectionID,
		"first":        s.cfg.ProductPageSize,
		"variants":     s.cfg.VariantPageSize,
	}
	resp, err := s.client.Execute(ctx, shopify.CollectionProductsQuery, variables)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Operation: "getCollectionProducts", Err: err}
	}

	var result struct {
		Collection *struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Products struct {
				Edges []struct {
					Node struct {
						ID       string       `json:"id"`
						Title    string       `json:"title"`
						Handle   string       `json:"handle"`
						Status   string       `json:"status"`
						Variants variantEdges `json:"variants"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		} `json:"collection"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse collection products response: %w", err)
	}
	if result.Collection == nil {
		return nil, &apperrors.ErrMalformedResponse{Query: "getCollectionProducts", Detail: "missing collection object"}
	}

	needle := strings.ToLower(strings.TrimSpace(searchQuery))
	products := make([]domain.Product, 0, len(result.Collection.Products.Edges))
	for _, edge := range result.Collection.Products.Edges {
		if needle != "" && !strings.Contains(strings.ToLower(edge.Node.Title), needle) {
			continue
		}
		products = append(products, domain.Product{
			ID:       edge.Node.ID,
			Title:    edge.Node.Title,
			Handle:   edge.Node.Handle,
			Status:   domain.ParseProductStatus(edge.Node.Status),
			Variants: edge.Node.Variants.toDomain(),
		})
	}
	s.logger.Info("Loaded collection products",
		zap.String("collection_id", collectionID),
		zap.String("search_query", searchQuery),
		zap.Int("count", len(products)),
	)
	return products, nil
}

// GetProductVariants fetches one product with its variants, used by the
// product-detail block
func (s *CatalogService) GetProductVariants(ctx context.Context, productID string) (*domain.Product, error) {
	if productID == "" {
		return nil, &apperrors.ErrValidation{Message: "Missing productId"}
	}

	variables := map[string]interface{}{
		"id":       productID,
		"variants": s.cfg.VariantPageSize,
	}
	resp, err := s.client.Execute(ctx, shopify.ProductVariantsQuery, variables)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Operation: "getProduct", Err: err}
	}

	var result struct {
		Product *struct {
			ID       string       `json:"id"`
			Title    string       `json:"title"`
			Variants variantEdges `json:"variants"`
		} `json:"product"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse product response: %w", err)
	}
	if result.Product == nil {
		return nil, &apperrors.ErrNotFound{Resource: "product", ID: productID}
	}

	return &domain.Product{
		ID:       result.Product.ID,
		Title:    result.Product.Title,
		Variants: result.Product.Variants.toDomain(),
	}, nil
}
