package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

// PricingService recalculates variant prices as weight × multiplier and
// submits one bulk mutation per product
type PricingService struct {
	client shopify.Executor
	cfg    config.PricingConfig
	logger *zap.Logger
}

// NewPricingService creates a new pricing service
func NewPricingService(client shopify.Executor, cfg config.PricingConfig, logger *zap.Logger) *PricingService {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return &PricingService{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// UpdateResult summarizes one product whose variants were updated
type UpdateResult struct {
	ProductTitle    string `json:"productTitle"`
	VariantsUpdated int    `json:"variantsUpdated"`
}

// UpdateSummary aggregates per-product outcomes of one bulk run. A failure in
// one product never aborts the others.
type UpdateSummary struct {
	Results []UpdateResult `json:"results"`
	Errors  []string       `json:"errors"`
}

// ParseMultiplier validates the user-supplied multiplier before any network
// call is made
func ParseMultiplier(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, &apperrors.ErrValidation{Message: "Please enter a valid multiplier"}
	}
	m, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &apperrors.ErrValidation{Message: "Please enter a valid multiplier"}
	}
	return m, nil
}

// QualifyingVariants computes the bulk-update inputs for one product: only
// variants with a positive weight (and matching unit, when configured)
// qualify; newPrice = weight × multiplier rounded to 2 decimal places.
func (s *PricingService) QualifyingVariants(product domain.Product, multiplier decimal.Decimal) []shopify.VariantBulkInput {
	updates := make([]shopify.VariantBulkInput, 0, len(product.Variants))
	for _, v := range product.Variants {
		if v.Weight == nil || v.Weight.Value <= 0 {
			continue
		}
		if s.cfg.RequireWeightUnit != "" && v.Weight.Unit != s.cfg.RequireWeightUnit {
			continue
		}
		price := decimal.NewFromFloat(v.Weight.Value).Mul(multiplier).Round(2)
		updates = append(updates, shopify.VariantBulkInput{
			ID:    v.ID,
			Price: price.StringFixed(2),
		})
	}
	return updates
}

// UpdatePrices runs the bulk price-update workflow over the selected
// products. Each qualifying product gets exactly one bulk mutation, issued
// with bounded concurrency; products without qualifying variants are skipped
// without a call. Context cancellation stops unstarted products and surfaces
// in-flight ones as per-product errors.
func (s *PricingService) UpdatePrices(ctx context.Context, products []domain.Product, multiplierStr string) (*UpdateSummary, error) {
	multiplier, err := ParseMultiplier(multiplierStr)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, &apperrors.ErrValidation{Message: "Please select at least one product"}
	}

	type outcome struct {
		result *UpdateResult
		errMsg string
	}
	outcomes := make([]outcome, len(products))

	sem := make(chan struct{}, s.cfg.Concurrency)
	var wg sync.WaitGroup
	for i, product := range products {
		updates := s.QualifyingVariants(product, multiplier)
		if len(updates) == 0 {
			s.logger.Debug("Skipping product with no qualifying variants", zap.String("product", product.Title))
			continue
		}

		if err := ctx.Err(); err != nil {
			outcomes[i] = outcome{errMsg: fmt.Sprintf("%s: %v", product.Title, err)}
			continue
		}

		wg.Add(1)
		go func(i int, product domain.Product, updates []shopify.VariantBulkInput) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			count, err := s.bulkUpdate(ctx, product.ID, updates)
			if err != nil {
				s.logger.Error("Bulk update failed",
					zap.String("product", product.Title),
					zap.Error(err),
				)
				outcomes[i] = outcome{errMsg: fmt.Sprintf("%s: %v", product.Title, err)}
				return
			}
			outcomes[i] = outcome{result: &UpdateResult{
				ProductTitle:    product.Title,
				VariantsUpdated: count,
			}}
		}(i, product, updates)
	}
	wg.Wait()

	summary := &UpdateSummary{
		Results: make([]UpdateResult, 0, len(products)),
		Errors:  make([]string, 0),
	}
	for _, o := range outcomes {
		if o.result != nil {
			summary.Results = append(summary.Results, *o.result)
		}
		if o.errMsg != "" {
			summary.Errors = append(summary.Errors, o.errMsg)
		}
	}
	s.logger.Info("Bulk price update complete",
		zap.Int("products_selected", len(products)),
		zap.Int("updated", len(summary.Results)),
		zap.Int("errors", len(summary.Errors)),
	)
	return summary, nil
}

// bulkUpdate submits one productVariantsBulkUpdate mutation and returns the
// number of variants updated. Vendor field-level errors fail the whole
// product.
func (s *PricingService) bulkUpdate(ctx context.Context, productID string, updates []shopify.VariantBulkInput) (int, error) {
	variables := map[string]interface{}{
		"productId": productID,
		"variants":  updates,
	}
	resp, err := s.client.Execute(ctx, shopify.VariantsBulkUpdateMutation, variables)
	if err != nil {
		return 0, err
	}

	var result struct {
		ProductVariantsBulkUpdate struct {
			ProductVariants []struct {
				ID    string `json:"id"`
				Price string `json:"price"`
			} `json:"productVariants"`
			UserErrors []shopify.UserError `json:"userErrors"`
		} `json:"productVariantsBulkUpdate"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return 0, fmt.Errorf("parse bulk update response: %w", err)
	}
	if len(result.ProductVariantsBulkUpdate.UserErrors) > 0 {
		return 0, fmt.Errorf("%s", shopify.JoinUserErrors(result.ProductVariantsBulkUpdate.UserErrors))
	}
	return len(updates), nil
}

// UpdateVariantPrice updates a single variant via productVariantUpdate, the
// alternate integration mode for API versions without the bulk mutation
func (s *PricingService) UpdateVariantPrice(ctx context.Context, variantID, price string) error {
	variables := map[string]interface{}{
		"input": shopify.VariantInput{ID: variantID, Price: price},
	}
	resp, err := s.client.Execute(ctx, shopify.VariantUpdateMutation, variables)
	if err != nil {
		return &apperrors.ErrUpstream{Operation: "productVariantUpdate", Err: err}
	}

	var result struct {
		ProductVariantUpdate struct {
			ProductVariant *struct {
				ID    string `json:"id"`
				Price string `json:"price"`
			} `json:"productVariant"`
			UserErrors []shopify.UserError `json:"userErrors"`
		} `json:"productVariantUpdate"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return fmt.Errorf("parse variant update response: %w", err)
	}
	if len(result.ProductVariantUpdate.UserErrors) > 0 {
		return fmt.Errorf("productVariantUpdate userErrors: %s", shopify.JoinUserErrors(result.ProductVariantUpdate.UserErrors))
	}
	return nil
}
