package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

// OrderService fetches order snapshots for the document renderer
type OrderService struct {
	client shopify.Executor
	logger *zap.Logger
}

// NewOrderService creates a new order service
func NewOrderService(client shopify.Executor, logger *zap.Logger) *OrderService {
	return &OrderService{
		client: client,
		logger: logger,
	}
}

type moneySet struct {
	ShopMoney struct {
		Amount string `json:"amount"`
	} `json:"shopMoney"`
}

// GetOrder fetches the order snapshot used by all document kinds
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, &apperrors.ErrValidation{Message: "Missing orderId"}
	}

	variables := map[string]interface{}{
		"orderId": orderID,
	}
	resp, err := s.client.Execute(ctx, shopify.OrderDocumentQuery, variables)
	if err != nil {
		return nil, &apperrors.ErrUpstream{Operation: "getOrder", Err: err}
	}

	var result struct {
		Order *struct {
			Name              string   `json:"name"`
			CreatedAt         string   `json:"createdAt"`
			SubtotalPriceSet  moneySet `json:"subtotalPriceSet"`
			TotalTaxSet       moneySet `json:"totalTaxSet"`
			TotalPriceSet     moneySet `json:"totalPriceSet"`
			TotalDiscountsSet moneySet `json:"totalDiscountsSet"`
			TotalShippingSet  moneySet `json:"totalShippingPriceSet"`
			Customer          *struct {
				FirstName string `json:"firstName"`
				LastName  string `json:"lastName"`
				Email     string `json:"email"`
			} `json:"customer"`
			ShippingAddress *struct {
				FirstName string `json:"firstName"`
				LastName  string `json:"lastName"`
				Address1  string `json:"address1"`
				Address2  string `json:"address2"`
				City      string `json:"city"`
				Province  string `json:"province"`
				Country   string `json:"country"`
				Zip       string `json:"zip"`
			} `json:"shippingAddress"`
			LineItems struct {
				Edges []struct {
					Node struct {
						Title                string   `json:"title"`
						Quantity             int      `json:"quantity"`
						OriginalUnitPriceSet moneySet `json:"originalUnitPriceSet"`
						Product              *struct {
							Description   string `json:"description"`
							FeaturedImage *struct {
								URL     string `json:"url"`
								AltText string `json:"altText"`
							} `json:"featuredImage"`
							Variants struct {
								Edges []struct {
									Node struct {
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
							} `json:"variants"`
						} `json:"product"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"lineItems"`
		} `json:"order"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("parse order response: %w", err)
	}
	if result.Order == nil {
		return nil, &apperrors.ErrNotFound{Resource: "order", ID: orderID}
	}

	createdAt, err := time.Parse(time.RFC3339, result.Order.CreatedAt)
	if err != nil {
		return nil, &apperrors.ErrMalformedResponse{Query: "getOrder", Detail: fmt.Sprintf("bad createdAt %q", result.Order.CreatedAt)}
	}

	order := &domain.Order{
		Name:           result.Order.Name,
		CreatedAt:      createdAt,
		Subtotal:       result.Order.SubtotalPriceSet.ShopMoney.Amount,
		TotalTax:       result.Order.TotalTaxSet.ShopMoney.Amount,
		Total:          result.Order.TotalPriceSet.ShopMoney.Amount,
		TotalDiscounts: result.Order.TotalDiscountsSet.ShopMoney.Amount,
		TotalShipping:  result.Order.TotalShippingSet.ShopMoney.Amount,
	}
	if c := result.Order.Customer; c != nil {
		order.Customer = &domain.Customer{
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
		}
	}
	if a := result.Order.ShippingAddress; a != nil {
		order.ShippingAddress = &domain.Address{
			FirstName: a.FirstName,
			LastName:  a.LastName,
			Address1:  a.Address1,
			Address2:  a.Address2,
			City:      a.City,
			Province:  a.Province,
			Country:   a.Country,
			Zip:       a.Zip,
		}
	}

	order.LineItems = make([]domain.LineItem, 0, len(result.Order.LineItems.Edges))
	for _, edge := range result.Order.LineItems.Edges {
		item := domain.LineItem{
			Title:     edge.Node.Title,
			Quantity:  edge.Node.Quantity,
			UnitPrice: edge.Node.OriginalUnitPriceSet.ShopMoney.Amount,
		}
		if p := edge.Node.Product; p != nil {
			item.Description = p.Description
			if p.FeaturedImage != nil {
				item.ImageURL = p.FeaturedImage.URL
			}
			if len(p.Variants.Edges) > 0 {
				if w := p.Variants.Edges[0].Node.InventoryItem.Measurement.Weight; w != nil {
					item.Weight = &domain.Weight{Unit: w.Unit, Value: w.Value}
				}
			}
		}
		order.LineItems = append(order.LineItems, item)
	}

	s.logger.Info("Loaded order for printing",
		zap.String("order_id", orderID),
		zap.String("order_name", order.Name),
		zap.Int("line_items", len(order.LineItems)),
	)
	return order, nil
}
