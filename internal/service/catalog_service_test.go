package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
	"github.com/Raghav-rv28/variable-pricing/internal/domain"
	"github.com/Raghav-rv28/variable-pricing/internal/shopify"
	apperrors "github.com/Raghav-rv28/variable-pricing/pkg/errors"
)

func jsonResponse(body string) *shopify.GraphQLResponse {
	return &shopify.GraphQLResponse{Data: []byte(body)}
}

func newCatalog(exec shopify.Executor) *CatalogService {
	cfg := config.PricingConfig{
		CollectionPageSize: 50,
		ProductPageSize:    100,
		VariantPageSize:    10,
	}
	return NewCatalogService(exec, cfg, zap.NewNop())
}

const collectionProductsBody = `{
  "collection": {
    "id": "gid://shopify/Collection/1",
    "title": "Gold Chains",
    "products": {
      "edges": [
        {
          "node": {
            "id": "gid://shopify/Product/1",
            "title": "Rope Chain",
            "handle": "rope-chain",
            "status": "ACTIVE",
            "variants": {
              "edges": [
                {
                  "node": {
                    "id": "gid://shopify/ProductVariant/11",
                    "price": "120.00",
                    "inventoryItem": {
                      "measurement": {
                        "weight": {"unit": "GRAMS", "value": 12.5}
                      }
                    }
                  }
                },
                {
                  "node": {
                    "id": "gid://shopify/ProductVariant/12",
                    "price": "90.00",
                    "inventoryItem": {"measurement": {}}
                  }
                }
              ]
            }
          }
        },
        {
          "node": {
            "id": "gid://shopify/Product/2",
            "title": "Figaro Bracelet",
            "handle": "figaro-bracelet",
            "status": "DRAFT",
            "variants": {"edges": []}
          }
        }
      ]
    }
  }
}`

func TestGetCollectionProducts(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return jsonResponse(collectionProductsBody), nil
		},
	}
	svc := newCatalog(exec)

	products, err := svc.GetCollectionProducts(context.Background(), "gid://shopify/Collection/1", "")
	require.NoError(t, err)
	require.Len(t, products, 2)

	rope := products[0]
	assert.Equal(t, "Rope Chain", rope.Title)
	assert.Equal(t, domain.ProductStatusActive, rope.Status)
	require.Len(t, rope.Variants, 2)
	require.NotNil(t, rope.Variants[0].Weight)
	assert.Equal(t, 12.5, rope.Variants[0].Weight.Value)
	assert.Nil(t, rope.Variants[1].Weight, "variant without weight measurement stays weightless")
	assert.True(t, rope.HasWeight())

	figaro := products[1]
	assert.Equal(t, domain.ProductStatusDraft, figaro.Status)
	assert.False(t, figaro.HasWeight())
}

func TestGetCollectionProductsSearchFilter(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return jsonResponse(collectionProductsBody), nil
		},
	}
	svc := newCatalog(exec)

	products, err := svc.GetCollectionProducts(context.Background(), "gid://shopify/Collection/1", "figaro")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Figaro Bracelet", products[0].Title)
}

func TestGetCollectionProductsValidation(t *testing.T) {
	exec := &fakeExecutor{}
	svc := newCatalog(exec)

	_, err := svc.GetCollectionProducts(context.Background(), "", "")
	var validationErr *apperrors.ErrValidation
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, 0, exec.callCount(), "validation must reject before any network call")
}

func TestGetCollectionProductsMalformedResponse(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return jsonResponse(`{"collection": null}`), nil
		},
	}
	svc := newCatalog(exec)

	_, err := svc.GetCollectionProducts(context.Background(), "gid://shopify/Collection/404", "")
	var malformed *apperrors.ErrMalformedResponse
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "getCollectionProducts", malformed.Query)
}

func TestListCollections(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return jsonResponse(`{
				"collections": {
					"edges": [
						{"node": {"id": "gid://shopify/Collection/1", "title": "Gold Chains", "productsCount": {"count": 14}}},
						{"node": {"id": "gid://shopify/Collection/2", "title": "Rings", "productsCount": {"count": 3}}}
					]
				}
			}`), nil
		},
	}
	svc := newCatalog(exec)

	collections, err := svc.ListCollections(context.Background())
	require.NoError(t, err)
	require.Len(t, collections, 2)
	assert.Equal(t, domain.Collection{ID: "gid://shopify/Collection/1", Title: "Gold Chains", ProductCount: 14}, collections[0])
}

func TestListCollectionsMalformed(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return jsonResponse(`{}`), nil
		},
	}
	svc := newCatalog(exec)

	_, err := svc.ListCollections(context.Background())
	var malformed *apperrors.ErrMalformedResponse
	require.ErrorAs(t, err, &malformed)
}

func TestGetProductVariantsNotFound(t *testing.T) {
	exec := &fakeExecutor{
		respond: func(query string, variables map[string]interface{}) (*shopify.GraphQLResponse, error) {
			return jsonResponse(`{"product": null}`), nil
		},
	}
	svc := newCatalog(exec)

	_, err := svc.GetProductVariants(context.Background(), "gid://shopify/Product/404")
	var notFound *apperrors.ErrNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "product", notFound.Resource)
}
