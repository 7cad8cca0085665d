package shopify

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Raghav-rv28/variable-pricing/internal/config"
)

func TestNewClientNormalizesShopDomain(t *testing.T) {
	tests := []struct {
		name   string
		domain string
		want   string
	}{
		{"plain", "my-shop.myshopify.com", "my-shop.myshopify.com"},
		{"https prefix", "https://my-shop.myshopify.com", "my-shop.myshopify.com"},
		{"http prefix", "http://my-shop.myshopify.com", "my-shop.myshopify.com"},
		{"trailing slash", "https://my-shop.myshopify.com/", "my-shop.myshopify.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(config.ShopifyConfig{ShopDomain: tt.domain, APIVersion: "2024-10"}, 0, zap.NewNop())
			assert.Equal(t, tt.want, c.shopDomain)
		})
	}
}

func TestWithAccessTokenClonesClient(t *testing.T) {
	base := NewClient(config.ShopifyConfig{
		ShopDomain:  "base.myshopify.com",
		AccessToken: "base-token",
		APIVersion:  "2024-10",
	}, 10*time.Second, zap.NewNop())

	clone := base.WithAccessToken("https://other.myshopify.com/", "other-token")

	assert.Equal(t, "other.myshopify.com", clone.shopDomain)
	assert.Equal(t, "other-token", clone.accessToken)
	assert.Equal(t, base.apiVersion, clone.apiVersion)
	// The original keeps its credentials
	assert.Equal(t, "base.myshopify.com", base.shopDomain)
	assert.Equal(t, "base-token", base.accessToken)
}

func TestExecuteCancelledContext(t *testing.T) {
	c := NewClient(config.ShopifyConfig{
		ShopDomain:  "my-shop.myshopify.com",
		AccessToken: "token",
		APIVersion:  "2024-10",
	}, time.Second, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resp, err := c.Execute(ctx, CollectionsQuery, map[string]interface{}{"first": 50})
	require.Error(t, err)
	assert.Nil(t, resp)
}

func TestJoinUserErrors(t *testing.T) {
	assert.Equal(t, "", JoinUserErrors(nil))
	assert.Equal(t, "Price is invalid", JoinUserErrors([]UserError{
		{Field: []string{"price"}, Message: "Price is invalid"},
	}))
	assert.Equal(t, "Price is invalid, Variant not found", JoinUserErrors([]UserError{
		{Field: []string{"price"}, Message: "Price is invalid"},
		{Field: []string{"id"}, Message: "Variant not found"},
	}))
}
